package search

import "sync"

// ═══════════════════════════════════════════════════════════════════════════════
// SHARDED CONCURRENT MAP
// ═══════════════════════════════════════════════════════════════════════════════
// A key→float64 accumulator partitioned into N independently-locked
// shards, so that concurrent writers touching different keys don't
// contend on a single global mutex. Used by the parallel ranking path
// (ranker.go) to accumulate per-document relevance scores across
// goroutines processing different plus-terms.
//
// Key k routes to shard k mod N (negative keys are not expected here —
// document ids are always non-negative — but the modulo is taken of the
// non-negative remainder regardless).
//
// Contention model: at most one writer per shard at a time; distinct
// keys routed to distinct shards proceed fully in parallel. With N much
// larger than the number of concurrent goroutines and keys spread
// roughly uniformly, contention on any one shard is rare.
// ═══════════════════════════════════════════════════════════════════════════════

type shard struct {
	mu sync.Mutex
	m  map[int]float64
}

// shardedMap is the concurrent accumulator described above.
type shardedMap struct {
	shards []*shard
	n      int
}

func newShardedMap(n int) *shardedMap {
	if n <= 0 {
		n = 1
	}
	sm := &shardedMap{shards: make([]*shard, n), n: n}
	for i := range sm.shards {
		sm.shards[i] = &shard{m: make(map[int]float64)}
	}
	return sm
}

func (sm *shardedMap) shardFor(key int) *shard {
	idx := key % sm.n
	if idx < 0 {
		idx += sm.n
	}
	return sm.shards[idx]
}

// Add adds delta to the value stored under key, creating the entry with
// a zero default if absent. It locks only the one shard key routes to.
func (sm *shardedMap) Add(key int, delta float64) {
	s := sm.shardFor(key)
	s.mu.Lock()
	s.m[key] += delta
	s.mu.Unlock()
}

// Erase removes key if present, locking only its shard.
func (sm *shardedMap) Erase(key int) {
	s := sm.shardFor(key)
	s.mu.Lock()
	delete(s.m, key)
	s.mu.Unlock()
}

// BuildOrdinaryMap acquires each shard's lock in turn (never more than
// one at a time, so there is no lock-ordering deadlock to worry about)
// and merges all shards into a single map. The result is consistent
// per-shard but not a single atomic snapshot of the whole map — fine
// here since the ranker's write phase never runs concurrently with the
// read/merge phase.
func (sm *shardedMap) BuildOrdinaryMap() map[int]float64 {
	whole := make(map[int]float64)
	for _, s := range sm.shards {
		s.mu.Lock()
		for k, v := range s.m {
			whole[k] = v
		}
		s.mu.Unlock()
	}
	return whole
}
