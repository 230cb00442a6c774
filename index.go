package search

import (
	"sync"

	"github.com/RoaringBitmap/roaring"
)

// ═══════════════════════════════════════════════════════════════════════════════
// INVERTED INDEX
// ═══════════════════════════════════════════════════════════════════════════════
// Index maintains two maps that must stay mutually consistent with each
// other at all times:
//
//	forward:  docID → (term → normalized term-frequency)
//	inverted: term  → (docID → normalized term-frequency)
//
// plus a documents table (docID → status/rating) and an id registry that
// records insertion order, which is also the engine's iteration order.
//
// Indexing and removal need exclusive access; queries only read. That's
// naturally a single-writer/multi-reader split, so the embedded
// sync.RWMutex below lets queries run concurrently with each other while
// serializing against any mutation.
// ═══════════════════════════════════════════════════════════════════════════════

type emptyTermFreq = map[string]float64

// canonicalEmptyWordFreqs is returned by GetWordFrequencies for an id
// that isn't present, avoiding an allocation (and a fresh map the caller
// might mistakenly mutate) on every miss.
var canonicalEmptyWordFreqs = emptyTermFreq{}

// Index is an in-memory inverted full-text index.
type Index struct {
	mu sync.RWMutex

	cfg IndexConfig

	// stopWords is immutable once the first document has been added;
	// before that, SetStopWords (see below) may still add to it.
	stopWords map[string]struct{}

	forward  map[int]emptyTermFreq      // docID -> term -> tf
	inverted map[string]map[int]float64 // term -> docID -> tf

	documents map[int]documentData
	ids       []int // insertion order; also the engine's iteration order

	// live is a roaring bitmap mirror of the id registry, letting
	// membership tests avoid O(n) scans of ids.
	live *roaring.Bitmap

	stopWordsLocked bool // true once the first document has been added
}

// NewIndex constructs an empty index with the given stop-word set. It
// fails with KindInvalidArgument if any stop-word contains a control
// character.
func NewIndex(stopWords []string, opts ...Option) (*Index, error) {
	cfg := DefaultIndexConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	sw := make(map[string]struct{}, len(stopWords))
	for _, w := range stopWords {
		if hasControlByte(w) {
			return nil, newError(KindInvalidArgument, "stop word %q contains a control character", w)
		}
		sw[w] = struct{}{}
	}

	return &Index{
		cfg:       cfg,
		stopWords: sw,
		forward:   make(map[int]emptyTermFreq),
		inverted:  make(map[string]map[int]float64),
		documents: make(map[int]documentData),
		ids:       make([]int, 0),
		live:      roaring.NewBitmap(),
	}, nil
}

// SetStopWords is a deprecated mutator retained for callers migrating off
// an older construction style that set stop-words after building the
// index. Stop-words are immutable once any document has been added —
// allowing a change after that point would silently leave existing
// postings tokenized against a stop-word set that no longer matches the
// one future documents and queries see. Before the first AddDocument it
// behaves like passing the words to NewIndex.
//
// Deprecated: construct the index with its final stop-word set via
// NewIndex instead.
func (idx *Index) SetStopWords(words []string) error {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if idx.stopWordsLocked {
		return newError(KindInvalidArgument, "stop words are immutable once documents have been added")
	}
	for _, w := range words {
		if hasControlByte(w) {
			return newError(KindInvalidArgument, "stop word %q contains a control character", w)
		}
		idx.stopWords[w] = struct{}{}
	}
	return nil
}

// AddDocument tokenizes text, validates every token, and inserts the
// document into the forward/inverted maps and the id registry. It fails
// atomically: no partial state is committed if any token is invalid.
func (idx *Index) AddDocument(id int, text string, status Status, ratings []int) error {
	if id < 0 {
		return newError(KindInvalidArgument, "document id %d is negative", id)
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	if _, exists := idx.documents[id]; exists {
		return newError(KindInvalidArgument, "document id %d already exists", id)
	}

	words, err := tokenizeNoStop(idx.stopWords, text)
	if err != nil {
		return err
	}
	if len(words) == 0 {
		return newError(KindInvalidText, "document %d has no non-stop-word tokens", id)
	}
	idx.stopWordsLocked = true

	counts := make(map[string]int, len(words))
	for _, w := range words {
		counts[w]++
	}
	invCount := 1.0 / float64(len(words))

	termFreqs := make(emptyTermFreq, len(counts))
	for term, n := range counts {
		tf := float64(n) * invCount
		termFreqs[term] = tf

		postings, ok := idx.inverted[term]
		if !ok {
			postings = make(map[int]float64)
			idx.inverted[term] = postings
		}
		postings[id] = tf
	}

	idx.forward[id] = termFreqs
	idx.documents[id] = documentData{status: status, meanRating: computeMeanRating(ratings)}
	idx.ids = append(idx.ids, id)
	idx.live.Add(uint32(id))

	logger.Debug().Int("doc_id", id).Int("term_count", len(termFreqs)).Msg("document indexed")
	return nil
}

// RemoveDocument deletes a document's entries from every structure. It
// is a silent no-op if id is absent, and idempotent: removing the same
// id twice has the same effect as removing it once.
func (idx *Index) RemoveDocument(id int) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.removeDocumentLocked(id)
}

func (idx *Index) removeDocumentLocked(id int) {
	termFreqs, ok := idx.forward[id]
	if !ok {
		return
	}

	for term := range termFreqs {
		postings := idx.inverted[term]
		delete(postings, id)
		if len(postings) == 0 {
			delete(idx.inverted, term)
		}
	}
	delete(idx.forward, id)
	delete(idx.documents, id)
	idx.live.Remove(uint32(id))

	for i, existing := range idx.ids {
		if existing == id {
			idx.ids = append(idx.ids[:i], idx.ids[i+1:]...)
			break
		}
	}

	logger.Debug().Int("doc_id", id).Msg("document removed")
}

// GetWordFrequencies returns a read-only view of the forward index entry
// for id. If id is absent, it returns the canonical shared empty map
// rather than allocating a fresh one or erroring.
func (idx *Index) GetWordFrequencies(id int) emptyTermFreq {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	if tf, ok := idx.forward[id]; ok {
		return tf
	}
	return canonicalEmptyWordFreqs
}

// DocumentCount returns the number of live documents.
func (idx *Index) DocumentCount() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.ids)
}

// IterIDs returns the live document ids in insertion order, which is
// also the engine's defined iteration order. The returned slice is a
// copy; mutating it does not affect the index.
func (idx *Index) IterIDs() []int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	out := make([]int, len(idx.ids))
	copy(out, idx.ids)
	return out
}

// hasID reports whether id is currently live, via the roaring bitmap
// mirror rather than a scan of the id registry.
func (idx *Index) hasID(id int) bool {
	return idx.live.Contains(uint32(id))
}
