package search

import "github.com/RoaringBitmap/roaring"

// ═══════════════════════════════════════════════════════════════════════════════
// DUPLICATE REMOVAL
// ═══════════════════════════════════════════════════════════════════════════════
// RemoveDuplicates walks ids in insertion order; for each id not already
// marked, it compares that document's term set (the keys of its forward
// index entry — frequencies don't matter, only vocabulary) against every
// later not-yet-marked document, marking the later one on a match. Marks
// are kept in a roaring bitmap as a tombstone set, so membership checks
// during the O(n²) comparison are cheap bitmap lookups rather than a
// map-of-struct{} with pointer-sized entries.
// ═══════════════════════════════════════════════════════════════════════════════

// RemoveDuplicates removes every document whose term set duplicates an
// earlier document's term set, keeping the earliest of each duplicate
// group. Idempotent: calling it again on the result is a no-op.
func RemoveDuplicates(index *Index) {
	ids := index.IterIDs()
	marked := roaring.NewBitmap()

	vocab := make([]map[string]struct{}, len(ids))
	for i, id := range ids {
		freqs := index.GetWordFrequencies(id)
		v := make(map[string]struct{}, len(freqs))
		for term := range freqs {
			v[term] = struct{}{}
		}
		vocab[i] = v
	}

	for i, id := range ids {
		if marked.Contains(uint32(id)) {
			continue
		}
		for j := i + 1; j < len(ids); j++ {
			otherID := ids[j]
			if marked.Contains(uint32(otherID)) {
				continue
			}
			if sameVocabulary(vocab[i], vocab[j]) {
				marked.Add(uint32(otherID))
			}
		}
	}

	iter := marked.Iterator()
	for iter.HasNext() {
		index.RemoveDocument(int(iter.Next()))
	}
}

func sameVocabulary(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for term := range a {
		if _, ok := b[term]; !ok {
			return false
		}
	}
	return true
}
