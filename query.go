package search

import (
	"github.com/RoaringBitmap/roaring"
)

// ═══════════════════════════════════════════════════════════════════════════════
// QUERY PARSING
// ═══════════════════════════════════════════════════════════════════════════════
// A raw query string like "cat -dog collar" becomes a Query{plus, minus}
// term set. Each token is classified before stop-words are applied:
//
//  1. "-" alone                → InvalidQuery("empty minus term")
//  2. starts with "--"         → InvalidQuery("doubled minus")
//  3. starts with "-"          → strip one "-", candidate is a minus-term
//     otherwise                → candidate is a plus-term
//  4. candidate empty or has control bytes → InvalidQuery
//  5. candidate is a stop-word  → discard
//  6. otherwise                → insert into the matching set (sets dedupe)
//
// A term appearing in both sets is left in both: the minus-term veto in
// the ranker/matcher then excludes any document containing it, which is
// the specified (if surprising) behavior for such a query.
// ═══════════════════════════════════════════════════════════════════════════════

// Query is the parsed form of a raw query string. It is owned by the
// caller: the index never retains a reference to it past the call that
// consumed it.
type Query struct {
	Plus  map[string]struct{}
	Minus map[string]struct{}
}

func newQuery() Query {
	return Query{Plus: make(map[string]struct{}), Minus: make(map[string]struct{})}
}

// parseQuery tokenizes and classifies every token of a raw query string,
// applying the index's stop-word set to both plus- and minus-term
// candidates.
func parseQuery(stopWords map[string]struct{}, raw string) (Query, error) {
	q := newQuery()
	for _, tok := range tokenize(raw) {
		if tok == "-" {
			return Query{}, newError(KindInvalidQuery, "empty minus term")
		}
		minus := false
		candidate := tok
		if len(tok) > 0 && tok[0] == '-' {
			if len(tok) > 1 && tok[1] == '-' {
				return Query{}, newError(KindInvalidQuery, "doubled minus in %q", tok)
			}
			minus = true
			candidate = tok[1:]
		}
		if candidate == "" || hasControlByte(candidate) {
			return Query{}, newError(KindInvalidQuery, "malformed query term %q", tok)
		}
		if isStopWord(stopWords, candidate) {
			continue
		}
		if minus {
			q.Minus[candidate] = struct{}{}
		} else {
			q.Plus[candidate] = struct{}{}
		}
	}
	return q, nil
}

// minusTermDocBitmap unions the document-id bitmaps of every minus-term
// present in the index. Callers subtract this set from their candidate
// accumulator in one pass instead of walking each minus-term's postings
// individually.
func minusTermDocBitmap(idx *Index, minus map[string]struct{}) *roaring.Bitmap {
	excluded := roaring.NewBitmap()
	for term := range minus {
		postings, ok := idx.inverted[term]
		if !ok {
			continue
		}
		for docID := range postings {
			excluded.Add(uint32(docID))
		}
	}
	return excluded
}
