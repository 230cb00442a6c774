package search

import "golang.org/x/sync/errgroup"

// ═══════════════════════════════════════════════════════════════════════════════
// MATCHING
// ═══════════════════════════════════════════════════════════════════════════════
// MatchDocument answers "which of this query's plus-terms occur in this
// document?", vetoing to an empty result if any minus-term occurs. The
// parallel variant must return identical output to the sequential one;
// it parallelizes the independent plus-term and minus-term membership
// checks, running one goroutine per term, and checks for a veto only
// once every minus-term goroutine has finished.
//
// The returned slice is freshly allocated on every call and owned by the
// caller, so there's no aliasing hazard between calls.
// ═══════════════════════════════════════════════════════════════════════════════

// MatchDocument parses raw, then reports which of its plus-terms occur
// in document id. If any minus-term occurs in the document, the result
// is empty regardless of plus-term matches. Fails KindInvalidQuery on a
// malformed query, KindOutOfRange if id is not in the registry.
func (idx *Index) MatchDocument(raw string, id int, opts ...QueryOption) ([]string, Status, error) {
	o := resolveOptions(opts)

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	query, err := parseQuery(idx.stopWords, raw)
	if err != nil {
		return nil, 0, err
	}
	if !idx.hasID(id) {
		return nil, 0, newError(KindOutOfRange, "document id %d is not in the registry", id)
	}

	doc := idx.documents[id]

	if o.policy == Parallel {
		matched, vetoed := idx.matchParallel(query, id)
		if vetoed {
			return []string{}, doc.status, nil
		}
		return matched, doc.status, nil
	}

	matched, vetoed := idx.matchSequential(query, id)
	if vetoed {
		return []string{}, doc.status, nil
	}
	return matched, doc.status, nil
}

func (idx *Index) matchSequential(query Query, id int) (matched []string, vetoed bool) {
	for term := range query.Minus {
		if postings, ok := idx.inverted[term]; ok {
			if _, hit := postings[id]; hit {
				return nil, true
			}
		}
	}
	out := make([]string, 0, len(query.Plus))
	for term := range query.Plus {
		if postings, ok := idx.inverted[term]; ok {
			if _, hit := postings[id]; hit {
				out = append(out, term)
			}
		}
	}
	return out, false
}

func (idx *Index) matchParallel(query Query, id int) (matched []string, vetoed bool) {
	minusTerms := make([]string, 0, len(query.Minus))
	for t := range query.Minus {
		minusTerms = append(minusTerms, t)
	}
	plusTerms := make([]string, 0, len(query.Plus))
	for t := range query.Plus {
		plusTerms = append(plusTerms, t)
	}

	var vetoGroup errgroup.Group
	vetoHit := make([]bool, len(minusTerms))
	for i, term := range minusTerms {
		i, term := i, term
		vetoGroup.Go(func() error {
			if postings, ok := idx.inverted[term]; ok {
				if _, hit := postings[id]; hit {
					vetoHit[i] = true
				}
			}
			return nil
		})
	}
	_ = vetoGroup.Wait()
	for _, hit := range vetoHit {
		if hit {
			return nil, true
		}
	}

	hits := make([]bool, len(plusTerms))
	var matchGroup errgroup.Group
	for i, term := range plusTerms {
		i, term := i, term
		matchGroup.Go(func() error {
			if postings, ok := idx.inverted[term]; ok {
				if _, hit := postings[id]; hit {
					hits[i] = true
				}
			}
			return nil
		})
	}
	_ = matchGroup.Wait()

	out := make([]string, 0, len(plusTerms))
	for i, term := range plusTerms {
		if hits[i] {
			out = append(out, term)
		}
	}
	return out, false
}
