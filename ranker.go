package search

import (
	"math"
	"sort"

	"golang.org/x/sync/errgroup"
)

// ═══════════════════════════════════════════════════════════════════════════════
// RANKING
// ═══════════════════════════════════════════════════════════════════════════════
// FindTopDocuments scores every document matching at least one plus-term
// by TF-IDF, excludes any document matching a minus-term, filters by a
// caller predicate, and returns the top-K ordered by (relevance desc,
// rating desc), ties within eps broken by id ascending.
//
//	relevance(d) = Σ_t∈plus  tf(d,t) · idf(t)
//	idf(t)       = ln(DocumentCount() / |{d : t ∈ d}|)
//
// The parallel variant computes the same sum through a sharded
// concurrent accumulator (shardedmap.go) so that goroutines processing
// different plus-terms don't serialize on one lock, then merges and
// sorts. It returns the same ranked documents as the sequential path
// for the same inputs; relevance values can differ in the last bits,
// since the per-term contributions are summed in a different order.
// ═══════════════════════════════════════════════════════════════════════════════

// Predicate filters candidate documents during accumulation. It is
// called once per (document, matching plus-term) pair and must be pure
// and cheap: in the parallel path it is called concurrently from one
// goroutine per plus-term.
type Predicate func(id int, status Status, rating int) bool

// Policy selects the execution strategy for FindTopDocuments and
// MatchDocument. Any value other than Parallel falls back to Sequential.
type Policy int

const (
	Sequential Policy = iota
	Parallel
)

type queryOptions struct {
	predicate Predicate
	policy    Policy
}

// QueryOption configures a FindTopDocuments/MatchDocument call.
type QueryOption func(*queryOptions)

// WithStatus restricts results to documents with the given status.
// Equivalent to WithPredicate(func(_, s, _) bool { return s == status }).
func WithStatus(status Status) QueryOption {
	return WithPredicate(func(_ int, s Status, _ int) bool { return s == status })
}

// WithPredicate supplies an arbitrary (id, status, rating) filter.
func WithPredicate(p Predicate) QueryOption {
	return func(o *queryOptions) { o.predicate = p }
}

// WithPolicy selects Sequential or Parallel execution.
func WithPolicy(policy Policy) QueryOption {
	return func(o *queryOptions) { o.policy = policy }
}

func resolveOptions(opts []QueryOption) queryOptions {
	o := queryOptions{
		predicate: func(_ int, s Status, _ int) bool { return s == Actual },
		policy:    Sequential,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// FindTopDocuments parses raw, ranks candidate documents, and returns up
// to cfg.TopK of them. With no options it matches only Actual documents
// and runs sequentially; WithStatus/WithPredicate narrow the match set,
// WithPolicy(Parallel) switches to the concurrent accumulation path.
func (idx *Index) FindTopDocuments(raw string, opts ...QueryOption) ([]Document, error) {
	o := resolveOptions(opts)

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	query, err := parseQuery(idx.stopWords, raw)
	if err != nil {
		return nil, err
	}

	var docs []Document
	if o.policy == Parallel {
		docs = idx.findAllDocumentsParallel(query, o.predicate)
	} else {
		docs = idx.findAllDocumentsSequential(query, o.predicate)
	}

	sortDocuments(docs, idx.cfg.RelevanceEps)
	if len(docs) > idx.cfg.TopK {
		docs = docs[:idx.cfg.TopK]
	}
	logger.Debug().Str("query", raw).Int("result_count", len(docs)).Msg("query executed")
	return docs, nil
}

func (idx *Index) idf(term string) float64 {
	postings, ok := idx.inverted[term]
	if !ok || len(postings) == 0 {
		return 0
	}
	return math.Log(float64(idx.documentCountUnlocked()) / float64(len(postings)))
}

func (idx *Index) documentCountUnlocked() int {
	return len(idx.ids)
}

func (idx *Index) documentFor(id int) Document {
	d := idx.documents[id]
	return Document{ID: id, MeanRating: d.meanRating}
}

// findAllDocumentsSequential accumulates relevance per plus-term, then
// drops minus-term hits, then materializes the surviving documents.
func (idx *Index) findAllDocumentsSequential(query Query, predicate Predicate) []Document {
	acc := make(map[int]float64)

	for term := range query.Plus {
		postings, ok := idx.inverted[term]
		if !ok {
			continue
		}
		idf := idx.idf(term)
		for id, tf := range postings {
			doc := idx.documents[id]
			if predicate(id, doc.status, doc.meanRating) {
				acc[id] += tf * idf
			}
		}
	}

	for term := range query.Minus {
		postings, ok := idx.inverted[term]
		if !ok {
			continue
		}
		for id := range postings {
			delete(acc, id)
		}
	}

	out := make([]Document, 0, len(acc))
	for id, relevance := range acc {
		doc := idx.documentFor(id)
		doc.Relevance = relevance
		out = append(out, doc)
	}
	return out
}

// findAllDocumentsParallel is the same algorithm but routed through a
// sharded concurrent accumulator: one goroutine per plus-term during
// accumulation. Exclusion runs on the calling goroutine: the postings of
// all minus-terms are unioned into one bitmap and erased from the
// accumulator, which is then merged into an ordinary map. The result is
// sorted by the same sequential sortDocuments as the sequential path.
func (idx *Index) findAllDocumentsParallel(query Query, predicate Predicate) []Document {
	acc := newShardedMap(idx.cfg.ShardCount)

	plusTerms := make([]string, 0, len(query.Plus))
	for t := range query.Plus {
		plusTerms = append(plusTerms, t)
	}
	var g errgroup.Group
	for _, term := range plusTerms {
		term := term
		g.Go(func() error {
			postings, ok := idx.inverted[term]
			if !ok {
				return nil
			}
			idf := idx.idf(term)
			for id, tf := range postings {
				doc := idx.documents[id]
				if predicate(id, doc.status, doc.meanRating) {
					acc.Add(id, tf*idf)
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	excluded := minusTermDocBitmap(idx, query.Minus)
	if !excluded.IsEmpty() {
		iter := excluded.Iterator()
		for iter.HasNext() {
			acc.Erase(int(iter.Next()))
		}
	}

	merged := acc.BuildOrdinaryMap()
	out := make([]Document, 0, len(merged))
	for id, relevance := range merged {
		doc := idx.documentFor(id)
		doc.Relevance = relevance
		out = append(out, doc)
	}
	return out
}

// sortDocuments orders by (relevance desc, rating desc), with ties
// within eps of each other on relevance broken by id ascending. The id
// tie-break is made explicit here, rather than left to sort.Slice's
// unspecified behavior on equal keys, so that two documents with the
// same relevance and rating always come out in the same order.
func sortDocuments(docs []Document, eps float64) {
	sort.Slice(docs, func(i, j int) bool {
		a, b := docs[i], docs[j]
		if math.Abs(a.Relevance-b.Relevance) >= eps {
			return a.Relevance > b.Relevance
		}
		if a.MeanRating != b.MeanRating {
			return a.MeanRating > b.MeanRating
		}
		return a.ID < b.ID
	})
}
