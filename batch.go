package search

import "golang.org/x/sync/errgroup"

// ═══════════════════════════════════════════════════════════════════════════════
// BATCH QUERY PROCESSING
// ═══════════════════════════════════════════════════════════════════════════════
// ProcessQueries runs many queries against the same index concurrently,
// one goroutine per query, preserving query order in its output slice.
// ProcessQueriesJoined additionally flattens the per-query result lists
// into one slice, still preserving query order and each query's
// intra-query rank order.
// ═══════════════════════════════════════════════════════════════════════════════

// ProcessQueries runs queries[i] through index.FindTopDocuments for every
// i in parallel and returns results in the same order as queries. A
// query that fails to parse yields a nil result for that index rather
// than aborting the batch.
func ProcessQueries(index *Index, queries []string, opts ...QueryOption) [][]Document {
	results := make([][]Document, len(queries))
	var g errgroup.Group
	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			docs, err := index.FindTopDocuments(q, opts...)
			if err == nil {
				results[i] = docs
			}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// ProcessQueriesJoined is ProcessQueries followed by a flatten that
// preserves query order and each query's internal rank order.
func ProcessQueriesJoined(index *Index, queries []string, opts ...QueryOption) []Document {
	perQuery := ProcessQueries(index, queries, opts...)
	total := 0
	for _, docs := range perQuery {
		total += len(docs)
	}
	joined := make([]Document, 0, total)
	for _, docs := range perQuery {
		joined = append(joined, docs...)
	}
	return joined
}
