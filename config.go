package search

// Default tuning constants for a newly constructed Index.
const (
	DefaultTopK         = 5
	DefaultWindowSize   = 1440
	DefaultShardCount   = 500
	DefaultRelevanceEps = 1e-6
)

// IndexConfig holds the tunable parameters of an Index.
type IndexConfig struct {
	// TopK is the maximum number of documents FindTopDocuments returns.
	TopK int

	// WindowSize is the capacity of the recent-query window.
	WindowSize int

	// ShardCount is the number of shards in the concurrent accumulator
	// map used by the parallel ranking path.
	ShardCount int

	// RelevanceEps is the tolerance used when comparing two relevance
	// scores for the purpose of the tie-break rule.
	RelevanceEps float64
}

// Option configures an IndexConfig during construction.
type Option func(*IndexConfig)

// WithTopK overrides the default top-K result count.
func WithTopK(k int) Option {
	return func(c *IndexConfig) { c.TopK = k }
}

// WithWindowSize overrides the default recent-query window size.
func WithWindowSize(n int) Option {
	return func(c *IndexConfig) { c.WindowSize = n }
}

// WithShardCount overrides the default concurrent-map shard count.
func WithShardCount(n int) Option {
	return func(c *IndexConfig) { c.ShardCount = n }
}

// WithRelevanceEps overrides the default relevance tie-break tolerance.
func WithRelevanceEps(eps float64) Option {
	return func(c *IndexConfig) { c.RelevanceEps = eps }
}

// DefaultIndexConfig returns the default tuning: top-K = 5, window =
// 1440, shards = 500, eps = 1e-6.
func DefaultIndexConfig() IndexConfig {
	return IndexConfig{
		TopK:         DefaultTopK,
		WindowSize:   DefaultWindowSize,
		ShardCount:   DefaultShardCount,
		RelevanceEps: DefaultRelevanceEps,
	}
}
