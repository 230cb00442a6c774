package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func buildBatchFixture(t *testing.T) *Index {
	t.Helper()
	idx, err := NewIndex(nil)
	require.NoError(t, err)
	require.NoError(t, idx.AddDocument(1, "cat collar", Actual, nil))
	require.NoError(t, idx.AddDocument(2, "dog leash", Actual, nil))
	return idx
}

func TestProcessQueries_PreservesOrder(t *testing.T) {
	idx := buildBatchFixture(t)
	queries := []string{"cat", "dog", "giraffe"}

	results := ProcessQueries(idx, queries)
	require.Len(t, results, 3)

	require.NotEmpty(t, results[0])
	require.Equal(t, 1, results[0][0].ID)
	require.NotEmpty(t, results[1])
	require.Equal(t, 2, results[1][0].ID)
	require.Empty(t, results[2])
}

func TestProcessQueries_MalformedQueryYieldsNilNotAbort(t *testing.T) {
	idx := buildBatchFixture(t)
	queries := []string{"cat", "--bad", "dog"}

	results := ProcessQueries(idx, queries)
	require.Len(t, results, 3)
	require.NotEmpty(t, results[0])
	require.Nil(t, results[1])
	require.NotEmpty(t, results[2])
}

func TestProcessQueriesJoined_FlattensPreservingOrder(t *testing.T) {
	idx := buildBatchFixture(t)
	queries := []string{"cat", "dog"}

	joined := ProcessQueriesJoined(idx, queries)
	require.Len(t, joined, 2)
	require.Equal(t, 1, joined[0].ID)
	require.Equal(t, 2, joined[1].ID)
}
