package search

import (
	"container/list"
	"testing"

	"github.com/stretchr/testify/require"
)

// S6: the recent-query window tracks how many of its last WindowSize
// outcomes returned no results, evicting older outcomes once past
// capacity and keeping the count consistent with what's still inside.
func TestRequestWindow_TracksEmptyCount(t *testing.T) {
	idx, err := NewIndex(nil)
	require.NoError(t, err)
	require.NoError(t, idx.AddDocument(1, "cat dog", Actual, nil))

	w := NewRequestWindow(idx)

	_, err = w.AddFindRequest("cat")
	require.NoError(t, err)
	if got := w.GetNoResultRequests(); got != 0 {
		t.Fatalf("GetNoResultRequests() = %d, want 0", got)
	}

	_, err = w.AddFindRequest("giraffe")
	require.NoError(t, err)
	if got := w.GetNoResultRequests(); got != 1 {
		t.Fatalf("GetNoResultRequests() = %d, want 1", got)
	}

	_, err = w.AddFindRequest("zebra")
	require.NoError(t, err)
	if got := w.GetNoResultRequests(); got != 2 {
		t.Fatalf("GetNoResultRequests() = %d, want 2", got)
	}
}

func TestRequestWindow_EvictsPastCapacity(t *testing.T) {
	idx, err := NewIndex(nil)
	require.NoError(t, err)
	require.NoError(t, idx.AddDocument(1, "cat", Actual, nil))

	w := &RequestWindow{index: idx, windowSize: 2, requests: list.New()}

	_, err = w.AddFindRequest("giraffe") // empty, window: [empty]
	require.NoError(t, err)
	_, err = w.AddFindRequest("giraffe") // empty, window: [empty, empty]
	require.NoError(t, err)
	_, err = w.AddFindRequest("cat") // non-empty, evicts oldest empty, window: [empty, hit]
	require.NoError(t, err)

	if got := w.GetNoResultRequests(); got != 1 {
		t.Fatalf("GetNoResultRequests() = %d, want 1 after eviction", got)
	}
}

func TestRequestWindow_StoresIndependentResultCopies(t *testing.T) {
	idx, err := NewIndex(nil)
	require.NoError(t, err)
	require.NoError(t, idx.AddDocument(1, "cat", Actual, nil))

	w := NewRequestWindow(idx)
	results, err := w.AddFindRequest("cat")
	require.NoError(t, err)
	require.NotEmpty(t, results)

	results[0].ID = -1 // mutate caller's copy
	front := w.requests.Front().Value.(requestOutcome)
	if front.results[0].ID == -1 {
		t.Fatal("window's stored outcome aliases the caller's slice")
	}
}
