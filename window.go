package search

import "container/list"

// ═══════════════════════════════════════════════════════════════════════════════
// RECENT-QUERY WINDOW
// ═══════════════════════════════════════════════════════════════════════════════
// RequestWindow wraps an Index with a bounded FIFO of the last
// cfg.WindowSize query outcomes, tracking how many of them were empty.
// Every AddFindRequest call runs the query through FindTopDocuments,
// pushes the outcome to the tail, and evicts from the head until the
// window is back at capacity, keeping a running count rather than
// rescanning the window on every GetNoResultRequests call.
// ═══════════════════════════════════════════════════════════════════════════════

type requestOutcome struct {
	empty   bool
	results []Document
}

// RequestWindow owns copies of its stored result lists; the index
// itself is only referenced, never copied.
type RequestWindow struct {
	index      *Index
	windowSize int
	requests   *list.List // of requestOutcome
	emptyCount int
}

// NewRequestWindow constructs a window over idx using idx's configured
// WindowSize (1440 by default).
func NewRequestWindow(idx *Index) *RequestWindow {
	return &RequestWindow{
		index:      idx,
		windowSize: idx.cfg.WindowSize,
		requests:   list.New(),
	}
}

// AddFindRequest executes raw through the index's FindTopDocuments,
// records the outcome in the window, evicts the oldest entries past
// capacity, and returns the query's results.
func (w *RequestWindow) AddFindRequest(raw string, opts ...QueryOption) ([]Document, error) {
	results, err := w.index.FindTopDocuments(raw, opts...)
	if err != nil {
		return nil, err
	}

	outcome := requestOutcome{empty: len(results) == 0, results: append([]Document(nil), results...)}
	w.requests.PushBack(outcome)
	if outcome.empty {
		w.emptyCount++
	}

	for w.requests.Len() > w.windowSize {
		front := w.requests.Front()
		w.requests.Remove(front)
		if front.Value.(requestOutcome).empty {
			w.emptyCount--
		}
	}

	return results, nil
}

// GetNoResultRequests returns the number of empty-result outcomes
// currently in the window.
func (w *RequestWindow) GetNoResultRequests() int {
	return w.emptyCount
}
