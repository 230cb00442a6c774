package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuery_PlusAndMinus(t *testing.T) {
	stop := map[string]struct{}{}
	q, err := parseQuery(stop, "cat -dog collar")
	require.NoError(t, err)

	assert.Contains(t, q.Plus, "cat")
	assert.Contains(t, q.Plus, "collar")
	assert.Contains(t, q.Minus, "dog")
	assert.NotContains(t, q.Plus, "dog")
}

func TestParseQuery_EmptyMinus(t *testing.T) {
	_, err := parseQuery(map[string]struct{}{}, "cat - dog")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindInvalidQuery))
}

func TestParseQuery_DoubledMinus(t *testing.T) {
	_, err := parseQuery(map[string]struct{}{}, "cat --dog")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindInvalidQuery))
}

func TestParseQuery_ControlByteRejected(t *testing.T) {
	_, err := parseQuery(map[string]struct{}{}, "cat\x01 dog")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindInvalidQuery))
}

func TestParseQuery_StopWordsAppliedAfterMinusStrip(t *testing.T) {
	stop := map[string]struct{}{"dog": {}}
	q, err := parseQuery(stop, "cat -dog")
	require.NoError(t, err)

	assert.Contains(t, q.Plus, "cat")
	assert.NotContains(t, q.Minus, "dog")
	assert.Empty(t, q.Minus)
}

func TestParseQuery_TermInBothSets(t *testing.T) {
	q, err := parseQuery(map[string]struct{}{}, "cat -cat")
	require.NoError(t, err)
	assert.Contains(t, q.Plus, "cat")
	assert.Contains(t, q.Minus, "cat")
}
