package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildMatcherFixture(t *testing.T) *Index {
	t.Helper()
	idx, err := NewIndex(nil)
	require.NoError(t, err)
	require.NoError(t, idx.AddDocument(1, "cat dog collar", Actual, nil))
	return idx
}

func TestMatchDocument_ReturnsMatchingPlusTerms(t *testing.T) {
	idx := buildMatcherFixture(t)
	matched, status, err := idx.MatchDocument("cat fish", 1)
	require.NoError(t, err)
	assert.Equal(t, Actual, status)
	assert.ElementsMatch(t, []string{"cat"}, matched)
}

func TestMatchDocument_MinusTermVetoesEntireResult(t *testing.T) {
	idx := buildMatcherFixture(t)
	matched, _, err := idx.MatchDocument("cat -dog", 1)
	require.NoError(t, err)
	assert.Empty(t, matched, "minus-term hit must veto plus-term matches too")
}

func TestMatchDocument_UnknownIDIsOutOfRange(t *testing.T) {
	idx := buildMatcherFixture(t)
	_, _, err := idx.MatchDocument("cat", 999)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindOutOfRange))
}

func TestMatchDocument_SequentialAndParallelAgree(t *testing.T) {
	idx := buildMatcherFixture(t)

	seq, _, err := idx.MatchDocument("cat dog -collar", 1, WithPolicy(Sequential))
	require.NoError(t, err)
	par, _, err := idx.MatchDocument("cat dog -collar", 1, WithPolicy(Parallel))
	require.NoError(t, err)

	assert.ElementsMatch(t, seq, par)
}
