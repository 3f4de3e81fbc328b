package arrange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/chinesepoker/internal/index"
	"github.com/lox/chinesepoker/poker"
)

func mustHand(t *testing.T, s string) []poker.Card {
	t.Helper()
	cards, err := poker.ParseHand(s)
	require.NoError(t, err)
	return cards
}

func handIndices(t *testing.T, hand []poker.Card) (*index.Index, *index.Index) {
	t.Helper()
	idx3, err := index.BuildForCards(hand, 3)
	require.NoError(t, err)
	idx5, err := index.BuildForCards(hand, 5)
	require.NoError(t, err)
	return idx3, idx5
}

func TestEnumerateInvariants(t *testing.T) {
	hand := mustHand(t, "AS KS QS JS 10S 9H 8H 7H 6H 5H 4C 3C 2C")
	idx3, idx5 := handIndices(t, hand)

	arrangements, err := Enumerate(hand, idx3, idx5)
	require.NoError(t, err)
	require.NotEmpty(t, arrangements)

	handSet := poker.NewCardSet(hand)
	for _, a := range arrangements {
		require.Len(t, a.Front, 3)
		require.Len(t, a.Middle, 5)
		require.Len(t, a.Back, 5)

		// The three rows partition the hand exactly.
		all := append(append(append([]poker.Card{}, a.Front...), a.Middle...), a.Back...)
		assert.Equal(t, handSet, poker.NewCardSet(all))

		// Front strictly below middle, middle no greater than back.
		assert.Equal(t, 1, a.MiddleScore.Compare(a.FrontScore))
		assert.LessOrEqual(t, a.MiddleScore.Compare(a.BackScore), 0)

		// Stored scores match direct evaluation.
		assert.Equal(t, poker.Evaluate(a.Front), a.FrontScore)
		assert.Equal(t, poker.Evaluate(a.Middle), a.MiddleScore)
		assert.Equal(t, poker.Evaluate(a.Back), a.BackScore)
	}
}

func TestEnumerateDeterministicOrder(t *testing.T) {
	hand := mustHand(t, "2C 3D 4H 5S 7C 8D 9H 10S JC QD KH AS 6C")
	idx3, idx5 := handIndices(t, hand)

	a, err := Enumerate(hand, idx3, idx5)
	require.NoError(t, err)
	b, err := Enumerate(hand, idx3, idx5)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	// The order is canonical over the ID-sorted hand, not input order.
	shuffled := mustHand(t, "6C AS KH QD JC 10S 9H 8D 7C 5S 4H 3D 2C")
	c, err := Enumerate(shuffled, idx3, idx5)
	require.NoError(t, err)
	assert.Equal(t, a, c)
}

func TestEnumerateWrongHandSize(t *testing.T) {
	hand := mustHand(t, "AS KS QS")
	idx3, idx5 := handIndices(t, mustHand(t, "AS KS QS JS 10S 9H 8H 7H 6H 5H 4C 3C 2C"))
	_, err := Enumerate(hand, idx3, idx5)
	require.Error(t, err)
}

func TestEnumerateSkipsMissingCombinations(t *testing.T) {
	hand := mustHand(t, "AS KS QS JS 10S 9H 8H 7H 6H 5H 4C 3C 2C")
	idx3, _ := handIndices(t, hand)

	// A 5-card index built over a different pool covers none of this hand's
	// subsets, so every candidate is skipped rather than failing.
	other, err := index.BuildForCards(mustHand(t, "2D 3H 4S 5C 6D 7H 8S 9C 10D JH QS KC AD"), 5)
	require.NoError(t, err)

	arrangements, err := Enumerate(hand, idx3, other)
	require.NoError(t, err)
	assert.Empty(t, arrangements)
}

// Quad aces can never legally sit in front: a 3-card front holds at most
// trips, and trips in front require the remaining ace to weaken middle/back
// without breaking the ordering.
func TestEnumerateOrderingFiltersIllegalSplits(t *testing.T) {
	hand := mustHand(t, "AC AD AH AS KC KD KH QC QD JC JD 10C 9C")
	idx3, idx5 := handIndices(t, hand)

	arrangements, err := Enumerate(hand, idx3, idx5)
	require.NoError(t, err)
	require.NotEmpty(t, arrangements)

	for _, a := range arrangements {
		// No arrangement may place a stronger hand in an earlier row.
		assert.NotEqual(t, -1, a.BackScore.Compare(a.MiddleScore))
		assert.Equal(t, -1, a.FrontScore.Compare(a.MiddleScore))
	}
}
