package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHand(t *testing.T, s string) []Card {
	t.Helper()
	cards, err := ParseHand(s)
	require.NoError(t, err)
	return cards
}

func TestEvaluateFive(t *testing.T) {
	tests := []struct {
		name     string
		cards    string
		category Category
		expected Score
	}{
		{
			name:     "royal flush",
			cards:    "AS KS QS JS 10S",
			category: RoyalFlush,
			expected: NewScore(RoyalFlush),
		},
		{
			name:     "straight flush six high",
			cards:    "2H 3H 4H 5H 6H",
			category: StraightFlush,
			expected: NewScore(StraightFlush, 6),
		},
		{
			name:     "steel wheel is five high not royal",
			cards:    "AS 2S 3S 4S 5S",
			category: StraightFlush,
			expected: NewScore(StraightFlush, 5),
		},
		{
			name:     "four of a kind with kicker",
			cards:    "AC AD AH AS 2C",
			category: FourOfAKind,
			expected: NewScore(FourOfAKind, 14, 2),
		},
		{
			name:     "full house sevens over twos",
			cards:    "7C 7D 7H 2S 2C",
			category: FullHouse,
			expected: NewScore(FullHouse, 7, 2),
		},
		{
			name:     "flush ranks descending",
			cards:    "AS KS QS 9S 2S",
			category: Flush,
			expected: NewScore(Flush, 14, 13, 12, 9, 2),
		},
		{
			name:     "wheel straight is five high",
			cards:    "AH 2D 3C 4S 5H",
			category: Straight,
			expected: NewScore(Straight, 5),
		},
		{
			name:     "ace high straight",
			cards:    "10C JD QH KS AC",
			category: Straight,
			expected: NewScore(Straight, 14),
		},
		{
			name:     "three of a kind with kickers",
			cards:    "9C 9D 9H KS 4C",
			category: ThreeOfAKind,
			expected: NewScore(ThreeOfAKind, 9, 13, 4),
		},
		{
			name:     "two pair with kicker",
			cards:    "JC JD 4H 4S AC",
			category: TwoPair,
			expected: NewScore(TwoPair, 11, 4, 14),
		},
		{
			name:     "one pair with kickers",
			cards:    "8C 8D KH 7S 3C",
			category: Pair,
			expected: NewScore(Pair, 8, 13, 7, 3),
		},
		{
			name:     "high card",
			cards:    "AC JD 9H 6S 2C",
			category: HighCard,
			expected: NewScore(HighCard, 14, 11, 9, 6, 2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := EvaluateFive(mustHand(t, tt.cards))
			assert.Equal(t, tt.category, score.Category())
			assert.Equal(t, tt.expected, score)
		})
	}
}

func TestEvaluateThree(t *testing.T) {
	tests := []struct {
		name     string
		cards    string
		category Category
		expected Score
	}{
		{
			name:     "trips use the five-card category number",
			cards:    "AC AD AH",
			category: ThreeOfAKind,
			expected: NewScore(ThreeOfAKind, 14),
		},
		{
			name:     "pair of twos with five kicker",
			cards:    "2C 2D 5H",
			category: Pair,
			expected: NewScore(Pair, 2, 5),
		},
		{
			name:     "high card descending",
			cards:    "2C 7D 9H",
			category: HighCard,
			expected: NewScore(HighCard, 9, 7, 2),
		},
		{
			name:     "three-card straight does not count",
			cards:    "3C 4D 5H",
			category: HighCard,
			expected: NewScore(HighCard, 5, 4, 3),
		},
		{
			name:     "three-card flush does not count",
			cards:    "2S 8S KS",
			category: HighCard,
			expected: NewScore(HighCard, 13, 8, 2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := EvaluateThree(mustHand(t, tt.cards))
			assert.Equal(t, tt.category, score.Category())
			assert.Equal(t, tt.expected, score)
		})
	}
}

// Identical rank composition across suits must tie exactly: the payoff model
// depends on equality, not just ordering.
func TestEvaluateSuitIndependentTies(t *testing.T) {
	a := EvaluateFive(mustHand(t, "AC KD QH JS 9C"))
	b := EvaluateFive(mustHand(t, "AD KH QS JC 9D"))
	assert.Equal(t, a, b)
	assert.Equal(t, 0, a.Compare(b))
}

func TestEvaluateOrdering(t *testing.T) {
	// Ascending strength; every later hand must beat every earlier one.
	hands := []string{
		"2C 7D 9H 10S KC",
		"8C 8D KH 7S 3C",
		"JC JD 4H 4S AC",
		"9C 9D 9H KS 4C",
		"AH 2D 3C 4S 5H",
		"10C JD QH KS AC",
		"AS KS QS 9S 2S",
		"7C 7D 7H 2S 2C",
		"AC AD AH AS 2C",
		"AS 2S 3S 4S 5S",
		"AS KS QS JS 10S",
	}
	scores := make([]Score, len(hands))
	for i, h := range hands {
		scores[i] = EvaluateFive(mustHand(t, h))
	}
	for i := 1; i < len(scores); i++ {
		assert.Equal(t, 1, scores[i].Compare(scores[i-1]),
			"%s should beat %s", hands[i], hands[i-1])
	}
}

func TestEvaluatePanicsOnBadArity(t *testing.T) {
	assert.Panics(t, func() {
		Evaluate(mustHand(t, "AC KD QH JS"))
	})
	assert.Panics(t, func() {
		EvaluateFive(mustHand(t, "AC KD QH"))
	})
	assert.Panics(t, func() {
		EvaluateThree(mustHand(t, "AC KD QH JS 9C"))
	})
}
