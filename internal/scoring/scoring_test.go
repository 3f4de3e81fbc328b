package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/chinesepoker/internal/arrange"
	"github.com/lox/chinesepoker/poker"
)

// arr builds a bare arrangement carrying only scores; payoff logic never
// touches the cards.
func arr(front, middle, back poker.Score) arrange.Arrangement {
	return arrange.Arrangement{FrontScore: front, MiddleScore: middle, BackScore: back}
}

func TestComparePairBasePoints(t *testing.T) {
	a := arr(
		poker.NewScore(poker.HighCard, 13, 9, 2),
		poker.NewScore(poker.Pair, 10, 8, 3, 2),
		poker.NewScore(poker.Flush, 14, 10, 8, 4, 2),
	)
	b := arr(
		poker.NewScore(poker.HighCard, 12, 9, 2),
		poker.NewScore(poker.Pair, 11, 8, 3, 2),
		poker.NewScore(poker.Flush, 14, 10, 8, 4, 2),
	)

	total, deltas := ComparePair(a, b)
	assert.Equal(t, [3]int{1, -1, 0}, deltas)
	assert.Equal(t, 0, total)
}

func TestComparePairAntisymmetric(t *testing.T) {
	a := arr(
		poker.NewScore(poker.ThreeOfAKind, 5),
		poker.NewScore(poker.FullHouse, 9, 2),
		poker.NewScore(poker.FourOfAKind, 11, 3),
	)
	b := arr(
		poker.NewScore(poker.Pair, 14, 13),
		poker.NewScore(poker.Straight, 9),
		poker.NewScore(poker.Flush, 14, 12, 9, 5, 3),
	)

	ab, _ := ComparePair(a, b)
	ba, _ := ComparePair(b, a)
	assert.Equal(t, ab, -ba)
}

func TestComparePairCategoryBonuses(t *testing.T) {
	tests := []struct {
		name     string
		a, b     arrange.Arrangement
		expected [3]int
	}{
		{
			name: "front trips bonus",
			a: arr(
				poker.NewScore(poker.ThreeOfAKind, 5),
				poker.NewScore(poker.Pair, 10, 8, 3, 2),
				poker.NewScore(poker.Pair, 11, 8, 3, 2),
			),
			b: arr(
				poker.NewScore(poker.Pair, 14, 13),
				poker.NewScore(poker.TwoPair, 10, 8, 3),
				poker.NewScore(poker.TwoPair, 11, 8, 3),
			),
			expected: [3]int{1 + 3, -1, -1},
		},
		{
			name: "middle full house and quads bonuses",
			a: arr(
				poker.NewScore(poker.HighCard, 13, 9, 2),
				poker.NewScore(poker.FullHouse, 9, 2),
				poker.NewScore(poker.FullHouse, 10, 3),
			),
			b: arr(
				poker.NewScore(poker.HighCard, 12, 9, 2),
				poker.NewScore(poker.Straight, 9),
				poker.NewScore(poker.FourOfAKind, 4, 2),
			),
			// Middle full house pays +2; back full house pays nothing and
			// loses to quads, which charge their +4 to the loser.
			expected: [3]int{1, 1 + 2, -1 - 4},
		},
		{
			name: "straight flush bonus charged to loser",
			a: arr(
				poker.NewScore(poker.Pair, 9, 4),
				poker.NewScore(poker.Flush, 14, 12, 9, 5, 3),
				poker.NewScore(poker.StraightFlush, 9),
			),
			b: arr(
				poker.NewScore(poker.Pair, 9, 5),
				poker.NewScore(poker.StraightFlush, 8),
				poker.NewScore(poker.RoyalFlush),
			),
			expected: [3]int{-1, -1 - 5, -1 - 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, deltas := ComparePair(tt.a, tt.b)
			assert.Equal(t, tt.expected, deltas)
		})
	}
}

func TestComparePairSweep(t *testing.T) {
	strong := arr(
		poker.NewScore(poker.Pair, 14, 13),
		poker.NewScore(poker.Straight, 10),
		poker.NewScore(poker.Flush, 14, 12, 9, 5, 3),
	)
	weak := arr(
		poker.NewScore(poker.HighCard, 12, 9, 2),
		poker.NewScore(poker.Pair, 10, 8, 3, 2),
		poker.NewScore(poker.TwoPair, 11, 8, 3),
	)

	total, deltas := ComparePair(strong, weak)
	assert.Equal(t, [3]int{1, 1, 1}, deltas)
	assert.Equal(t, 3+SweepBonus, total)

	total, _ = ComparePair(weak, strong)
	assert.Equal(t, -(3 + SweepBonus), total)
}

func TestComparePairTieBlocksSweep(t *testing.T) {
	a := arr(
		poker.NewScore(poker.Pair, 14, 13),
		poker.NewScore(poker.Straight, 10),
		poker.NewScore(poker.Flush, 14, 12, 9, 5, 3),
	)
	b := arr(
		poker.NewScore(poker.Pair, 14, 13), // exact tie in front
		poker.NewScore(poker.Pair, 10, 8, 3, 2),
		poker.NewScore(poker.TwoPair, 11, 8, 3),
	)

	total, deltas := ComparePair(a, b)
	assert.Equal(t, [3]int{0, 1, 1}, deltas)
	assert.Equal(t, 2, total)
}

func fourPlayers() []arrange.Arrangement {
	return []arrange.Arrangement{
		arr(
			poker.NewScore(poker.ThreeOfAKind, 9),
			poker.NewScore(poker.FullHouse, 9, 2),
			poker.NewScore(poker.FourOfAKind, 11, 3),
		),
		arr(
			poker.NewScore(poker.Pair, 14, 13),
			poker.NewScore(poker.Straight, 9),
			poker.NewScore(poker.Flush, 14, 12, 9, 5, 3),
		),
		arr(
			poker.NewScore(poker.Pair, 8, 4),
			poker.NewScore(poker.TwoPair, 10, 8, 3),
			poker.NewScore(poker.Straight, 13),
		),
		arr(
			poker.NewScore(poker.HighCard, 13, 9, 2),
			poker.NewScore(poker.Pair, 10, 8, 3, 2),
			poker.NewScore(poker.TwoPair, 11, 8, 3),
		),
	}
}

func TestOverallBonusDomination(t *testing.T) {
	bonuses := OverallBonus(fourPlayers())
	assert.Equal(t, []int{OverallBonusWin, OverallBonusLoss, OverallBonusLoss, OverallBonusLoss}, bonuses)
}

func TestOverallBonusTieInOnePositionBlocks(t *testing.T) {
	players := fourPlayers()
	// Tie player 1's front with the would-be dominator; strict domination
	// fails and nobody collects.
	players[1].FrontScore = players[0].FrontScore
	bonuses := OverallBonus(players)
	assert.Equal(t, []int{0, 0, 0, 0}, bonuses)
}

func TestOverallBonusNoDominator(t *testing.T) {
	players := fourPlayers()
	// Give player 1 the best back so no single player dominates everywhere.
	players[1].BackScore = poker.NewScore(poker.RoyalFlush)
	bonuses := OverallBonus(players)
	assert.Equal(t, []int{0, 0, 0, 0}, bonuses)
}

func TestScoreGameZeroSum(t *testing.T) {
	payoffs := ScoreGame(fourPlayers())
	require.Len(t, payoffs, 4)

	sum := 0
	for _, p := range payoffs {
		sum += p
	}
	assert.Equal(t, 0, sum)
	// The dominator's +18 against three -6 losses keeps the ledger balanced.
	assert.Positive(t, payoffs[0])
}

func TestScoreGameZeroSumWithoutBonus(t *testing.T) {
	players := fourPlayers()
	players[1].BackScore = poker.NewScore(poker.RoyalFlush)

	payoffs := ScoreGame(players)
	sum := 0
	for _, p := range payoffs {
		sum += p
	}
	assert.Equal(t, 0, sum)
}

func TestScoreGameIdenticalArrangementsAllZero(t *testing.T) {
	a := fourPlayers()[0]
	payoffs := ScoreGame([]arrange.Arrangement{a, a, a, a})
	assert.Equal(t, []int{0, 0, 0, 0}, payoffs)
}
