// Package scoring implements the pairwise and group payoff rules.
package scoring

import (
	"github.com/lox/chinesepoker/internal/arrange"
	"github.com/lox/chinesepoker/poker"
)

// Tournament bonus values. A position win is worth the base point plus the
// winning side's category bonus; the bonus applies symmetrically to whichever
// side holds the bonus-worthy category, win or lose.
const (
	SweepBonus       = 3
	OverallBonusWin  = 18
	OverallBonusLoss = -6
)

// frontBonus returns the category bonus for the front position.
func frontBonus(c poker.Category) int {
	if c == poker.ThreeOfAKind {
		return 3
	}
	return 0
}

// middleBonus returns the category bonus for the middle position.
func middleBonus(c poker.Category) int {
	switch c {
	case poker.StraightFlush, poker.RoyalFlush:
		return 5
	case poker.FourOfAKind:
		return 4
	case poker.FullHouse:
		return 2
	default:
		return 0
	}
}

// backBonus returns the category bonus for the back position. The back
// grants no full-house bonus.
func backBonus(c poker.Category) int {
	switch c {
	case poker.StraightFlush, poker.RoyalFlush:
		return 5
	case poker.FourOfAKind:
		return 4
	default:
		return 0
	}
}

// positionDelta scores one position from a's perspective: +1/-1 base plus
// the holder's category bonus. Exact ties contribute zero.
func positionDelta(a, b poker.Score, bonus func(poker.Category) int) int {
	switch a.Compare(b) {
	case 1:
		return 1 + bonus(a.Category())
	case -1:
		return -1 - bonus(b.Category())
	default:
		return 0
	}
}

// ComparePair scores arrangement a against arrangement b. It returns the
// total from a's perspective together with the per-position deltas
// [front, middle, back]. Winning (or losing) all three positions adds (or
// subtracts) the sweep bonus.
func ComparePair(a, b arrange.Arrangement) (int, [3]int) {
	deltas := [3]int{
		positionDelta(a.FrontScore, b.FrontScore, frontBonus),
		positionDelta(a.MiddleScore, b.MiddleScore, middleBonus),
		positionDelta(a.BackScore, b.BackScore, backBonus),
	}

	total := deltas[0] + deltas[1] + deltas[2]
	if deltas[0] > 0 && deltas[1] > 0 && deltas[2] > 0 {
		total += SweepBonus
	} else if deltas[0] < 0 && deltas[1] < 0 && deltas[2] < 0 {
		total -= SweepBonus
	}
	return total, deltas
}

// OverallBonus awards +18 to a player whose front, middle and back all
// strictly beat every opponent's corresponding position, and -6 to each
// other player. Strict comparison makes domination antisymmetric, so at
// most one such player can exist; if none dominates, all bonuses are zero.
func OverallBonus(arrangements []arrange.Arrangement) []int {
	bonuses := make([]int, len(arrangements))
	for i, a := range arrangements {
		dominates := true
		for j, b := range arrangements {
			if i == j {
				continue
			}
			if a.FrontScore.Compare(b.FrontScore) <= 0 ||
				a.MiddleScore.Compare(b.MiddleScore) <= 0 ||
				a.BackScore.Compare(b.BackScore) <= 0 {
				dominates = false
				break
			}
		}
		if dominates {
			bonuses[i] = OverallBonusWin
			for j := range bonuses {
				if j != i {
					bonuses[j] = OverallBonusLoss
				}
			}
			break
		}
	}
	return bonuses
}

// ScoreGame computes each player's final payoff: the sum of all pairwise
// comparisons (zero-sum by construction) plus the overall bonus.
func ScoreGame(arrangements []arrange.Arrangement) []int {
	payoffs := make([]int, len(arrangements))
	for i := 0; i < len(arrangements); i++ {
		for j := i + 1; j < len(arrangements); j++ {
			total, _ := ComparePair(arrangements[i], arrangements[j])
			payoffs[i] += total
			payoffs[j] -= total
		}
	}

	for i, bonus := range OverallBonus(arrangements) {
		payoffs[i] += bonus
	}
	return payoffs
}
