// Package ev estimates the long-run value of an arrangement from win-rate
// tables derived from a combination index.
package ev

import (
	"sort"

	"github.com/lox/chinesepoker/internal/arrange"
	"github.com/lox/chinesepoker/internal/index"
	"github.com/lox/chinesepoker/poker"
)

// WinRates maps each distinct score of one arity to the probability that a
// uniformly random same-arity combination scores strictly lower, with half
// credit for ties. Built once from an index, read-only afterwards.
type WinRates struct {
	rates map[poker.Score]float64
}

// NewWinRates computes the win-rate table for every score in the index.
func NewWinRates(ix *index.Index) *WinRates {
	counts := ix.ScoreCounts()

	scores := make([]poker.Score, 0, len(counts))
	total := 0
	for s, n := range counts {
		scores = append(scores, s)
		total += n
	}
	sort.Slice(scores, func(i, j int) bool { return scores[i] < scores[j] })

	rates := make(map[poker.Score]float64, len(scores))
	below := 0
	for _, s := range scores {
		n := counts[s]
		rates[s] = (float64(below) + 0.5*float64(n)) / float64(total)
		below += n
	}
	return &WinRates{rates: rates}
}

// Rate returns the win rate for a score, 0 for unknown scores.
func (w *WinRates) Rate(s poker.Score) float64 {
	return w.rates[s]
}

// Estimator ranks arrangements by expected value against three opponents
// holding uniformly random combinations. Front win rates come from the
// 3-card table; middle and back share the 5-card table.
type Estimator struct {
	front *WinRates
	five  *WinRates
}

// NewEstimator builds win-rate tables from both indices.
func NewEstimator(idx3, idx5 *index.Index) *Estimator {
	return &Estimator{
		front: NewWinRates(idx3),
		five:  NewWinRates(idx5),
	}
}

// Value estimates the expected payoff of an arrangement: per position and
// opponent, the win rate earns the base point plus the holder's category
// bonus, and the complement loses the base point. Opponent bonuses are not
// modelled; this is a ranking heuristic, not the exact game value.
func (e *Estimator) Value(a arrange.Arrangement) float64 {
	const opponents = 3
	front := positionValue(e.front.Rate(a.FrontScore), frontBonus(a.FrontScore.Category()))
	middle := positionValue(e.five.Rate(a.MiddleScore), middleBonus(a.MiddleScore.Category()))
	back := positionValue(e.five.Rate(a.BackScore), backBonus(a.BackScore.Category()))
	return opponents * (front + middle + back)
}

// Best returns the index of the arrangement with the highest estimated
// value, ties broken by first encountered.
func (e *Estimator) Best(arrangements []arrange.Arrangement) int {
	best := 0
	bestValue := 0.0
	for i, a := range arrangements {
		v := e.Value(a)
		if i == 0 || v > bestValue {
			best = i
			bestValue = v
		}
	}
	return best
}

func positionValue(rate float64, bonus int) float64 {
	return rate*(1+float64(bonus)) - (1 - rate)
}

// Bonus weights mirror the payoff model's category bonuses.
func frontBonus(c poker.Category) int {
	if c == poker.ThreeOfAKind {
		return 3
	}
	return 0
}

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
