// Package statistics aggregates results across many solved games.
package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/chinesepoker/internal/equilibrium"
)

// GameResult captures the outcome of one solved game.
type GameResult struct {
	Seed       int64 // RNG seed for this game (for replay)
	Payoffs    [equilibrium.NumPlayers]float64
	Outcome    equilibrium.Outcome
	Iterations int
	Candidates [equilibrium.NumPlayers]int // legal arrangement count per player
	Redeals    int                         // hands re-dealt before a playable game
}

// Statistics tracks aggregate simulation results. Payoffs are zero-sum per
// game, so the running total doubles as a ledger check.
type Statistics struct {
	Games        int
	Converged    int
	Cycles       int
	LimitReached int
	Redeals      int

	SumIterations int
	MaxIterations int

	SumCandidates int
	MaxCandidates int

	// Winner payoffs per game, for distribution queries.
	WinnerPayoffs []float64
	SumPayoffs    float64 // across all seats; should stay ~0
	SumSeat       [equilibrium.NumPlayers]float64
}

// Add incorporates a new game result into the statistics
func (s *Statistics) Add(result GameResult) {
	s.Games++
	s.Redeals += result.Redeals

	switch result.Outcome {
	case equilibrium.Converged:
		s.Converged++
	case equilibrium.CycleResolved:
		s.Cycles++
	case equilibrium.IterationLimitReached:
		s.LimitReached++
	}

	s.SumIterations += result.Iterations
	if result.Iterations > s.MaxIterations {
		s.MaxIterations = result.Iterations
	}

	winner := math.Inf(-1)
	for seat, p := range result.Payoffs {
		s.SumPayoffs += p
		s.SumSeat[seat] += p
		winner = math.Max(winner, p)
	}
	s.WinnerPayoffs = append(s.WinnerPayoffs, winner)

	for _, n := range result.Candidates {
		s.SumCandidates += n
		if n > s.MaxCandidates {
			s.MaxCandidates = n
		}
	}
}

// ConvergenceRate returns the fraction of games that reached equilibrium.
func (s *Statistics) ConvergenceRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Converged) / float64(s.Games)
}

// MeanIterations returns the average solver rounds per game.
func (s *Statistics) MeanIterations() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.SumIterations) / float64(s.Games)
}

// MeanCandidates returns the average legal arrangement count per hand.
func (s *Statistics) MeanCandidates() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.SumCandidates) / float64(s.Games*equilibrium.NumPlayers)
}

// MeanWinnerPayoff returns the average winning payoff per game.
func (s *Statistics) MeanWinnerPayoff() float64 {
	if len(s.WinnerPayoffs) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range s.WinnerPayoffs {
		sum += v
	}
	return sum / float64(len(s.WinnerPayoffs))
}

// WinnerPayoffStdDev returns the sample standard deviation of winning payoffs.
func (s *Statistics) WinnerPayoffStdDev() float64 {
	n := len(s.WinnerPayoffs)
	if n < 2 {
		return 0
	}
	mean := s.MeanWinnerPayoff()
	sum := 0.0
	for _, v := range s.WinnerPayoffs {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(n-1))
}

// Percentile returns the winner payoff at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.WinnerPayoffs) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.WinnerPayoffs))
	copy(sorted, s.WinnerPayoffs)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Validate performs consistency checks on the accumulated data.
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}
	if got := s.Converged + s.Cycles + s.LimitReached; got != s.Games {
		return fmt.Errorf("outcome counts (%d) do not match games (%d)", got, s.Games)
	}
	if len(s.WinnerPayoffs) != s.Games {
		return fmt.Errorf("winner payoffs length (%d) does not match games (%d)", len(s.WinnerPayoffs), s.Games)
	}
	// Payoffs are zero-sum per game; allow float accumulation slack.
	if math.Abs(s.SumPayoffs) > 1e-6*float64(s.Games) {
		return fmt.Errorf("payoff ledger not zero-sum: %.6f", s.SumPayoffs)
	}
	return nil
}
