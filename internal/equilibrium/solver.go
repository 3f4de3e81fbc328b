// Package equilibrium approximates a four-player Nash equilibrium over
// fixed candidate arrangements using best-response dynamics.
package equilibrium

import (
	"errors"
	"fmt"
	"math"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/chinesepoker/internal/arrange"
	"github.com/lox/chinesepoker/internal/index"
	"github.com/lox/chinesepoker/internal/scoring"
	"github.com/lox/chinesepoker/poker"
)

// NumPlayers is fixed: the payoff model and cache key assume a four-seat game.
const NumPlayers = 4

// improvementTolerance bounds what counts as a payoff improvement between
// rounds; anything smaller is treated as converged.
const improvementTolerance = 1e-6

// ErrNoArrangements signals a dealt hand with zero legal splits. The game
// cannot be constructed; callers must re-deal or abort.
var ErrNoArrangements = errors.New("no legal arrangements for hand")

// Outcome is the terminal state of a solver run.
type Outcome int

const (
	// Converged means no player can improve by unilateral deviation.
	Converged Outcome = iota
	// CycleResolved means the dynamics revisited a profile or oscillated and
	// a representative profile was chosen from the cycle window.
	CycleResolved
	// IterationLimitReached means the budget ran out; the last profile is
	// returned as a best-effort result. This is a defined outcome, not an
	// error.
	IterationLimitReached
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Converged:
		return "converged"
	case CycleResolved:
		return "cycle-resolved"
	case IterationLimitReached:
		return "iteration-limit"
	default:
		return "unknown"
	}
}

// PlayerState holds one player's dealt hand, candidate arrangements, current
// strategy index and realized payoffs. Strategy and Payoffs are mutated only
// by the solver.
type PlayerState struct {
	Hand         []poker.Card
	Arrangements []arrange.Arrangement
	Strategy     int
	Payoffs      []float64
}

// Current returns the currently played arrangement.
func (p *PlayerState) Current() arrange.Arrangement {
	return p.Arrangements[p.Strategy]
}

// Profile is the tuple of all players' selected arrangement indices.
type Profile [NumPlayers]int

type record struct {
	profile Profile
	payoffs [NumPlayers]float64
}

// Result is the definite outcome of a solver run.
type Result struct {
	Outcome    Outcome
	Profile    Profile
	Payoffs    [NumPlayers]float64
	Iterations int
	Cycle      *CycleStats // populated only for CycleResolved
}

// Game owns one equilibrium search: four player states, the payoff cache and
// the iteration history. It is not safe for concurrent use; independent games
// may run in parallel sharing only the read-only indices.
type Game struct {
	players [NumPlayers]*PlayerState
	cache   map[Profile][NumPlayers]float64
	history []record
	logger  *log.Logger
}

// NewGame enumerates candidate arrangements for four dealt hands and picks a
// random initial strategy per player from rng. A hand with zero legal splits
// yields ErrNoArrangements.
func NewGame(hands [][]poker.Card, idx3, idx5 *index.Index, rng *rand.Rand, logger *log.Logger) (*Game, error) {
	if len(hands) != NumPlayers {
		return nil, fmt.Errorf("equilibrium: need exactly %d hands, got %d", NumPlayers, len(hands))
	}
	if logger == nil {
		logger = log.Default()
	}

	g := &Game{
		cache:  make(map[Profile][NumPlayers]float64),
		logger: logger,
	}
	for i, hand := range hands {
		arrangements, err := arrange.Enumerate(hand, idx3, idx5)
		if err != nil {
			return nil, err
		}
		if len(arrangements) == 0 {
			return nil, fmt.Errorf("player %d: %w", i, ErrNoArrangements)
		}
		g.players[i] = &PlayerState{
			Hand:         hand,
			Arrangements: arrangements,
			Strategy:     rng.IntN(len(arrangements)),
		}
	}
	return g, nil
}

// Player returns the state for seat i.
func (g *Game) Player(i int) *PlayerState {
	return g.players[i]
}

// CurrentProfile returns each player's selected strategy index.
func (g *Game) CurrentProfile() Profile {
	var p Profile
	for i, player := range g.players {
		p[i] = player.Strategy
	}
	return p
}

// computePayoffs scores the profile via all six pairwise comparisons plus
// the overall bonus, memoized by the strategy tuple. Best-response search
// revisits profiles constantly, so the cache carries most of the work.
func (g *Game) computePayoffs(profile Profile) [NumPlayers]float64 {
	if payoffs, ok := g.cache[profile]; ok {
		return payoffs
	}

	arrangements := make([]arrange.Arrangement, NumPlayers)
	for i, player := range g.players {
		arrangements[i] = player.Arrangements[profile[i]]
	}

	var payoffs [NumPlayers]float64
	for i, score := range scoring.ScoreGame(arrangements) {
		payoffs[i] = float64(score)
	}
	g.cache[profile] = payoffs
	return payoffs
}

// bestResponse finds the candidate maximizing player's payoff with all other
// strategies fixed at the given profile. The scan starts from negative
// infinity so ties always resolve to the lowest candidate index, regardless
// of the player's current strategy.
func (g *Game) bestResponse(player int, profile Profile) (int, float64) {
	best := 0
	bestScore := math.Inf(-1)

	trial := profile
	for i := range g.players[player].Arrangements {
		trial[player] = i
		if score := g.computePayoffs(trial)[player]; score > bestScore {
			bestScore = score
			best = i
		}
	}
	return best, bestScore
}

// Solve runs best-response dynamics until convergence, a detected cycle, or
// the iteration budget. It always returns a definite profile and payoff
// vector; non-convergence is an outcome, never an error.
//
// Each round all four best responses are computed against the start-of-round
// profile and applied together, so the trajectory does not depend on player
// update order.
func (g *Game) Solve(maxIterations int) Result {
	profile := g.CurrentProfile()
	last := Result{
		Outcome: IterationLimitReached,
		Profile: profile,
		Payoffs: g.computePayoffs(profile),
	}
	for iteration := 0; iteration < maxIterations; iteration++ {
		profile := g.CurrentProfile()
		payoffs := g.computePayoffs(profile)
		g.history = append(g.history, record{profile: profile, payoffs: payoffs})

		if start, length, ok := g.detectCycle(); ok {
			stats := g.analyzeCycle(start, length)
			chosen := g.bestProfileInCycle(start, length)
			g.adopt(chosen.profile, chosen.payoffs)
			g.logger.Debug("cycle resolved",
				"length", length,
				"profiles", stats.UniqueProfiles,
				"payoffs", chosen.payoffs)
			return Result{
				Outcome:    CycleResolved,
				Profile:    chosen.profile,
				Payoffs:    chosen.payoffs,
				Iterations: iteration + 1,
				Cycle:      stats,
			}
		}

		var next Profile
		for i := range g.players {
			next[i], _ = g.bestResponse(i, profile)
		}
		nextPayoffs := g.computePayoffs(next)
		g.adopt(next, nextPayoffs)

		improved := false
		for i := range nextPayoffs {
			if nextPayoffs[i] > payoffs[i]+improvementTolerance {
				improved = true
				break
			}
		}

		last = Result{
			Outcome:    IterationLimitReached,
			Profile:    next,
			Payoffs:    nextPayoffs,
			Iterations: iteration + 1,
		}
		if !improved {
			last.Outcome = Converged
			g.logger.Debug("converged", "iterations", last.Iterations, "payoffs", nextPayoffs)
			return last
		}
	}

	g.logger.Debug("iteration limit reached", "iterations", last.Iterations)
	return last
}

// adopt switches every player to the given profile and records payoffs.
func (g *Game) adopt(profile Profile, payoffs [NumPlayers]float64) {
	for i, player := range g.players {
		player.Strategy = profile[i]
		player.Payoffs = append(player.Payoffs, payoffs[i])
	}
}
