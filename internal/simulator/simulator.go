// Package simulator runs many independent equilibrium games in parallel.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/chinesepoker/internal/equilibrium"
	"github.com/lox/chinesepoker/internal/index"
	"github.com/lox/chinesepoker/internal/randutil"
	"github.com/lox/chinesepoker/internal/statistics"
	"github.com/lox/chinesepoker/poker"
)

// Config holds configuration for running simulations
type Config struct {
	Games         int
	Workers       int           // 0 means GOMAXPROCS
	Seed          int64         // base seed; game i uses Seed+i
	MaxIterations int           // solver budget per game
	MaxRedeals    int           // re-deal attempts on unplayable hands
	Timeout       time.Duration // per-game guard; 0 disables
	Logger        *log.Logger
	Clock         quartz.Clock // injectable for tests; defaults to real time
}

// Simulator runs equilibrium games against shared read-only indices.
type Simulator struct {
	cfg  Config
	idx3 *index.Index
	idx5 *index.Index
}

// New creates a new simulator with the given configuration
func New(cfg Config, idx3, idx5 *index.Index) *Simulator {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	if cfg.MaxRedeals <= 0 {
		cfg.MaxRedeals = 10
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.Clock == nil {
		cfg.Clock = quartz.NewReal()
	}
	return &Simulator{cfg: cfg, idx3: idx3, idx5: idx5}
}

// Run executes the configured number of games across the worker pool and
// folds the results into aggregate statistics. Each game owns its RNG and
// game state; only the immutable indices are shared.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	results := make([]statistics.GameResult, s.cfg.Games)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Workers)

	for i := 0; i < s.cfg.Games; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			seed := s.cfg.Seed + int64(i)
			result, err := s.playGameWithTimeout(seed)
			if err != nil {
				return fmt.Errorf("game %d (seed %d): %w", i, seed, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, result := range results {
		stats.Add(result)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return stats, nil
}

// playGameWithTimeout guards a single game with the configured timeout. The
// solver has no cancellation primitive, so a stuck game is abandoned rather
// than interrupted.
func (s *Simulator) playGameWithTimeout(seed int64) (statistics.GameResult, error) {
	if s.cfg.Timeout <= 0 {
		return s.playGame(seed)
	}

	type outcome struct {
		result statistics.GameResult
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		result, err := s.playGame(seed)
		done <- outcome{result, err}
	}()

	timedOut := make(chan struct{})
	timer := s.cfg.Clock.AfterFunc(s.cfg.Timeout, func() {
		close(timedOut)
	})
	defer timer.Stop()

	select {
	case o := <-done:
		return o.result, o.err
	case <-timedOut:
		return statistics.GameResult{}, fmt.Errorf("game timed out after %v", s.cfg.Timeout)
	}
}

// playGame deals four hands and solves the game, re-dealing when a hand has
// no legal arrangements.
func (s *Simulator) playGame(seed int64) (statistics.GameResult, error) {
	for attempt := 0; attempt <= s.cfg.MaxRedeals; attempt++ {
		rng := randutil.New(seed + int64(attempt)*1_000_003)
		deck := poker.NewDeck(rng)
		hands, err := deck.DealHands(equilibrium.NumPlayers)
		if err != nil {
			return statistics.GameResult{}, err
		}

		game, err := equilibrium.NewGame(hands, s.idx3, s.idx5, rng, s.cfg.Logger)
		if errors.Is(err, equilibrium.ErrNoArrangements) {
			s.cfg.Logger.Debug("re-dealing unplayable hand", "seed", seed, "attempt", attempt)
			continue
		}
		if err != nil {
			return statistics.GameResult{}, err
		}

		solved := game.Solve(s.cfg.MaxIterations)

		result := statistics.GameResult{
			Seed:       seed,
			Payoffs:    solved.Payoffs,
			Outcome:    solved.Outcome,
			Iterations: solved.Iterations,
			Redeals:    attempt,
		}
		for i := 0; i < equilibrium.NumPlayers; i++ {
			result.Candidates[i] = len(game.Player(i).Arrangements)
		}
		return result, nil
	}
	return statistics.GameResult{}, fmt.Errorf("no playable deal after %d attempts", s.cfg.MaxRedeals+1)
}
