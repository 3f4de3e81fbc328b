package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/lox/chinesepoker/cmd/chinesepoker/shared"
	"github.com/lox/chinesepoker/internal/arrange"
	"github.com/lox/chinesepoker/internal/display"
	"github.com/lox/chinesepoker/internal/equilibrium"
	"github.com/lox/chinesepoker/internal/ev"
	"github.com/lox/chinesepoker/internal/randutil"
	"github.com/lox/chinesepoker/internal/scoring"
	"github.com/lox/chinesepoker/poker"
)

type PlayCmd struct {
	Seed          int64  `help:"RNG seed, 0 uses the current time" default:"0"`
	MaxIterations int    `help:"Best-response iteration budget" default:"100"`
	MaxRedeals    int    `help:"Re-deal attempts when a hand has no legal arrangements" default:"10"`
	Greedy        bool   `help:"Pick arrangements by estimated value instead of solving for equilibrium"`
	Index3        string `help:"Path to a persisted 3-card index" type:"path"`
	Index5        string `help:"Path to a persisted 5-card index" type:"path"`
	Debug         bool   `help:"Enable debug logging"`
}

func (c *PlayCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	idx3, idx5, err := loadOrBuildIndices(c.Index3, c.Index5, logger)
	if err != nil {
		return err
	}

	styles := display.NewStyles()
	fmt.Println(styles.Header.Render(fmt.Sprintf("Game (seed %d)", seed)))

	for attempt := 0; attempt <= c.MaxRedeals; attempt++ {
		rng := randutil.New(seed + int64(attempt)*1_000_003)
		deck := poker.NewDeck(rng)
		hands, err := deck.DealHands(equilibrium.NumPlayers)
		if err != nil {
			return err
		}

		game, err := equilibrium.NewGame(hands, idx3, idx5, rng, logger)
		if errors.Is(err, equilibrium.ErrNoArrangements) {
			logger.Info("re-dealing unplayable hand", "attempt", attempt, "err", err)
			continue
		}
		if err != nil {
			return err
		}

		if c.Greedy {
			estimator := ev.NewEstimator(idx3, idx5)
			for i := 0; i < equilibrium.NumPlayers; i++ {
				player := game.Player(i)
				player.Strategy = estimator.Best(player.Arrangements)
			}
			c.showGreedy(game, styles)
			return nil
		}

		start := time.Now()
		result := game.Solve(c.MaxIterations)
		logger.Debug("solved", "duration", time.Since(start))
		c.showResult(game, result, styles)
		return nil
	}
	return fmt.Errorf("no playable deal after %d attempts", c.MaxRedeals+1)
}

func (c *PlayCmd) showGreedy(game *equilibrium.Game, styles *display.Styles) {
	arrangements := make([]arrange.Arrangement, equilibrium.NumPlayers)
	for i := range arrangements {
		arrangements[i] = game.Player(i).Current()
	}

	for i, a := range arrangements {
		fmt.Printf("\n%s (%d candidate arrangements)\n%s\n",
			styles.SubHeader.Render(fmt.Sprintf("Player %d", i+1)),
			len(game.Player(i).Arrangements),
			styles.Arrangement(a))
	}

	payoffs := make([]float64, equilibrium.NumPlayers)
	for i, p := range scoring.ScoreGame(arrangements) {
		payoffs[i] = float64(p)
	}
	fmt.Printf("\n%s\n%s\n",
		styles.SubHeader.Render("Payoffs"),
		styles.Payoffs(payoffs))
}

func (c *PlayCmd) showResult(game *equilibrium.Game, result equilibrium.Result, styles *display.Styles) {
	for i := 0; i < equilibrium.NumPlayers; i++ {
		player := game.Player(i)
		fmt.Printf("\n%s (%d candidate arrangements)\n%s\n",
			styles.SubHeader.Render(fmt.Sprintf("Player %d", i+1)),
			len(player.Arrangements),
			styles.Arrangement(player.Current()))
	}

	fmt.Printf("\n%s %s after %d iterations\n",
		styles.SubHeader.Render("Outcome:"),
		result.Outcome,
		result.Iterations)
	if result.Cycle != nil {
		fmt.Printf("Cycle of length %d with %d distinct profiles\n",
			result.Cycle.Length, result.Cycle.UniqueProfiles)
	}

	fmt.Printf("\n%s\n%s\n",
		styles.SubHeader.Render("Payoffs"),
		styles.Payoffs(result.Payoffs[:]))
}
