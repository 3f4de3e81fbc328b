package main

import (
	"context"
	"fmt"
	"time"

	"github.com/lox/chinesepoker/cmd/chinesepoker/shared"
	"github.com/lox/chinesepoker/internal/display"
	"github.com/lox/chinesepoker/internal/simulator"
)

type SimulateCmd struct {
	Games         int           `help:"Number of games to simulate" default:"100"`
	Workers       int           `help:"Parallel workers, 0 uses GOMAXPROCS" default:"0"`
	Seed          int64         `help:"Base RNG seed; game i uses seed+i" default:"1"`
	MaxIterations int           `help:"Best-response iteration budget per game" default:"100"`
	MaxRedeals    int           `help:"Re-deal attempts per game on unplayable hands" default:"10"`
	Timeout       time.Duration `help:"Per-game timeout, 0 disables" default:"0"`
	Config        string        `help:"HCL config file; flags provide defaults it overrides" type:"path"`
	Index3        string        `help:"Path to a persisted 3-card index" type:"path"`
	Index5        string        `help:"Path to a persisted 5-card index" type:"path"`
	Debug         bool          `help:"Enable debug logging"`
}

func (c *SimulateCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	cfg := simulator.Config{
		Games:         c.Games,
		Workers:       c.Workers,
		Seed:          c.Seed,
		MaxIterations: c.MaxIterations,
		MaxRedeals:    c.MaxRedeals,
		Timeout:       c.Timeout,
		Logger:        logger,
	}
	if c.Config != "" {
		var err error
		cfg, err = simulator.LoadConfig(c.Config, cfg)
		if err != nil {
			return err
		}
	}

	idx3, idx5, err := loadOrBuildIndices(c.Index3, c.Index5, logger)
	if err != nil {
		return err
	}

	logger.Info("starting simulation",
		"games", cfg.Games,
		"workers", cfg.Workers,
		"seed", cfg.Seed)

	start := time.Now()
	stats, err := simulator.New(cfg, idx3, idx5).Run(context.Background())
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	styles := display.NewStyles()
	fmt.Println(styles.Header.Render(fmt.Sprintf("Simulation: %d games in %v", stats.Games, elapsed.Round(time.Millisecond))))

	fmt.Printf("\n%s\n", styles.SubHeader.Render("Outcomes"))
	fmt.Printf("  Converged:        %d (%.1f%%)\n", stats.Converged, 100*stats.ConvergenceRate())
	fmt.Printf("  Cycle resolved:   %d\n", stats.Cycles)
	fmt.Printf("  Iteration limit:  %d\n", stats.LimitReached)
	fmt.Printf("  Re-deals:         %d\n", stats.Redeals)

	fmt.Printf("\n%s\n", styles.SubHeader.Render("Solver"))
	fmt.Printf("  Mean iterations:  %.1f (max %d)\n", stats.MeanIterations(), stats.MaxIterations)
	fmt.Printf("  Mean candidates:  %.0f per hand (max %d)\n", stats.MeanCandidates(), stats.MaxCandidates)

	fmt.Printf("\n%s\n", styles.SubHeader.Render("Winner payoffs"))
	fmt.Printf("  Mean:   %+.2f ± %.2f\n", stats.MeanWinnerPayoff(), stats.WinnerPayoffStdDev())
	fmt.Printf("  Median: %+.2f\n", stats.Percentile(0.5))
	fmt.Printf("  P90:    %+.2f\n", stats.Percentile(0.9))

	fmt.Printf("\n%s\n", styles.SubHeader.Render("Seat totals"))
	for seat, total := range stats.SumSeat {
		fmt.Printf("  Player %d: %+.0f\n", seat+1, total)
	}
	return nil
}
