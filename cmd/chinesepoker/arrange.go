package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/chinesepoker/cmd/chinesepoker/shared"
	"github.com/lox/chinesepoker/internal/arrange"
	"github.com/lox/chinesepoker/internal/display"
	"github.com/lox/chinesepoker/internal/ev"
	"github.com/lox/chinesepoker/internal/index"
	"github.com/lox/chinesepoker/internal/randutil"
	"github.com/lox/chinesepoker/poker"
)

type ArrangeCmd struct {
	Hand   string `help:"Space-separated 13-card hand, e.g. \"AS KS QS JS 10S 9H 8H 7H 6H 5H 4C 3C 2C\""`
	Random bool   `help:"Deal a random hand instead of --hand"`
	Seed   int64  `help:"RNG seed for --random, 0 uses the current time" default:"0"`
	Index3 string `help:"Path to a persisted 3-card index (default: build per hand)" type:"path"`
	Index5 string `help:"Path to a persisted 5-card index (default: build per hand)" type:"path"`
	Top    int    `help:"Number of arrangements to display" default:"5"`
	CSV    string `help:"Write all arrangements to a CSV file" type:"path"`
	Debug  bool   `help:"Enable debug logging"`
}

func (c *ArrangeCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	hand, err := c.hand()
	if err != nil {
		return err
	}

	// A hand-local index over just these 13 cards is far cheaper than the
	// full-deck build and covers every subset the enumeration will look up.
	idx3, idx5, err := c.indices(hand, logger)
	if err != nil {
		return err
	}

	start := time.Now()
	arrangements, err := arrange.Enumerate(hand, idx3, idx5)
	if err != nil {
		return err
	}
	logger.Debug("enumerated arrangements",
		"count", len(arrangements),
		"duration", time.Since(start))

	if len(arrangements) == 0 {
		return fmt.Errorf("hand has no legal arrangements")
	}

	estimator := ev.NewEstimator(idx3, idx5)
	ranked := make([]int, len(arrangements))
	for i := range ranked {
		ranked[i] = i
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return estimator.Value(arrangements[ranked[i]]) > estimator.Value(arrangements[ranked[j]])
	})

	styles := display.NewStyles()
	fmt.Println(styles.Header.Render("Hand"))
	fmt.Println(styles.Hand(hand))
	fmt.Printf("\n%s\n", styles.SubHeader.Render(
		fmt.Sprintf("%d legal arrangements, top %d by estimated value:", len(arrangements), min(c.Top, len(ranked)))))

	for rank, i := range ranked {
		if rank >= c.Top {
			break
		}
		a := arrangements[i]
		fmt.Printf("\n%s %s\n%s\n",
			styles.Label.Render(fmt.Sprintf("#%d", rank+1)),
			styles.Score.Render(fmt.Sprintf("value %.2f", estimator.Value(a))),
			styles.Arrangement(a))
	}

	if c.CSV != "" {
		if err := writeArrangementsCSV(c.CSV, arrangements); err != nil {
			return err
		}
		logger.Info("wrote arrangements", "path", c.CSV, "count", len(arrangements))
	}
	return nil
}

func (c *ArrangeCmd) hand() ([]poker.Card, error) {
	switch {
	case c.Random && c.Hand != "":
		return nil, fmt.Errorf("--hand and --random are mutually exclusive")
	case c.Random:
		seed := c.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		deck := poker.NewDeck(randutil.New(seed))
		return deck.Deal(poker.HandSize), nil
	case c.Hand != "":
		return poker.ParseHand(c.Hand)
	default:
		return nil, fmt.Errorf("either --hand or --random is required")
	}
}

func (c *ArrangeCmd) indices(hand []poker.Card, logger *log.Logger) (*index.Index, *index.Index, error) {
	if c.Index3 == "" && c.Index5 == "" {
		idx3, err := index.BuildForCards(hand, 3)
		if err != nil {
			return nil, nil, err
		}
		idx5, err := index.BuildForCards(hand, 5)
		if err != nil {
			return nil, nil, err
		}
		return idx3, idx5, nil
	}
	return loadOrBuildIndices(c.Index3, c.Index5, logger)
}

// writeArrangementsCSV exports every arrangement in enumeration order using
// the long-standing column layout consumed by downstream analysis scripts.
func writeArrangementsCSV(path string, arrangements []arrange.Arrangement) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"front", "middle", "back", "front_score", "middle_score", "back_score"}); err != nil {
		return err
	}
	for _, a := range arrangements {
		record := []string{
			cardTokens(a.Front),
			cardTokens(a.Middle),
			cardTokens(a.Back),
			strconv.FormatFloat(float64(a.FrontScore), 'f', -1, 64),
			strconv.FormatFloat(float64(a.MiddleScore), 'f', -1, 64),
			strconv.FormatFloat(float64(a.BackScore), 'f', -1, 64),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func cardTokens(cards []poker.Card) string {
	tokens := make([]string, len(cards))
	for i, c := range cards {
		tokens[i] = c.String()
	}
	return strings.Join(tokens, " ")
}
