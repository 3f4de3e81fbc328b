package main

import (
	"fmt"
	"time"

	"github.com/lox/chinesepoker/cmd/chinesepoker/shared"
	"github.com/lox/chinesepoker/internal/display"
	"github.com/lox/chinesepoker/internal/randutil"
	"github.com/lox/chinesepoker/poker"
)

type DealCmd struct {
	Players int   `help:"Number of hands to deal" default:"4"`
	Seed    int64 `help:"RNG seed, 0 uses the current time" default:"0"`
	Debug   bool  `help:"Enable debug logging"`
}

func (c *DealCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	if c.Players < 1 || c.Players > 4 {
		return fmt.Errorf("players must be between 1 and 4, got %d", c.Players)
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("dealing", "players", c.Players, "seed", seed)

	deck := poker.NewDeck(randutil.New(seed))
	hands, err := deck.DealHands(c.Players)
	if err != nil {
		return err
	}

	styles := display.NewStyles()
	fmt.Println(styles.Header.Render(fmt.Sprintf("Deal (seed %d)", seed)))
	for i, hand := range hands {
		fmt.Printf("%s %s\n",
			styles.Label.Render(fmt.Sprintf("Player %d:", i+1)),
			styles.Hand(hand))
	}
	return nil
}
