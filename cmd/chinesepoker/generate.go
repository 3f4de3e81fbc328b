package main

import (
	"fmt"
	"time"

	"github.com/lox/chinesepoker/cmd/chinesepoker/shared"
	"github.com/lox/chinesepoker/internal/index"
)

type GenerateCmd struct {
	Arity  int    `help:"Combination size (3 or 5)" required:"" enum:"3,5"`
	Output string `help:"Output file path" required:"" type:"path"`
	Debug  bool   `help:"Enable debug logging"`
}

func (c *GenerateCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	logger.Info("building index", "arity", c.Arity)
	start := time.Now()
	ix, err := index.Build(c.Arity)
	if err != nil {
		return err
	}
	logger.Info("built index",
		"arity", c.Arity,
		"combinations", ix.Size(),
		"duration", time.Since(start))

	if err := ix.Save(c.Output); err != nil {
		return err
	}
	fmt.Printf("Wrote %d %d-card combinations to %s\n", ix.Size(), c.Arity, c.Output)
	return nil
}
