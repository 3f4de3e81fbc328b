package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Deal     DealCmd          `cmd:"" help:"Deal 13-card hands from a shuffled deck"`
	Arrange  ArrangeCmd       `cmd:"" help:"Enumerate the legal arrangements of a 13-card hand"`
	Generate GenerateCmd      `cmd:"" help:"Build and persist a combination score index"`
	Play     PlayCmd          `cmd:"" help:"Play a four-player game to an approximate equilibrium"`
	Simulate SimulateCmd      `cmd:"" help:"Run many games in parallel and report statistics"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("chinesepoker"),
		kong.Description("Chinese Poker deal evaluator and equilibrium solver"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
