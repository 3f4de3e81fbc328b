package simulator

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// FileConfig is the HCL layout for a simulation run.
//
//	simulation {
//	  games          = 1000
//	  workers        = 8
//	  seed           = 42
//	  max_iterations = 100
//	  max_redeals    = 10
//	  timeout_ms     = 30000
//	}
type FileConfig struct {
	Simulation SimulationSettings `hcl:"simulation,block"`
}

// SimulationSettings contains the tunable simulation parameters.
type SimulationSettings struct {
	Games         int   `hcl:"games,optional"`
	Workers       int   `hcl:"workers,optional"`
	Seed          int64 `hcl:"seed,optional"`
	MaxIterations int   `hcl:"max_iterations,optional"`
	MaxRedeals    int   `hcl:"max_redeals,optional"`
	TimeoutMs     int   `hcl:"timeout_ms,optional"`
}

// LoadConfig reads simulation settings from an HCL file and applies them on
// top of the given base config.
func LoadConfig(filename string, base Config) (Config, error) {
	if _, err := os.Stat(filename); err != nil {
		return base, fmt.Errorf("config file not found: %s", filename)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return base, fmt.Errorf("parse %s: %s", filename, diags.Error())
	}

	var fc FileConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &fc); diags.HasErrors() {
		return base, fmt.Errorf("decode %s: %s", filename, diags.Error())
	}

	set := fc.Simulation
	if set.Games > 0 {
		base.Games = set.Games
	}
	if set.Workers > 0 {
		base.Workers = set.Workers
	}
	if set.Seed != 0 {
		base.Seed = set.Seed
	}
	if set.MaxIterations > 0 {
		base.MaxIterations = set.MaxIterations
	}
	if set.MaxRedeals > 0 {
		base.MaxRedeals = set.MaxRedeals
	}
	if set.TimeoutMs > 0 {
		base.Timeout = time.Duration(set.TimeoutMs) * time.Millisecond
	}
	return base, nil
}
