package shared

import (
	"os"

	"github.com/charmbracelet/log"
)

// SetupLogger configures a console logger for CLI commands.
func SetupLogger(debug bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})
}
