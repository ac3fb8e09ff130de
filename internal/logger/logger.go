// Package logger installs the process-wide structured logger every other
// package logs through via github.com/charmbracelet/log's package-level
// default.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// Init installs the default logger, colored via termenv unless noColor
// is set, at Debug level when debug is set and Info level otherwise.
func Init(debug, noColor bool) {
	log.SetDefault(log.NewWithOptions(io.MultiWriter(os.Stderr), log.Options{
		ReportTimestamp: false,
		TimeFormat:      time.RFC3339,
		Prefix:          "wollok",
	}))

	if debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}

	log.SetColorProfile(termenv.ANSI256)
	if noColor {
		log.SetColorProfile(termenv.Ascii)
	}
}
