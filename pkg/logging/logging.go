// Package logging configures strfind's diagnostic logger.
//
// Diagnostics are separate from search output: matches, banners and per-file
// errors are printed by the output package, while this logger records what
// the engine did and is silent at the default verbosity.
package logging

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component names attached to every log event as the "component" field
const (
	ComponentCLI       = "cli"
	ComponentConfig    = "config"
	ComponentEngine    = "search.engine"
	ComponentEnumerate = "enumerate"
)

// LogFileRelPath is the log file location relative to $XDG_STATE_HOME
const LogFileRelPath = "strfind/strfind.log"

// Options control where diagnostics go and how much is recorded
type Options struct {
	// Verbosity is the number of -v flags: 0 warn, 1 info, 2 debug, 3+ trace
	Verbosity int
	// Quiet skips the log file; console diagnostics still follow Verbosity
	Quiet bool
	// NoColor disables ANSI colors in console diagnostics
	NoColor bool
	// Console receives console diagnostics. Defaults to os.Stderr.
	Console io.Writer
}

var (
	mu      sync.Mutex
	logFile *os.File
)

// Level maps a -v count to a zerolog level
func Level(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// Setup installs the global logger and returns the path of the log file in
// use, or "" when diagnostics go to the console only. Calling Setup again
// closes the previously opened log file.
func Setup(opts Options) string {
	mu.Lock()
	defer mu.Unlock()

	zerolog.SetGlobalLevel(Level(opts.Verbosity))

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	writers := []io.Writer{zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.Kitchen,
		NoColor:    opts.NoColor,
	}}

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	var path string
	var fileErr error
	if !opts.Quiet {
		logFile, path, fileErr = openLogFile()
		if fileErr == nil {
			writers = append(writers, logFile)
		}
	}

	ctx := zerolog.New(io.MultiWriter(writers...)).With().Timestamp()
	if opts.Verbosity >= 2 {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()

	if fileErr != nil {
		log.Warn().Err(fileErr).Msg("Failed to open log file, logging to console only")
	}
	log.Debug().
		Int("verbosity", opts.Verbosity).
		Bool("quiet", opts.Quiet).
		Str("logFile", path).
		Msg("Logger initialized")

	return path
}

// openLogFile resolves the log path under $XDG_STATE_HOME, creating the
// directory, and opens it for appending
func openLogFile() (*os.File, string, error) {
	path, err := xdg.StateFile(LogFileRelPath)
	if err != nil {
		return nil, "", err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, "", err
	}
	return file, path, nil
}

// GetLogger returns a logger tagged with the given component name
func GetLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// LogCommand records the command being executed and its arguments
func LogCommand(cmd string, args []string) {
	log.Debug().
		Str("component", ComponentCLI).
		Str("command", cmd).
		Strs("args", args).
		Msg("Executing command")
}

// LogOperationStart logs the start of an operation and returns a function
// that logs its completion with the elapsed time
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().Str("operation", operation).Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
