// Package sysconf parses, validates, and renders sysctl-style
// configuration. It ties the conf, schema, fetch, and render packages
// together into an Fx-wired application usable from a CLI or embedded
// in a larger program.
package sysconf

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/0xalexb/sysconf/fetch"
	"github.com/0xalexb/sysconf/logging"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var errAppNotInitialized = errors.New("app not initialized")

// Fetcher reads a complete configuration source into memory.
type Fetcher interface {
	Fetch() ([]byte, error)
}

// App is a configured parse/validate/render pipeline wired with Fx.
type App struct {
	app    *fx.App
	runner *Runner
}

// NewApp creates a new instance of App with Fx configured. By default
// the app reads standard input, writes to standard output, and indents
// JSON with two spaces.
func NewApp(opts ...Option) *App {
	options := Options{
		Source:  StdinSource,
		Stdin:   os.Stdin,
		Output:  os.Stdout,
		Indent:  "  ",
		Listing: true,
	}

	for _, apply := range opts {
		apply(&options)
	}

	logger := createLogger(options.LogLevel, options.LogFormat, os.Stderr)

	app := &App{}
	app.app = fx.New(
		fx.WithLogger(func() fxevent.Logger {
			// Wiring events are debug noise for a one-shot pipeline.
			fxLogger := &fxevent.SlogLogger{Logger: logger}
			fxLogger.UseLogLevel(slog.LevelDebug)

			return fxLogger
		}),
		fx.Supply(logger),
		fx.Provide(newFetcher(&options)),
		fx.Provide(newRunner(&options)),
		fx.Populate(&app.runner),
	)

	return app
}

// Run executes one pipeline pass: fetch, parse, validate when a schema
// is configured, and render. Errors keep their concrete types
// (conf.ParseError, conf.HierarchyError, schema.Issues and friends) so
// callers can classify them with errors.Is and errors.As.
func (app *App) Run() error {
	if app == nil || app.app == nil {
		return errAppNotInitialized
	}

	err := app.app.Err()
	if err != nil {
		return fmt.Errorf("building pipeline: %w", err)
	}

	return app.runner.Run()
}

func newFetcher(options *Options) func() (Fetcher, error) {
	return func() (Fetcher, error) {
		if options.Source == StdinSource {
			fetcher, err := fetch.NewReader(options.Stdin)()
			if err != nil {
				return nil, err
			}

			return fetcher, nil
		}

		fetcher, err := fetch.NewFile(options.Source)()
		if err != nil {
			return nil, err
		}

		return fetcher, nil
	}
}

func createLogger(level, format string, w io.Writer) *slog.Logger {
	config := logging.Config{Level: level, Format: format}

	return logging.NewLogger(config, w)
}
