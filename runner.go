package sysconf

import (
	"fmt"
	"log/slog"

	"github.com/0xalexb/sysconf/conf"
	"github.com/0xalexb/sysconf/fetch"
	renderjson "github.com/0xalexb/sysconf/render/json"
	"github.com/0xalexb/sysconf/schema"
)

// Runner executes one full pass over a configuration source: fetch,
// parse, validate when a schema is configured, then render.
type Runner struct {
	fetcher Fetcher
	logger  *slog.Logger
	options *Options
}

func newRunner(options *Options) func(Fetcher, *slog.Logger) *Runner {
	return func(fetcher Fetcher, logger *slog.Logger) *Runner {
		return &Runner{
			fetcher: fetcher,
			logger:  logger,
			options: options,
		}
	}
}

// Run performs the pipeline pass. Validation failures, parse errors,
// and hierarchy collisions are returned with their concrete types
// preserved in the chain.
func (r *Runner) Run() error {
	data, err := r.fetcher.Fetch()
	if err != nil {
		return fmt.Errorf("fetching source: %w", err)
	}

	store, err := conf.ParseBytes(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", r.sourceName(), err)
	}

	r.logger.Debug("configuration parsed",
		slog.String("source", r.sourceName()),
		slog.Int("entries", store.Len()))

	if r.options.SchemaPath != "" {
		err = r.validate(store)
		if err != nil {
			return err
		}
	}

	// Build the tree before any output so a path collision cannot leave
	// a half-written listing behind.
	node, err := store.Hierarchy()
	if err != nil {
		return fmt.Errorf("building hierarchy: %w", err)
	}

	if r.options.Listing {
		err = r.writeListing(store)
		if err != nil {
			return err
		}
	}

	return r.render(node)
}

func (r *Runner) validate(store *conf.Store) error {
	fetcher, err := fetch.NewFile(r.options.SchemaPath)()
	if err != nil {
		return fmt.Errorf("opening schema: %w", err)
	}

	data, err := fetcher.Fetch()
	if err != nil {
		return fmt.Errorf("reading schema: %w", err)
	}

	loaded, err := schema.Load(data)
	if err != nil {
		return fmt.Errorf("loading schema %s: %w", r.options.SchemaPath, err)
	}

	err = schema.Validate(store, loaded)
	if err != nil {
		return err
	}

	r.logger.Info("schema validation passed",
		slog.String("schema", r.options.SchemaPath),
		slog.Int("fields", loaded.Len()))

	if r.options.Listing {
		_, err = fmt.Fprintf(r.options.Output, "schema validation passed (%d fields)\n\n", loaded.Len())
		if err != nil {
			return fmt.Errorf("writing confirmation: %w", err)
		}
	}

	return nil
}

func (r *Runner) writeListing(store *conf.Store) error {
	_, err := fmt.Fprintf(r.options.Output, "loaded %d entries\n\n", store.Len())
	if err != nil {
		return fmt.Errorf("writing listing: %w", err)
	}

	for key, value := range store.All() {
		_, err = fmt.Fprintf(r.options.Output, "%s = %s\n", key, value)
		if err != nil {
			return fmt.Errorf("writing listing: %w", err)
		}
	}

	_, err = fmt.Fprintln(r.options.Output)
	if err != nil {
		return fmt.Errorf("writing listing: %w", err)
	}

	return nil
}

func (r *Runner) render(node *conf.Node) error {
	encoder := renderjson.NewEncoder(r.options.Output)
	encoder.SetIndent(r.options.Indent)

	err := encoder.Encode(node)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", r.sourceName(), err)
	}

	return nil
}

func (r *Runner) sourceName() string {
	if r.options.Source == StdinSource {
		return "stdin"
	}

	return r.options.Source
}
