// Command sysconf parses sysctl-style configuration files, optionally
// validates them against a YAML schema, and prints the configuration as
// a JSON hierarchy.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/0xalexb/sysconf"
	"github.com/0xalexb/sysconf/conf"
	"github.com/0xalexb/sysconf/schema"

	"github.com/spf13/cobra"
)

func main() {
	err := newRootCommand().Execute()
	if err != nil {
		printDiagnostic(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		schemaPath string
		logLevel   string
		logFormat  string
		compact    bool
		quiet      bool
	)

	cmd := &cobra.Command{
		Use:   "sysconf [file]",
		Short: "Parse and validate sysctl-style configuration files",
		Long: `sysconf reads line-oriented "key = value" configuration text,
optionally validates it against a declarative YAML schema, and renders
the dot-segmented keys as a JSON hierarchy.

Pass a file path, or "-" (the default) to read standard input.`,
		Example: `  # Parse a file and print its JSON hierarchy
  sysconf /etc/sysctl.conf

  # Read from stdin and validate against a schema
  cat app.conf | sysconf - --schema schema.yaml

  # JSON only, no entry listing
  sysconf --quiet app.conf`,
		Args:          cobra.MaximumNArgs(1),
		Version:       fmt.Sprintf("%s (built: %s)", sysconf.Version, sysconf.CompiledAt),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			source := sysconf.StdinSource
			if len(args) > 0 {
				source = args[0]
			}

			indent := "  "
			if compact {
				indent = ""
			}

			app := sysconf.NewApp(
				sysconf.WithSource(source),
				sysconf.WithSchemaFile(schemaPath),
				sysconf.WithStdin(cmd.InOrStdin()),
				sysconf.WithOutput(cmd.OutOrStdout()),
				sysconf.WithIndent(indent),
				sysconf.WithListing(!quiet),
				sysconf.WithLogLevel(logLevel),
				sysconf.WithLogFormat(logFormat),
			)

			return app.Run()
		},
	}

	cmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "schema file to validate against")
	cmd.Flags().BoolVar(&compact, "compact", false, "print compact JSON instead of indented")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress the entry listing, print JSON only")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	cmd.Flags().StringVar(&logFormat, "log-format", "text", "log format: text or json")

	return cmd
}

// printDiagnostic writes a distinct human-readable message per error
// kind, so parse failures, schema problems, and validation findings are
// told apart at a glance.
func printDiagnostic(w io.Writer, err error) {
	var (
		parseErr   *conf.ParseError
		hierErr    *conf.HierarchyError
		unknownErr *schema.UnknownTypeError
		issues     schema.Issues
	)

	switch {
	case errors.As(err, &parseErr):
		fmt.Fprintf(w, "parse error: %v\n", parseErr)
	case errors.As(err, &issues):
		fmt.Fprintf(w, "schema validation failed with %d violation(s):\n", len(issues))

		for _, issue := range issues {
			fmt.Fprintf(w, "  - %s\n", issue.Message())
		}
	case errors.As(err, &unknownErr), errors.Is(err, schema.ErrMalformed):
		fmt.Fprintf(w, "schema load error: %v\n", err)
	case errors.As(err, &hierErr):
		fmt.Fprintf(w, "hierarchy error: %v\n", hierErr)
	default:
		fmt.Fprintf(w, "error: %v\n", err)
	}
}
