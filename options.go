package sysconf

import "io"

// StdinSource is the source value that selects standard input.
const StdinSource = "-"

// Options holds configuration settings for the application.
type Options struct {
	Source     string
	SchemaPath string
	Stdin      io.Reader
	Output     io.Writer
	Indent     string
	Listing    bool
	LogLevel   string
	LogFormat  string
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithSource sets the configuration source: a file path, or StdinSource
// to read standard input.
func WithSource(source string) Option {
	return func(opts *Options) {
		opts.Source = source
	}
}

// WithSchemaFile sets the path of a schema document to validate the
// parsed configuration against. Empty means no validation.
func WithSchemaFile(path string) Option {
	return func(opts *Options) {
		opts.SchemaPath = path
	}
}

// WithStdin sets the stream used when the source is StdinSource.
// Defaults to os.Stdin.
func WithStdin(r io.Reader) Option {
	return func(opts *Options) {
		opts.Stdin = r
	}
}

// WithOutput sets the destination for the entry listing and the JSON
// rendering. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(opts *Options) {
		opts.Output = w
	}
}

// WithIndent sets the JSON indentation per nesting level. An empty
// string produces compact output. Defaults to two spaces.
func WithIndent(indent string) Option {
	return func(opts *Options) {
		opts.Indent = indent
	}
}

// WithListing controls whether the entry count and "key = value" lines
// are written before the JSON rendering. Enabled by default.
func WithListing(enabled bool) Option {
	return func(opts *Options) {
		opts.Listing = enabled
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat sets the log output format, "text" or "json".
// Defaults to "text".
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}
