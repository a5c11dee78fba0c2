// Package fetch acquires complete configuration sources as byte slices.
//
// Both fetchers materialize their source once and cache the bytes, so
// repeated Fetch calls are cheap and parsing never blocks on I/O. File
// reads from a path on disk; Reader drains an arbitrary stream, which
// is how standard input reaches the parser.
//
// Constructors return closure-style factories so a DI container can
// decide when the read actually happens.
package fetch
