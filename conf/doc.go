// Package conf parses line-oriented "key = value" configuration text
// (sysctl style) into an ordered key/value store.
//
// The package has three cooperating parts:
//   - Parse/ParseBytes: line-by-line parser with 1-indexed error reporting
//   - Store: insertion-ordered mapping from key to raw string value
//   - Store.Hierarchy: dot-segmented keys expanded into a nested Node tree
//
// # Input format
//
// One assignment per line. Lines whose first non-space character is '#'
// or ';' are comments; blank lines are skipped. The key is everything
// before the first '=', the value everything after it, both trimmed of
// surrounding whitespace:
//
//	net.ipv4.ip_forward = 1
//	# forwarding must stay on
//	debug=true
//
// Values are kept as raw strings; typing is the concern of the schema
// package.
//
// # Duplicate keys
//
// Setting a key that already exists updates the value in place: the key
// keeps its first-insertion position in Keys and All. This makes output
// ordering stable under overrides.
package conf
