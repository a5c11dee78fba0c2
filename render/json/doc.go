// Package json serializes a configuration hierarchy to JSON.
//
// Standard library and goccy map encoding both sort or randomize object
// keys, so the encoder walks the conf.Node tree itself and emits object
// members in the store's insertion order. Leaf values stay strings;
// typing is a validation concern, not a rendering one.
package json
