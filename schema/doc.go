// Package schema loads declarative field schemas and validates parsed
// configuration stores against them.
//
// A schema is a YAML document with a top-level "schema" mapping. Each
// entry declares a field's type, whether it is required, and an optional
// description:
//
//	schema:
//	  endpoint:
//	    type: string
//	    required: true
//	    description: upstream service address
//	  debug:
//	    type: bool
//	  net.ipv4.ip_forward:
//	    type: int
//
// Types are the four primitive kinds (string, bool, int, float),
// matched case-insensitively. The loader fails fast on the first bad
// entry; the validator does the opposite and accumulates every
// violation into one Issues value so a caller gets complete feedback
// in a single pass.
package schema
