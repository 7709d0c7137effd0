package json

// Options controls how Parse and ParseMany treat input that deviates
// from strict RFC 7159 JSON.
type Options struct {
	// Lenient enables unquoted string literals, trailing commas in
	// arrays and objects, and //, #, and /* */ comments. Input that is
	// already valid under strict mode always parses identically under
	// lenient mode.
	Lenient bool
}
