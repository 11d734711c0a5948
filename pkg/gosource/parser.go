package gosource

import "context"

// Parser extracts type declarations from a Go source unit. The resulting map
// is keyed by declaration name so downstream stages can select a record by
// type name or iterate over every candidate.
type Parser interface {
	Declarations(ctx context.Context, doc Document) (map[string]Declaration, error)
}

// ParserOptions exposes toggles for parsing behaviour.
type ParserOptions struct {
	// IncludeUnexported controls whether unexported type declarations are
	// returned. Defaults to true; generated builders live in the same package
	// so visibility does not restrict what can be built.
	IncludeUnexported bool
}

// ParserOption mutates ParserOptions during construction.
type ParserOption func(*ParserOptions)

// WithUnexportedTypes toggles collection of unexported type declarations.
func WithUnexportedTypes(enabled bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.IncludeUnexported = enabled
	}
}

// NewParserOptions applies ParserOption functions and returns the resulting
// configuration. Implementations under internal/gosource should call this
// helper to remain consistent.
func NewParserOptions(options ...ParserOption) ParserOptions {
	cfg := ParserOptions{
		IncludeUnexported: true,
	}
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}
