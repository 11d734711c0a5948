// Package emit defines the emitter contract and the registry that stores
// emitters by name. An emitter converts a classified record into bytes: the
// gofile emitter produces the companion builder source, while tooling
// emitters can serialise the model itself.
package emit

import (
	"context"

	"github.com/goliatone/go-buildergen/pkg/model"
)

// Emitter converts a Record into a byte representation.
type Emitter interface {
	Name() string
	ContentType() string
	Emit(ctx context.Context, record model.Record, options Options) ([]byte, error)
}

// Options carries per-request instructions emitters can honour. The zero
// value is usable; emitters fill gaps from the record and their own defaults.
type Options struct {
	// Package overrides the package clause of the generated file. Defaults to
	// the record's package.
	Package string

	// Suffix names the generated companion type: origin name + Suffix.
	// Defaults to "Builder".
	Suffix string

	// ConstructorPrefix names the builder constructor: prefix + builder type
	// name. Defaults to "New".
	ConstructorPrefix string

	// Header replaces the default generated-code header comment when set.
	Header string
}
