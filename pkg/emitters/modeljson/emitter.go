// Package modeljson emits the classified record model as indented JSON. It
// exists for tooling and debugging: the output shows exactly how each member
// was classified and which diagnostics were collected, without generating any
// Go source.
package modeljson

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/goliatone/go-buildergen/pkg/emit"
	"github.com/goliatone/go-buildergen/pkg/model"
)

// Emitter implements emit.Emitter serialising the record itself.
type Emitter struct{}

// Ensure the implementation satisfies the public interface.
var _ emit.Emitter = (*Emitter)(nil)

// New constructs the emitter.
func New() *Emitter {
	return &Emitter{}
}

// Name reports the emitter identifier.
func (e *Emitter) Name() string {
	return "modeljson"
}

// ContentType reports the serialization format used by Emit.
func (e *Emitter) ContentType() string {
	return "application/json"
}

// Emit marshals the record with stable indentation. Emit options are ignored;
// the model is reported as classified.
func (e *Emitter) Emit(ctx context.Context, record model.Record, _ emit.Options) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("modeljson: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if record.Name == "" {
		return nil, errors.New("modeljson: record name is required")
	}

	payload, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("modeljson: marshal record %s: %w", record.Name, err)
	}
	return append(payload, '\n'), nil
}
