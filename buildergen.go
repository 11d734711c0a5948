// Package buildergen generates builder companions for struct declarations: a
// XBuilder type that accumulates field values one at a time, tracks which
// required fields were supplied, and produces the original struct or a typed
// error on demand. Pointer fields are optional, slice fields are repeated,
// and a `builder:"each=<name>"` struct tag adds a per-element append method.
package buildergen

import (
	"context"

	"github.com/goliatone/go-buildergen/pkg/config"
	"github.com/goliatone/go-buildergen/pkg/emit"
	pkggosource "github.com/goliatone/go-buildergen/pkg/gosource"
	"github.com/goliatone/go-buildergen/pkg/model"
	"github.com/goliatone/go-buildergen/pkg/orchestrator"
)

// Request aliases the orchestrator request for convenience.
type Request = orchestrator.Request

// EmitOptions aliases the per-request emit instructions.
type EmitOptions = emit.Options

// Config aliases the tool configuration.
type Config = config.Config

// Record aliases the classified record model.
type Record = model.Record

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Generate loads the Go source, classifies the named struct declaration, and
// emits its builder companion using the named emitter. It is the simplest
// entry point for callers that just want generated source.
func Generate(ctx context.Context, source pkggosource.Source, typeName, emitterName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:   source,
		TypeName: typeName,
		Emitter:  emitterName,
	})
}

// GenerateFromDocument emits a builder companion using a pre-loaded document,
// bypassing the loader stage while still delegating to the orchestrator.
func GenerateFromDocument(ctx context.Context, doc pkggosource.Document, typeName, emitterName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Document: &doc,
		TypeName: typeName,
		Emitter:  emitterName,
	})
}

// WithConfig forwards a loaded configuration to the orchestrator.
func WithConfig(cfg config.Config) orchestrator.Option {
	return orchestrator.WithConfig(cfg)
}

// SourceFromFile re-exports the file source constructor.
func SourceFromFile(path string) pkggosource.Source {
	return pkggosource.SourceFromFile(path)
}

// SourceFromString re-exports the inline source constructor.
func SourceFromString(name, raw string) pkggosource.Source {
	return pkggosource.SourceFromString(name, raw)
}
