// Package orchestrator coordinates the full pipeline from Go source to
// emitted builder companion: loader → parser → model builder → emitter. It
// applies sensible defaults (gofile emitter, embedded templates) while
// remaining open to dependency injection for advanced callers.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	internalLoader "github.com/goliatone/go-buildergen/internal/gosource/loader"
	internalParser "github.com/goliatone/go-buildergen/internal/gosource/parser"
	"github.com/goliatone/go-buildergen/pkg/config"
	"github.com/goliatone/go-buildergen/pkg/emit"
	"github.com/goliatone/go-buildergen/pkg/emitters/gofile"
	"github.com/goliatone/go-buildergen/pkg/emitters/modeljson"
	pkggosource "github.com/goliatone/go-buildergen/pkg/gosource"
	"github.com/goliatone/go-buildergen/pkg/model"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom source loader.
func WithLoader(loader pkggosource.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithParser injects a custom declaration parser.
func WithParser(parser pkggosource.Parser) Option {
	return func(o *Orchestrator) {
		o.parser = parser
	}
}

// WithModelBuilder injects a custom record model builder.
func WithModelBuilder(builder model.Builder) Option {
	return func(o *Orchestrator) {
		o.builder = builder
	}
}

// WithRegistry injects an emitter registry.
func WithRegistry(registry *emit.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultEmitter overrides the emitter used when a request omits an
// explicit Emitter field.
func WithDefaultEmitter(name string) Option {
	return func(o *Orchestrator) {
		o.defaultEmitter = name
	}
}

// WithConfig applies a loaded tool configuration: tag key, naming, and the
// default emitter. Explicit options and request fields still win.
func WithConfig(cfg config.Config) Option {
	return func(o *Orchestrator) {
		o.cfg = cfg
	}
}

// Orchestrator coordinates the pipeline from one Go source unit to the
// emitted companion bytes.
type Orchestrator struct {
	loader          pkggosource.Loader
	parser          pkggosource.Parser
	builder         model.Builder
	registry        *emit.Registry
	defaultEmitter  string
	cfg             config.Config
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		cfg: config.Default(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to generate a builder companion from
// one type declaration.
type Request struct {
	// Source identifies where the Go source unit lives. Optional when
	// Document is supplied.
	Source pkggosource.Source

	// Document allows callers to bypass the loader when they already have a
	// loaded payload.
	Document *pkggosource.Document

	// TypeName selects which declaration to generate a builder for.
	TypeName string

	// Emitter names the emitter to use. If empty, the orchestrator falls
	// back to the configured default emitter.
	Emitter string

	// Emit carries per-request emit instructions such as a package override.
	// Naming gaps are filled from the tool configuration.
	Emit emit.Options
}

// Generate executes the loader → parser → model builder → emitter sequence
// and returns the emitted bytes (formatted Go source for the default gofile
// emitter).
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	record, err := o.Record(ctx, req)
	if err != nil {
		return nil, err
	}

	emitter, err := o.emitterFor(req.Emitter)
	if err != nil {
		return nil, err
	}

	output, err := emitter.Emit(ctx, record, o.emitOptions(req))
	if err != nil {
		return nil, fmt.Errorf("orchestrator: emit output: %w", err)
	}
	return output, nil
}

// Record runs the pipeline up to the classified record, letting callers
// inspect diagnostics or drive a custom emitter themselves.
func (o *Orchestrator) Record(ctx context.Context, req Request) (model.Record, error) {
	if err := o.precheck(ctx); err != nil {
		return model.Record{}, err
	}
	if req.TypeName == "" {
		return model.Record{}, errors.New("orchestrator: type name is required")
	}

	declarations, err := o.declarations(ctx, req)
	if err != nil {
		return model.Record{}, err
	}

	decl, ok := declarations[req.TypeName]
	if !ok {
		return model.Record{}, fmt.Errorf("orchestrator: type %q not found", req.TypeName)
	}

	record, err := o.builder.Build(decl)
	if err != nil {
		return model.Record{}, fmt.Errorf("orchestrator: build record model: %w", err)
	}
	return record, nil
}

// List returns the names of every struct declaration in the source, sorted,
// so callers can present a selection or generate for all of them.
func (o *Orchestrator) List(ctx context.Context, req Request) ([]string, error) {
	if err := o.precheck(ctx); err != nil {
		return nil, err
	}

	declarations, err := o.declarations(ctx, req)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(declarations))
	for name, decl := range declarations {
		if decl.Kind != pkggosource.DeclKindStruct {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (o *Orchestrator) precheck(ctx context.Context) error {
	if ctx == nil {
		return errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := o.initialiseErr; err != nil {
		return err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
		if err := o.initialiseErr; err != nil {
			return err
		}
	}
	return nil
}

func (o *Orchestrator) declarations(ctx context.Context, req Request) (map[string]pkggosource.Declaration, error) {
	doc, err := o.resolveDocument(ctx, req)
	if err != nil {
		return nil, err
	}

	declarations, err := o.parser.Declarations(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: parse declarations: %w", err)
	}
	return declarations, nil
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req Request) (pkggosource.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return pkggosource.Document{}, errors.New("orchestrator: source or document is required")
	}
	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return pkggosource.Document{}, fmt.Errorf("orchestrator: load document: %w", err)
	}
	return doc, nil
}

func (o *Orchestrator) emitterFor(name string) (emit.Emitter, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: emitter registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultEmitter
	}

	if target != "" {
		emitter, err := o.registry.Get(target)
		if err == nil {
			return emitter, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: emitter %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no emitters registered")
	}

	emitter, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: emitter %q: %w", names[0], err)
	}
	return emitter, nil
}

func (o *Orchestrator) emitOptions(req Request) emit.Options {
	options := req.Emit
	if strings.TrimSpace(options.Suffix) == "" {
		options.Suffix = o.cfg.Suffix
	}
	if strings.TrimSpace(options.ConstructorPrefix) == "" {
		options.ConstructorPrefix = o.cfg.ConstructorPrefix
	}
	return options
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.loader == nil {
		o.loader = internalLoader.New(pkggosource.NewLoaderOptions())
	}
	if o.parser == nil {
		o.parser = internalParser.New(pkggosource.NewParserOptions())
	}
	if o.builder == nil {
		o.builder = model.NewBuilder(model.WithTagKey(o.cfg.TagKey))
	}
	if o.registry == nil {
		o.registry = emit.NewRegistry()
		emitter, err := gofile.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default emitter: %w", err)
		} else {
			o.registry.MustRegister(emitter)
		}
		o.registry.MustRegister(modeljson.New())
	}
	if o.defaultEmitter == "" {
		o.defaultEmitter = o.cfg.DefaultEmitter
	}

	o.defaultsApplied = true
}
