// Package gofile emits the builder companion source for a classified record.
// Output is assembled from five fragment kinds rendered through the template
// engine and concatenated in a fixed order: origin-type method, builder type,
// constructor, per-member setters and appenders, finalizer plus error type.
package gofile

import (
	"context"
	"errors"
	"fmt"
	"go/format"
	"io/fs"
	"strconv"
	"strings"

	"github.com/goliatone/go-buildergen/pkg/emit"
	"github.com/goliatone/go-buildergen/pkg/emit/template"
	"github.com/goliatone/go-buildergen/pkg/emit/template/gotemplate"
	"github.com/goliatone/go-buildergen/pkg/model"
)

const (
	emitterName              = "gofile"
	defaultSuffix            = "Builder"
	defaultConstructorPrefix = "New"
	defaultHeader            = "Code generated by buildergen. DO NOT EDIT."
)

// Option customises the emitter before construction.
type Option func(*Emitter)

// WithTemplateRenderer injects a custom template engine. The default engine
// loads the embedded fragment templates.
func WithTemplateRenderer(engine template.TemplateRenderer) Option {
	return func(e *Emitter) {
		e.engine = engine
	}
}

// Emitter implements emit.Emitter producing formatted Go source.
type Emitter struct {
	engine template.TemplateRenderer
}

// Ensure the implementation satisfies the public interface.
var _ emit.Emitter = (*Emitter)(nil)

// New constructs the emitter, wiring the embedded templates unless a custom
// engine is supplied.
func New(options ...Option) (*Emitter, error) {
	e := &Emitter{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}

	if e.engine == nil {
		templatesFS, err := fs.Sub(embeddedTemplates, "templates")
		if err != nil {
			return nil, fmt.Errorf("gofile: embedded templates: %w", err)
		}
		engine, err := gotemplate.New(gotemplate.WithFS(templatesFS))
		if err != nil {
			return nil, fmt.Errorf("gofile: template engine: %w", err)
		}
		e.engine = engine
	}

	return e, nil
}

// Name reports the emitter identifier.
func (e *Emitter) Name() string {
	return emitterName
}

// ContentType reports the serialization format used by Emit.
func (e *Emitter) ContentType() string {
	return "text/x-go-source"
}

// Emit renders the companion declarations for the record and returns them as
// one gofmt-formatted source file. Non-fatal diagnostics collected during
// classification are surfaced as comments in the file header so they travel
// with the output instead of aborting it.
func (e *Emitter) Emit(ctx context.Context, record model.Record, options emit.Options) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("gofile: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if record.Name == "" {
		return nil, errors.New("gofile: record name is required")
	}

	pkgName := strings.TrimSpace(options.Package)
	if pkgName == "" {
		pkgName = record.Package
	}
	if pkgName == "" {
		return nil, fmt.Errorf("gofile: no package name for %s", record.Name)
	}

	naming := namingFor(record, options)
	fragments, err := e.fragments(record, naming)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString(header(record, options))
	b.WriteString("\npackage " + pkgName + "\n")
	if len(record.Imports) > 0 {
		b.WriteString("\nimport (\n")
		for _, imp := range record.Imports {
			b.WriteString("\t")
			if imp.Name != "" {
				b.WriteString(imp.Name + " ")
			}
			b.WriteString(strconv.Quote(imp.Path) + "\n")
		}
		b.WriteString(")\n")
	}
	for _, fragment := range fragments {
		b.WriteString("\n" + fragment + "\n")
	}

	formatted, err := format.Source([]byte(b.String()))
	if err != nil {
		return nil, fmt.Errorf("gofile: format output for %s: %w", record.Name, err)
	}
	return formatted, nil
}

type naming struct {
	name        string
	builder     string
	constructor string
	errName     string
}

func namingFor(record model.Record, options emit.Options) naming {
	suffix := strings.TrimSpace(options.Suffix)
	if suffix == "" {
		suffix = defaultSuffix
	}
	prefix := strings.TrimSpace(options.ConstructorPrefix)
	if prefix == "" {
		prefix = defaultConstructorPrefix
	}

	builder := record.Name + suffix
	return naming{
		name:        record.Name,
		builder:     builder,
		constructor: prefix + builder,
		errName:     builder + "Error",
	}
}

func (e *Emitter) fragments(record model.Record, n naming) ([]string, error) {
	base := map[string]any{
		"name":        n.name,
		"builder":     n.builder,
		"constructor": n.constructor,
		"errname":     n.errName,
	}

	fragments := make([]string, 0, 5+2*len(record.Members))

	origin, err := e.render("origin", base)
	if err != nil {
		return nil, err
	}
	fragments = append(fragments, origin)

	fields := make([]map[string]any, 0, len(record.Members))
	for _, member := range record.Members {
		fields = append(fields, map[string]any{
			"name": member.Field,
			"type": storageType(member),
		})
	}
	builderDecl, err := e.render("builder", merge(base, map[string]any{"fields": fields}))
	if err != nil {
		return nil, err
	}
	fragments = append(fragments, builderDecl)

	constructor, err := e.render("constructor", base)
	if err != nil {
		return nil, err
	}
	fragments = append(fragments, constructor)

	for _, member := range record.Members {
		if member.HasSetter {
			setter, err := e.render("setter", merge(base, map[string]any{
				"method":  member.Method,
				"field":   member.Field,
				"param":   paramType(member),
				"value":   storeExpr(member),
				"comment": setterComment(member),
			}))
			if err != nil {
				return nil, err
			}
			fragments = append(fragments, setter)
		}
		if member.Append != "" {
			appender, err := e.render("appender", merge(base, map[string]any{
				"method": member.Append,
				"member": member.Name,
				"elem":   member.Elem,
				"field":  member.Field,
			}))
			if err != nil {
				return nil, err
			}
			fragments = append(fragments, appender)
		}
	}

	members := make([]map[string]any, 0, len(record.Members))
	for _, member := range record.Members {
		members = append(members, map[string]any{
			"name":  member.Name,
			"field": member.Field,
			"kind":  string(member.Kind),
		})
	}
	finalizer, err := e.render("finalizer", merge(base, map[string]any{"members": members}))
	if err != nil {
		return nil, err
	}
	fragments = append(fragments, finalizer)

	errDecl, err := e.render("error", base)
	if err != nil {
		return nil, err
	}
	fragments = append(fragments, errDecl)

	return fragments, nil
}

func (e *Emitter) render(name string, ctx map[string]any) (string, error) {
	out, err := e.engine.RenderTemplate(name, ctx)
	if err != nil {
		return "", fmt.Errorf("gofile: render %s fragment: %w", name, err)
	}
	return strings.TrimSpace(out), nil
}

func header(record model.Record, options emit.Options) string {
	line := strings.TrimSpace(options.Header)
	if line == "" {
		line = defaultHeader
	}

	var b strings.Builder
	b.WriteString("// " + line + "\n")
	if len(record.Diagnostics) > 0 {
		b.WriteString("//\n")
		for _, diagnostic := range record.Diagnostics {
			b.WriteString("// buildergen: " + diagnostic.String() + "\n")
		}
	}
	return b.String()
}

// storageType is the builder's backing field type: repeated slots stay a bare
// slice so they default to empty, everything else is pointer-wrapped so the
// finalizer can distinguish absent from zero. Optional members are stored
// one level unwrapped, *T rather than **T.
func storageType(member model.Member) string {
	if member.Kind == model.KindRepeated {
		return "[]" + member.Elem
	}
	return "*" + member.Elem
}

func paramType(member model.Member) string {
	if member.Kind == model.KindRepeated {
		return "[]" + member.Elem
	}
	return member.Elem
}

func storeExpr(member model.Member) string {
	if member.Kind == model.KindRepeated {
		return "v"
	}
	return "&v"
}

func setterComment(member model.Member) string {
	switch member.Kind {
	case model.KindOptional:
		return fmt.Sprintf("%s sets the optional %s field.", member.Method, member.Name)
	case model.KindRepeated:
		return fmt.Sprintf("%s replaces the %s slice wholesale, discarding prior values.", member.Method, member.Name)
	default:
		return fmt.Sprintf("%s sets the %s field. Build fails while it is unset.", member.Method, member.Name)
	}
}

func merge(base, extra map[string]any) map[string]any {
	ctx := make(map[string]any, len(base)+len(extra))
	for key, value := range base {
		ctx[key] = value
	}
	for key, value := range extra {
		ctx[key] = value
	}
	return ctx
}
