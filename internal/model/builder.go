package model

import (
	"errors"
	"fmt"
	"go/ast"
	"go/types"
	"path"
	"reflect"
	"sort"
	"strings"

	"github.com/goliatone/go-buildergen/pkg/diag"
	pkggosource "github.com/goliatone/go-buildergen/pkg/gosource"
)

const defaultTagKey = "builder"

// Options configures the model builder.
type Options struct {
	// TagKey is the struct tag namespace holding customization directives.
	// Defaults to "builder".
	TagKey string
}

func defaultOptions() Options {
	return Options{TagKey: defaultTagKey}
}

// Builder converts parsed declarations into classified records.
type Builder struct {
	opts Options
}

// New creates a Builder with the supplied options.
func New(options Options) *Builder {
	opts := defaultOptions()
	if strings.TrimSpace(options.TagKey) != "" {
		opts.TagKey = strings.TrimSpace(options.TagKey)
	}
	return &Builder{opts: opts}
}

// Build classifies every member of the declaration and returns the Record the
// emitters consume. The declaration must be a struct with named fields;
// anything else is a structural error and no record is produced. Directive
// problems never fail the build: they are collected on Record.Diagnostics and
// the offending directive is ignored.
func (b *Builder) Build(decl pkggosource.Declaration) (Record, error) {
	if decl.Name == "" {
		return Record{}, errors.New("model: declaration name is required")
	}
	if decl.Kind != pkggosource.DeclKindStruct {
		return Record{}, fmt.Errorf("model: %s is declared as %s; builders require a struct with named fields", decl.Name, decl.Kind)
	}

	record := Record{
		Name:    decl.Name,
		Package: decl.Package,
	}

	for _, field := range decl.Fields {
		if field.Embedded {
			return Record{}, fmt.Errorf("model: %s embeds %s; builders require named fields", decl.Name, types.ExprString(field.Type))
		}
		member, diagnostics := b.member(field)
		record.Members = append(record.Members, member)
		record.Diagnostics = append(record.Diagnostics, diagnostics...)
	}

	if err := checkNameCollisions(&record); err != nil {
		return Record{}, err
	}
	record.Diagnostics = append(record.Diagnostics, resolveAppenderCollisions(decl, &record)...)

	record.Imports = referencedImports(decl)
	return record, nil
}

// checkNameCollisions rejects declarations whose members render to the same
// builder field or setter, which happens when two fields differ only in
// letter case. The companion could not compile, so this is structural.
func checkNameCollisions(record *Record) error {
	fields := make(map[string]string, len(record.Members))
	methods := make(map[string]string, len(record.Members))
	for _, member := range record.Members {
		if prev, ok := fields[member.Field]; ok {
			return fmt.Errorf("model: %s fields %s and %s collide on builder field %s", record.Name, prev, member.Name, member.Field)
		}
		fields[member.Field] = member.Name
		if prev, ok := methods[member.Method]; ok {
			return fmt.Errorf("model: %s fields %s and %s collide on setter %s", record.Name, prev, member.Name, member.Method)
		}
		methods[member.Method] = member.Name
	}
	return nil
}

// resolveAppenderCollisions drops each directives whose rendered name is
// already taken by another member's method, restoring the bulk setter. Like
// every other directive problem this degrades to a diagnostic.
func resolveAppenderCollisions(decl pkggosource.Declaration, record *Record) []diag.Diagnostic {
	taken := make(map[string]string, len(record.Members))
	for _, member := range record.Members {
		if member.HasSetter {
			taken[member.Method] = member.Name
		}
	}

	var diagnostics []diag.Diagnostic
	for i := range record.Members {
		member := &record.Members[i]
		if member.Append == "" {
			continue
		}
		if owner, ok := taken[member.Append]; ok {
			diagnostics = append(diagnostics, diag.Errorf(decl.Fields[i].Pos,
				"each directive on %s names %s, which is already the method for %s",
				member.Name, member.Append, owner))
			member.Append = ""
			member.HasSetter = true
			taken[member.Method] = member.Name
			continue
		}
		taken[member.Append] = member.Name
	}
	return diagnostics
}

func (b *Builder) member(field pkggosource.Field) (Member, []diag.Diagnostic) {
	kind, elem := classify(field.Type)

	member := Member{
		Name:      field.Name,
		Field:     unexportName(field.Name),
		Method:    exportName(field.Name),
		Kind:      kind,
		Type:      types.ExprString(field.Type),
		Elem:      types.ExprString(elem),
		HasSetter: true,
	}

	value, ok := reflect.StructTag(field.Tag).Lookup(b.opts.TagKey)
	if !ok {
		return member, nil
	}

	name, diagnostics := b.directive(field, kind, value)
	if name != "" {
		member.Append = exportName(name)
		member.HasSetter = member.Append != member.Method
	}
	return member, diagnostics
}

// directive validates one customization entry. The only recognized form is
// each=<name> on a slice member; everything else degrades to a diagnostic.
func (b *Builder) directive(field pkggosource.Field, kind Kind, value string) (string, []diag.Diagnostic) {
	key, name, found := strings.Cut(value, "=")
	key = strings.TrimSpace(key)
	name = strings.TrimSpace(name)

	if !found || key != "each" {
		return "", []diag.Diagnostic{diag.Warningf(field.Pos,
			"unrecognized %s tag %q on %s; expected `%s:\"each=<name>\"`",
			b.opts.TagKey, value, field.Name, b.opts.TagKey)}
	}
	if kind != KindRepeated {
		return "", []diag.Diagnostic{diag.Errorf(field.Pos,
			"each directive on %s requires a slice type, got %s",
			field.Name, types.ExprString(field.Type))}
	}
	if !isIdentifier(name) {
		return "", []diag.Diagnostic{diag.Errorf(field.Pos,
			"each directive on %s names %q, which is not a valid identifier",
			field.Name, name)}
	}
	return name, nil
}

// classify pattern-matches the declared type expression. It looks only at the
// outermost syntactic shape: pointers are Optional, slices are Repeated, and
// everything else, including named types that alias pointers or slices, is
// Required.
func classify(expr ast.Expr) (Kind, ast.Expr) {
	switch t := expr.(type) {
	case *ast.StarExpr:
		return KindOptional, t.X
	case *ast.ArrayType:
		if t.Len == nil {
			return KindRepeated, t.Elt
		}
	}
	return KindRequired, expr
}

// referencedImports keeps the subset of the source file's imports that member
// type expressions actually qualify, so the generated file can restate them.
func referencedImports(decl pkggosource.Declaration) []Import {
	if len(decl.Imports) == 0 {
		return nil
	}

	used := make(map[string]struct{})
	for _, field := range decl.Fields {
		if field.Type == nil {
			continue
		}
		ast.Inspect(field.Type, func(node ast.Node) bool {
			sel, ok := node.(*ast.SelectorExpr)
			if !ok {
				return true
			}
			if ident, ok := sel.X.(*ast.Ident); ok {
				used[ident.Name] = struct{}{}
			}
			return true
		})
	}
	if len(used) == 0 {
		return nil
	}

	imports := make([]Import, 0, len(used))
	for local, importPath := range decl.Imports {
		if _, ok := used[local]; !ok {
			continue
		}
		imp := Import{Path: importPath}
		if local != path.Base(importPath) {
			imp.Name = local
		}
		imports = append(imports, imp)
	}
	sort.Slice(imports, func(i, j int) bool {
		return imports[i].Path < imports[j].Path
	})
	return imports
}
