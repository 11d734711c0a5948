// Package parser implements the declaration inspector: it parses one Go
// source unit and extracts every type declaration's name, shape, and member
// list. It is a pure syntax pass over go/ast; no type checking happens here.
package parser

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	goparser "go/parser"
	"go/token"
	"path"
	"strconv"
	"strings"

	pkggosource "github.com/goliatone/go-buildergen/pkg/gosource"
)

// Parser implements pkggosource.Parser using go/parser.
type Parser struct {
	options pkggosource.ParserOptions
}

// Ensure the implementation satisfies the public interface.
var _ pkggosource.Parser = (*Parser)(nil)

// New constructs a Parser with the given options.
func New(options pkggosource.ParserOptions) pkggosource.Parser {
	return &Parser{options: options}
}

// Declarations converts a Document into a map keyed by type name.
func (p *Parser) Declarations(ctx context.Context, doc pkggosource.Document) (map[string]pkggosource.Declaration, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, errors.New("gosource parser: document payload is empty")
	}

	filename := doc.Location()
	if filename == "" {
		filename = "source.go"
	}

	fset := token.NewFileSet()
	file, err := goparser.ParseFile(fset, filename, raw, goparser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("gosource parser: parse %q: %w", filename, err)
	}

	imports := collectImports(file)

	declarations := make(map[string]pkggosource.Declaration)
	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}
		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok || typeSpec.Name == nil {
				continue
			}
			name := typeSpec.Name.Name
			if !p.options.IncludeUnexported && !ast.IsExported(name) {
				continue
			}
			declarations[name] = p.declaration(fset, file, typeSpec, imports)
		}
	}

	// A file without type declarations is not an error: callers listing a
	// source unit's candidates get an empty map and decide for themselves.
	return declarations, nil
}

func (p *Parser) declaration(fset *token.FileSet, file *ast.File, spec *ast.TypeSpec, imports map[string]string) pkggosource.Declaration {
	decl := pkggosource.Declaration{
		Name:    spec.Name.Name,
		Package: file.Name.Name,
		Imports: imports,
		Pos:     fset.Position(spec.Pos()),
	}

	switch t := spec.Type.(type) {
	case *ast.StructType:
		decl.Kind = pkggosource.DeclKindStruct
		decl.Fields = collectFields(fset, t)
	case *ast.InterfaceType:
		decl.Kind = pkggosource.DeclKindInterface
	default:
		decl.Kind = pkggosource.DeclKindOther
	}

	return decl
}

func collectFields(fset *token.FileSet, structType *ast.StructType) []pkggosource.Field {
	if structType.Fields == nil {
		return nil
	}

	fields := make([]pkggosource.Field, 0, len(structType.Fields.List))
	for _, field := range structType.Fields.List {
		tag := unquoteTag(field.Tag)
		if len(field.Names) == 0 {
			fields = append(fields, pkggosource.Field{
				Embedded: true,
				Type:     field.Type,
				Tag:      tag,
				Pos:      fset.Position(field.Pos()),
			})
			continue
		}
		// A single declaration line may name several fields; each becomes its
		// own member sharing the type and tag.
		for _, name := range field.Names {
			fields = append(fields, pkggosource.Field{
				Name: name.Name,
				Type: field.Type,
				Tag:  tag,
				Pos:  fset.Position(name.Pos()),
			})
		}
	}
	return fields
}

func collectImports(file *ast.File) map[string]string {
	if len(file.Imports) == 0 {
		return nil
	}

	imports := make(map[string]string, len(file.Imports))
	for _, spec := range file.Imports {
		importPath, err := strconv.Unquote(spec.Path.Value)
		if err != nil || importPath == "" {
			continue
		}
		local := path.Base(importPath)
		if spec.Name != nil {
			local = spec.Name.Name
		}
		if local == "_" || local == "." {
			continue
		}
		imports[local] = importPath
	}
	return imports
}

func unquoteTag(tag *ast.BasicLit) string {
	if tag == nil {
		return ""
	}
	unquoted, err := strconv.Unquote(tag.Value)
	if err != nil {
		return strings.Trim(tag.Value, "`")
	}
	return unquoted
}
