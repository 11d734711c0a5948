package gosource

import (
	"errors"
	"go/ast"
	"go/token"
)

// Document wraps a raw Go source payload and its origin. By exposing this type
// instead of go/ast file handles we keep the public API decoupled from the
// parsing implementation.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument constructs a Document wrapper while validating the inputs.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("gosource: source is required")
	}
	if len(raw) == 0 {
		return Document{}, errors.New("gosource: raw source is empty")
	}

	clone := append([]byte(nil), raw...)
	return Document{source: src, raw: clone}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Raw returns a defensive copy of the source payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// DeclKind tags the underlying shape of a parsed type declaration. The model
// builder only accepts DeclKindStruct; the other tags exist so it can report
// precise structural errors.
type DeclKind string

const (
	DeclKindStruct    DeclKind = "struct"
	DeclKindInterface DeclKind = "interface"
	DeclKindOther     DeclKind = "other"
)

// Field is a single named member of a struct declaration. Type holds the
// declared type expression as parsed; classification downstream is purely
// syntactic and never resolves named types.
type Field struct {
	// Name is the declared field name. Empty for embedded fields, which the
	// model builder rejects.
	Name string

	// Embedded marks anonymous fields.
	Embedded bool

	// Type is the declared type expression.
	Type ast.Expr

	// Tag is the unquoted struct tag, or "" when absent.
	Tag string

	// Pos locates the field for diagnostics.
	Pos token.Position
}

// Declaration is the parsed representation of one type declaration, the input
// contract of the model builder.
type Declaration struct {
	// Name is the declared type name.
	Name string

	// Package is the name of the package the declaration belongs to.
	Package string

	// Kind tags the underlying type shape.
	Kind DeclKind

	// Fields lists the named members in declaration order. Only populated for
	// struct declarations.
	Fields []Field

	// Imports maps local import names to import paths for the file the
	// declaration was found in. The local name is the explicit alias when one
	// is present, otherwise the last path element.
	Imports map[string]string

	// Pos locates the declaration for diagnostics.
	Pos token.Position
}
