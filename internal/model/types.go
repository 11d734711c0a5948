package model

import "github.com/goliatone/go-buildergen/pkg/diag"

// Kind is the slot classification for a record member. Classification is
// purely syntactic: a pointer type is Optional, a slice type is Repeated,
// everything else is Required. Named types whose underlying type is a pointer
// or slice are deliberately not resolved and classify as Required.
type Kind string

const (
	KindRequired Kind = "required"
	KindOptional Kind = "optional"
	KindRepeated Kind = "repeated"
)

// Member is one classified struct field plus the derived naming the emitters
// consume. Struct fields are annotated so tooling emitters can serialise the
// model directly.
type Member struct {
	// Name is the field name as declared on the record.
	Name string `json:"name"`

	// Field is the name of the backing field on the generated builder.
	Field string `json:"field"`

	// Method is the setter method name.
	Method string `json:"method"`

	// Kind is the slot classification.
	Kind Kind `json:"kind"`

	// Type is the declared type expression, verbatim.
	Type string `json:"type"`

	// Elem is the value type the builder works with: the declared type for
	// Required members, the pointee for Optional members, and the element
	// type for Repeated members.
	Elem string `json:"elem"`

	// Append is the appender method name for Repeated members carrying an
	// each directive, empty otherwise.
	Append string `json:"append,omitempty"`

	// HasSetter reports whether the bulk setter is emitted. It is false only
	// for Repeated members whose appender name equals the setter name.
	HasSetter bool `json:"hasSetter"`
}

// Import records a source-file import that member types reference, so the
// emitted companion file can redeclare it.
type Import struct {
	// Name is the local name when the source file aliased the import, empty
	// when the last path element suffices.
	Name string `json:"name,omitempty"`

	// Path is the import path.
	Path string `json:"path"`
}

// Record is the classified representation of one struct declaration, the
// contract between the model builder and the emitters.
type Record struct {
	// Name is the origin type name.
	Name string `json:"name"`

	// Package is the package the origin type belongs to.
	Package string `json:"package"`

	// Members lists the classified members in declaration order.
	Members []Member `json:"members"`

	// Imports lists the imports the member types reference, sorted by path.
	Imports []Import `json:"imports,omitempty"`

	// Diagnostics collects the non-fatal problems found while classifying.
	// Generation proceeds; emitters surface these alongside the output.
	Diagnostics []diag.Diagnostic `json:"diagnostics,omitempty"`
}

// HasAppenders reports whether any member carries an each directive.
func (r Record) HasAppenders() bool {
	for _, member := range r.Members {
		if member.Append != "" {
			return true
		}
	}
	return false
}
