// Package model defines the classified record representation consumed by
// emitters. The model builder resides in internal/model but returns the types
// defined here. A Record carries one member per named struct field with its
// slot kind (required, optional, repeated), the derived builder naming, and
// the non-fatal diagnostics collected while reading customization directives.
// Classification is syntactic only: pointer and slice shapes are recognized by
// the AST expression alone, so named types that wrap a pointer or slice
// classify as required. That is a documented limitation, not an oversight.
package model
