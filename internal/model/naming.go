package model

import (
	"go/token"
	"unicode"
)

// exportName upper-cases the first rune so the generated method is reachable
// from other packages even when the origin field is unexported.
func exportName(name string) string {
	if name == "" {
		return name
	}
	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// unexportName derives the builder's backing field name. The leading
// uppercase run is lowered, keeping the last capital when it starts a new
// word, so URL becomes url and JSONData becomes jsonData. Names that collapse
// onto a Go keyword get a trailing underscore.
func unexportName(name string) string {
	if name == "" {
		return name
	}

	runes := []rune(name)
	upper := 0
	for upper < len(runes) && unicode.IsUpper(runes[upper]) {
		upper++
	}
	if upper > 1 && upper < len(runes) {
		upper--
	}
	for i := 0; i < upper; i++ {
		runes[i] = unicode.ToLower(runes[i])
	}

	out := string(runes)
	if token.IsKeyword(out) {
		out += "_"
	}
	return out
}

// isIdentifier reports whether the string is a legal Go identifier, keywords
// excluded.
func isIdentifier(name string) bool {
	if name == "" || token.IsKeyword(name) {
		return false
	}
	for i, r := range name {
		if unicode.IsLetter(r) || r == '_' {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}
