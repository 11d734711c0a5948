// Package testsupport gathers fixture and golden-file helpers shared by the
// package tests. Goldens regenerate when UPDATE_GOLDENS is set in the
// environment.
package testsupport

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	pkggosource "github.com/goliatone/go-buildergen/pkg/gosource"
)

// Context returns the context used by contract tests.
func Context() context.Context {
	return context.Background()
}

// LoadDocument reads a fixture and builds a gosource.Document using a file
// source. Testing helpers fail fast to keep contract tests concise.
func LoadDocument(t *testing.T, path string) pkggosource.Document {
	t.Helper()

	doc, err := LoadDocumentFromPath(path)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	return doc
}

// LoadDocumentFromPath returns a Document without requiring testing.T,
// allowing callers to wire fixtures in setup functions.
func LoadDocumentFromPath(path string) (pkggosource.Document, error) {
	if path == "" {
		return pkggosource.Document{}, errors.New("testsupport: document path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return pkggosource.Document{}, fmt.Errorf("testsupport: read document: %w", err)
	}
	doc, err := pkggosource.NewDocument(pkggosource.SourceFromFile(path), data)
	if err != nil {
		return pkggosource.Document{}, fmt.Errorf("testsupport: new document: %w", err)
	}
	return doc, nil
}

// MustReadGolden loads a golden file or fails the test.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden %q: %v (set UPDATE_GOLDENS=1 to create it)", path, err)
	}
	return data
}

// MustReadGoldenString loads a golden file as a string.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden writes the golden file when UPDATE_GOLDENS is set and
// reports whether it did, letting callers short-circuit the comparison.
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// CompareGolden diffs want against got, returning an empty string when they
// match.
func CompareGolden(want, got string) string {
	return cmp.Diff(want, got)
}
