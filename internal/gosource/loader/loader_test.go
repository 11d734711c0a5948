package loader_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-buildergen/internal/gosource/loader"
	pkggosource "github.com/goliatone/go-buildergen/pkg/gosource"
)

const sample = "package sample\n\ntype Task struct{ Title string }\n"

func TestLoader_ReadsFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.go")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	doc, err := loader.New(pkggosource.NewLoaderOptions()).Load(context.Background(), pkggosource.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(doc.Raw()) != sample {
		t.Fatalf("unexpected payload %q", doc.Raw())
	}
	if doc.Location() != path {
		t.Fatalf("expected location %q, got %q", path, doc.Location())
	}
}

func TestLoader_ReadsFromFilesystem(t *testing.T) {
	fsys := fstest.MapFS{
		"models/sample.go": &fstest.MapFile{Data: []byte(sample)},
	}

	l := loader.New(pkggosource.NewLoaderOptions(pkggosource.WithFileSystem(fsys)))
	doc, err := l.Load(context.Background(), pkggosource.SourceFromFS("models/sample.go"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(doc.Raw()) != sample {
		t.Fatalf("unexpected payload %q", doc.Raw())
	}
}

func TestLoader_FSSourceWithoutFilesystemFails(t *testing.T) {
	_, err := loader.New(pkggosource.NewLoaderOptions()).Load(context.Background(), pkggosource.SourceFromFS("models/sample.go"))
	if err == nil || !strings.Contains(err.Error(), "requires a filesystem") {
		t.Fatalf("expected filesystem error, got %v", err)
	}
}

func TestLoader_ReadsInlinePayload(t *testing.T) {
	doc, err := loader.New(pkggosource.NewLoaderOptions()).Load(context.Background(), pkggosource.SourceFromString("inline.go", sample))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(doc.Raw()) != sample {
		t.Fatalf("unexpected payload %q", doc.Raw())
	}
}

func TestLoader_HonoursContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := loader.New(pkggosource.NewLoaderOptions()).Load(ctx, pkggosource.SourceFromString("inline.go", sample))
	if err == nil {
		t.Fatal("expected context error")
	}
}
