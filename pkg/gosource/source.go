package gosource

import "path/filepath"

// Source identifies where a Go source unit originated. Loaders operate on
// files, fs.FS entries, or inline payloads without leaking implementation
// details into the rest of the pipeline.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile   SourceKind = "file"
	SourceKindFS     SourceKind = "fs"
	SourceKindInline SourceKind = "inline"
)

// fileSource identifies on-disk Go files.
type fileSource struct {
	path string
}

func (s fileSource) Location() string {
	return s.path
}

func (s fileSource) Kind() SourceKind {
	return SourceKindFile
}

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

// fsSource references a path within an fs.FS.
type fsSource struct {
	name string
}

func (s fsSource) Location() string {
	return s.name
}

func (s fsSource) Kind() SourceKind {
	return SourceKindFS
}

// SourceFromFS returns a Source identifying a resource inside an fs.FS.
func SourceFromFS(name string) Source {
	return fsSource{name: name}
}

// inlineSource carries the payload directly, useful for tests and tooling that
// already hold the source text in memory.
type inlineSource struct {
	name string
	raw  []byte
}

func (s inlineSource) Location() string {
	return s.name
}

func (s inlineSource) Kind() SourceKind {
	return SourceKindInline
}

func (s inlineSource) payload() []byte {
	return append([]byte(nil), s.raw...)
}

// SourceFromBytes returns a Source wrapping an in-memory payload. The name is
// used for position reporting only; it defaults to "source.go" when empty.
func SourceFromBytes(name string, raw []byte) Source {
	if name == "" {
		name = "source.go"
	}
	return inlineSource{name: name, raw: append([]byte(nil), raw...)}
}

// SourceFromString is a convenience over SourceFromBytes.
func SourceFromString(name, raw string) Source {
	return SourceFromBytes(name, []byte(raw))
}

// InlinePayload extracts the inline payload from a Source when it carries one.
func InlinePayload(src Source) ([]byte, bool) {
	inline, ok := src.(inlineSource)
	if !ok {
		return nil, false
	}
	return inline.payload(), true
}
