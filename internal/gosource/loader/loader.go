package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	pkggosource "github.com/goliatone/go-buildergen/pkg/gosource"
)

// Loader implements pkggosource.Loader by delegating to file, fs.FS, or inline
// strategies. Construction helpers live in the top-level buildergen package.
type Loader struct {
	fs fs.FS
}

// Ensure the implementation satisfies the public interface.
var _ pkggosource.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options pkggosource.LoaderOptions) pkggosource.Loader {
	return &Loader{fs: options.FileSystem}
}

// Load fetches a source unit from the provided source and wraps it in a
// Document.
func (l *Loader) Load(ctx context.Context, src pkggosource.Source) (pkggosource.Document, error) {
	if src == nil {
		return pkggosource.Document{}, errors.New("gosource loader: source is nil")
	}
	if err := ctx.Err(); err != nil {
		return pkggosource.Document{}, err
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case pkggosource.SourceKindFile:
		data, err = os.ReadFile(src.Location())
		if err != nil {
			err = fmt.Errorf("gosource loader: read file %q: %w", src.Location(), err)
		}
	case pkggosource.SourceKindFS:
		data, err = l.loadFromFS(src.Location())
	case pkggosource.SourceKindInline:
		payload, ok := pkggosource.InlinePayload(src)
		if !ok {
			err = errors.New("gosource loader: inline source without payload")
		} else {
			data = payload
		}
	default:
		err = fmt.Errorf("gosource loader: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return pkggosource.Document{}, err
	}

	return pkggosource.NewDocument(src, data)
}

func (l *Loader) loadFromFS(name string) ([]byte, error) {
	if l.fs == nil {
		return nil, errors.New("gosource loader: fs source requires a filesystem")
	}
	data, err := fs.ReadFile(l.fs, name)
	if err != nil {
		return nil, fmt.Errorf("gosource loader: read fs entry %q: %w", name, err)
	}
	return data, nil
}
