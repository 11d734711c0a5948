package model

import (
	"github.com/goliatone/go-buildergen/internal/model"
	pkggosource "github.com/goliatone/go-buildergen/pkg/gosource"
)

// Builder converts parsed declarations into classified records.
type Builder interface {
	Build(decl pkggosource.Declaration) (Record, error)
}

// BuilderOption configures the builder behaviour.
type BuilderOption func(*builderOptions)

type builderOptions struct {
	tagKey string
}

// WithTagKey overrides the struct tag namespace read for customization
// directives. The default is "builder".
func WithTagKey(key string) BuilderOption {
	return func(opts *builderOptions) {
		opts.tagKey = key
	}
}

// NewBuilder returns a Builder backed by the internal implementation.
func NewBuilder(options ...BuilderOption) Builder {
	cfg := builderOptions{}
	for _, opt := range options {
		opt(&cfg)
	}

	internalOpts := model.Options{}
	if cfg.tagKey != "" {
		internalOpts.TagKey = cfg.tagKey
	}

	return model.New(internalOpts)
}
