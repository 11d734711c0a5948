// Package template defines the renderer-agnostic template contract emitters
// build on, decoupling fragment rendering from the concrete engine.
package template

import "io"

// TemplateRenderer mirrors the github.com/goliatone/go-template engine
// contract, providing the seam emitters rely on.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
