// Package template declares the engine contract renderers depend on, so
// the concrete template backend can be swapped without touching a view.
package template

import "io"

// TemplateRenderer renders named templates or inline template content.
type TemplateRenderer interface {
	RenderTemplate(name string, data map[string]any, out ...io.Writer) (string, error)
	RenderString(content string, data map[string]any, out ...io.Writer) (string, error)
}
