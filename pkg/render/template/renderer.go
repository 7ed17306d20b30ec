package template

// TemplateRenderer is the engine contract renderers rely on.
type TemplateRenderer interface {
	// RenderTemplate executes a named template with per-call data. Per-call
	// keys shadow global ones.
	RenderTemplate(name string, data any) (string, error)
	// GlobalContext merges data into the values visible to every template.
	GlobalContext(data any) error
}
