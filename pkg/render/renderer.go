package render

import (
	"context"

	"github.com/goliatone/go-paramdoc/pkg/fragment"
)

// Renderer converts fragment nodes into a byte representation (reST,
// Markdown, HTML).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, nodes []fragment.Node, options RenderOptions) ([]byte, error)
}
