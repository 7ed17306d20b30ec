package render

import theme "github.com/goliatone/go-theme"

// StylesheetAsset is the theme asset key renderers resolve for their
// stylesheet.
const StylesheetAsset = "paramdoc.stylesheet"

// RenderOptions describe per-call settings that renderers can use to customise
// their output without changing the fragment tree.
type RenderOptions struct {
	// AllowMarkup lets text nodes carry inline markup. Renderers that emit
	// HTML sanitise it instead of escaping it.
	AllowMarkup bool
	// Theme carries resolved theme tokens and asset lookups. Renderers that
	// have no styling hooks ignore it.
	Theme *theme.RendererConfig
}
