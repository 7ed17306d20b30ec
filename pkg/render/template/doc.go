// Package template defines the template engine seam used by renderers that
// wrap their output in theme-aware markup.
package template
