package render

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ErrUnknownRenderer is returned when no renderer or alias matches a name.
var ErrUnknownRenderer = errors.New("render: unknown renderer")

// Registry maps output format names to renderers. Names are matched without
// regard to case, and aliases such as "md" may point at a registered format.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
	aliases   map[string]string
}

func NewRegistry() *Registry {
	return &Registry{
		renderers: make(map[string]Renderer),
		aliases:   make(map[string]string),
	}
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register adds a renderer under its Name(). A name already used by a
// renderer or an alias is rejected.
func (r *Registry) Register(renderer Renderer) error {
	if renderer == nil {
		return errors.New("render: renderer is required")
	}
	name := normalizeName(renderer.Name())
	if name == "" {
		return errors.New("render: renderer name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.renderers[name]; exists {
		return fmt.Errorf("render: renderer %q already registered", name)
	}
	if target, exists := r.aliases[name]; exists {
		return fmt.Errorf("render: %q is already an alias for %q", name, target)
	}
	r.renderers[name] = renderer
	return nil
}

// MustRegister panics on registration failure.
func (r *Registry) MustRegister(renderer Renderer) {
	if err := r.Register(renderer); err != nil {
		panic(err)
	}
}

// Alias makes alias resolve to the renderer registered as name.
func (r *Registry) Alias(alias, name string) error {
	alias, name = normalizeName(alias), normalizeName(name)
	if alias == "" {
		return errors.New("render: alias is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.renderers[name]; !ok {
		return fmt.Errorf("%w %q (alias %q)", ErrUnknownRenderer, name, alias)
	}
	if _, exists := r.renderers[alias]; exists {
		return fmt.Errorf("render: alias %q shadows a renderer", alias)
	}
	r.aliases[alias] = name
	return nil
}

// Get resolves a renderer by name or alias. The error for an unknown name
// wraps ErrUnknownRenderer and lists the registered formats.
func (r *Registry) Get(name string) (Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if renderer, ok := r.lookup(name); ok {
		return renderer, nil
	}
	return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownRenderer, name, strings.Join(r.names(), ", "))
}

// List returns the sorted renderer names, without aliases.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.names()
}

func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.lookup(name)
	return ok
}

func (r *Registry) lookup(name string) (Renderer, bool) {
	name = normalizeName(name)
	if target, ok := r.aliases[name]; ok {
		name = target
	}
	renderer, ok := r.renderers[name]
	return renderer, ok
}

func (r *Registry) names() []string {
	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
