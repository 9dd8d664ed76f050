// Package render turns resolved themes into persistable documents. Each
// renderer owns one output format; the registry maps the names used in
// configuration onto implementations.
package render

import (
	"fmt"
	"sort"
	"sync"

	"pigment/internal/theme"
	pigmenterrors "pigment/pkg/errors"
)

// Renderer serialises one resolved theme into one output document.
type Renderer interface {
	// Name is the identifier renderers are selected by in configuration.
	Name() string

	// Filename returns the artifact name for one variant.
	Filename(def theme.Definition) string

	// Render produces the serialised document.
	Render(resolved *theme.ResolvedTheme) ([]byte, error)
}

// Registry maps renderer names onto implementations.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{renderers: make(map[string]Renderer)}
}

// Register adds a renderer under its own name.
func (r *Registry) Register(ren Renderer) error {
	if ren == nil {
		return pigmenterrors.NewRendererError("", fmt.Errorf("renderer is nil"))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	name := ren.Name()
	if _, exists := r.renderers[name]; exists {
		return pigmenterrors.NewRendererError(name, fmt.Errorf("renderer already registered"))
	}

	r.renderers[name] = ren
	return nil
}

// Get retrieves a renderer by name.
func (r *Registry) Get(name string) (Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ren, ok := r.renderers[name]
	if !ok {
		return nil, pigmenterrors.NewRendererError(name, fmt.Errorf("no renderer registered"))
	}

	return ren, nil
}

// Names lists the registered renderer names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry returns a registry carrying every built-in renderer.
func DefaultRegistry() (*Registry, error) {
	reg := NewRegistry()
	for _, ren := range []Renderer{NewVSCode(), NewAlacritty()} {
		if err := reg.Register(ren); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
