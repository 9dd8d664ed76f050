// Package palette implements the palette resolution engine: parsing color
// definitions out of theme source text, layering extension and override
// maps, and resolving symbolic references to concrete hex values.
package palette

import (
	"encoding/json"
	"regexp"

	pigmenterrors "pigment/pkg/errors"
)

var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Palette holds the color definitions feeding one variant's resolution.
// Direct binds names to concrete "#RRGGBB" values, Semantic binds names to
// further references, and Variants carries per-variant override blocks
// taken from extension documents.
type Palette struct {
	Direct   map[string]string
	Semantic map[string]string
	Variants map[string]map[string]string
}

// Extension is an auxiliary palette document layered on top of a base
// palette during merge. Variant block values are classified at merge time:
// a "#"-prefixed value becomes a direct color, anything else an alias.
type Extension struct {
	Direct   map[string]string            `json:"direct"`
	Semantic map[string]string            `json:"semantic"`
	Variants map[string]map[string]string `json:"variants"`
}

// New returns a palette with allocated, empty maps.
func New() *Palette {
	return &Palette{
		Direct:   make(map[string]string),
		Semantic: make(map[string]string),
		Variants: make(map[string]map[string]string),
	}
}

// Clone returns a deep copy; mutations on the copy never reach the original.
func (p *Palette) Clone() *Palette {
	if p == nil {
		return New()
	}

	out := &Palette{
		Direct:   make(map[string]string, len(p.Direct)),
		Semantic: make(map[string]string, len(p.Semantic)),
		Variants: make(map[string]map[string]string, len(p.Variants)),
	}
	for name, value := range p.Direct {
		out.Direct[name] = value
	}
	for name, value := range p.Semantic {
		out.Semantic[name] = value
	}
	for id, block := range p.Variants {
		copied := make(map[string]string, len(block))
		for name, value := range block {
			copied[name] = value
		}
		out.Variants[id] = copied
	}

	return out
}

// ParseExtension decodes an auxiliary palette document from JSON.
func ParseExtension(path string, data []byte) (Extension, error) {
	var ext Extension
	if err := json.Unmarshal(data, &ext); err != nil {
		return Extension{}, pigmenterrors.NewParseError(path, err)
	}
	return ext, nil
}

// IsHex reports whether s is a "#RRGGBB" color literal.
func IsHex(s string) bool {
	return hexColorRegex.MatchString(s)
}
