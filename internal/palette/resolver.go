package palette

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"pigment/internal/logger"
	pigmenterrors "pigment/pkg/errors"
)

// Resolver turns symbolic color references into concrete hex values. It is
// stateless after construction; a single instance serves every variant.
type Resolver struct {
	log *logger.Logger
}

// NewResolver constructs a Resolver with the given logger.
func NewResolver(log *logger.Logger) *Resolver {
	return &Resolver{log: log}
}

// Resolve maps a reference to a concrete color using ordered lookups:
// opacity suffix, literal hex, direct entry, semantic chain, variant
// blocks. Recursion through aliases and variant blocks is bounded by a
// visited set; a revisited name counts as not found for that chain, so
// cyclic definitions fail instead of looping.
func (r *Resolver) Resolve(ref string, pal *Palette) (string, error) {
	return r.resolve(ref, pal, make(map[string]bool))
}

func (r *Resolver) resolve(ref string, pal *Palette, visited map[string]bool) (string, error) {
	if strings.Contains(ref, "@") {
		return r.resolveOpacity(ref, pal, visited)
	}
	if strings.HasPrefix(ref, "#") {
		return ref, nil
	}
	if pal == nil {
		return "", pigmenterrors.NewColorReferenceError(ref)
	}

	if value, ok := pal.Direct[ref]; ok {
		return value, nil
	}

	if visited[ref] {
		return "", pigmenterrors.NewColorReferenceError(ref)
	}
	visited[ref] = true

	if target, ok := pal.Semantic[ref]; ok {
		value, err := r.resolve(target, pal, visited)
		if err == nil {
			return value, nil
		}
		r.log.WithFields(map[string]any{"reference": ref, "target": target}).
			Debug("alias chain unresolved, scanning variant blocks")
	}

	ids := make([]string, 0, len(pal.Variants))
	for id := range pal.Variants {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		raw, ok := pal.Variants[id][ref]
		if !ok {
			continue
		}
		value, err := r.resolve(raw, pal, visited)
		if err != nil {
			r.log.WithFields(map[string]any{"reference": ref, "variant": id, "value": raw}).
				Debug("variant override unresolved, keeping raw value")
			return raw, nil
		}
		return value, nil
	}

	return "", pigmenterrors.NewColorReferenceError(ref)
}

// resolveOpacity handles the "name@fraction" form: the suffix is split off
// once, validated, and applied to the fully resolved base color.
func (r *Resolver) resolveOpacity(ref string, pal *Palette, visited map[string]bool) (string, error) {
	parts := strings.SplitN(ref, "@", 2)
	base, suffix := parts[0], parts[1]

	opacity, err := strconv.ParseFloat(suffix, 64)
	if err != nil {
		return "", pigmenterrors.NewColorOpacityError(ref, "missing or non-numeric opacity suffix")
	}
	if math.IsNaN(opacity) || math.IsInf(opacity, 0) || opacity < 0 || opacity > 1 {
		return "", pigmenterrors.NewColorOpacityError(ref, "opacity must be a finite number in [0,1]")
	}

	resolved, err := r.resolve(base, pal, visited)
	if err != nil {
		return "", err
	}

	return WithOpacity(resolved, opacity)
}
