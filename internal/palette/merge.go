package palette

import (
	"strings"

	"pigment/internal/logger"
)

// Merge layers an extension document and user overrides on top of a base
// palette for one variant. Precedence, lowest to highest: base, extension
// direct/semantic maps, the extension's block for variantID, user
// overrides. Variant block and override values are classified direct iff
// they start with "#". The two sub-maps merge independently; a later alias
// never displaces an earlier direct entry of the same name, so concrete
// colors stay authoritative.
//
// Override entries are advisory: malformed ones are skipped with a warning
// and never abort the merge. The merged palette keeps every variant block
// from the extension so the resolver can fall back to them.
func Merge(base *Palette, ext Extension, overrides map[string]string, variantID string, log *logger.Logger) *Palette {
	merged := base.Clone()

	for name, value := range ext.Direct {
		merged.Direct[name] = value
	}
	for name, value := range ext.Semantic {
		merged.Semantic[name] = value
	}
	for id, block := range ext.Variants {
		copied := make(map[string]string, len(block))
		for name, value := range block {
			copied[name] = value
		}
		merged.Variants[id] = copied
	}

	if block, ok := ext.Variants[variantID]; ok {
		for name, value := range block {
			assign(merged, name, value)
		}
	}

	for name, value := range overrides {
		if name == "" || value == "" {
			log.WithFields(map[string]any{"name": name, "value": value}).
				Warn("skipping override with empty name or value")
			continue
		}
		if strings.HasPrefix(value, "#") && !IsHex(value) {
			log.WithFields(map[string]any{"name": name, "value": value}).
				Warn("skipping override with malformed hex value")
			continue
		}
		assign(merged, name, value)
	}

	return merged
}

func assign(p *Palette, name, value string) {
	if strings.HasPrefix(value, "#") {
		p.Direct[name] = value
	} else {
		p.Semantic[name] = value
	}
}
