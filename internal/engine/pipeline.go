// Package engine orchestrates palette resolution into fully resolved
// themes. A Pipeline prepares the inputs shared by every variant once;
// a Runner fans Build calls out across a bounded worker pool.
package engine

import (
	"os"
	"path/filepath"

	"pigment/internal/assets"
	"pigment/internal/logger"
	"pigment/internal/mapping"
	"pigment/internal/palette"
	"pigment/internal/theme"
	pigmenterrors "pigment/pkg/errors"
)

// Params configures pipeline construction.
type Params struct {
	// SourcesDir, when set, overrides the embedded palette sources with
	// files read from disk. Filenames must match the variant definitions.
	SourcesDir string
	// Overrides are applied on top of the extension layer during merge.
	Overrides map[string]string
	Options   theme.Options
}

// Pipeline holds the variant-independent generation inputs: the parsed
// extension layer and the flattened mapping documents. Palette sources
// are loaded per variant inside Build.
type Pipeline struct {
	params   Params
	ext      palette.Extension
	elements []mapping.Entry
	tokens   []mapping.Entry
	resolver *palette.Resolver
	log      *logger.Logger
}

// NewPipeline parses the shared documents and returns a ready pipeline.
func NewPipeline(params Params, log *logger.Logger) (*Pipeline, error) {
	if log == nil {
		log = logger.Nop()
	}

	extData, err := assets.ExtensionDocument()
	if err != nil {
		return nil, err
	}
	ext, err := palette.ParseExtension("harmony.json", extData)
	if err != nil {
		return nil, err
	}

	elements, err := loadElementEntries(params.Options.IncludeExperimental)
	if err != nil {
		return nil, err
	}

	tokenData, err := assets.SyntaxMappings()
	if err != nil {
		return nil, err
	}
	tokenDoc, err := mapping.ParseDocument("syntax.jsonc", tokenData)
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		params:   params,
		ext:      ext,
		elements: elements,
		tokens:   mapping.Entries("", tokenDoc),
		resolver: palette.NewResolver(log),
		log:      log,
	}, nil
}

// Build assembles the fully resolved theme for a single variant. Failures
// are scoped to the variant so sibling builds keep running.
func (p *Pipeline) Build(def theme.Definition) (*theme.ResolvedTheme, error) {
	merged, err := p.mergedPalette(def)
	if err != nil {
		return nil, err
	}

	return theme.Synthesize(theme.Inputs{
		Definition: def,
		Palette:    merged,
		Elements:   p.elements,
		Tokens:     p.tokens,
		Options:    p.params.Options,
	}, p.resolver, p.log.WithVariant(def.ID)), nil
}

// Swatches resolves every named palette entry for one variant and returns
// the flat name to hex table shown by preview mode. Names whose reference
// chains fail are logged and dropped, matching synthesis behaviour.
func (p *Pipeline) Swatches(def theme.Definition) (map[string]string, error) {
	merged, err := p.mergedPalette(def)
	if err != nil {
		return nil, err
	}

	log := p.log.WithVariant(def.ID)
	out := make(map[string]string, len(merged.Direct)+len(merged.Semantic))
	for name := range merged.Semantic {
		hex, err := p.resolver.Resolve(name, merged)
		if err != nil {
			log.WithFields(map[string]any{"name": name}).Warn("swatch dropped, reference does not resolve")
			continue
		}
		out[name] = hex
	}
	for name := range merged.Direct {
		hex, err := p.resolver.Resolve(name, merged)
		if err != nil {
			continue
		}
		out[name] = hex
	}
	return out, nil
}

func (p *Pipeline) mergedPalette(def theme.Definition) (*palette.Palette, error) {
	text, err := p.sourceText(def)
	if err != nil {
		return nil, err
	}

	base, err := palette.ParseSource(def.Source, text)
	if err != nil {
		return nil, err
	}

	return palette.Merge(base, p.ext, p.params.Overrides, def.ID, p.log.WithVariant(def.ID)), nil
}

func (p *Pipeline) sourceText(def theme.Definition) (string, error) {
	if p.params.SourcesDir != "" {
		path := filepath.Join(p.params.SourcesDir, def.Source)
		data, err := os.ReadFile(path)
		if err != nil {
			return "", pigmenterrors.NewParseError(path, err)
		}
		return string(data), nil
	}

	data, err := assets.Source(def.Source)
	if err != nil {
		return "", pigmenterrors.NewParseError(def.Source, err)
	}
	return string(data), nil
}

// loadElementEntries flattens the workbench document, folding in the
// experimental sections when requested. Experimental sections shadow
// stable ones of the same name.
func loadElementEntries(includeExperimental bool) ([]mapping.Entry, error) {
	data, err := assets.WorkbenchMappings()
	if err != nil {
		return nil, err
	}
	doc, err := mapping.ParseDocument("workbench.jsonc", data)
	if err != nil {
		return nil, err
	}

	if includeExperimental {
		extra, err := assets.ExperimentalMappings()
		if err != nil {
			return nil, err
		}
		extraDoc, err := mapping.ParseDocument("workbench-experimental.jsonc", extra)
		if err != nil {
			return nil, err
		}
		for section, node := range extraDoc {
			doc[section] = node
		}
	}

	return mapping.Entries("", doc), nil
}
