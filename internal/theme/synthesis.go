package theme

import (
	"pigment/internal/logger"
	"pigment/internal/mapping"
	"pigment/internal/palette"
)

// Options is the configuration surface that shapes style-rule
// construction. It never influences palette resolution.
type Options struct {
	Italics              bool
	Bold                 bool
	SemanticHighlighting bool
	IncludeExperimental  bool
}

// StyleSettings is the resolved presentation of one rule.
type StyleSettings struct {
	Foreground string
	FontStyle  string
}

// ScopeRule colors a set of TextMate scopes.
type ScopeRule struct {
	Name     string
	Scopes   []string
	Settings StyleSettings
}

// ResolvedTheme is the synthesis output for one variant: identity, the
// flat color table, and both categorized rule lists. Immutable once built;
// renderers only read it.
type ResolvedTheme struct {
	Definition Definition
	Colors     map[string]string
	ScopeRules []ScopeRule
	TokenRules map[string]StyleSettings
	Semantic   bool
}

// Inputs carries everything Synthesize needs for one variant.
type Inputs struct {
	Definition Definition
	Palette    *palette.Palette
	Elements   []mapping.Entry
	Tokens     []mapping.Entry
	Options    Options
}

// Synthesize builds the resolved theme for one variant. Entries with empty
// references are skipped silently; entries whose reference fails to
// resolve are logged and dropped, never aborting the theme. Each token
// mapping resolves once and fans out into both the scope-keyed and the
// type-keyed rule lists.
func Synthesize(in Inputs, resolver *palette.Resolver, log *logger.Logger) *ResolvedTheme {
	out := &ResolvedTheme{
		Definition: in.Definition,
		Colors:     make(map[string]string, len(in.Elements)),
		TokenRules: make(map[string]StyleSettings, len(in.Tokens)),
		Semantic:   in.Options.SemanticHighlighting,
	}

	for _, entry := range in.Elements {
		if entry.Reference == "" {
			continue
		}
		value, err := resolver.Resolve(entry.Reference, in.Palette)
		if err != nil {
			log.WithFields(map[string]any{"path": entry.Path, "reference": entry.Reference}).
				Warn("dropping unresolvable element mapping")
			continue
		}
		out.Colors[entry.Path] = value
	}

	for _, entry := range in.Tokens {
		if entry.Reference == "" {
			continue
		}
		ref := tokenSource(in.Definition.ID, entry.Path, entry.Reference)
		value, err := resolver.Resolve(ref, in.Palette)
		if err != nil {
			log.WithFields(map[string]any{"path": entry.Path, "reference": ref}).
				Warn("dropping unresolvable token mapping")
			continue
		}

		cat := categoryFor(entry.Path)
		settings := StyleSettings{Foreground: value, FontStyle: styleFor(cat, in.Options)}

		out.ScopeRules = append(out.ScopeRules, ScopeRule{
			Name:     entry.Path,
			Scopes:   cat.Scopes,
			Settings: settings,
		})

		if len(cat.Types) == 0 {
			out.TokenRules[entry.Path] = settings
			continue
		}
		for _, typ := range cat.Types {
			out.TokenRules[typ] = settings
		}
	}

	return out
}
