package theme

import "strings"

// Category describes how one syntax mapping path projects into the two
// token rule systems: the TextMate scopes it selects and the semantic
// token types it colors, plus an optional font style hint.
type Category struct {
	Scopes []string
	Types  []string
	Style  string
}

// categories is the default projection table for syntax mapping paths.
// Paths absent from it still synthesize; they select their own name in
// both rule systems.
var categories = map[string]Category{
	"comment":        {Scopes: []string{"comment", "punctuation.definition.comment"}, Types: []string{"comment"}, Style: "italic"},
	"string":         {Scopes: []string{"string", "string.quoted"}, Types: []string{"string"}},
	"string.escape":  {Scopes: []string{"constant.character.escape"}, Types: []string{"regexp"}},
	"number":         {Scopes: []string{"constant.numeric"}, Types: []string{"number"}},
	"keyword":        {Scopes: []string{"keyword", "keyword.control", "storage.modifier"}, Types: []string{"keyword"}, Style: "bold"},
	"operator":       {Scopes: []string{"keyword.operator"}, Types: []string{"operator"}},
	"function":       {Scopes: []string{"entity.name.function", "support.function"}, Types: []string{"function", "method"}},
	"type":           {Scopes: []string{"entity.name.type", "support.type", "storage.type"}, Types: []string{"type", "class", "struct", "enum", "interface"}},
	"variable":       {Scopes: []string{"variable", "variable.other.readwrite"}, Types: []string{"variable"}},
	"parameter":      {Scopes: []string{"variable.parameter"}, Types: []string{"parameter"}},
	"property":       {Scopes: []string{"variable.other.property", "support.variable.property"}, Types: []string{"property"}},
	"constant":       {Scopes: []string{"constant.language", "variable.other.constant"}, Types: []string{"enumMember"}},
	"namespace":      {Scopes: []string{"entity.name.namespace", "entity.name.tag"}, Types: []string{"namespace"}},
	"macro":          {Scopes: []string{"entity.name.function.macro"}, Types: []string{"macro"}},
	"punctuation":    {Scopes: []string{"punctuation"}, Types: nil},
	"markup.heading": {Scopes: []string{"markup.heading", "entity.name.section"}, Types: nil, Style: "bold"},
	"markup.link":    {Scopes: []string{"markup.underline.link", "string.other.link"}, Types: nil, Style: "underline"},
	"markup.code":    {Scopes: []string{"markup.inline.raw", "markup.fenced_code"}, Types: nil},
	"markup.quote":   {Scopes: []string{"markup.quote"}, Types: nil, Style: "italic"},
	"diff.added":     {Scopes: []string{"markup.inserted"}, Types: nil},
	"diff.removed":   {Scopes: []string{"markup.deleted"}, Types: nil},
	"diff.changed":   {Scopes: []string{"markup.changed"}, Types: nil},
}

// variantTokenOverrides redirects a category's source color for specific
// variants before resolution. An exact variant id match always wins over
// the reference carried by the default mapping table.
var variantTokenOverrides = map[string]map[string]string{
	"dusk": {
		"keyword": "violet",
	},
	"dawn": {
		"comment":      "fg-dim",
		"string.escape": "magenta-warmer",
	},
}

// tokenSource returns the color reference to resolve for a category,
// honoring the per-variant override table.
func tokenSource(variantID, category, ref string) string {
	if overrides, ok := variantTokenOverrides[variantID]; ok {
		if redirected, ok := overrides[category]; ok {
			return redirected
		}
	}
	return ref
}

// categoryFor returns the projection for a mapping path, selecting the
// path itself in both rule systems when no curated entry exists.
func categoryFor(path string) Category {
	if cat, ok := categories[path]; ok {
		return cat
	}
	return Category{Scopes: []string{path}, Types: []string{path}}
}

// styleFor filters a category's font style hint through the feature
// toggles. Hints other than bold and italic are always kept.
func styleFor(cat Category, opts Options) string {
	var parts []string
	for _, token := range strings.Fields(cat.Style) {
		switch token {
		case "italic":
			if opts.Italics {
				parts = append(parts, token)
			}
		case "bold":
			if opts.Bold {
				parts = append(parts, token)
			}
		default:
			parts = append(parts, token)
		}
	}
	return strings.Join(parts, " ")
}
