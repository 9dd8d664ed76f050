package palette

import (
	"regexp"

	pigmenterrors "pigment/pkg/errors"
)

// The grammar is two independent global scans, not a single-pass tokenizer.
// An entry is direct iff its second token is a quoted "#RRGGBB" literal;
// any other two-token pair is an alias. Text matching neither pattern is
// ignored, which lets palette lists live inside larger source files.
var (
	directEntryRegex   = regexp.MustCompile(`\(\s*([A-Za-z0-9+._-]+)\s+"(#[0-9A-Fa-f]{6})"\s*\)`)
	semanticEntryRegex = regexp.MustCompile(`\(\s*([A-Za-z0-9+._-]+)\s+"?([A-Za-z0-9@+._-]+)"?\s*\)`)
)

// ParseSource extracts a palette from source text in the two-token grammar.
// A source that defines aliases but not a single concrete color cannot
// resolve anything, so zero direct entries is a parse failure.
func ParseSource(path, text string) (*Palette, error) {
	pal := New()

	for _, match := range directEntryRegex.FindAllStringSubmatch(text, -1) {
		pal.Direct[match[1]] = match[2]
	}
	for _, match := range semanticEntryRegex.FindAllStringSubmatch(text, -1) {
		pal.Semantic[match[1]] = match[2]
	}

	if len(pal.Direct) == 0 {
		return nil, pigmenterrors.NewParseError(path, pigmenterrors.ErrEmptyPalette)
	}

	return pal, nil
}
