package mapping

import (
	"encoding/json"

	pigmenterrors "pigment/pkg/errors"
)

// StripComments removes C-style line and block comments so mapping
// documents may carry annotations. Comment markers inside string literals
// are left untouched. Line comments keep their trailing newline so decode
// errors still point at a sensible line.
func StripComments(data []byte) []byte {
	out := make([]byte, 0, len(data))
	inString := false
	escaped := false

	for i := 0; i < len(data); i++ {
		c := data[i]

		if inString {
			out = append(out, c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch {
		case c == '"':
			inString = true
			out = append(out, c)
		case c == '/' && i+1 < len(data) && data[i+1] == '/':
			for i < len(data) && data[i] != '\n' {
				i++
			}
			if i < len(data) {
				out = append(out, '\n')
			}
		case c == '/' && i+1 < len(data) && data[i+1] == '*':
			i += 2
			for i+1 < len(data) && !(data[i] == '*' && data[i+1] == '/') {
				i++
			}
			i++
		default:
			out = append(out, c)
		}
	}

	return out
}

// ParseDocument strips comments and decodes the remaining JSON object.
func ParseDocument(path string, data []byte) (map[string]any, error) {
	var doc map[string]any
	if err := json.Unmarshal(StripComments(data), &doc); err != nil {
		return nil, pigmenterrors.NewParseError(path, err)
	}
	return doc, nil
}
