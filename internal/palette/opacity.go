package palette

import (
	"fmt"
	"math"
	"strings"

	pigmenterrors "pigment/pkg/errors"
)

// WithOpacity combines a six-digit hex color with a fractional opacity into
// an eight-digit color-with-alpha value. Inputs that already carry an alpha
// channel are rejected rather than re-blended, so stacked opacity is always
// explicit in the source reference.
func WithOpacity(hex string, opacity float64) (string, error) {
	digits := strings.TrimPrefix(hex, "#")

	if len(digits) == 8 && isHexDigits(digits) {
		return "", pigmenterrors.NewColorFormatError(hex, "value already carries an alpha channel")
	}
	if len(digits) != 6 || !isHexDigits(digits) {
		return "", pigmenterrors.NewColorFormatError(hex, "expected exactly 6 hex digits")
	}
	if math.IsNaN(opacity) || math.IsInf(opacity, 0) || opacity < 0 || opacity > 1 {
		ref := fmt.Sprintf("%s@%v", hex, opacity)
		return "", pigmenterrors.NewColorOpacityError(ref, "opacity must be a finite number in [0,1]")
	}

	alpha := int(math.Round(opacity * 255))

	return fmt.Sprintf("#%s%02x", digits, alpha), nil
}

func isHexDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
