package palette

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	pigmenterrors "pigment/pkg/errors"
)

func TestWithOpacity(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		hex     string
		opacity float64
		want    string
	}{
		{name: "half opacity appends 0x80", hex: "#336699", opacity: 0.5, want: "#33669980"},
		{name: "quarter opacity appends 0x40", hex: "#101010", opacity: 0.25, want: "#10101040"},
		{name: "full opacity appends ff", hex: "#336699", opacity: 1, want: "#336699ff"},
		{name: "zero opacity appends 00", hex: "#336699", opacity: 0, want: "#33669900"},
		{name: "missing hash prefix is normalized", hex: "336699", opacity: 0.5, want: "#33669980"},
		{name: "digit casing is preserved", hex: "#AaBbCc", opacity: 0.25, want: "#AaBbCc40"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := WithOpacity(tc.hex, tc.opacity)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestWithOpacityRejectsMalformedHex(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		hex  string
	}{
		{name: "eight digits already carry alpha", hex: "#33669980"},
		{name: "too short", hex: "#fff"},
		{name: "too long", hex: "#1234567"},
		{name: "non-hex digits", hex: "#gggggg"},
		{name: "empty value", hex: ""},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := WithOpacity(tc.hex, 0.5)
			require.Error(t, err)

			var formatErr *pigmenterrors.ColorFormatError
			require.ErrorAs(t, err, &formatErr)
			require.Equal(t, tc.hex, formatErr.Value)
		})
	}
}

func TestWithOpacityRejectsInvalidOpacity(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		opacity float64
	}{
		{name: "negative", opacity: -0.1},
		{name: "above one", opacity: 1.01},
		{name: "not a number", opacity: math.NaN()},
		{name: "infinite", opacity: math.Inf(1)},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := WithOpacity("#336699", tc.opacity)
			require.Error(t, err)

			var opacityErr *pigmenterrors.ColorOpacityError
			require.ErrorAs(t, err, &opacityErr)
		})
	}
}
