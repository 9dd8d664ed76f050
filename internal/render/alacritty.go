package render

import (
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"pigment/internal/theme"
	pigmenterrors "pigment/pkg/errors"
)

// alacrittyDocument is the colors table of an Alacritty theme file.
type alacrittyDocument struct {
	Colors alacrittyColors `toml:"colors"`
}

type alacrittyColors struct {
	Primary   alacrittyPrimary   `toml:"primary"`
	Cursor    alacrittyCursor    `toml:"cursor"`
	Selection alacrittySelection `toml:"selection"`
	Normal    alacrittyAnsi      `toml:"normal"`
	Bright    alacrittyAnsi      `toml:"bright"`
}

type alacrittyPrimary struct {
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
}

type alacrittyCursor struct {
	Text   string `toml:"text"`
	Cursor string `toml:"cursor"`
}

type alacrittySelection struct {
	Text       string `toml:"text"`
	Background string `toml:"background"`
}

type alacrittyAnsi struct {
	Black   string `toml:"black"`
	Red     string `toml:"red"`
	Green   string `toml:"green"`
	Yellow  string `toml:"yellow"`
	Blue    string `toml:"blue"`
	Magenta string `toml:"magenta"`
	Cyan    string `toml:"cyan"`
	White   string `toml:"white"`
}

// Alacritty extracts the resolved terminal color table into an Alacritty
// theme. It demonstrates the fan-out of one resolved theme into a second
// persisted representation.
type Alacritty struct{}

// NewAlacritty returns the Alacritty renderer.
func NewAlacritty() *Alacritty { return &Alacritty{} }

func (*Alacritty) Name() string { return "alacritty" }

func (*Alacritty) Filename(def theme.Definition) string {
	return fmt.Sprintf("pigment-%s.toml", def.ID)
}

// Render extracts the editor and terminal.ansi* entries. Alacritty only
// accepts opaque colors, so alpha channels are stripped.
func (*Alacritty) Render(resolved *theme.ResolvedTheme) ([]byte, error) {
	if resolved == nil {
		return nil, pigmenterrors.NewRendererError("alacritty", fmt.Errorf("resolved theme is nil"))
	}

	var missing []string
	pick := func(key string) string {
		value, ok := resolved.Colors[key]
		if !ok {
			missing = append(missing, key)
			return ""
		}
		return opaqueHex(value)
	}

	doc := alacrittyDocument{
		Colors: alacrittyColors{
			Primary: alacrittyPrimary{
				Background: pick("editor.background"),
				Foreground: pick("editor.foreground"),
			},
			Cursor: alacrittyCursor{
				Text:   pick("editor.background"),
				Cursor: pick("editorCursor.foreground"),
			},
			Selection: alacrittySelection{
				Text:       "CellForeground",
				Background: pick("editor.selectionBackground"),
			},
			Normal: alacrittyAnsi{
				Black:   pick("terminal.ansiBlack"),
				Red:     pick("terminal.ansiRed"),
				Green:   pick("terminal.ansiGreen"),
				Yellow:  pick("terminal.ansiYellow"),
				Blue:    pick("terminal.ansiBlue"),
				Magenta: pick("terminal.ansiMagenta"),
				Cyan:    pick("terminal.ansiCyan"),
				White:   pick("terminal.ansiWhite"),
			},
			Bright: alacrittyAnsi{
				Black:   pick("terminal.ansiBrightBlack"),
				Red:     pick("terminal.ansiBrightRed"),
				Green:   pick("terminal.ansiBrightGreen"),
				Yellow:  pick("terminal.ansiBrightYellow"),
				Blue:    pick("terminal.ansiBrightBlue"),
				Magenta: pick("terminal.ansiBrightMagenta"),
				Cyan:    pick("terminal.ansiBrightCyan"),
				White:   pick("terminal.ansiBrightWhite"),
			},
		},
	}

	if len(missing) > 0 {
		return nil, pigmenterrors.NewRendererError("alacritty",
			fmt.Errorf("resolved color table misses %s", strings.Join(missing, ", ")))
	}

	data, err := toml.Marshal(doc)
	if err != nil {
		return nil, pigmenterrors.NewRendererError("alacritty", err)
	}
	return data, nil
}

// opaqueHex drops the alpha channel of an eight-digit color.
func opaqueHex(value string) string {
	if len(value) == 9 && strings.HasPrefix(value, "#") {
		return value[:7]
	}
	return value
}
