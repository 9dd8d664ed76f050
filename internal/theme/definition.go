// Package theme defines the fixed variant set and synthesizes resolved
// themes from merged palettes and expanded mapping tables.
package theme

// Kind classifies a variant's base appearance.
type Kind string

const (
	Dark  Kind = "dark"
	Light Kind = "light"
)

// Definition is the static identity of one output variant. The set is
// fixed at process start and never mutated.
type Definition struct {
	ID          string
	Name        string
	Kind        Kind
	Source      string
	Description string
}

var definitions = []Definition{
	{
		ID:          "abyss",
		Name:        "Pigment Abyss",
		Kind:        Dark,
		Source:      "pigment-abyss-theme.el",
		Description: "High-contrast dark variant built on deep blue blacks.",
	},
	{
		ID:          "dusk",
		Name:        "Pigment Dusk",
		Kind:        Dark,
		Source:      "pigment-dusk-theme.el",
		Description: "Muted dark variant with warm violet accents.",
	},
	{
		ID:          "dawn",
		Name:        "Pigment Dawn",
		Kind:        Light,
		Source:      "pigment-dawn-theme.el",
		Description: "Soft light variant tuned for daylight editing.",
	},
}

// Definitions returns the fixed variant set in presentation order.
func Definitions() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions)
	return out
}

// IDs returns the variant ids in presentation order.
func IDs() []string {
	ids := make([]string, len(definitions))
	for i, def := range definitions {
		ids[i] = def.ID
	}
	return ids
}

// Lookup resolves a variant id to its definition.
func Lookup(id string) (Definition, bool) {
	for _, def := range definitions {
		if def.ID == id {
			return def, true
		}
	}
	return Definition{}, false
}
