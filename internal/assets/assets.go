// Package assets bundles the default palette sources, the extension
// document, and the mapping tables into the binary so a bare `pigment
// generate` works without any files on disk.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed sources/*.el extensions/*.json mappings/*.jsonc
var assetFS embed.FS

// Source returns the embedded palette source with the given filename.
func Source(filename string) ([]byte, error) {
	data, err := assetFS.ReadFile("sources/" + filename)
	if err != nil {
		return nil, fmt.Errorf("read embedded source %s: %w", filename, err)
	}
	return data, nil
}

// SourceNames lists the embedded palette source filenames.
func SourceNames() ([]string, error) {
	entries, err := fs.ReadDir(assetFS, "sources")
	if err != nil {
		return nil, fmt.Errorf("read embedded sources: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	return names, nil
}

// ExtensionDocument returns the embedded palette-extension document.
func ExtensionDocument() ([]byte, error) {
	data, err := assetFS.ReadFile("extensions/harmony.json")
	if err != nil {
		return nil, fmt.Errorf("read embedded extension document: %w", err)
	}
	return data, nil
}

// WorkbenchMappings returns the embedded UI-element mapping table.
func WorkbenchMappings() ([]byte, error) {
	data, err := assetFS.ReadFile("mappings/workbench.jsonc")
	if err != nil {
		return nil, fmt.Errorf("read embedded workbench mappings: %w", err)
	}
	return data, nil
}

// ExperimentalMappings returns the auxiliary UI-element mapping table that
// is only merged in when the experimental toggle is on.
func ExperimentalMappings() ([]byte, error) {
	data, err := assetFS.ReadFile("mappings/workbench-experimental.jsonc")
	if err != nil {
		return nil, fmt.Errorf("read embedded experimental mappings: %w", err)
	}
	return data, nil
}

// SyntaxMappings returns the embedded token mapping table.
func SyntaxMappings() ([]byte, error) {
	data, err := assetFS.ReadFile("mappings/syntax.jsonc")
	if err != nil {
		return nil, fmt.Errorf("read embedded syntax mappings: %w", err)
	}
	return data, nil
}
