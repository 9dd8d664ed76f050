// Package mapping flattens nested configuration trees into (path,
// reference) pairs and decodes the JSONC documents they are written in.
// The same traversal serves both mapping domains, UI elements and syntax
// tokens; the emit callback decides what a leaf becomes.
package mapping

import "sort"

// Entry pairs a dot-joined target path with the color reference mapped to it.
type Entry struct {
	Path      string
	Reference string
}

// Flatten walks a nested document depth-first and calls emit for every
// string leaf with the accumulated dot-joined path. Map nodes recurse, any
// other value type is ignored. Keys are visited in sorted order so the
// emission sequence is deterministic.
func Flatten(root string, node any, emit func(path, reference string)) {
	switch value := node.(type) {
	case string:
		emit(root, value)
	case map[string]any:
		keys := make([]string, 0, len(value))
		for key := range value {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			Flatten(join(root, key), value[key], emit)
		}
	}
}

// Entries flattens node into a list of mapping entries rooted at root.
func Entries(root string, node map[string]any) []Entry {
	var entries []Entry
	Flatten(root, node, func(path, reference string) {
		entries = append(entries, Entry{Path: path, Reference: reference})
	})
	return entries
}

func join(root, key string) string {
	if root == "" {
		return key
	}
	return root + "." + key
}
