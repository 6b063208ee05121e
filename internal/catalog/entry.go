// Package catalog holds the read-only set of pokedex entries loaded once per
// session, and the pure helpers that operate on it in insertion order.
package catalog

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Entry is one row of the loaded catalog. Categories is nil when the
// enrichment fetch for this entry failed; downstream filters must treat that
// as "unknown", never as an error.
type Entry struct {
	Name       string
	Locator    string
	ImageURL   string
	Categories []string
}

// ID returns the entry's extracted numeric ID, 0 when unknown.
func (e Entry) ID() int {
	return ExtractID(e.Locator)
}

// ExtractID derives the stable numeric ID from a resource locator: the value
// of the numeric path segment immediately before the trailing slash.
// Returns 0 when no such segment exists. Never the array position.
func ExtractID(locator string) int {
	parts := strings.Split(locator, "/")
	if len(parts) < 2 {
		return 0
	}
	id, err := strconv.Atoi(parts[len(parts)-2])
	if err != nil || id < 1 {
		return 0
	}
	return id
}

// SpriteURL builds the deterministic image URL for an ID. Empty for the
// unknown-ID sentinel.
func SpriteURL(base string, id int) string {
	if id < 1 {
		return ""
	}
	return fmt.Sprintf("%s/%d.png", strings.TrimRight(base, "/"), id)
}

// Neighbors returns the IDs of the catalog-order predecessor and successor of
// currentID. Navigation order is the original feed order, never the active
// sort. 0 means no neighbor (first, last, or currentID not found).
func Neighbors(entries []Entry, currentID int) (prevID, nextID int) {
	if currentID < 1 {
		return 0, 0
	}
	for i, entry := range entries {
		if ExtractID(entry.Locator) != currentID {
			continue
		}
		if i > 0 {
			prevID = ExtractID(entries[i-1].Locator)
		}
		if i < len(entries)-1 {
			nextID = ExtractID(entries[i+1].Locator)
		}
		return prevID, nextID
	}
	return 0, 0
}

// CategorySet collects the distinct category names present in the catalog,
// sorted, for building the gallery filter choices.
func CategorySet(entries []Entry) []string {
	seen := make(map[string]struct{})
	for _, entry := range entries {
		for _, category := range entry.Categories {
			seen[category] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for category := range seen {
		out = append(out, category)
	}
	sort.Strings(out)
	return out
}
