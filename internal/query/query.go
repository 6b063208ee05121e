// Package query derives the filtered, sorted result sets shown by the two
// presentation modes. Every function is pure: the catalog slice is read-only
// and sorted views are always fresh copies.
package query

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Leo-Fish/pokedex-cli/internal/catalog"
)

type SortKey string

const (
	ByID   SortKey = "id"
	ByName SortKey = "name"
)

type Order string

const (
	Ascending  Order = "asc"
	Descending Order = "desc"
)

type ViewMode string

const (
	ListMode    ViewMode = "list"
	GalleryMode ViewMode = "gallery"
)

// State is the ephemeral query input, owned by the caller and rebuilt per
// derivation. Category is an exact lowercase type name, empty for no filter.
type State struct {
	Text     string
	Key      SortKey
	Order    Order
	Mode     ViewMode
	Category string
}

func ParseSortKey(raw string) (SortKey, error) {
	switch SortKey(raw) {
	case ByID, ByName:
		return SortKey(raw), nil
	}
	return "", fmt.Errorf("unknown sort key: %q", raw)
}

func ParseOrder(raw string) (Order, error) {
	switch Order(raw) {
	case Ascending, Descending:
		return Order(raw), nil
	}
	return "", fmt.Errorf("unknown sort order: %q", raw)
}

func ParseViewMode(raw string) (ViewMode, error) {
	switch ViewMode(raw) {
	case ListMode, GalleryMode:
		return ViewMode(raw), nil
	}
	return "", fmt.Errorf("unknown view mode: %q", raw)
}

// Results dispatches to the derivation for the state's view mode.
func Results(entries []catalog.Entry, s State) []catalog.Entry {
	if s.Mode == GalleryMode {
		return GalleryResults(entries, s)
	}
	return ListResults(entries, s)
}

// ListResults is the list-mode derivation. Empty text is the "no query yet"
// state and yields an empty result, distinct from a query matching nothing.
func ListResults(entries []catalog.Entry, s State) []catalog.Entry {
	if s.Text == "" {
		return nil
	}
	return SortedCopy(filterByText(entries, s.Text), s.Key, s.Order)
}

// GalleryResults is the gallery-mode derivation: the full catalog, narrowed
// by the text filter only when text is non-empty, then by an exact category
// match. Entries without categories are dropped by an active category filter.
func GalleryResults(entries []catalog.Entry, s State) []catalog.Entry {
	filtered := entries
	if s.Text != "" {
		filtered = filterByText(filtered, s.Text)
	}
	if s.Category != "" {
		kept := make([]catalog.Entry, 0, len(filtered))
		for _, entry := range filtered {
			if hasCategory(entry, s.Category) {
				kept = append(kept, entry)
			}
		}
		filtered = kept
	}
	return SortedCopy(filtered, s.Key, s.Order)
}

// SortedCopy returns a stably sorted copy; catalog order is preserved among
// equal keys and the input is never reordered. Name comparison is
// locale-aware. Entries whose locator yields no ID sort after every real ID
// ascending; Descending is the exact negation.
func SortedCopy(entries []catalog.Entry, key SortKey, order Order) []catalog.Entry {
	out := append([]catalog.Entry(nil), entries...)

	var compare func(a, b catalog.Entry) int
	if key == ByName {
		c := collate.New(language.English)
		compare = func(a, b catalog.Entry) int {
			return c.CompareString(a.Name, b.Name)
		}
	} else {
		compare = func(a, b catalog.Entry) int {
			ai, bi := sortableID(a), sortableID(b)
			switch {
			case ai < bi:
				return -1
			case ai > bi:
				return 1
			}
			return 0
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		c := compare(out[i], out[j])
		if order == Descending {
			c = -c
		}
		return c < 0
	})
	return out
}

func sortableID(e catalog.Entry) int {
	if id := catalog.ExtractID(e.Locator); id > 0 {
		return id
	}
	return math.MaxInt
}

func filterByText(entries []catalog.Entry, text string) []catalog.Entry {
	needle := strings.ToLower(text)
	kept := make([]catalog.Entry, 0, len(entries))
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Name), needle) {
			kept = append(kept, entry)
		}
	}
	return kept
}

func hasCategory(entry catalog.Entry, category string) bool {
	for _, c := range entry.Categories {
		if c == category {
			return true
		}
	}
	return false
}
