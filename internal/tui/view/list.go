package view

import (
	"fmt"
	"strings"

	"github.com/Leo-Fish/pokedex-cli/internal/catalog"
	tuitheme "github.com/Leo-Fish/pokedex-cli/internal/tui/theme"
)

type EntryLineParams struct {
	Entry       catalog.Entry
	Compact     bool
	ShowNumbers bool
	VisiblePos  int
	Active      bool
	Selected    bool
	Width       int
}

func RenderEntryLine(p EntryLineParams, th tuitheme.Theme) string {
	cursorMarker := " "
	if p.Active {
		cursorMarker = ">"
	}
	selectedMarker := " "
	if p.Selected {
		selectedMarker = "*"
	}

	prefix := fmt.Sprintf("    %s%s ", cursorMarker, selectedMarker)
	if p.ShowNumbers {
		prefix = fmt.Sprintf("    %s%s%3d. ", cursorMarker, selectedMarker, p.VisiblePos+1)
	}

	idLabel := IDLabel(p.Entry)
	badges := ""
	if !p.Compact {
		badges = CategoryBadges(p.Entry, th)
	}

	available := p.Width - visibleLen(prefix) - visibleLen(idLabel) - 1 - visibleLen(badges) - 1
	if available < 1 {
		available = 1
	}
	name := truncateRunes(strings.TrimSpace(p.Entry.Name), available)
	left := prefix + th.EntryID.Render(idLabel) + " " + th.EntryName.Render(name)

	if badges == "" {
		return th.RenderActiveLine(p.Active, left)
	}
	gap := p.Width - visibleLen(left) - visibleLen(badges)
	if gap < 1 {
		gap = 1
	}
	return th.RenderActiveLine(p.Active, left+strings.Repeat(" ", gap)+badges)
}

// IDLabel formats an entry's extracted ID as a fixed-width tag. Entries
// whose locator yields no ID get a placeholder.
func IDLabel(entry catalog.Entry) string {
	id := entry.ID()
	if id < 1 {
		return "#---"
	}
	return fmt.Sprintf("#%03d", id)
}

// CategoryBadges renders an entry's categories as colored pills, empty
// when the entry was never enriched.
func CategoryBadges(entry catalog.Entry, th tuitheme.Theme) string {
	if len(entry.Categories) == 0 {
		return ""
	}
	badges := make([]string, 0, len(entry.Categories))
	for _, category := range entry.Categories {
		badges = append(badges, th.TypeBadge(category))
	}
	return strings.Join(badges, " ")
}
