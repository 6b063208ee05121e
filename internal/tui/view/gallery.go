package view

import (
	"strings"

	"github.com/Leo-Fish/pokedex-cli/internal/catalog"
	tuitheme "github.com/Leo-Fish/pokedex-cli/internal/tui/theme"
)

const galleryCellWidth = 24

// Columns fits as many gallery cells as the terminal width allows, never
// fewer than one.
func Columns(width int) int {
	cols := width / galleryCellWidth
	if cols < 1 {
		return 1
	}
	return cols
}

func renderGalleryCell(entry catalog.Entry, active bool, th tuitheme.Theme) string {
	name := truncateRunes(strings.TrimSpace(entry.Name), galleryCellWidth-8)
	cell := IDLabel(entry) + " " + name
	if active {
		cell = "> " + cell
	} else {
		cell = "  " + cell
	}
	pad := galleryCellWidth - visibleLen(cell)
	if pad < 1 {
		pad = 1
	}
	return th.RenderActiveLine(active, cell+strings.Repeat(" ", pad))
}

// RenderGalleryRows lays the entries out left to right, top to bottom. Each
// entry row is followed by a badge row carrying its categories.
func RenderGalleryRows(entries []catalog.Entry, columns, cursor int, th tuitheme.Theme) []string {
	if len(entries) == 0 {
		return nil
	}
	if columns < 1 {
		columns = 1
	}

	lines := make([]string, 0, 2*(len(entries)/columns+1))
	for start := 0; start < len(entries); start += columns {
		end := start + columns
		if end > len(entries) {
			end = len(entries)
		}

		cells := make([]string, 0, columns)
		badges := make([]string, 0, columns)
		for i := start; i < end; i++ {
			cells = append(cells, renderGalleryCell(entries[i], i == cursor, th))
			badge := CategoryBadges(entries[i], th)
			pad := galleryCellWidth - visibleLen(badge) - 2
			if pad < 1 {
				pad = 1
			}
			badges = append(badges, "  "+badge+strings.Repeat(" ", pad))
		}
		lines = append(lines, strings.Join(cells, ""), strings.Join(badges, ""))
	}
	return lines
}
