package state

import (
	"github.com/Leo-Fish/pokedex-cli/internal/catalog"
)

func ClampCursor(cursor, size int) int {
	if size <= 0 {
		return 0
	}
	if cursor >= size {
		return size - 1
	}
	if cursor < 0 {
		return 0
	}
	return cursor
}

func PageStep(height int, hasStatus bool) int {
	if height <= 0 {
		return 10
	}
	headerLines := 6
	if hasStatus {
		headerLines += 2
	}
	step := height - headerLines
	if step < 3 {
		step = 3
	}
	return step
}

func CenteredWindow(totalRows, cursor, height int) (int, int) {
	if totalRows <= 0 {
		return 0, 0
	}
	if height <= 0 || totalRows <= height {
		return 0, totalRows
	}
	cursor = ClampCursor(cursor, totalRows)
	start := cursor - height/2
	if start < 0 {
		start = 0
	}
	maxStart := totalRows - height
	if start > maxStart {
		start = maxStart
	}
	return start, start + height
}

// IndexByID finds the position of the entry with the given extracted ID,
// -1 when absent. Sentinel IDs never match.
func IndexByID(entries []catalog.Entry, id int) int {
	if id < 1 {
		return -1
	}
	for i, entry := range entries {
		if catalog.ExtractID(entry.Locator) == id {
			return i
		}
	}
	return -1
}

// GridMove shifts a cursor on a grid of the given column count, clamping to
// the valid range. Vertical steps that would leave the grid are ignored.
func GridMove(cursor, size, columns, dx, dy int) int {
	if size <= 0 {
		return 0
	}
	if columns < 1 {
		columns = 1
	}
	next := cursor + dx + dy*columns
	if dy != 0 && (next < 0 || next >= size) {
		return ClampCursor(cursor, size)
	}
	return ClampCursor(next, size)
}
