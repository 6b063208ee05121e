package view

import (
	"strings"
	"testing"

	"github.com/Leo-Fish/pokedex-cli/internal/catalog"
	tuitheme "github.com/Leo-Fish/pokedex-cli/internal/tui/theme"
)

func TestColumns(t *testing.T) {
	if got := Columns(80); got != 3 {
		t.Fatalf("Columns(80) = %d, want 3", got)
	}
	if got := Columns(10); got != 1 {
		t.Fatalf("narrow terminal should keep one column, got %d", got)
	}
}

func TestRenderGalleryRows(t *testing.T) {
	th := tuitheme.Default()
	entries := []catalog.Entry{
		{Name: "bulbasaur", Locator: "https://x/1/", Categories: []string{"grass", "poison"}},
		{Name: "ivysaur", Locator: "https://x/2/", Categories: []string{"grass", "poison"}},
		{Name: "venusaur", Locator: "https://x/3/", Categories: []string{"grass", "poison"}},
	}

	lines := RenderGalleryRows(entries, 2, 2, th)
	if len(lines) != 4 {
		t.Fatalf("expected 2 rows of cells plus 2 badge rows, got %d lines", len(lines))
	}

	first := stripANSIText(lines[0])
	if !strings.Contains(first, "bulbasaur") || !strings.Contains(first, "ivysaur") {
		t.Fatalf("first row should hold the first two entries, got %q", first)
	}
	third := stripANSIText(lines[2])
	if !strings.Contains(third, "> #003") {
		t.Fatalf("cursor should mark venusaur, got %q", third)
	}
	if !strings.Contains(stripANSIText(lines[1]), "grass") {
		t.Fatalf("badge row should carry categories, got %q", lines[1])
	}
}

func TestRenderGalleryRows_Empty(t *testing.T) {
	if lines := RenderGalleryRows(nil, 3, 0, tuitheme.Default()); lines != nil {
		t.Fatalf("expected nil for empty result, got %v", lines)
	}
}
