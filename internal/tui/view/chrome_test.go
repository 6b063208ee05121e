package view

import (
	"strings"
	"testing"

	"github.com/Leo-Fish/pokedex-cli/internal/query"
	tuitheme "github.com/Leo-Fish/pokedex-cli/internal/tui/theme"
)

func TestToolbar(t *testing.T) {
	if got := Toolbar(true, false, query.ListMode); !strings.Contains(got, "prev/next") {
		t.Fatalf("detail toolbar missing navigation hint: %q", got)
	}
	if got := Toolbar(false, true, query.ListMode); !strings.Contains(got, "esc cancel") {
		t.Fatalf("search toolbar missing cancel hint: %q", got)
	}
	if got := Toolbar(false, false, query.GalleryMode); !strings.Contains(got, "f type filter") {
		t.Fatalf("gallery toolbar missing type filter hint: %q", got)
	}
	if got := Toolbar(false, false, query.ListMode); strings.Contains(got, "f type filter") {
		t.Fatalf("list toolbar should not advertise type filter: %q", got)
	}
}

func TestFooter(t *testing.T) {
	th := tuitheme.Default()
	st := query.State{Text: "char", Key: query.ByID, Order: query.Ascending, Mode: query.GalleryMode, Category: "fire"}
	plain := stripANSIText(Footer(st, 3, th))
	for _, want := range []string{"gallery", "id/asc", "3 shown", `"char"`, "fire"} {
		if !strings.Contains(plain, want) {
			t.Fatalf("footer missing %q: %q", want, plain)
		}
	}

	st = query.State{Key: query.ByName, Order: query.Descending, Mode: query.GalleryMode}
	plain = stripANSIText(Footer(st, 151, th))
	if !strings.Contains(plain, "all") {
		t.Fatalf("empty category should show as all: %q", plain)
	}
	if strings.Contains(plain, "search") {
		t.Fatalf("empty search should be hidden: %q", plain)
	}
}

func TestMessage(t *testing.T) {
	th := tuitheme.Default()
	if got := stripANSIText(Message(false, false, "", "", th)); !strings.Contains(got, "idle") || !strings.Contains(got, "Ready") {
		t.Fatalf("unexpected idle message: %q", got)
	}
	if got := stripANSIText(Message(true, false, "Loading catalog...", "", th)); !strings.Contains(got, "loading") {
		t.Fatalf("unexpected loading message: %q", got)
	}
	if got := stripANSIText(Message(false, true, "", "fetch failed", th)); !strings.Contains(got, "warning") || !strings.Contains(got, "fetch failed") {
		t.Fatalf("unexpected warning message: %q", got)
	}
}
