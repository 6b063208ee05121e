package catalog

import (
	"reflect"
	"testing"
)

func TestExtractID(t *testing.T) {
	cases := []struct {
		locator string
		want    int
	}{
		{"https://pokeapi.co/api/v2/pokemon/1/", 1},
		{"https://pokeapi.co/api/v2/pokemon/151/", 151},
		{"https://x/2/", 2},
		{"https://x/", 0},
		{"https://x/abc/", 0},
		{"https://x/2", 0},
		{"https://x/-3/", 0},
		{"https://x/0/", 0},
		{"", 0},
		{"no-separators", 0},
	}
	for _, tc := range cases {
		if got := ExtractID(tc.locator); got != tc.want {
			t.Fatalf("ExtractID(%q) = %d, want %d", tc.locator, got, tc.want)
		}
	}
}

func TestEntryID_MatchesExtractID(t *testing.T) {
	entry := Entry{Name: "pikachu", Locator: "https://pokeapi.co/api/v2/pokemon/25/"}
	if got := entry.ID(); got != 25 {
		t.Fatalf("expected ID 25, got %d", got)
	}
}

func TestSpriteURL(t *testing.T) {
	if got := SpriteURL("https://sprites.example.com/pokemon", 25); got != "https://sprites.example.com/pokemon/25.png" {
		t.Fatalf("unexpected sprite URL: %s", got)
	}
	if got := SpriteURL("https://sprites.example.com/pokemon/", 1); got != "https://sprites.example.com/pokemon/1.png" {
		t.Fatalf("unexpected sprite URL with trailing slash base: %s", got)
	}
	if got := SpriteURL("https://sprites.example.com/pokemon", 0); got != "" {
		t.Fatalf("expected empty URL for sentinel ID, got %s", got)
	}
}

func testCatalog() []Entry {
	return []Entry{
		{Name: "bulbasaur", Locator: "https://pokeapi.co/api/v2/pokemon/1/", Categories: []string{"grass", "poison"}},
		{Name: "ivysaur", Locator: "https://pokeapi.co/api/v2/pokemon/2/", Categories: []string{"grass", "poison"}},
		{Name: "venusaur", Locator: "https://pokeapi.co/api/v2/pokemon/3/"},
		{Name: "charmander", Locator: "https://pokeapi.co/api/v2/pokemon/4/", Categories: []string{"fire"}},
	}
}

func TestNeighbors_Interior(t *testing.T) {
	prev, next := Neighbors(testCatalog(), 2)
	if prev != 1 || next != 3 {
		t.Fatalf("expected neighbors (1, 3), got (%d, %d)", prev, next)
	}
}

func TestNeighbors_FirstAndLast(t *testing.T) {
	entries := testCatalog()
	prev, next := Neighbors(entries, 1)
	if prev != 0 || next != 2 {
		t.Fatalf("expected neighbors (0, 2) at first entry, got (%d, %d)", prev, next)
	}
	prev, next = Neighbors(entries, 4)
	if prev != 3 || next != 0 {
		t.Fatalf("expected neighbors (3, 0) at last entry, got (%d, %d)", prev, next)
	}
}

func TestNeighbors_UsesCatalogOrderNotIDOrder(t *testing.T) {
	entries := []Entry{
		{Name: "charmander", Locator: "https://x/4/"},
		{Name: "bulbasaur", Locator: "https://x/1/"},
		{Name: "venusaur", Locator: "https://x/3/"},
	}
	prev, next := Neighbors(entries, 1)
	if prev != 4 || next != 3 {
		t.Fatalf("expected feed-order neighbors (4, 3), got (%d, %d)", prev, next)
	}
}

func TestNeighbors_MissingAndSentinel(t *testing.T) {
	entries := testCatalog()
	if prev, next := Neighbors(entries, 99); prev != 0 || next != 0 {
		t.Fatalf("expected (0, 0) for unknown id, got (%d, %d)", prev, next)
	}
	if prev, next := Neighbors(entries, 0); prev != 0 || next != 0 {
		t.Fatalf("expected (0, 0) for sentinel id, got (%d, %d)", prev, next)
	}
	if prev, next := Neighbors(nil, 1); prev != 0 || next != 0 {
		t.Fatalf("expected (0, 0) for empty catalog, got (%d, %d)", prev, next)
	}
}

func TestCategorySet(t *testing.T) {
	got := CategorySet(testCatalog())
	want := []string{"fire", "grass", "poison"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected category set: %v", got)
	}
	if len(CategorySet(nil)) != 0 {
		t.Fatal("expected empty set for empty catalog")
	}
}
