package pokeapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestListPokemon_SendsLimitAndParsesResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/pokemon" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("limit") != "151" {
			t.Fatalf("unexpected limit query: %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"count":1302,"results":[
			{"name":"bulbasaur","url":"https://pokeapi.co/api/v2/pokemon/1/"},
			{"name":"ivysaur","url":"https://pokeapi.co/api/v2/pokemon/2/"}
		]}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, 100, ts.Client())
	index, err := c.ListPokemon(context.Background(), 151)
	if err != nil {
		t.Fatalf("ListPokemon returned error: %v", err)
	}
	if len(index) != 2 {
		t.Fatalf("expected 2 results, got %d", len(index))
	}
	if index[0].Name != "bulbasaur" || !strings.HasSuffix(index[0].URL, "/pokemon/1/") {
		t.Fatalf("unexpected first result: %+v", index[0])
	}
}

func TestListPokemon_NonOKStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream broken"))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, 100, ts.Client())
	_, err := c.ListPokemon(context.Background(), 151)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "status 502") || !strings.Contains(err.Error(), "upstream broken") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPokemonByID_ParsesFullRecord(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/pokemon/25" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id":25,"name":"pikachu","height":4,"weight":60,
			"types":[{"slot":1,"type":{"name":"electric","url":"https://pokeapi.co/api/v2/type/13/"}}],
			"abilities":[
				{"ability":{"name":"static","url":"https://pokeapi.co/api/v2/ability/9/"},"is_hidden":false,"slot":1},
				{"ability":{"name":"lightning-rod","url":"https://pokeapi.co/api/v2/ability/31/"},"is_hidden":true,"slot":3}
			],
			"sprites":{"front_default":"https://sprites.example.com/25.png","other":{"official-artwork":{"front_default":"https://art.example.com/25.png"}}}
		}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, 100, ts.Client())
	p, err := c.PokemonByID(context.Background(), 25)
	if err != nil {
		t.Fatalf("PokemonByID returned error: %v", err)
	}
	if p.ID != 25 || p.Name != "pikachu" {
		t.Fatalf("unexpected pokemon: %+v", p)
	}
	if p.Height != 4 || p.Weight != 60 {
		t.Fatalf("unexpected measurements: height=%d weight=%d", p.Height, p.Weight)
	}
	if len(p.Types) != 1 || p.Types[0].Type.Name != "electric" {
		t.Fatalf("unexpected types: %+v", p.Types)
	}
	if len(p.Abilities) != 2 || !p.Abilities[1].IsHidden {
		t.Fatalf("unexpected abilities: %+v", p.Abilities)
	}
	if p.Sprites.Other.OfficialArtwork.FrontDefault != "https://art.example.com/25.png" {
		t.Fatalf("unexpected artwork sprite: %+v", p.Sprites)
	}
}

func TestPokemonByID_RejectsNonPositiveID(t *testing.T) {
	c := NewClient("https://pokeapi.co/api/v2", 100, nil)
	if _, err := c.PokemonByID(context.Background(), 0); err == nil {
		t.Fatal("expected error for id 0")
	}
}

func TestPokemonByURL_FetchesLocatorVerbatim(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":1,"name":"bulbasaur","types":[{"slot":1,"type":{"name":"grass"}},{"slot":2,"type":{"name":"poison"}}]}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, 100, ts.Client())
	p, err := c.PokemonByURL(context.Background(), ts.URL+"/pokemon/1/")
	if err != nil {
		t.Fatalf("PokemonByURL returned error: %v", err)
	}
	if gotPath != "/pokemon/1/" {
		t.Fatalf("unexpected request path: %s", gotPath)
	}
	if len(p.Types) != 2 || p.Types[1].Type.Name != "poison" {
		t.Fatalf("unexpected types: %+v", p.Types)
	}
}

func TestPokemonByURL_RejectsEmptyLocator(t *testing.T) {
	c := NewClient("https://pokeapi.co/api/v2", 100, nil)
	if _, err := c.PokemonByURL(context.Background(), "  "); err == nil {
		t.Fatal("expected error for empty locator")
	}
}
