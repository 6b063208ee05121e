package catalog

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Leo-Fish/pokedex-cli/internal/pokeapi"
)

const (
	// DefaultLimit is the size of the original pokedex.
	DefaultLimit = 151

	defaultWorkers = 8
)

// Client is the subset of the PokeAPI client the loader needs.
type Client interface {
	ListPokemon(ctx context.Context, limit int) ([]pokeapi.NamedResource, error)
	PokemonByURL(ctx context.Context, locator string) (pokeapi.Pokemon, error)
}

// Loader performs the two-phase catalog load: one index fetch, then a
// best-effort enrichment fan-out that attaches category tags per entry.
type Loader struct {
	client     Client
	spriteBase string
	limit      int
	workers    int
}

func NewLoader(client Client, spriteBase string, limit int) *Loader {
	if limit < 1 {
		limit = DefaultLimit
	}
	return &Loader{
		client:     client,
		spriteBase: spriteBase,
		limit:      limit,
		workers:    defaultWorkers,
	}
}

// Load fetches the catalog. An index failure fails the whole load; a failed
// enrichment fetch only leaves that one entry without categories. The catalog
// is returned complete, in index order, and is never mutated afterwards.
func (l *Loader) Load(ctx context.Context) ([]Entry, error) {
	index, err := l.client.ListPokemon(ctx, l.limit)
	if err != nil {
		return nil, fmt.Errorf("fetch pokemon index: %w", err)
	}

	// Settle-all join: each slot is written by exactly one goroutine and the
	// goroutines never return an error, so one entry's failure cannot cancel
	// the others.
	categories := make([][]string, len(index))
	var g errgroup.Group
	g.SetLimit(l.workers)
	for i, resource := range index {
		i, resource := i, resource
		g.Go(func() error {
			p, err := l.client.PokemonByURL(ctx, resource.URL)
			if err != nil {
				return nil
			}
			categories[i] = typeNames(p)
			return nil
		})
	}
	_ = g.Wait()

	entries := make([]Entry, len(index))
	for i, resource := range index {
		entries[i] = Entry{
			Name:       resource.Name,
			Locator:    resource.URL,
			ImageURL:   SpriteURL(l.spriteBase, ExtractID(resource.URL)),
			Categories: categories[i],
		}
	}
	return entries, nil
}

func typeNames(p pokeapi.Pokemon) []string {
	if len(p.Types) == 0 {
		return nil
	}
	names := make([]string, 0, len(p.Types))
	for _, slot := range p.Types {
		if slot.Type.Name == "" {
			continue
		}
		names = append(names, slot.Type.Name)
	}
	if len(names) == 0 {
		return nil
	}
	return names
}
