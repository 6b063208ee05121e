// Package detail fetches and shapes the full record for a single selected
// entry. Records are fetched fresh per selection and never cached.
package detail

import (
	"context"
	"fmt"
	"unicode"

	"github.com/Leo-Fish/pokedex-cli/internal/pokeapi"
)

// Trait is one named ability; hidden abilities are flagged, not omitted.
type Trait struct {
	Name   string
	Hidden bool
}

// Record is the full detail-view shape for one catalog entry.
// HeightUnits is in decimeters and MassUnits in hectograms, raw as fetched.
type Record struct {
	ID           int
	DisplayName  string
	PrimaryImage string
	Categories   []string
	Traits       []Trait
	HeightUnits  int
	MassUnits    int
}

// HeightDisplay is the height in meters, a derived presentation quantity.
func (r Record) HeightDisplay() float64 {
	return float64(r.HeightUnits) / 10
}

// MassDisplay is the mass in kilograms, a derived presentation quantity.
func (r Record) MassDisplay() float64 {
	return float64(r.MassUnits) / 10
}

// FromPokemon maps a wire record into the detail shape, preferring the
// high-resolution artwork and falling back to the default sprite.
func FromPokemon(p pokeapi.Pokemon) Record {
	image := p.Sprites.Other.OfficialArtwork.FrontDefault
	if image == "" {
		image = p.Sprites.FrontDefault
	}

	categories := make([]string, 0, len(p.Types))
	for _, slot := range p.Types {
		if slot.Type.Name == "" {
			continue
		}
		categories = append(categories, slot.Type.Name)
	}

	traits := make([]Trait, 0, len(p.Abilities))
	for _, slot := range p.Abilities {
		if slot.Ability.Name == "" {
			continue
		}
		traits = append(traits, Trait{Name: slot.Ability.Name, Hidden: slot.IsHidden})
	}

	return Record{
		ID:           p.ID,
		DisplayName:  displayName(p.Name),
		PrimaryImage: image,
		Categories:   categories,
		Traits:       traits,
		HeightUnits:  p.Height,
		MassUnits:    p.Weight,
	}
}

func displayName(name string) string {
	runes := []rune(name)
	if len(runes) == 0 {
		return name
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// Client is the subset of the PokeAPI client the resolver needs.
type Client interface {
	PokemonByID(ctx context.Context, id int) (pokeapi.Pokemon, error)
}

// Resolver fetches the full record for a selected ID, keyed by ID alone.
type Resolver struct {
	client Client
}

func NewResolver(client Client) *Resolver {
	return &Resolver{client: client}
}

func (r *Resolver) Resolve(ctx context.Context, id int) (Record, error) {
	if id < 1 {
		return Record{}, fmt.Errorf("invalid pokemon id: %d", id)
	}
	p, err := r.client.PokemonByID(ctx, id)
	if err != nil {
		return Record{}, fmt.Errorf("fetch pokemon %d: %w", id, err)
	}
	return FromPokemon(p), nil
}
