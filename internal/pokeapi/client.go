package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// NamedResource is the (name, locator) pair the index endpoint returns per
// entry. The numeric ID is embedded in the URL, never sent as a field.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// TypeSlot is one entry of a pokemon's ordered type list.
type TypeSlot struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

// AbilitySlot is one entry of a pokemon's ordered ability list.
type AbilitySlot struct {
	Ability  NamedResource `json:"ability"`
	IsHidden bool          `json:"is_hidden"`
	Slot     int           `json:"slot"`
}

// Sprites is the subset of the sprite object the app reads.
type Sprites struct {
	FrontDefault string `json:"front_default"`
	Other        struct {
		OfficialArtwork struct {
			FrontDefault string `json:"front_default"`
		} `json:"official-artwork"`
	} `json:"other"`
}

// Pokemon is the subset of PokeAPI pokemon fields required by the app.
// Height is in decimeters, Weight in hectograms, as the API delivers them.
type Pokemon struct {
	ID        int           `json:"id"`
	Name      string        `json:"name"`
	Height    int           `json:"height"`
	Weight    int           `json:"weight"`
	Types     []TypeSlot    `json:"types"`
	Abilities []AbilitySlot `json:"abilities"`
	Sprites   Sprites       `json:"sprites"`
}

type indexResponse struct {
	Count   int             `json:"count"`
	Results []NamedResource `json:"results"`
}

type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient builds a PokeAPI client. Requests are throttled client-side so a
// full catalog load stays polite toward the public API.
func NewClient(baseURL string, requestsPerSecond float64, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if requestsPerSecond <= 0 {
		requestsPerSecond = 20
	}
	burst := int(requestsPerSecond)
	if burst < 1 {
		burst = 1
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
	}
}

// ListPokemon fetches the flat catalog index in one request.
func (c *Client) ListPokemon(ctx context.Context, limit int) ([]NamedResource, error) {
	if limit < 1 {
		limit = 151
	}

	q := make(url.Values)
	q.Set("limit", strconv.Itoa(limit))

	var idx indexResponse
	if err := c.getJSON(ctx, c.baseURL+"/pokemon?"+q.Encode(), &idx, "list pokemon"); err != nil {
		return nil, err
	}
	return idx.Results, nil
}

// PokemonByURL fetches a pokemon record at its catalog locator verbatim.
// Used by the enrichment pass; callers treat failures as soft.
func (c *Client) PokemonByURL(ctx context.Context, locator string) (Pokemon, error) {
	if strings.TrimSpace(locator) == "" {
		return Pokemon{}, fmt.Errorf("empty pokemon locator")
	}
	var p Pokemon
	if err := c.getJSON(ctx, locator, &p, "fetch pokemon"); err != nil {
		return Pokemon{}, err
	}
	return p, nil
}

// PokemonByID fetches the full record at the canonical address for an ID.
func (c *Client) PokemonByID(ctx context.Context, id int) (Pokemon, error) {
	if id < 1 {
		return Pokemon{}, fmt.Errorf("pokemon id must be positive: %d", id)
	}
	var p Pokemon
	if err := c.getJSON(ctx, fmt.Sprintf("%s/pokemon/%d", c.baseURL, id), &p, "fetch pokemon"); err != nil {
		return Pokemon{}, err
	}
	return p, nil
}

func (c *Client) getJSON(ctx context.Context, fullURL string, out any, resource string) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%s rate limit wait: %w", resource, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", resource, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%s failed with status %d: %s", resource, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", resource, err)
	}
	return nil
}
