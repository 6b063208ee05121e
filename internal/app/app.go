package app

import (
	"context"
	"fmt"

	"github.com/Leo-Fish/pokedex-cli/internal/catalog"
	"github.com/Leo-Fish/pokedex-cli/internal/detail"
	"github.com/Leo-Fish/pokedex-cli/internal/storage"
)

type CatalogLoader interface {
	Load(ctx context.Context) ([]catalog.Entry, error)
}

type DetailResolver interface {
	Resolve(ctx context.Context, id int) (detail.Record, error)
}

type Repository interface {
	LoadPreferences(ctx context.Context) (storage.Preferences, error)
	SavePreferences(ctx context.Context, p storage.Preferences) error
}

// Service wires the session: one catalog load at startup, per-selection
// detail fetches, and UI preference persistence.
type Service struct {
	loader   CatalogLoader
	resolver DetailResolver
	repo     Repository
}

func NewService(loader CatalogLoader, resolver DetailResolver, repo Repository) *Service {
	return &Service{loader: loader, resolver: resolver, repo: repo}
}

func (s *Service) LoadCatalog(ctx context.Context) ([]catalog.Entry, error) {
	entries, err := s.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return entries, nil
}

func (s *Service) ResolveDetail(ctx context.Context, id int) (detail.Record, error) {
	record, err := s.resolver.Resolve(ctx, id)
	if err != nil {
		return detail.Record{}, fmt.Errorf("resolve detail: %w", err)
	}
	return record, nil
}

func (s *Service) LoadUIPreferences(ctx context.Context) (storage.Preferences, error) {
	prefs, err := s.repo.LoadPreferences(ctx)
	if err != nil {
		return storage.Preferences{}, fmt.Errorf("load ui preferences: %w", err)
	}
	return prefs, nil
}

func (s *Service) SaveUIPreferences(ctx context.Context, prefs storage.Preferences) error {
	if err := s.repo.SavePreferences(ctx, prefs); err != nil {
		return fmt.Errorf("save ui preferences: %w", err)
	}
	return nil
}
