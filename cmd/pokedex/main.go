package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Leo-Fish/pokedex-cli/internal/app"
	"github.com/Leo-Fish/pokedex-cli/internal/catalog"
	"github.com/Leo-Fish/pokedex-cli/internal/config"
	"github.com/Leo-Fish/pokedex-cli/internal/detail"
	"github.com/Leo-Fish/pokedex-cli/internal/pokeapi"
	"github.com/Leo-Fish/pokedex-cli/internal/storage"
	"github.com/Leo-Fish/pokedex-cli/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	repo, err := storage.NewRepository(cfg.DBPath)
	if err != nil {
		log.Fatalf("storage init error: %v", err)
	}
	defer repo.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := repo.Init(ctx); err != nil {
		log.Fatalf("storage schema error: %v", err)
	}
	if err := repo.CheckWritable(ctx); err != nil {
		log.Fatalf("storage write check failed (%v). Verify POKEDEX_DB_PATH is writable: %s", err, cfg.DBPath)
	}

	client := pokeapi.NewClient(cfg.APIBaseURL, cfg.RequestsPerSecond, nil)
	loader := catalog.NewLoader(client, cfg.SpriteBaseURL, cfg.CatalogLimit)
	resolver := detail.NewResolver(client)
	service := app.NewService(loader, resolver, repo)

	model := tui.NewModel(service)

	prefCtx, prefCancel := context.WithTimeout(context.Background(), 5*time.Second)
	prefs, err := service.LoadUIPreferences(prefCtx)
	prefCancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not load UI preferences (%v), using defaults\n", err)
		prefs = storage.DefaultPreferences()
	}
	model.ApplyPreferences(prefs)
	model.SetPreferencesSaver(service.SaveUIPreferences)

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Fatalf("tui error: %v", err)
	}
}
