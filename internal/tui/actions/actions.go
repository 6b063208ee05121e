package actions

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Leo-Fish/pokedex-cli/internal/catalog"
	"github.com/Leo-Fish/pokedex-cli/internal/detail"
	"github.com/Leo-Fish/pokedex-cli/internal/storage"
)

type Service interface {
	LoadCatalog(ctx context.Context) ([]catalog.Entry, error)
	ResolveDetail(ctx context.Context, id int) (detail.Record, error)
}

type CatalogLoadedMsg struct {
	Entries  []catalog.Entry
	Duration time.Duration
}

type CatalogErrorMsg struct {
	Err      error
	Duration time.Duration
}

type DetailLoadedMsg struct {
	ID     int
	Record detail.Record
}

type DetailErrorMsg struct {
	ID  int
	Err error
}

type PreferenceSaveErrorMsg struct {
	Err error
}

type OpenURLSuccessMsg struct {
	Status string
}

type OpenURLErrorMsg struct {
	Err error
}

type ClearStatusMsg struct {
	ID int
}

type ImagePreviewLoadedMsg struct {
	ID       int
	Rendered string
}

type ImagePreviewErrorMsg struct {
	ID  int
	Err error
}

// LoadCatalogCmd fetches the full catalog. The timeout is generous: the
// enrichment pass issues one request per entry through a shared rate limit.
func LoadCatalogCmd(service Service) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		start := time.Now()

		entries, err := service.LoadCatalog(ctx)
		if err != nil {
			return CatalogErrorMsg{Err: err, Duration: time.Since(start)}
		}
		return CatalogLoadedMsg{Entries: entries, Duration: time.Since(start)}
	}
}

// ResolveDetailCmd fetches one record. The requested ID rides along on the
// result so stale responses can be discarded after the selection moves.
func ResolveDetailCmd(service Service, id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		record, err := service.ResolveDetail(ctx, id)
		if err != nil {
			return DetailErrorMsg{ID: id, Err: err}
		}
		return DetailLoadedMsg{ID: id, Record: record}
	}
}

func SavePreferencesCmd(saveFn func(context.Context, storage.Preferences) error, prefs storage.Preferences) tea.Cmd {
	return func() tea.Msg {
		if saveFn == nil {
			return nil
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := saveFn(ctx, prefs); err != nil {
			return PreferenceSaveErrorMsg{Err: err}
		}
		return nil
	}
}

func OpenURLCmd(url string, openFn, copyFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		if openFn != nil {
			if err := openFn(url); err == nil {
				return OpenURLSuccessMsg{Status: "Opened artwork in browser"}
			}
		}
		if copyFn != nil {
			if err := copyFn(url); err == nil {
				return OpenURLSuccessMsg{Status: "Could not open browser, URL copied to clipboard"}
			}
		}
		return OpenURLErrorMsg{Err: fmt.Errorf("could not open URL or copy to clipboard")}
	}
}

func CopyURLCmd(url string, copyFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		if copyFn != nil {
			if err := copyFn(url); err == nil {
				return OpenURLSuccessMsg{Status: "Artwork URL copied to clipboard"}
			}
		}
		return OpenURLErrorMsg{Err: fmt.Errorf("could not copy URL to clipboard")}
	}
}

func ClearStatusCmd(id int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return ClearStatusMsg{ID: id}
	})
}

func LoadImagePreviewCmd(id int, url string, width int, renderFn func(string, int) (string, error)) tea.Cmd {
	return func() tea.Msg {
		if renderFn == nil {
			return ImagePreviewErrorMsg{ID: id, Err: fmt.Errorf("no image renderer configured")}
		}
		rendered, err := renderFn(url, width)
		if err != nil {
			return ImagePreviewErrorMsg{ID: id, Err: err}
		}
		return ImagePreviewLoadedMsg{ID: id, Rendered: rendered}
	}
}
