package actions

import (
	"context"
	"errors"
	"testing"

	"github.com/Leo-Fish/pokedex-cli/internal/catalog"
	"github.com/Leo-Fish/pokedex-cli/internal/detail"
	"github.com/Leo-Fish/pokedex-cli/internal/storage"
)

type fakeService struct {
	entries    []catalog.Entry
	catalogErr error
	record     detail.Record
	detailErr  error
	lastID     int
}

func (f *fakeService) LoadCatalog(context.Context) ([]catalog.Entry, error) {
	if f.catalogErr != nil {
		return nil, f.catalogErr
	}
	return f.entries, nil
}

func (f *fakeService) ResolveDetail(_ context.Context, id int) (detail.Record, error) {
	f.lastID = id
	if f.detailErr != nil {
		return detail.Record{}, f.detailErr
	}
	return f.record, nil
}

func TestLoadCatalogCmd(t *testing.T) {
	svc := &fakeService{entries: []catalog.Entry{{Name: "bulbasaur", Locator: "https://x/1/"}}}
	msg := LoadCatalogCmd(svc)()

	loaded, ok := msg.(CatalogLoadedMsg)
	if !ok {
		t.Fatalf("expected CatalogLoadedMsg, got %T", msg)
	}
	if len(loaded.Entries) != 1 || loaded.Entries[0].Name != "bulbasaur" {
		t.Fatalf("unexpected entries: %+v", loaded.Entries)
	}
}

func TestLoadCatalogCmd_Error(t *testing.T) {
	svc := &fakeService{catalogErr: errors.New("boom")}
	msg := LoadCatalogCmd(svc)()
	if _, ok := msg.(CatalogErrorMsg); !ok {
		t.Fatalf("expected CatalogErrorMsg, got %T", msg)
	}
}

func TestResolveDetailCmd_TagsRequestedID(t *testing.T) {
	svc := &fakeService{record: detail.Record{ID: 25, DisplayName: "Pikachu"}}
	msg := ResolveDetailCmd(svc, 25)()

	loaded, ok := msg.(DetailLoadedMsg)
	if !ok {
		t.Fatalf("expected DetailLoadedMsg, got %T", msg)
	}
	if loaded.ID != 25 || svc.lastID != 25 {
		t.Fatalf("requested id not carried through: msg=%d svc=%d", loaded.ID, svc.lastID)
	}
}

func TestResolveDetailCmd_ErrorKeepsID(t *testing.T) {
	svc := &fakeService{detailErr: errors.New("boom")}
	msg := ResolveDetailCmd(svc, 7)()

	errMsg, ok := msg.(DetailErrorMsg)
	if !ok {
		t.Fatalf("expected DetailErrorMsg, got %T", msg)
	}
	if errMsg.ID != 7 {
		t.Fatalf("error message should carry the requested id, got %d", errMsg.ID)
	}
}

func TestSavePreferencesCmd(t *testing.T) {
	var saved *storage.Preferences
	saveFn := func(_ context.Context, p storage.Preferences) error {
		saved = &p
		return nil
	}

	msg := SavePreferencesCmd(saveFn, storage.Preferences{ViewMode: "gallery"})()
	if msg != nil {
		t.Fatalf("successful save should yield no message, got %T", msg)
	}
	if saved == nil || saved.ViewMode != "gallery" {
		t.Fatalf("preferences not saved: %+v", saved)
	}

	msg = SavePreferencesCmd(func(context.Context, storage.Preferences) error {
		return errors.New("disk full")
	}, storage.Preferences{})()
	if _, ok := msg.(PreferenceSaveErrorMsg); !ok {
		t.Fatalf("expected PreferenceSaveErrorMsg, got %T", msg)
	}
}

func TestOpenURLCmd_FallsBackToClipboard(t *testing.T) {
	openFn := func(string) error { return errors.New("no browser") }
	var copied string
	copyFn := func(u string) error {
		copied = u
		return nil
	}

	msg := OpenURLCmd("https://img.example/25.png", openFn, copyFn)()
	success, ok := msg.(OpenURLSuccessMsg)
	if !ok {
		t.Fatalf("expected OpenURLSuccessMsg, got %T", msg)
	}
	if copied != "https://img.example/25.png" {
		t.Fatalf("clipboard fallback not used: %q", copied)
	}
	if success.Status == "" {
		t.Fatal("expected status text")
	}
}

func TestOpenURLCmd_AllFail(t *testing.T) {
	fail := func(string) error { return errors.New("nope") }
	msg := OpenURLCmd("https://img.example/25.png", fail, fail)()
	if _, ok := msg.(OpenURLErrorMsg); !ok {
		t.Fatalf("expected OpenURLErrorMsg, got %T", msg)
	}
}

func TestLoadImagePreviewCmd(t *testing.T) {
	renderFn := func(url string, width int) (string, error) {
		return "ascii-art", nil
	}
	msg := LoadImagePreviewCmd(25, "https://img.example/25.png", 80, renderFn)()

	loaded, ok := msg.(ImagePreviewLoadedMsg)
	if !ok {
		t.Fatalf("expected ImagePreviewLoadedMsg, got %T", msg)
	}
	if loaded.ID != 25 || loaded.Rendered != "ascii-art" {
		t.Fatalf("unexpected preview: %+v", loaded)
	}

	msg = LoadImagePreviewCmd(25, "u", 80, nil)()
	if _, ok := msg.(ImagePreviewErrorMsg); !ok {
		t.Fatalf("expected ImagePreviewErrorMsg for nil renderer, got %T", msg)
	}
}
