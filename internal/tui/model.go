package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Leo-Fish/pokedex-cli/internal/catalog"
	"github.com/Leo-Fish/pokedex-cli/internal/detail"
	"github.com/Leo-Fish/pokedex-cli/internal/query"
	"github.com/Leo-Fish/pokedex-cli/internal/storage"
	"github.com/Leo-Fish/pokedex-cli/internal/tui/actions"
	"github.com/Leo-Fish/pokedex-cli/internal/tui/platform"
	"github.com/Leo-Fish/pokedex-cli/internal/tui/state"
	tuitheme "github.com/Leo-Fish/pokedex-cli/internal/tui/theme"
	"github.com/Leo-Fish/pokedex-cli/internal/tui/view"
)

type Model struct {
	service actions.Service
	th      tuitheme.Theme

	entries    []catalog.Entry
	categories []string

	st          query.State
	categoryIdx int

	searching   bool
	searchInput textinput.Model

	cursor int

	inDetail      bool
	selectedID    int
	record        detail.Record
	hasRecord     bool
	detailLoading bool
	detailErr     error
	detailTop     int

	compact bool

	width  int
	height int

	loading             bool
	catalogLoadDuration time.Duration
	status              string
	statusID            int
	err                 error

	spin spinner.Model

	openURLFn         func(string) error
	copyURLFn         func(string) error
	renderImageFn     func(string, int) (string, error)
	savePreferencesFn func(context.Context, storage.Preferences) error

	imagePreview        map[int]string
	imagePreviewErr     map[int]string
	imagePreviewLoading map[int]bool
}

func NewModel(service actions.Service) Model {
	ti := textinput.New()
	ti.Placeholder = "name contains..."
	ti.CharLimit = 40
	ti.Width = 32

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		service: service,
		th:      tuitheme.Default(),
		st: query.State{
			Key:   query.ByID,
			Order: query.Ascending,
			Mode:  query.ListMode,
		},
		searchInput:         ti,
		spin:                sp,
		loading:             true,
		openURLFn:           platform.OpenURLInBrowser,
		copyURLFn:           platform.CopyURLToClipboard,
		renderImageFn:       view.RenderInlineImagePreview,
		imagePreview:        make(map[int]string),
		imagePreviewErr:     make(map[int]string),
		imagePreviewLoading: make(map[int]bool),
	}
}

// ApplyPreferences overlays persisted UI preferences. Unknown values keep
// the defaults rather than failing startup.
func (m *Model) ApplyPreferences(prefs storage.Preferences) {
	if mode, err := query.ParseViewMode(prefs.ViewMode); err == nil {
		m.st.Mode = mode
	}
	if key, err := query.ParseSortKey(prefs.SortKey); err == nil {
		m.st.Key = key
	}
	if order, err := query.ParseOrder(prefs.SortOrder); err == nil {
		m.st.Order = order
	}
	m.compact = prefs.Compact
}

func (m *Model) SetPreferencesSaver(fn func(context.Context, storage.Preferences) error) {
	m.savePreferencesFn = fn
}

func (m Model) preferences() storage.Preferences {
	return storage.Preferences{
		ViewMode:  string(m.st.Mode),
		SortKey:   string(m.st.Key),
		SortOrder: string(m.st.Order),
		Compact:   m.compact,
	}
}

func (m Model) results() []catalog.Entry {
	return query.Results(m.entries, m.st)
}

func (m Model) Init() tea.Cmd {
	if m.service == nil {
		return nil
	}
	return tea.Batch(m.spin.Tick, actions.LoadCatalogCmd(m.service))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.loading && !m.detailLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		if m.inDetail {
			return m.updateDetail(msg)
		}
		return m.updateBrowse(msg)

	case actions.CatalogLoadedMsg:
		m.loading = false
		m.err = nil
		m.entries = msg.Entries
		m.categories = catalog.CategorySet(msg.Entries)
		m.categoryIdx = 0
		m.st.Category = ""
		m.catalogLoadDuration = msg.Duration
		m.cursor = 0
		m.status = fmt.Sprintf("Loaded %d entries in %s", len(msg.Entries), msg.Duration.Round(time.Millisecond))
		m.statusID++
		return m, actions.ClearStatusCmd(m.statusID, 4*time.Second)

	case actions.CatalogErrorMsg:
		m.loading = false
		m.status = ""
		m.err = msg.Err
		return m, nil

	case actions.DetailLoadedMsg:
		if msg.ID != m.selectedID {
			return m, nil
		}
		m.detailLoading = false
		m.detailErr = nil
		m.record = msg.Record
		m.hasRecord = true
		return m, nil

	case actions.DetailErrorMsg:
		if msg.ID != m.selectedID {
			return m, nil
		}
		m.detailLoading = false
		m.detailErr = msg.Err
		return m, nil

	case actions.PreferenceSaveErrorMsg:
		m.err = msg.Err
		m.status = "Could not persist UI preferences"
		return m, nil

	case actions.OpenURLSuccessMsg:
		m.err = nil
		m.status = msg.Status
		m.statusID++
		return m, actions.ClearStatusCmd(m.statusID, 3*time.Second)

	case actions.OpenURLErrorMsg:
		m.err = nil
		m.status = msg.Err.Error()
		m.statusID++
		return m, actions.ClearStatusCmd(m.statusID, 4*time.Second)

	case actions.ClearStatusMsg:
		if msg.ID == m.statusID {
			m.status = ""
		}
		return m, nil

	case actions.ImagePreviewLoadedMsg:
		delete(m.imagePreviewLoading, msg.ID)
		delete(m.imagePreviewErr, msg.ID)
		m.imagePreview[msg.ID] = msg.Rendered
		return m, nil

	case actions.ImagePreviewErrorMsg:
		delete(m.imagePreviewLoading, msg.ID)
		m.imagePreviewErr[msg.ID] = msg.Err.Error()
		return m, nil
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.SetValue(m.st.Text)
		return m, nil
	case "enter":
		m.searching = false
		m.searchInput.Blur()
		m.st.Text = strings.TrimSpace(m.searchInput.Value())
		m.cursor = 0
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "esc", "backspace":
		m.inDetail = false
		m.detailTop = 0
		m.detailErr = nil
		return m, nil
	case "r":
		if m.detailErr == nil || m.selectedID < 1 {
			return m, nil
		}
		m.detailErr = nil
		m.detailLoading = true
		return m, tea.Batch(m.spin.Tick, actions.ResolveDetailCmd(m.service, m.selectedID))
	case "[":
		prevID, _ := catalog.Neighbors(m.entries, m.selectedID)
		if prevID < 1 {
			return m.flashStatus("No previous entry")
		}
		return m.openDetail(prevID)
	case "]":
		_, nextID := catalog.Neighbors(m.entries, m.selectedID)
		if nextID < 1 {
			return m.flashStatus("No next entry")
		}
		return m.openDetail(nextID)
	case "o":
		return m.openArtwork()
	case "y":
		return m.copyArtwork()
	case "i":
		return m.loadImagePreview()
	case "up", "k":
		if m.detailTop > 0 {
			m.detailTop--
		}
		return m, nil
	case "down", "j":
		lines := m.detailLines()
		maxTop := len(lines) - m.detailBodyHeight()
		if maxTop < 0 {
			maxTop = 0
		}
		if m.detailTop < maxTop {
			m.detailTop++
		}
		return m, nil
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "/":
		m.searching = true
		m.searchInput.SetValue(m.st.Text)
		return m, m.searchInput.Focus()
	case "ctrl+l":
		m.st.Text = ""
		m.searchInput.SetValue("")
		m.cursor = 0
		return m.flashStatus("Search cleared")
	case "v", "tab":
		if m.st.Mode == query.ListMode {
			m.st.Mode = query.GalleryMode
		} else {
			m.st.Mode = query.ListMode
		}
		m.cursor = 0
		return m, actions.SavePreferencesCmd(m.savePreferencesFn, m.preferences())
	case "s":
		if m.st.Key == query.ByID {
			m.st.Key = query.ByName
		} else {
			m.st.Key = query.ByID
		}
		m.cursor = 0
		return m, actions.SavePreferencesCmd(m.savePreferencesFn, m.preferences())
	case "o":
		if m.st.Order == query.Ascending {
			m.st.Order = query.Descending
		} else {
			m.st.Order = query.Ascending
		}
		m.cursor = 0
		return m, actions.SavePreferencesCmd(m.savePreferencesFn, m.preferences())
	case "f":
		if m.st.Mode != query.GalleryMode || len(m.categories) == 0 {
			return m, nil
		}
		m.categoryIdx = (m.categoryIdx + 1) % (len(m.categories) + 1)
		if m.categoryIdx == 0 {
			m.st.Category = ""
		} else {
			m.st.Category = m.categories[m.categoryIdx-1]
		}
		m.cursor = 0
		return m, nil
	case "c":
		m.compact = !m.compact
		if m.compact {
			m.status = "Compact mode: on"
		} else {
			m.status = "Compact mode: off"
		}
		return m, actions.SavePreferencesCmd(m.savePreferencesFn, m.preferences())
	case "r":
		if m.service == nil {
			return m, nil
		}
		m.loading = true
		m.status = ""
		m.err = nil
		return m, tea.Batch(m.spin.Tick, actions.LoadCatalogCmd(m.service))
	case "up", "k":
		return m.moveCursor(0, -1), nil
	case "down", "j":
		return m.moveCursor(0, 1), nil
	case "left", "h":
		if m.st.Mode == query.GalleryMode {
			return m.moveCursor(-1, 0), nil
		}
		return m, nil
	case "right", "l":
		if m.st.Mode == query.GalleryMode {
			return m.moveCursor(1, 0), nil
		}
		return m, nil
	case "g":
		m.cursor = 0
		return m, nil
	case "G":
		m.cursor = state.ClampCursor(len(m.results())-1, len(m.results()))
		return m, nil
	case "pgup":
		m.cursor = state.ClampCursor(m.cursor-state.PageStep(m.height, m.status != ""), len(m.results()))
		return m, nil
	case "pgdown":
		m.cursor = state.ClampCursor(m.cursor+state.PageStep(m.height, m.status != ""), len(m.results()))
		return m, nil
	case "enter":
		results := m.results()
		if len(results) == 0 {
			return m, nil
		}
		m.cursor = state.ClampCursor(m.cursor, len(results))
		id := results[m.cursor].ID()
		if id < 1 {
			return m.flashStatus("Entry has no ID, no details available")
		}
		return m.openDetail(id)
	}
	return m, nil
}

func (m Model) moveCursor(dx, dy int) Model {
	size := len(m.results())
	if m.st.Mode == query.GalleryMode {
		m.cursor = state.GridMove(m.cursor, size, view.Columns(m.width), dx, dy)
		return m
	}
	m.cursor = state.ClampCursor(m.cursor+dx+dy, size)
	return m
}

func (m Model) openDetail(id int) (tea.Model, tea.Cmd) {
	m.inDetail = true
	m.selectedID = id
	m.hasRecord = false
	m.detailErr = nil
	m.detailTop = 0
	m.detailLoading = true
	return m, tea.Batch(m.spin.Tick, actions.ResolveDetailCmd(m.service, id))
}

func (m Model) openArtwork() (tea.Model, tea.Cmd) {
	if !m.hasRecord {
		return m, nil
	}
	url, err := platform.ValidateArtworkURL(m.record.PrimaryImage)
	if err != nil {
		return m.flashStatus(err.Error())
	}
	return m, actions.OpenURLCmd(url, m.openURLFn, m.copyURLFn)
}

func (m Model) copyArtwork() (tea.Model, tea.Cmd) {
	if !m.hasRecord {
		return m, nil
	}
	url, err := platform.ValidateArtworkURL(m.record.PrimaryImage)
	if err != nil {
		return m.flashStatus(err.Error())
	}
	return m, actions.CopyURLCmd(url, m.copyURLFn)
}

func (m Model) loadImagePreview() (tea.Model, tea.Cmd) {
	if !m.hasRecord || m.record.PrimaryImage == "" {
		return m, nil
	}
	id := m.record.ID
	if _, ok := m.imagePreview[id]; ok {
		return m, nil
	}
	if m.imagePreviewLoading[id] {
		return m, nil
	}
	m.imagePreviewLoading[id] = true
	return m, actions.LoadImagePreviewCmd(id, m.record.PrimaryImage, m.contentWidth(), m.renderImageFn)
}

func (m Model) flashStatus(status string) (tea.Model, tea.Cmd) {
	m.status = status
	m.statusID++
	return m, actions.ClearStatusCmd(m.statusID, 3*time.Second)
}

func (m Model) contentWidth() int {
	if m.width <= 0 {
		return 80
	}
	if m.width > 120 {
		return 120
	}
	return m.width
}

func (m Model) detailBodyHeight() int {
	if m.height <= 0 {
		return 20
	}
	h := m.height - 7
	if h < 5 {
		return 5
	}
	return h
}

func (m Model) detailLines() []string {
	if !m.hasRecord {
		return nil
	}
	lines := view.DetailLines(m.record, m.contentWidth(), view.Wrap, m.th)
	if preview, ok := m.imagePreview[m.record.ID]; ok {
		lines = append(lines, "")
		lines = append(lines, strings.Split(preview, "\n")...)
	} else if previewErr, ok := m.imagePreviewErr[m.record.ID]; ok {
		lines = append(lines, "", "Artwork preview unavailable: "+previewErr)
	} else if m.imagePreviewLoading[m.record.ID] {
		lines = append(lines, "", "Rendering artwork preview...")
	}
	return lines
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.th.Title.Render("Pokedex") + " " + m.th.ModePill.Render(string(m.st.Mode)) + "\n")
	b.WriteString(view.Toolbar(m.inDetail, m.searching, m.st.Mode) + "\n")
	if m.searching {
		b.WriteString("search: " + m.searchInput.View() + "\n")
	}
	b.WriteString("\n")

	if m.inDetail {
		b.WriteString(m.detailView())
	} else {
		b.WriteString(m.browseView())
	}

	b.WriteString("\n")
	b.WriteString(view.Message(m.loading || m.detailLoading, m.err != nil, m.status, m.errText(), m.th))
	b.WriteString("\n")
	b.WriteString(view.Footer(m.st, len(m.results()), m.th))
	b.WriteString("\n")
	return b.String()
}

func (m Model) errText() string {
	if m.err == nil {
		return ""
	}
	return m.err.Error()
}

func (m Model) browseView() string {
	if m.loading {
		return m.spin.View() + " Loading catalog...\n"
	}
	if m.err != nil && len(m.entries) == 0 {
		return "Could not load the catalog. Press r to retry.\n"
	}

	results := m.results()
	if len(results) == 0 {
		if m.st.Mode == query.ListMode && m.st.Text == "" {
			return "Press / and type to search the catalog.\n"
		}
		return "No entries match the current filters.\n"
	}

	cursor := state.ClampCursor(m.cursor, len(results))
	var b strings.Builder
	if m.st.Mode == query.GalleryMode {
		columns := view.Columns(m.contentWidth())
		lines := view.RenderGalleryRows(results, columns, cursor, m.th)
		rowHeight := state.PageStep(m.height, m.status != "")
		start, end := state.CenteredWindow(len(lines), 2*(cursor/columns), rowHeight)
		for _, line := range lines[start:end] {
			b.WriteString(line + "\n")
		}
		return b.String()
	}

	bodyHeight := state.PageStep(m.height, m.status != "")
	start, end := state.CenteredWindow(len(results), cursor, bodyHeight)
	for i := start; i < end; i++ {
		b.WriteString(view.RenderEntryLine(view.EntryLineParams{
			Entry:       results[i],
			Compact:     m.compact,
			ShowNumbers: true,
			VisiblePos:  i,
			Active:      i == cursor,
			Selected:    results[i].ID() == m.selectedID && m.selectedID > 0,
			Width:       m.contentWidth(),
		}, m.th))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) detailView() string {
	if m.detailLoading {
		return m.spin.View() + fmt.Sprintf(" Loading entry #%03d...\n", m.selectedID)
	}
	if m.detailErr != nil {
		return fmt.Sprintf("Could not load entry #%03d: %v\nPress r to retry, esc to go back.\n", m.selectedID, m.detailErr)
	}
	if !m.hasRecord {
		return "No entry selected.\n"
	}

	lines := m.detailLines()
	top := m.detailTop
	if top > len(lines) {
		top = len(lines)
	}
	bottom := top + m.detailBodyHeight()
	if bottom > len(lines) {
		bottom = len(lines)
	}
	return strings.Join(lines[top:bottom], "\n") + "\n"
}
