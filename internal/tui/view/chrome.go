package view

import (
	"fmt"
	"strings"

	"github.com/Leo-Fish/pokedex-cli/internal/query"
	tuitheme "github.com/Leo-Fish/pokedex-cli/internal/tui/theme"
)

func Toolbar(inDetail, searching bool, mode query.ViewMode) string {
	if searching {
		return "type to filter | enter apply | esc cancel"
	}
	if inDetail {
		return "[ ] prev/next | o open artwork | y copy artwork URL | i preview | esc back | q quit"
	}
	if mode == query.GalleryMode {
		return "arrows move | / search | f type filter | s sort | o order | v list view | enter details | r reload | q quit"
	}
	return "j/k move | / search | s sort | o order | v gallery view | g/G top/bottom | enter details | r reload | q quit"
}

func Footer(st query.State, shown int, th tuitheme.Theme) string {
	parts := []string{
		th.MetaLabel.Render("view") + " " + th.MetaValue.Render(string(st.Mode)),
		th.MetaLabel.Render("sort") + " " + th.MetaValue.Render(fmt.Sprintf("%s/%s", st.Key, st.Order)),
		th.MetaValue.Render(fmt.Sprintf("%d shown", shown)),
	}
	if st.Text != "" {
		parts = append(parts, th.MetaLabel.Render("search")+" "+th.MetaValue.Render(fmt.Sprintf("%q", st.Text)))
	}
	if st.Mode == query.GalleryMode {
		filter := st.Category
		if filter == "" {
			filter = "all"
		}
		parts = append(parts, th.MetaLabel.Render("type")+" "+th.MetaValue.Render(filter))
	}
	return strings.Join(parts, " • ")
}

func Message(loading, hasWarning bool, status, warning string, th tuitheme.Theme) string {
	state := "idle"
	if loading {
		state = "loading"
	}
	if hasWarning {
		state = "warning"
	}
	main := "Ready"
	if status != "" {
		main = status
	} else if hasWarning {
		main = warning
	}
	stateLabel := th.StateIdle.Render("state")
	switch state {
	case "warning":
		stateLabel = th.StateWarn.Render("state")
	case "loading":
		stateLabel = th.StateLoad.Render("state")
	}
	return fmt.Sprintf("%s: %s | %s", stateLabel, state, th.MetaValue.Render(main))
}
