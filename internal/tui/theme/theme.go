package theme

import (
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Title      lipgloss.Style
	ModePill   lipgloss.Style
	Section    lipgloss.Style
	ActiveLine lipgloss.Style
	MetaLabel  lipgloss.Style
	MetaValue  lipgloss.Style
	StateIdle  lipgloss.Style
	StateWarn  lipgloss.Style
	StateLoad  lipgloss.Style

	EntryID     lipgloss.Style
	EntryName   lipgloss.Style
	HiddenTrait lipgloss.Style

	badgeFallback lipgloss.Style
	badgeColors   map[string]lipgloss.Color
}

func Default() Theme {
	cpMauve := lipgloss.Color("#cba6f7")
	cpRed := lipgloss.Color("#f38ba8")
	cpPeach := lipgloss.Color("#fab387")
	cpGreen := lipgloss.Color("#a6e3a1")
	cpTeal := lipgloss.Color("#94e2d5")
	cpLavender := lipgloss.Color("#b4befe")
	cpText := lipgloss.Color("#cdd6f4")
	cpSubtext1 := lipgloss.Color("#bac2de")
	cpOverlay1 := lipgloss.Color("#7f849c")
	cpSurface0 := lipgloss.Color("#313244")

	return Theme{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(cpMauve),
		ModePill:    lipgloss.NewStyle().Foreground(cpLavender).Background(cpSurface0).Padding(0, 1),
		Section:     lipgloss.NewStyle().Bold(true).Foreground(cpTeal),
		ActiveLine:  lipgloss.NewStyle().Background(cpSurface0).Foreground(cpText),
		MetaLabel:   lipgloss.NewStyle().Foreground(cpOverlay1),
		MetaValue:   lipgloss.NewStyle().Foreground(cpSubtext1),
		StateIdle:   lipgloss.NewStyle().Foreground(cpGreen),
		StateWarn:   lipgloss.NewStyle().Foreground(cpRed),
		StateLoad:   lipgloss.NewStyle().Foreground(cpPeach),
		EntryID:     lipgloss.NewStyle().Foreground(cpOverlay1),
		EntryName:   lipgloss.NewStyle().Bold(true).Foreground(cpText),
		HiddenTrait: lipgloss.NewStyle().Italic(true).Foreground(cpOverlay1),

		badgeFallback: lipgloss.NewStyle().Foreground(cpText).Background(cpSurface0).Padding(0, 1),
		badgeColors:   pokemonTypeColors(),
	}
}

// pokemonTypeColors is the conventional palette for the 18 pokemon types.
func pokemonTypeColors() map[string]lipgloss.Color {
	return map[string]lipgloss.Color{
		"normal":   lipgloss.Color("#a8a77a"),
		"fire":     lipgloss.Color("#ee8130"),
		"water":    lipgloss.Color("#6390f0"),
		"electric": lipgloss.Color("#f7d02c"),
		"grass":    lipgloss.Color("#7ac74c"),
		"ice":      lipgloss.Color("#96d9d6"),
		"fighting": lipgloss.Color("#c22e28"),
		"poison":   lipgloss.Color("#a33ea1"),
		"ground":   lipgloss.Color("#e2bf65"),
		"flying":   lipgloss.Color("#a98ff3"),
		"psychic":  lipgloss.Color("#f95587"),
		"bug":      lipgloss.Color("#a6b91a"),
		"rock":     lipgloss.Color("#b6a136"),
		"ghost":    lipgloss.Color("#735797"),
		"dragon":   lipgloss.Color("#6f35fc"),
		"dark":     lipgloss.Color("#705746"),
		"steel":    lipgloss.Color("#b7b7ce"),
		"fairy":    lipgloss.Color("#d685ad"),
	}
}

// TypeBadge renders a category name as a colored pill. Unknown categories
// fall back to a neutral badge rather than failing.
func (t Theme) TypeBadge(name string) string {
	color, ok := t.badgeColors[name]
	if !ok {
		return t.badgeFallback.Render(name)
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#11111b")).
		Background(color).
		Padding(0, 1).
		Render(name)
}

func (t Theme) RenderActiveLine(active bool, line string) string {
	if !active {
		return line
	}
	return t.ActiveLine.Render(line)
}
