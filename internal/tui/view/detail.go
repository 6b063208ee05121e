package view

import (
	"fmt"
	"strings"

	"github.com/Leo-Fish/pokedex-cli/internal/detail"
	tuitheme "github.com/Leo-Fish/pokedex-cli/internal/tui/theme"
)

type WrapFunc func(string, int) []string

func DetailLines(record detail.Record, width int, wrap WrapFunc, th tuitheme.Theme) []string {
	lines := make([]string, 0, 16)
	header := fmt.Sprintf("%s  %s", th.Title.Render(record.DisplayName), th.EntryID.Render(fmt.Sprintf("#%03d", record.ID)))
	lines = append(lines, header)
	lines = append(lines, strings.Repeat("=", max(1, min(width, len(record.DisplayName)+6))))
	lines = append(lines, "")

	if len(record.Categories) > 0 {
		badges := make([]string, 0, len(record.Categories))
		for _, category := range record.Categories {
			badges = append(badges, th.TypeBadge(category))
		}
		lines = append(lines, th.MetaLabel.Render("Types:")+" "+strings.Join(badges, " "))
	}

	lines = append(lines, th.MetaLabel.Render("Height:")+" "+th.MetaValue.Render(fmt.Sprintf("%.1f m", record.HeightDisplay())))
	lines = append(lines, th.MetaLabel.Render("Weight:")+" "+th.MetaValue.Render(fmt.Sprintf("%.1f kg", record.MassDisplay())))

	if len(record.Traits) > 0 {
		lines = append(lines, "", th.Section.Render("Abilities"))
		for _, trait := range record.Traits {
			label := "  - " + trait.Name
			if trait.Hidden {
				label += " " + th.HiddenTrait.Render("(hidden)")
			}
			lines = append(lines, label)
		}
	}

	if record.PrimaryImage != "" {
		lines = append(lines, "")
		lines = append(lines, wrap("Artwork: "+record.PrimaryImage, width)...)
	}

	return lines
}
