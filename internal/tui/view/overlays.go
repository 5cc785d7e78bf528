package view

import (
	"fmt"
	"strings"

	"brokerctl/internal/filter"
	"brokerctl/internal/listing"
	"brokerctl/internal/tui/design"
	"brokerctl/internal/tui/model"
)

func renderHelpOverlay(m *model.Model) string {
	var b strings.Builder
	b.WriteString(design.HelpTitleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n")

	sections := []struct {
		title string
		keys  [][2]string
	}{
		{"Navigation", [][2]string{
			{"↑/k ↓/j", "move cursor"},
			{"tab / shift+tab", "switch listing-type tab"},
			{"enter", "open detail panel"},
			{"esc", "close detail panel"},
		}},
		{"Editing", [][2]string{
			{"s", "toggle star"},
			{"m", "cycle marketing status"},
			{"t", "cycle listing type"},
			{"y", "copy row to clipboard"},
		}},
		{"View", [][2]string{
			{"f", "filter overlay"},
			{"c", "column customizer"},
			{"r", "reset columns to preset"},
			{"g", "group by project"},
		}},
		{"General", [][2]string{
			{"?", "toggle this help"},
			{"q / ctrl+c", "quit"},
		}},
	}

	for _, section := range sections {
		b.WriteString("\n")
		b.WriteString(design.OverlayTitleStyle.Render(section.title))
		b.WriteString("\n")
		for _, row := range section.keys {
			b.WriteString(fmt.Sprintf("  %s %s\n",
				design.HelpKeyStyle.Render(row[0]),
				design.TextSecondaryStyle.Render(row[1])))
		}
	}

	return b.String()
}

func renderFilterOverlay(m *model.Model) string {
	var b strings.Builder
	b.WriteString(design.OverlayTitleStyle.Render("Filters"))
	b.WriteString("\n\n")

	rows := []struct {
		row   model.FilterRow
		label string
		value string
	}{
		{model.FilterRowStarred, "Starred", starredLabel(m.FilterSpec.Starred)},
		{model.FilterRowBedroomMin, "Bedrooms min", fmt.Sprintf("%d", m.FilterSpec.BedroomMin)},
		{model.FilterRowBedroomMax, "Bedrooms max", bedroomMaxLabel(m.FilterSpec.BedroomMax)},
		{model.FilterRowPriceBracket, "Asking price", model.PriceBrackets[m.PriceIndex].Label},
		{model.FilterRowPropertyType, "Property type", anyLabel(singleOrEmpty(m.FilterSpec.PropertyTypes))},
		{model.FilterRowMarketingStatus, "Marketing status", marketingLabel(m.FilterSpec.MarketingStatuses)},
		{model.FilterRowLocation, "Location", m.LocationInput.View()},
	}

	for _, r := range rows {
		cursor := "  "
		label := design.TextSecondaryStyle.Render(r.label)
		if m.FilterCursor == r.row {
			cursor = design.OverlayCursorStyle.Render("▸ ")
			label = design.OverlayCursorStyle.Render(r.label)
		}
		b.WriteString(fmt.Sprintf("%s%-34s %s\n", cursor, label, r.value))
	}

	b.WriteString(design.OverlayHintStyle.Render("↑/↓ select · ←/→ change · ctrl+r clear · esc close"))
	return b.String()
}

func renderColumnsOverlay(m *model.Model) string {
	var b strings.Builder
	b.WriteString(design.OverlayTitleStyle.Render("Columns"))
	b.WriteString("\n\n")

	for i, col := range m.Registry {
		check := "[ ]"
		if m.ColumnVisible(col.Key) {
			check = "[x]"
		}

		line := fmt.Sprintf("%s %s", check, col.Label)
		if i == m.ColumnsCursor {
			b.WriteString(design.OverlayCursorStyle.Render("▸ " + line))
		} else {
			b.WriteString("  " + design.TextStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString(design.OverlayHintStyle.Render("space toggle · H/L move · r reset · esc close"))
	return b.String()
}

func starredLabel(v *bool) string {
	switch {
	case v == nil:
		return "Any"
	case *v:
		return "★ starred only"
	default:
		return "☆ unstarred only"
	}
}

func bedroomMaxLabel(max int) string {
	if max >= filter.BedroomsOpenEnd {
		return fmt.Sprintf("%d+", filter.BedroomsOpenEnd)
	}
	return fmt.Sprintf("%d", max)
}

func singleOrEmpty(values []string) string {
	if len(values) == 1 {
		return values[0]
	}
	return ""
}

func anyLabel(v string) string {
	if v == "" {
		return "Any"
	}
	return v
}

func marketingLabel(statuses []listing.MarketingStatus) string {
	if len(statuses) != 1 {
		return "Any"
	}
	return string(statuses[0])
}
