package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"brokerctl/internal/columns"
	"brokerctl/internal/listing"
	"brokerctl/internal/tui/design"
	"brokerctl/internal/tui/model"
	"brokerctl/internal/tui/utils"
)

// renderDetailPanel draws the side panel for the selected listing. It
// walks the full registry, not just the visible columns, so the panel
// always shows the whole record.
func renderDetailPanel(m *model.Model, l listing.Listing) string {
	width := m.Width / 3
	if width < design.MinDetailWidth {
		width = design.MinDetailWidth
	}
	valueWidth := width - 16 - design.SpaceSM*2
	if valueWidth < 8 {
		valueWidth = 8
	}

	enhanced := columns.Enhance(m.Registry, nil)

	var b strings.Builder
	title := l.Code
	if l.IsStarred {
		title = design.StarStyle.Render("★ ") + title
	}
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(title))
	b.WriteString("\n\n")

	for _, col := range enhanced {
		if col.Key == listing.ColStarred || col.Key == listing.ColCode {
			continue
		}
		value := col.Render(l, 0)
		if value == "" {
			continue
		}
		b.WriteString(design.DetailLabelStyle.Render(col.Label))
		if col.StyleHint == columns.HintBadge {
			// Badge cells carry their own styling; keep them whole.
			b.WriteString(value)
		} else {
			b.WriteString(utils.TruncateString(value, valueWidth))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(design.DimStyle.Render("esc close · s star · m status · t type"))

	return design.DetailPanelStyle.Width(width).Render(b.String())
}
