package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"brokerctl/internal/listing"
	"brokerctl/internal/tui/components"
	"brokerctl/internal/tui/design"
	"brokerctl/internal/tui/model"
)

// Render draws the whole dashboard for the current model state.
func Render(m *model.Model) string {
	if m.Quitting {
		return "Goodbye.\n"
	}

	switch m.CurrentMode {
	case model.ModeHelpOverlay:
		return centerOverlay(m, renderHelpOverlay(m))
	case model.ModeFilterOverlay:
		return centerOverlay(m, renderFilterOverlay(m))
	case model.ModeColumnsOverlay:
		return centerOverlay(m, renderColumnsOverlay(m))
	}

	var b strings.Builder

	b.WriteString(renderHeader(m))
	b.WriteString("\n")
	b.WriteString(renderTabBar(m))
	b.WriteString("\n")

	main := m.Table.View()
	if m.Core.DetailOpen() {
		if selected, ok := m.Core.Selected(); ok {
			detail := renderDetailPanel(m, selected)
			main = lipgloss.JoinHorizontal(lipgloss.Top, main, detail)
		}
	}
	b.WriteString(main)
	b.WriteString("\n")
	b.WriteString(m.Help.View(m.Keys))
	b.WriteString("\n")

	if line := lastActivityLine(m); line != "" {
		b.WriteString(design.DimStyle.Render(line))
		b.WriteString("\n")
	}

	b.WriteString(renderStatusBar(m))
	return b.String()
}

func renderHeader(m *model.Model) string {
	title := "brokerctl listings"
	width := m.Width
	if width <= 0 {
		width = lipgloss.Width(title) + design.SpaceLG
	}
	return design.HeaderStyle.Width(width).Render(title)
}

func renderTabBar(m *model.Model) string {
	labels := []string{"All"}
	for _, t := range listing.AllListingTypes {
		labels = append(labels, string(t))
	}

	rendered := make([]string, len(labels))
	for i, label := range labels {
		if i == m.TabIndex {
			rendered[i] = design.TabActiveStyle.Render(label)
		} else {
			rendered[i] = design.TabStyle.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func renderStatusBar(m *model.Model) string {
	bar := components.NewStatusBar(m.Width)

	if m.StatusMessage != "" {
		bar.WithMessage(m.StatusMessage, m.StatusType)
		return bar.Render()
	}

	left := components.FormatListingCounts(len(m.Visible), len(m.Core.Records()))

	var flags []string
	if m.Core.Filter() != nil {
		flags = append(flags, "filtered")
	}
	if m.Core.GroupByProject() {
		flags = append(flags, "grouped by project")
	}
	flags = append(flags, "? help")

	bar.WithLeftText(left).WithRightText(strings.Join(flags, " | "))
	return bar.Render()
}

func lastActivityLine(m *model.Model) string {
	if len(m.ActivityLog) == 0 {
		return ""
	}
	return m.ActivityLog[len(m.ActivityLog)-1]
}

func centerOverlay(m *model.Model, content string) string {
	boxed := design.CenteredOverlayContainerStyle.Render(content)
	if m.Width <= 0 || m.Height <= 0 {
		return boxed
	}
	return design.CenterVertical(m.Height, design.CenterHorizontal(m.Width, boxed))
}
