package controller

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"brokerctl/internal/columns"
	"brokerctl/internal/listing"
	"brokerctl/internal/table"
	"brokerctl/internal/tui/model"
)

func handleBrowseKeys(msg tea.KeyMsg, m *model.Model) (*model.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		m.CurrentMode = model.ModeQuitting
		m.Quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Help):
		m.CurrentMode = model.ModeHelpOverlay
		return m, nil

	case key.Matches(msg, m.Keys.Filter):
		m.CurrentMode = model.ModeFilterOverlay
		m.FilterCursor = model.FilterRowStarred
		return m, nil

	case key.Matches(msg, m.Keys.Columns):
		m.CurrentMode = model.ModeColumnsOverlay
		m.ColumnsCursor = 0
		return m, nil

	case key.Matches(msg, m.Keys.NextTab):
		return switchTab(m, 1)

	case key.Matches(msg, m.Keys.PrevTab):
		return switchTab(m, -1)

	case key.Matches(msg, m.Keys.Select):
		return openDetail(m)

	case key.Matches(msg, m.Keys.Back):
		return closeDetail(m)

	case key.Matches(msg, m.Keys.ToggleStar):
		return toggleStar(m)

	case key.Matches(msg, m.Keys.CycleStatus):
		return cycleEditField(m, listing.ColMarketingStatus)

	case key.Matches(msg, m.Keys.CycleType):
		return cycleEditField(m, listing.ColListingType)

	case key.Matches(msg, m.Keys.ToggleGroup):
		m.Core.ToggleGroup()
		m.RefreshTable()
		status := "Grouping disabled"
		if m.Core.GroupByProject() {
			status = "Grouping by project"
		}
		return m, model.SetStatus(m, status, model.StatusBarInfo)

	case key.Matches(msg, m.Keys.CopyRow):
		return copyRow(m)

	case key.Matches(msg, m.Keys.ResetColumns):
		m.ResetColumns()
		return m, model.SetStatus(m, "Columns reset to preset", model.StatusBarSuccess)
	}

	// Everything else is table navigation.
	var cmd tea.Cmd
	m.Table, cmd = m.Table.Update(msg)
	syncDetailSelection(m)
	return m, cmd
}

func switchTab(m *model.Model, delta int) (*model.Model, tea.Cmd) {
	n := len(listing.AllListingTypes) + 1
	m.TabIndex = (m.TabIndex + delta + n) % n
	m.Core.SetTab(m.CurrentTab())
	m.RefreshTable()
	return m, nil
}

func openDetail(m *model.Model) (*model.Model, tea.Cmd) {
	l, ok := m.SelectedListing()
	if !ok {
		return m, nil
	}
	m.Core.SelectRow(l.Code)
	m.SetSize(m.Width, m.Height)
	return m, nil
}

func closeDetail(m *model.Model) (*model.Model, tea.Cmd) {
	if !m.Core.DetailOpen() {
		return m, nil
	}
	gen := m.Core.CloseDetail()
	m.SetSize(m.Width, m.Height)
	// The selection stays alive for the grace delay so a closing panel
	// never renders an empty record.
	return m, model.ScheduleSelectionClear(gen)
}

func toggleStar(m *model.Model) (*model.Model, tea.Cmd) {
	l, ok := m.SelectedListing()
	if !ok {
		return m, nil
	}
	if m.Core.ToggleStar(l.Code) == table.MutateNoOp {
		return m, nil
	}
	m.RefreshTable()
	return m, model.SetStatus(m, fmt.Sprintf("Toggled star on %s", l.Code), model.StatusBarInfo)
}

// cycleEditField advances an enumerated cell of the row under the
// cursor to its next option, using the edit spec the enhancer attached
// to the column.
func cycleEditField(m *model.Model, colKey string) (*model.Model, tea.Cmd) {
	l, ok := m.SelectedListing()
	if !ok {
		return m, nil
	}

	var col columns.Column
	found := false
	for _, c := range m.Columns {
		if c.Key == colKey {
			col, found = c, true
			break
		}
	}
	if !found || col.Edit == nil {
		// The column is hidden or read-only; look it up in the enhanced
		// registry instead so the shortcut works regardless of layout.
		for _, c := range columns.Enhance(m.Registry, func(code string, field listing.Field, value string) {
			m.Core.MutateField(code, field, value)
		}) {
			if c.Key == colKey {
				col, found = c, true
				break
			}
		}
	}
	if !found || col.Edit == nil {
		return m, nil
	}

	current := currentFieldValue(l, colKey)
	next := nextOption(col.Edit.Options, current)
	col.Edit.Apply(l.Code, next)
	m.RefreshTable()
	return m, model.SetStatus(m, fmt.Sprintf("%s → %s", l.Code, next), model.StatusBarSuccess)
}

func currentFieldValue(l listing.Listing, colKey string) string {
	switch colKey {
	case listing.ColMarketingStatus:
		return string(l.MarketingStatus)
	case listing.ColListingType:
		return string(l.ListingType)
	case listing.ColListingStatus:
		return string(l.ListingStatus)
	default:
		return ""
	}
}

func nextOption(options []string, current string) string {
	if len(options) == 0 {
		return current
	}
	for i, opt := range options {
		if opt == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}

func copyRow(m *model.Model) (*model.Model, tea.Cmd) {
	l, ok := m.SelectedListing()
	if !ok {
		return m, nil
	}

	parts := []string{l.Code}
	if l.ProjectName != "" {
		parts = append(parts, l.ProjectName)
	}
	if l.Zone != "" {
		parts = append(parts, l.Zone)
	}
	if price := columns.FormatTHB(l.AskingPrice); price != "" {
		parts = append(parts, price)
	}

	if err := clipboard.WriteAll(strings.Join(parts, " · ")); err != nil {
		return m, model.SetStatus(m, "Clipboard unavailable", model.StatusBarError)
	}
	return m, model.SetStatus(m, fmt.Sprintf("Copied %s", l.Code), model.StatusBarSuccess)
}

// syncDetailSelection keeps the detail panel pointed at the row under
// the table cursor while it is open.
func syncDetailSelection(m *model.Model) {
	if !m.Core.DetailOpen() {
		return
	}
	if l, ok := m.SelectedListing(); ok {
		m.Core.SelectRow(l.Code)
	}
}
