package controller

import (
	tea "github.com/charmbracelet/bubbletea"

	"brokerctl/internal/tui/model"
)

func handleHelpKeys(msg tea.KeyMsg, m *model.Model) (*model.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "?":
		m.CurrentMode = model.ModeBrowse
	case "ctrl+c":
		m.Quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func handleFilterKeys(msg tea.KeyMsg, m *model.Model) (*model.Model, tea.Cmd) {
	onLocation := m.FilterCursor == model.FilterRowLocation

	switch msg.String() {
	case "esc":
		m.LocationInput.Blur()
		m.CurrentMode = model.ModeBrowse
		return m, nil

	case "up", "ctrl+p":
		m.LocationInput.Blur()
		if m.FilterCursor > 0 {
			m.FilterCursor--
		}
		return m, focusLocationIfNeeded(m)

	case "down", "ctrl+n":
		m.LocationInput.Blur()
		if m.FilterCursor < model.FilterRowCount-1 {
			m.FilterCursor++
		}
		return m, focusLocationIfNeeded(m)

	case "ctrl+r":
		m.ResetFilter()
		return m, model.SetStatus(m, "Filters cleared", model.StatusBarInfo)
	}

	if onLocation {
		// The text input swallows everything else, including left/right.
		var cmd tea.Cmd
		m.LocationInput, cmd = m.LocationInput.Update(msg)
		m.ApplyFilter()
		return m, cmd
	}

	switch msg.String() {
	case "left", "h":
		adjustFilterRow(m, -1)
	case "right", "l", " ", "enter":
		adjustFilterRow(m, 1)
	case "q":
		m.CurrentMode = model.ModeBrowse
	}
	return m, nil
}

func focusLocationIfNeeded(m *model.Model) tea.Cmd {
	if m.FilterCursor == model.FilterRowLocation {
		return m.LocationInput.Focus()
	}
	return nil
}

func adjustFilterRow(m *model.Model, delta int) {
	switch m.FilterCursor {
	case model.FilterRowStarred:
		m.CycleStarred()
	case model.FilterRowBedroomMin:
		m.AdjustBedroomMin(delta)
	case model.FilterRowBedroomMax:
		m.AdjustBedroomMax(delta)
	case model.FilterRowPriceBracket:
		m.CyclePrice(delta)
	case model.FilterRowPropertyType:
		m.CyclePropertyType(delta)
	case model.FilterRowMarketingStatus:
		m.CycleMarketingStatus(delta)
	}
	m.ApplyFilter()
}

func handleColumnsKeys(msg tea.KeyMsg, m *model.Model) (*model.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "c":
		m.CurrentMode = model.ModeBrowse
		return m, nil

	case "up", "k":
		if m.ColumnsCursor > 0 {
			m.ColumnsCursor--
		}
		return m, nil

	case "down", "j":
		if m.ColumnsCursor < len(m.Registry)-1 {
			m.ColumnsCursor++
		}
		return m, nil

	case " ", "enter":
		if key, ok := m.CursorColumnKey(); ok {
			m.ToggleColumnVisibility(key)
		}
		return m, nil

	case "H", "shift+left":
		if key, ok := m.CursorColumnKey(); ok {
			m.MoveColumn(key, -1)
		}
		return m, nil

	case "L", "shift+right":
		if key, ok := m.CursorColumnKey(); ok {
			m.MoveColumn(key, 1)
		}
		return m, nil

	case "r":
		m.ResetColumns()
		return m, model.SetStatus(m, "Columns reset to preset", model.StatusBarSuccess)
	}
	return m, nil
}
