package model

import "brokerctl/internal/viewstate"

// CursorColumnKey returns the registry key under the columns-overlay
// cursor.
func (m *Model) CursorColumnKey() (string, bool) {
	if m.ColumnsCursor < 0 || m.ColumnsCursor >= len(m.Registry) {
		return "", false
	}
	return m.Registry[m.ColumnsCursor].Key, true
}

// ToggleColumnVisibility flips membership of the given key in the
// visible set and rebuilds the table.
func (m *Model) ToggleColumnVisibility(key string) viewstate.Outcome {
	state := m.Core.ViewStore().Current()

	next := make([]string, 0, len(state.Visible)+1)
	removed := false
	for _, k := range state.Visible {
		if k == key {
			removed = true
			continue
		}
		next = append(next, k)
	}
	if !removed {
		next = append(next, key)
	}

	outcome := m.Core.ViewStore().SetVisible(next)
	m.RefreshTable()
	return outcome
}

// MoveColumn shifts the given key one position left or right in the
// column order and rebuilds the table.
func (m *Model) MoveColumn(key string, delta int) viewstate.Outcome {
	order := m.Core.ViewStore().Current().Order

	idx := -1
	for i, k := range order {
		if k == key {
			idx = i
			break
		}
	}
	if idx < 0 {
		return viewstate.OutcomeNoOp
	}

	target := idx + delta
	if target < 0 || target >= len(order) {
		return viewstate.OutcomeNoOp
	}
	order[idx], order[target] = order[target], order[idx]

	outcome := m.Core.ViewStore().SetOrder(order)
	m.RefreshTable()
	return outcome
}

// ResetColumns restores the preset layout the dashboard started with.
func (m *Model) ResetColumns() {
	m.Core.ViewStore().Reset(m.Preset.Visible, m.Preset.Order)
	m.RefreshTable()
}

// ColumnVisible reports whether the key is in the current visible set.
func (m *Model) ColumnVisible(key string) bool {
	for _, k := range m.Core.ViewStore().Current().Visible {
		if k == key {
			return true
		}
	}
	return false
}
