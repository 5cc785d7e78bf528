package controller

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"brokerctl/internal/tui/model"
)

// Update is the single message dispatcher for the dashboard.
func Update(msg tea.Msg, m *model.Model) (*model.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case model.ClearSelectionMsg:
		// A stale generation means the user re-opened the detail panel
		// before the grace delay elapsed; the clear must not fire then.
		m.Core.ClearSelection(msg.Gen)
		return m, nil

	case model.StatusExpiryMsg:
		if msg.Seq == m.StatusSeq {
			m.StatusMessage = ""
		}
		return m, nil

	case model.LogEntryMsg:
		line := fmt.Sprintf("%s [%s] %s", msg.Entry.Level, msg.Entry.Subsystem, msg.Entry.Message)
		model.AddRawLineToActivityLog(m, line)
		return m, model.WaitForLogEntry(m.LogChannel)

	case model.LogChannelClosedMsg:
		return m, nil

	case tea.KeyMsg:
		return handleKey(msg, m)
	}

	return m, nil
}

func handleKey(msg tea.KeyMsg, m *model.Model) (*model.Model, tea.Cmd) {
	// ctrl+c always quits, regardless of mode.
	if msg.String() == "ctrl+c" {
		m.CurrentMode = model.ModeQuitting
		m.Quitting = true
		return m, tea.Quit
	}

	switch m.CurrentMode {
	case model.ModeHelpOverlay:
		return handleHelpKeys(msg, m)
	case model.ModeFilterOverlay:
		return handleFilterKeys(msg, m)
	case model.ModeColumnsOverlay:
		return handleColumnsKeys(msg, m)
	default:
		return handleBrowseKeys(msg, m)
	}
}
