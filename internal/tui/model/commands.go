package model

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"brokerctl/internal/table"
	"brokerctl/pkg/logging"
)

// StatusMessageLifetime is how long a transient status bar message is
// shown before it expires.
const StatusMessageLifetime = 3 * time.Second

// WaitForLogEntry blocks on the TUI log channel and turns the next
// entry into a message. The controller re-issues it after each entry.
func WaitForLogEntry(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return LogChannelClosedMsg{}
		}
		return LogEntryMsg{Entry: entry}
	}
}

// ScheduleSelectionClear arms the grace-delay timer that releases the
// detail selection after the panel closed.
func ScheduleSelectionClear(gen int) tea.Cmd {
	return tea.Tick(table.DetailClearGrace, func(time.Time) tea.Msg {
		return ClearSelectionMsg{Gen: gen}
	})
}

// SetStatus puts a transient message on the status bar and schedules
// its expiry.
func SetStatus(m *Model, message string, msgType MessageType) tea.Cmd {
	m.StatusSeq++
	m.StatusMessage = message
	m.StatusType = msgType
	seq := m.StatusSeq
	return tea.Tick(StatusMessageLifetime, func(time.Time) tea.Msg {
		return StatusExpiryMsg{Seq: seq}
	})
}
