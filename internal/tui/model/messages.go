package model

import "brokerctl/pkg/logging"

// ---- Selection lifecycle messages ----

// ClearSelectionMsg fires after the detail-close grace delay. Gen is
// the generation handed out by Controller.CloseDetail; a stale timer
// carries an old generation and is ignored.
type ClearSelectionMsg struct {
	Gen int
}

// ---- Status bar messages ----

// StatusExpiryMsg clears the status message it was scheduled for. Seq
// guards against wiping a newer message.
type StatusExpiryMsg struct {
	Seq int
}

// ---- Logging messages ----

// LogEntryMsg delivers one entry from the TUI log channel.
type LogEntryMsg struct {
	Entry logging.LogEntry
}

// LogChannelClosedMsg signals that the log channel was closed.
type LogChannelClosedMsg struct{}
