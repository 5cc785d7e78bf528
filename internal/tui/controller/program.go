package controller

import (
	tea "github.com/charmbracelet/bubbletea"

	"brokerctl/internal/tui/design"
	"brokerctl/internal/tui/model"
)

// NewProgram creates the Bubble Tea program for the dashboard.
func NewProgram(cfg model.TUIConfig) (*tea.Program, error) {
	design.Initialize(cfg.ColorMode != "light")

	m, err := model.InitializeModel(cfg)
	if err != nil {
		return nil, err
	}

	app := NewAppModel(m)
	p := tea.NewProgram(app, tea.WithAltScreen())
	return p, nil
}
