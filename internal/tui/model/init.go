package model

import (
	"github.com/charmbracelet/bubbles/help"
	btable "github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"brokerctl/internal/columns"
	"brokerctl/internal/filter"
	"brokerctl/internal/table"
)

// InitializeModel builds the dashboard model from its configuration.
// It loads the view state (applying the startup layout semantics the
// store was configured with) and wires the record collection into the
// controller.
func InitializeModel(cfg TUIConfig) (*Model, error) {
	cfg.Store.Load(cfg.Preset.Visible, cfg.Preset.Order)

	m := &Model{
		CurrentMode: ModeBrowse,
		Registry:    columns.Registry(),
		Preset:      cfg.Preset,
		Keys:        DefaultKeyMap(),
		Help:        help.New(),
		FilterSpec:  filter.Default(),
		LogChannel:  cfg.LogChannel,
		ColorMode:   cfg.ColorMode,
	}

	m.Core = table.New(cfg.Records, cfg.Store, nil)

	input := textinput.New()
	input.Placeholder = "zone, transit or project"
	input.CharLimit = 64
	input.Width = 28
	m.LocationInput = input

	t := btable.New(btable.WithFocused(true))
	styles := btable.DefaultStyles()
	styles.Header = styles.Header.
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true)
	styles.Selected = styles.Selected.
		Bold(true).
		Background(lipgloss.AdaptiveColor{Light: "#EEF2FF", Dark: "#312E81"})
	t.SetStyles(styles)
	m.Table = t

	m.RefreshTable()
	return m, nil
}

// Init implements tea.Model start-up commands.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		WaitForLogEntry(m.LogChannel),
		textinput.Blink,
	)
}
