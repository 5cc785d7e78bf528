package model

import (
	btable "github.com/charmbracelet/bubbles/table"
	"github.com/mattn/go-runewidth"

	"brokerctl/internal/columns"
	"brokerctl/internal/listing"
	"brokerctl/internal/tui/utils"
)

// columnWidths maps column keys to display widths. Keys absent here
// fall back to defaultColumnWidth.
var columnWidths = map[string]int{
	listing.ColStarred:         3,
	listing.ColCode:            8,
	listing.ColMarketingStatus: 11,
	listing.ColListingType:     15,
	listing.ColListingStatus:   16,
	listing.ColPropertyType:    11,
	listing.ColProjectName:     22,
	listing.ColZone:            14,
	listing.ColBedrooms:        4,
	listing.ColBathrooms:       5,
	listing.ColFloorSize:       8,
	listing.ColAskingPrice:     13,
	listing.ColNetPrice:        13,
	listing.ColRentalPrice:     12,
	listing.ColPricePerSqm:     11,
	listing.ColOwnerName:       18,
	listing.ColOwnerPhone:      14,
	listing.ColCreatedAt:       10,
	listing.ColUpdatedAt:       10,
}

const defaultColumnWidth = 14

func columnWidth(col columns.Column) int {
	w, ok := columnWidths[col.Key]
	if !ok {
		w = defaultColumnWidth
	}
	if lw := runewidth.StringWidth(col.Label); lw > w {
		w = lw
	}
	return w
}

// RefreshTable rebuilds the bubbles table from the current view state,
// filter pipeline and record collection. It must run after every
// change to any of those.
func (m *Model) RefreshTable() {
	state := m.Core.ViewStore().Current()

	resolved := columns.Resolve(state, m.Registry, func(code string) {
		m.Core.ToggleStar(code)
	})
	m.Columns = columns.Enhance(resolved, func(code string, field listing.Field, value string) {
		m.Core.MutateField(code, field, value)
	})

	m.Visible = m.Core.Visible()

	cols := make([]btable.Column, len(m.Columns))
	for i, c := range m.Columns {
		cols[i] = btable.Column{Title: c.Label, Width: columnWidth(c)}
	}

	// Cells stay unstyled: the table widget truncates by rune width and
	// would cut through ANSI sequences. The enhanced renderers (badges,
	// edit specs) drive the detail panel instead.
	rows := make([]btable.Row, len(m.Visible))
	for ri, l := range m.Visible {
		cells := make([]string, len(resolved))
		for ci, c := range resolved {
			cells[ci] = utils.TruncateString(c.Render(l, ri), cols[ci].Width)
		}
		rows[ri] = cells
	}

	cursor := m.Table.Cursor()
	// SetColumns re-renders the viewport against the rows it already holds;
	// stale rows shaped for the old column set must go first.
	m.Table.SetRows(nil)
	m.Table.SetColumns(cols)
	m.Table.SetRows(rows)
	if cursor >= len(rows) {
		cursor = len(rows) - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	m.Table.SetCursor(cursor)
}

// SetSize propagates a terminal resize to the widgets.
func (m *Model) SetSize(width, height int) {
	m.Width = width
	m.Height = height
	m.Help.Width = width

	// Header, tab bar, status bar and table chrome eat fixed lines.
	tableHeight := height - 7
	if tableHeight < 4 {
		tableHeight = 4
	}
	m.Table.SetHeight(tableHeight)

	tableWidth := width
	if m.Core.DetailOpen() {
		tableWidth = width * 2 / 3
	}
	if tableWidth > 0 {
		m.Table.SetWidth(tableWidth)
	}
}
