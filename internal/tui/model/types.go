package model

import (
	"github.com/charmbracelet/bubbles/help"
	btable "github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"

	"brokerctl/internal/columns"
	"brokerctl/internal/filter"
	"brokerctl/internal/listing"
	"brokerctl/internal/table"
	"brokerctl/internal/viewstate"
	"brokerctl/pkg/logging"
)

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeBrowse AppMode = iota
	ModeFilterOverlay
	ModeColumnsOverlay
	ModeHelpOverlay
	ModeQuitting
)

// String provides a human-readable representation of the AppMode.
func (m AppMode) String() string {
	switch m {
	case ModeBrowse:
		return "Browse"
	case ModeFilterOverlay:
		return "FilterOverlay"
	case ModeColumnsOverlay:
		return "ColumnsOverlay"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
)

// FilterRow identifies a navigable row in the filter overlay.
type FilterRow int

const (
	FilterRowStarred FilterRow = iota
	FilterRowBedroomMin
	FilterRowBedroomMax
	FilterRowPriceBracket
	FilterRowPropertyType
	FilterRowMarketingStatus
	FilterRowLocation

	FilterRowCount
)

// PriceBracket is a preset asking-price range selectable in the filter
// overlay. Min/Max of 0 mean unbounded on that side.
type PriceBracket struct {
	Label string
	Min   float64
	Max   float64
}

// PriceBrackets lists the selectable asking-price ranges. Index 0 is
// "any price".
var PriceBrackets = []PriceBracket{
	{Label: "Any price"},
	{Label: "≤ ฿5M", Max: 5_000_000},
	{Label: "฿5M – ฿10M", Min: 5_000_000, Max: 10_000_000},
	{Label: "฿10M – ฿30M", Min: 10_000_000, Max: 30_000_000},
	{Label: "≥ ฿30M", Min: 30_000_000},
}

// FilterPropertyTypes lists the property types cyclable in the filter
// overlay. The empty string means "any".
var FilterPropertyTypes = []string{"", "Condo", "House", "Townhouse", "Apartment", "Land"}

// TUI configuration struct
type TUIConfig struct {
	Records    []listing.Listing
	Store      *viewstate.Store
	Preset     listing.Preset
	ColorMode  string
	LogChannel <-chan logging.LogEntry
}

// Constants for UI
const (
	MaxActivityLogLines = 200
	StatusMessageID     = "statusbar"
)

// Model holds all TUI state. The embedded table.Controller owns the
// record collection and filter pipeline; the Model layers terminal
// concerns (sizing, widgets, overlays) on top of it.
type Model struct {
	Width  int
	Height int

	CurrentMode AppMode
	Quitting    bool

	// Core engine
	Core     *table.Controller
	Registry []columns.Column
	Preset   listing.Preset

	// Resolved column plan and visible rows backing the current table
	// render. Rebuilt by RefreshTable after every state change.
	Columns []columns.Column
	Visible []listing.Listing

	// Widgets
	Table         btable.Model
	Help          help.Model
	Keys          KeyMap
	LocationInput textinput.Model

	// Tab bar: 0 means "all", 1..n index into listing.AllListingTypes.
	TabIndex int

	// Filter overlay state. FilterSpec is the working copy pushed into
	// the controller on every change.
	FilterSpec   filter.Spec
	FilterCursor FilterRow
	PriceIndex   int

	// Columns overlay state: cursor over the full registry.
	ColumnsCursor int

	// Status bar
	StatusMessage string
	StatusType    MessageType
	StatusSeq     int

	// Activity log
	ActivityLog      []string
	ActivityLogDirty bool
	LogChannel       <-chan logging.LogEntry

	ColorMode string
}

// AddRawLineToActivityLog appends a pre-formatted entry to the activity
// log, capping it at MaxActivityLogLines.
func AddRawLineToActivityLog(m *Model, entry string) {
	m.ActivityLog = append(m.ActivityLog, entry)
	if len(m.ActivityLog) > MaxActivityLogLines {
		m.ActivityLog = m.ActivityLog[len(m.ActivityLog)-MaxActivityLogLines:]
	}
	m.ActivityLogDirty = true
}

// CurrentTab returns the listing type the active tab pre-filters on,
// or "" for the all-listings tab.
func (m *Model) CurrentTab() listing.ListingType {
	if m.TabIndex <= 0 || m.TabIndex > len(listing.AllListingTypes) {
		return ""
	}
	return listing.AllListingTypes[m.TabIndex-1]
}

// SelectedListing returns the record under the table cursor.
func (m *Model) SelectedListing() (listing.Listing, bool) {
	idx := m.Table.Cursor()
	if idx < 0 || idx >= len(m.Visible) {
		return listing.Listing{}, false
	}
	return m.Visible[idx], true
}
