package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brokerctl/internal/filter"
	"brokerctl/internal/listing"
	"brokerctl/internal/viewstate"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	m, err := InitializeModel(TUIConfig{
		Records:   listing.SampleListings(),
		Store:     viewstate.NewStore(viewstate.NewMemoryKV()),
		Preset:    listing.DefaultPreset(),
		ColorMode: "dark",
	})
	require.NoError(t, err)
	m.SetSize(120, 40)
	return m
}

func TestInitializeModelBuildsTable(t *testing.T) {
	m := newTestModel(t)

	assert.Equal(t, ModeBrowse, m.CurrentMode)
	assert.Len(t, m.Columns, len(listing.DefaultVisibleColumns))
	assert.Len(t, m.Visible, len(listing.SampleListings()))
	assert.Equal(t, len(m.Visible), len(m.Table.Rows()))
}

func TestRefreshTableTracksViewState(t *testing.T) {
	m := newTestModel(t)

	m.Core.ViewStore().SetVisible([]string{listing.ColCode, listing.ColZone})
	m.RefreshTable()

	require.Len(t, m.Columns, 2)
	assert.Equal(t, listing.ColCode, m.Columns[0].Key)
	assert.Equal(t, listing.ColZone, m.Columns[1].Key)
}

func TestRefreshTableSurvivesColumnCountChanges(t *testing.T) {
	// The table widget renders rows against the active column set, so every
	// rebuild must leave the two in lockstep whether the set shrinks or grows.
	m := newTestModel(t)

	m.Core.ViewStore().SetVisible([]string{listing.ColCode, listing.ColZone})
	m.RefreshTable()
	require.Len(t, m.Columns, 2)
	for _, row := range m.Table.Rows() {
		assert.Len(t, []string(row), 2)
	}

	m.Core.ViewStore().SetVisible(listing.DefaultVisibleColumns)
	m.RefreshTable()
	require.Len(t, m.Columns, len(listing.DefaultVisibleColumns))
	for _, row := range m.Table.Rows() {
		assert.Len(t, []string(row), len(listing.DefaultVisibleColumns))
	}
}

func TestRefreshTableClampsCursor(t *testing.T) {
	m := newTestModel(t)
	m.Table.SetCursor(len(m.Visible) - 1)

	spec := filter.Default()
	spec.PropertyTypes = []string{"Condo"}
	m.Core.ChangeFilter(&spec)
	m.RefreshTable()

	assert.Less(t, m.Table.Cursor(), len(m.Visible)+1)
	assert.GreaterOrEqual(t, m.Table.Cursor(), 0)
}

func TestSelectedListing(t *testing.T) {
	m := newTestModel(t)

	m.Table.SetCursor(0)
	l, ok := m.SelectedListing()
	require.True(t, ok)
	assert.Equal(t, m.Visible[0].Code, l.Code)
}

func TestCurrentTab(t *testing.T) {
	m := newTestModel(t)

	assert.Equal(t, listing.ListingType(""), m.CurrentTab())

	m.TabIndex = 1
	assert.Equal(t, listing.AllListingTypes[0], m.CurrentTab())

	m.TabIndex = len(listing.AllListingTypes) + 5
	assert.Equal(t, listing.ListingType(""), m.CurrentTab())
}

func TestCycleStarredTriState(t *testing.T) {
	m := newTestModel(t)

	require.Nil(t, m.FilterSpec.Starred)

	m.CycleStarred()
	require.NotNil(t, m.FilterSpec.Starred)
	assert.True(t, *m.FilterSpec.Starred)

	m.CycleStarred()
	require.NotNil(t, m.FilterSpec.Starred)
	assert.False(t, *m.FilterSpec.Starred)

	m.CycleStarred()
	assert.Nil(t, m.FilterSpec.Starred)
}

func TestAdjustBedroomBoundsClamp(t *testing.T) {
	m := newTestModel(t)

	m.AdjustBedroomMin(-3)
	assert.Equal(t, 0, m.FilterSpec.BedroomMin)

	m.AdjustBedroomMax(10)
	assert.Equal(t, filter.BedroomsOpenEnd, m.FilterSpec.BedroomMax)

	m.FilterSpec.BedroomMin = 3
	m.FilterSpec.BedroomMax = 3
	m.AdjustBedroomMin(2)
	assert.Equal(t, 3, m.FilterSpec.BedroomMin, "min never crosses max")

	m.AdjustBedroomMax(-2)
	assert.Equal(t, 3, m.FilterSpec.BedroomMax, "max never crosses min")
}

func TestApplyFilterIdentityPushesNil(t *testing.T) {
	m := newTestModel(t)

	m.ApplyFilter()
	assert.Nil(t, m.Core.Filter(), "identity spec must skip the predicate pass")

	m.CycleStarred()
	m.ApplyFilter()
	assert.NotNil(t, m.Core.Filter())

	m.ResetFilter()
	assert.Nil(t, m.Core.Filter())
}

func TestApplyFilterUsesLocationTokens(t *testing.T) {
	m := newTestModel(t)

	m.LocationInput.SetValue("thong asok")
	m.ApplyFilter()

	spec := m.Core.Filter()
	require.NotNil(t, spec)
	assert.Equal(t, []string{"thong", "asok"}, spec.Locations)
}

func TestCyclePropertyType(t *testing.T) {
	m := newTestModel(t)

	m.CyclePropertyType(1)
	assert.Equal(t, []string{"Condo"}, m.FilterSpec.PropertyTypes)

	m.CyclePropertyType(-1)
	assert.Nil(t, m.FilterSpec.PropertyTypes)
}

func TestCycleMarketingStatus(t *testing.T) {
	m := newTestModel(t)

	m.CycleMarketingStatus(1)
	assert.Equal(t, []listing.MarketingStatus{listing.MarketingAvailable}, m.FilterSpec.MarketingStatuses)

	m.CycleMarketingStatus(-1)
	assert.Nil(t, m.FilterSpec.MarketingStatuses)
}

func TestToggleColumnVisibility(t *testing.T) {
	m := newTestModel(t)

	outcome := m.ToggleColumnVisibility(listing.ColCode)
	assert.Equal(t, viewstate.OutcomeApplied, outcome)
	assert.False(t, m.ColumnVisible(listing.ColCode))

	// Re-adding a key the order already knows is a plain apply; adding a
	// brand new key heals the order by appending it.
	outcome = m.ToggleColumnVisibility(listing.ColCode)
	assert.Equal(t, viewstate.OutcomeApplied, outcome)
	assert.True(t, m.ColumnVisible(listing.ColCode))

	outcome = m.ToggleColumnVisibility(listing.ColOwnerPhone)
	assert.Equal(t, viewstate.OutcomeHealed, outcome)
	assert.True(t, m.ColumnVisible(listing.ColOwnerPhone))
}

func TestMoveColumn(t *testing.T) {
	m := newTestModel(t)
	before := m.Core.ViewStore().Current().Order

	outcome := m.MoveColumn(before[1], -1)
	assert.Equal(t, viewstate.OutcomeApplied, outcome)

	after := m.Core.ViewStore().Current().Order
	assert.Equal(t, before[1], after[0])
	assert.Equal(t, before[0], after[1])

	assert.Equal(t, viewstate.OutcomeNoOp, m.MoveColumn(after[0], -1), "moving past the edge is a no-op")
	assert.Equal(t, viewstate.OutcomeNoOp, m.MoveColumn("not-a-column", 1))
}

func TestResetColumns(t *testing.T) {
	m := newTestModel(t)

	m.ToggleColumnVisibility(listing.ColCode)
	m.ResetColumns()

	state := m.Core.ViewStore().Current()
	assert.Equal(t, listing.DefaultVisibleColumns, state.Visible)
	assert.True(t, m.ColumnVisible(listing.ColCode))
}

func TestAddRawLineToActivityLogCaps(t *testing.T) {
	m := newTestModel(t)

	for i := 0; i < MaxActivityLogLines+10; i++ {
		AddRawLineToActivityLog(m, "line")
	}
	assert.Len(t, m.ActivityLog, MaxActivityLogLines)
	assert.True(t, m.ActivityLogDirty)
}

func TestAppModeString(t *testing.T) {
	assert.Equal(t, "Browse", ModeBrowse.String())
	assert.Equal(t, "FilterOverlay", ModeFilterOverlay.String())
	assert.Equal(t, "ColumnsOverlay", ModeColumnsOverlay.String())
	assert.Equal(t, "HelpOverlay", ModeHelpOverlay.String())
	assert.Equal(t, "Quitting", ModeQuitting.String())
	assert.Equal(t, "Unknown", AppMode(99).String())
}
