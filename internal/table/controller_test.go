package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brokerctl/internal/filter"
	"brokerctl/internal/listing"
	"brokerctl/internal/viewstate"
)

func newController(records []listing.Listing) *Controller {
	store := viewstate.NewStore(viewstate.NewMemoryKV())
	store.Load(listing.DefaultVisibleColumns, listing.DefaultColumnOrder)
	return New(records, store, nil)
}

func seedRecords() []listing.Listing {
	return []listing.Listing{
		{Code: "LS-1", ListingType: listing.TypeAList, PropertyType: "Condo", ProjectName: "Noble Remix", Bedrooms: 2},
		{Code: "LS-2", ListingType: listing.TypeAList, PropertyType: "Condo", ProjectName: "Ashton Asoke", Bedrooms: 1},
		{Code: "LS-3", ListingType: listing.TypeAList, PropertyType: "House", ProjectName: "Setthasiri", Bedrooms: 4},
		{Code: "LS-4", ListingType: listing.TypeNormal, PropertyType: "Condo", ProjectName: "Noble Remix", Bedrooms: 2},
		{Code: "LS-5", ListingType: listing.TypeExclusive, PropertyType: "Townhouse", ProjectName: "Baan Klang", Bedrooms: 3},
	}
}

func TestControllerCopiesSeedRecords(t *testing.T) {
	records := seedRecords()
	c := newController(records)

	records[0].Code = "CLOBBERED"
	assert.Equal(t, "LS-1", c.Records()[0].Code, "controller owns its own copy of the collection")
}

func TestVisibleAppliesTabThenSpec(t *testing.T) {
	c := newController(seedRecords())

	c.SetTab(listing.TypeAList)
	spec := filter.Default()
	spec.PropertyTypes = []string{"Condo"}
	c.ChangeFilter(&spec)

	got := c.Visible()
	require.Len(t, got, 2)
	for _, l := range got {
		assert.Equal(t, listing.TypeAList, l.ListingType)
		assert.Equal(t, "Condo", l.PropertyType)
	}
}

func TestVisibleNilSpecMeansTabOnly(t *testing.T) {
	c := newController(seedRecords())
	c.SetTab(listing.TypeAList)
	c.ChangeFilter(nil)

	assert.Len(t, c.Visible(), 3)
}

func TestMutateFieldDualWrite(t *testing.T) {
	c := newController(seedRecords())
	require.True(t, c.SelectRow("LS-2"))

	result := c.MutateField("LS-2", listing.FieldStarred, "true")
	assert.Equal(t, MutateApplied, result)

	// Collection and detail selection must agree in the same operation
	var inCollection listing.Listing
	for _, l := range c.Records() {
		if l.Code == "LS-2" {
			inCollection = l
		}
	}
	assert.True(t, inCollection.IsStarred)

	selected, ok := c.Selected()
	require.True(t, ok)
	assert.True(t, selected.IsStarred)
}

func TestMutateFieldDoesNotTouchOtherSelection(t *testing.T) {
	c := newController(seedRecords())
	require.True(t, c.SelectRow("LS-1"))

	c.MutateField("LS-2", listing.FieldStarred, "true")

	selected, ok := c.Selected()
	require.True(t, ok)
	assert.Equal(t, "LS-1", selected.Code)
	assert.False(t, selected.IsStarred)
}

func TestMutateFieldUnknownCodeIsNoOp(t *testing.T) {
	c := newController(seedRecords())
	before := c.Records()

	result := c.MutateField("NON-EXISTENT", listing.FieldStarred, "true")

	assert.Equal(t, MutateNoOp, result)
	assert.Equal(t, before, c.Records(), "collection content unchanged")
}

func TestMutateFieldUnknownFieldIsNoOp(t *testing.T) {
	c := newController(seedRecords())
	before := c.Records()

	assert.Equal(t, MutateNoOp, c.MutateField("LS-1", listing.Field("floorSizeSqm"), "99"))
	assert.Equal(t, before, c.Records())
}

func TestMutateFieldInvalidBoolIsNoOp(t *testing.T) {
	c := newController(seedRecords())
	assert.Equal(t, MutateNoOp, c.MutateField("LS-1", listing.FieldStarred, "definitely"))
}

func TestMutateEnumeratedFields(t *testing.T) {
	c := newController(seedRecords())

	assert.Equal(t, MutateApplied, c.MutateField("LS-1", listing.FieldMarketingStatus, "Sold"))
	assert.Equal(t, MutateApplied, c.MutateField("LS-1", listing.FieldListingType, "Normal List"))
	assert.Equal(t, MutateApplied, c.MutateField("LS-1", listing.FieldListingStatus, "For Rent"))

	var got listing.Listing
	for _, l := range c.Records() {
		if l.Code == "LS-1" {
			got = l
		}
	}
	assert.Equal(t, listing.MarketingSold, got.MarketingStatus)
	assert.Equal(t, listing.TypeNormal, got.ListingType)
	assert.Equal(t, listing.StatusForRent, got.ListingStatus)
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestToggleStar(t *testing.T) {
	c := newController(seedRecords())

	assert.Equal(t, MutateApplied, c.ToggleStar("LS-1"))
	for _, l := range c.Records() {
		if l.Code == "LS-1" {
			assert.True(t, l.IsStarred)
		}
	}

	assert.Equal(t, MutateApplied, c.ToggleStar("LS-1"))
	for _, l := range c.Records() {
		if l.Code == "LS-1" {
			assert.False(t, l.IsStarred)
		}
	}

	assert.Equal(t, MutateNoOp, c.ToggleStar("NOPE"))
}

func TestCloseDetailDeferredClear(t *testing.T) {
	c := newController(seedRecords())
	require.True(t, c.SelectRow("LS-3"))
	assert.True(t, c.DetailOpen())

	gen := c.CloseDetail()
	assert.False(t, c.DetailOpen())

	// Selection survives until the grace-delay clear fires
	_, ok := c.Selected()
	assert.True(t, ok)

	assert.True(t, c.ClearSelection(gen))
	_, ok = c.Selected()
	assert.False(t, ok)
}

func TestStaleClearDoesNotWipeNewSelection(t *testing.T) {
	c := newController(seedRecords())
	require.True(t, c.SelectRow("LS-1"))
	staleGen := c.CloseDetail()

	// Fast re-open before the timer fires
	require.True(t, c.SelectRow("LS-2"))

	assert.False(t, c.ClearSelection(staleGen), "a stale timer must not clear a newer selection")
	selected, ok := c.Selected()
	require.True(t, ok)
	assert.Equal(t, "LS-2", selected.Code)
}

func TestClearSelectionIdempotent(t *testing.T) {
	c := newController(seedRecords())
	require.True(t, c.SelectRow("LS-1"))
	gen := c.CloseDetail()

	assert.True(t, c.ClearSelection(gen))
	assert.False(t, c.ClearSelection(gen))
}

func TestSelectRowUnknownCode(t *testing.T) {
	c := newController(seedRecords())
	assert.False(t, c.SelectRow("NOPE"))
	_, ok := c.Selected()
	assert.False(t, ok)
}

func TestToggleGroupNotifies(t *testing.T) {
	store := viewstate.NewStore(viewstate.NewMemoryKV())
	store.Load(listing.DefaultVisibleColumns, listing.DefaultColumnOrder)

	var messages []string
	c := New(seedRecords(), store, func(msg string) { messages = append(messages, msg) })

	assert.True(t, c.ToggleGroup())
	assert.False(t, c.ToggleGroup())
	assert.Equal(t, []string{"Grouping by project", "Grouping disabled"}, messages)
}

func TestGroupingSortsVisibleByProject(t *testing.T) {
	c := newController(seedRecords())
	c.ToggleGroup()

	got := c.Visible()
	require.Len(t, got, len(seedRecords()))
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].ProjectName, got[i].ProjectName)
	}

	// The underlying collection keeps its seed order
	assert.Equal(t, "LS-1", c.Records()[0].Code)
}

func TestGroupingLeavesCollectionUntouched(t *testing.T) {
	// With no tab or spec active the filter pipeline passes the collection
	// through unchanged, so the grouped sort must work on a copy.
	c := newController(seedRecords())
	c.ToggleGroup()

	c.Visible()
	c.Visible()

	codes := make([]string, 0, len(seedRecords()))
	for _, l := range c.Records() {
		codes = append(codes, l.Code)
	}
	assert.Equal(t, []string{"LS-1", "LS-2", "LS-3", "LS-4", "LS-5"}, codes)
}

func TestMutateResultString(t *testing.T) {
	assert.Equal(t, "Applied", MutateApplied.String())
	assert.Equal(t, "NoOp", MutateNoOp.String())
}
