package columns

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"brokerctl/internal/listing"
)

func TestRegistryKeysUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, col := range Registry() {
		assert.False(t, seen[col.Key], "registry holds two descriptors for %s", col.Key)
		seen[col.Key] = true
		assert.NotEmpty(t, col.Label, "column %s has no label", col.Key)
		assert.NotNil(t, col.Render, "column %s has no renderer", col.Key)
	}
}

func TestRegistryCoversDefaultViews(t *testing.T) {
	keys := make(map[string]bool)
	for _, col := range Registry() {
		keys[col.Key] = true
	}

	for _, k := range listing.DefaultVisibleColumns {
		assert.True(t, keys[k], "default visible key %s missing from registry", k)
	}
	for _, k := range listing.DefaultColumnOrder {
		assert.True(t, keys[k], "default order key %s missing from registry", k)
	}
	for _, k := range listing.OwnerFocusPreset.Visible {
		assert.True(t, keys[k], "owner preset key %s missing from registry", k)
	}
}

func TestRegistryRendersAreTotal(t *testing.T) {
	// Every renderer must handle both a fully-populated and a zero record
	// without panicking.
	full := listing.Listing{
		Code: "LS-1", MarketingStatus: listing.MarketingAvailable,
		ListingType: listing.TypeAList, ListingStatus: listing.StatusForSale,
		PropertyType: "Condo", ProjectName: "Noble Remix", Zone: "Thonglor",
		Bedrooms: 2, Bathrooms: 2, FloorSizeSqm: 68.5, AskingPrice: 9500000,
		Hashtags: []string{"#corner"}, OwnerType: listing.OwnerIndividual,
		CreatedAt: time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC),
	}

	for _, col := range Registry() {
		assert.NotPanics(t, func() {
			_ = col.Render(full, 0)
			_ = col.Render(listing.Listing{}, 0)
		}, "renderer for %s", col.Key)
	}
}

func TestStarRenderer(t *testing.T) {
	var star Column
	for _, col := range Registry() {
		if col.Key == listing.ColStarred {
			star = col
		}
	}
	assert.Equal(t, "★", star.Render(listing.Listing{IsStarred: true}, 0))
	assert.Equal(t, "☆", star.Render(listing.Listing{}, 0))
}

func TestDateRenderer(t *testing.T) {
	var created Column
	for _, col := range Registry() {
		if col.Key == listing.ColCreatedAt {
			created = col
		}
	}
	l := listing.Listing{CreatedAt: time.Date(2026, 5, 12, 9, 30, 0, 0, time.UTC)}
	assert.Equal(t, "2026-05-12", created.Render(l, 0))
	assert.Equal(t, "", created.Render(listing.Listing{}, 0))
}
