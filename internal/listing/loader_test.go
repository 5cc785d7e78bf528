package listing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeListingsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "listings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeListingsFile(t, `
listings:
  - code: LS-1
    marketingStatus: Available
    listingType: A List
    listingStatus: For Sale
    propertyType: Condo
    projectName: Noble Remix
    zone: Thonglor
    bedrooms: 2
    askingPrice: 9500000
    hashtags: ["#corner"]
  - code: LS-2
    listingType: Normal List
    propertyType: House
    bedrooms: 4
`)

	records, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "LS-1", records[0].Code)
	assert.Equal(t, MarketingAvailable, records[0].MarketingStatus)
	assert.Equal(t, TypeAList, records[0].ListingType)
	assert.Equal(t, StatusForSale, records[0].ListingStatus)
	assert.Equal(t, 2, records[0].Bedrooms)
	assert.Equal(t, float64(9500000), records[0].AskingPrice)
	assert.Equal(t, []string{"#corner"}, records[0].Hashtags)
}

func TestLoadFileDuplicateCode(t *testing.T) {
	path := writeListingsFile(t, `
listings:
  - code: LS-1
  - code: LS-1
`)

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate code")
}

func TestLoadFileMissingCode(t *testing.T) {
	path := writeListingsFile(t, `
listings:
  - projectName: No Code Here
`)

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "without a code")
}

func TestLoadFileNotFound(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadFileMalformedYAML(t *testing.T) {
	path := writeListingsFile(t, "listings: [oops")
	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestSampleListingsCodesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, l := range SampleListings() {
		assert.False(t, seen[l.Code], "duplicate sample code %s", l.Code)
		seen[l.Code] = true
	}
}

func TestPresets(t *testing.T) {
	def, ok := Presets["default"]
	require.True(t, ok)
	assert.Equal(t, DefaultVisibleColumns, def.Visible)

	owners, ok := Presets["owners"]
	require.True(t, ok)
	assert.Contains(t, owners.Visible, ColOwnerPhone)
	assert.NotContains(t, owners.Visible, ColBedrooms)
}
