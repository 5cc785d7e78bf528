package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brokerctl/internal/listing"
	"brokerctl/internal/tui/model"
	"brokerctl/internal/viewstate"
)

func newTestModel(t *testing.T) *model.Model {
	t.Helper()
	m, err := model.InitializeModel(model.TUIConfig{
		Records:   listing.SampleListings(),
		Store:     viewstate.NewStore(viewstate.NewMemoryKV()),
		Preset:    listing.DefaultPreset(),
		ColorMode: "dark",
	})
	require.NoError(t, err)
	m.SetSize(140, 40)
	return m
}

func TestRenderBrowseView(t *testing.T) {
	m := newTestModel(t)

	out := Render(m)

	assert.Contains(t, out, "brokerctl listings")
	assert.Contains(t, out, "All")
	for _, tab := range listing.AllListingTypes {
		assert.Contains(t, out, string(tab))
	}
	assert.Contains(t, out, m.Visible[0].Code)
}

func TestRenderQuitting(t *testing.T) {
	m := newTestModel(t)
	m.Quitting = true
	assert.Equal(t, "Goodbye.\n", Render(m))
}

func TestRenderDetailPanel(t *testing.T) {
	m := newTestModel(t)
	code := m.Visible[0].Code
	require.True(t, m.Core.SelectRow(code))

	out := Render(m)
	selected, _ := m.Core.Selected()
	assert.Contains(t, out, selected.ProjectName)
	assert.Contains(t, out, "esc close")
}

func TestRenderHelpOverlay(t *testing.T) {
	m := newTestModel(t)
	m.CurrentMode = model.ModeHelpOverlay

	out := Render(m)
	assert.Contains(t, out, "Keyboard Shortcuts")
	assert.Contains(t, out, "toggle star")
	assert.Contains(t, out, "column customizer")
}

func TestRenderFilterOverlay(t *testing.T) {
	m := newTestModel(t)
	m.CurrentMode = model.ModeFilterOverlay

	out := Render(m)
	assert.Contains(t, out, "Filters")
	assert.Contains(t, out, "Starred")
	assert.Contains(t, out, "Bedrooms min")
	assert.Contains(t, out, "Any price")
	assert.Contains(t, out, "6+", "the open-ended bedroom bound renders with a plus")
}

func TestRenderColumnsOverlay(t *testing.T) {
	m := newTestModel(t)
	m.CurrentMode = model.ModeColumnsOverlay

	out := Render(m)
	assert.Contains(t, out, "Columns")
	assert.Contains(t, out, "[x]")
	assert.Contains(t, out, "[ ]")
}

func TestRenderStatusBarCounts(t *testing.T) {
	m := newTestModel(t)

	out := Render(m)
	assert.Contains(t, out, "listings")

	m.StatusMessage = "Copied LS-1001"
	out = Render(m)
	assert.Contains(t, out, "Copied LS-1001")
}

func TestStarredLabel(t *testing.T) {
	assert.Equal(t, "Any", starredLabel(nil))
	yes, no := true, false
	assert.Contains(t, starredLabel(&yes), "starred only")
	assert.Contains(t, starredLabel(&no), "unstarred only")
}
