package viewstate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDiscardsPersistedByDefault(t *testing.T) {
	// The historical engine discards any persisted state on load and applies
	// the page defaults unconditionally. That is deliberate here: it is what
	// lets per-page presets win, and correcting it silently would change
	// cross-page behavior. The corrected read-back is behind
	// WithRestorePersisted; see TestLoadRestorePersisted.
	kv := NewMemoryKV()
	require.NoError(t, kv.Set(KeyVisibleColumns, `["code","zone"]`))
	require.NoError(t, kv.Set(KeyColumnOrder, `["zone","code"]`))

	store := NewStore(kv)
	state := store.Load([]string{"code", "askingPrice"}, []string{"code", "askingPrice"})

	assert.Equal(t, []string{"code", "askingPrice"}, state.Visible)
	assert.Equal(t, []string{"code", "askingPrice"}, state.Order)

	// The defaults were persisted over the old entries
	raw, ok, err := kv.Get(KeyVisibleColumns)
	require.NoError(t, err)
	require.True(t, ok)
	var persisted []string
	require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	assert.Equal(t, []string{"code", "askingPrice"}, persisted)
}

func TestLoadRestorePersisted(t *testing.T) {
	kv := NewMemoryKV()
	require.NoError(t, kv.Set(KeyVisibleColumns, `["code","zone"]`))
	require.NoError(t, kv.Set(KeyColumnOrder, `["zone","code"]`))

	store := NewStore(kv, WithRestorePersisted(true))
	state := store.Load([]string{"code", "askingPrice"}, []string{"code", "askingPrice"})

	assert.Equal(t, []string{"code", "zone"}, state.Visible)
	assert.Equal(t, []string{"zone", "code"}, state.Order)
}

func TestLoadCorruptPersistedFallsBackToDefaults(t *testing.T) {
	kv := NewMemoryKV()
	require.NoError(t, kv.Set(KeyVisibleColumns, `not json at all`))
	require.NoError(t, kv.Set(KeyColumnOrder, `["code"]`))

	store := NewStore(kv, WithRestorePersisted(true))
	state := store.Load([]string{"code"}, []string{"code"})

	assert.Equal(t, []string{"code"}, state.Visible)
	assert.Equal(t, []string{"code"}, state.Order)
}

func TestLoadSelfHealsDefaults(t *testing.T) {
	store := NewStore(NewMemoryKV())
	state := store.Load([]string{"a", "b", "c"}, []string{"b", "a"})

	// c was visible but missing from the order: appended, never dropped
	assert.Equal(t, []string{"b", "a", "c"}, state.Order)
}

func TestSetVisibleOutcomes(t *testing.T) {
	store := NewStore(NewMemoryKV())
	store.Load([]string{"a", "b"}, []string{"a", "b"})

	assert.Equal(t, OutcomeNoOp, store.SetVisible([]string{"a", "b"}))
	assert.Equal(t, OutcomeApplied, store.SetVisible([]string{"a"}))
	// c is not in the order yet, so the order self-heals
	assert.Equal(t, OutcomeHealed, store.SetVisible([]string{"a", "c"}))
	assert.Equal(t, []string{"a", "b", "c"}, store.Current().Order)
}

func TestSetOrderHealsMissingVisibleKeys(t *testing.T) {
	store := NewStore(NewMemoryKV())
	store.Load([]string{"a", "b", "c"}, []string{"a", "b", "c"})

	outcome := store.SetOrder([]string{"c", "a"})
	assert.Equal(t, OutcomeHealed, outcome)
	assert.Equal(t, []string{"c", "a", "b"}, store.Current().Order)
}

func TestSetOrderNoOp(t *testing.T) {
	store := NewStore(NewMemoryKV())
	store.Load([]string{"a", "b"}, []string{"a", "b"})

	assert.Equal(t, OutcomeNoOp, store.SetOrder([]string{"a", "b"}))
}

func TestMutationsPersistImmediately(t *testing.T) {
	kv := NewMemoryKV()
	store := NewStore(kv)
	store.Load([]string{"a"}, []string{"a"})

	store.SetVisible([]string{"a", "b"})

	raw, ok, err := kv.Get(KeyVisibleColumns)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `["a","b"]`, raw)

	raw, ok, err = kv.Get(KeyColumnOrder)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `["a","b"]`, raw)
}

func TestReset(t *testing.T) {
	store := NewStore(NewMemoryKV())
	store.Load([]string{"a", "b"}, []string{"a", "b"})
	store.SetVisible([]string{"a"})
	store.SetOrder([]string{"a"})

	state := store.Reset([]string{"a", "b"}, []string{"b", "a"})
	assert.Equal(t, []string{"a", "b"}, state.Visible)
	assert.Equal(t, []string{"b", "a"}, state.Order)
}

func TestCurrentReturnsCopies(t *testing.T) {
	store := NewStore(NewMemoryKV())
	store.Load([]string{"a", "b"}, []string{"a", "b"})

	state := store.Current()
	state.Visible[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, store.Current().Visible)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "NoOp", OutcomeNoOp.String())
	assert.Equal(t, "Applied", OutcomeApplied.String())
	assert.Equal(t, "Healed", OutcomeHealed.String())
}
