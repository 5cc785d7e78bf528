package viewstate

import (
	"encoding/json"
	"sync"

	"brokerctl/pkg/logging"
)

// Persisted entry keys. They are page-independent on purpose: every listings
// table in the application reads and writes the same two entries, so a column
// layout chosen on one page carries over to the others.
const (
	KeyVisibleColumns = "visibleColumns"
	KeyColumnOrder    = "columnOrder"
)

// ViewState is the user's chosen visible-column set plus the left-to-right
// column order. Membership lives in Visible; position lives in Order. Every
// visible key must eventually appear in Order; the store self-heals by
// appending, never by dropping.
type ViewState struct {
	Visible []string
	Order   []string
}

func (v ViewState) clone() ViewState {
	return ViewState{
		Visible: append([]string(nil), v.Visible...),
		Order:   append([]string(nil), v.Order...),
	}
}

// Store holds the current view state and mirrors every mutation into the
// injected KV. Construct one per application and pass it by reference to each
// table controller; the sharing of persisted preferences is intentional.
type Store struct {
	mu               sync.Mutex
	kv               KV
	restorePersisted bool
	current          ViewState
}

// Option configures a Store.
type Option func(*Store)

// WithRestorePersisted switches Load from the historical discard-then-default
// behavior to actually reading back the persisted state. The historical
// behavior is the default; see Load.
func WithRestorePersisted(enabled bool) Option {
	return func(s *Store) { s.restorePersisted = enabled }
}

// NewStore creates a view-state store over the given KV.
func NewStore(kv KV, opts ...Option) *Store {
	s := &Store{kv: kv}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load initializes the view state for a page.
//
// By default any previously persisted value is discarded unconditionally and
// the caller's defaults are applied and persisted. That matches the system
// this engine was lifted from, where persistence is effectively write-forward
// only within a session; it also happens to be what lets per-page presets win
// over the global preference set. WithRestorePersisted(true) opts into the
// corrected behavior: persisted state, when present and parseable, wins over
// the defaults. Corrupt stored values are always treated as absent.
func (s *Store) Load(defVisible, defOrder []string) ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := ViewState{
		Visible: append([]string(nil), defVisible...),
		Order:   append([]string(nil), defOrder...),
	}

	if s.restorePersisted {
		if stored, ok := s.readPersisted(); ok {
			state = stored
		}
	} else {
		// Write-forward mode: drop whatever was there before applying the
		// page defaults.
		if err := s.kv.Delete(KeyVisibleColumns); err != nil {
			logging.Warn("ViewState", "discarding persisted visible columns: %v", err)
		}
		if err := s.kv.Delete(KeyColumnOrder); err != nil {
			logging.Warn("ViewState", "discarding persisted column order: %v", err)
		}
	}

	state.Order, _ = healOrder(state.Visible, state.Order)
	s.current = state
	s.persist()
	return s.current.clone()
}

// SetVisible replaces the visible-column set. A visible key absent from the
// current order is appended to it (OutcomeHealed). Replacing the set with an
// identical one is OutcomeNoOp.
func (s *Store) SetVisible(keys []string) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	if equalKeys(s.current.Visible, keys) {
		return OutcomeNoOp
	}
	s.current.Visible = append([]string(nil), keys...)

	healed := false
	s.current.Order, healed = healOrder(s.current.Visible, s.current.Order)
	s.persist()
	if healed {
		return OutcomeHealed
	}
	return OutcomeApplied
}

// SetOrder replaces the column order. Visible keys missing from the new order
// are appended (OutcomeHealed) rather than silently dropped.
func (s *Store) SetOrder(keys []string) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, healed := healOrder(s.current.Visible, append([]string(nil), keys...))
	if equalKeys(s.current.Order, next) {
		return OutcomeNoOp
	}
	s.current.Order = next
	s.persist()
	if healed {
		return OutcomeHealed
	}
	return OutcomeApplied
}

// Reset restores exactly the caller-provided defaults and persists them.
func (s *Store) Reset(defVisible, defOrder []string) ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = ViewState{
		Visible: append([]string(nil), defVisible...),
		Order:   append([]string(nil), defOrder...),
	}
	s.current.Order, _ = healOrder(s.current.Visible, s.current.Order)
	s.persist()
	return s.current.clone()
}

// Current returns a copy of the current view state.
func (s *Store) Current() ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.clone()
}

// readPersisted loads both entries from the KV. Missing or unparseable
// entries make the whole read fail soft so the caller falls back to defaults.
func (s *Store) readPersisted() (ViewState, bool) {
	visible, ok := s.readKeyList(KeyVisibleColumns)
	if !ok {
		return ViewState{}, false
	}
	order, ok := s.readKeyList(KeyColumnOrder)
	if !ok {
		return ViewState{}, false
	}
	return ViewState{Visible: visible, Order: order}, true
}

func (s *Store) readKeyList(key string) ([]string, bool) {
	raw, present, err := s.kv.Get(key)
	if err != nil {
		logging.Warn("ViewState", "reading persisted %s: %v", key, err)
		return nil, false
	}
	if !present {
		return nil, false
	}
	var keys []string
	if err := json.Unmarshal([]byte(raw), &keys); err != nil {
		// Corrupt entry: treat as absent, never propagate.
		logging.Warn("ViewState", "persisted %s is not a valid key list, using defaults", key)
		return nil, false
	}
	return keys, true
}

func (s *Store) persist() {
	s.persistKeyList(KeyVisibleColumns, s.current.Visible)
	s.persistKeyList(KeyColumnOrder, s.current.Order)
}

func (s *Store) persistKeyList(key string, keys []string) {
	data, err := json.Marshal(keys)
	if err != nil {
		logging.Warn("ViewState", "encoding %s: %v", key, err)
		return
	}
	if err := s.kv.Set(key, string(data)); err != nil {
		logging.Warn("ViewState", "persisting %s: %v", key, err)
	}
}

// healOrder appends any visible key missing from order, preserving the
// relative order the keys appear in visible. Reports whether it changed
// anything.
func healOrder(visible, order []string) ([]string, bool) {
	known := make(map[string]struct{}, len(order))
	for _, k := range order {
		known[k] = struct{}{}
	}
	healed := false
	for _, k := range visible {
		if _, ok := known[k]; !ok {
			order = append(order, k)
			known[k] = struct{}{}
			healed = true
		}
	}
	return order, healed
}

func equalKeys(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
