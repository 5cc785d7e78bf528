package model

import (
	"strings"

	"brokerctl/internal/filter"
	"brokerctl/internal/listing"
)

// ApplyFilter pushes the overlay's working filter into the controller
// and rebuilds the table. A spec still at its identity value is pushed
// as nil so the controller skips the predicate pass entirely.
func (m *Model) ApplyFilter() {
	spec := m.FilterSpec
	spec.Locations = splitLocationTokens(m.LocationInput.Value())

	bracket := PriceBrackets[m.PriceIndex]
	spec.PriceMin = bracket.Min
	spec.PriceMax = bracket.Max

	if spec.IsDefault() {
		m.Core.ChangeFilter(nil)
	} else {
		m.Core.ChangeFilter(&spec)
	}
	m.RefreshTable()
}

// ResetFilter clears every filter dimension back to the identity spec.
func (m *Model) ResetFilter() {
	m.FilterSpec = filter.Default()
	m.PriceIndex = 0
	m.LocationInput.SetValue("")
	m.ApplyFilter()
}

// CycleStarred advances the tri-state starred filter: any, starred
// only, unstarred only.
func (m *Model) CycleStarred() {
	switch {
	case m.FilterSpec.Starred == nil:
		v := true
		m.FilterSpec.Starred = &v
	case *m.FilterSpec.Starred:
		v := false
		m.FilterSpec.Starred = &v
	default:
		m.FilterSpec.Starred = nil
	}
}

// AdjustBedroomMin moves the lower bedroom bound, clamped to the
// open-ended sentinel and never above the upper bound.
func (m *Model) AdjustBedroomMin(delta int) {
	v := m.FilterSpec.BedroomMin + delta
	if v < 0 {
		v = 0
	}
	if v > m.FilterSpec.BedroomMax {
		v = m.FilterSpec.BedroomMax
	}
	m.FilterSpec.BedroomMin = v
}

// AdjustBedroomMax moves the upper bedroom bound, clamped between the
// lower bound and the open-ended sentinel.
func (m *Model) AdjustBedroomMax(delta int) {
	v := m.FilterSpec.BedroomMax + delta
	if v < m.FilterSpec.BedroomMin {
		v = m.FilterSpec.BedroomMin
	}
	if v > filter.BedroomsOpenEnd {
		v = filter.BedroomsOpenEnd
	}
	m.FilterSpec.BedroomMax = v
}

// CyclePrice moves through the preset price brackets.
func (m *Model) CyclePrice(delta int) {
	m.PriceIndex = cycleIndex(m.PriceIndex, delta, len(PriceBrackets))
}

// CyclePropertyType moves through the selectable property types. The
// first entry ("") lifts the constraint.
func (m *Model) CyclePropertyType(delta int) {
	idx := 0
	if len(m.FilterSpec.PropertyTypes) == 1 {
		for i, pt := range FilterPropertyTypes {
			if pt == m.FilterSpec.PropertyTypes[0] {
				idx = i
			}
		}
	}
	idx = cycleIndex(idx, delta, len(FilterPropertyTypes))
	if FilterPropertyTypes[idx] == "" {
		m.FilterSpec.PropertyTypes = nil
	} else {
		m.FilterSpec.PropertyTypes = []string{FilterPropertyTypes[idx]}
	}
}

// CycleMarketingStatus moves through the marketing statuses, with an
// initial "any" position that lifts the constraint.
func (m *Model) CycleMarketingStatus(delta int) {
	idx := 0
	if len(m.FilterSpec.MarketingStatuses) == 1 {
		for i, s := range listing.AllMarketingStatuses {
			if s == m.FilterSpec.MarketingStatuses[0] {
				idx = i + 1
			}
		}
	}
	idx = cycleIndex(idx, delta, len(listing.AllMarketingStatuses)+1)
	if idx == 0 {
		m.FilterSpec.MarketingStatuses = nil
	} else {
		m.FilterSpec.MarketingStatuses = []listing.MarketingStatus{listing.AllMarketingStatuses[idx-1]}
	}
}

func cycleIndex(idx, delta, n int) int {
	idx = (idx + delta) % n
	if idx < 0 {
		idx += n
	}
	return idx
}

func splitLocationTokens(raw string) []string {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return nil
	}
	return fields
}
