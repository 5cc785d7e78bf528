package filter

import "brokerctl/internal/listing"

// BedroomsOpenEnd is the open-ended sentinel for the bedroom range: the
// UI's "6+" option. A spec whose BedroomMax equals it has no upper bound.
const BedroomsOpenEnd = 6

// Spec is the structured, multi-field filter a table applies on top of its
// tab pre-filters. Each field is an independent rule; a record matches the
// spec only when every active rule holds.
//
// Set rules match everything when empty. A zero PriceMax leaves the price
// unbounded above. Starred is tri-state: nil means unconstrained.
type Spec struct {
	MarketingStatuses []listing.MarketingStatus
	ListingTypes      []listing.ListingType
	PropertyTypes     []string

	// Locations are fuzzy tokens matched by substring against a record's
	// zone, nearest transit and project name, OR across both tokens and
	// fields.
	Locations []string

	BedroomMin int
	BedroomMax int

	PriceMin float64
	PriceMax float64

	Starred *bool
}

// Default returns the identity spec: it matches every record.
func Default() Spec {
	return Spec{BedroomMax: BedroomsOpenEnd}
}

// IsDefault reports whether the spec constrains nothing.
func (s Spec) IsDefault() bool {
	return len(s.MarketingStatuses) == 0 &&
		len(s.ListingTypes) == 0 &&
		len(s.PropertyTypes) == 0 &&
		len(s.Locations) == 0 &&
		s.BedroomMin == 0 &&
		s.BedroomMax == BedroomsOpenEnd &&
		s.PriceMin == 0 &&
		s.PriceMax == 0 &&
		s.Starred == nil
}
