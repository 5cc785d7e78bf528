package filter

import (
	"strings"

	"brokerctl/internal/listing"
)

// Matches reports whether a record passes every active rule of the spec.
func Matches(l listing.Listing, spec Spec) bool {
	if !matchMarketingStatus(l, spec.MarketingStatuses) {
		return false
	}
	if !matchListingType(l, spec.ListingTypes) {
		return false
	}
	if !matchPropertyType(l, spec.PropertyTypes) {
		return false
	}
	if !matchBedrooms(l.Bedrooms, spec.BedroomMin, spec.BedroomMax) {
		return false
	}
	if !matchPrice(l.AskingPrice, spec.PriceMin, spec.PriceMax) {
		return false
	}
	if spec.Starred != nil && l.IsStarred != *spec.Starred {
		return false
	}
	if !matchLocation(l, spec.Locations) {
		return false
	}
	return true
}

// Apply narrows records to those matching the spec, preserving input order.
func Apply(records []listing.Listing, spec Spec) []listing.Listing {
	out := make([]listing.Listing, 0, len(records))
	for _, l := range records {
		if Matches(l, spec) {
			out = append(out, l)
		}
	}
	return out
}

// ApplyListingTypeTab is the tab pre-filter: a single-value narrowing applied
// before the spec and independent of the spec's own listing-type set. An
// empty tab means no constraint.
func ApplyListingTypeTab(records []listing.Listing, tab listing.ListingType) []listing.Listing {
	if tab == "" {
		return records
	}
	out := make([]listing.Listing, 0, len(records))
	for _, l := range records {
		if l.ListingType == tab {
			out = append(out, l)
		}
	}
	return out
}

// ApplyOwnerTypeTab is the owner-type single-select pre-filter.
func ApplyOwnerTypeTab(records []listing.Listing, owner listing.OwnerType) []listing.Listing {
	if owner == "" {
		return records
	}
	out := make([]listing.Listing, 0, len(records))
	for _, l := range records {
		if l.OwnerType == owner {
			out = append(out, l)
		}
	}
	return out
}

func matchMarketingStatus(l listing.Listing, set []listing.MarketingStatus) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if l.MarketingStatus == s {
			return true
		}
	}
	return false
}

func matchListingType(l listing.Listing, set []listing.ListingType) bool {
	if len(set) == 0 {
		return true
	}
	for _, t := range set {
		if l.ListingType == t {
			return true
		}
	}
	return false
}

func matchPropertyType(l listing.Listing, set []string) bool {
	if len(set) == 0 {
		return true
	}
	for _, t := range set {
		if l.PropertyType == t {
			return true
		}
	}
	return false
}

// matchBedrooms treats max == BedroomsOpenEnd as "min or more"; otherwise
// both bounds are inclusive.
func matchBedrooms(bedrooms, min, max int) bool {
	if max == BedroomsOpenEnd {
		return bedrooms >= min
	}
	return bedrooms >= min && bedrooms <= max
}

// matchPrice is an inclusive range on asking price. A zero max leaves the
// range open above.
func matchPrice(price, min, max float64) bool {
	if price < min {
		return false
	}
	if max > 0 && price > max {
		return false
	}
	return true
}

// matchLocation is intentionally fuzzy: any selected token appearing as a
// substring of the zone, nearest transit or project name is a match.
func matchLocation(l listing.Listing, tokens []string) bool {
	if len(tokens) == 0 {
		return true
	}
	fields := []string{l.Zone, l.NearestTransit, l.ProjectName}
	for _, tok := range tokens {
		needle := strings.ToLower(tok)
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f), needle) {
				return true
			}
		}
	}
	return false
}
