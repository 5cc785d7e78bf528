package columns

import (
	"github.com/dustin/go-humanize"

	"brokerctl/internal/listing"
)

// FieldChangeFunc routes an inline cell edit back to the table controller.
type FieldChangeFunc func(code string, field listing.Field, value string)

// FormatTHB renders a baht amount with thousands separators. Zero renders
// empty so unpriced fields stay blank in the table.
func FormatTHB(v float64) string {
	if v == 0 {
		return ""
	}
	return "฿" + humanize.Commaf(v)
}

func marketingStatusOptions() []string {
	opts := make([]string, len(listing.AllMarketingStatuses))
	for i, s := range listing.AllMarketingStatuses {
		opts[i] = string(s)
	}
	return opts
}

func listingTypeOptions() []string {
	opts := make([]string, len(listing.AllListingTypes))
	for i, t := range listing.AllListingTypes {
		opts[i] = string(t)
	}
	return opts
}

func listingStatusOptions() []string {
	opts := make([]string, len(listing.AllListingStatuses))
	for i, s := range listing.AllListingStatuses {
		opts[i] = string(s)
	}
	return opts
}

// Enhance attaches interactive, context-aware cell behavior to specific
// columns without touching the registry: enumerated fields become editable
// cells whose changes flow through onChange, currency fields get a formatter
// and categorical fields get badge renderers. The input slice is not
// modified; enhancement never mutates records, only how cells display and
// which callback an edit invokes.
func Enhance(cols []Column, onChange FieldChangeFunc) []Column {
	enhanced := make([]Column, len(cols))
	copy(enhanced, cols)

	for i := range enhanced {
		switch enhanced[i].Key {
		case listing.ColMarketingStatus:
			enhanced[i].Render = func(l listing.Listing, _ int) string {
				return MarketingStatusBadge(l.MarketingStatus)
			}
			if onChange != nil {
				enhanced[i].Edit = &EditSpec{
					Options: marketingStatusOptions(),
					Apply: func(code, value string) {
						onChange(code, listing.FieldMarketingStatus, value)
					},
				}
			}
		case listing.ColListingType:
			enhanced[i].Render = func(l listing.Listing, _ int) string {
				return ListingTypeBadge(l.ListingType)
			}
			if onChange != nil {
				enhanced[i].Edit = &EditSpec{
					Options: listingTypeOptions(),
					Apply: func(code, value string) {
						onChange(code, listing.FieldListingType, value)
					},
				}
			}
		case listing.ColListingStatus:
			enhanced[i].Render = func(l listing.Listing, _ int) string {
				return ListingStatusBadge(l.ListingStatus)
			}
			if onChange != nil {
				enhanced[i].Edit = &EditSpec{
					Options: listingStatusOptions(),
					Apply: func(code, value string) {
						onChange(code, listing.FieldListingStatus, value)
					},
				}
			}
		case listing.ColPropertyType:
			enhanced[i].Render = func(l listing.Listing, _ int) string {
				return PropertyTypeBadge(l.PropertyType)
			}
		case listing.ColOwnerType:
			enhanced[i].Render = func(l listing.Listing, _ int) string {
				return OwnerTypeBadge(l.OwnerType)
			}
		case listing.ColAskingPrice:
			enhanced[i].Render = func(l listing.Listing, _ int) string {
				return FormatTHB(l.AskingPrice)
			}
		case listing.ColNetPrice:
			enhanced[i].Render = func(l listing.Listing, _ int) string {
				return FormatTHB(l.NetPrice)
			}
		case listing.ColRentalPrice:
			enhanced[i].Render = func(l listing.Listing, _ int) string {
				return FormatTHB(l.RentalPrice)
			}
		case listing.ColPricePerSqm:
			enhanced[i].Render = func(l listing.Listing, _ int) string {
				return FormatTHB(l.PricePerSqm)
			}
		}
	}

	return enhanced
}
