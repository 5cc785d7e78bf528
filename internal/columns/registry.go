package columns

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"brokerctl/internal/listing"
)

// RenderFunc renders one cell for a record at the given row index.
type RenderFunc func(l listing.Listing, row int) string

// EditSpec is attached by the enhancer to columns whose values can be changed
// in place. Options are the allowed values; Apply routes the change back to
// the table controller by record code.
type EditSpec struct {
	Options []string
	Apply   func(code, value string)
}

// Column binds a record field to a display label and rendering behavior.
// The registry holds exactly one Column per displayable field.
type Column struct {
	Key       string
	Label     string
	Render    RenderFunc
	StyleHint string

	// Toggle, when set, flips the star on the record with the given code.
	// Only the star column carries it, and only when the resolver was given
	// a toggle handler.
	Toggle func(code string)

	// Edit is attached by the enhancer for enumerated fields.
	Edit *EditSpec
}

// Style hints consumed by the view layer.
const (
	HintBadge    = "badge"
	HintCurrency = "currency"
	HintNumeric  = "numeric"
	HintDate     = "date"
)

const dateLayout = "2006-01-02"

func renderDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func renderBool(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func renderInt(v int) string {
	if v == 0 {
		return ""
	}
	return strconv.Itoa(v)
}

func renderFloat(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Registry returns the exhaustive catalogue of displayable columns, one
// descriptor per Listing field, in schema order. Callers must not rely on
// this order for display; display order comes from the view state.
func Registry() []Column {
	return []Column{
		{Key: listing.ColStarred, Label: "★", Render: func(l listing.Listing, _ int) string {
			if l.IsStarred {
				return "★"
			}
			return "☆"
		}},
		{Key: listing.ColCode, Label: "Code", Render: func(l listing.Listing, _ int) string { return l.Code }},
		{Key: listing.ColMarketingStatus, Label: "Marketing", StyleHint: HintBadge,
			Render: func(l listing.Listing, _ int) string { return string(l.MarketingStatus) }},
		{Key: listing.ColListingType, Label: "Type", StyleHint: HintBadge,
			Render: func(l listing.Listing, _ int) string { return string(l.ListingType) }},
		{Key: listing.ColListingStatus, Label: "Status", StyleHint: HintBadge,
			Render: func(l listing.Listing, _ int) string { return string(l.ListingStatus) }},
		{Key: listing.ColPropertyType, Label: "Property", StyleHint: HintBadge,
			Render: func(l listing.Listing, _ int) string { return l.PropertyType }},
		{Key: listing.ColProjectName, Label: "Project", Render: func(l listing.Listing, _ int) string { return l.ProjectName }},
		{Key: listing.ColZone, Label: "Zone", Render: func(l listing.Listing, _ int) string { return l.Zone }},
		{Key: listing.ColNearestTransit, Label: "Transit", Render: func(l listing.Listing, _ int) string { return l.NearestTransit }},
		{Key: listing.ColAddress, Label: "Address", Render: func(l listing.Listing, _ int) string { return l.Address }},
		{Key: listing.ColBuilding, Label: "Building", Render: func(l listing.Listing, _ int) string { return l.Building }},
		{Key: listing.ColFloor, Label: "Floor", Render: func(l listing.Listing, _ int) string { return l.Floor }},
		{Key: listing.ColUnitNumber, Label: "Unit", Render: func(l listing.Listing, _ int) string { return l.UnitNumber }},
		{Key: listing.ColBedrooms, Label: "Beds", StyleHint: HintNumeric,
			Render: func(l listing.Listing, _ int) string { return strconv.Itoa(l.Bedrooms) }},
		{Key: listing.ColBathrooms, Label: "Baths", StyleHint: HintNumeric,
			Render: func(l listing.Listing, _ int) string { return renderInt(l.Bathrooms) }},
		{Key: listing.ColFloorSize, Label: "Size (sqm)", StyleHint: HintNumeric,
			Render: func(l listing.Listing, _ int) string { return renderFloat(l.FloorSizeSqm) }},
		{Key: listing.ColLandSize, Label: "Land (sq.w)", StyleHint: HintNumeric,
			Render: func(l listing.Listing, _ int) string { return renderFloat(l.LandSizeSqw) }},
		{Key: listing.ColParking, Label: "Parking", StyleHint: HintNumeric,
			Render: func(l listing.Listing, _ int) string { return renderInt(l.Parking) }},
		{Key: listing.ColFacing, Label: "Facing", Render: func(l listing.Listing, _ int) string { return l.Facing }},
		{Key: listing.ColUnitView, Label: "View", Render: func(l listing.Listing, _ int) string { return l.UnitView }},
		{Key: listing.ColFurnished, Label: "Furnished", Render: func(l listing.Listing, _ int) string { return l.Furnished }},
		{Key: listing.ColPetFriendly, Label: "Pets", Render: func(l listing.Listing, _ int) string { return renderBool(l.PetFriendly) }},
		{Key: listing.ColYearBuilt, Label: "Built", StyleHint: HintNumeric,
			Render: func(l listing.Listing, _ int) string { return renderInt(l.YearBuilt) }},
		{Key: listing.ColAskingPrice, Label: "Asking", StyleHint: HintCurrency,
			Render: func(l listing.Listing, _ int) string { return renderFloat(l.AskingPrice) }},
		{Key: listing.ColNetPrice, Label: "Net", StyleHint: HintCurrency,
			Render: func(l listing.Listing, _ int) string { return renderFloat(l.NetPrice) }},
		{Key: listing.ColRentalPrice, Label: "Rent", StyleHint: HintCurrency,
			Render: func(l listing.Listing, _ int) string { return renderFloat(l.RentalPrice) }},
		{Key: listing.ColPricePerSqm, Label: "Per sqm", StyleHint: HintCurrency,
			Render: func(l listing.Listing, _ int) string { return renderFloat(l.PricePerSqm) }},
		{Key: listing.ColCommission, Label: "Comm %", StyleHint: HintNumeric,
			Render: func(l listing.Listing, _ int) string { return renderFloat(l.CommissionPct) }},
		{Key: listing.ColTransferFee, Label: "Transfer", Render: func(l listing.Listing, _ int) string { return l.TransferFeeSplit }},
		{Key: listing.ColHashtags, Label: "Hashtags", Render: func(l listing.Listing, _ int) string {
			return strings.Join(l.Hashtags, " ")
		}},
		{Key: listing.ColAmenities, Label: "Amenities", Render: func(l listing.Listing, _ int) string {
			return strings.Join(l.Amenities, ", ")
		}},
		{Key: listing.ColMatchingTags, Label: "Matching", Render: func(l listing.Listing, _ int) string {
			return strings.Join(l.MatchingTags, ", ")
		}},
		{Key: listing.ColOwnerName, Label: "Owner", Render: func(l listing.Listing, _ int) string { return l.OwnerName }},
		{Key: listing.ColOwnerType, Label: "Owner Type", StyleHint: HintBadge,
			Render: func(l listing.Listing, _ int) string { return string(l.OwnerType) }},
		{Key: listing.ColOwnerPhone, Label: "Phone", Render: func(l listing.Listing, _ int) string { return l.OwnerPhone }},
		{Key: listing.ColOwnerEmail, Label: "Email", Render: func(l listing.Listing, _ int) string { return l.OwnerEmail }},
		{Key: listing.ColExclusive, Label: "Exclusive", Render: func(l listing.Listing, _ int) string { return renderBool(l.Exclusive) }},
		{Key: listing.ColPhotoCount, Label: "Photos", StyleHint: HintNumeric,
			Render: func(l listing.Listing, _ int) string { return renderInt(l.PhotoCount) }},
		{Key: listing.ColRemark, Label: "Remark", Render: func(l listing.Listing, _ int) string { return l.Remark }},
		{Key: listing.ColSource, Label: "Source", Render: func(l listing.Listing, _ int) string { return l.Source }},
		{Key: listing.ColAssignee, Label: "Assignee", Render: func(l listing.Listing, _ int) string { return l.Assignee }},
		{Key: listing.ColCoAgent, Label: "Co-Agent", Render: func(l listing.Listing, _ int) string { return l.CoAgent }},
		{Key: listing.ColCreatedAt, Label: "Created", StyleHint: HintDate,
			Render: func(l listing.Listing, _ int) string { return renderDate(l.CreatedAt) }},
		{Key: listing.ColUpdatedAt, Label: "Updated", StyleHint: HintDate,
			Render: func(l listing.Listing, _ int) string { return renderDate(l.UpdatedAt) }},
		{Key: listing.ColLastContact, Label: "Last Contact", StyleHint: HintDate,
			Render: func(l listing.Listing, _ int) string { return renderDate(l.LastContactAt) }},
		{Key: listing.ColDaysOnMarket, Label: "DOM", StyleHint: HintNumeric,
			Render: func(l listing.Listing, _ int) string { return fmt.Sprintf("%d", l.DaysOnMarket) }},
	}
}
