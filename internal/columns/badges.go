package columns

import (
	"github.com/charmbracelet/lipgloss"

	"brokerctl/internal/listing"
)

// Badge styling for categorical cells. The lookup tables are closed sets;
// any value outside them falls through to badgeFallbackStyle and renders as
// its literal label. An unmapped category must never panic or vanish.
var (
	badgeFallbackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))

	marketingStatusStyles = map[listing.MarketingStatus]lipgloss.Style{
		listing.MarketingAvailable: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),  // Green
		listing.MarketingReserved:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // Orange
		listing.MarketingSold:      lipgloss.NewStyle().Foreground(lipgloss.Color("33")),  // Blue
		listing.MarketingRented:    lipgloss.NewStyle().Foreground(lipgloss.Color("75")),  // Light blue
		listing.MarketingExpired:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")), // Gray
	}

	listingTypeStyles = map[listing.ListingType]lipgloss.Style{
		listing.TypeAList:     lipgloss.NewStyle().Foreground(lipgloss.Color("170")).Bold(true),
		listing.TypeExclusive: lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		listing.TypeNormal:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}

	listingStatusStyles = map[listing.ListingStatus]lipgloss.Style{
		listing.StatusForSale:        lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		listing.StatusForRent:        lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		listing.StatusForSaleAndRent: lipgloss.NewStyle().Foreground(lipgloss.Color("135")),
	}

	propertyTypeStyles = map[string]lipgloss.Style{
		"Condo":     lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
		"House":     lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		"Townhouse": lipgloss.NewStyle().Foreground(lipgloss.Color("150")),
		"Apartment": lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
		"Land":      lipgloss.NewStyle().Foreground(lipgloss.Color("180")),
	}

	ownerTypeStyles = map[listing.OwnerType]lipgloss.Style{
		listing.OwnerIndividual: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		listing.OwnerCompany:    lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
		listing.OwnerDeveloper:  lipgloss.NewStyle().Foreground(lipgloss.Color("180")),
	}
)

// MarketingStatusBadge renders a marketing status with its pipeline color.
func MarketingStatusBadge(s listing.MarketingStatus) string {
	if style, ok := marketingStatusStyles[s]; ok {
		return style.Render(string(s))
	}
	return badgeFallbackStyle.Render(string(s))
}

// ListingTypeBadge renders a listing type badge.
func ListingTypeBadge(t listing.ListingType) string {
	if style, ok := listingTypeStyles[t]; ok {
		return style.Render(string(t))
	}
	return badgeFallbackStyle.Render(string(t))
}

// ListingStatusBadge renders a listing status badge.
func ListingStatusBadge(s listing.ListingStatus) string {
	if style, ok := listingStatusStyles[s]; ok {
		return style.Render(string(s))
	}
	return badgeFallbackStyle.Render(string(s))
}

// PropertyTypeBadge renders a property type badge.
func PropertyTypeBadge(t string) string {
	if style, ok := propertyTypeStyles[t]; ok {
		return style.Render(t)
	}
	return badgeFallbackStyle.Render(t)
}

// OwnerTypeBadge renders an owner type badge.
func OwnerTypeBadge(t listing.OwnerType) string {
	if style, ok := ownerTypeStyles[t]; ok {
		return style.Render(string(t))
	}
	return badgeFallbackStyle.Render(string(t))
}
