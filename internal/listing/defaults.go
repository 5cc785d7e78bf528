package listing

// Column keys shared by the column registry, view presets and the persisted
// view state. Every key here names exactly one Listing field.
const (
	ColCode            = "code"
	ColStarred         = "isStarred"
	ColMarketingStatus = "marketingStatus"
	ColListingType     = "listingType"
	ColListingStatus   = "listingStatus"
	ColPropertyType    = "propertyType"
	ColProjectName     = "projectName"
	ColZone            = "zone"
	ColNearestTransit  = "nearestTransit"
	ColAddress         = "address"
	ColBuilding        = "building"
	ColFloor           = "floor"
	ColUnitNumber      = "unitNumber"
	ColBedrooms        = "bedrooms"
	ColBathrooms       = "bathrooms"
	ColFloorSize       = "floorSizeSqm"
	ColLandSize        = "landSizeSqw"
	ColParking         = "parking"
	ColFacing          = "facing"
	ColUnitView        = "unitView"
	ColFurnished       = "furnished"
	ColPetFriendly     = "petFriendly"
	ColYearBuilt       = "yearBuilt"
	ColAskingPrice     = "askingPrice"
	ColNetPrice        = "netPrice"
	ColRentalPrice     = "rentalPrice"
	ColPricePerSqm     = "pricePerSqm"
	ColCommission      = "commissionPct"
	ColTransferFee     = "transferFeeSplit"
	ColHashtags        = "hashtags"
	ColAmenities       = "amenities"
	ColMatchingTags    = "matchingTags"
	ColOwnerName       = "ownerName"
	ColOwnerType       = "ownerType"
	ColOwnerPhone      = "ownerPhone"
	ColOwnerEmail      = "ownerEmail"
	ColExclusive       = "exclusive"
	ColPhotoCount      = "photoCount"
	ColRemark          = "remark"
	ColSource          = "source"
	ColAssignee        = "assignee"
	ColCoAgent         = "coAgent"
	ColCreatedAt       = "createdAt"
	ColUpdatedAt       = "updatedAt"
	ColLastContact     = "lastContactAt"
	ColDaysOnMarket    = "daysOnMarket"
)

// Preset is a page-supplied default view: which columns are visible and the
// order they appear in. Presets are applied, not merged, with persisted state.
type Preset struct {
	Visible []string
	Order   []string
}

// DefaultVisibleColumns is the schema default visible-column set.
var DefaultVisibleColumns = []string{
	ColStarred,
	ColCode,
	ColMarketingStatus,
	ColListingType,
	ColListingStatus,
	ColPropertyType,
	ColProjectName,
	ColZone,
	ColBedrooms,
	ColFloorSize,
	ColAskingPrice,
	ColAssignee,
}

// DefaultColumnOrder is the schema default left-to-right order.
var DefaultColumnOrder = []string{
	ColStarred,
	ColCode,
	ColMarketingStatus,
	ColListingType,
	ColListingStatus,
	ColPropertyType,
	ColProjectName,
	ColZone,
	ColNearestTransit,
	ColBedrooms,
	ColBathrooms,
	ColFloorSize,
	ColAskingPrice,
	ColRentalPrice,
	ColAssignee,
}

// OwnerFocusPreset is the owner-centric table variant: it leads with owner
// contact fields instead of property attributes.
var OwnerFocusPreset = Preset{
	Visible: []string{
		ColStarred,
		ColCode,
		ColOwnerName,
		ColOwnerType,
		ColOwnerPhone,
		ColOwnerEmail,
		ColListingType,
		ColProjectName,
		ColAskingPrice,
		ColLastContact,
	},
	Order: []string{
		ColStarred,
		ColCode,
		ColOwnerName,
		ColOwnerType,
		ColOwnerPhone,
		ColOwnerEmail,
		ColListingType,
		ColProjectName,
		ColAskingPrice,
		ColLastContact,
	},
}

// DefaultPreset returns the schema default as a Preset.
func DefaultPreset() Preset {
	return Preset{
		Visible: append([]string(nil), DefaultVisibleColumns...),
		Order:   append([]string(nil), DefaultColumnOrder...),
	}
}

// Presets maps the preset names accepted on the command line.
var Presets = map[string]Preset{
	"default": DefaultPreset(),
	"owners":  OwnerFocusPreset,
}
