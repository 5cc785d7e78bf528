package listing

import "time"

// MarketingStatus tracks where a listing sits in the marketing pipeline.
type MarketingStatus string

const (
	MarketingAvailable MarketingStatus = "Available"
	MarketingReserved  MarketingStatus = "Reserved"
	MarketingSold      MarketingStatus = "Sold"
	MarketingRented    MarketingStatus = "Rented"
	MarketingExpired   MarketingStatus = "Expired"
)

// ListingType classifies the agreement the brokerage holds for a listing.
type ListingType string

const (
	TypeAList     ListingType = "A List"
	TypeExclusive ListingType = "Exclusive List"
	TypeNormal    ListingType = "Normal List"
)

// ListingStatus is the transaction mode a listing is offered under.
type ListingStatus string

const (
	StatusForSale        ListingStatus = "For Sale"
	StatusForRent        ListingStatus = "For Rent"
	StatusForSaleAndRent ListingStatus = "For Sale & Rent"
)

// OwnerType classifies who holds the property.
type OwnerType string

const (
	OwnerIndividual OwnerType = "Individual"
	OwnerCompany    OwnerType = "Company"
	OwnerDeveloper  OwnerType = "Developer"
)

// AllMarketingStatuses lists every marketing status in pipeline order.
var AllMarketingStatuses = []MarketingStatus{
	MarketingAvailable,
	MarketingReserved,
	MarketingSold,
	MarketingRented,
	MarketingExpired,
}

// AllListingTypes lists every listing type.
var AllListingTypes = []ListingType{
	TypeAList,
	TypeExclusive,
	TypeNormal,
}

// AllListingStatuses lists every listing status.
var AllListingStatuses = []ListingStatus{
	StatusForSale,
	StatusForRent,
	StatusForSaleAndRent,
}

// Listing is one property record in the brokerage inventory.
//
// Code is the sole identity key: it is stable for the life of the record and
// no two listings in a collection may share one. All lookups and mutations go
// through it.
type Listing struct {
	// Identity
	Code string `yaml:"code"`

	// Classification
	MarketingStatus MarketingStatus `yaml:"marketingStatus"`
	ListingType     ListingType     `yaml:"listingType"`
	ListingStatus   ListingStatus   `yaml:"listingStatus"`
	PropertyType    string          `yaml:"propertyType"`

	// Location
	ProjectName    string `yaml:"projectName"`
	Zone           string `yaml:"zone"`
	NearestTransit string `yaml:"nearestTransit"`
	Address        string `yaml:"address,omitempty"`
	Building       string `yaml:"building,omitempty"`
	Floor          string `yaml:"floor,omitempty"`
	UnitNumber     string `yaml:"unitNumber,omitempty"`

	// Physical attributes
	Bedrooms     int     `yaml:"bedrooms"`
	Bathrooms    int     `yaml:"bathrooms"`
	FloorSizeSqm float64 `yaml:"floorSizeSqm"`
	LandSizeSqw  float64 `yaml:"landSizeSqw,omitempty"`
	Parking      int     `yaml:"parking,omitempty"`
	Facing       string  `yaml:"facing,omitempty"`
	UnitView     string  `yaml:"unitView,omitempty"`
	Furnished    string  `yaml:"furnished,omitempty"`
	PetFriendly  bool    `yaml:"petFriendly,omitempty"`
	YearBuilt    int     `yaml:"yearBuilt,omitempty"`

	// Pricing
	AskingPrice      float64 `yaml:"askingPrice"`
	NetPrice         float64 `yaml:"netPrice,omitempty"`
	RentalPrice      float64 `yaml:"rentalPrice,omitempty"`
	PricePerSqm      float64 `yaml:"pricePerSqm,omitempty"`
	CommissionPct    float64 `yaml:"commissionPct,omitempty"`
	TransferFeeSplit string  `yaml:"transferFeeSplit,omitempty"`

	// Collections
	Hashtags     []string `yaml:"hashtags,omitempty"`
	Amenities    []string `yaml:"amenities,omitempty"`
	MatchingTags []string `yaml:"matchingTags,omitempty"`

	// Owner
	OwnerName  string    `yaml:"ownerName,omitempty"`
	OwnerType  OwnerType `yaml:"ownerType,omitempty"`
	OwnerPhone string    `yaml:"ownerPhone,omitempty"`
	OwnerEmail string    `yaml:"ownerEmail,omitempty"`

	// Marketing
	IsStarred     bool   `yaml:"isStarred,omitempty"`
	Exclusive     bool   `yaml:"exclusive,omitempty"`
	PhotoCount    int    `yaml:"photoCount,omitempty"`
	GoogleMapsURL string `yaml:"googleMapsUrl,omitempty"`
	Remark        string `yaml:"remark,omitempty"`
	Source        string `yaml:"source,omitempty"`

	// Assignment and timestamps
	Assignee      string    `yaml:"assignee,omitempty"`
	CoAgent       string    `yaml:"coAgent,omitempty"`
	CreatedAt     time.Time `yaml:"createdAt,omitempty"`
	UpdatedAt     time.Time `yaml:"updatedAt,omitempty"`
	LastContactAt time.Time `yaml:"lastContactAt,omitempty"`
	DaysOnMarket  int       `yaml:"daysOnMarket,omitempty"`
}

// Field names a mutable listing field for table-level edits. The values match
// the column keys used by the column registry and the persisted view state.
type Field string

const (
	FieldStarred         Field = "isStarred"
	FieldMarketingStatus Field = "marketingStatus"
	FieldListingType     Field = "listingType"
	FieldListingStatus   Field = "listingStatus"
)
