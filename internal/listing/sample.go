package listing

import "time"

// SampleListings returns the built-in demo inventory used when no data file
// is supplied. The set intentionally spans every listing type, several
// property types and both starred and unstarred records so the dashboard is
// exercisable out of the box.
func SampleListings() []Listing {
	created := time.Date(2026, 5, 12, 9, 30, 0, 0, time.UTC)
	return []Listing{
		{
			Code: "LS-1001", MarketingStatus: MarketingAvailable, ListingType: TypeAList,
			ListingStatus: StatusForSale, PropertyType: "Condo", ProjectName: "Noble Remix",
			Zone: "Thonglor", NearestTransit: "BTS Thong Lo", Bedrooms: 2, Bathrooms: 2,
			FloorSizeSqm: 68.5, Floor: "12", AskingPrice: 9500000, NetPrice: 9100000,
			PricePerSqm: 138686, Hashtags: []string{"#petfriendly", "#corner"},
			Amenities: []string{"Pool", "Gym"}, OwnerName: "Somchai P.", OwnerType: OwnerIndividual,
			OwnerPhone: "081-234-5678", IsStarred: true, Assignee: "Nok",
			CreatedAt: created, UpdatedAt: created, DaysOnMarket: 34,
		},
		{
			Code: "LS-1002", MarketingStatus: MarketingAvailable, ListingType: TypeAList,
			ListingStatus: StatusForRent, PropertyType: "Condo", ProjectName: "The Lofts Ekkamai",
			Zone: "Ekkamai", NearestTransit: "BTS Ekkamai", Bedrooms: 1, Bathrooms: 1,
			FloorSizeSqm: 35, RentalPrice: 28000, Amenities: []string{"Pool"},
			OwnerName: "Bee T.", OwnerType: OwnerIndividual, Assignee: "Nok",
			CreatedAt: created, UpdatedAt: created, DaysOnMarket: 12,
		},
		{
			Code: "LS-1003", MarketingStatus: MarketingReserved, ListingType: TypeAList,
			ListingStatus: StatusForSale, PropertyType: "Townhouse", ProjectName: "Baan Klang Muang",
			Zone: "Rama 9", NearestTransit: "MRT Phra Ram 9", Bedrooms: 3, Bathrooms: 3,
			FloorSizeSqm: 180, LandSizeSqw: 21.5, Parking: 2, AskingPrice: 12800000,
			OwnerName: "Lux Estates Co.", OwnerType: OwnerCompany, Assignee: "May",
			CreatedAt: created, UpdatedAt: created, DaysOnMarket: 58,
		},
		{
			Code: "LS-1004", MarketingStatus: MarketingAvailable, ListingType: TypeExclusive,
			ListingStatus: StatusForSaleAndRent, PropertyType: "Condo", ProjectName: "Ashton Asoke",
			Zone: "Asoke", NearestTransit: "MRT Sukhumvit", Bedrooms: 2, Bathrooms: 2,
			FloorSizeSqm: 74, AskingPrice: 15500000, RentalPrice: 55000, Exclusive: true,
			Hashtags: []string{"#highfloor", "#cityview"}, OwnerName: "Khun Ploy",
			OwnerType: OwnerIndividual, IsStarred: true, Assignee: "May",
			CreatedAt: created, UpdatedAt: created, DaysOnMarket: 7,
		},
		{
			Code: "LS-1005", MarketingStatus: MarketingAvailable, ListingType: TypeNormal,
			ListingStatus: StatusForSale, PropertyType: "House", ProjectName: "Setthasiri Krungthep Kreetha",
			Zone: "Krungthep Kreetha", Bedrooms: 4, Bathrooms: 5, FloorSizeSqm: 320,
			LandSizeSqw: 75.3, Parking: 3, AskingPrice: 32000000, PetFriendly: true,
			OwnerName: "Sansiri PCL", OwnerType: OwnerDeveloper, Assignee: "Ton",
			CreatedAt: created, UpdatedAt: created, DaysOnMarket: 91,
		},
		{
			Code: "LS-1006", MarketingStatus: MarketingSold, ListingType: TypeNormal,
			ListingStatus: StatusForSale, PropertyType: "Condo", ProjectName: "Life Asoke Rama 9",
			Zone: "Rama 9", NearestTransit: "MRT Phra Ram 9", Bedrooms: 1, Bathrooms: 1,
			FloorSizeSqm: 31, AskingPrice: 4200000, OwnerName: "Khun Art",
			OwnerType: OwnerIndividual, Assignee: "Ton",
			CreatedAt: created, UpdatedAt: created, DaysOnMarket: 120,
		},
		{
			Code: "LS-1007", MarketingStatus: MarketingAvailable, ListingType: TypeExclusive,
			ListingStatus: StatusForRent, PropertyType: "Apartment", ProjectName: "Piya Residence",
			Zone: "Phrom Phong", NearestTransit: "BTS Phrom Phong", Bedrooms: 3, Bathrooms: 3,
			FloorSizeSqm: 260, RentalPrice: 120000, Parking: 2, PetFriendly: true,
			Furnished: "Fully", OwnerName: "Piya Group", OwnerType: OwnerCompany,
			Assignee: "Nok", CreatedAt: created, UpdatedAt: created, DaysOnMarket: 45,
		},
		{
			Code: "LS-1008", MarketingStatus: MarketingExpired, ListingType: TypeNormal,
			ListingStatus: StatusForSale, PropertyType: "Land", Zone: "Bang Na",
			LandSizeSqw: 400, AskingPrice: 48000000, OwnerName: "Khun Wichai",
			OwnerType: OwnerIndividual, Assignee: "May",
			CreatedAt: created, UpdatedAt: created, DaysOnMarket: 210,
		},
		{
			Code: "LS-1009", MarketingStatus: MarketingAvailable, ListingType: TypeAList,
			ListingStatus: StatusForSale, PropertyType: "Condo", ProjectName: "The Line Jatujak",
			Zone: "Jatujak", NearestTransit: "BTS Mo Chit", Bedrooms: 6, Bathrooms: 4,
			FloorSizeSqm: 210, AskingPrice: 26000000, Hashtags: []string{"#penthouse"},
			OwnerName: "Khun Fah", OwnerType: OwnerIndividual, IsStarred: true,
			Assignee: "Ton", CreatedAt: created, UpdatedAt: created, DaysOnMarket: 18,
		},
		{
			Code: "LS-1010", MarketingStatus: MarketingRented, ListingType: TypeNormal,
			ListingStatus: StatusForRent, PropertyType: "Condo", ProjectName: "Rhythm Sukhumvit 42",
			Zone: "Ekkamai", NearestTransit: "BTS Ekkamai", Bedrooms: 1, Bathrooms: 1,
			FloorSizeSqm: 45, RentalPrice: 35000, OwnerName: "Khun Golf",
			OwnerType: OwnerIndividual, Assignee: "May",
			CreatedAt: created, UpdatedAt: created, DaysOnMarket: 63,
		},
	}
}
