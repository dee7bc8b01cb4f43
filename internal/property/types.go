package property

// Listing is the property shown on the site, loaded from YAML.
type Listing struct {
	Address string `yaml:"address" json:"address"`
	City    string `yaml:"city" json:"city"`
	State   string `yaml:"state" json:"state"`
	Zip     string `yaml:"zip" json:"zip"`
	Price   int64  `yaml:"price" json:"price"`

	Beds           int     `yaml:"beds" json:"beds"`
	Baths          float64 `yaml:"baths" json:"baths"`
	Sqft           int     `yaml:"sqft" json:"sqft"`
	LotSize        string  `yaml:"lotSize" json:"lotSize"`
	LotSqft        int     `yaml:"lotSqft" json:"lotSqft"`
	YearBuilt      int     `yaml:"yearBuilt" json:"yearBuilt"`
	PropertyType   string  `yaml:"propertyType" json:"propertyType"`
	Garage         int     `yaml:"garage" json:"garage"`
	GarageType     string  `yaml:"garageType" json:"garageType"`
	Stories        int     `yaml:"stories" json:"stories"`
	FireplaceCount int     `yaml:"fireplaceCount" json:"fireplaceCount"`

	Headline    string    `yaml:"headline" json:"headline"`
	Tagline     string    `yaml:"tagline" json:"tagline"`
	Description string    `yaml:"description" json:"description"`
	Highlights  []Feature `yaml:"highlights" json:"highlights"`
	KeyFeatures []string  `yaml:"keyFeatures" json:"keyFeatures"`
	Stats       []Stat    `yaml:"stats" json:"stats"`
	Lifestyle   []Feature `yaml:"lifestyle" json:"lifestyle"`

	Coordinates Coordinates `yaml:"coordinates" json:"coordinates"`
	Agent       Agent       `yaml:"agent" json:"agent"`
	Photos      []Photo     `yaml:"photos" json:"photos"`

	DossierContents []string `yaml:"dossierContents" json:"dossierContents"`
	MLSNumber       string   `yaml:"mlsNumber" json:"mlsNumber"`
	ListingDate     string   `yaml:"listingDate" json:"listingDate"`
}

// Feature is an icon card (highlights, lifestyle).
type Feature struct {
	Icon        string `yaml:"icon" json:"icon"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

// Stat is a label/value pair in the stats bar.
type Stat struct {
	Label string `yaml:"label" json:"label"`
	Value string `yaml:"value" json:"value"`
	Icon  string `yaml:"icon" json:"icon"`
}

type Coordinates struct {
	Lat float64 `yaml:"lat" json:"lat"`
	Lng float64 `yaml:"lng" json:"lng"`
}

// Agent is the listing agent card.
type Agent struct {
	Name      string `yaml:"name" json:"name"`
	Title     string `yaml:"title" json:"title"`
	Brokerage string `yaml:"brokerage" json:"brokerage"`
	License   string `yaml:"license" json:"license"`
	Phone     string `yaml:"phone" json:"phone"`
	Email     string `yaml:"email" json:"email"`
	Photo     string `yaml:"photo" json:"photo"`
	Bio       string `yaml:"bio" json:"bio"`
}

// Photo is one gallery image. Src is an object key, resolved to a URL on read.
type Photo struct {
	ID       int    `yaml:"id" json:"id"`
	Src      string `yaml:"src" json:"src"`
	Alt      string `yaml:"alt" json:"alt"`
	Category string `yaml:"category" json:"category"`
}

// PhotosRequest filters the gallery.
type PhotosRequest struct {
	Category string `form:"category" binding:"omitempty,oneof=Exterior Interior Kitchen Outdoor Views"`
}

// ListingResponse is the public listing payload.
type ListingResponse struct {
	Listing
	FullAddress    string `json:"fullAddress"`
	PriceFormatted string `json:"priceFormatted"`
	SqftFormatted  string `json:"sqftFormatted"`
	DaysOnMarket   int    `json:"daysOnMarket"`
}

// PhotosResponse is the gallery payload.
type PhotosResponse struct {
	Items      []Photo        `json:"items"`
	Categories map[string]int `json:"categories"`
}
