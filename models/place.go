package models

// Place categories form a closed set: free-text spreadsheet input is always
// coerced into one of these values before a Place is constructed.
const (
	CategoryCafe       = "cafe"
	CategoryRestaurant = "restaurant"
	CategoryHotel      = "hotel"
	CategoryBar        = "bar"
	CategoryMuseum     = "museum"
	CategoryShop       = "shop"
	CategoryPark       = "park"
	CategoryService    = "service"
	CategoryOther      = "other"
)

// Place is a single point-of-interest record in the city guide.
type Place struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Address     string   `json:"address"`
	Featured    bool     `json:"featured"`
	City        string   `json:"city,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	Website     string   `json:"website,omitempty"`
	Instagram   string   `json:"instagram,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Description string   `json:"description,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Hours       string   `json:"hours,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// HasCoordinates reports whether the place carries a usable location. A
// missing coordinate is never defaulted to 0, which would be a false precise
// location in the Gulf of Guinea.
func (p *Place) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil
}
