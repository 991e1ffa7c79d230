package models

// Event categories: anything outside this enum collapses to "other".
const (
	EventCategorySports   = "sports"
	EventCategoryCultural = "cultural"
	EventCategoryOther    = "other"
)

// Event is a calendar entry in the city guide.
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Location    string `json:"location"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url,omitempty"`
	Featured    bool   `json:"featured"`
}
