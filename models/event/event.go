package event

// Event is a single dated/timed activity within an itinerary.
//
// StartTime and EndTime are stored as given by the client: either "HH:MM"
// or an epoch-millis value rendered as a string. Both representations are
// accepted on read; normalization happens in utils when ordering.
// Latitude/Longitude are populated together by geocoding or not at all.
type Event struct {
	ID          string   `gorm:"type:varchar(36);primaryKey" json:"id"`
	ItineraryID string   `gorm:"type:varchar(36);not null;index" json:"itineraryId"`
	Title       string   `gorm:"type:varchar(255);not null" json:"title"`
	Description *string  `gorm:"type:text" json:"description,omitempty"`
	Location    *string  `gorm:"type:text" json:"location,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	EventDate   *string  `gorm:"type:varchar(20)" json:"eventDate,omitempty"` // YYYY-MM-DD
	StartTime   *string  `gorm:"type:varchar(20)" json:"startTime,omitempty"`
	EndTime     *string  `gorm:"type:varchar(20)" json:"endTime,omitempty"`
	Icon        *string  `gorm:"type:varchar(50)" json:"icon,omitempty"`
	Link        *string  `gorm:"type:text" json:"link,omitempty"`
	OrderIndex  int      `gorm:"not null" json:"orderIndex"`
}

func (Event) TableName() string {
	return "events"
}
