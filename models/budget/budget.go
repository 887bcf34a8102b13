package budget

// Budget is a planned spending envelope, optionally tied to one event.
// EventID is nulled (not cascaded) when the linked event is deleted.
type Budget struct {
	ID          string  `gorm:"type:varchar(36);primaryKey" json:"id"`
	ItineraryID string  `gorm:"type:varchar(36);not null;index" json:"itineraryId"`
	Category    string  `gorm:"type:varchar(50);not null" json:"category"`
	Name        string  `gorm:"type:varchar(255);not null" json:"name"`
	Amount      float64 `gorm:"not null;default:0" json:"amount"`
	Notes       *string `gorm:"type:text" json:"notes,omitempty"`
	EventID     *string `gorm:"type:varchar(36);index" json:"eventId,omitempty"`
	OrderIndex  int     `gorm:"not null" json:"orderIndex"`
}

func (Budget) TableName() string {
	return "budgets"
}
