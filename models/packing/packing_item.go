package packing

// PackingItem is a checklist entry for items to bring on a trip.
type PackingItem struct {
	ID          string  `gorm:"type:varchar(36);primaryKey" json:"id"`
	ItineraryID string  `gorm:"type:varchar(36);not null;index" json:"itineraryId"`
	Name        string  `gorm:"type:varchar(255);not null" json:"name"`
	Category    string  `gorm:"type:varchar(50);not null" json:"category"`
	IsPacked    bool    `gorm:"not null;default:false" json:"isPacked"`
	Quantity    int     `gorm:"not null;default:1" json:"quantity"`
	Notes       *string `gorm:"type:text" json:"notes,omitempty"`
	IsEssential bool    `gorm:"not null;default:false" json:"isEssential"`
	OrderIndex  int     `gorm:"not null" json:"orderIndex"`
}

func (PackingItem) TableName() string {
	return "packing_items"
}
