package itinerary

// Itinerary is the root planning document for one trip. It owns events,
// packing items, budgets, expenses and (through events) reservations;
// deleting an itinerary cascades to all of them.
type Itinerary struct {
	ID          string  `gorm:"type:varchar(36);primaryKey" json:"id"`
	Title       string  `gorm:"type:varchar(255);not null" json:"title"`
	CreatedAt   int64   `gorm:"not null" json:"createdAt"` // epoch millis, immutable
	TotalBudget float64 `gorm:"not null;default:0" json:"totalBudget"`
	Currency    string  `gorm:"type:varchar(10);not null;default:'JPY'" json:"currency"`
}

func (Itinerary) TableName() string {
	return "itineraries"
}

// DefaultCurrency is applied when an itinerary is created or imported
// without an explicit currency.
const DefaultCurrency = "JPY"
