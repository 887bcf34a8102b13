package expense

// Expense is an actual recorded spend against a budget. ItineraryID is
// denormalized so itinerary-level listings and cascades do not have to go
// through the budget table.
type Expense struct {
	ID            string  `gorm:"type:varchar(36);primaryKey" json:"id"`
	BudgetID      string  `gorm:"type:varchar(36);not null;index" json:"budgetId"`
	ItineraryID   string  `gorm:"type:varchar(36);not null;index" json:"itineraryId"`
	Date          string  `gorm:"type:varchar(20);not null" json:"date"` // YYYY-MM-DD
	Amount        float64 `gorm:"not null;default:0" json:"amount"`
	Description   string  `gorm:"type:varchar(255);not null" json:"description"`
	Category      string  `gorm:"type:varchar(50);not null" json:"category"`
	PaymentMethod *string `gorm:"type:varchar(50)" json:"paymentMethod,omitempty"`
	ReceiptImage  *string `gorm:"type:text" json:"receiptImage,omitempty"`
	CreatedAt     int64   `gorm:"not null" json:"createdAt"` // epoch millis, immutable
}

func (Expense) TableName() string {
	return "expenses"
}
