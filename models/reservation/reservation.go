package reservation

import "encoding/json"

// Reservation is a travel-provider booking record attached to exactly one
// event. The event_id column carries a UNIQUE constraint so a second
// reservation for the same event is rejected by the store as well as by the
// service layer.
//
// AttachmentUrls is persisted as a single JSON-encoded text column.
type Reservation struct {
	ID                 string            `gorm:"type:varchar(36);primaryKey" json:"id"`
	EventID            string            `gorm:"type:varchar(36);not null;uniqueIndex" json:"eventId"`
	ItineraryID        string            `gorm:"type:varchar(36);not null;index" json:"itineraryId"`
	Type               ReservationType   `gorm:"type:varchar(20);not null" json:"type"`
	Status             ReservationStatus `gorm:"type:varchar(20);not null" json:"status"`
	ConfirmationNumber *string           `gorm:"type:varchar(255)" json:"confirmationNumber,omitempty"`
	Provider           *string           `gorm:"type:varchar(255)" json:"provider,omitempty"`
	BookingDate        *string           `gorm:"type:varchar(20)" json:"bookingDate,omitempty"`
	Price              *float64          `json:"price,omitempty"`
	Currency           *string           `gorm:"type:varchar(10)" json:"currency,omitempty"`
	Notes              *string           `gorm:"type:text" json:"notes,omitempty"`
	ContactInfo        *string           `gorm:"type:text" json:"contactInfo,omitempty"`
	AttachmentUrls     *string           `gorm:"column:attachment_urls;type:text" json:"-"`
	CreatedAt          int64             `gorm:"not null" json:"createdAt"` // epoch millis
	UpdatedAt          int64             `gorm:"not null" json:"updatedAt"` // epoch millis, touched on every mutation
}

func (Reservation) TableName() string {
	return "reservations"
}

// Attachments decodes the stored attachment_urls blob. A missing or broken
// blob decodes to an empty list.
func (r *Reservation) Attachments() []string {
	if r.AttachmentUrls == nil || *r.AttachmentUrls == "" {
		return []string{}
	}
	var urls []string
	if err := json.Unmarshal([]byte(*r.AttachmentUrls), &urls); err != nil {
		return []string{}
	}
	return urls
}

// EncodeAttachments serializes a URL list into the persisted blob form.
// An empty list encodes to nil so the column stays NULL.
func EncodeAttachments(urls []string) *string {
	if len(urls) == 0 {
		return nil
	}
	encoded, err := json.Marshal(urls)
	if err != nil {
		return nil
	}
	s := string(encoded)
	return &s
}

// MarshalJSON renders the reservation with the decoded attachment list so
// API consumers never see the raw blob.
func (r Reservation) MarshalJSON() ([]byte, error) {
	type alias Reservation
	return json.Marshal(struct {
		alias
		AttachmentUrls []string `json:"attachmentUrls"`
	}{
		alias:          alias(r),
		AttachmentUrls: (&r).Attachments(),
	})
}
