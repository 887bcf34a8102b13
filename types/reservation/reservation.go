package reservation

import (
	"shiori-planner/apperrors"
	reservationModel "shiori-planner/models/reservation"
)

// CreateReservationRequest is the payload for attaching a reservation to an
// event. Status defaults to notBooked when omitted.
type CreateReservationRequest struct {
	EventID            string   `json:"eventId" validate:"required"`
	ItineraryID        string   `json:"itineraryId" validate:"required"`
	Type               string   `json:"type" validate:"required"`
	Status             string   `json:"status"`
	ConfirmationNumber *string  `json:"confirmationNumber"`
	Provider           *string  `json:"provider"`
	BookingDate        *string  `json:"bookingDate"`
	Price              *float64 `json:"price"`
	Currency           *string  `json:"currency"`
	Notes              *string  `json:"notes"`
	ContactInfo        *string  `json:"contactInfo"`
	AttachmentUrls     []string `json:"attachmentUrls"`
}

func (r CreateReservationRequest) Validate() error {
	if r.EventID == "" {
		return apperrors.InvalidInput("eventId is required")
	}
	if r.ItineraryID == "" {
		return apperrors.InvalidInput("itineraryId is required")
	}
	if !reservationModel.ReservationType(r.Type).IsValid() {
		return apperrors.InvalidInput("unknown reservation type %q", r.Type)
	}
	if r.Status != "" && !reservationModel.ReservationStatus(r.Status).IsValid() {
		return apperrors.InvalidInput("unknown reservation status %q", r.Status)
	}
	if r.Price != nil && *r.Price < 0 {
		return apperrors.InvalidInput("price cannot be negative")
	}
	return nil
}

// UpdateReservationRequest is a partial update. A nil field is left
// unchanged; a present-but-empty optional field is cleared to NULL.
// AttachmentUrls follows the same rule through its pointer-to-slice.
type UpdateReservationRequest struct {
	Type               *string   `json:"type"`
	Status             *string   `json:"status"`
	ConfirmationNumber *string   `json:"confirmationNumber"`
	Provider           *string   `json:"provider"`
	BookingDate        *string   `json:"bookingDate"`
	Price              *float64  `json:"price"`
	Currency           *string   `json:"currency"`
	Notes              *string   `json:"notes"`
	ContactInfo        *string   `json:"contactInfo"`
	AttachmentUrls     *[]string `json:"attachmentUrls"`
}

func (r UpdateReservationRequest) Validate() error {
	if r.Type != nil && !reservationModel.ReservationType(*r.Type).IsValid() {
		return apperrors.InvalidInput("unknown reservation type %q", *r.Type)
	}
	if r.Status != nil && !reservationModel.ReservationStatus(*r.Status).IsValid() {
		return apperrors.InvalidInput("unknown reservation status %q", *r.Status)
	}
	if r.Price != nil && *r.Price < 0 {
		return apperrors.InvalidInput("price cannot be negative")
	}
	return nil
}
