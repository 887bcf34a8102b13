package planner

import (
	"errors"

	"gorm.io/gorm"

	"shiori-planner/apperrors"
	reservationModel "shiori-planner/models/reservation"
	reservationTypes "shiori-planner/types/reservation"
)

// ListReservations returns reservations scoped by itinerary and/or event.
// At least one scope must be given.
func (s *Service) ListReservations(itineraryID, eventID string) ([]reservationModel.Reservation, error) {
	if itineraryID == "" && eventID == "" {
		return nil, apperrors.InvalidInput("itineraryId or eventId is required")
	}
	query := s.DB.Model(&reservationModel.Reservation{})
	if itineraryID != "" {
		query = query.Where("itinerary_id = ?", itineraryID)
	}
	if eventID != "" {
		query = query.Where("event_id = ?", eventID)
	}
	var reservations []reservationModel.Reservation
	if err := query.Order("created_at ASC").Find(&reservations).Error; err != nil {
		return nil, apperrors.Storage("failed to list reservations", err)
	}
	return reservations, nil
}

// GetReservation fetches a single reservation by ID.
func (s *Service) GetReservation(id string) (*reservationModel.Reservation, error) {
	var r reservationModel.Reservation
	if err := s.DB.First(&r, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("reservation %s not found", id)
		}
		return nil, apperrors.Storage("failed to load reservation", err)
	}
	return &r, nil
}

// CreateReservation attaches a booking record to an event. An event can
// hold at most one reservation; a second create fails with a conflict.
func (s *Service) CreateReservation(req reservationTypes.CreateReservationRequest) (*reservationModel.Reservation, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.itineraryExists(req.ItineraryID); err != nil {
		return nil, err
	}
	if err := s.eventBelongsToItinerary(req.EventID, req.ItineraryID); err != nil {
		return nil, err
	}

	var existing int64
	if err := s.DB.Model(&reservationModel.Reservation{}).Where("event_id = ?", req.EventID).Count(&existing).Error; err != nil {
		return nil, apperrors.Storage("failed to check existing reservation", err)
	}
	if existing > 0 {
		return nil, apperrors.Conflict("event %s already has a reservation", req.EventID)
	}

	status := reservationModel.ReservationStatus(req.Status)
	if req.Status == "" {
		status = reservationModel.StatusNotBooked
	}

	now := s.nowMillis()
	r := reservationModel.Reservation{
		ID:                 s.IDs.NewID(),
		EventID:            req.EventID,
		ItineraryID:        req.ItineraryID,
		Type:               reservationModel.ReservationType(req.Type),
		Status:             status,
		ConfirmationNumber: req.ConfirmationNumber,
		Provider:           req.Provider,
		BookingDate:        req.BookingDate,
		Price:              req.Price,
		Currency:           req.Currency,
		Notes:              req.Notes,
		ContactInfo:        req.ContactInfo,
		AttachmentUrls:     reservationModel.EncodeAttachments(req.AttachmentUrls),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.DB.Create(&r).Error; err != nil {
		// Unique constraint on event_id backstops the check above.
		return nil, apperrors.Storage("failed to create reservation", err)
	}
	return &r, nil
}

// UpdateReservation applies a partial update and refreshes updatedAt.
// Omitted fields keep their previous value; present-but-empty optional
// fields are cleared to NULL.
func (s *Service) UpdateReservation(id string, req reservationTypes.UpdateReservationRequest) (*reservationModel.Reservation, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.GetReservation(id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"updated_at": s.nowMillis()}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	setOptionalString(updates, "confirmation_number", req.ConfirmationNumber)
	setOptionalString(updates, "provider", req.Provider)
	setOptionalString(updates, "booking_date", req.BookingDate)
	setOptionalString(updates, "currency", req.Currency)
	setOptionalString(updates, "notes", req.Notes)
	setOptionalString(updates, "contact_info", req.ContactInfo)
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.AttachmentUrls != nil {
		if encoded := reservationModel.EncodeAttachments(*req.AttachmentUrls); encoded != nil {
			updates["attachment_urls"] = *encoded
		} else {
			updates["attachment_urls"] = nil
		}
	}

	if err := s.DB.Model(&reservationModel.Reservation{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, apperrors.Storage("failed to update reservation", err)
	}
	return s.GetReservation(id)
}

// DeleteReservation removes the reservation.
func (s *Service) DeleteReservation(id string) error {
	result := s.DB.Delete(&reservationModel.Reservation{}, "id = ?", id)
	if result.Error != nil {
		return apperrors.Storage("failed to delete reservation", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("reservation %s not found", id)
	}
	return nil
}
