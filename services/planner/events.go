package planner

import (
	"errors"

	"gorm.io/gorm"

	"shiori-planner/apperrors"
	eventModel "shiori-planner/models/event"
	"shiori-planner/services/ordering"
	eventTypes "shiori-planner/types/event"
)

// ListEvents returns the itinerary's events in display order: by date
// (undated last), then start time, then order index.
func (s *Service) ListEvents(itineraryID string) ([]eventModel.Event, error) {
	var events []eventModel.Event
	if err := s.DB.
		Where("itinerary_id = ?", itineraryID).
		Order("order_index ASC").
		Find(&events).Error; err != nil {
		return nil, apperrors.Storage("failed to list events", err)
	}
	SortEventsForDisplay(events)
	return events, nil
}

// GetEvent fetches a single event by ID.
func (s *Service) GetEvent(id string) (*eventModel.Event, error) {
	var ev eventModel.Event
	if err := s.DB.First(&ev, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("event %s not found", id)
		}
		return nil, apperrors.Storage("failed to load event", err)
	}
	return &ev, nil
}

// CreateEvent appends a new event to the itinerary. The order index is
// assigned from the current max among siblings inside the same transaction
// as the insert.
func (s *Service) CreateEvent(req eventTypes.CreateEventRequest) (*eventModel.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.itineraryExists(req.ItineraryID); err != nil {
		return nil, err
	}

	ev := eventModel.Event{
		ID:          s.IDs.NewID(),
		ItineraryID: req.ItineraryID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		EventDate:   req.EventDate,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Icon:        req.Icon,
		Link:        req.Link,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		next, err := ordering.NextIndex(tx, "events", "itinerary_id", req.ItineraryID)
		if err != nil {
			return err
		}
		ev.OrderIndex = next
		return tx.Create(&ev).Error
	})
	if err != nil {
		return nil, apperrors.Storage("failed to create event", err)
	}
	return &ev, nil
}

// UpdateEvent applies a partial update; omitted fields keep their previous
// value, present-but-empty optional fields are cleared.
func (s *Service) UpdateEvent(id string, req eventTypes.UpdateEventRequest) (*eventModel.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.GetEvent(id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	setOptionalString(updates, "description", req.Description)
	setOptionalString(updates, "location", req.Location)
	setOptionalString(updates, "event_date", req.EventDate)
	setOptionalString(updates, "start_time", req.StartTime)
	setOptionalString(updates, "end_time", req.EndTime)
	setOptionalString(updates, "icon", req.Icon)
	setOptionalString(updates, "link", req.Link)
	if req.Latitude != nil && req.Longitude != nil {
		updates["latitude"] = *req.Latitude
		updates["longitude"] = *req.Longitude
	}

	if len(updates) > 0 {
		if err := s.DB.Model(&eventModel.Event{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, apperrors.Storage("failed to update event", err)
		}
	}
	return s.GetEvent(id)
}

// DeleteEvent removes the event. The store cascades deletion of its
// reservation and nulls the event link on any budget that referenced it.
func (s *Service) DeleteEvent(id string) error {
	result := s.DB.Delete(&eventModel.Event{}, "id = ?", id)
	if result.Error != nil {
		return apperrors.Storage("failed to delete event", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("event %s not found", id)
	}
	return nil
}

// ReorderEvents applies the explicit ordering and returns the siblings in
// their new order.
func (s *Service) ReorderEvents(req eventTypes.ReorderEventsRequest) ([]eventModel.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.itineraryExists(req.ItineraryID); err != nil {
		return nil, err
	}
	if err := ordering.Reorder(s.DB, "events", "itinerary_id", req.ItineraryID, req.EventIDs); err != nil {
		return nil, err
	}

	var events []eventModel.Event
	if err := s.DB.
		Where("itinerary_id = ?", req.ItineraryID).
		Order("order_index ASC").
		Find(&events).Error; err != nil {
		return nil, apperrors.Storage("failed to list reordered events", err)
	}
	return events, nil
}
