package event

import (
	"strings"

	"shiori-planner/apperrors"
	"shiori-planner/constants"
	"shiori-planner/utils"
)

// CreateEventRequest is the payload for creating an event. Optional fields
// left nil are stored as NULL.
type CreateEventRequest struct {
	ItineraryID string   `json:"itineraryId" validate:"required"`
	Title       string   `json:"title" validate:"required,min=1,max=255"`
	Description *string  `json:"description"`
	Location    *string  `json:"location"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	EventDate   *string  `json:"eventDate"`
	StartTime   *string  `json:"startTime"`
	EndTime     *string  `json:"endTime"`
	Icon        *string  `json:"icon"`
	Link        *string  `json:"link"`
}

func (r CreateEventRequest) Validate() error {
	if r.ItineraryID == "" {
		return apperrors.InvalidInput("itineraryId is required")
	}
	if strings.TrimSpace(r.Title) == "" {
		return apperrors.InvalidInput("title is required")
	}
	return validateOptionalFields(r.Latitude, r.Longitude, r.EventDate, r.StartTime, r.EndTime, r.Icon)
}

// UpdateEventRequest is a partial update: nil fields are left unchanged,
// present-but-empty optional fields are cleared to NULL.
type UpdateEventRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Location    *string  `json:"location"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	EventDate   *string  `json:"eventDate"`
	StartTime   *string  `json:"startTime"`
	EndTime     *string  `json:"endTime"`
	Icon        *string  `json:"icon"`
	Link        *string  `json:"link"`
}

func (r UpdateEventRequest) Validate() error {
	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		return apperrors.InvalidInput("title cannot be empty")
	}
	return validateOptionalFields(r.Latitude, r.Longitude, r.EventDate, r.StartTime, r.EndTime, r.Icon)
}

func validateOptionalFields(lat, lon *float64, eventDate, startTime, endTime, icon *string) error {
	if (lat == nil) != (lon == nil) {
		return apperrors.InvalidInput("latitude and longitude must be provided together")
	}
	if eventDate != nil && *eventDate != "" && !utils.IsCalendarDate(*eventDate) {
		return apperrors.InvalidInput("eventDate %q is not a valid calendar date", *eventDate)
	}
	for _, t := range []*string{startTime, endTime} {
		if t != nil && *t != "" {
			if _, ok := utils.NormalizeTimeOfDay(*t); !ok {
				return apperrors.InvalidInput("time %q must be HH:MM or epoch millis", *t)
			}
		}
	}
	if icon != nil && *icon != "" && !constants.IsValidEventIcon(*icon) {
		return apperrors.InvalidInput("unknown icon %q", *icon)
	}
	return nil
}

// ReorderEventsRequest carries the explicit new ordering of an itinerary's
// events. A subset of the siblings is allowed.
type ReorderEventsRequest struct {
	ItineraryID string   `json:"itineraryId" validate:"required"`
	EventIDs    []string `json:"eventIds" validate:"required"`
}

func (r ReorderEventsRequest) Validate() error {
	if r.ItineraryID == "" {
		return apperrors.InvalidInput("itineraryId is required")
	}
	if r.EventIDs == nil {
		return apperrors.InvalidInput("eventIds array is required")
	}
	return nil
}
