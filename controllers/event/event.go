package event

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shiori-planner/apperrors"
	"shiori-planner/idgen"
	"shiori-planner/logger"
	"shiori-planner/services/planner"
	"shiori-planner/types"
	eventTypes "shiori-planner/types/event"
)

// EventController handles event-related HTTP requests
type EventController struct {
	Planner *planner.Service
}

// NewEventController creates a new event controller
func NewEventController(db *gorm.DB, ids idgen.Generator) *EventController {
	return &EventController{
		Planner: planner.NewService(db, ids),
	}
}

func (ec *EventController) sendError(c *fiber.Ctx, err error) error {
	status := apperrors.HTTPStatus(err)
	if status == fiber.StatusInternalServerError {
		logger.Error("Event request failed", err)
	}
	return c.Status(status).JSON(types.ApiResponse{
		Status:  status,
		Message: err.Error(),
		Data:    nil,
	})
}

// ListEvents returns an itinerary's events in display order
func (ec *EventController) ListEvents(c *fiber.Ctx) error {
	itineraryID := c.Query("itineraryId")
	if itineraryID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "itineraryId query parameter is required",
			Data:    nil,
		})
	}

	events, err := ec.Planner.ListEvents(itineraryID)
	if err != nil {
		return ec.sendError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Events retrieved successfully",
		Data:    events,
	})
}

// GetEvent returns a single event by ID
func (ec *EventController) GetEvent(c *fiber.Ctx) error {
	ev, err := ec.Planner.GetEvent(c.Params("id"))
	if err != nil {
		return ec.sendError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Event retrieved successfully",
		Data:    ev,
	})
}

// CreateEvent appends a new event to an itinerary
func (ec *EventController) CreateEvent(c *fiber.Ctx) error {
	var req eventTypes.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}
	if err := req.Validate(); err != nil {
		return ec.sendError(c, err)
	}

	ev, err := ec.Planner.CreateEvent(req)
	if err != nil {
		return ec.sendError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Event created successfully",
		Data:    ev,
	})
}

// UpdateEvent applies a partial update to an event
func (ec *EventController) UpdateEvent(c *fiber.Ctx) error {
	var req eventTypes.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}
	if err := req.Validate(); err != nil {
		return ec.sendError(c, err)
	}

	ev, err := ec.Planner.UpdateEvent(c.Params("id"), req)
	if err != nil {
		return ec.sendError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Event updated successfully",
		Data:    ev,
	})
}

// DeleteEvent removes an event
func (ec *EventController) DeleteEvent(c *fiber.Ctx) error {
	if err := ec.Planner.DeleteEvent(c.Params("id")); err != nil {
		return ec.sendError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Event deleted successfully",
		Data:    nil,
	})
}

// ReorderEvents rewrites the order of an itinerary's events
func (ec *EventController) ReorderEvents(c *fiber.Ctx) error {
	var req eventTypes.ReorderEventsRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}
	if err := req.Validate(); err != nil {
		return ec.sendError(c, err)
	}

	events, err := ec.Planner.ReorderEvents(req)
	if err != nil {
		return ec.sendError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Events reordered successfully",
		Data:    events,
	})
}
