package reservation

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shiori-planner/apperrors"
	"shiori-planner/idgen"
	"shiori-planner/logger"
	"shiori-planner/services/planner"
	"shiori-planner/types"
	reservationTypes "shiori-planner/types/reservation"
)

// ReservationController handles reservation-related HTTP requests
type ReservationController struct {
	Planner *planner.Service
}

// NewReservationController creates a new reservation controller
func NewReservationController(db *gorm.DB, ids idgen.Generator) *ReservationController {
	return &ReservationController{
		Planner: planner.NewService(db, ids),
	}
}

func (rc *ReservationController) sendError(c *fiber.Ctx, err error) error {
	status := apperrors.HTTPStatus(err)
	if status == fiber.StatusInternalServerError {
		logger.Error("Reservation request failed", err)
	}
	return c.Status(status).JSON(types.ApiResponse{
		Status:  status,
		Message: err.Error(),
		Data:    nil,
	})
}

// ListReservations returns reservations scoped by itinerary or event.
// At least one scope is required.
func (rc *ReservationController) ListReservations(c *fiber.Ctx) error {
	reservations, err := rc.Planner.ListReservations(c.Query("itineraryId"), c.Query("eventId"))
	if err != nil {
		return rc.sendError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Reservations retrieved successfully",
		Data:    reservations,
	})
}

// GetReservation returns a single reservation by ID
func (rc *ReservationController) GetReservation(c *fiber.Ctx) error {
	res, err := rc.Planner.GetReservation(c.Params("id"))
	if err != nil {
		return rc.sendError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Reservation retrieved successfully",
		Data:    res,
	})
}

// CreateReservation attaches a reservation to an event. An event holds at
// most one reservation; a second create is rejected as a conflict.
func (rc *ReservationController) CreateReservation(c *fiber.Ctx) error {
	var req reservationTypes.CreateReservationRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}
	if err := req.Validate(); err != nil {
		return rc.sendError(c, err)
	}

	res, err := rc.Planner.CreateReservation(req)
	if err != nil {
		return rc.sendError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Reservation created successfully",
		Data:    res,
	})
}

// UpdateReservation applies a partial update to a reservation
func (rc *ReservationController) UpdateReservation(c *fiber.Ctx) error {
	var req reservationTypes.UpdateReservationRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}
	if err := req.Validate(); err != nil {
		return rc.sendError(c, err)
	}

	res, err := rc.Planner.UpdateReservation(c.Params("id"), req)
	if err != nil {
		return rc.sendError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Reservation updated successfully",
		Data:    res,
	})
}

// DeleteReservation removes a reservation
func (rc *ReservationController) DeleteReservation(c *fiber.Ctx) error {
	if err := rc.Planner.DeleteReservation(c.Params("id")); err != nil {
		return rc.sendError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Reservation deleted successfully",
		Data:    nil,
	})
}
