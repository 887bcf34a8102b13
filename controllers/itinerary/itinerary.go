package itinerary

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shiori-planner/apperrors"
	"shiori-planner/idgen"
	"shiori-planner/logger"
	"shiori-planner/services/planner"
	"shiori-planner/services/transfer"
	"shiori-planner/types"
	itineraryTypes "shiori-planner/types/itinerary"
	transferTypes "shiori-planner/types/transfer"
)

// ItineraryController handles itinerary-related HTTP requests
type ItineraryController struct {
	Planner  *planner.Service
	Transfer *transfer.Service
}

// NewItineraryController creates a new itinerary controller
func NewItineraryController(db *gorm.DB, ids idgen.Generator) *ItineraryController {
	return &ItineraryController{
		Planner:  planner.NewService(db, ids),
		Transfer: transfer.NewService(db, ids),
	}
}

func (ic *ItineraryController) sendError(c *fiber.Ctx, err error) error {
	status := apperrors.HTTPStatus(err)
	if status == fiber.StatusInternalServerError {
		logger.Error("Itinerary request failed", err)
	}
	return c.Status(status).JSON(types.ApiResponse{
		Status:  status,
		Message: err.Error(),
		Data:    nil,
	})
}

// ListItineraries returns all itineraries, newest first
func (ic *ItineraryController) ListItineraries(c *fiber.Ctx) error {
	itineraries, err := ic.Planner.ListItineraries()
	if err != nil {
		return ic.sendError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Itineraries retrieved successfully",
		Data:    itineraries,
	})
}

// GetItinerary returns a single itinerary by ID
func (ic *ItineraryController) GetItinerary(c *fiber.Ctx) error {
	itin, err := ic.Planner.GetItinerary(c.Params("id"))
	if err != nil {
		return ic.sendError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Itinerary retrieved successfully",
		Data:    itin,
	})
}

// CreateItinerary creates a new itinerary
func (ic *ItineraryController) CreateItinerary(c *fiber.Ctx) error {
	var req itineraryTypes.CreateItineraryRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}
	if err := req.Validate(); err != nil {
		return ic.sendError(c, err)
	}

	itin, err := ic.Planner.CreateItinerary(req)
	if err != nil {
		return ic.sendError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Itinerary created successfully",
		Data:    itin,
	})
}

// UpdateItinerary applies a partial update to an itinerary
func (ic *ItineraryController) UpdateItinerary(c *fiber.Ctx) error {
	var req itineraryTypes.UpdateItineraryRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}
	if err := req.Validate(); err != nil {
		return ic.sendError(c, err)
	}

	itin, err := ic.Planner.UpdateItinerary(c.Params("id"), req)
	if err != nil {
		return ic.sendError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Itinerary updated successfully",
		Data:    itin,
	})
}

// DeleteItinerary removes an itinerary and all of its children
func (ic *ItineraryController) DeleteItinerary(c *fiber.Ctx) error {
	if err := ic.Planner.DeleteItinerary(c.Params("id")); err != nil {
		return ic.sendError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Itinerary deleted successfully",
		Data:    nil,
	})
}

// GetItinerarySummary returns the itinerary with its events, packing items
// and per-budget spending totals
func (ic *ItineraryController) GetItinerarySummary(c *fiber.Ctx) error {
	summary, err := ic.Planner.GetItinerarySummary(c.Params("id"))
	if err != nil {
		return ic.sendError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Itinerary summary retrieved successfully",
		Data:    summary,
	})
}

// SetBudgetEnvelope sets the itinerary's total budget and currency
func (ic *ItineraryController) SetBudgetEnvelope(c *fiber.Ctx) error {
	var req itineraryTypes.BudgetEnvelopeRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}
	if err := req.Validate(); err != nil {
		return ic.sendError(c, err)
	}

	itin, err := ic.Planner.SetBudgetEnvelope(c.Params("id"), req)
	if err != nil {
		return ic.sendError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Budget envelope updated successfully",
		Data:    itin,
	})
}

// ExportItinerary serializes an itinerary and all its children into one
// self-contained document
func (ic *ItineraryController) ExportItinerary(c *fiber.Ctx) error {
	doc, err := ic.Transfer.Export(c.Params("id"))
	if err != nil {
		return ic.sendError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Itinerary exported successfully",
		Data:    doc,
	})
}

// ImportItinerary creates a new itinerary from a transfer document. All
// identifiers are reassigned, so importing never collides with existing data.
func (ic *ItineraryController) ImportItinerary(c *fiber.Ctx) error {
	var doc transferTypes.Document
	if err := c.BodyParser(&doc); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	newID, err := ic.Transfer.Import(doc)
	if err != nil {
		return ic.sendError(c, err)
	}

	itin, err := ic.Planner.GetItinerary(newID)
	if err != nil {
		return ic.sendError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Itinerary imported successfully",
		Data:    itin,
	})
}
