package packing

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shiori-planner/apperrors"
	"shiori-planner/idgen"
	"shiori-planner/logger"
	"shiori-planner/services/planner"
	"shiori-planner/services/suggest"
	"shiori-planner/types"
	packingTypes "shiori-planner/types/packing"
)

// PackingController handles packing-list HTTP requests
type PackingController struct {
	Planner *planner.Service
	Suggest *suggest.Service
}

// NewPackingController creates a new packing controller
func NewPackingController(db *gorm.DB, ids idgen.Generator) *PackingController {
	return &PackingController{
		Planner: planner.NewService(db, ids),
		Suggest: suggest.NewService(db),
	}
}

func (pc *PackingController) sendError(c *fiber.Ctx, err error) error {
	status := apperrors.HTTPStatus(err)
	if status == fiber.StatusInternalServerError {
		logger.Error("Packing request failed", err)
	}
	return c.Status(status).JSON(types.ApiResponse{
		Status:  status,
		Message: err.Error(),
		Data:    nil,
	})
}

// ListPackingItems returns an itinerary's packing items in list order
func (pc *PackingController) ListPackingItems(c *fiber.Ctx) error {
	itineraryID := c.Query("itineraryId")
	if itineraryID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "itineraryId query parameter is required",
			Data:    nil,
		})
	}

	items, err := pc.Planner.ListPackingItems(itineraryID)
	if err != nil {
		return pc.sendError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Packing items retrieved successfully",
		Data:    items,
	})
}

// GetPackingItem returns a single packing item by ID
func (pc *PackingController) GetPackingItem(c *fiber.Ctx) error {
	item, err := pc.Planner.GetPackingItem(c.Params("id"))
	if err != nil {
		return pc.sendError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Packing item retrieved successfully",
		Data:    item,
	})
}

// CreatePackingItem appends a new item to an itinerary's packing list
func (pc *PackingController) CreatePackingItem(c *fiber.Ctx) error {
	var req packingTypes.CreatePackingItemRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}
	if err := req.Validate(); err != nil {
		return pc.sendError(c, err)
	}

	item, err := pc.Planner.CreatePackingItem(req)
	if err != nil {
		return pc.sendError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Packing item created successfully",
		Data:    item,
	})
}

// UpdatePackingItem applies a partial update to a packing item
func (pc *PackingController) UpdatePackingItem(c *fiber.Ctx) error {
	var req packingTypes.UpdatePackingItemRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}
	if err := req.Validate(); err != nil {
		return pc.sendError(c, err)
	}

	item, err := pc.Planner.UpdatePackingItem(c.Params("id"), req)
	if err != nil {
		return pc.sendError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Packing item updated successfully",
		Data:    item,
	})
}

// DeletePackingItem removes a packing item
func (pc *PackingController) DeletePackingItem(c *fiber.Ctx) error {
	if err := pc.Planner.DeletePackingItem(c.Params("id")); err != nil {
		return pc.sendError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Packing item deleted successfully",
		Data:    nil,
	})
}

// ReorderPackingItems rewrites the order of an itinerary's packing list
func (pc *PackingController) ReorderPackingItems(c *fiber.Ctx) error {
	var req packingTypes.ReorderPackingItemsRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}
	if err := req.Validate(); err != nil {
		return pc.sendError(c, err)
	}

	items, err := pc.Planner.ReorderPackingItems(req)
	if err != nil {
		return pc.sendError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Packing items reordered successfully",
		Data:    items,
	})
}

// SuggestPackingItems generates packing suggestions for an itinerary from
// its planned events. Nothing is persisted.
func (pc *PackingController) SuggestPackingItems(c *fiber.Ctx) error {
	itineraryID := c.Query("itineraryId")
	if itineraryID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "itineraryId query parameter is required",
			Data:    nil,
		})
	}

	suggestions, err := pc.Suggest.SuggestPackingItems(c.UserContext(), itineraryID)
	if err != nil {
		logger.Error("Failed to generate packing suggestions", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to generate packing suggestions",
			Data:    nil,
		})
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Packing suggestions generated successfully",
		Data:    suggestions,
	})
}
