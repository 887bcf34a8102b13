package budget

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shiori-planner/apperrors"
	"shiori-planner/idgen"
	"shiori-planner/logger"
	"shiori-planner/services/planner"
	"shiori-planner/types"
	budgetTypes "shiori-planner/types/budget"
)

// BudgetController handles budget-related HTTP requests
type BudgetController struct {
	Planner *planner.Service
}

// NewBudgetController creates a new budget controller
func NewBudgetController(db *gorm.DB, ids idgen.Generator) *BudgetController {
	return &BudgetController{
		Planner: planner.NewService(db, ids),
	}
}

func (bc *BudgetController) sendError(c *fiber.Ctx, err error) error {
	status := apperrors.HTTPStatus(err)
	if status == fiber.StatusInternalServerError {
		logger.Error("Budget request failed", err)
	}
	return c.Status(status).JSON(types.ApiResponse{
		Status:  status,
		Message: err.Error(),
		Data:    nil,
	})
}

// ListBudgets returns an itinerary's budgets in list order
func (bc *BudgetController) ListBudgets(c *fiber.Ctx) error {
	itineraryID := c.Query("itineraryId")
	if itineraryID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "itineraryId query parameter is required",
			Data:    nil,
		})
	}

	budgets, err := bc.Planner.ListBudgets(itineraryID)
	if err != nil {
		return bc.sendError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Budgets retrieved successfully",
		Data:    budgets,
	})
}

// GetBudget returns a single budget by ID
func (bc *BudgetController) GetBudget(c *fiber.Ctx) error {
	b, err := bc.Planner.GetBudget(c.Params("id"))
	if err != nil {
		return bc.sendError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Budget retrieved successfully",
		Data:    b,
	})
}

// CreateBudget adds a budget line to an itinerary
func (bc *BudgetController) CreateBudget(c *fiber.Ctx) error {
	var req budgetTypes.CreateBudgetRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}
	if err := req.Validate(); err != nil {
		return bc.sendError(c, err)
	}

	b, err := bc.Planner.CreateBudget(req)
	if err != nil {
		return bc.sendError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Budget created successfully",
		Data:    b,
	})
}

// UpdateBudget applies a partial update to a budget
func (bc *BudgetController) UpdateBudget(c *fiber.Ctx) error {
	var req budgetTypes.UpdateBudgetRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}
	if err := req.Validate(); err != nil {
		return bc.sendError(c, err)
	}

	b, err := bc.Planner.UpdateBudget(c.Params("id"), req)
	if err != nil {
		return bc.sendError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Budget updated successfully",
		Data:    b,
	})
}

// DeleteBudget removes a budget and its expenses
func (bc *BudgetController) DeleteBudget(c *fiber.Ctx) error {
	if err := bc.Planner.DeleteBudget(c.Params("id")); err != nil {
		return bc.sendError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Budget deleted successfully",
		Data:    nil,
	})
}
