package expense

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shiori-planner/apperrors"
	"shiori-planner/idgen"
	"shiori-planner/logger"
	"shiori-planner/services/planner"
	"shiori-planner/types"
	expenseTypes "shiori-planner/types/expense"
)

// ExpenseController handles expense-related HTTP requests
type ExpenseController struct {
	Planner *planner.Service
}

// NewExpenseController creates a new expense controller
func NewExpenseController(db *gorm.DB, ids idgen.Generator) *ExpenseController {
	return &ExpenseController{
		Planner: planner.NewService(db, ids),
	}
}

func (xc *ExpenseController) sendError(c *fiber.Ctx, err error) error {
	status := apperrors.HTTPStatus(err)
	if status == fiber.StatusInternalServerError {
		logger.Error("Expense request failed", err)
	}
	return c.Status(status).JSON(types.ApiResponse{
		Status:  status,
		Message: err.Error(),
		Data:    nil,
	})
}

// ListExpenses returns expenses scoped to an itinerary, optionally narrowed
// to a single budget
func (xc *ExpenseController) ListExpenses(c *fiber.Ctx) error {
	itineraryID := c.Query("itineraryId")
	if itineraryID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "itineraryId query parameter is required",
			Data:    nil,
		})
	}

	expenses, err := xc.Planner.ListExpenses(itineraryID, c.Query("budgetId"))
	if err != nil {
		return xc.sendError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Expenses retrieved successfully",
		Data:    expenses,
	})
}

// GetExpense returns a single expense by ID
func (xc *ExpenseController) GetExpense(c *fiber.Ctx) error {
	exp, err := xc.Planner.GetExpense(c.Params("id"))
	if err != nil {
		return xc.sendError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Expense retrieved successfully",
		Data:    exp,
	})
}

// CreateExpense records a new expense against a budget
func (xc *ExpenseController) CreateExpense(c *fiber.Ctx) error {
	var req expenseTypes.CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}
	if err := req.Validate(); err != nil {
		return xc.sendError(c, err)
	}

	exp, err := xc.Planner.CreateExpense(req)
	if err != nil {
		return xc.sendError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Expense created successfully",
		Data:    exp,
	})
}

// UpdateExpense applies a partial update to an expense
func (xc *ExpenseController) UpdateExpense(c *fiber.Ctx) error {
	var req expenseTypes.UpdateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}
	if err := req.Validate(); err != nil {
		return xc.sendError(c, err)
	}

	exp, err := xc.Planner.UpdateExpense(c.Params("id"), req)
	if err != nil {
		return xc.sendError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Expense updated successfully",
		Data:    exp,
	})
}

// DeleteExpense removes an expense
func (xc *ExpenseController) DeleteExpense(c *fiber.Ctx) error {
	if err := xc.Planner.DeleteExpense(c.Params("id")); err != nil {
		return xc.sendError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Expense deleted successfully",
		Data:    nil,
	})
}
