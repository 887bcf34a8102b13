package expense

import (
	"strings"

	"shiori-planner/apperrors"
	"shiori-planner/constants"
	"shiori-planner/utils"
)

// CreateExpenseRequest is the payload for recording a spend against a budget.
type CreateExpenseRequest struct {
	BudgetID      string  `json:"budgetId" validate:"required"`
	ItineraryID   string  `json:"itineraryId" validate:"required"`
	Date          string  `json:"date" validate:"required"`
	Amount        float64 `json:"amount" validate:"gte=0"`
	Description   string  `json:"description" validate:"required,min=1,max=255"`
	Category      string  `json:"category"`
	PaymentMethod *string `json:"paymentMethod"`
	ReceiptImage  *string `json:"receiptImage"`
}

func (r CreateExpenseRequest) Validate() error {
	if r.BudgetID == "" {
		return apperrors.InvalidInput("budgetId is required")
	}
	if r.ItineraryID == "" {
		return apperrors.InvalidInput("itineraryId is required")
	}
	if strings.TrimSpace(r.Description) == "" {
		return apperrors.InvalidInput("description is required")
	}
	if r.Date == "" || !utils.IsCalendarDate(r.Date) {
		return apperrors.InvalidInput("date %q is not a valid calendar date", r.Date)
	}
	if r.Amount < 0 {
		return apperrors.InvalidInput("amount cannot be negative")
	}
	if r.Category != "" && !constants.IsValidBudgetCategory(r.Category) {
		return apperrors.InvalidInput("unknown expense category %q", r.Category)
	}
	return nil
}

// UpdateExpenseRequest is a partial update: nil fields are left unchanged.
type UpdateExpenseRequest struct {
	Date          *string  `json:"date"`
	Amount        *float64 `json:"amount"`
	Description   *string  `json:"description"`
	Category      *string  `json:"category"`
	PaymentMethod *string  `json:"paymentMethod"`
	ReceiptImage  *string  `json:"receiptImage"`
}

func (r UpdateExpenseRequest) Validate() error {
	if r.Description != nil && strings.TrimSpace(*r.Description) == "" {
		return apperrors.InvalidInput("description cannot be empty")
	}
	if r.Date != nil && !utils.IsCalendarDate(*r.Date) {
		return apperrors.InvalidInput("date %q is not a valid calendar date", *r.Date)
	}
	if r.Amount != nil && *r.Amount < 0 {
		return apperrors.InvalidInput("amount cannot be negative")
	}
	if r.Category != nil && !constants.IsValidBudgetCategory(*r.Category) {
		return apperrors.InvalidInput("unknown expense category %q", *r.Category)
	}
	return nil
}
