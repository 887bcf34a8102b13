package budget

import (
	"strings"

	"shiori-planner/apperrors"
	"shiori-planner/constants"
)

// CreateBudgetRequest is the payload for adding a budget envelope line.
// EventID optionally links the line to an event of the same itinerary.
type CreateBudgetRequest struct {
	ItineraryID string  `json:"itineraryId" validate:"required"`
	Name        string  `json:"name" validate:"required,min=1,max=255"`
	Category    string  `json:"category" validate:"required"`
	Amount      float64 `json:"amount" validate:"gte=0"`
	Notes       *string `json:"notes"`
	EventID     *string `json:"eventId"`
}

func (r CreateBudgetRequest) Validate() error {
	if r.ItineraryID == "" {
		return apperrors.InvalidInput("itineraryId is required")
	}
	if strings.TrimSpace(r.Name) == "" {
		return apperrors.InvalidInput("name is required")
	}
	if !constants.IsValidBudgetCategory(r.Category) {
		return apperrors.InvalidInput("unknown budget category %q", r.Category)
	}
	if r.Amount < 0 {
		return apperrors.InvalidInput("amount cannot be negative")
	}
	return nil
}

// UpdateBudgetRequest is a partial update: nil fields are left unchanged.
// A present-but-empty EventID clears the event link.
type UpdateBudgetRequest struct {
	Name     *string  `json:"name"`
	Category *string  `json:"category"`
	Amount   *float64 `json:"amount"`
	Notes    *string  `json:"notes"`
	EventID  *string  `json:"eventId"`
}

func (r UpdateBudgetRequest) Validate() error {
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return apperrors.InvalidInput("name cannot be empty")
	}
	if r.Category != nil && !constants.IsValidBudgetCategory(*r.Category) {
		return apperrors.InvalidInput("unknown budget category %q", *r.Category)
	}
	if r.Amount != nil && *r.Amount < 0 {
		return apperrors.InvalidInput("amount cannot be negative")
	}
	return nil
}
