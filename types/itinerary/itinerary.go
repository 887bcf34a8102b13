package itinerary

import (
	"strings"

	"shiori-planner/apperrors"
)

// CreateItineraryRequest is the payload for creating a new itinerary.
type CreateItineraryRequest struct {
	Title string `json:"title" validate:"required,min=1,max=255"`
}

func (r CreateItineraryRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return apperrors.InvalidInput("title is required")
	}
	return nil
}

// UpdateItineraryRequest is a partial update: nil fields are left unchanged.
type UpdateItineraryRequest struct {
	Title       *string  `json:"title" validate:"omitempty,min=1,max=255"`
	TotalBudget *float64 `json:"totalBudget" validate:"omitempty,gte=0"`
	Currency    *string  `json:"currency" validate:"omitempty,max=10"`
}

func (r UpdateItineraryRequest) Validate() error {
	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		return apperrors.InvalidInput("title cannot be empty")
	}
	if r.TotalBudget != nil && *r.TotalBudget < 0 {
		return apperrors.InvalidInput("totalBudget cannot be negative")
	}
	return nil
}

// BudgetEnvelopeRequest sets the itinerary-wide budget and currency.
// An empty currency leaves the stored value unchanged.
type BudgetEnvelopeRequest struct {
	TotalBudget float64 `json:"totalBudget" validate:"gte=0"`
	Currency    string  `json:"currency" validate:"omitempty,max=10"`
}

func (r BudgetEnvelopeRequest) Validate() error {
	if r.TotalBudget < 0 {
		return apperrors.InvalidInput("totalBudget cannot be negative")
	}
	return nil
}
