package packing

import (
	"strings"

	"shiori-planner/apperrors"
	"shiori-planner/constants"
)

// CreatePackingItemRequest is the payload for adding a packing item.
// Quantity defaults to 1, category falls back to "other".
type CreatePackingItemRequest struct {
	ItineraryID string  `json:"itineraryId" validate:"required"`
	Name        string  `json:"name" validate:"required,min=1,max=255"`
	Category    string  `json:"category"`
	Quantity    *int    `json:"quantity" validate:"omitempty,gte=1"`
	Notes       *string `json:"notes"`
	IsPacked    bool    `json:"isPacked"`
	IsEssential bool    `json:"isEssential"`
}

func (r CreatePackingItemRequest) Validate() error {
	if r.ItineraryID == "" {
		return apperrors.InvalidInput("itineraryId is required")
	}
	if strings.TrimSpace(r.Name) == "" {
		return apperrors.InvalidInput("name is required")
	}
	if r.Category != "" && !constants.IsValidPackingCategory(r.Category) {
		return apperrors.InvalidInput("unknown packing category %q", r.Category)
	}
	if r.Quantity != nil && *r.Quantity < 1 {
		return apperrors.InvalidInput("quantity must be at least 1")
	}
	return nil
}

// UpdatePackingItemRequest is a partial update: nil fields are left unchanged.
type UpdatePackingItemRequest struct {
	Name        *string `json:"name"`
	Category    *string `json:"category"`
	Quantity    *int    `json:"quantity"`
	Notes       *string `json:"notes"`
	IsPacked    *bool   `json:"isPacked"`
	IsEssential *bool   `json:"isEssential"`
}

func (r UpdatePackingItemRequest) Validate() error {
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return apperrors.InvalidInput("name cannot be empty")
	}
	if r.Category != nil && !constants.IsValidPackingCategory(*r.Category) {
		return apperrors.InvalidInput("unknown packing category %q", *r.Category)
	}
	if r.Quantity != nil && *r.Quantity < 1 {
		return apperrors.InvalidInput("quantity must be at least 1")
	}
	return nil
}

// ReorderPackingItemsRequest carries the explicit new ordering of an
// itinerary's packing items.
type ReorderPackingItemsRequest struct {
	ItineraryID string   `json:"itineraryId" validate:"required"`
	ItemIDs     []string `json:"itemIds" validate:"required"`
}

func (r ReorderPackingItemsRequest) Validate() error {
	if r.ItineraryID == "" {
		return apperrors.InvalidInput("itineraryId is required")
	}
	if r.ItemIDs == nil {
		return apperrors.InvalidInput("itemIds array is required")
	}
	return nil
}
