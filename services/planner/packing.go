package planner

import (
	"errors"

	"gorm.io/gorm"

	"shiori-planner/apperrors"
	"shiori-planner/constants"
	packingModel "shiori-planner/models/packing"
	"shiori-planner/services/ordering"
	packingTypes "shiori-planner/types/packing"
)

// ListPackingItems returns the itinerary's packing items in order.
func (s *Service) ListPackingItems(itineraryID string) ([]packingModel.PackingItem, error) {
	var items []packingModel.PackingItem
	if err := s.DB.
		Where("itinerary_id = ?", itineraryID).
		Order("order_index ASC").
		Find(&items).Error; err != nil {
		return nil, apperrors.Storage("failed to list packing items", err)
	}
	return items, nil
}

// GetPackingItem fetches a single packing item by ID.
func (s *Service) GetPackingItem(id string) (*packingModel.PackingItem, error) {
	var item packingModel.PackingItem
	if err := s.DB.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("packing item %s not found", id)
		}
		return nil, apperrors.Storage("failed to load packing item", err)
	}
	return &item, nil
}

// CreatePackingItem appends a new packing item to the itinerary.
func (s *Service) CreatePackingItem(req packingTypes.CreatePackingItemRequest) (*packingModel.PackingItem, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.itineraryExists(req.ItineraryID); err != nil {
		return nil, err
	}

	category := req.Category
	if category == "" {
		category = constants.CategoryFallback
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	item := packingModel.PackingItem{
		ID:          s.IDs.NewID(),
		ItineraryID: req.ItineraryID,
		Name:        req.Name,
		Category:    category,
		IsPacked:    req.IsPacked,
		Quantity:    quantity,
		Notes:       req.Notes,
		IsEssential: req.IsEssential,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		next, err := ordering.NextIndex(tx, "packing_items", "itinerary_id", req.ItineraryID)
		if err != nil {
			return err
		}
		item.OrderIndex = next
		return tx.Create(&item).Error
	})
	if err != nil {
		return nil, apperrors.Storage("failed to create packing item", err)
	}
	return &item, nil
}

// UpdatePackingItem applies a partial update; omitted fields keep their
// previous value.
func (s *Service) UpdatePackingItem(id string, req packingTypes.UpdatePackingItemRequest) (*packingModel.PackingItem, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.GetPackingItem(id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Quantity != nil {
		updates["quantity"] = *req.Quantity
	}
	if req.IsPacked != nil {
		updates["is_packed"] = *req.IsPacked
	}
	if req.IsEssential != nil {
		updates["is_essential"] = *req.IsEssential
	}
	setOptionalString(updates, "notes", req.Notes)

	if len(updates) > 0 {
		if err := s.DB.Model(&packingModel.PackingItem{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, apperrors.Storage("failed to update packing item", err)
		}
	}
	return s.GetPackingItem(id)
}

// DeletePackingItem removes the packing item.
func (s *Service) DeletePackingItem(id string) error {
	result := s.DB.Delete(&packingModel.PackingItem{}, "id = ?", id)
	if result.Error != nil {
		return apperrors.Storage("failed to delete packing item", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("packing item %s not found", id)
	}
	return nil
}

// ReorderPackingItems applies the explicit ordering and returns the items
// in their new order.
func (s *Service) ReorderPackingItems(req packingTypes.ReorderPackingItemsRequest) ([]packingModel.PackingItem, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.itineraryExists(req.ItineraryID); err != nil {
		return nil, err
	}
	if err := ordering.Reorder(s.DB, "packing_items", "itinerary_id", req.ItineraryID, req.ItemIDs); err != nil {
		return nil, err
	}
	return s.ListPackingItems(req.ItineraryID)
}
