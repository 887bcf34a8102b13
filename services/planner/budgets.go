package planner

import (
	"errors"

	"gorm.io/gorm"

	"shiori-planner/apperrors"
	budgetModel "shiori-planner/models/budget"
	"shiori-planner/services/ordering"
	budgetTypes "shiori-planner/types/budget"
)

// ListBudgets returns the itinerary's budget lines in order.
func (s *Service) ListBudgets(itineraryID string) ([]budgetModel.Budget, error) {
	var budgets []budgetModel.Budget
	if err := s.DB.
		Where("itinerary_id = ?", itineraryID).
		Order("order_index ASC").
		Find(&budgets).Error; err != nil {
		return nil, apperrors.Storage("failed to list budgets", err)
	}
	return budgets, nil
}

// GetBudget fetches a single budget by ID.
func (s *Service) GetBudget(id string) (*budgetModel.Budget, error) {
	var b budgetModel.Budget
	if err := s.DB.First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("budget %s not found", id)
		}
		return nil, apperrors.Storage("failed to load budget", err)
	}
	return &b, nil
}

// eventBelongsToItinerary verifies an event link before it is stored on a
// budget: the event must exist and be owned by the same itinerary.
func (s *Service) eventBelongsToItinerary(eventID, itineraryID string) error {
	ev, err := s.GetEvent(eventID)
	if err != nil {
		return err
	}
	if ev.ItineraryID != itineraryID {
		return apperrors.InvalidInput("event %s does not belong to itinerary %s", eventID, itineraryID)
	}
	return nil
}

// CreateBudget appends a new budget line to the itinerary.
func (s *Service) CreateBudget(req budgetTypes.CreateBudgetRequest) (*budgetModel.Budget, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.itineraryExists(req.ItineraryID); err != nil {
		return nil, err
	}
	if req.EventID != nil && *req.EventID != "" {
		if err := s.eventBelongsToItinerary(*req.EventID, req.ItineraryID); err != nil {
			return nil, err
		}
	}

	b := budgetModel.Budget{
		ID:          s.IDs.NewID(),
		ItineraryID: req.ItineraryID,
		Category:    req.Category,
		Name:        req.Name,
		Amount:      req.Amount,
		Notes:       req.Notes,
	}
	if req.EventID != nil && *req.EventID != "" {
		b.EventID = req.EventID
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		next, err := ordering.NextIndex(tx, "budgets", "itinerary_id", req.ItineraryID)
		if err != nil {
			return err
		}
		b.OrderIndex = next
		return tx.Create(&b).Error
	})
	if err != nil {
		return nil, apperrors.Storage("failed to create budget", err)
	}
	return &b, nil
}

// UpdateBudget applies a partial update. A present-but-empty eventId clears
// the event link; a non-empty one must reference an event of the same
// itinerary.
func (s *Service) UpdateBudget(id string, req budgetTypes.UpdateBudgetRequest) (*budgetModel.Budget, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	current, err := s.GetBudget(id)
	if err != nil {
		return nil, err
	}
	if req.EventID != nil && *req.EventID != "" {
		if err := s.eventBelongsToItinerary(*req.EventID, current.ItineraryID); err != nil {
			return nil, err
		}
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Amount != nil {
		updates["amount"] = *req.Amount
	}
	setOptionalString(updates, "notes", req.Notes)
	setOptionalString(updates, "event_id", req.EventID)

	if len(updates) > 0 {
		if err := s.DB.Model(&budgetModel.Budget{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, apperrors.Storage("failed to update budget", err)
		}
	}
	return s.GetBudget(id)
}

// DeleteBudget removes the budget; the store cascades deletion of its
// expenses.
func (s *Service) DeleteBudget(id string) error {
	result := s.DB.Delete(&budgetModel.Budget{}, "id = ?", id)
	if result.Error != nil {
		return apperrors.Storage("failed to delete budget", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("budget %s not found", id)
	}
	return nil
}
