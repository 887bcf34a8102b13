package transfer

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"shiori-planner/apperrors"
	"shiori-planner/idgen"
	budgetModel "shiori-planner/models/budget"
	eventModel "shiori-planner/models/event"
	expenseModel "shiori-planner/models/expense"
	itineraryModel "shiori-planner/models/itinerary"
	packingModel "shiori-planner/models/packing"
	transferTypes "shiori-planner/types/transfer"
)

// Service handles itinerary export/import.
type Service struct {
	DB  *gorm.DB
	IDs idgen.Generator
	Now func() time.Time
}

// NewService creates a new transfer service.
func NewService(db *gorm.DB, ids idgen.Generator) *Service {
	return &Service{
		DB:  db,
		IDs: ids,
		Now: time.Now,
	}
}

// Export assembles the itinerary and all of its children into one
// self-contained transfer document. Pure read, no mutation.
func (s *Service) Export(id string) (*transferTypes.Document, error) {
	var itin itineraryModel.Itinerary
	if err := s.DB.First(&itin, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("itinerary %s not found", id)
		}
		return nil, apperrors.Storage("failed to load itinerary", err)
	}

	var events []eventModel.Event
	if err := s.DB.Where("itinerary_id = ?", id).Order("order_index ASC").Find(&events).Error; err != nil {
		return nil, apperrors.Storage("failed to load events", err)
	}
	SortEventsForExport(events)

	var budgets []budgetModel.Budget
	if err := s.DB.Where("itinerary_id = ?", id).Order("order_index ASC").Find(&budgets).Error; err != nil {
		return nil, apperrors.Storage("failed to load budgets", err)
	}

	var expenses []expenseModel.Expense
	if err := s.DB.Where("itinerary_id = ?", id).Order("created_at ASC, id ASC").Find(&expenses).Error; err != nil {
		return nil, apperrors.Storage("failed to load expenses", err)
	}

	var items []packingModel.PackingItem
	if err := s.DB.Where("itinerary_id = ?", id).Order("order_index ASC").Find(&items).Error; err != nil {
		return nil, apperrors.Storage("failed to load packing items", err)
	}

	doc := BuildDocument(itin, events, budgets, expenses, items)
	return &doc, nil
}

// Import materializes a transfer document as a brand-new itinerary and
// returns its ID. All records are created inside one transaction: either
// the whole graph exists afterwards or none of it does.
func (s *Service) Import(doc transferTypes.Document) (string, error) {
	plan, err := PlanImport(doc, s.IDs, s.Now().UnixMilli())
	if err != nil {
		return "", err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&plan.Itinerary).Error; err != nil {
			return err
		}
		if len(plan.Events) > 0 {
			if err := tx.Create(&plan.Events).Error; err != nil {
				return err
			}
		}
		if len(plan.Budgets) > 0 {
			if err := tx.Create(&plan.Budgets).Error; err != nil {
				return err
			}
		}
		if len(plan.Expenses) > 0 {
			if err := tx.Create(&plan.Expenses).Error; err != nil {
				return err
			}
		}
		if len(plan.PackingItems) > 0 {
			if err := tx.Create(&plan.PackingItems).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", apperrors.Storage("failed to import itinerary", err)
	}
	return plan.Itinerary.ID, nil
}
