package planner

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"shiori-planner/apperrors"
	"shiori-planner/idgen"
	itineraryModel "shiori-planner/models/itinerary"
	itineraryTypes "shiori-planner/types/itinerary"
)

// Service orchestrates all writes against the itinerary aggregate. Every
// operation re-reads current state from storage before acting and validates
// referenced parents before mutating.
type Service struct {
	DB  *gorm.DB
	IDs idgen.Generator
	Now func() time.Time
}

// NewService creates a new planner service.
func NewService(db *gorm.DB, ids idgen.Generator) *Service {
	return &Service{
		DB:  db,
		IDs: ids,
		Now: time.Now,
	}
}

func (s *Service) nowMillis() int64 {
	return s.Now().UnixMilli()
}

// itineraryExists verifies the parent itinerary before any child write.
func (s *Service) itineraryExists(id string) error {
	var count int64
	if err := s.DB.Model(&itineraryModel.Itinerary{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return apperrors.Storage("failed to look up itinerary", err)
	}
	if count == 0 {
		return apperrors.NotFound("itinerary %s not found", id)
	}
	return nil
}

// setOptional applies the patch semantics for nullable columns: a nil
// pointer means "leave unchanged", a present empty value clears to NULL.
func setOptionalString(updates map[string]interface{}, column string, value *string) {
	if value == nil {
		return
	}
	if *value == "" {
		updates[column] = nil
		return
	}
	updates[column] = *value
}

// ListItineraries returns all itineraries, newest first.
func (s *Service) ListItineraries() ([]itineraryModel.Itinerary, error) {
	var itineraries []itineraryModel.Itinerary
	if err := s.DB.Order("created_at DESC").Find(&itineraries).Error; err != nil {
		return nil, apperrors.Storage("failed to list itineraries", err)
	}
	return itineraries, nil
}

// GetItinerary fetches a single itinerary by ID.
func (s *Service) GetItinerary(id string) (*itineraryModel.Itinerary, error) {
	var itin itineraryModel.Itinerary
	if err := s.DB.First(&itin, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("itinerary %s not found", id)
		}
		return nil, apperrors.Storage("failed to load itinerary", err)
	}
	return &itin, nil
}

// CreateItinerary creates a new empty itinerary with the defaults of a
// fresh trip: no budget yet, JPY currency.
func (s *Service) CreateItinerary(req itineraryTypes.CreateItineraryRequest) (*itineraryModel.Itinerary, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	itin := itineraryModel.Itinerary{
		ID:          s.IDs.NewID(),
		Title:       req.Title,
		CreatedAt:   s.nowMillis(),
		TotalBudget: 0,
		Currency:    itineraryModel.DefaultCurrency,
	}
	if err := s.DB.Create(&itin).Error; err != nil {
		return nil, apperrors.Storage("failed to create itinerary", err)
	}
	return &itin, nil
}

// UpdateItinerary applies a partial update; omitted fields keep their
// previous value.
func (s *Service) UpdateItinerary(id string, req itineraryTypes.UpdateItineraryRequest) (*itineraryModel.Itinerary, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.GetItinerary(id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.TotalBudget != nil {
		updates["total_budget"] = *req.TotalBudget
	}
	if req.Currency != nil && *req.Currency != "" {
		updates["currency"] = *req.Currency
	}
	if len(updates) > 0 {
		if err := s.DB.Model(&itineraryModel.Itinerary{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, apperrors.Storage("failed to update itinerary", err)
		}
	}
	return s.GetItinerary(id)
}

// DeleteItinerary removes the itinerary; the store cascades deletion of all
// owned events, packing items, budgets, expenses and reservations.
func (s *Service) DeleteItinerary(id string) error {
	result := s.DB.Delete(&itineraryModel.Itinerary{}, "id = ?", id)
	if result.Error != nil {
		return apperrors.Storage("failed to delete itinerary", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("itinerary %s not found", id)
	}
	return nil
}

// SetBudgetEnvelope sets the trip-wide budget total and currency. An empty
// currency in the request leaves the stored currency unchanged.
func (s *Service) SetBudgetEnvelope(id string, req itineraryTypes.BudgetEnvelopeRequest) (*itineraryModel.Itinerary, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.GetItinerary(id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"total_budget": req.TotalBudget}
	if req.Currency != "" {
		updates["currency"] = req.Currency
	}
	if err := s.DB.Model(&itineraryModel.Itinerary{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, apperrors.Storage("failed to set budget envelope", err)
	}
	return s.GetItinerary(id)
}
