package planner

import (
	"sort"
	"time"

	"shiori-planner/apperrors"
	eventModel "shiori-planner/models/event"
	itineraryModel "shiori-planner/models/itinerary"
	packingModel "shiori-planner/models/packing"
	reservationModel "shiori-planner/models/reservation"
	"shiori-planner/utils"
)

// BudgetWithSpent is a budget line with its spent total derived from linked
// expenses. The total is computed on read and never stored.
type BudgetWithSpent struct {
	ID          string  `json:"id"`
	ItineraryID string  `json:"itineraryId"`
	Category    string  `json:"category"`
	Name        string  `json:"name"`
	Amount      float64 `json:"amount"`
	Notes       *string `json:"notes,omitempty"`
	EventID     *string `json:"eventId,omitempty"`
	OrderIndex  int     `json:"orderIndex"`
	SpentTotal  float64 `json:"spentTotal"`
}

// ItinerarySummary is the aggregate read used by the itinerary detail view.
// PendingReservations counts bookings still awaiting action (not yet paid,
// cancelled or completed).
type ItinerarySummary struct {
	Itinerary           itineraryModel.Itinerary   `json:"itinerary"`
	Events              []eventModel.Event         `json:"events"`
	PackingItems        []packingModel.PackingItem `json:"packingItems"`
	Budgets             []BudgetWithSpent          `json:"budgets"`
	TotalSpent          float64                    `json:"totalSpent"`
	PendingReservations int                        `json:"pendingReservations"`
}

// GetItinerarySummary assembles the itinerary with its ordered children and
// derived spending totals.
func (s *Service) GetItinerarySummary(id string) (*ItinerarySummary, error) {
	itin, err := s.GetItinerary(id)
	if err != nil {
		return nil, err
	}

	events, err := s.ListEvents(id)
	if err != nil {
		return nil, err
	}

	items, err := s.ListPackingItems(id)
	if err != nil {
		return nil, err
	}

	var budgets []BudgetWithSpent
	if err := s.DB.Table("budgets").
		Select("budgets.id, budgets.itinerary_id, budgets.category, budgets.name, budgets.amount, budgets.notes, budgets.event_id, budgets.order_index, COALESCE(SUM(expenses.amount), 0) AS spent_total").
		Joins("LEFT JOIN expenses ON expenses.budget_id = budgets.id").
		Where("budgets.itinerary_id = ?", id).
		Group("budgets.id").
		Order("budgets.order_index ASC").
		Scan(&budgets).Error; err != nil {
		return nil, apperrors.Storage("failed to aggregate budgets", err)
	}

	var totalSpent float64
	if err := s.DB.Table("expenses").
		Where("itinerary_id = ?", id).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&totalSpent).Error; err != nil {
		return nil, apperrors.Storage("failed to sum expenses", err)
	}

	var reservations []reservationModel.Reservation
	if err := s.DB.Where("itinerary_id = ?", id).Find(&reservations).Error; err != nil {
		return nil, apperrors.Storage("failed to load reservations", err)
	}
	pending := 0
	for _, r := range reservations {
		if !r.Status.IsSettled() {
			pending++
		}
	}

	return &ItinerarySummary{
		Itinerary:           *itin,
		Events:              events,
		PackingItems:        items,
		Budgets:             budgets,
		TotalSpent:          totalSpent,
		PendingReservations: pending,
	}, nil
}

// SortEventsForDisplay orders events in place by date (undated last), then
// start time (untimed last), then order index. Start times may be stored as
// "HH:MM" or epoch-millis strings; both compare correctly.
func SortEventsForDisplay(events []eventModel.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return compareEvents(events[i], events[j]) < 0
	})
}

func compareEvents(a, b eventModel.Event) int {
	aDate, aDated := eventDate(a)
	bDate, bDated := eventDate(b)
	switch {
	case aDated && !bDated:
		return -1
	case !aDated && bDated:
		return 1
	case aDated && bDated:
		if aDate.Before(bDate) {
			return -1
		}
		if aDate.After(bDate) {
			return 1
		}
	}

	aMinutes, aTimed := eventStartMinutes(a)
	bMinutes, bTimed := eventStartMinutes(b)
	switch {
	case aTimed && !bTimed:
		return -1
	case !aTimed && bTimed:
		return 1
	case aTimed && bTimed && aMinutes != bMinutes:
		if aMinutes < bMinutes {
			return -1
		}
		return 1
	}

	if a.OrderIndex != b.OrderIndex {
		if a.OrderIndex < b.OrderIndex {
			return -1
		}
		return 1
	}
	return 0
}

func eventDate(ev eventModel.Event) (time.Time, bool) {
	if ev.EventDate == nil || *ev.EventDate == "" {
		return time.Time{}, false
	}
	t, err := utils.ParseCalendarDate(*ev.EventDate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func eventStartMinutes(ev eventModel.Event) (int, bool) {
	if ev.StartTime == nil {
		return 0, false
	}
	return utils.NormalizeTimeOfDay(*ev.StartTime)
}
