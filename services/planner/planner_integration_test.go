package planner

import (
	"os"
	"sync"
	"testing"

	"gorm.io/gorm"

	"shiori-planner/apperrors"
	"shiori-planner/database"
	"shiori-planner/idgen"
	budgetTypes "shiori-planner/types/budget"
	eventTypes "shiori-planner/types/event"
	expenseTypes "shiori-planner/types/expense"
	itineraryTypes "shiori-planner/types/itinerary"
	packingTypes "shiori-planner/types/packing"
	reservationTypes "shiori-planner/types/reservation"
)

// The tests below run against a real PostgreSQL instance because they
// exercise behavior that lives in the schema: cascade deletes, the SET NULL
// rule on budget event links, and the unique reservation-per-event
// constraint. They are skipped when no database is configured.

var integrationDB struct {
	once sync.Once
	db   *gorm.DB
	err  error
}

func newIntegrationService(t *testing.T) *Service {
	t.Helper()
	if os.Getenv("DB_HOST") == "" {
		t.Skip("DB_HOST not set; skipping database integration tests")
	}
	integrationDB.once.Do(func() {
		integrationDB.db, integrationDB.err = database.InitDB()
	})
	if integrationDB.err != nil {
		t.Fatalf("database setup failed: %v", integrationDB.err)
	}
	return NewService(integrationDB.db, idgen.NewUUIDGenerator())
}

func newTestItinerary(t *testing.T, svc *Service, title string) string {
	t.Helper()
	itin, err := svc.CreateItinerary(itineraryTypes.CreateItineraryRequest{Title: title})
	if err != nil {
		t.Fatalf("CreateItinerary() error: %v", err)
	}
	t.Cleanup(func() {
		svc.DeleteItinerary(itin.ID)
	})
	return itin.ID
}

func TestCreateReservationSecondCreateConflicts(t *testing.T) {
	svc := newIntegrationService(t)
	itineraryID := newTestItinerary(t, svc, "integration: reservation conflict")

	ev, err := svc.CreateEvent(eventTypes.CreateEventRequest{ItineraryID: itineraryID, Title: "ホテル泊"})
	if err != nil {
		t.Fatalf("CreateEvent() error: %v", err)
	}

	first, err := svc.CreateReservation(reservationTypes.CreateReservationRequest{
		EventID:     ev.ID,
		ItineraryID: itineraryID,
		Type:        "hotel",
	})
	if err != nil {
		t.Fatalf("first CreateReservation() error: %v", err)
	}
	if first.Status != "notBooked" {
		t.Errorf("omitted status should default to notBooked, got %q", first.Status)
	}

	_, err = svc.CreateReservation(reservationTypes.CreateReservationRequest{
		EventID:     ev.ID,
		ItineraryID: itineraryID,
		Type:        "hotel",
	})
	if err == nil {
		t.Fatal("second reservation for the same event should fail")
	}
	if apperrors.KindOf(err) != apperrors.KindConflict {
		t.Errorf("error kind = %v, want conflict", apperrors.KindOf(err))
	}

	summary, err := svc.GetItinerarySummary(itineraryID)
	if err != nil {
		t.Fatalf("GetItinerarySummary() error: %v", err)
	}
	if summary.PendingReservations != 1 {
		t.Errorf("PendingReservations = %d, want 1", summary.PendingReservations)
	}
}

func TestDeleteItineraryCascadesToAllChildren(t *testing.T) {
	svc := newIntegrationService(t)
	itineraryID := newTestItinerary(t, svc, "integration: itinerary cascade")

	ev, err := svc.CreateEvent(eventTypes.CreateEventRequest{ItineraryID: itineraryID, Title: "観光"})
	if err != nil {
		t.Fatalf("CreateEvent() error: %v", err)
	}
	item, err := svc.CreatePackingItem(packingTypes.CreatePackingItemRequest{ItineraryID: itineraryID, Name: "カメラ"})
	if err != nil {
		t.Fatalf("CreatePackingItem() error: %v", err)
	}
	budget, err := svc.CreateBudget(budgetTypes.CreateBudgetRequest{ItineraryID: itineraryID, Name: "食費", Category: "food", Amount: 30000})
	if err != nil {
		t.Fatalf("CreateBudget() error: %v", err)
	}
	expense, err := svc.CreateExpense(expenseTypes.CreateExpenseRequest{
		BudgetID:    budget.ID,
		ItineraryID: itineraryID,
		Date:        "2026-04-02",
		Amount:      1200,
		Description: "ラーメン",
	})
	if err != nil {
		t.Fatalf("CreateExpense() error: %v", err)
	}
	reservation, err := svc.CreateReservation(reservationTypes.CreateReservationRequest{
		EventID:     ev.ID,
		ItineraryID: itineraryID,
		Type:        "activity",
	})
	if err != nil {
		t.Fatalf("CreateReservation() error: %v", err)
	}

	if err := svc.DeleteItinerary(itineraryID); err != nil {
		t.Fatalf("DeleteItinerary() error: %v", err)
	}

	checks := []struct {
		name string
		get  func() error
	}{
		{"event", func() error { _, err := svc.GetEvent(ev.ID); return err }},
		{"packing item", func() error { _, err := svc.GetPackingItem(item.ID); return err }},
		{"budget", func() error { _, err := svc.GetBudget(budget.ID); return err }},
		{"expense", func() error { _, err := svc.GetExpense(expense.ID); return err }},
		{"reservation", func() error { _, err := svc.GetReservation(reservation.ID); return err }},
	}
	for _, check := range checks {
		err := check.get()
		if err == nil {
			t.Errorf("%s survived the itinerary delete", check.name)
			continue
		}
		if apperrors.KindOf(err) != apperrors.KindNotFound {
			t.Errorf("%s lookup error kind = %v, want not found", check.name, apperrors.KindOf(err))
		}
	}
}

func TestDeleteEventDetachesBudgetAndRemovesReservation(t *testing.T) {
	svc := newIntegrationService(t)
	itineraryID := newTestItinerary(t, svc, "integration: event delete")

	ev, err := svc.CreateEvent(eventTypes.CreateEventRequest{ItineraryID: itineraryID, Title: "ディナー"})
	if err != nil {
		t.Fatalf("CreateEvent() error: %v", err)
	}
	budget, err := svc.CreateBudget(budgetTypes.CreateBudgetRequest{
		ItineraryID: itineraryID,
		Name:        "ディナー予算",
		Category:    "food",
		Amount:      10000,
		EventID:     &ev.ID,
	})
	if err != nil {
		t.Fatalf("CreateBudget() error: %v", err)
	}
	reservation, err := svc.CreateReservation(reservationTypes.CreateReservationRequest{
		EventID:     ev.ID,
		ItineraryID: itineraryID,
		Type:        "restaurant",
	})
	if err != nil {
		t.Fatalf("CreateReservation() error: %v", err)
	}

	if err := svc.DeleteEvent(ev.ID); err != nil {
		t.Fatalf("DeleteEvent() error: %v", err)
	}

	// The budget survives with its event link cleared.
	detached, err := svc.GetBudget(budget.ID)
	if err != nil {
		t.Fatalf("GetBudget() after event delete: %v", err)
	}
	if detached.EventID != nil {
		t.Errorf("budget event link = %q, want cleared", *detached.EventID)
	}

	// The reservation goes with its event.
	if _, err := svc.GetReservation(reservation.ID); apperrors.KindOf(err) != apperrors.KindNotFound {
		t.Errorf("reservation lookup error = %v, want not found", err)
	}
}

func TestDeleteBudgetCascadesToExpenses(t *testing.T) {
	svc := newIntegrationService(t)
	itineraryID := newTestItinerary(t, svc, "integration: budget cascade")

	budget, err := svc.CreateBudget(budgetTypes.CreateBudgetRequest{ItineraryID: itineraryID, Name: "交通費", Category: "transportation", Amount: 15000})
	if err != nil {
		t.Fatalf("CreateBudget() error: %v", err)
	}
	expense, err := svc.CreateExpense(expenseTypes.CreateExpenseRequest{
		BudgetID:    budget.ID,
		ItineraryID: itineraryID,
		Date:        "2026-04-03",
		Amount:      8000,
		Description: "新幹線",
	})
	if err != nil {
		t.Fatalf("CreateExpense() error: %v", err)
	}

	if err := svc.DeleteBudget(budget.ID); err != nil {
		t.Fatalf("DeleteBudget() error: %v", err)
	}

	if _, err := svc.GetExpense(expense.ID); apperrors.KindOf(err) != apperrors.KindNotFound {
		t.Errorf("expense lookup error = %v, want not found", err)
	}
	// The itinerary itself is untouched.
	if _, err := svc.GetItinerary(itineraryID); err != nil {
		t.Errorf("itinerary should survive a budget delete, got %v", err)
	}
}

func TestUpdateEventLeavesOmittedFieldsUntouched(t *testing.T) {
	svc := newIntegrationService(t)
	itineraryID := newTestItinerary(t, svc, "integration: partial update")

	ev, err := svc.CreateEvent(eventTypes.CreateEventRequest{
		ItineraryID: itineraryID,
		Title:       "清水寺",
		Description: strPtr("朝イチで参拝"),
		Location:    strPtr("京都市東山区"),
		EventDate:   strPtr("2026-04-02"),
		StartTime:   strPtr("09:00"),
	})
	if err != nil {
		t.Fatalf("CreateEvent() error: %v", err)
	}

	updated, err := svc.UpdateEvent(ev.ID, eventTypes.UpdateEventRequest{Title: strPtr("清水寺と周辺散策")})
	if err != nil {
		t.Fatalf("UpdateEvent() error: %v", err)
	}
	if updated.Title != "清水寺と周辺散策" {
		t.Errorf("Title = %q", updated.Title)
	}
	if updated.Description == nil || *updated.Description != "朝イチで参拝" {
		t.Error("omitted description changed")
	}
	if updated.Location == nil || *updated.Location != "京都市東山区" {
		t.Error("omitted location changed")
	}
	if updated.EventDate == nil || *updated.EventDate != "2026-04-02" {
		t.Error("omitted event date changed")
	}
	if updated.StartTime == nil || *updated.StartTime != "09:00" {
		t.Error("omitted start time changed")
	}

	// A present-but-empty optional field clears to NULL.
	cleared, err := svc.UpdateEvent(ev.ID, eventTypes.UpdateEventRequest{Description: strPtr("")})
	if err != nil {
		t.Fatalf("UpdateEvent() clear error: %v", err)
	}
	if cleared.Description != nil {
		t.Errorf("description = %q, want cleared", *cleared.Description)
	}
	if cleared.Location == nil || *cleared.Location != "京都市東山区" {
		t.Error("clearing one field must not touch the others")
	}
}
