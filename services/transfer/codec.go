package transfer

import (
	"sort"
	"strings"
	"time"

	"shiori-planner/apperrors"
	"shiori-planner/constants"
	"shiori-planner/idgen"
	budgetModel "shiori-planner/models/budget"
	eventModel "shiori-planner/models/event"
	expenseModel "shiori-planner/models/expense"
	itineraryModel "shiori-planner/models/itinerary"
	packingModel "shiori-planner/models/packing"
	transferTypes "shiori-planner/types/transfer"
	"shiori-planner/utils"
)

// fallbackBudgetName owns imported expenses when the document predates the
// budgets section and carries no linkage information.
const fallbackBudgetName = "インポートされた支出"

// SortEventsForExport orders events by date (undated last) then order
// index, the order the transfer document promises.
func SortEventsForExport(events []eventModel.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		aDate, aOK := exportDate(a)
		bDate, bOK := exportDate(b)
		switch {
		case aOK && !bOK:
			return true
		case !aOK && bOK:
			return false
		case aOK && bOK && !aDate.Equal(bDate):
			return aDate.Before(bDate)
		}
		return a.OrderIndex < b.OrderIndex
	})
}

func exportDate(ev eventModel.Event) (time.Time, bool) {
	if ev.EventDate == nil || *ev.EventDate == "" {
		return time.Time{}, false
	}
	t, err := utils.ParseCalendarDate(*ev.EventDate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// BuildDocument assembles a self-contained transfer document from an
// itinerary and its children. Events must already be in export order;
// expense-to-budget linkage is rewritten as positions into the budgets
// section so the document needs no database IDs.
func BuildDocument(
	itin itineraryModel.Itinerary,
	events []eventModel.Event,
	budgets []budgetModel.Budget,
	expenses []expenseModel.Expense,
	items []packingModel.PackingItem,
) transferTypes.Document {
	doc := transferTypes.Document{
		Itinerary: &transferTypes.Itinerary{
			Title:       itin.Title,
			TotalBudget: &itin.TotalBudget,
			Currency:    &itin.Currency,
		},
		Events: make([]transferTypes.Event, 0, len(events)),
	}

	for _, ev := range events {
		doc.Events = append(doc.Events, transferTypes.Event{
			Title:       ev.Title,
			Description: ev.Description,
			Location:    ev.Location,
			Latitude:    ev.Latitude,
			Longitude:   ev.Longitude,
			EventDate:   ev.EventDate,
			StartTime:   ev.StartTime,
			EndTime:     ev.EndTime,
			Icon:        ev.Icon,
			Link:        ev.Link,
		})
	}

	budgetPosition := make(map[string]int, len(budgets))
	for i, b := range budgets {
		budgetPosition[b.ID] = i
		doc.Budgets = append(doc.Budgets, transferTypes.Budget{
			Name:     b.Name,
			Category: b.Category,
			Amount:   b.Amount,
			Notes:    b.Notes,
		})
	}

	for _, ex := range expenses {
		description := ex.Description
		amount := ex.Amount
		category := ex.Category
		date := ex.Date
		entry := transferTypes.Expense{
			Description: &description,
			Amount:      &amount,
			Category:    &category,
			ExpenseDate: &date,
		}
		if pos, ok := budgetPosition[ex.BudgetID]; ok {
			index := pos
			entry.BudgetIndex = &index
		}
		doc.Expenses = append(doc.Expenses, entry)
	}

	for _, item := range items {
		name := item.Name
		category := item.Category
		quantity := item.Quantity
		packed := item.IsPacked
		essential := item.IsEssential
		doc.PackingItems = append(doc.PackingItems, transferTypes.PackingItem{
			Name:        &name,
			Category:    &category,
			Quantity:    &quantity,
			IsPacked:    &packed,
			Notes:       item.Notes,
			IsEssential: &essential,
		})
	}

	return doc
}

// ImportPlan is the complete set of records an import will insert. Planning
// is pure; persistence happens in one transaction afterwards.
type ImportPlan struct {
	Itinerary    itineraryModel.Itinerary
	Events       []eventModel.Event
	Budgets      []budgetModel.Budget
	Expenses     []expenseModel.Expense
	PackingItems []packingModel.PackingItem
}

// PlanImport validates a transfer document and materializes it under a
// fresh ID namespace. Order indices are re-densified from input positions,
// createdAt timestamps are set to now (an imported itinerary is a new
// record), and missing optional values receive their documented defaults.
func PlanImport(doc transferTypes.Document, gen idgen.Generator, nowMillis int64) (*ImportPlan, error) {
	if doc.Itinerary == nil {
		return nil, apperrors.InvalidFormat("transfer document is missing the itinerary section")
	}
	if doc.Events == nil {
		return nil, apperrors.InvalidFormat("transfer document is missing the events section")
	}
	if strings.TrimSpace(doc.Itinerary.Title) == "" {
		return nil, apperrors.InvalidFormat("transfer itinerary has no title")
	}

	plan := &ImportPlan{
		Itinerary: itineraryModel.Itinerary{
			ID:          gen.NewID(),
			Title:       doc.Itinerary.Title,
			CreatedAt:   nowMillis,
			TotalBudget: 0,
			Currency:    itineraryModel.DefaultCurrency,
		},
	}
	if doc.Itinerary.TotalBudget != nil && *doc.Itinerary.TotalBudget >= 0 {
		plan.Itinerary.TotalBudget = *doc.Itinerary.TotalBudget
	}
	if doc.Itinerary.Currency != nil && *doc.Itinerary.Currency != "" {
		plan.Itinerary.Currency = *doc.Itinerary.Currency
	}

	for position, ev := range doc.Events {
		if strings.TrimSpace(ev.Title) == "" {
			return nil, apperrors.InvalidFormat("transfer event at position %d has no title", position)
		}
		plan.Events = append(plan.Events, eventModel.Event{
			ID:          gen.NewID(),
			ItineraryID: plan.Itinerary.ID,
			Title:       ev.Title,
			Description: ev.Description,
			Location:    ev.Location,
			Latitude:    ev.Latitude,
			Longitude:   ev.Longitude,
			EventDate:   ev.EventDate,
			StartTime:   ev.StartTime,
			EndTime:     ev.EndTime,
			Icon:        ev.Icon,
			Link:        ev.Link,
			OrderIndex:  position,
		})
	}

	for position, b := range doc.Budgets {
		category := b.Category
		if !constants.IsValidBudgetCategory(category) {
			category = constants.CategoryFallback
		}
		plan.Budgets = append(plan.Budgets, budgetModel.Budget{
			ID:          gen.NewID(),
			ItineraryID: plan.Itinerary.ID,
			Category:    category,
			Name:        b.Name,
			Amount:      b.Amount,
			Notes:       b.Notes,
			OrderIndex:  position,
		})
	}

	var fallbackBudgetID string
	fallbackBudget := func() string {
		if fallbackBudgetID == "" {
			fallbackBudgetID = gen.NewID()
			plan.Budgets = append(plan.Budgets, budgetModel.Budget{
				ID:          fallbackBudgetID,
				ItineraryID: plan.Itinerary.ID,
				Category:    constants.CategoryFallback,
				Name:        fallbackBudgetName,
				Amount:      0,
				OrderIndex:  len(plan.Budgets),
			})
		}
		return fallbackBudgetID
	}

	for _, ex := range doc.Expenses {
		budgetID := ""
		if ex.BudgetIndex != nil && *ex.BudgetIndex >= 0 && *ex.BudgetIndex < len(doc.Budgets) {
			budgetID = plan.Budgets[*ex.BudgetIndex].ID
		} else {
			budgetID = fallbackBudget()
		}

		record := expenseModel.Expense{
			ID:          gen.NewID(),
			BudgetID:    budgetID,
			ItineraryID: plan.Itinerary.ID,
			Description: "",
			Amount:      0,
			Category:    constants.CategoryFallback,
			CreatedAt:   nowMillis,
		}
		if ex.Description != nil {
			record.Description = *ex.Description
		}
		if ex.Amount != nil {
			record.Amount = *ex.Amount
		}
		if ex.Category != nil && constants.IsValidBudgetCategory(*ex.Category) {
			record.Category = *ex.Category
		}
		if ex.ExpenseDate != nil && utils.IsCalendarDate(*ex.ExpenseDate) {
			record.Date = *ex.ExpenseDate
		}
		plan.Expenses = append(plan.Expenses, record)
	}

	for position, item := range doc.PackingItems {
		record := packingModel.PackingItem{
			ID:          gen.NewID(),
			ItineraryID: plan.Itinerary.ID,
			Category:    constants.CategoryFallback,
			Quantity:    1,
			OrderIndex:  position,
		}
		if item.Name != nil {
			record.Name = *item.Name
		}
		if item.Category != nil && constants.IsValidPackingCategory(*item.Category) {
			record.Category = *item.Category
		}
		if item.Quantity != nil && *item.Quantity >= 1 {
			record.Quantity = *item.Quantity
		}
		// "checked" is the older spelling and wins over "isPacked".
		if item.Checked != nil {
			record.IsPacked = *item.Checked
		} else if item.IsPacked != nil {
			record.IsPacked = *item.IsPacked
		}
		if item.Notes != nil {
			record.Notes = item.Notes
		}
		if item.IsEssential != nil {
			record.IsEssential = *item.IsEssential
		}
		plan.PackingItems = append(plan.PackingItems, record)
	}

	return plan, nil
}
