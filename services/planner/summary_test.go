package planner

import (
	"fmt"
	"testing"
	"time"

	eventModel "shiori-planner/models/event"
)

func strPtr(s string) *string { return &s }

func TestSortEventsForDisplay(t *testing.T) {
	events := []eventModel.Event{
		{ID: "undated", OrderIndex: 0},
		{ID: "day2-morning", EventDate: strPtr("2026-04-03"), StartTime: strPtr("09:00"), OrderIndex: 5},
		{ID: "day1-untimed", EventDate: strPtr("2026-04-02"), OrderIndex: 9},
		{ID: "day1-evening", EventDate: strPtr("2026-04-02"), StartTime: strPtr("19:00"), OrderIndex: 3},
		{ID: "day1-morning", EventDate: strPtr("2026-04-02"), StartTime: strPtr("08:30"), OrderIndex: 7},
	}

	SortEventsForDisplay(events)

	want := []string{"day1-morning", "day1-evening", "day1-untimed", "day2-morning", "undated"}
	for i, id := range want {
		if events[i].ID != id {
			t.Errorf("position %d: got %s, want %s", i, events[i].ID, id)
		}
	}
}

func TestSortEventsForDisplayMixedTimeForms(t *testing.T) {
	// Start times in the epoch-millis form must interleave correctly with
	// the "HH:MM" form.
	morning := time.Date(2026, 4, 2, 8, 0, 0, 0, time.Local).UnixMilli()
	events := []eventModel.Event{
		{ID: "clock-noon", EventDate: strPtr("2026-04-02"), StartTime: strPtr("12:00"), OrderIndex: 0},
		{ID: "millis-morning", EventDate: strPtr("2026-04-02"), StartTime: strPtr(fmt.Sprintf("%d", morning)), OrderIndex: 1},
	}

	SortEventsForDisplay(events)

	if events[0].ID != "millis-morning" {
		t.Errorf("epoch-millis 08:00 should sort before 12:00, got %s first", events[0].ID)
	}
}

func TestSortEventsForDisplayTiesFallBackToOrderIndex(t *testing.T) {
	events := []eventModel.Event{
		{ID: "second", EventDate: strPtr("2026-04-02"), StartTime: strPtr("10:00"), OrderIndex: 2},
		{ID: "first", EventDate: strPtr("2026-04-02"), StartTime: strPtr("10:00"), OrderIndex: 1},
	}

	SortEventsForDisplay(events)

	if events[0].ID != "first" {
		t.Error("equal date and time should fall back to order index")
	}
}

func TestSortEventsForDisplayUnparseableDateSortsLast(t *testing.T) {
	events := []eventModel.Event{
		{ID: "garbage", EventDate: strPtr("not a date"), OrderIndex: 0},
		{ID: "dated", EventDate: strPtr("2026-04-02"), OrderIndex: 1},
	}

	SortEventsForDisplay(events)

	if events[0].ID != "dated" {
		t.Error("an unparseable date should be treated as undated and sort last")
	}
}
