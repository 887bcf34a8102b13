package event

import "testing"

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

func TestCreateEventRequestValidate(t *testing.T) {
	cases := []struct {
		name    string
		req     CreateEventRequest
		wantErr bool
	}{
		{
			name: "minimal valid",
			req:  CreateEventRequest{ItineraryID: "it-1", Title: "清水寺"},
		},
		{
			name: "fully populated",
			req: CreateEventRequest{
				ItineraryID: "it-1",
				Title:       "清水寺",
				Latitude:    f64Ptr(34.9948),
				Longitude:   f64Ptr(135.785),
				EventDate:   strPtr("2026-04-02"),
				StartTime:   strPtr("09:30"),
				EndTime:     strPtr("11:00"),
				Icon:        strPtr("camera"),
			},
		},
		{
			name:    "missing itinerary",
			req:     CreateEventRequest{Title: "清水寺"},
			wantErr: true,
		},
		{
			name:    "blank title",
			req:     CreateEventRequest{ItineraryID: "it-1", Title: "   "},
			wantErr: true,
		},
		{
			name:    "latitude without longitude",
			req:     CreateEventRequest{ItineraryID: "it-1", Title: "x", Latitude: f64Ptr(35)},
			wantErr: true,
		},
		{
			name:    "longitude without latitude",
			req:     CreateEventRequest{ItineraryID: "it-1", Title: "x", Longitude: f64Ptr(139)},
			wantErr: true,
		},
		{
			name:    "bad date",
			req:     CreateEventRequest{ItineraryID: "it-1", Title: "x", EventDate: strPtr("someday")},
			wantErr: true,
		},
		{
			name:    "bad start time",
			req:     CreateEventRequest{ItineraryID: "it-1", Title: "x", StartTime: strPtr("soonish")},
			wantErr: true,
		},
		{
			name: "epoch-millis start time",
			req:  CreateEventRequest{ItineraryID: "it-1", Title: "x", StartTime: strPtr("1767312000000")},
		},
		{
			name:    "unknown icon",
			req:     CreateEventRequest{ItineraryID: "it-1", Title: "x", Icon: strPtr("dragon")},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestUpdateEventRequestValidate(t *testing.T) {
	if err := (UpdateEventRequest{}).Validate(); err != nil {
		t.Errorf("empty patch should be valid, got %v", err)
	}
	if err := (UpdateEventRequest{Title: strPtr("  ")}).Validate(); err == nil {
		t.Error("blank title patch should be rejected")
	}

	// Clearing an optional field with an empty string is allowed.
	if err := (UpdateEventRequest{EventDate: strPtr(""), Icon: strPtr("")}).Validate(); err != nil {
		t.Errorf("clearing optional fields should be valid, got %v", err)
	}
}

func TestReorderEventsRequestValidate(t *testing.T) {
	if err := (ReorderEventsRequest{ItineraryID: "it-1", EventIDs: []string{}}).Validate(); err != nil {
		t.Errorf("empty but present ID list should be valid, got %v", err)
	}
	if err := (ReorderEventsRequest{ItineraryID: "it-1"}).Validate(); err == nil {
		t.Error("missing ID list should be rejected")
	}
	if err := (ReorderEventsRequest{EventIDs: []string{"ev-1"}}).Validate(); err == nil {
		t.Error("missing itinerary ID should be rejected")
	}
}
