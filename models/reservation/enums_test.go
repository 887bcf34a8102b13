package reservation

import "testing"

func TestReservationTypeIsValid(t *testing.T) {
	for _, rt := range GetAllReservationTypes() {
		if !rt.IsValid() {
			t.Errorf("%s should be valid", rt)
		}
	}
	if ReservationType("spaceship").IsValid() {
		t.Error("unknown type should be invalid")
	}
	if ReservationType("").IsValid() {
		t.Error("empty type should be invalid")
	}
}

func TestReservationStatusIsValid(t *testing.T) {
	for _, rs := range GetAllReservationStatuses() {
		if !rs.IsValid() {
			t.Errorf("%s should be valid", rs)
		}
	}
	if ReservationStatus("maybe").IsValid() {
		t.Error("unknown status should be invalid")
	}
}

func TestReservationStatusIsSettled(t *testing.T) {
	cases := []struct {
		status ReservationStatus
		want   bool
	}{
		{StatusNotBooked, false},
		{StatusPending, false},
		{StatusConfirmed, false},
		{StatusPaid, true},
		{StatusCancelled, true},
		{StatusCompleted, true},
	}

	for _, tc := range cases {
		if got := tc.status.IsSettled(); got != tc.want {
			t.Errorf("%s.IsSettled() = %v, want %v", tc.status, got, tc.want)
		}
	}
}
