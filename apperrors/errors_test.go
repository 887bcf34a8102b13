package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NotFound("itinerary %s not found", "x"), fiber.StatusNotFound},
		{"invalid input", InvalidInput("title is required"), fiber.StatusBadRequest},
		{"invalid format", InvalidFormat("document is missing the events section"), fiber.StatusUnprocessableEntity},
		{"conflict", Conflict("event already has a reservation"), fiber.StatusConflict},
		{"geocoding", Geocoding("failed to geocode origin", errors.New("boom")), fiber.StatusBadGateway},
		{"routing", Routing("failed to compute route", errors.New("boom")), fiber.StatusBadGateway},
		{"storage", Storage("failed to load itinerary", errors.New("boom")), fiber.StatusInternalServerError},
		{"unclassified", errors.New("something else"), fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HTTPStatus(tc.err); got != tc.want {
				t.Errorf("HTTPStatus() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestKindOfUnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("while importing: %w", InvalidFormat("transfer itinerary has no title"))
	if got := KindOf(wrapped); got != KindInvalidFormat {
		t.Errorf("KindOf() = %v, want %v", got, KindInvalidFormat)
	}
}

func TestErrorMessageIncludesCause(t *testing.T) {
	err := Storage("failed to load itinerary", errors.New("connection refused"))
	if got := err.Error(); got != "failed to load itinerary: connection refused" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, err.Err) {
		t.Error("wrapped cause should be reachable through Unwrap")
	}
}
