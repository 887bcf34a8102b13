package ors

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestDirectionsSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/directions/foot-walking" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "test-key" {
			t.Errorf("Authorization = %q", got)
		}

		var req directionsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if len(req.Coordinates) != 2 || req.Coordinates[0][0] != 139.767 {
			t.Errorf("coordinates = %v", req.Coordinates)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"routes": [{"summary": {"distance": 1234.5, "duration": 900.0}}]}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL("test-key", server.URL)
	duration, distance, err := client.Directions(context.Background(), "foot-walking",
		[2]float64{139.767, 35.681}, [2]float64{139.700, 35.690})
	if err != nil {
		t.Fatalf("Directions() error: %v", err)
	}
	if duration != 900 || distance != 1234.5 {
		t.Errorf("got (%v, %v), want (900, 1234.5)", duration, distance)
	}
}

func TestDirectionsNoRoute(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"routes": []}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL("test-key", server.URL)
	_, _, err := client.Directions(context.Background(), "driving-car",
		[2]float64{0, 0}, [2]float64{1, 1})
	if err == nil {
		t.Fatal("expected an error when no route is returned")
	}
}

func TestDirectionsNonJSONErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html><body>Bad Gateway</body></html>"))
	}))
	defer server.Close()

	client := NewClientWithBaseURL("test-key", server.URL)
	_, _, err := client.Directions(context.Background(), "driving-car",
		[2]float64{0, 0}, [2]float64{1, 1})
	if err == nil {
		t.Fatal("expected an error for a non-OK status")
	}
	if !strings.Contains(err.Error(), "non-OK status") {
		t.Errorf("an HTML error body should report the status, got %q", err)
	}
}

func TestDirectionsAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": {"code": 2009, "message": "Route could not be found"}}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL("test-key", server.URL)
	_, _, err := client.Directions(context.Background(), "driving-car",
		[2]float64{0, 0}, [2]float64{1, 1})
	if err == nil {
		t.Fatal("expected the API error to surface")
	}
}
