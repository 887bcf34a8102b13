package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGeocodeFirstMatchWins(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "東京駅" {
			t.Errorf("query = %q, want %q", got, "東京駅")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"geometry": {"coordinates": [139.767, 35.681]}, "properties": {"title": "東京駅"}},
			{"geometry": {"coordinates": [135.0, 34.0]}, "properties": {"title": "別の駅"}}
		]`))
	}))
	defer server.Close()

	lon, lat, err := NewClientWithBaseURL(server.URL).Geocode(context.Background(), "東京駅")
	if err != nil {
		t.Fatalf("Geocode() error: %v", err)
	}
	if lon != 139.767 || lat != 35.681 {
		t.Errorf("got (%v, %v), want (139.767, 35.681)", lon, lat)
	}
}

func TestGeocodeZeroResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	_, _, err := NewClientWithBaseURL(server.URL).Geocode(context.Background(), "存在しない住所")
	if err == nil {
		t.Fatal("expected an error for zero matches")
	}
}

func TestGeocodeNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, _, err := NewClientWithBaseURL(server.URL).Geocode(context.Background(), "東京駅")
	if err == nil {
		t.Fatal("expected an error for a non-OK status")
	}
}
