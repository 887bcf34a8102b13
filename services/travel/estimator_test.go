package travel

import (
	"context"
	"errors"
	"testing"

	"shiori-planner/apperrors"
)

type fakeGeocoder struct {
	coords map[string][2]float64
	calls  int
}

func (g *fakeGeocoder) Geocode(ctx context.Context, address string) (float64, float64, error) {
	g.calls++
	c, ok := g.coords[address]
	if !ok {
		return 0, 0, errors.New("no coordinates found")
	}
	return c[0], c[1], nil
}

type fakeRouter struct {
	duration float64
	distance float64
	err      error
	calls    int
	profile  string
}

func (r *fakeRouter) Directions(ctx context.Context, profile string, origin, destination [2]float64) (float64, float64, error) {
	r.calls++
	r.profile = profile
	if r.err != nil {
		return 0, 0, r.err
	}
	return r.duration, r.distance, nil
}

func TestEstimateSuccess(t *testing.T) {
	geocoder := &fakeGeocoder{coords: map[string][2]float64{
		"東京駅": {139.767, 35.681},
		"京都駅": {135.758, 34.985},
	}}
	router := &fakeRouter{duration: 9000, distance: 456700}

	est, err := NewEstimator(geocoder, router).Estimate(context.Background(), "東京駅", "京都駅", ModeDriving)
	if err != nil {
		t.Fatalf("Estimate() error: %v", err)
	}

	if geocoder.calls != 2 {
		t.Errorf("geocoder called %d times, want 2", geocoder.calls)
	}
	if est.Duration != 9000 || est.Distance != 456700 {
		t.Errorf("got (%v, %v), want (9000, 456700)", est.Duration, est.Distance)
	}
	if est.DurationText != "2時間 30分" {
		t.Errorf("DurationText = %q", est.DurationText)
	}
	if est.DistanceText != "456.7km" {
		t.Errorf("DistanceText = %q", est.DistanceText)
	}
	if est.OriginAddress != "東京駅" || est.DestinationAddress != "京都駅" {
		t.Error("addresses not echoed back")
	}
}

func TestEstimateGeocodingFailureSkipsRouting(t *testing.T) {
	geocoder := &fakeGeocoder{coords: map[string][2]float64{}}
	router := &fakeRouter{}

	_, err := NewEstimator(geocoder, router).Estimate(context.Background(), "nowhere", "elsewhere", ModeWalking)
	if err == nil {
		t.Fatal("expected a geocoding error")
	}
	if apperrors.KindOf(err) != apperrors.KindGeocoding {
		t.Errorf("error kind = %v, want geocoding", apperrors.KindOf(err))
	}
	if geocoder.calls != 1 {
		t.Errorf("geocoder called %d times, want 1 (first failure aborts)", geocoder.calls)
	}
	if router.calls != 0 {
		t.Error("router must not be called after a geocoding failure")
	}
}

func TestEstimateRoutingFailure(t *testing.T) {
	geocoder := &fakeGeocoder{coords: map[string][2]float64{
		"a": {1, 2},
		"b": {3, 4},
	}}
	router := &fakeRouter{err: errors.New("no route found")}

	_, err := NewEstimator(geocoder, router).Estimate(context.Background(), "a", "b", ModeCycling)
	if err == nil {
		t.Fatal("expected a routing error")
	}
	if apperrors.KindOf(err) != apperrors.KindRouting {
		t.Errorf("error kind = %v, want routing", apperrors.KindOf(err))
	}
}

func TestProfileFor(t *testing.T) {
	cases := []struct {
		mode string
		want string
	}{
		{ModeDriving, "driving-car"},
		{ModeWalking, "foot-walking"},
		{ModeCycling, "cycling-regular"},
		{ModeTransit, "public-transport"},
		{"hoverboard", "driving-car"},
		{"", "driving-car"},
	}

	for _, tc := range cases {
		if got := ProfileFor(tc.mode); got != tc.want {
			t.Errorf("ProfileFor(%q) = %q, want %q", tc.mode, got, tc.want)
		}
	}
}
