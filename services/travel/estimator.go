package travel

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"shiori-planner/apperrors"
	travelTypes "shiori-planner/types/travel"
	"shiori-planner/utils"
)

// Geocoder resolves a free-text address to (longitude, latitude).
type Geocoder interface {
	Geocode(ctx context.Context, address string) (float64, float64, error)
}

// Router computes a route between two coordinate pairs for a routing
// profile, returning duration in seconds and distance in meters.
type Router interface {
	Directions(ctx context.Context, profile string, origin, destination [2]float64) (float64, float64, error)
}

// Travel modes exposed to clients, mapped to ORS routing profiles.
const (
	ModeDriving = "driving"
	ModeWalking = "walking"
	ModeCycling = "cycling"
	ModeTransit = "transit"
)

// ProfileFor maps a client travel mode to its routing profile. Unknown
// modes fall back to driving.
func ProfileFor(mode string) string {
	switch mode {
	case ModeWalking:
		return "foot-walking"
	case ModeCycling:
		return "cycling-regular"
	case ModeTransit:
		return "public-transport"
	default:
		return "driving-car"
	}
}

// Estimator answers travel-time queries between two addresses: geocode
// origin, geocode destination, route — three sequential calls, single
// attempt each. Geocoding is rate-limited to one request per second per
// the provider's usage policy.
type Estimator struct {
	geocoder Geocoder
	router   Router
	limiter  *rate.Limiter
}

func NewEstimator(geocoder Geocoder, router Router) *Estimator {
	return &Estimator{
		geocoder: geocoder,
		router:   router,
		limiter:  rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

// Estimate resolves both addresses and routes between them. The first
// failing step aborts the call: a geocoding failure never reaches the
// routing provider.
func (e *Estimator) Estimate(ctx context.Context, origin, destination, mode string) (*travelTypes.Estimate, error) {
	if err := e.limiter.Wait(ctx); err != nil {
		return nil, apperrors.Geocoding("geocoding rate limit wait aborted", err)
	}
	originLon, originLat, err := e.geocoder.Geocode(ctx, origin)
	if err != nil {
		return nil, apperrors.Geocoding("failed to geocode origin", err)
	}

	if err := e.limiter.Wait(ctx); err != nil {
		return nil, apperrors.Geocoding("geocoding rate limit wait aborted", err)
	}
	destLon, destLat, err := e.geocoder.Geocode(ctx, destination)
	if err != nil {
		return nil, apperrors.Geocoding("failed to geocode destination", err)
	}

	duration, distance, err := e.router.Directions(ctx, ProfileFor(mode),
		[2]float64{originLon, originLat}, [2]float64{destLon, destLat})
	if err != nil {
		return nil, apperrors.Routing("failed to compute route", err)
	}

	return &travelTypes.Estimate{
		Duration:           duration,
		Distance:           distance,
		DurationText:       utils.FormatDuration(duration),
		DistanceText:       utils.FormatDistance(distance),
		OriginAddress:      origin,
		DestinationAddress: destination,
	}, nil
}
