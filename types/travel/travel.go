package travel

import "shiori-planner/apperrors"

// EstimateRequest asks for the travel time between two free-text addresses.
type EstimateRequest struct {
	Origin      string `json:"origin" validate:"required"`
	Destination string `json:"destination" validate:"required"`
	Mode        string `json:"mode"`
}

func (r EstimateRequest) Validate() error {
	if r.Origin == "" || r.Destination == "" {
		return apperrors.InvalidInput("origin and destination are both required")
	}
	return nil
}

// Estimate is the routing result with display strings for the UI.
type Estimate struct {
	Duration           float64 `json:"duration"` // seconds
	Distance           float64 `json:"distance"` // meters
	DurationText       string  `json:"durationText"`
	DistanceText       string  `json:"distanceText"`
	OriginAddress      string  `json:"originAddress"`
	DestinationAddress string  `json:"destinationAddress"`
}
