package travel

import (
	"os"

	"github.com/gofiber/fiber/v2"

	"shiori-planner/apperrors"
	"shiori-planner/httpServices/geocode"
	"shiori-planner/httpServices/ors"
	"shiori-planner/logger"
	travelService "shiori-planner/services/travel"
	"shiori-planner/types"
	travelTypes "shiori-planner/types/travel"
)

// TravelController handles travel-time estimation requests
type TravelController struct {
	Estimator *travelService.Estimator
}

// NewTravelController creates a new travel controller wired to the external
// geocoding and routing providers
func NewTravelController() *TravelController {
	return &TravelController{
		Estimator: travelService.NewEstimator(
			geocode.NewClient(),
			ors.NewClient(os.Getenv("ORS_API_KEY")),
		),
	}
}

// EstimateTravelTime geocodes both addresses and routes between them
func (tc *TravelController) EstimateTravelTime(c *fiber.Ctx) error {
	var req travelTypes.EstimateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}
	if err := req.Validate(); err != nil {
		status := apperrors.HTTPStatus(err)
		return c.Status(status).JSON(types.ApiResponse{
			Status:  status,
			Message: err.Error(),
			Data:    nil,
		})
	}

	estimate, err := tc.Estimator.Estimate(c.UserContext(), req.Origin, req.Destination, req.Mode)
	if err != nil {
		logger.Error("Travel-time estimation failed", err)
		status := apperrors.HTTPStatus(err)
		return c.Status(status).JSON(types.ApiResponse{
			Status:  status,
			Message: err.Error(),
			Data:    nil,
		})
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Travel time estimated successfully",
		Data:    estimate,
	})
}
