package catalog

import (
	"github.com/gofiber/fiber/v2"

	"shiori-planner/constants"
	reservationModel "shiori-planner/models/reservation"
	"shiori-planner/types"
)

// CatalogController serves the fixed option sets the client renders as
// pickers: categories, icons and the reservation enums.
type CatalogController struct{}

// NewCatalogController creates a new catalog controller
func NewCatalogController() *CatalogController {
	return &CatalogController{}
}

// Catalogs bundles every fixed option set in one response.
type Catalogs struct {
	PackingCategories   []constants.CatalogEntry             `json:"packingCategories"`
	BudgetCategories    []constants.CatalogEntry             `json:"budgetCategories"`
	EventIcons          []constants.CatalogEntry             `json:"eventIcons"`
	ReservationTypes    []reservationModel.ReservationType   `json:"reservationTypes"`
	ReservationStatuses []reservationModel.ReservationStatus `json:"reservationStatuses"`
}

// GetCatalogs returns all fixed option sets
func (cc *CatalogController) GetCatalogs(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Catalogs retrieved successfully",
		Data: Catalogs{
			PackingCategories:   constants.PackingCategories,
			BudgetCategories:    constants.BudgetCategories,
			EventIcons:          constants.EventIcons,
			ReservationTypes:    reservationModel.GetAllReservationTypes(),
			ReservationStatuses: reservationModel.GetAllReservationStatuses(),
		},
	})
}
