package routes

import (
	budgetController "shiori-planner/controllers/budget"
	catalogController "shiori-planner/controllers/catalog"
	eventController "shiori-planner/controllers/event"
	expenseController "shiori-planner/controllers/expense"
	itineraryController "shiori-planner/controllers/itinerary"
	packingController "shiori-planner/controllers/packing"
	reservationController "shiori-planner/controllers/reservation"
	travelController "shiori-planner/controllers/travel"
	"shiori-planner/idgen"
	"shiori-planner/logger"
	"shiori-planner/middleware"
	"shiori-planner/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	ids := idgen.NewUUIDGenerator()
	asyncLogger := logger.NewAsyncLogger(db)
	itineraries := itineraryController.NewItineraryController(db, ids)
	events := eventController.NewEventController(db, ids)
	packing := packingController.NewPackingController(db, ids)
	budgets := budgetController.NewBudgetController(db, ids)
	expenses := expenseController.NewExpenseController(db, ids)
	reservations := reservationController.NewReservationController(db, ids)
	travel := travelController.NewTravelController()
	catalogs := catalogController.NewCatalogController()

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()
	app.Use(middleware.RequestLogger(asyncLogger))

	// Health check
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
			Status:  fiber.StatusOK,
			Message: "Shiori planner API is running",
			Data:    nil,
		})
	})

	api := app.Group("/api")
	api.Get("/catalogs", catalogs.GetCatalogs)

	/*=============================================================================
	| Itinerary Routes
	===============================================================================*/
	itineraryGroup := api.Group("/itineraries")
	itineraryGroup.Get("/", itineraries.ListItineraries)
	itineraryGroup.Post("/", itineraries.CreateItinerary)
	itineraryGroup.Get("/export/:id", itineraries.ExportItinerary)
	itineraryGroup.Post("/import", itineraries.ImportItinerary)
	itineraryGroup.Get("/:id", itineraries.GetItinerary)
	itineraryGroup.Put("/:id", itineraries.UpdateItinerary)
	itineraryGroup.Delete("/:id", itineraries.DeleteItinerary)
	itineraryGroup.Get("/:id/summary", itineraries.GetItinerarySummary)
	itineraryGroup.Put("/:id/budget", itineraries.SetBudgetEnvelope)

	/*=============================================================================
	| Event Routes
	===============================================================================*/
	eventGroup := api.Group("/events")
	eventGroup.Get("/", events.ListEvents)
	eventGroup.Post("/", events.CreateEvent)
	eventGroup.Post("/reorder", events.ReorderEvents)
	eventGroup.Get("/:id", events.GetEvent)
	eventGroup.Put("/:id", events.UpdateEvent)
	eventGroup.Delete("/:id", events.DeleteEvent)

	/*=============================================================================
	| Packing List Routes
	===============================================================================*/
	packingGroup := api.Group("/packing-items")
	packingGroup.Get("/", packing.ListPackingItems)
	packingGroup.Post("/", packing.CreatePackingItem)
	packingGroup.Post("/reorder", packing.ReorderPackingItems)
	packingGroup.Get("/suggest", packing.SuggestPackingItems)
	packingGroup.Get("/:id", packing.GetPackingItem)
	packingGroup.Put("/:id", packing.UpdatePackingItem)
	packingGroup.Delete("/:id", packing.DeletePackingItem)

	/*=============================================================================
	| Budget Routes
	===============================================================================*/
	budgetGroup := api.Group("/budgets")
	budgetGroup.Get("/", budgets.ListBudgets)
	budgetGroup.Post("/", budgets.CreateBudget)
	budgetGroup.Get("/:id", budgets.GetBudget)
	budgetGroup.Put("/:id", budgets.UpdateBudget)
	budgetGroup.Delete("/:id", budgets.DeleteBudget)

	/*=============================================================================
	| Expense Routes
	===============================================================================*/
	expenseGroup := api.Group("/expenses")
	expenseGroup.Get("/", expenses.ListExpenses)
	expenseGroup.Post("/", expenses.CreateExpense)
	expenseGroup.Get("/:id", expenses.GetExpense)
	expenseGroup.Put("/:id", expenses.UpdateExpense)
	expenseGroup.Delete("/:id", expenses.DeleteExpense)

	/*=============================================================================
	| Reservation Routes
	===============================================================================*/
	reservationGroup := api.Group("/reservations")
	reservationGroup.Get("/", reservations.ListReservations)
	reservationGroup.Post("/", reservations.CreateReservation)
	reservationGroup.Get("/:id", reservations.GetReservation)
	reservationGroup.Put("/:id", reservations.UpdateReservation)
	reservationGroup.Delete("/:id", reservations.DeleteReservation)

	/*=============================================================================
	| Travel Time Routes
	===============================================================================*/
	api.Post("/maps/travel-time", travel.EstimateTravelTime)

	logger.Info("All routes registered")
}
