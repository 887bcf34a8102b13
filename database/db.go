package database

import (
	"fmt"
	"os"

	"shiori-planner/logger"
	budgetModel "shiori-planner/models/budget"
	eventModel "shiori-planner/models/event"
	expenseModel "shiori-planner/models/expense"
	itineraryModel "shiori-planner/models/itinerary"
	logModel "shiori-planner/models/log"
	packingModel "shiori-planner/models/packing"
	reservationModel "shiori-planner/models/reservation"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB opens the PostgreSQL connection, migrates the schema and installs
// the foreign-key and index set the aggregate relies on.
func InitDB() (*gorm.DB, error) {
	if err := godotenv.Load(); err != nil {
		logger.Error("Error loading .env file", err)
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	database := os.Getenv("DB_DATABASE")
	user := os.Getenv("DB_USERNAME")
	password := os.Getenv("DB_PASSWORD")
	sslmode := os.Getenv("DB_SSLMODE")
	if sslmode == "" {
		sslmode = "disable"
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, database, sslmode)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return nil, err
	}
	logger.Success("Successfully connected to the database")

	if err := autoMigrate(); err != nil {
		logger.Error("Failed to run migrations", err)
		return nil, err
	}
	logger.Success("All migrations completed successfully")

	if err := createForeignKeyConstraints(); err != nil {
		logger.Error("Failed to create foreign key constraints", err)
		return nil, err
	}
	logger.Success("All foreign key constraints created successfully")

	if err := createIndexes(); err != nil {
		logger.Error("Failed to create indexes", err)
		return nil, err
	}
	logger.Success("All indexes created successfully")

	return DB, nil
}

// autoMigrate runs auto migration in dependency order so foreign keys can
// attach to existing tables afterwards.
func autoMigrate() error {
	// Stage 1: the aggregate root
	stage1Models := []interface{}{
		&itineraryModel.Itinerary{},
	}

	for _, model := range stage1Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 2: children of the itinerary
	stage2Models := []interface{}{
		&eventModel.Event{},
		&packingModel.PackingItem{},
		&budgetModel.Budget{},
	}

	for _, model := range stage2Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 3: grandchildren and logging
	remainingModels := []interface{}{
		&expenseModel.Expense{},
		&reservationModel.Reservation{},
		&logModel.Log{},
	}

	for _, model := range remainingModels {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	return nil
}

// createForeignKeyConstraints installs the cascade and nullify rules of the
// aggregate declaratively, so no service code re-implements them:
// deleting an itinerary removes all children, deleting a budget removes its
// expenses, deleting an event removes its reservation but only detaches
// linked budgets.
func createForeignKeyConstraints() error {
	constraints := []struct {
		name string
		sql  string
	}{
		{
			name: "fk_events_itinerary",
			sql: `ALTER TABLE events ADD CONSTRAINT fk_events_itinerary
				  FOREIGN KEY (itinerary_id) REFERENCES itineraries(id)
				  ON UPDATE CASCADE ON DELETE CASCADE`,
		},
		{
			name: "fk_packing_items_itinerary",
			sql: `ALTER TABLE packing_items ADD CONSTRAINT fk_packing_items_itinerary
				  FOREIGN KEY (itinerary_id) REFERENCES itineraries(id)
				  ON UPDATE CASCADE ON DELETE CASCADE`,
		},
		{
			name: "fk_budgets_itinerary",
			sql: `ALTER TABLE budgets ADD CONSTRAINT fk_budgets_itinerary
				  FOREIGN KEY (itinerary_id) REFERENCES itineraries(id)
				  ON UPDATE CASCADE ON DELETE CASCADE`,
		},
		{
			name: "fk_budgets_event",
			sql: `ALTER TABLE budgets ADD CONSTRAINT fk_budgets_event
				  FOREIGN KEY (event_id) REFERENCES events(id)
				  ON UPDATE CASCADE ON DELETE SET NULL`,
		},
		{
			name: "fk_expenses_budget",
			sql: `ALTER TABLE expenses ADD CONSTRAINT fk_expenses_budget
				  FOREIGN KEY (budget_id) REFERENCES budgets(id)
				  ON UPDATE CASCADE ON DELETE CASCADE`,
		},
		{
			name: "fk_expenses_itinerary",
			sql: `ALTER TABLE expenses ADD CONSTRAINT fk_expenses_itinerary
				  FOREIGN KEY (itinerary_id) REFERENCES itineraries(id)
				  ON UPDATE CASCADE ON DELETE CASCADE`,
		},
		{
			name: "fk_reservations_event",
			sql: `ALTER TABLE reservations ADD CONSTRAINT fk_reservations_event
				  FOREIGN KEY (event_id) REFERENCES events(id)
				  ON UPDATE CASCADE ON DELETE CASCADE`,
		},
		{
			name: "fk_reservations_itinerary",
			sql: `ALTER TABLE reservations ADD CONSTRAINT fk_reservations_itinerary
				  FOREIGN KEY (itinerary_id) REFERENCES itineraries(id)
				  ON UPDATE CASCADE ON DELETE CASCADE`,
		},
	}

	for _, constraint := range constraints {
		var exists bool
		checkSQL := `
			SELECT EXISTS (
				SELECT 1 FROM information_schema.table_constraints
				WHERE constraint_name = $1
			)
		`

		err := DB.Raw(checkSQL, constraint.name).Scan(&exists).Error
		if err != nil {
			logger.Warning(fmt.Sprintf("Failed to check constraint existence: %s - Error: %v", constraint.name, err))
			continue
		}

		if !exists {
			if err := DB.Exec(constraint.sql).Error; err != nil {
				logger.Warning(fmt.Sprintf("Failed to create constraint: %s - Error: %v", constraint.name, err))
			} else {
				logger.Success(fmt.Sprintf("Successfully created constraint: %s", constraint.name))
			}
		} else {
			logger.Debug(fmt.Sprintf("Constraint already exists: %s", constraint.name))
		}
	}

	return nil
}

// createIndexes creates additional indexes for the hot lookup paths.
func createIndexes() error {
	// Sibling-set scans used by the ordering engine
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_events_itinerary_order ON events(itinerary_id, order_index)").Error; err != nil {
		return fmt.Errorf("failed to create event ordering index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_packing_items_itinerary_order ON packing_items(itinerary_id, order_index)").Error; err != nil {
		return fmt.Errorf("failed to create packing item ordering index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_budgets_itinerary_order ON budgets(itinerary_id, order_index)").Error; err != nil {
		return fmt.Errorf("failed to create budget ordering index: %w", err)
	}

	// Spent-total aggregation
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_expenses_budget_id ON expenses(budget_id)").Error; err != nil {
		return fmt.Errorf("failed to create expense budget index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_expenses_itinerary_id ON expenses(itinerary_id)").Error; err != nil {
		return fmt.Errorf("failed to create expense itinerary index: %w", err)
	}

	// Reservation lookups by itinerary
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_reservations_itinerary_id ON reservations(itinerary_id)").Error; err != nil {
		return fmt.Errorf("failed to create reservation itinerary index: %w", err)
	}

	// Log indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_logs_created_at ON logs(created_at)").Error; err != nil {
		return fmt.Errorf("failed to create log created_at index: %w", err)
	}

	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}
