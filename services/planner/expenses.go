package planner

import (
	"errors"

	"gorm.io/gorm"

	"shiori-planner/apperrors"
	"shiori-planner/constants"
	expenseModel "shiori-planner/models/expense"
	expenseTypes "shiori-planner/types/expense"
)

// ListExpenses returns expenses scoped by itinerary, optionally narrowed to
// one budget, newest first.
func (s *Service) ListExpenses(itineraryID, budgetID string) ([]expenseModel.Expense, error) {
	query := s.DB.Where("itinerary_id = ?", itineraryID)
	if budgetID != "" {
		query = query.Where("budget_id = ?", budgetID)
	}
	var expenses []expenseModel.Expense
	if err := query.Order("date DESC, created_at DESC").Find(&expenses).Error; err != nil {
		return nil, apperrors.Storage("failed to list expenses", err)
	}
	return expenses, nil
}

// GetExpense fetches a single expense by ID.
func (s *Service) GetExpense(id string) (*expenseModel.Expense, error) {
	var ex expenseModel.Expense
	if err := s.DB.First(&ex, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("expense %s not found", id)
		}
		return nil, apperrors.Storage("failed to load expense", err)
	}
	return &ex, nil
}

// CreateExpense records a spend against an existing budget. The budget must
// belong to the stated itinerary.
func (s *Service) CreateExpense(req expenseTypes.CreateExpenseRequest) (*expenseModel.Expense, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.itineraryExists(req.ItineraryID); err != nil {
		return nil, err
	}
	budget, err := s.GetBudget(req.BudgetID)
	if err != nil {
		return nil, err
	}
	if budget.ItineraryID != req.ItineraryID {
		return nil, apperrors.InvalidInput("budget %s does not belong to itinerary %s", req.BudgetID, req.ItineraryID)
	}

	category := req.Category
	if category == "" {
		category = budget.Category
	}
	if category == "" {
		category = constants.CategoryFallback
	}

	ex := expenseModel.Expense{
		ID:            s.IDs.NewID(),
		BudgetID:      req.BudgetID,
		ItineraryID:   req.ItineraryID,
		Date:          req.Date,
		Amount:        req.Amount,
		Description:   req.Description,
		Category:      category,
		PaymentMethod: req.PaymentMethod,
		ReceiptImage:  req.ReceiptImage,
		CreatedAt:     s.nowMillis(),
	}
	if err := s.DB.Create(&ex).Error; err != nil {
		return nil, apperrors.Storage("failed to create expense", err)
	}
	return &ex, nil
}

// UpdateExpense applies a partial update; omitted fields keep their
// previous value.
func (s *Service) UpdateExpense(id string, req expenseTypes.UpdateExpenseRequest) (*expenseModel.Expense, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.GetExpense(id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Date != nil {
		updates["date"] = *req.Date
	}
	if req.Amount != nil {
		updates["amount"] = *req.Amount
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	setOptionalString(updates, "payment_method", req.PaymentMethod)
	setOptionalString(updates, "receipt_image", req.ReceiptImage)

	if len(updates) > 0 {
		if err := s.DB.Model(&expenseModel.Expense{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, apperrors.Storage("failed to update expense", err)
		}
	}
	return s.GetExpense(id)
}

// DeleteExpense removes the expense.
func (s *Service) DeleteExpense(id string) error {
	result := s.DB.Delete(&expenseModel.Expense{}, "id = ?", id)
	if result.Error != nil {
		return apperrors.Storage("failed to delete expense", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("expense %s not found", id)
	}
	return nil
}
