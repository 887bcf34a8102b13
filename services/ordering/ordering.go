package ordering

import (
	"gorm.io/gorm"

	"shiori-planner/apperrors"
)

// The ordering engine keeps order_index dense (0..n-1) within every
// (parent, collection) sibling set. Appends always recompute the max from
// storage rather than trusting any cached count, so gaps left by deletions
// never produce duplicate indices.

// NextIndex returns the order index a freshly appended sibling should get:
// max existing index + 1, or 0 when the parent has no siblings yet.
func NextIndex(tx *gorm.DB, table, parentColumn, parentID string) (int, error) {
	var next int
	err := tx.Table(table).
		Where(parentColumn+" = ?", parentID).
		Select("COALESCE(MAX(order_index) + 1, 0)").
		Scan(&next).Error
	if err != nil {
		return 0, apperrors.Storage("failed to compute next order index", err)
	}
	return next, nil
}

// PlanReorder computes the final index of every sibling given the explicit
// requested order. Requested IDs that are not siblings of the parent are
// ignored. Siblings missing from the request keep their previous relative
// order and are packed after the requested block, so the result is always
// dense. Applying the same request twice yields identical assignments.
//
// siblings must be the full ID list in current order_index order.
func PlanReorder(siblings []string, requested []string) map[string]int {
	owned := make(map[string]bool, len(siblings))
	for _, id := range siblings {
		owned[id] = true
	}

	assignments := make(map[string]int, len(siblings))
	position := 0
	for _, id := range requested {
		if !owned[id] {
			continue
		}
		if _, seen := assignments[id]; seen {
			continue
		}
		assignments[id] = position
		position++
	}
	for _, id := range siblings {
		if _, seen := assignments[id]; !seen {
			assignments[id] = position
			position++
		}
	}
	return assignments
}

// Reorder applies the requested ordering to the parent's sibling set as one
// atomic batch. Either every sibling receives its new index or none do.
func Reorder(db *gorm.DB, table, parentColumn, parentID string, requested []string) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		var siblings []string
		if err := tx.Table(table).
			Where(parentColumn+" = ?", parentID).
			Order("order_index ASC, id ASC").
			Pluck("id", &siblings).Error; err != nil {
			return err
		}

		for id, index := range PlanReorder(siblings, requested) {
			if err := tx.Table(table).
				Where("id = ? AND "+parentColumn+" = ?", id, parentID).
				Update("order_index", index).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return apperrors.Storage("failed to reorder "+table, err)
	}
	return nil
}
