package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Sentinel errors returned by store operations. Handlers translate these
// into HTTP status codes.
var (
	// ErrNotFound covers both a missing id and an id owned by another
	// user. The two cases are deliberately indistinguishable so a lookup
	// can never reveal that a record exists under someone else.
	ErrNotFound = errors.New("record not found")

	// ErrValidation marks a malformed request (empty reorder batch,
	// negative order index).
	ErrValidation = errors.New("invalid request")
)

// listOrder sorts explicitly ordered records first (ascending), records
// without an order last, and breaks ties by most recently updated.
const listOrder = "display_order IS NULL, display_order ASC, updated_at DESC"

// OrderUpdate is one (id, order) pair of a reorder batch.
type OrderUpdate struct {
	ID    string `json:"id" binding:"required"`
	Order int    `json:"order"`
}

// List returns every record owned by userID in display order.
func List[T any](db *gorm.DB, userID string) ([]T, error) {
	var items []T
	err := db.Where("user_id = ?", userID).Order(listOrder).Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Get fetches a single record by id, scoped to userID. The ownership
// predicate is part of the query itself, not filtered afterwards.
func Get[T any](db *gorm.DB, userID, id string) (*T, error) {
	var item T
	err := db.Where("id = ? AND user_id = ?", id, userID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Create persists a new record. The caller is responsible for having set
// id, ownership and defaults on the model.
func Create[T any](db *gorm.DB, item *T) error {
	return db.Create(item).Error
}

// Save writes back all fields of an existing record.
func Save[T any](db *gorm.DB, item *T) error {
	return db.Save(item).Error
}

// Delete permanently removes the record with the given id if userID owns
// it. Deleting an unknown or foreign id returns ErrNotFound.
func Delete[T any](db *gorm.DB, userID, id string) error {
	res := db.Where("id = ? AND user_id = ?", id, userID).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Reorder applies a batch of (id, order) pairs in a single transaction.
// Every id must belong to userID; one mismatch rolls back the whole batch
// so a concurrent List never observes a partial reorder. Duplicate order
// values are allowed, ties are broken by updated_at in List.
func Reorder[T any](db *gorm.DB, userID string, batch []OrderUpdate) error {
	if len(batch) == 0 {
		return fmt.Errorf("%w: reorder batch is empty", ErrValidation)
	}
	for _, item := range batch {
		if item.Order < 0 {
			return fmt.Errorf("%w: order must be non-negative", ErrValidation)
		}
	}
	return db.Transaction(func(tx *gorm.DB) error {
		for _, item := range batch {
			res := tx.Model(new(T)).
				Where("id = ? AND user_id = ?", item.ID, userID).
				Update("display_order", item.Order)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w: %s", ErrNotFound, item.ID)
			}
		}
		return nil
	})
}
