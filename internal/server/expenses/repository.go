package expenses

import (
	"context"
)

type Repository interface {
	// Create inserts an expense owned by e.UserID and returns it with the
	// store-generated id.
	Create(ctx context.Context, e *Expense) (*Expense, error)

	// List returns expenses of every household member, newest date first,
	// each joined with the owning username. A nil rng returns all rows;
	// otherwise only rows with date in [rng.Start, rng.End).
	List(ctx context.Context, rng *MonthRange) ([]Expense, error)

	// GetByID returns a single expense, or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*Expense, error)

	// Delete removes the expense only when it is owned by userID. When no
	// row matches the combined predicate the result is common.ErrorNotFound,
	// whether the row is missing or owned by someone else.
	Delete(ctx context.Context, id, userID string) error

	// SetReceiptKey records the object-storage key of an uploaded receipt,
	// subject to the same id+owner predicate as Delete.
	SetReceiptKey(ctx context.Context, id, userID, key string) error
}
