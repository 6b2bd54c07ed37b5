package users

import (
	"context"
)

type Repository interface {
	// Create inserts a user and returns it with the store-generated id.
	// A duplicate username yields common.ErrorAlreadyExists.
	Create(ctx context.Context, user *User) (*User, error)

	// GetByUsername returns the user with the given username, or
	// common.ErrorNotFound.
	GetByUsername(ctx context.Context, username string) (*User, error)
}
