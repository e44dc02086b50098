// Package users persists user accounts.
package users

import (
	"context"

	"github.com/dmitrijs2005/stockkeeper/internal/models"
)

type Repository interface {
	// Create inserts user and fills in its ID. A taken username yields
	// common.ErrDuplicateUsername.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// Exists reports whether exactly one user matches both fields
	// (case-sensitive equality).
	Exists(ctx context.Context, username, password string) (bool, error)
}
