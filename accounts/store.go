// Package accounts stores the admin-area users (developer company
// logins). It is deliberately separate from the catalog: accounts are an
// access-control concern, not browseable data.
package accounts

import (
	"context"
	"errors"

	"github.com/JosueChaves01/Proyecto-Habitacional-sub000/models"
)

var (
	ErrNotFound   = errors.New("accounts: user not found")
	ErrEmailTaken = errors.New("accounts: email already registered")
)

type Store interface {
	Create(ctx context.Context, user models.User) error
	GetByEmail(ctx context.Context, email string) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
}
