// Package users is the Account Repository: CRUD over the users table plus
// the follower relation used for derived counts.
//
// Every mutation runs in its own transaction and returns the refreshed
// record. Errors are classified with the sentinels from package common:
// ErrorNotFound, ErrorAlreadyExists (unique violation) and ErrorDatabase
// (anything else, carrying the driver message).
package users

import (
	"context"

	"github.com/dmitrijs2005/bloghub/internal/server/models"
)

type Repository interface {
	FindByNickname(ctx context.Context, nickname string) (*models.Account, error)
	FindByID(ctx context.Context, id int64) (*models.Account, error)
	ListAll(ctx context.Context) ([]*models.Account, error)
	ExistsByNickname(ctx context.Context, nickname string) (bool, error)
	Insert(ctx context.Context, account *models.Account) (*models.Account, error)
	Update(ctx context.Context, id int64, patch models.AccountPatch) (*models.Account, error)
	Delete(ctx context.Context, id int64) error
	Follow(ctx context.Context, followerID, followedID int64) error
	Unfollow(ctx context.Context, followerID, followedID int64) error
}
