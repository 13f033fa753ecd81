package wishlist

import (
	"context"

	domain "github.com/shelfstack/bookstore-api/internal/domain/wishlist"
	"github.com/shelfstack/bookstore-api/internal/httperr"
	"github.com/shelfstack/bookstore-api/internal/models"
)

// ======================================================
// USE CASE
// ======================================================

// EnsureDefaultFolder makes sure the user has exactly one default folder
// and returns it. Idempotent. Two concurrent callers race on the partial
// unique index; the loser re-reads the winner's row instead of failing.
type EnsureDefaultFolder struct {
	repo domain.Repository
}

func NewEnsureDefaultFolder(repo domain.Repository) *EnsureDefaultFolder {
	return &EnsureDefaultFolder{repo: repo}
}

func (uc *EnsureDefaultFolder) Execute(
	ctx context.Context,
	userID uint,
) (*models.WishlistFolder, error) {

	ok, err := uc.repo.UserExists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("user_not_found")
	}

	// 1. Existing default wins.
	if folder, err := uc.repo.GetDefaultFolder(ctx, userID); err == nil {
		return folder, nil
	}

	// 2. Any folder at all: promote the oldest one.
	if folder, err := uc.repo.GetOldestFolder(ctx, userID); err == nil {
		if err := uc.repo.PromoteFolder(ctx, folder.ID); err != nil {
			if uc.repo.IsDuplicateDefault(err) {
				return uc.repo.GetDefaultFolder(ctx, userID)
			}
			return nil, err
		}
		folder.IsDefault = true
		return folder, nil
	}

	// 3. Fresh user: create the default.
	folder := &models.WishlistFolder{
		UserID:    userID,
		Name:      domain.DefaultFolderName,
		IsDefault: true,
	}
	if err := uc.repo.CreateFolder(ctx, folder); err != nil {
		if uc.repo.IsDuplicateDefault(err) {
			return uc.repo.GetDefaultFolder(ctx, userID)
		}
		return nil, err
	}
	return folder, nil
}
