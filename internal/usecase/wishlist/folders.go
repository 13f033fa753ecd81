package wishlist

import (
	"context"

	domain "github.com/shelfstack/bookstore-api/internal/domain/wishlist"
	"github.com/shelfstack/bookstore-api/internal/httperr"
	"github.com/shelfstack/bookstore-api/internal/models"
)

// ======================================================
// CREATE FOLDER
// ======================================================

// CreateFolder inserts a plain, non-default folder. It deliberately does
// not run the default-folder bootstrap; that belongs to item placement.
type CreateFolder struct {
	repo domain.Repository
}

func NewCreateFolder(repo domain.Repository) *CreateFolder {
	return &CreateFolder{repo: repo}
}

func (uc *CreateFolder) Execute(
	ctx context.Context,
	userID uint,
	name string,
) (*models.WishlistFolder, error) {

	ok, err := uc.repo.UserExists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("user_not_found")
	}

	folder := &models.WishlistFolder{
		UserID: userID,
		Name:   name,
	}
	if err := uc.repo.CreateFolder(ctx, folder); err != nil {
		return nil, err
	}
	return folder, nil
}

// ======================================================
// LIST FOLDERS
// ======================================================

type ListFolders struct {
	repo domain.Repository
}

func NewListFolders(repo domain.Repository) *ListFolders {
	return &ListFolders{repo: repo}
}

func (uc *ListFolders) Execute(
	ctx context.Context,
	userID uint,
) ([]models.WishlistFolder, error) {

	ok, err := uc.repo.UserExists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("user_not_found")
	}

	return uc.repo.ListFolders(ctx, userID)
}
