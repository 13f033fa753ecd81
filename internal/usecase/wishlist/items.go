package wishlist

import (
	"context"

	domain "github.com/shelfstack/bookstore-api/internal/domain/wishlist"
	"github.com/shelfstack/bookstore-api/internal/httperr"
	"github.com/shelfstack/bookstore-api/internal/models"
)

// ======================================================
// ADD ITEM
// ======================================================

// AddItem inserts a wishlist row after resolving all three references.
// FolderID zero means "no folder chosen" and routes the item into the
// default folder, bootstrapping it if needed. Duplicate books in a folder
// are allowed; the cart is the only place that deduplicates.
type AddItem struct {
	repo          domain.Repository
	ensureDefault *EnsureDefaultFolder
}

func NewAddItem(repo domain.Repository, ensureDefault *EnsureDefaultFolder) *AddItem {
	return &AddItem{
		repo:          repo,
		ensureDefault: ensureDefault,
	}
}

func (uc *AddItem) Execute(
	ctx context.Context,
	userID uint,
	folderID uint,
	bookID uint,
) (*models.WishlistItem, error) {

	ok, err := uc.repo.UserExists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("user_not_found")
	}

	if folderID == 0 {
		folder, err := uc.ensureDefault.Execute(ctx, userID)
		if err != nil {
			return nil, err
		}
		folderID = folder.ID
	} else {
		if _, err := uc.repo.GetFolderForUser(ctx, folderID, userID); err != nil {
			return nil, httperr.ErrBusiness("folder_not_found")
		}
	}

	ok, err = uc.repo.BookExists(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("book_not_found")
	}

	item := &models.WishlistItem{
		UserID:   userID,
		FolderID: folderID,
		BookID:   bookID,
	}
	if err := uc.repo.CreateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// ======================================================
// LIST ITEMS
// ======================================================

type ListItems struct {
	repo domain.Repository
}

func NewListItems(repo domain.Repository) *ListItems {
	return &ListItems{repo: repo}
}

func (uc *ListItems) Execute(
	ctx context.Context,
	userID uint,
) ([]models.WishlistItem, error) {

	ok, err := uc.repo.UserExists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("user_not_found")
	}

	return uc.repo.ListItems(ctx, userID)
}

// ======================================================
// DELETE ITEM
// ======================================================

type DeleteItem struct {
	repo domain.Repository
}

func NewDeleteItem(repo domain.Repository) *DeleteItem {
	return &DeleteItem{repo: repo}
}

func (uc *DeleteItem) Execute(
	ctx context.Context,
	itemID uint,
) error {
	if err := uc.repo.DeleteItem(ctx, itemID); err != nil {
		return httperr.ErrBusiness("item_not_found")
	}
	return nil
}
