package wishlist

import (
	"context"

	"github.com/shelfstack/bookstore-api/internal/models"
)

// DefaultFolderName is used when the bootstrap has to create a folder.
const DefaultFolderName = "Default"

type Repository interface {
	// -------- Existence checks --------
	UserExists(
		ctx context.Context,
		userID uint,
	) (bool, error)

	BookExists(
		ctx context.Context,
		bookID uint,
	) (bool, error)

	// -------- Folders --------
	GetDefaultFolder(
		ctx context.Context,
		userID uint,
	) (*models.WishlistFolder, error)

	GetOldestFolder(
		ctx context.Context,
		userID uint,
	) (*models.WishlistFolder, error)

	// PromoteFolder sets is_default on an existing folder. The partial
	// unique index rejects the call when another folder already won.
	PromoteFolder(
		ctx context.Context,
		folderID uint,
	) error

	CreateFolder(
		ctx context.Context,
		folder *models.WishlistFolder,
	) error

	GetFolderForUser(
		ctx context.Context,
		folderID uint,
		userID uint,
	) (*models.WishlistFolder, error)

	ListFolders(
		ctx context.Context,
		userID uint,
	) ([]models.WishlistFolder, error)

	// -------- Items --------
	CreateItem(
		ctx context.Context,
		item *models.WishlistItem,
	) error

	ListItems(
		ctx context.Context,
		userID uint,
	) ([]models.WishlistItem, error)

	DeleteItem(
		ctx context.Context,
		itemID uint,
	) error

	// IsDuplicateDefault reports whether err is the unique violation from
	// the one-default-per-user index.
	IsDuplicateDefault(err error) bool
}
