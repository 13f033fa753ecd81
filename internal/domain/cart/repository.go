package cart

import (
	"context"

	"github.com/shelfstack/bookstore-api/internal/models"
)

type Repository interface {
	UserExists(
		ctx context.Context,
		userID uint,
	) (bool, error)

	BookExists(
		ctx context.Context,
		bookID uint,
	) (bool, error)

	// Upsert inserts the row or, when (user_id, book_id) already exists,
	// adds quantity onto the existing row. It fills item in with the
	// persisted state either way.
	Upsert(
		ctx context.Context,
		item *models.CartItem,
	) error

	ListItems(
		ctx context.Context,
		userID uint,
	) ([]models.CartItem, error)

	DeleteItem(
		ctx context.Context,
		cartID uint,
	) error
}
