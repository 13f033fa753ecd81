package cart

import (
	"context"

	domain "github.com/shelfstack/bookstore-api/internal/domain/cart"
	"github.com/shelfstack/bookstore-api/internal/httperr"
	"github.com/shelfstack/bookstore-api/internal/models"
)

// ======================================================
// USE CASE
// ======================================================

// AddToCart keeps one line per (user, book): a repeat add lands on the
// existing row and bumps its quantity. The upsert rides on the composite
// unique index, so two concurrent adds serialize instead of duplicating.
type AddToCart struct {
	repo domain.Repository
}

func NewAddToCart(repo domain.Repository) *AddToCart {
	return &AddToCart{repo: repo}
}

func (uc *AddToCart) Execute(
	ctx context.Context,
	userID uint,
	bookID uint,
	quantity int,
) (*models.CartItem, error) {

	ok, err := uc.repo.UserExists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("user_not_found")
	}

	ok, err = uc.repo.BookExists(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("book_not_found")
	}

	if quantity < 1 {
		quantity = 1
	}

	item := &models.CartItem{
		UserID:   userID,
		BookID:   bookID,
		Quantity: quantity,
	}
	if err := uc.repo.Upsert(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}
