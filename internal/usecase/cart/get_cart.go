package cart

import (
	"context"

	domain "github.com/shelfstack/bookstore-api/internal/domain/cart"
	"github.com/shelfstack/bookstore-api/internal/httperr"
	"github.com/shelfstack/bookstore-api/internal/models"
)

// GetCart reads a user's cart. An empty cart is surfaced as cart_empty
// (404), not an empty list; callers depend on that contract.
type GetCart struct {
	repo domain.Repository
}

func NewGetCart(repo domain.Repository) *GetCart {
	return &GetCart{repo: repo}
}

func (uc *GetCart) Execute(
	ctx context.Context,
	userID uint,
) ([]models.CartItem, error) {

	ok, err := uc.repo.UserExists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("user_not_found")
	}

	items, err := uc.repo.ListItems(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, httperr.ErrBusiness("cart_empty")
	}
	return items, nil
}
