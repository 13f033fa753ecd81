package cart

import (
	"context"

	domain "github.com/shelfstack/bookstore-api/internal/domain/cart"
	"github.com/shelfstack/bookstore-api/internal/httperr"
)

type DeleteItem struct {
	repo domain.Repository
}

func NewDeleteItem(repo domain.Repository) *DeleteItem {
	return &DeleteItem{repo: repo}
}

func (uc *DeleteItem) Execute(
	ctx context.Context,
	cartID uint,
) error {
	if err := uc.repo.DeleteItem(ctx, cartID); err != nil {
		return httperr.ErrBusiness("cart_item_not_found")
	}
	return nil
}
