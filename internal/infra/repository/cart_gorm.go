package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shelfstack/bookstore-api/internal/models"
)

type CartGormRepository struct {
	db *gorm.DB
}

func NewCartGormRepository(db *gorm.DB) *CartGormRepository {
	return &CartGormRepository{db: db}
}

func (r *CartGormRepository) UserExists(
	ctx context.Context,
	userID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CartGormRepository) BookExists(
	ctx context.Context,
	bookID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Book{}).
		Where("id = ?", bookID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Upsert (insert or increment)
// --------------------------------------------------

func (r *CartGormRepository) Upsert(
	ctx context.Context,
	item *models.CartItem,
) error {

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "book_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity":   gorm.Expr("cart_items.quantity + ?", item.Quantity),
				"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
			}),
		}).
		Create(item).Error
	if err != nil {
		return err
	}

	// The conflict path leaves item holding the requested quantity, not
	// the accumulated one. Read the persisted row back into a fresh value
	// so no stale primary key leaks into the query.
	var row models.CartItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ?", item.UserID, item.BookID).
		First(&row).Error; err != nil {
		return err
	}
	*item = row
	return nil
}

func (r *CartGormRepository) ListItems(
	ctx context.Context,
	userID uint,
) ([]models.CartItem, error) {

	var items []models.CartItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CartGormRepository) DeleteItem(
	ctx context.Context,
	cartID uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.CartItem{}, cartID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
