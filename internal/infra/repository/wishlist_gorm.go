package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/shelfstack/bookstore-api/internal/models"
)

type WishlistGormRepository struct {
	db *gorm.DB
}

func NewWishlistGormRepository(db *gorm.DB) *WishlistGormRepository {
	return &WishlistGormRepository{db: db}
}

// --------------------------------------------------
// Existence checks
// --------------------------------------------------

func (r *WishlistGormRepository) UserExists(
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

func (r *WishlistGormRepository) BookExists(
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
// Folders
// --------------------------------------------------

func (r *WishlistGormRepository) GetDefaultFolder(
	ctx context.Context,
	userID uint,
) (*models.WishlistFolder, error) {

	var folder models.WishlistFolder
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_default", userID).
		First(&folder).Error; err != nil {
		return nil, err
	}
	return &folder, nil
}

func (r *WishlistGormRepository) GetOldestFolder(
	ctx context.Context,
	userID uint,
) (*models.WishlistFolder, error) {

	var folder models.WishlistFolder
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		First(&folder).Error; err != nil {
		return nil, err
	}
	return &folder, nil
}

func (r *WishlistGormRepository) PromoteFolder(
	ctx context.Context,
	folderID uint,
) error {
	return r.db.WithContext(ctx).
		Model(&models.WishlistFolder{}).
		Where("id = ?", folderID).
		Update("is_default", true).Error
}

func (r *WishlistGormRepository) CreateFolder(
	ctx context.Context,
	folder *models.WishlistFolder,
) error {
	return r.db.WithContext(ctx).Create(folder).Error
}

func (r *WishlistGormRepository) GetFolderForUser(
	ctx context.Context,
	folderID uint,
	userID uint,
) (*models.WishlistFolder, error) {

	var folder models.WishlistFolder
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", folderID, userID).
		First(&folder).Error; err != nil {
		return nil, err
	}
	return &folder, nil
}

func (r *WishlistGormRepository) ListFolders(
	ctx context.Context,
	userID uint,
) ([]models.WishlistFolder, error) {

	var folders []models.WishlistFolder
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&folders).Error; err != nil {
		return nil, err
	}
	return folders, nil
}

// --------------------------------------------------
// Items
// --------------------------------------------------

func (r *WishlistGormRepository) CreateItem(
	ctx context.Context,
	item *models.WishlistItem,
) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *WishlistGormRepository) ListItems(
	ctx context.Context,
	userID uint,
) ([]models.WishlistItem, error) {

	var items []models.WishlistItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("added_at ASC, id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *WishlistGormRepository) DeleteItem(
	ctx context.Context,
	itemID uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.WishlistItem{}, itemID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IsDuplicateDefault matches the unique violation from
// idx_wishlist_folders_default across postgres and sqlite.
func (r *WishlistGormRepository) IsDuplicateDefault(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "idx_wishlist_folders_default") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
