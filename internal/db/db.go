package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/shelfstack/bookstore-api/internal/config"
	"github.com/shelfstack/bookstore-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

// Migrate runs AutoMigrate plus the partial unique index gorm tags cannot
// express: one default wishlist folder per user. The surplus writer in a
// default-folder race hits this index and falls back to reading the winner.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Book{},
		&models.Review{},
		&models.WishlistFolder{},
		&models.WishlistItem{},
		&models.CartItem{},
	); err != nil {
		return err
	}

	return db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_wishlist_folders_default
        ON wishlist_folders (user_id)
        WHERE is_default
    `).Error
}
