package wishlist

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbpkg "github.com/shelfstack/bookstore-api/internal/db"
	domain "github.com/shelfstack/bookstore-api/internal/domain/wishlist"
	"github.com/shelfstack/bookstore-api/internal/httperr"
	infraRepo "github.com/shelfstack/bookstore-api/internal/infra/repository"
	"github.com/shelfstack/bookstore-api/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	user := &models.User{Name: "Reader", Email: uuid.NewString() + "@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedBook(t *testing.T, db *gorm.DB) *models.Book {
	t.Helper()
	book := &models.Book{Title: "Dune", AuthorName: "Herbert", Category: "Sci-Fi", Price: 20, Stock: 5}
	require.NoError(t, db.Create(book).Error)
	return book
}

// ------------------------------
// EnsureDefaultFolder
// ------------------------------

func TestEnsureDefaultFolder_FreshUser(t *testing.T) {
	db := newTestDB(t)
	repo := infraRepo.NewWishlistGormRepository(db)
	uc := NewEnsureDefaultFolder(repo)
	user := seedUser(t, db)

	folder, err := uc.Execute(context.Background(), user.ID)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultFolderName, folder.Name)
	assert.True(t, folder.IsDefault)
	assert.Equal(t, user.ID, folder.UserID)
}

func TestEnsureDefaultFolder_Idempotent(t *testing.T) {
	db := newTestDB(t)
	repo := infraRepo.NewWishlistGormRepository(db)
	uc := NewEnsureDefaultFolder(repo)
	user := seedUser(t, db)

	first, err := uc.Execute(context.Background(), user.ID)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), user.ID)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.WishlistFolder{}).
		Where("user_id = ? AND is_default", user.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestEnsureDefaultFolder_PromotesOldest(t *testing.T) {
	db := newTestDB(t)
	repo := infraRepo.NewWishlistGormRepository(db)
	uc := NewEnsureDefaultFolder(repo)
	user := seedUser(t, db)

	existing := &models.WishlistFolder{UserID: user.ID, Name: "Summer reads"}
	require.NoError(t, db.Create(existing).Error)

	folder, err := uc.Execute(context.Background(), user.ID)
	require.NoError(t, err)

	assert.Equal(t, existing.ID, folder.ID)
	assert.True(t, folder.IsDefault)

	// No new folder was created.
	var count int64
	require.NoError(t, db.Model(&models.WishlistFolder{}).
		Where("user_id = ?", user.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestEnsureDefaultFolder_UnknownUser(t *testing.T) {
	db := newTestDB(t)
	uc := NewEnsureDefaultFolder(infraRepo.NewWishlistGormRepository(db))

	_, err := uc.Execute(context.Background(), 9999)
	assert.True(t, httperr.IsBusiness(err, "user_not_found"))
}

// racingRepo simulates the second writer in a default-folder race: its
// CreateFolder hits the unique index because "another request" created
// the default in between the read and the write.
type racingRepo struct {
	domain.Repository
	db      *gorm.DB
	winner  *models.WishlistFolder
	tripped bool
}

func (r *racingRepo) CreateFolder(ctx context.Context, folder *models.WishlistFolder) error {
	if folder.IsDefault && !r.tripped {
		r.tripped = true
		// The concurrent winner lands first.
		r.winner = &models.WishlistFolder{
			UserID:    folder.UserID,
			Name:      domain.DefaultFolderName,
			IsDefault: true,
		}
		if err := r.db.Create(r.winner).Error; err != nil {
			return err
		}
		// Now the caller's own insert collides.
		return r.db.Create(folder).Error
	}
	return r.Repository.CreateFolder(ctx, folder)
}

func TestEnsureDefaultFolder_RaceLoserReadsWinner(t *testing.T) {
	db := newTestDB(t)
	base := infraRepo.NewWishlistGormRepository(db)
	repo := &racingRepo{Repository: base, db: db}
	uc := NewEnsureDefaultFolder(repo)
	user := seedUser(t, db)

	folder, err := uc.Execute(context.Background(), user.ID)
	require.NoError(t, err)
	require.True(t, repo.tripped)

	assert.Equal(t, repo.winner.ID, folder.ID)

	var count int64
	require.NoError(t, db.Model(&models.WishlistFolder{}).
		Where("user_id = ? AND is_default", user.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

// ------------------------------
// Folders
// ------------------------------

func TestCreateFolder_NotDefault(t *testing.T) {
	db := newTestDB(t)
	repo := infraRepo.NewWishlistGormRepository(db)
	uc := NewCreateFolder(repo)
	user := seedUser(t, db)

	folder, err := uc.Execute(context.Background(), user.ID, "To read")
	require.NoError(t, err)

	assert.Equal(t, "To read", folder.Name)
	assert.False(t, folder.IsDefault)
}

func TestListFolders_OrderedByCreation(t *testing.T) {
	db := newTestDB(t)
	repo := infraRepo.NewWishlistGormRepository(db)
	user := seedUser(t, db)

	create := NewCreateFolder(repo)
	for _, name := range []string{"first", "second", "third"} {
		_, err := create.Execute(context.Background(), user.ID, name)
		require.NoError(t, err)
	}

	folders, err := NewListFolders(repo).Execute(context.Background(), user.ID)
	require.NoError(t, err)

	require.Len(t, folders, 3)
	assert.Equal(t, "first", folders[0].Name)
	assert.Equal(t, "third", folders[2].Name)
}

func TestListFolders_UnknownUser(t *testing.T) {
	db := newTestDB(t)
	uc := NewListFolders(infraRepo.NewWishlistGormRepository(db))

	_, err := uc.Execute(context.Background(), 9999)
	assert.True(t, httperr.IsBusiness(err, "user_not_found"))
}

// ------------------------------
// Items
// ------------------------------

func newItemUCs(db *gorm.DB) (*AddItem, *ListItems, *DeleteItem) {
	repo := infraRepo.NewWishlistGormRepository(db)
	ensure := NewEnsureDefaultFolder(repo)
	return NewAddItem(repo, ensure), NewListItems(repo), NewDeleteItem(repo)
}

func TestAddItem_ExplicitFolder(t *testing.T) {
	db := newTestDB(t)
	add, _, _ := newItemUCs(db)
	user := seedUser(t, db)
	book := seedBook(t, db)

	folder := &models.WishlistFolder{UserID: user.ID, Name: "Classics"}
	require.NoError(t, db.Create(folder).Error)

	item, err := add.Execute(context.Background(), user.ID, folder.ID, book.ID)
	require.NoError(t, err)

	assert.Equal(t, folder.ID, item.FolderID)
	assert.Equal(t, book.ID, item.BookID)
}

func TestAddItem_DefaultFolderWhenNoneChosen(t *testing.T) {
	db := newTestDB(t)
	add, _, _ := newItemUCs(db)
	user := seedUser(t, db)
	book := seedBook(t, db)

	item, err := add.Execute(context.Background(), user.ID, 0, book.ID)
	require.NoError(t, err)

	var folder models.WishlistFolder
	require.NoError(t, db.First(&folder, item.FolderID).Error)
	assert.True(t, folder.IsDefault)
	assert.Equal(t, domain.DefaultFolderName, folder.Name)
}

// Unlike the cart, repeated wishlist adds stack up as separate rows.
func TestAddItem_DuplicatesAllowed(t *testing.T) {
	db := newTestDB(t)
	add, list, _ := newItemUCs(db)
	user := seedUser(t, db)
	book := seedBook(t, db)

	_, err := add.Execute(context.Background(), user.ID, 0, book.ID)
	require.NoError(t, err)
	_, err = add.Execute(context.Background(), user.ID, 0, book.ID)
	require.NoError(t, err)

	items, err := list.Execute(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestAddItem_UnresolvedReferences(t *testing.T) {
	db := newTestDB(t)
	add, _, _ := newItemUCs(db)
	user := seedUser(t, db)
	book := seedBook(t, db)

	tests := []struct {
		name     string
		userID   uint
		folderID uint
		bookID   uint
		code     string
	}{
		{"unknown user", 9999, 0, book.ID, "user_not_found"},
		{"unknown folder", user.ID, 9999, book.ID, "folder_not_found"},
		{"unknown book", user.ID, 0, 9999, "book_not_found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := add.Execute(context.Background(), tt.userID, tt.folderID, tt.bookID)
			assert.True(t, httperr.IsBusiness(err, tt.code), "got %v", err)
		})
	}
}

func TestAddItem_ForeignFolderRejected(t *testing.T) {
	db := newTestDB(t)
	add, _, _ := newItemUCs(db)
	owner := seedUser(t, db)
	other := seedUser(t, db)
	book := seedBook(t, db)

	folder := &models.WishlistFolder{UserID: owner.ID, Name: "Private"}
	require.NoError(t, db.Create(folder).Error)

	_, err := add.Execute(context.Background(), other.ID, folder.ID, book.ID)
	assert.True(t, httperr.IsBusiness(err, "folder_not_found"))
}

func TestDeleteItem(t *testing.T) {
	db := newTestDB(t)
	add, list, del := newItemUCs(db)
	user := seedUser(t, db)
	book := seedBook(t, db)

	item, err := add.Execute(context.Background(), user.ID, 0, book.ID)
	require.NoError(t, err)

	require.NoError(t, del.Execute(context.Background(), item.ID))

	items, err := list.Execute(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	err = del.Execute(context.Background(), item.ID)
	assert.True(t, httperr.IsBusiness(err, "item_not_found"))
}
