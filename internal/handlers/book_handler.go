package handlers

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shelfstack/bookstore-api/internal/domain/catalog"
	"github.com/shelfstack/bookstore-api/internal/httperr"
	"github.com/shelfstack/bookstore-api/internal/httpresp"
	"github.com/shelfstack/bookstore-api/internal/images"
	"github.com/shelfstack/bookstore-api/internal/models"
	"github.com/shelfstack/bookstore-api/internal/storage"
)

type BookHandler struct {
	db     *gorm.DB
	covers storage.CoverStorage
}

func NewBookHandler(db *gorm.DB, covers storage.CoverStorage) *BookHandler {
	return &BookHandler{db: db, covers: covers}
}

// --------- Handlers ---------

// Create persists a catalog row from a multipart form. The cover image is
// optional; when present it is normalized to webp and pushed to storage
// before the row is written.
func (h *BookHandler) Create(c *gin.Context) {
	title := c.PostForm("title")
	authorName := c.PostForm("author_name")
	if title == "" || authorName == "" {
		httperr.BadRequest(c, "invalid_request", "title and author_name are required.")
		return
	}

	category, err := catalog.Parse(c.PostForm("category"))
	if err != nil {
		httperr.BadRequest(c, "invalid_category", "Unknown book category.")
		return
	}

	rating, _ := strconv.ParseFloat(c.PostForm("rating"), 64)
	price, _ := strconv.ParseFloat(c.PostForm("price"), 64)
	stock, _ := strconv.Atoi(c.PostForm("stock"))
	publishYear, _ := strconv.Atoi(c.PostForm("publish_year"))

	book := models.Book{
		Title:       title,
		AuthorName:  authorName,
		Rating:      rating,
		Price:       price,
		Category:    string(category),
		Stock:       stock,
		Description: c.PostForm("description"),
		PublishYear: publishYear,
	}

	if file, err := c.FormFile("cover_image"); err == nil {
		url, err := h.storeCover(c, file)
		if err != nil {
			return
		}
		book.CoverPhoto = url
	}

	if err := h.db.Create(&book).Error; err != nil {
		httperr.Internal(c, "failed_to_create_book", "Could not create the book.")
		return
	}

	httpresp.Created(c, book)
}

// Update overwrites the provided fields only. A new cover replaces the
// stored reference; without one the existing cover stays.
func (h *BookHandler) Update(c *gin.Context) {
	var book models.Book
	if err := h.db.First(&book, c.Param("book_id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "book_not_found", "Book not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_book", "Could not load the book.")
		return
	}

	if v, ok := c.GetPostForm("title"); ok {
		book.Title = v
	}
	if v, ok := c.GetPostForm("author_name"); ok {
		book.AuthorName = v
	}
	if v, ok := c.GetPostForm("category"); ok {
		category, err := catalog.Parse(v)
		if err != nil {
			httperr.BadRequest(c, "invalid_category", "Unknown book category.")
			return
		}
		book.Category = string(category)
	}
	if v, ok := c.GetPostForm("rating"); ok {
		book.Rating, _ = strconv.ParseFloat(v, 64)
	}
	if v, ok := c.GetPostForm("price"); ok {
		book.Price, _ = strconv.ParseFloat(v, 64)
	}
	if v, ok := c.GetPostForm("stock"); ok {
		book.Stock, _ = strconv.Atoi(v)
	}
	if v, ok := c.GetPostForm("publish_year"); ok {
		book.PublishYear, _ = strconv.Atoi(v)
	}
	if v, ok := c.GetPostForm("description"); ok {
		book.Description = v
	}

	if file, err := c.FormFile("cover_image"); err == nil {
		url, err := h.storeCover(c, file)
		if err != nil {
			return
		}
		book.CoverPhoto = url
	}

	if err := h.db.Save(&book).Error; err != nil {
		httperr.Internal(c, "failed_to_update_book", "Could not update the book.")
		return
	}

	httpresp.OK(c, book)
}

// Delete removes the book and every row referencing it, in one
// transaction. No review, wishlist or cart row may dangle.
func (h *BookHandler) Delete(c *gin.Context) {
	var book models.Book
	if err := h.db.First(&book, c.Param("book_id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "book_not_found", "Book not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_book", "Could not load the book.")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("book_id = ?", book.ID).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("book_id = ?", book.ID).Delete(&models.WishlistItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("book_id = ?", book.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&book).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_delete_book", "Could not delete the book.")
		return
	}

	httpresp.OK(c, gin.H{"message": "book deleted"})
}

func (h *BookHandler) List(c *gin.Context) {
	var books []models.Book
	if err := h.db.Order("id ASC").Find(&books).Error; err != nil {
		httperr.Internal(c, "failed_to_list_books", "Could not list books.")
		return
	}

	httpresp.List(c, books)
}

// --------- Helpers ---------

// storeCover normalizes and uploads one cover. It writes the HTTP error
// itself and returns a non-nil error so callers just bail out.
func (h *BookHandler) storeCover(c *gin.Context, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		httperr.BadRequest(c, "invalid_cover_image", "Could not read the cover image.")
		return "", err
	}
	defer src.Close()

	normalized, err := images.NormalizeCover(src)
	if err != nil {
		httperr.BadRequest(c, "invalid_cover_image", "The cover image could not be decoded.")
		return "", err
	}

	url, err := h.covers.Put(
		c.Request.Context(),
		storage.NewCoverKey(),
		"image/webp",
		bytes.NewReader(normalized),
	)
	if err != nil {
		httperr.Write(c, http.StatusInternalServerError, "cover_upload_failed", "Could not store the cover image.")
		return "", err
	}
	return url, nil
}
