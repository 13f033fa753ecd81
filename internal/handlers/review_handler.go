package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shelfstack/bookstore-api/internal/httperr"
	"github.com/shelfstack/bookstore-api/internal/httpresp"
	"github.com/shelfstack/bookstore-api/internal/middleware"
	"github.com/shelfstack/bookstore-api/internal/models"
)

type ReviewHandler struct {
	db *gorm.DB
}

func NewReviewHandler(db *gorm.DB) *ReviewHandler {
	return &ReviewHandler{db: db}
}

// --------- Requests ---------

// CreateReviewRequest carries no user id on purpose: the review is always
// attributed to the authenticated principal, whatever the body says.
type CreateReviewRequest struct {
	BookID uint    `json:"book_id" binding:"required"`
	Detail string  `json:"detail" binding:"required"`
	Rating float64 `json:"rating" binding:"min=0,max=5"`
}

// --------- Handlers ---------

func (h *ReviewHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid review payload.")
		return
	}

	var count int64
	if err := h.db.Model(&models.Book{}).
		Where("id = ?", req.BookID).
		Count(&count).Error; err != nil {
		httperr.Internal(c, "internal_error", "Could not verify the book.")
		return
	}
	if count == 0 {
		httperr.NotFound(c, "book_not_found", "Book not found.")
		return
	}

	review := models.Review{
		BookID: req.BookID,
		UserID: userID,
		Detail: req.Detail,
		Rating: req.Rating,
	}

	if err := h.db.Create(&review).Error; err != nil {
		httperr.Internal(c, "failed_to_create_review", "Could not create the review.")
		return
	}

	httpresp.Created(c, review)
}

func (h *ReviewHandler) ListForBook(c *gin.Context) {
	bookID := c.Param("book_id")

	var count int64
	if err := h.db.Model(&models.Book{}).
		Where("id = ?", bookID).
		Count(&count).Error; err != nil {
		httperr.Internal(c, "internal_error", "Could not verify the book.")
		return
	}
	if count == 0 {
		httperr.NotFound(c, "book_not_found", "Book not found.")
		return
	}

	var reviews []models.Review
	if err := h.db.
		Where("book_id = ?", bookID).
		Order("id ASC").
		Find(&reviews).Error; err != nil {
		httperr.Internal(c, "failed_to_list_reviews", "Could not list reviews.")
		return
	}

	httpresp.List(c, reviews)
}
