package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/shelfstack/bookstore-api/internal/httperr"
)

// respondBusiness translates a use-case error into the matching HTTP
// status. Anything without a business code is a storage-level failure and
// comes back as a generic 500.
func respondBusiness(c *gin.Context, err error) {
	switch code := httperr.BusinessCode(err); code {
	case "user_not_found":
		httperr.NotFound(c, code, "User not found.")
	case "folder_not_found":
		httperr.NotFound(c, code, "Wishlist folder not found.")
	case "book_not_found":
		httperr.NotFound(c, code, "Book not found.")
	case "item_not_found":
		httperr.NotFound(c, code, "Wishlist item not found.")
	case "cart_item_not_found":
		httperr.NotFound(c, code, "Cart item not found.")
	case "cart_empty":
		httperr.NotFound(c, code, "The cart is empty.")
	case "forbidden":
		httperr.Forbidden(c, code, "Not allowed.")
	case "":
		httperr.Internal(c, "internal_error", "Something went wrong.")
	default:
		httperr.BadRequest(c, code, "Request rejected.")
	}
}
