package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/shelfstack/bookstore-api/internal/httperr"
	"github.com/shelfstack/bookstore-api/internal/httpresp"
	ucCart "github.com/shelfstack/bookstore-api/internal/usecase/cart"
)

// ======================================================
// HANDLER
// ======================================================

type CartHandler struct {
	addToCartUC  *ucCart.AddToCart
	getCartUC    *ucCart.GetCart
	deleteItemUC *ucCart.DeleteItem
}

func NewCartHandler(
	addToCartUC *ucCart.AddToCart,
	getCartUC *ucCart.GetCart,
	deleteItemUC *ucCart.DeleteItem,
) *CartHandler {
	return &CartHandler{
		addToCartUC:  addToCartUC,
		getCartUC:    getCartUC,
		deleteItemUC: deleteItemUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AddToCartRequest struct {
	BookID   uint `json:"book_id" binding:"required"`
	Quantity int  `json:"quantity"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *CartHandler) Add(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid cart payload.")
		return
	}

	item, err := h.addToCartUC.Execute(c.Request.Context(), userID, req.BookID, req.Quantity)
	if err != nil {
		respondBusiness(c, err)
		return
	}

	httpresp.OK(c, item)
}

func (h *CartHandler) Get(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	items, err := h.getCartUC.Execute(c.Request.Context(), userID)
	if err != nil {
		respondBusiness(c, err)
		return
	}

	httpresp.List(c, items)
}

func (h *CartHandler) Delete(c *gin.Context) {
	cartID, ok := pathID(c, "cart_id")
	if !ok {
		return
	}

	if err := h.deleteItemUC.Execute(c.Request.Context(), cartID); err != nil {
		respondBusiness(c, err)
		return
	}

	httpresp.OK(c, gin.H{"message": "cart item deleted"})
}
