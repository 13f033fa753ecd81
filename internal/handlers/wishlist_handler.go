package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shelfstack/bookstore-api/internal/httperr"
	"github.com/shelfstack/bookstore-api/internal/httpresp"
	ucWishlist "github.com/shelfstack/bookstore-api/internal/usecase/wishlist"
)

// ======================================================
// HANDLER
// ======================================================

type WishlistHandler struct {
	createFolderUC *ucWishlist.CreateFolder
	listFoldersUC  *ucWishlist.ListFolders
	addItemUC      *ucWishlist.AddItem
	listItemsUC    *ucWishlist.ListItems
	deleteItemUC   *ucWishlist.DeleteItem
}

func NewWishlistHandler(
	createFolderUC *ucWishlist.CreateFolder,
	listFoldersUC *ucWishlist.ListFolders,
	addItemUC *ucWishlist.AddItem,
	listItemsUC *ucWishlist.ListItems,
	deleteItemUC *ucWishlist.DeleteItem,
) *WishlistHandler {
	return &WishlistHandler{
		createFolderUC: createFolderUC,
		listFoldersUC:  listFoldersUC,
		addItemUC:      addItemUC,
		listItemsUC:    listItemsUC,
		deleteItemUC:   deleteItemUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateFolderRequest struct {
	Name string `json:"name" binding:"required"`
}

type AddWishlistItemRequest struct {
	// FolderID zero (or absent) targets the default folder.
	FolderID uint `json:"folder_id"`
	BookID   uint `json:"book_id" binding:"required"`
}

// ======================================================
// FOLDERS
// ======================================================

func (h *WishlistHandler) CreateFolder(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	var req CreateFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid folder payload.")
		return
	}

	folder, err := h.createFolderUC.Execute(c.Request.Context(), userID, req.Name)
	if err != nil {
		respondBusiness(c, err)
		return
	}

	httpresp.Created(c, folder)
}

func (h *WishlistHandler) ListFolders(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	folders, err := h.listFoldersUC.Execute(c.Request.Context(), userID)
	if err != nil {
		respondBusiness(c, err)
		return
	}

	httpresp.List(c, folders)
}

// ======================================================
// ITEMS
// ======================================================

func (h *WishlistHandler) AddItem(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	var req AddWishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid wishlist payload.")
		return
	}

	item, err := h.addItemUC.Execute(c.Request.Context(), userID, req.FolderID, req.BookID)
	if err != nil {
		respondBusiness(c, err)
		return
	}

	httpresp.Created(c, item)
}

func (h *WishlistHandler) ListItems(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	items, err := h.listItemsUC.Execute(c.Request.Context(), userID)
	if err != nil {
		respondBusiness(c, err)
		return
	}

	httpresp.List(c, items)
}

func (h *WishlistHandler) DeleteItem(c *gin.Context) {
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.deleteItemUC.Execute(c.Request.Context(), itemID); err != nil {
		respondBusiness(c, err)
		return
	}

	httpresp.OK(c, gin.H{"message": "wishlist item deleted"})
}

// ======================================================
// HELPERS
// ======================================================

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_"+name, "Invalid "+name+".")
		return 0, false
	}
	return uint(id), true
}
