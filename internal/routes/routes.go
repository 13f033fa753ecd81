package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shelfstack/bookstore-api/internal/config"
	"github.com/shelfstack/bookstore-api/internal/domain/identity"
	"github.com/shelfstack/bookstore-api/internal/handlers"
	infraRepo "github.com/shelfstack/bookstore-api/internal/infra/repository"
	"github.com/shelfstack/bookstore-api/internal/middleware"
	"github.com/shelfstack/bookstore-api/internal/resetstore"
	"github.com/shelfstack/bookstore-api/internal/storage"
	"github.com/shelfstack/bookstore-api/internal/token"
	ucCart "github.com/shelfstack/bookstore-api/internal/usecase/cart"
	ucWishlist "github.com/shelfstack/bookstore-api/internal/usecase/wishlist"
)

// RegisterRoutes wires repositories, use cases and handlers onto the
// engine. Storage and the reset store come in as interfaces so tests can
// swap fakes in.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	tokens *token.Service,
	resets resetstore.Store,
	covers storage.CoverStorage,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	wishlistRepo := infraRepo.NewWishlistGormRepository(db)
	cartRepo := infraRepo.NewCartGormRepository(db)

	// ======================================================
	// USE CASES
	// ======================================================
	ensureDefaultFolderUC := ucWishlist.NewEnsureDefaultFolder(wishlistRepo)
	createFolderUC := ucWishlist.NewCreateFolder(wishlistRepo)
	listFoldersUC := ucWishlist.NewListFolders(wishlistRepo)
	addWishlistItemUC := ucWishlist.NewAddItem(wishlistRepo, ensureDefaultFolderUC)
	listWishlistItemsUC := ucWishlist.NewListItems(wishlistRepo)
	deleteWishlistItemUC := ucWishlist.NewDeleteItem(wishlistRepo)

	addToCartUC := ucCart.NewAddToCart(cartRepo)
	getCartUC := ucCart.NewGetCart(cartRepo)
	deleteCartItemUC := ucCart.NewDeleteItem(cartRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, tokens, resets, cfg)
	meHandler := handlers.NewMeHandler(db)
	bookHandler := handlers.NewBookHandler(db, covers)
	reviewHandler := handlers.NewReviewHandler(db)

	wishlistHandler := handlers.NewWishlistHandler(
		createFolderUC,
		listFoldersUC,
		addWishlistItemUC,
		listWishlistItemsUC,
		deleteWishlistItemUC,
	)

	cartHandler := handlers.NewCartHandler(
		addToCartUC,
		getCartUC,
		deleteCartItemUC,
	)

	// ======================================================
	// PUBLIC ROUTES
	// ======================================================
	r.POST("/signup", authHandler.Signup)
	r.POST("/login", authHandler.Login)
	r.POST("/user/forgot-password", authHandler.ForgotPassword)
	r.POST("/user/reset-password", authHandler.ResetPassword)

	r.POST("/admin/signup", authHandler.AdminSignup)
	r.POST("/admin/login", authHandler.Login)

	// ======================================================
	// AUTHENTICATED ROUTES
	// ======================================================
	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(tokens, db))
	{
		// ------------------------------
		// USER ROLE
		// ------------------------------
		user := secured.Group("/")
		user.Use(middleware.RequireRole(identity.RoleUser))
		{
			user.GET("/profile", meHandler.Profile)
			user.GET("/user/books", bookHandler.List)

			user.POST("/review/", reviewHandler.Create)
			user.GET("/books/:book_id/reviews", reviewHandler.ListForBook)

			user.PUT("/user/update/:user_id", meHandler.UpdateProfile)
			user.PUT("/user/change-password", meHandler.ChangePassword)
		}

		// ------------------------------
		// ADMIN ROLE
		// ------------------------------
		admin := secured.Group("/")
		admin.Use(middleware.RequireRole(identity.RoleAdmin))
		{
			admin.GET("/admin/profile", meHandler.Profile)
			admin.GET("/admin/view-user", meHandler.ViewUsers)

			admin.POST("/books/admin/create", bookHandler.Create)
			admin.PUT("/books/admin/update/:book_id", bookHandler.Update)
			admin.DELETE("/books/admin/delete/:book_id", bookHandler.Delete)
		}

		// ------------------------------
		// WISHLIST
		// ------------------------------
		secured.POST("/users/:user_id/folders", wishlistHandler.CreateFolder)
		secured.GET("/user/:user_id/folders", wishlistHandler.ListFolders)
		secured.POST("/users/:user_id/wishlist", wishlistHandler.AddItem)
		secured.GET("/user/:user_id/wishlist", wishlistHandler.ListItems)
		// Path published with this spelling; kept for compatibility.
		secured.DELETE("/user/wiselist/delete/:id", wishlistHandler.DeleteItem)

		// ------------------------------
		// CART
		// ------------------------------
		secured.POST("/users/:user_id/cart", cartHandler.Add)
		secured.GET("/user/:user_id/cart", cartHandler.Get)
		secured.DELETE("/user/cart/delete/:cart_id", cartHandler.Delete)
	}
}
