package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shelfstack/bookstore-api/internal/config"
	dbpkg "github.com/shelfstack/bookstore-api/internal/db"
	"github.com/shelfstack/bookstore-api/internal/middleware"
	"github.com/shelfstack/bookstore-api/internal/resetstore"
	"github.com/shelfstack/bookstore-api/internal/routes"
	"github.com/shelfstack/bookstore-api/internal/storage"
	"github.com/shelfstack/bookstore-api/internal/token"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	tokens := token.NewService(cfg.JWTSecret)

	resets, err := resetstore.NewRedisStore(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to configure redis: %v", err)
	}

	covers := storage.NewS3Storage(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "hello world"})
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, tokens, resets, covers)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
