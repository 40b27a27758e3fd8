package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/m1z23r/drift/pkg/middleware"
	"github.com/prasetya/melodia-api/internal/cache"
	"github.com/prasetya/melodia-api/internal/config"
	"github.com/prasetya/melodia-api/internal/database"
	"github.com/prasetya/melodia-api/internal/handlers"
	authmw "github.com/prasetya/melodia-api/internal/middleware"
	"github.com/prasetya/melodia-api/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr)
	defer cacheClient.Close()

	jwtService := services.NewJWTService(cfg.JWTSecret, cfg.JWTAccessExpiry, cfg.JWTRefreshExpiry)
	userService := services.NewUserService(db)
	tokenService := services.NewTokenService(db)
	albumService := services.NewAlbumService(db)
	songService := services.NewSongService(db)
	collaborationService := services.NewCollaborationService(db)
	playlistService := services.NewPlaylistService(db, collaborationService)
	activityService := services.NewActivityService(db)
	albumLikeService := services.NewAlbumLikeService(db, cacheClient, cfg.LikesCacheTTL)

	authHandler := handlers.NewAuthHandler(userService, tokenService, jwtService)
	userHandler := handlers.NewUserHandler(userService)
	albumHandler := handlers.NewAlbumHandler(albumService, songService, albumLikeService)
	songHandler := handlers.NewSongHandler(songService)
	playlistHandler := handlers.NewPlaylistHandler(playlistService, songService, activityService)
	collaborationHandler := handlers.NewCollaborationHandler(collaborationService, playlistService, userService)

	app := drift.New()

	if cfg.IsProduction() {
		app.SetMode(drift.ReleaseMode)
	} else {
		app.SetMode(drift.DebugMode)
	}

	app.Use(middleware.Recovery())
	app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:       86400,
	}))
	app.Use(middleware.BodyParser())

	api := app.Group("/api/v1")

	api.Post("/users", userHandler.Register)

	auth := api.Group("/authentications")
	auth.Post("", authHandler.Login)
	auth.Patch("", authHandler.Refresh)
	auth.Delete("", authHandler.Logout)

	api.Get("/albums/:id", albumHandler.Get)
	api.Get("/albums/:id/likes", albumHandler.GetLikes)
	api.Get("/songs", songHandler.List)
	api.Get("/songs/:id", songHandler.Get)

	protected := api.Group("")
	protected.Use(authmw.Auth(jwtService))

	protected.Post("/authentications/logout-all", authHandler.LogoutAll)
	protected.Get("/users/me", userHandler.GetMe)

	protected.Post("/albums", albumHandler.Create)
	protected.Patch("/albums/:id", albumHandler.Update)
	protected.Delete("/albums/:id", albumHandler.Delete)
	protected.Post("/albums/:id/likes", albumHandler.ToggleLike)

	protected.Post("/songs", songHandler.Create)
	protected.Patch("/songs/:id", songHandler.Update)
	protected.Delete("/songs/:id", songHandler.Delete)

	protected.Get("/playlists", playlistHandler.List)
	protected.Post("/playlists", playlistHandler.Create)
	protected.Delete("/playlists/:id", playlistHandler.Delete)
	protected.Get("/playlists/:id/songs", playlistHandler.GetSongs)
	protected.Post("/playlists/:id/songs", playlistHandler.AddSong)
	protected.Delete("/playlists/:id/songs", playlistHandler.RemoveSong)
	protected.Get("/playlists/:id/activities", playlistHandler.GetActivities)

	protected.Post("/collaborations", collaborationHandler.Add)
	protected.Delete("/collaborations", collaborationHandler.Remove)

	api.Get("/health", func(c *drift.Context) {
		_ = c.JSON(200, map[string]string{"status": "ok"})
	})

	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		for range ticker.C {
			_ = tokenService.CleanupExpired(context.Background())
		}
	}()

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		log.Printf("Server starting on %s", addr)
		if err := app.Run(addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
}
