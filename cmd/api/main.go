//	@title			Menu Ordering API
//	@version		1.0
//	@description	Backend for the menu ordering web app: menu lookups and image storage.
//
//	@host		localhost:8080
//	@BasePath	/

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/menuorder/backend/internal/config"
	"github.com/menuorder/backend/internal/image"
	"github.com/menuorder/backend/internal/menu"
	"github.com/menuorder/backend/internal/router"
	"github.com/menuorder/backend/internal/storage"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	// The client is built once, on the first storage call, and shared by every request.
	store := storage.NewMinioStorage(cfg.Storage(), storage.NewClientProvider())

	// Wire dependencies: storage → service → handler
	menuHandler := menu.NewHandler(menu.NewService())
	imageHandler := image.NewHandler(image.NewService(store), cfg.ImageMaxBytes)

	handler := router.New(
		router.Handlers{Menu: menuHandler, Image: imageHandler},
		router.Options{Swagger: !cfg.IsProduction()},
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine; wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("server listening on :%s (env=%s)", cfg.Port, cfg.AppEnv)
		if !cfg.IsProduction() {
			log.Printf("swagger UI at http://localhost:%s/swagger/", cfg.Port)
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-quit
	log.Println("shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}

	log.Println("server stopped")
}
