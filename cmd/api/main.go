package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/namuapp/receitas-api/config"
	"github.com/namuapp/receitas-api/internal/catalog"
	"github.com/namuapp/receitas-api/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	cat := catalog.Load(cfg.DatasetPath)
	srv := server.New(cfg, cat)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	go func() {
		errChan <- srv.Start()
	}()

	printBanner(cfg, cat.Len())

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}

// printBanner reports where the API is reachable, including the LAN address
// so frontends on other machines can be pointed at it.
func printBanner(cfg *config.Config, recipeCount int) {
	ip := server.LocalIP()
	port := cfg.ServerPort

	log.Printf("API started with %d recipes", recipeCount)
	log.Printf("Local:   http://localhost:%s", port)
	log.Printf("Network: http://%s:%s", ip, port)
	log.Printf("Docs:    http://%s:%s/", ip, port)
	log.Printf("Frontend base URL: const API_BASE_URL = 'http://%s:%s';", ip, port)
}
