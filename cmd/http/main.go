package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"orderdesk/internal/config"
	"orderdesk/internal/handler"
	"orderdesk/internal/service"
	"orderdesk/internal/service/gateway"
	"orderdesk/internal/session"
)

func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logic
	store := session.NewStore(cfg.SessionFile)
	svc := service.NewDashboardService(store, service.Config{
		Gateway:           gateway.Config{BaseURL: cfg.Gateway.BaseURL},
		DemoPrice:         cfg.DemoPrice,
		DefaultCustomerID: cfg.DefaultCustomerID,
	})

	// A restored session means the user was logged in before the
	// restart; warm the order list so the first page load has it.
	if svc.LoggedIn() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		svc.RefreshOrders(ctx)
		cancel()
	}

	h := handler.NewHandler(svc, cfg.Products)

	// 3. Setup Server
	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: h,
	}

	// 4. Run Server with Graceful Shutdown
	go func() {
		fmt.Printf("Starting server on port %s\n", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 2)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	fmt.Println("Shutting down server...")

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	fmt.Println("Server exiting")
}
