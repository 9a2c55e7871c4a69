/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the expense report server. Handles configuration,
  dependency wiring, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load environment config (.env supported)
  2. Parse command-line flags (flags override environment)
  3. Create the in-memory expense store
  4. Optionally load the demo dataset
  5. Configure HTTP router
  6. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -port    HTTP server port (default: PORT env or 8080)
  -seed    Load the demo dataset on startup (default: SEED_DEMO env)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Exit

EXAMPLES:
  # Run with demo data
  ./server -seed

  # Run on a different port
  ./server -port=3000

SEE ALSO:
  - api/server.go: Router configuration
  - api/handlers.go: HTTP handlers
  - config/config.go: Environment configuration
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/warp/expense-engine/api"
	"github.com/warp/expense-engine/config"
	"github.com/warp/expense-engine/expense/store"
)

func main() {
	cfg := config.Load()

	// Flags override environment
	port := flag.String("port", cfg.Port, "HTTP server port")
	seed := flag.Bool("seed", cfg.SeedDemo, "load the demo dataset on startup")
	flag.Parse()
	cfg.Port = *port
	cfg.SeedDemo = *seed

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// The store lives for the process only: expenses are session data.
	expenseStore := store.NewMemory()

	if cfg.SeedDemo {
		if err := api.LoadDemoData(context.Background(), expenseStore); err != nil {
			log.Fatalf("Failed to load demo data: %v", err)
		}
		log.Println("Demo dataset loaded")
	}

	handler := api.NewHandler(expenseStore)
	router := api.NewRouter(handler, cfg.AllowedOrigins)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on http://localhost:%s", cfg.Port)
		log.Printf("API available at http://localhost:%s/api", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
