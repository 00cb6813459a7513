package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	// Load env file into environments.
	_ "github.com/joho/godotenv/autoload"

	"github.com/JainamOswal18/TheBetterHack2025/internal/database"
	"github.com/JainamOswal18/TheBetterHack2025/internal/review"
	"github.com/JainamOswal18/TheBetterHack2025/internal/scoring"
	"github.com/JainamOswal18/TheBetterHack2025/internal/storage"
)

// APIServer bundles the shared dependencies behind the route handlers.
type APIServer struct {
	DB      *database.DBinstanceStruct
	Storage storage.Client
	Scorer  scoring.ScoreProvider

	// Workbench holds session-local accept decisions; one per process.
	Workbench *review.Workbench
}

// NewServer constructs the API server and wraps it in an http.Server.
func NewServer() *http.Server {
	port, _ := strconv.Atoi(os.Getenv("PORT"))

	db, err := database.GetMainDB()
	if err != nil {
		log.Fatalf("Database failed to initialize: %s", err)
	}

	store, err := storage.NewCloudStorageClient(context.Background(), os.Getenv("STORAGE_BUCKET"))
	if err != nil {
		log.Fatalf("Storage client failed to initialize: %s", err)
	}

	s := &APIServer{
		DB:      db,
		Storage: store,
		Scorer:  scoring.NewClientFromEnv(),
	}
	s.Workbench = review.NewWorkbench(db, store)

	// Declare Server config
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server
}
