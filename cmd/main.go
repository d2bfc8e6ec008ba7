package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"ClinicDesk/audit"
	"ClinicDesk/config"
	"ClinicDesk/routes"
)

func main() {
	// Load configuration from environment
	config, err := loadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Initialize the audit logger shared by every component
	auditLog, err := audit.NewLogger(config.AuditLogFile)
	if err != nil {
		log.Fatalf("failed to initialize audit logger: %v", err)
	}

	// Pass the config to SetupRoutes
	handler := routes.SetupRoutes(auditLog, config)

	// Configure and start the server
	srv := &http.Server{
		Addr:           config.ListenAddr,
		Handler:        handler,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxHeaderBytes: 1 << 20,
		IdleTimeout:    30 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		log.Printf("Starting server on %s", config.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listenAndServe(): %v", err)
		}
	}()

	// Graceful shutdown handling
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	// Create a context with a timeout for shutdown
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	log.Println("Shutting down server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server shutdown failed: %+v", err)
	}

	wg.Wait() // Wait for all goroutines to finish before exiting
	log.Println("Server exited gracefully")
}

// loadConfig loads configuration from environment variables, with a local
// .env file as the first stop for desktop deployments.
func loadConfig() (*config.AppConfig, error) {
	_ = godotenv.Load()

	// The shared Bearer token identifying the front-desk installation
	bearerToken := os.Getenv("BEARER_TOKEN")
	if bearerToken == "" {
		return nil, errors.New("missing BEARER_TOKEN environment variable")
	}

	listenAddr := os.Getenv("LISTEN_ADDR")
	if listenAddr == "" {
		listenAddr = "127.0.0.1:8930"
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}
	outputDir := os.Getenv("OUTPUT_DIR")
	if outputDir == "" {
		outputDir = "output"
	}

	return &config.AppConfig{
		ListenAddr:      listenAddr,
		BearerToken:     bearerToken,
		CredentialsFile: filepath.Join(dataDir, "credentials.csv"),
		PatientDataFile: filepath.Join(dataDir, "Patient_data.csv"),
		NotesFile:       filepath.Join(dataDir, "Notes.csv"),
		AuditLogFile:    filepath.Join(outputDir, "audit_log.csv"),
		VisitStatsFile:  filepath.Join(outputDir, "visit_stats.csv"),
	}, nil
}
