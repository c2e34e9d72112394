/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the instructor roster server. Handles
  configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load .env (optional) and parse command-line flags
  2. Initialize the SQLite table store
  3. Build the session and load both collections (store failures degrade
     to empty tables, not a crash)
  4. Configure the HTTP router
  5. Start server with graceful shutdown

COMMAND-LINE FLAGS (env fallbacks in parentheses):
  -port    HTTP server port (ROSTER_PORT, default 8080)
  -db      SQLite database path (ROSTER_DB, default roster.db)
           Use ":memory:" for an in-memory database
  -year    Academic year to serve (ROSTER_YEAR, default 2026)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM: stop accepting connections, wait up to 30s for
  active requests, close the database, exit.
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/hagwonlabs/roster-engine/api"
	"github.com/hagwonlabs/roster-engine/roster"
	"github.com/hagwonlabs/roster-engine/schedule"
	"github.com/hagwonlabs/roster-engine/store/sqlite"
)

func main() {
	// .env is optional; flags override env.
	_ = godotenv.Load()

	port := flag.Int("port", envInt("ROSTER_PORT", 8080), "HTTP server port")
	dbPath := flag.String("db", envStr("ROSTER_DB", "roster.db"), "SQLite database path")
	year := flag.Int("year", envInt("ROSTER_YEAR", 2026), "academic year")
	flag.Parse()

	log, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	store, err := sqlite.New(*dbPath)
	if err != nil {
		log.Fatal("failed to initialize database", zap.Error(err))
	}
	defer store.Close()

	session := roster.NewSession(store, log, holidaysFor(*year), schedule.AcademicYear(*year))
	session.Load(context.Background())
	for _, w := range session.Warnings() {
		log.Warn("degraded load", zap.String("warning", w))
	}

	handler := api.NewHandler(session, log)
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server starting",
			zap.Int("port", *port),
			zap.Int("year", *year),
			zap.String("db", *dbPath))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}
	log.Info("server stopped")
}

// holidaysFor returns the compiled-in holiday table for the year. Only
// 2026 is shipped; other years run with an empty table until their
// calendar is added.
func holidaysFor(year int) schedule.HolidayTable {
	if year == 2026 {
		return schedule.Holidays2026()
	}
	return schedule.NewHolidayTable(nil)
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
