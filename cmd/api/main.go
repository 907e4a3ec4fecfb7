package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/mcastelo/palco/internal/blob/postgres"
	"github.com/mcastelo/palco/internal/config"
	"github.com/mcastelo/palco/internal/database"
	palcoHttp "github.com/mcastelo/palco/internal/http"
	castingHandler "github.com/mcastelo/palco/internal/http/casting"
	importHandler "github.com/mcastelo/palco/internal/http/importcsv"
	insightsHandler "github.com/mcastelo/palco/internal/http/insights"
	reportHandler "github.com/mcastelo/palco/internal/http/report"
	txHandler "github.com/mcastelo/palco/internal/http/transaction"
	"github.com/mcastelo/palco/internal/insights"
	"github.com/mcastelo/palco/internal/tracker"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	store := postgres.New(db)

	trackerService := tracker.NewService(store)
	if err := trackerService.Load(context.Background()); err != nil {
		slog.Error("failed to load collections", "error", err)
		os.Exit(1)
	}

	insightsClient := insights.NewClient(cfg.Insights.Endpoint, cfg.Insights.APIKey, cfg.Insights.Timeout)

	var (
		castingH  = castingHandler.NewHandler(trackerService)
		txH       = txHandler.NewHandler(trackerService)
		reportH   = reportHandler.NewHandler(trackerService)
		importH   = importHandler.NewHandler(trackerService)
		insightsH = insightsHandler.NewHandler(trackerService, insightsClient)
	)

	router := palcoHttp.New(castingH, txH, reportH, importH, insightsH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
