package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hrdash/adapters/charts"
	"hrdash/internal"
	"hrdash/internal/config"
	"hrdash/internal/dashboard"
	"hrdash/internal/dataset"
	"hrdash/ui"

	"github.com/joho/godotenv"
)

// chart size in SVG user units
const (
	chartWidth  = 640
	chartHeight = 360
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	internal.DefaultLogger = internal.NewLogger(internal.ParseLogLevel(appConfig.Log.Level))
	logger := internal.DefaultLogger.With("main")

	loader := dataset.NewLoader(dataset.LoaderConfig{
		FilePath: appConfig.Data.File,
		Sample: dataset.SampleConfig{
			Seed:         appConfig.Data.SampleSeed,
			Size:         appConfig.Data.SampleSize,
			AttritionYes: dataset.DefaultSampleConfig().AttritionYes,
		},
	})

	// Warm the cache so the first request does not pay for the load
	ds, err := loader.Load(context.Background())
	if err != nil {
		logger.Error("initial dataset load failed, will retry per request: %v", err)
	} else {
		logger.Info("dataset ready: %d rows, %d columns from %s", ds.Rows(), len(ds.Columns()), ds.Source.Key)
	}

	visualizer := dashboard.NewVisualizer(charts.NewSVGRenderer(chartWidth, chartHeight), appConfig.Charts.HistogramBins)

	app, err := ui.NewApp(ui.Config{
		CORSAllowedOrigins: appConfig.Server.CORSAllowedOrigins,
		MetricsEnabled:     appConfig.Metrics.Enabled,
	}, loader, visualizer)
	if err != nil {
		log.Fatalf("Failed to create UI app: %v", err)
	}

	server := &http.Server{
		Addr:         ":" + appConfig.Server.Port,
		Handler:      app.Handler(),
		ReadTimeout:  appConfig.Server.ReadTimeout,
		WriteTimeout: appConfig.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("Starting HR Analytics Dashboard on http://localhost:%s", appConfig.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed: %v", err)
	}
}
