package main

import (
	"business-finder/internal/adapters/googlemaps"
	"business-finder/internal/api"
	"business-finder/internal/config"
	"business-finder/internal/platform/pacing"
	"business-finder/internal/services"
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"
)

// main is the application composition root.
// It wires the Google Maps client behind ports and starts the HTTP server.
func main() {
	config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	client, err := googlemaps.NewClient(cfg.APIKey, googlemaps.Options{
		BaseURL:      cfg.BaseURL,
		Timeout:      cfg.HTTPTimeout,
		DetailFields: cfg.DetailFields,
	})
	if err != nil {
		log.Fatal(err)
	}

	delays := pacing.Fixed{Detail: cfg.DetailDelay, PageToken: cfg.PageTokenDelay}
	finder, err := services.NewFinder(client, client, client, delays, cfg.MaxPages)
	if err != nil {
		log.Fatal(err)
	}

	router := api.NewRouter(finder, cfg.ReviewPolicy)

	// A full search can take minutes: every candidate costs a details call plus
	// the rate-limit delay, and each extra page waits for its token.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      5 * time.Minute,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("server shutdown: %v", err)
		}
	}()

	log.Printf("Server listening addr=:%s review_policy=%s", cfg.Port, cfg.ReviewPolicy)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
