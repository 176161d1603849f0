package main

import (
	"business-finder/internal/adapters/googlemaps"
	"business-finder/internal/config"
	"business-finder/internal/platform/pacing"
	"business-finder/internal/services"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
)

// main runs an interactive business search in the terminal.
// All search parameters are prompted for; configuration comes from the environment.
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s := &session{
		in:     os.Stdin,
		out:    os.Stdout,
		finder: finder,
		policy: cfg.ReviewPolicy,
	}
	if err := s.run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
