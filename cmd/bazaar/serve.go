package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tinybazaar/bazaar/internal/httpserver"
	"github.com/tinybazaar/bazaar/internal/store"
)

// runServer starts the headless storefront API: catalog reads and
// affiliate link redirects, no TUI.
func runServer(cfg appConfig) error {
	st, err := store.NewStore(cfg.DBFile, cfg.QueryTimeout)
	if err != nil {
		return fmt.Errorf("opening catalog: %w", err)
	}
	defer st.Close()

	if cfg.SeedFile != "" {
		if err := st.SeedFromFile(cfg.SeedFile); err != nil {
			return fmt.Errorf("seeding catalog: %w", err)
		}
	}

	addr := cfg.APIAddr
	if addr == "" {
		addr = "0.0.0.0:3000"
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Println("\nShutting down gracefully... (press Ctrl+C again to force)")
		cancel()

		deadline := time.NewTimer(10 * time.Second)
		defer deadline.Stop()

		select {
		case <-sigCh:
			fmt.Println("\nForce shutdown.")
		case <-deadline.C:
			fmt.Println("Shutdown timed out, forcing exit.")
		}
		os.Exit(1)
	}()

	api := httpserver.NewServer(addr, st)
	if err := api.Start(); err != nil {
		return fmt.Errorf("starting API server: %w", err)
	}

	log.Printf("bazaar: serving catalog API on %s (db %s)", addr, cfg.DBFile)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-gctx.Done()
		return api.Stop()
	})

	return g.Wait()
}
