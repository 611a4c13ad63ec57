package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinybazaar/bazaar/internal/currency"
	"github.com/tinybazaar/bazaar/internal/httpserver"
	"github.com/tinybazaar/bazaar/internal/session"
	"github.com/tinybazaar/bazaar/internal/store"
	"github.com/tinybazaar/bazaar/internal/tui"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	var configPath string
	var serve bool
	var refCode string
	var fragment string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/bazaar/config.yml)")
	flag.BoolVar(&serve, "serve", false, "run the headless storefront API instead of the TUI")
	flag.StringVar(&refCode, "ref", "", "affiliate code to credit this visit to")
	flag.StringVar(&fragment, "open", "", "deep link to open, e.g. product-p1")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("bazaar - terminal storefront\n")
		fmt.Printf("  Version: %s\n", version)
		fmt.Printf("  Commit:  %s\n", commit)
		fmt.Printf("  Built:   %s\n", buildTime)
		return
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if refCode != "" {
		cfg.RefCode = refCode
	}
	if fragment != "" {
		cfg.Fragment = fragment
	}

	if serve {
		err = runServer(cfg)
	} else {
		err = runTUI(cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(cfg appConfig) error {
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

	api, err := startSideAPI(cfg, st)
	if err != nil {
		return err
	}
	if api != nil {
		defer func() { _ = api.Stop() }()
	}

	shop := tui.NewShopModel(tui.Options{
		Store:     st,
		Session:   session.New(st),
		Converter: currency.New(cfg.BaseCurrency, cfg.Rates),
		Fragment:  cfg.Fragment,
		RefCode:   cfg.RefCode,
	})

	p := tea.NewProgram(shop, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("TUI requires a real terminal")
		}
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

// startSideAPI starts the storefront API next to the terminal client
// when the config asks for it, so shared referral links keep resolving
// while the owner browses. Returns nil when the API is disabled.
func startSideAPI(cfg appConfig, st *store.Store) (*httpserver.Server, error) {
	if !cfg.APIEnabled {
		return nil, nil
	}
	api := httpserver.NewServer(cfg.APIAddr, st)
	if err := api.Start(); err != nil {
		return nil, fmt.Errorf("starting storefront API: %w", err)
	}
	return api, nil
}
