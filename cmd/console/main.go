package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/suyatrade/console/internal/api"
	"github.com/suyatrade/console/internal/config"
	"github.com/suyatrade/console/internal/console"
	"github.com/suyatrade/console/internal/logger"
	"github.com/suyatrade/console/internal/notify"
	"github.com/suyatrade/console/internal/tui"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	// Init logger
	log := logger.New(cfg.Logging.Level, cfg.Logging.File)
	log.Info("starting console", "backend", cfg.Backend.BaseURL)

	// Init backend client and notification sinks
	client := api.NewClient(cfg, log)
	toasts := tui.NewNotifier()
	notifier := notify.Multi(toasts, notify.NewTelegram(cfg, log))

	// Init synchronizers
	account := console.NewAccountSync(client, notifier, cfg.Console.CurrencySuffix, log)
	general := console.NewGeneralSync(client, notifier, log)
	telegram := console.NewTelegramSync(client, notifier, log)
	orders := console.NewOrderSubmitter(client, notifier, log)
	probe := console.NewProbe(client, notifier, log)

	model := tui.NewModel(account, general, telegram, orders, probe, cfg, log)
	p := tea.NewProgram(model, tea.WithAltScreen())
	toasts.Attach(p)

	if _, err := p.Run(); err != nil {
		log.Error("console terminated", "error", err)
		fmt.Fprintf(os.Stderr, "console error: %v\n", err)
		os.Exit(1)
	}

	log.Info("console stopped")
}
