package main

import (
	"os"

	fyneapp "fyne.io/fyne/v2/app"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"retirement-countdown/internal/app"
	"retirement-countdown/internal/config"
	"retirement-countdown/internal/logger"
)

func main() {
	log := logger.NewConsoleLogger(zerolog.InfoLevel)

	fyneApp := fyneapp.NewWithID(config.AppID)

	application, err := app.NewApplication(fyneApp, config.Default(), log, clockwork.NewRealClock())
	if err != nil {
		log.Error("Main", err, map[string]interface{}{"stage": "init"})
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		log.Error("Main", err, map[string]interface{}{"stage": "run"})
		os.Exit(1)
	}
}
