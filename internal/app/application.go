package app

import (
	"fmt"

	"fyne.io/fyne/v2"
	"github.com/jonboulle/clockwork"

	"retirement-countdown/internal/config"
	"retirement-countdown/internal/gui"
	"retirement-countdown/internal/logger"
	"retirement-countdown/internal/prefs"
	"retirement-countdown/internal/shutdown"
	"retirement-countdown/internal/state"
	"retirement-countdown/internal/ticker"
)

type Application struct {
	fyneApp   fyne.App
	window    *gui.Window
	handlers  *Handlers
	repeater  *ticker.Repeater
	lifecycle *Lifecycle
	logger    *logger.ZerologAdapter
	cfg       config.Config
}

func NewApplication(fyneApp fyne.App, cfg config.Config, log *logger.ZerologAdapter, clock clockwork.Clock) (*Application, error) {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	store := prefs.NewStore(preferencePath(cfg, log))
	darkMode := loadDarkMode(store, log)

	log.Info("Application", "starting application", map[string]interface{}{
		"version":   config.AppVersion,
		"target":    cfg.Target.Format("2006-01-02 15:04:05 MST"),
		"dark_mode": darkMode,
		"prefs":     store.Path(),
	})

	window := gui.NewWindow(fyneApp, cfg, darkMode, log)
	handlers := NewHandlers(state.New(cfg, darkMode), window, store, clock, log)

	repeater, err := ticker.New(ticker.Options{
		Name:     "countdown-tick",
		Period:   cfg.TickPeriod,
		Clock:    clock,
		Dispatch: fyne.Do,
		Logger:   log,
	}, handlers.Tick)
	if err != nil {
		return nil, fmt.Errorf("create countdown ticker: %w", err)
	}

	lifecycle := NewLifecycle(log, quitFyne(fyneApp),
		shutdown.Step{Name: "countdown ticker", Component: repeater},
	)
	handlers.SetQuit(lifecycle.Shutdown)
	window.Bind(handlers.Input())

	// First frame is drawn before the window is shown.
	repeater.Step()

	return &Application{
		fyneApp:   fyneApp,
		window:    window,
		handlers:  handlers,
		repeater:  repeater,
		lifecycle: lifecycle,
		logger:    log,
		cfg:       cfg,
	}, nil
}

// Run shows the widget and blocks until the app quits.
func (a *Application) Run() error {
	a.fyneApp.Lifecycle().SetOnStarted(func() {
		if !a.window.Place() {
			a.logger.Debug("Window", "initial placement and topmost not supported on this platform", map[string]interface{}{
				"x": a.cfg.X,
				"y": a.cfg.Y,
			})
		}
		a.repeater.Start()
	})

	a.lifecycle.Listen()
	a.window.Show()

	a.logger.Info("Application", "widget displayed", nil)
	a.fyneApp.Run()

	// The event loop is gone, so only the ticker is left to stop.
	a.repeater.Shutdown()
	a.logger.Info("Application", "application terminated", nil)
	return nil
}

func preferencePath(cfg config.Config, log logger.Logger) string {
	path, err := prefs.DefaultPath(cfg.PreferenceFile)
	if err != nil {
		log.Warning("Preferences", "home directory unavailable, using working directory", map[string]interface{}{
			"error": err.Error(),
		})
		return cfg.PreferenceFile
	}
	return path
}
