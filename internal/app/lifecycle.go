package app

import (
	"fyne.io/fyne/v2"

	"retirement-countdown/internal/logger"
	"retirement-countdown/internal/shutdown"
)

// Lifecycle ends the process: the shutdown manager stops the ticker
// first and quits the Fyne app last.
type Lifecycle struct {
	manager *shutdown.Manager
	logger  logger.Logger
}

// NewLifecycle registers steps in order and quitApp last.
func NewLifecycle(log logger.Logger, quitApp func(), steps ...shutdown.Step) *Lifecycle {
	m := shutdown.NewManager(log)
	for _, s := range steps {
		m.Register(s.Name, s.Component)
	}
	m.Register("fyne app", shutdown.Func(quitApp))
	return &Lifecycle{manager: m, logger: log}
}

// Listen wires OS interrupt and SIGTERM to Shutdown.
func (l *Lifecycle) Listen() {
	l.manager.Listen()
}

func (l *Lifecycle) Shutdown() {
	l.manager.Shutdown()
}

func (l *Lifecycle) Done() <-chan struct{} {
	return l.manager.Done()
}

// quitFyne hands Quit to the UI goroutine; shutdown components run on
// their own goroutines.
func quitFyne(a fyne.App) func() {
	return func() {
		fyne.Do(a.Quit)
	}
}
