// Package shutdown runs the process's named teardown steps once, in
// registration order, from either an exit request or an OS signal.
package shutdown

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"retirement-countdown/internal/logger"
)

type Shutdownable interface {
	Shutdown()
}

// Func adapts a plain function to Shutdownable.
type Func func()

func (f Func) Shutdown() { f() }

// Step is one named part of the teardown sequence.
type Step struct {
	Name      string
	Component Shutdownable
}

const stepTimeout = 5 * time.Second

type Manager struct {
	steps   []Step
	logger  logger.Logger
	mu      sync.Mutex
	done    chan struct{}
	timeout time.Duration
}

func NewManager(log logger.Logger) *Manager {
	return &Manager{
		logger:  log,
		done:    make(chan struct{}),
		timeout: stepTimeout,
	}
}

// Register appends a step. Steps run in the order they were registered.
func (m *Manager) Register(name string, component Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.steps = append(m.steps, Step{Name: name, Component: component})
}

// Listen runs Shutdown when the process receives an interrupt or SIGTERM.
func (m *Manager) Listen() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigChan)

		select {
		case sig := <-sigChan:
			m.logger.Info("Shutdown", "shutdown signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			m.Shutdown()
		case <-m.done:
		}
	}()
}

// Shutdown runs every step. A step that overruns its timeout is logged and
// left behind so the later steps still run. Only the first call does any
// work.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	select {
	case <-m.done:
		return
	default:
		close(m.done)
	}

	m.logger.Info("Shutdown", "shutdown sequence initiated", map[string]interface{}{
		"steps": len(m.steps),
	})

	for _, step := range m.steps {
		m.run(step)
	}

	m.logger.Info("Shutdown", "shutdown sequence completed", nil)
}

func (m *Manager) run(step Step) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		step.Component.Shutdown()
	}()

	timer := time.NewTimer(m.timeout)
	defer timer.Stop()

	select {
	case <-done:
		m.logger.Debug("Shutdown", "shutdown step completed", map[string]interface{}{
			"step": step.Name,
		})
	case <-timer.C:
		m.logger.Warning("Shutdown", "shutdown step timeout", map[string]interface{}{
			"step":    step.Name,
			"timeout": m.timeout.String(),
		})
	}
}

func (m *Manager) Done() <-chan struct{} {
	return m.done
}
