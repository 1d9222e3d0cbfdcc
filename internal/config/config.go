package config

import (
	"time"
)

const (
	AppName    = "Giganti's Retirement Countdown"
	AppID      = "com.giganti.retirement-countdown"
	AppVersion = "1.0.0"

	WindowWidth  = 520
	WindowHeight = 190
	WindowX      = 40
	WindowY      = 40

	TickPeriod = 250 * time.Millisecond

	PreferenceFile = ".retirement_countdown_config.json"
)

// Config holds everything the widget needs at startup. Nothing is read
// from flags or the environment.
type Config struct {
	Title      string
	Target     time.Time
	TickPeriod time.Duration

	Width  float32
	Height float32
	X      float32
	Y      float32

	PreferenceFile string
}

// Default returns the compiled-in widget configuration.
func Default() Config {
	return Config{
		Title:          AppName,
		Target:         time.Date(2031, time.March, 31, 0, 0, 0, 0, time.Local),
		TickPeriod:     TickPeriod,
		Width:          WindowWidth,
		Height:         WindowHeight,
		X:              WindowX,
		Y:              WindowY,
		PreferenceFile: PreferenceFile,
	}
}
