package logger

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Logger is the component-scoped structured logger used across the widget.
type Logger interface {
	Info(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Debug(component, message string, fields map[string]interface{})
}

type ZerologAdapter struct {
	logger zerolog.Logger
}

var _ Logger = (*ZerologAdapter)(nil)

func NewZerolog(writer io.Writer, level zerolog.Level) *ZerologAdapter {
	logger := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &ZerologAdapter{logger: logger}
}

// NewConsoleLogger writes human-readable lines to stderr, without color
// when stderr is not a terminal.
func NewConsoleLogger(level zerolog.Level) *ZerologAdapter {
	fd := os.Stderr.Fd()
	consoleWriter := zerolog.ConsoleWriter{
		Out:     os.Stderr,
		NoColor: !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd),
	}
	return NewZerolog(consoleWriter, level)
}

// Nop discards everything.
func Nop() *ZerologAdapter {
	return &ZerologAdapter{logger: zerolog.Nop()}
}

func (z *ZerologAdapter) Info(component, message string, fields map[string]interface{}) {
	emit(z.logger.Info(), component, fields).Msg(message)
}

// Error logs err under "<component> failed"; the error text goes in the
// error field.
func (z *ZerologAdapter) Error(component string, err error, fields map[string]interface{}) {
	emit(z.logger.Error().Err(err), component, fields).Msg(component + " failed")
}

func (z *ZerologAdapter) Warning(component, message string, fields map[string]interface{}) {
	emit(z.logger.Warn(), component, fields).Msg(message)
}

func (z *ZerologAdapter) Debug(component, message string, fields map[string]interface{}) {
	emit(z.logger.Debug(), component, fields).Msg(message)
}

// emit tags an event with its component and fields. Disabled levels hand
// back a nil event, which zerolog treats as a no-op.
func emit(event *zerolog.Event, component string, fields map[string]interface{}) *zerolog.Event {
	return event.Str("component", component).Fields(fields)
}

// Zerolog exposes the underlying logger for adapters.
func (z *ZerologAdapter) Zerolog() zerolog.Logger {
	return z.logger
}
