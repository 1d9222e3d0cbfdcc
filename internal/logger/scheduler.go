package logger

import (
	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog"
)

// SchedulerLogger satisfies gocron.Logger by forwarding to zerolog under a
// fixed component name. gocron passes key/value pairs as args.
type SchedulerLogger struct {
	logger    zerolog.Logger
	component string
}

var _ gocron.Logger = (*SchedulerLogger)(nil)

func NewSchedulerLogger(z *ZerologAdapter, component string) *SchedulerLogger {
	return &SchedulerLogger{logger: z.Zerolog(), component: component}
}

func (s *SchedulerLogger) Debug(msg string, args ...any) {
	s.log(s.logger.Debug(), msg, args)
}

func (s *SchedulerLogger) Info(msg string, args ...any) {
	s.log(s.logger.Info(), msg, args)
}

func (s *SchedulerLogger) Warn(msg string, args ...any) {
	s.log(s.logger.Warn(), msg, args)
}

func (s *SchedulerLogger) Error(msg string, args ...any) {
	s.log(s.logger.Error(), msg, args)
}

func (s *SchedulerLogger) log(event *zerolog.Event, msg string, args []any) {
	event = event.Str("component", s.component)
	if len(args) > 0 {
		event = event.Fields(args)
	}
	event.Msg(msg)
}
