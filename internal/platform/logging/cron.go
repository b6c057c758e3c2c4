package logging

import "github.com/robfig/cron/v3"

// CronLogger adapts Logger to cron.Logger so scheduler events land in the
// same structured stream as the rest of the process.
type CronLogger struct {
	logger *Logger
}

var _ cron.Logger = (*CronLogger)(nil)

func NewCronLogger(logger *Logger) *CronLogger {
	if logger == nil {
		logger = Default()
	}
	return &CronLogger{logger: logger}
}

// Info is used by cron for start/wake/schedule chatter, keep it at debug.
func (c *CronLogger) Info(msg string, keysAndValues ...any) {
	c.logger.Debug("cron: "+msg, keysAndValues...)
}

func (c *CronLogger) Error(err error, msg string, keysAndValues ...any) {
	args := make([]any, 0, len(keysAndValues)+2)
	args = append(args, "error", err)
	args = append(args, keysAndValues...)
	c.logger.Error("cron: "+msg, args...)
}
