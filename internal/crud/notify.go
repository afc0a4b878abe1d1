package crud

import "log/slog"

// Notifier receives user-visible notifications for remote operation
// outcomes, the transient toast channel of the surrounding application.
type Notifier interface {
	Success(message string, data any)
	Error(message string, err error)
}

// NewLogNotifier returns a Notifier that records notifications through the
// given slog.Logger. A nil logger falls back to slog.Default.
func NewLogNotifier(log *slog.Logger) Notifier {
	if log == nil {
		log = slog.Default()
	}
	return logNotifier{log: log}
}

type logNotifier struct {
	log *slog.Logger
}

func (n logNotifier) Success(message string, data any) {
	n.log.Info("notify", slog.String("message", message), slog.Any("data", data))
}

func (n logNotifier) Error(message string, err error) {
	n.log.Warn("notify", slog.String("message", message), slog.Any("error", err))
}

// nopNotifier discards all notifications. Used wherever a caller passes nil.
type nopNotifier struct{}

func (nopNotifier) Success(string, any) {}
func (nopNotifier) Error(string, error) {}
