package rod

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/fluentdoc"
)

// Ensure LoggingSession implements fluentdoc.Session.
var _ fluentdoc.Session = (*LoggingSession)(nil)

// LoggingSession wraps a Session with debug logging.
type LoggingSession struct {
	next   fluentdoc.Session
	logger *slog.Logger
}

// NewLoggingSession creates a new LoggingSession.
func NewLoggingSession(next fluentdoc.Session, logger *slog.Logger) *LoggingSession {
	return &LoggingSession{next: next, logger: logger}
}

// Navigate logs the URL being visited and delegates to the wrapped session.
func (s *LoggingSession) Navigate(ctx context.Context, url string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("navigate",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Navigate(ctx, url)
}

// Click delegates to the wrapped session.
func (s *LoggingSession) Click(ctx context.Context, selector string) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("click",
			"selector", selector,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Click(ctx, selector)
}

// Frames logs the frame count and delegates to the wrapped session.
func (s *LoggingSession) Frames(ctx context.Context) (frames []fluentdoc.Frame, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("frames",
			"count", len(frames),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Frames(ctx)
}

// Close delegates to the wrapped session.
func (s *LoggingSession) Close() error {
	return s.next.Close()
}
