// Package analytics reports product events (bookings, booking failures) to PostHog.
package analytics

import (
	"fmt"
	"log/slog"

	"github.com/posthog/posthog-go"

	"devevent/internal/domain"
)

// exceptionEvent is PostHog's reserved event name for captured errors.
const exceptionEvent = "$exception"

// Config holds configuration for creating an analytics client.
type Config struct {
	Provider string
	APIKey   string
	Host     string
}

// enqueuer is the subset of posthog.Client used here.
type enqueuer interface {
	Enqueue(msg posthog.Message) error
	Close() error
}

// New creates an analytics client from config. Provider "posthog" sends to PostHog; "noop" or unknown only logs.
func New(logger *slog.Logger, config Config) (domain.Analytics, error) {
	switch config.Provider {
	case "posthog":
		if config.APIKey == "" {
			return nil, fmt.Errorf("posthog analytics: api key is required")
		}
		client, err := posthog.NewWithConfig(config.APIKey, posthog.Config{Endpoint: config.Host})
		if err != nil {
			return nil, fmt.Errorf("posthog analytics: %w", err)
		}
		return &posthogAnalytics{client: client}, nil
	case "noop", "":
		return &noopAnalytics{logger: logger}, nil
	default:
		logger.Warn("unknown analytics provider, using noop", "provider", config.Provider)
		return &noopAnalytics{logger: logger}, nil
	}
}

type posthogAnalytics struct {
	client enqueuer
}

func (p *posthogAnalytics) Capture(distinctID, event string, properties map[string]any) error {
	return p.client.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: posthog.Properties(properties),
	})
}

func (p *posthogAnalytics) CaptureException(distinctID, message string) error {
	return p.client.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      exceptionEvent,
		Properties: posthog.NewProperties().Set("$exception_message", message),
	})
}

// Close flushes queued events.
func (p *posthogAnalytics) Close() error {
	return p.client.Close()
}

type noopAnalytics struct {
	logger *slog.Logger
}

func (n *noopAnalytics) Capture(distinctID, event string, properties map[string]any) error {
	n.logger.Debug("analytics event (noop)", "event", event)
	return nil
}

func (n *noopAnalytics) CaptureException(distinctID, message string) error {
	n.logger.Debug("analytics exception (noop)", "message", message)
	return nil
}

func (n *noopAnalytics) Close() error { return nil }
