package domain

// Analytics event names.
const (
	AnalyticsEventBooked = "event-booked"
)

// Analytics reports product analytics events. Implementations must not block the caller on delivery.
type Analytics interface {
	Capture(distinctID, event string, properties map[string]any) error
	CaptureException(distinctID, message string) error
	Close() error
}
