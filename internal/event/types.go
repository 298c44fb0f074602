package event

type EventType string

const (
	FatalErrorEventType EventType = "fatal-error"
	ErrorEventType      EventType = "error"
	// SweepStartedEventType payload discovery.SweepStartedPayload
	SweepStartedEventType EventType = "sweep-started"
	// ProbeCompletedEventType payload discovery.ProbeCompletedPayload
	ProbeCompletedEventType EventType = "probe-completed"
	// EndpointResolvedEventType payload discovery.EndpointResolvedPayload
	EndpointResolvedEventType EventType = "endpoint-resolved"
	// DiscoveryExhaustedEventType payload discovery.ExhaustedPayload
	DiscoveryExhaustedEventType EventType = "discovery-exhausted"
	// EndpointInvalidatedEventType payload is nil
	EndpointInvalidatedEventType EventType = "endpoint-invalidated"
)

// Event data structure representing any event we may want to react to
type Event struct {
	Type    EventType
	Payload any
}
