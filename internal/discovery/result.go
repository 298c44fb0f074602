package discovery

import (
	"fmt"

	"github.com/rotasegura/beacon/internal/candidate"
	"github.com/rotasegura/beacon/internal/endpoint"
	"github.com/rotasegura/beacon/internal/exception"
	"github.com/rotasegura/beacon/internal/probe"
)

// SweepStartedPayload payload of event.SweepStartedEventType
type SweepStartedPayload struct {
	SweepID    string
	Platform   candidate.Platform
	Forced     bool
	Candidates []candidate.Candidate
}

// ProbeCompletedPayload payload of event.ProbeCompletedEventType. Index is
// the position of the result within its sweep.
type ProbeCompletedPayload struct {
	SweepID string
	Index   int
	Result  probe.Result
}

// EndpointResolvedPayload payload of event.EndpointResolvedEventType
type EndpointResolvedPayload struct {
	SweepID  string
	Endpoint *endpoint.ResolvedEndpoint
}

// ExhaustedPayload payload of event.DiscoveryExhaustedEventType
type ExhaustedPayload struct {
	SweepID string
	Err     *ExhaustedError
}

// ExhaustedError returned when no candidate answered. Results holds every
// probe attempted in order. Cause is set when the sweep was cut short by
// context cancellation or the discovery deadline.
type ExhaustedError struct {
	Results []probe.Result
	Cause   error
}

func (e *ExhaustedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf(
			"%s after %d probes: %s",
			exception.ErrDiscoveryExhausted,
			len(e.Results),
			e.Cause,
		)
	}

	return fmt.Sprintf(
		"%s after %d probes",
		exception.ErrDiscoveryExhausted,
		len(e.Results),
	)
}

// Is matches exception.ErrDiscoveryExhausted
func (e *ExhaustedError) Is(target error) bool {
	return target == exception.ErrDiscoveryExhausted
}

func (e *ExhaustedError) Unwrap() error {
	return e.Cause
}
