package endpoint

import (
	"fmt"
	"net"
	"sort"
	"strconv"
	"time"
)

// ResolvedEndpoint a host verified to serve the backend. Values are never
// mutated after construction, the cache replaces them wholesale.
type ResolvedEndpoint struct {
	host          string
	discoveredAt  time.Time
	verifiedPorts map[int]struct{}
}

// New returns a new ResolvedEndpoint
func New(host string, discoveredAt time.Time, verifiedPorts ...int) *ResolvedEndpoint {
	ports := map[int]struct{}{}

	for _, p := range verifiedPorts {
		ports[p] = struct{}{}
	}

	return &ResolvedEndpoint{
		host:          host,
		discoveredAt:  discoveredAt,
		verifiedPorts: ports,
	}
}

// Host returns the resolved host
func (e *ResolvedEndpoint) Host() string {
	return e.host
}

// DiscoveredAt returns when the host was verified
func (e *ResolvedEndpoint) DiscoveredAt() time.Time {
	return e.discoveredAt
}

// VerifiedPorts returns the ports that answered the liveness check, sorted
func (e *ResolvedEndpoint) VerifiedPorts() []int {
	ports := []int{}

	for p := range e.verifiedPorts {
		ports = append(ports, p)
	}

	sort.Ints(ports)

	return ports
}

// Verified reports whether port answered the liveness check
func (e *ResolvedEndpoint) Verified(port int) bool {
	_, ok := e.verifiedPorts[port]
	return ok
}

// Port picks the first preferred port that was verified, falling back to
// the lowest verified port. Returns 0 when nothing was verified.
func (e *ResolvedEndpoint) Port(preferred []int) int {
	for _, p := range preferred {
		if e.Verified(p) {
			return p
		}
	}

	if ports := e.VerifiedPorts(); len(ports) > 0 {
		return ports[0]
	}

	return 0
}

// BaseURL returns the http base url of the endpoint on port
func (e *ResolvedEndpoint) BaseURL(port int) string {
	return fmt.Sprintf("http://%s", net.JoinHostPort(e.host, strconv.Itoa(port)))
}

func (e *ResolvedEndpoint) String() string {
	return fmt.Sprintf("%s %v", e.host, e.VerifiedPorts())
}
