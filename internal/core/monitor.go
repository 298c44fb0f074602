package core

import (
	"errors"
	"time"

	"github.com/rotasegura/beacon/internal/candidate"
	"github.com/rotasegura/beacon/internal/exception"
)

// Monitor periodically checks that the cached endpoint still answers and
// rediscovers when it stopped. Blocks until Stop is called.
func (c *Core) Monitor() error {
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.ctx.Done():
			return c.ctx.Err()
		case <-ticker.C:
			c.checkCachedEndpoint()
		}
	}
}

func (c *Core) checkCachedEndpoint() {
	ep, ok := c.discovery.Cached()

	if !ok {
		return
	}

	port := ep.Port(c.conf.Ports)

	result := c.prober.Probe(
		c.ctx,
		candidate.Candidate{
			Host:      ep.Host(),
			Rationale: candidate.RationalePreviousSuccess,
		},
		port,
		c.conf.ProbeTimeout,
	)

	if result.Reachable || !result.Error.Connectivity() {
		return
	}

	c.log.Warn().
		Str("host", ep.Host()).
		Int("port", port).
		Str("error", string(result.Error)).
		Msg("cached endpoint stopped answering")

	c.discovery.Invalidate()

	if _, err := c.discovery.Resolve(c.ctx, false); err != nil {
		if !errors.Is(err, exception.ErrDiscoveryExhausted) {
			c.events.ReportError(err)
		}
	}
}
