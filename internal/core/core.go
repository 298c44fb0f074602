package core

import (
	"context"
	"time"

	"github.com/rotasegura/beacon/internal/api"
	"github.com/rotasegura/beacon/internal/candidate"
	"github.com/rotasegura/beacon/internal/config"
	"github.com/rotasegura/beacon/internal/discovery"
	"github.com/rotasegura/beacon/internal/endpoint"
	"github.com/rotasegura/beacon/internal/event"
	"github.com/rotasegura/beacon/internal/journal"
	"github.com/rotasegura/beacon/internal/logger"
	"github.com/rotasegura/beacon/internal/probe"
)

// how often the monitor re-checks the cached endpoint
const defaultPollInterval = 5 * time.Second

// PortStatus liveness of a single port on the resolved host
type PortStatus struct {
	Port    int             `json:"port"`
	Online  bool            `json:"online"`
	Latency time.Duration   `json:"latency"`
	Error   probe.ErrorKind `json:"error,omitempty"`
}

// StatusReport liveness of every status port on the resolved host
type StatusReport struct {
	Host         string       `json:"host"`
	DiscoveredAt time.Time    `json:"discovered_at"`
	Ports        []PortStatus `json:"ports"`
}

// Online reports whether every port answered
func (r *StatusReport) Online() bool {
	for _, p := range r.Ports {
		if !p.Online {
			return false
		}
	}

	return len(r.Ports) > 0
}

// Core represents our core data structure
type Core struct {
	ctx          context.Context
	cancel       context.CancelFunc
	conf         config.Config
	discovery    discovery.Service
	prober       probe.Prober
	events       event.Manager
	journal      journal.Repo
	client       *api.Client
	pollInterval time.Duration
	log          logger.Logger
}

// New returns new core module for given configuration
func New(
	conf config.Config,
	service discovery.Service,
	prober probe.Prober,
	events event.Manager,
	repo journal.Repo,
) *Core {
	ctx, cancel := context.WithCancel(context.Background())

	return &Core{
		ctx:          ctx,
		cancel:       cancel,
		conf:         conf,
		discovery:    service,
		prober:       prober,
		events:       events,
		journal:      repo,
		client:       api.NewClient(conf, service),
		pollInterval: defaultPollInterval,
		log:          logger.New(),
	}
}

// Stop cancels the monitor and any discovery started through Context
func (c *Core) Stop() error {
	c.cancel()
	return c.ctx.Err()
}

// Context returns the core's lifetime context
func (c *Core) Context() context.Context {
	return c.ctx
}

// Conf returns the active configuration
func (c *Core) Conf() config.Config {
	return c.conf
}

// API returns the application request client
func (c *Core) API() *api.Client {
	return c.client
}

// Resolve returns the backend endpoint, sweeping when necessary
func (c *Core) Resolve(ctx context.Context, force bool) (*endpoint.ResolvedEndpoint, error) {
	return c.discovery.Resolve(ctx, force)
}

// Invalidate drops the cached endpoint
func (c *Core) Invalidate() {
	c.discovery.Invalidate()
}

// Cached returns the cached endpoint without probing
func (c *Core) Cached() (*endpoint.ResolvedEndpoint, bool) {
	return c.discovery.Cached()
}

// Candidates returns the ordered candidates for the configured platform
func (c *Core) Candidates() []candidate.Candidate {
	return c.discovery.Candidates()
}

// History returns the sweeps run by this process, oldest first
func (c *Core) History() ([]*journal.Sweep, error) {
	return c.journal.GetAll()
}

// Status resolves the endpoint and checks every configured status port on
// it
func (c *Core) Status(ctx context.Context) (*StatusReport, error) {
	ep, err := c.discovery.Resolve(ctx, false)

	if err != nil {
		return nil, err
	}

	report := &StatusReport{
		Host:         ep.Host(),
		DiscoveredAt: ep.DiscoveredAt(),
		Ports:        []PortStatus{},
	}

	target := candidate.Candidate{
		Host:      ep.Host(),
		Rationale: candidate.RationalePreviousSuccess,
	}

	for _, port := range c.conf.StatusPorts {
		result := c.prober.Probe(ctx, target, port, c.conf.ProbeTimeout)

		report.Ports = append(report.Ports, PortStatus{
			Port:    port,
			Online:  result.Reachable,
			Latency: result.Latency,
			Error:   result.Error,
		})
	}

	return report, nil
}

// RegisterEventListener registers listener for events of eventType
func (c *Core) RegisterEventListener(eventType event.EventType, listener chan event.Event) int {
	return c.events.RegisterListener(eventType, listener)
}

// RemoveEventListener removes a previously registered listener
func (c *Core) RemoveEventListener(id int) {
	c.events.RemoveListener(id)
}

// StartDaemon starts monitoring the cached endpoint in the background
func (c *Core) StartDaemon() {
	go func() {
		if err := c.Monitor(); err != nil && c.ctx.Err() == nil {
			c.events.ReportFatalError(err)
		}
	}()
}
