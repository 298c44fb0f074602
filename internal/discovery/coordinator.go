package discovery

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rotasegura/beacon/internal/candidate"
	"github.com/rotasegura/beacon/internal/config"
	"github.com/rotasegura/beacon/internal/endpoint"
	"github.com/rotasegura/beacon/internal/event"
	"github.com/rotasegura/beacon/internal/exception"
	"github.com/rotasegura/beacon/internal/journal"
	"github.com/rotasegura/beacon/internal/logger"
	"github.com/rotasegura/beacon/internal/probe"
	"golang.org/x/sync/singleflight"
)

// every sweep shares one key so at most one is in flight
const sweepKey = "sweep"

// bounds a sweep when the config leaves the discovery deadline unset
const defaultDeadline = 30 * time.Second

// Option configures a Coordinator
type Option func(c *Coordinator)

// WithEvents broadcasts sweep lifecycle events through manager
func WithEvents(manager event.Manager) Option {
	return func(c *Coordinator) {
		c.events = manager
	}
}

// WithRecorder records every finished sweep in repo
func WithRecorder(repo journal.Repo) Option {
	return func(c *Coordinator) {
		c.recorder = repo
	}
}

// sweep result shared with every caller that joined it
type outcome struct {
	endpoint *endpoint.ResolvedEndpoint
	// set when the endpoint came from the cache rather than probing
	cached bool
}

// Coordinator implements Service by probing candidates in priority order
type Coordinator struct {
	platform     candidate.Platform
	ports        []int
	probeTimeout time.Duration
	deadline     time.Duration
	source       candidate.Source
	prober       probe.Prober
	cache        endpoint.Cache
	events       event.Manager
	recorder     journal.Repo
	group        singleflight.Group
	previous     string
	log          logger.Logger
	mux          sync.Mutex
}

// NewCoordinator returns a new instance of Coordinator
func NewCoordinator(
	conf config.Config,
	source candidate.Source,
	prober probe.Prober,
	cache endpoint.Cache,
	opts ...Option,
) (*Coordinator, error) {
	if len(conf.Ports) == 0 {
		return nil, errors.New("at least one application port is required")
	}

	c := &Coordinator{
		platform:     candidate.Platform(conf.Platform),
		ports:        conf.Ports,
		probeTimeout: conf.ProbeTimeout,
		deadline:     conf.DiscoveryDeadline,
		source:       source,
		prober:       prober,
		cache:        cache,
		log:          logger.New(),
		mux:          sync.Mutex{},
	}

	if c.deadline <= 0 {
		c.deadline = defaultDeadline
	}

	for _, o := range opts {
		o(c)
	}

	return c, nil
}

// Resolve returns the cached endpoint unless force is set or the cache is
// empty, in which case a sweep runs. Callers arriving while a sweep is in
// flight wait for its result instead of starting another. The sweep is
// bounded by the discovery deadline only, so a caller whose ctx ends
// returns early without cutting the sweep short for the others.
func (c *Coordinator) Resolve(ctx context.Context, force bool) (*endpoint.ResolvedEndpoint, error) {
	if !force {
		if ep, ok := c.cache.Get(); ok {
			return ep, nil
		}
	}

	sweepCtx := context.WithoutCancel(ctx)

	for {
		resultChan := c.group.DoChan(sweepKey, func() (interface{}, error) {
			return c.sweep(sweepCtx, force)
		})

		select {
		case <-ctx.Done():
			return nil, &ExhaustedError{Results: []probe.Result{}, Cause: ctx.Err()}
		case res := <-resultChan:
			if res.Err != nil {
				return nil, res.Err
			}

			out := res.Val.(*outcome)

			// joined a non forced call that was satisfied by the cache
			if force && out.cached {
				continue
			}

			return out.endpoint, nil
		}
	}
}

// Invalidate drops the cached endpoint so the next Resolve sweeps
func (c *Coordinator) Invalidate() {
	c.cache.Invalidate()

	c.log.Debug().Msg("cached endpoint invalidated")

	c.send(event.Event{Type: event.EndpointInvalidatedEventType})
}

// Cached returns the cached endpoint if there is one
func (c *Coordinator) Cached() (*endpoint.ResolvedEndpoint, bool) {
	return c.cache.Get()
}

// Candidates returns the ordered candidates the next sweep would probe
func (c *Coordinator) Candidates() []candidate.Candidate {
	list := c.source.Candidates(c.platform)

	c.mux.Lock()
	previous := c.previous
	c.mux.Unlock()

	if previous == "" {
		return list
	}

	withPrevious := append(
		[]candidate.Candidate{{
			Host:      previous,
			Rationale: candidate.RationalePreviousSuccess,
		}},
		list...,
	)

	return candidate.Dedupe(withPrevious)
}

// sweep probes candidates strictly in order, stopping at the first one that
// answers on any configured port
func (c *Coordinator) sweep(ctx context.Context, force bool) (*outcome, error) {
	if !force {
		// a sweep may have finished between the cache check and joining
		if ep, ok := c.cache.Get(); ok {
			return &outcome{endpoint: ep, cached: true}, nil
		}
	}

	ctx, cancel := context.WithTimeout(ctx, c.deadline)
	defer cancel()

	sweepID := uuid.NewString()
	started := time.Now()
	candidates := c.Candidates()
	results := []probe.Result{}

	c.log.Debug().
		Str("sweep", sweepID).
		Str("platform", string(c.platform)).
		Int("candidates", len(candidates)).
		Bool("forced", force).
		Msg("starting discovery sweep")

	c.send(event.Event{
		Type: event.SweepStartedEventType,
		Payload: SweepStartedPayload{
			SweepID:    sweepID,
			Platform:   c.platform,
			Forced:     force,
			Candidates: candidates,
		},
	})

	for _, target := range candidates {
		if ctx.Err() != nil {
			break
		}

		if strings.TrimSpace(target.Host) == "" {
			c.log.Warn().Err(exception.ErrEmptyHost).Msg("skipping candidate")
			continue
		}

		verified := []int{}

		for _, port := range c.ports {
			if ctx.Err() != nil {
				break
			}

			result := c.prober.Probe(ctx, target, port, c.probeTimeout)
			results = append(results, result)

			c.log.Debug().
				Str("host", target.Host).
				Int("port", port).
				Bool("reachable", result.Reachable).
				Str("error", string(result.Error)).
				Dur("latency", result.Latency).
				Msg("probe completed")

			c.send(event.Event{
				Type: event.ProbeCompletedEventType,
				Payload: ProbeCompletedPayload{
					SweepID: sweepID,
					Index:   len(results) - 1,
					Result:  result,
				},
			})

			if result.Reachable {
				verified = append(verified, port)
				break
			}
		}

		if len(verified) == 0 {
			continue
		}

		ep := endpoint.New(target.Host, time.Now(), verified...)

		c.cache.Set(ep)

		c.mux.Lock()
		c.previous = target.Host
		c.mux.Unlock()

		c.log.Info().
			Str("host", ep.Host()).
			Ints("ports", ep.VerifiedPorts()).
			Msg("endpoint resolved")

		c.record(&journal.Sweep{
			ID:         sweepID,
			Platform:   string(c.platform),
			Forced:     force,
			Outcome:    journal.OutcomeResolved,
			Host:       ep.Host(),
			Port:       verified[0],
			StartedAt:  started,
			FinishedAt: time.Now(),
			Probes:     results,
		})

		c.send(event.Event{
			Type: event.EndpointResolvedEventType,
			Payload: EndpointResolvedPayload{
				SweepID:  sweepID,
				Endpoint: ep,
			},
		})

		return &outcome{endpoint: ep}, nil
	}

	exhausted := &ExhaustedError{Results: results, Cause: ctx.Err()}

	ended := journal.OutcomeExhausted

	if exhausted.Cause != nil {
		ended = journal.OutcomeCanceled
	}

	c.log.Warn().
		Int("probes", len(results)).
		Str("outcome", string(ended)).
		Msg("discovery exhausted")

	c.record(&journal.Sweep{
		ID:         sweepID,
		Platform:   string(c.platform),
		Forced:     force,
		Outcome:    ended,
		StartedAt:  started,
		FinishedAt: time.Now(),
		Probes:     results,
	})

	c.send(event.Event{
		Type: event.DiscoveryExhaustedEventType,
		Payload: ExhaustedPayload{
			SweepID: sweepID,
			Err:     exhausted,
		},
	})

	return nil, exhausted
}

func (c *Coordinator) send(evt event.Event) {
	if c.events != nil {
		c.events.Send(evt)
	}
}

func (c *Coordinator) record(sweep *journal.Sweep) {
	if c.recorder == nil {
		return
	}

	if err := c.recorder.Record(sweep); err != nil {
		c.log.Error().Err(err).Str("sweep", sweep.ID).Msg("failed to record sweep")
	}
}
