package core_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/rotasegura/beacon/internal/candidate"
	"github.com/rotasegura/beacon/internal/config"
	"github.com/rotasegura/beacon/internal/core"
	"github.com/rotasegura/beacon/internal/discovery"
	"github.com/rotasegura/beacon/internal/endpoint"
	"github.com/rotasegura/beacon/internal/event"
	"github.com/rotasegura/beacon/internal/exception"
	"github.com/rotasegura/beacon/internal/journal"
	mock_discovery "github.com/rotasegura/beacon/internal/mock/discovery"
	mock_event "github.com/rotasegura/beacon/internal/mock/event"
	mock_journal "github.com/rotasegura/beacon/internal/mock/journal"
	mock_probe "github.com/rotasegura/beacon/internal/mock/probe"
	"github.com/rotasegura/beacon/internal/probe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCore(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	mockDiscovery := mock_discovery.NewMockService(ctrl)
	mockProber := mock_probe.NewMockProber(ctrl)
	mockEvents := mock_event.NewMockManager(ctrl)
	mockJournal := mock_journal.NewMockRepo(ctrl)

	conf := *config.Default()

	coreService := core.New(conf, mockDiscovery, mockProber, mockEvents, mockJournal)

	ep := endpoint.New("192.168.100.9", time.Now(), 5000)

	t.Run("returns config", func(st *testing.T) {
		assert.Equal(st, conf, coreService.Conf())
	})

	t.Run("resolves through discovery", func(st *testing.T) {
		mockDiscovery.EXPECT().Resolve(gomock.Any(), true).Return(ep, nil)

		resolved, err := coreService.Resolve(context.Background(), true)

		assert.NoError(st, err)
		assert.Same(st, ep, resolved)
	})

	t.Run("invalidates through discovery", func(st *testing.T) {
		mockDiscovery.EXPECT().Invalidate()

		coreService.Invalidate()
	})

	t.Run("returns candidates", func(st *testing.T) {
		candidates := []candidate.Candidate{
			{Host: "localhost", Rationale: candidate.RationaleLoopback},
		}

		mockDiscovery.EXPECT().Candidates().Return(candidates)

		assert.Equal(st, candidates, coreService.Candidates())
	})

	t.Run("returns history", func(st *testing.T) {
		sweeps := []*journal.Sweep{{ID: "sweep-1", Outcome: journal.OutcomeResolved}}

		mockJournal.EXPECT().GetAll().Return(sweeps, nil)

		history, err := coreService.History()

		assert.NoError(st, err)
		assert.Equal(st, sweeps, history)
	})

	t.Run("reports status of every status port", func(st *testing.T) {
		target := candidate.Candidate{Host: ep.Host(), Rationale: candidate.RationalePreviousSuccess}

		mockDiscovery.EXPECT().Resolve(gomock.Any(), false).Return(ep, nil)

		gomock.InOrder(
			mockProber.EXPECT().Probe(gomock.Any(), target, 5000, conf.ProbeTimeout).Return(probe.Result{
				Candidate: target,
				Port:      5000,
				Reachable: true,
				Latency:   5 * time.Millisecond,
			}),
			mockProber.EXPECT().Probe(gomock.Any(), target, 3000, conf.ProbeTimeout).Return(probe.Result{
				Candidate: target,
				Port:      3000,
				Error:     probe.ErrorRefused,
			}),
		)

		report, err := coreService.Status(context.Background())

		require.NoError(st, err)
		assert.Equal(st, ep.Host(), report.Host)
		assert.Equal(st, []core.PortStatus{
			{Port: 5000, Online: true, Latency: 5 * time.Millisecond},
			{Port: 3000, Online: false, Error: probe.ErrorRefused},
		}, report.Ports)
		assert.False(st, report.Online())
	})

	t.Run("status returns discovery failure", func(st *testing.T) {
		mockDiscovery.EXPECT().Resolve(gomock.Any(), false).Return(nil, &discovery.ExhaustedError{})

		_, err := coreService.Status(context.Background())

		assert.ErrorIs(st, err, exception.ErrDiscoveryExhausted)
	})

	t.Run("registers and removes event listeners", func(st *testing.T) {
		listener := make(chan event.Event)

		mockEvents.EXPECT().RegisterListener(event.EndpointResolvedEventType, listener).Return(3)
		mockEvents.EXPECT().RemoveListener(3).Return(3)

		id := coreService.RegisterEventListener(event.EndpointResolvedEventType, listener)

		assert.Equal(st, 3, id)

		coreService.RemoveEventListener(id)
	})
}

func TestCoreMonitor(t *testing.T) {
	t.Run("rediscovers when cached endpoint stops answering", func(st *testing.T) {
		ctrl := gomock.NewController(st)

		mockDiscovery := mock_discovery.NewMockService(ctrl)
		mockProber := mock_probe.NewMockProber(ctrl)
		mockEvents := mock_event.NewMockManager(ctrl)
		mockJournal := mock_journal.NewMockRepo(ctrl)

		conf := *config.Default()

		coreService := core.New(conf, mockDiscovery, mockProber, mockEvents, mockJournal)
		coreService.SetPollInterval(10 * time.Millisecond)

		stale := endpoint.New("192.168.1.3", time.Now(), 5000)
		fresh := endpoint.New("localhost", time.Now(), 5000)
		rediscovered := make(chan struct{})

		mockDiscovery.EXPECT().Cached().Return(stale, true)
		mockProber.EXPECT().Probe(gomock.Any(), gomock.Any(), 5000, conf.ProbeTimeout).Return(probe.Result{
			Port:  5000,
			Error: probe.ErrorRefused,
		})
		mockDiscovery.EXPECT().Invalidate()
		mockDiscovery.EXPECT().Resolve(gomock.Any(), false).DoAndReturn(
			func(ctx context.Context, force bool) (*endpoint.ResolvedEndpoint, error) {
				close(rediscovered)
				return fresh, nil
			},
		)
		mockDiscovery.EXPECT().Cached().Return(fresh, true).AnyTimes()
		mockProber.EXPECT().Probe(gomock.Any(), gomock.Any(), 5000, conf.ProbeTimeout).Return(probe.Result{
			Port:      5000,
			Reachable: true,
		}).AnyTimes()

		done := make(chan error)

		go func() {
			done <- coreService.Monitor()
		}()

		select {
		case <-rediscovered:
		case <-time.After(2 * time.Second):
			st.Fatal("monitor did not rediscover")
		}

		coreService.Stop()

		assert.ErrorIs(st, <-done, context.Canceled)
	})
}

func TestCreateNewAppCore(t *testing.T) {
	t.Run("wires default services", func(st *testing.T) {
		conf := *config.Default()
		conf.Platform = string(candidate.PlatformWeb)

		coreService, err := core.CreateNewAppCore(conf)

		require.NoError(st, err)

		defer coreService.Stop()

		candidates := coreService.Candidates()

		require.NotEmpty(st, candidates)
		assert.Equal(st, candidate.RationaleLoopback, candidates[0].Rationale)

		_, ok := coreService.Cached()

		assert.False(st, ok)

		history, err := coreService.History()

		assert.NoError(st, err)
		assert.Empty(st, history)
	})
}
