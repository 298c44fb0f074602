package core

import (
	"github.com/rotasegura/beacon/internal/candidate"
	"github.com/rotasegura/beacon/internal/config"
	"github.com/rotasegura/beacon/internal/discovery"
	"github.com/rotasegura/beacon/internal/endpoint"
	"github.com/rotasegura/beacon/internal/event"
	"github.com/rotasegura/beacon/internal/journal"
	"github.com/rotasegura/beacon/internal/logger"
	"github.com/rotasegura/beacon/internal/probe"
	"github.com/rotasegura/beacon/internal/util"
)

// localSubnet returns the CIDR of the preferred outbound interface when
// local subnet guesses are enabled
func localSubnet(conf config.Config) string {
	if !conf.LAN.IncludeLocalSubnet {
		return ""
	}

	local, err := util.DetectLocalNetwork()

	if err != nil {
		log := logger.New()
		log.Warn().Err(err).Msg("failed to detect local subnet")
		return ""
	}

	return local.Cidr
}

// CreateNewAppCore creates and returns a new instance of *core.Core
func CreateNewAppCore(conf config.Config) (*Core, error) {
	source, err := candidate.NewTableSource(conf, localSubnet(conf))

	if err != nil {
		return nil, err
	}

	db, err := journal.NewMemoryDatabase()

	if err != nil {
		return nil, err
	}

	repo := journal.NewSqliteRepo(db)
	events := event.NewEventManager()
	prober := probe.NewHTTPProber(conf.HealthPath)
	cache := endpoint.NewMemoryCache()

	coordinator, err := discovery.NewCoordinator(
		conf,
		source,
		prober,
		cache,
		discovery.WithEvents(events),
		discovery.WithRecorder(repo),
	)

	if err != nil {
		return nil, err
	}

	return New(conf, coordinator, prober, events, repo), nil
}
