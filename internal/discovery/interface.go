package discovery

import (
	"context"

	"github.com/rotasegura/beacon/internal/candidate"
	"github.com/rotasegura/beacon/internal/endpoint"
)

//go:generate mockgen -destination=../mock/discovery/mock_discovery.go -package=mock_discovery . Service

// Service resolves a live backend endpoint
type Service interface {
	// Resolve returns the cached endpoint or runs a discovery sweep. Force
	// always sweeps.
	Resolve(ctx context.Context, force bool) (*endpoint.ResolvedEndpoint, error)
	// Invalidate drops the cached endpoint
	Invalidate()
	// Cached returns the cached endpoint without probing
	Cached() (*endpoint.ResolvedEndpoint, bool)
	// Candidates returns the ordered candidates the next sweep would probe
	Candidates() []candidate.Candidate
}
