package journal

import (
	"time"

	"github.com/rotasegura/beacon/internal/probe"
)

//go:generate mockgen -destination=../mock/journal/mock_journal.go -package=mock_journal . Repo

// Outcome how a sweep ended
type Outcome string

const (
	OutcomeResolved  Outcome = "resolved"
	OutcomeExhausted Outcome = "exhausted"
	OutcomeCanceled  Outcome = "canceled"
)

// Sweep a finished discovery sweep
type Sweep struct {
	ID         string
	Platform   string
	Forced     bool
	Outcome    Outcome
	Host       string
	Port       int
	StartedAt  time.Time
	FinishedAt time.Time
	Probes     []probe.Result
}

// Duration returns how long the sweep ran
func (s *Sweep) Duration() time.Duration {
	return s.FinishedAt.Sub(s.StartedAt)
}

// Repo stores finished sweeps for diagnostics
type Repo interface {
	Record(sweep *Sweep) error
	GetAll() ([]*Sweep, error)
	Get(id string) (*Sweep, error)
	Last() (*Sweep, error)
}
