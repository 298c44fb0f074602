package probe

import (
	"context"
	"time"

	"github.com/rotasegura/beacon/internal/candidate"
)

//go:generate mockgen -destination=../mock/probe/mock_probe.go -package=mock_probe . Prober

// ErrorKind classifies why a liveness check failed
type ErrorKind string

// ErrorKind values
const (
	ErrorNone      ErrorKind = ""
	ErrorRefused   ErrorKind = "refused"
	ErrorTimeout   ErrorKind = "timeout"
	ErrorDNS       ErrorKind = "dns"
	ErrorHTTP      ErrorKind = "http-error"
	ErrorCanceled  ErrorKind = "canceled"
	ErrorMalformed ErrorKind = "malformed"
)

// Result outcome of one liveness check. Treat as read-only once produced.
type Result struct {
	Candidate candidate.Candidate `json:"candidate"`
	Port      int                 `json:"port"`
	Reachable bool                `json:"reachable"`
	Latency   time.Duration       `json:"latency"`
	Error     ErrorKind           `json:"error,omitempty"`
	// Status is the HTTP status when a response was received
	Status int    `json:"status,omitempty"`
	Detail string `json:"detail,omitempty"`
}

// Prober performs a single bounded liveness check
type Prober interface {
	Probe(ctx context.Context, target candidate.Candidate, port int, timeout time.Duration) Result
}
