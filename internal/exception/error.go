package exception

import "errors"

// ErrRecordNotFound custom database error for failure to find record
var ErrRecordNotFound = errors.New("record not found")

// ErrDiscoveryExhausted every candidate was tried and none answered the
// liveness check
var ErrDiscoveryExhausted = errors.New("discovery exhausted")

// ErrInvalidPlatform unknown runtime platform tag
var ErrInvalidPlatform = errors.New("invalid platform")

// ErrEmptyHost candidate has no host to probe
var ErrEmptyHost = errors.New("candidate host cannot be empty")

// ErrInvalidConfig configuration failed validation
var ErrInvalidConfig = errors.New("invalid configuration")
