package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rotasegura/beacon/internal/probe"
)

// ApplicationError the backend answered with a non 2xx status. The cached
// endpoint is left alone since the host is alive.
type ApplicationError struct {
	Status  int
	Message string
	Payload json.RawMessage
}

func (e *ApplicationError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
}

// ConnectivityError the backend could not be reached even after one
// rediscovery and retry
type ConnectivityError struct {
	Host string
	Port int
	Kind probe.ErrorKind
	Err  error
	// Rediscovery is set when the rediscovery itself failed
	Rediscovery error
}

func (e *ConnectivityError) Error() string {
	msg := fmt.Sprintf("backend unreachable at %s:%d (%s)", e.Host, e.Port, e.Kind)

	if e.Rediscovery != nil {
		msg = fmt.Sprintf("%s: rediscovery failed: %s", msg, e.Rediscovery)
	}

	return msg
}

func (e *ConnectivityError) Unwrap() []error {
	errs := []error{}

	if e.Err != nil {
		errs = append(errs, e.Err)
	}

	if e.Rediscovery != nil {
		errs = append(errs, e.Rediscovery)
	}

	return errs
}

// error message sent by the backend in the "error" field
type errorBody struct {
	Error string `json:"error"`
}

func newApplicationError(status int, body []byte) *ApplicationError {
	msg := http.StatusText(status)

	parsed := errorBody{}

	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error != "" {
		msg = parsed.Error
	}

	var payload json.RawMessage

	if json.Valid(body) {
		payload = json.RawMessage(body)
	}

	return &ApplicationError{
		Status:  status,
		Message: msg,
		Payload: payload,
	}
}
