package probe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/rotasegura/beacon/internal/candidate"
	"github.com/rotasegura/beacon/internal/exception"
	"github.com/rotasegura/beacon/internal/logger"
)

// drained from each health response so the body is read to completion
const maxHealthBody = 4096

// HTTPProber implements Prober with a GET to the health path
type HTTPProber struct {
	client     *http.Client
	healthPath string
	log        logger.Logger
}

// NewHTTPProber returns a new instance of HTTPProber
func NewHTTPProber(healthPath string) *HTTPProber {
	transport := cleanhttp.DefaultTransport()
	transport.DisableKeepAlives = true

	if healthPath == "" {
		healthPath = "/health"
	}

	if !strings.HasPrefix(healthPath, "/") {
		healthPath = "/" + healthPath
	}

	return &HTTPProber{
		client: &http.Client{
			Transport: transport,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		healthPath: healthPath,
		log:        logger.New(),
	}
}

// Probe checks that target answers the health path on port with a 2xx
// within timeout. Cancelling ctx aborts the request.
func (p *HTTPProber) Probe(
	ctx context.Context,
	target candidate.Candidate,
	port int,
	timeout time.Duration,
) Result {
	result := Result{
		Candidate: target,
		Port:      port,
	}

	if strings.TrimSpace(target.Host) == "" {
		result.Error = ErrorMalformed
		result.Detail = exception.ErrEmptyHost.Error()
		return result
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	url := fmt.Sprintf(
		"http://%s%s",
		net.JoinHostPort(target.Host, strconv.Itoa(port)),
		p.healthPath,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)

	if err != nil {
		result.Error = ErrorMalformed
		result.Detail = err.Error()
		return result
	}

	req.Header.Set("Cache-Control", "no-cache")

	p.log.Debug().Str("url", url).Msg("probing candidate")

	start := time.Now()
	resp, err := p.client.Do(req)
	result.Latency = time.Since(start)

	if err != nil {
		result.Error = ClassifyError(err)
		result.Detail = err.Error()
		return result
	}

	defer resp.Body.Close()

	io.Copy(io.Discard, io.LimitReader(resp.Body, maxHealthBody))

	result.Status = resp.StatusCode

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		result.Error = ErrorHTTP
		result.Detail = resp.Status
		return result
	}

	result.Reachable = true

	return result
}

// ClassifyError maps a transport error to an ErrorKind. Unrecognised
// transport failures count as refused since the host did not accept the
// request.
func ClassifyError(err error) ErrorKind {
	if err == nil {
		return ErrorNone
	}

	var dnsErr *net.DNSError

	if errors.As(err, &dnsErr) {
		if dnsErr.IsTimeout {
			return ErrorTimeout
		}
		return ErrorDNS
	}

	if errors.Is(err, syscall.ECONNREFUSED) {
		return ErrorRefused
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return ErrorTimeout
	}

	if errors.Is(err, context.Canceled) {
		return ErrorCanceled
	}

	var netErr net.Error

	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrorTimeout
	}

	return ErrorRefused
}

// Connectivity reports whether kind means the host could not be reached
// at all, as opposed to answering badly
func (k ErrorKind) Connectivity() bool {
	switch k {
	case ErrorRefused, ErrorTimeout, ErrorDNS:
		return true
	default:
		return false
	}
}
