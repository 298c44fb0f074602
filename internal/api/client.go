package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/rotasegura/beacon/internal/config"
	"github.com/rotasegura/beacon/internal/discovery"
	"github.com/rotasegura/beacon/internal/endpoint"
	"github.com/rotasegura/beacon/internal/logger"
	"github.com/rotasegura/beacon/internal/probe"
)

// Client performs application requests against the discovered backend
type Client struct {
	discovery discovery.Service
	ports     []int
	timeout   time.Duration
	http      *http.Client
	now       func() time.Time
	log       logger.Logger
}

// NewClient returns a new instance of Client
func NewClient(conf config.Config, service discovery.Service) *Client {
	return &Client{
		discovery: service,
		ports:     conf.Ports,
		timeout:   conf.RequestTimeout,
		http:      cleanhttp.DefaultPooledClient(),
		now:       time.Now,
		log:       logger.New(),
	}
}

// Post sends body as JSON to path on the resolved endpoint and returns the
// raw JSON response. A connectivity failure invalidates the endpoint and
// retries exactly once against a freshly resolved one.
func (c *Client) Post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	ep, err := c.discovery.Resolve(ctx, false)

	if err != nil {
		return nil, err
	}

	data, err := c.do(ctx, ep, path, body)

	if err == nil {
		return data, nil
	}

	connErr := &ConnectivityError{}

	if !errors.As(err, &connErr) || ctx.Err() != nil {
		return nil, err
	}

	c.log.Warn().
		Str("host", connErr.Host).
		Int("port", connErr.Port).
		Str("kind", string(connErr.Kind)).
		Msg("endpoint stale, rediscovering")

	c.discovery.Invalidate()

	fresh, err := c.discovery.Resolve(ctx, false)

	if err != nil {
		connErr.Rediscovery = err
		return nil, connErr
	}

	return c.do(ctx, fresh, path, body)
}

// CalculateRoute requests a route between two addresses. currentTime
// defaults to the local HH:MM.
func (c *Client) CalculateRoute(ctx context.Context, start, end, currentTime string) (json.RawMessage, error) {
	return c.Post(ctx, CalculateRoutePath, RouteRequest{
		StartAddress: start,
		EndAddress:   end,
		CurrentTime:  c.currentTime(currentTime),
	})
}

// Geocode resolves an address within city, DefaultCity when empty
func (c *Client) Geocode(ctx context.Context, address, city string) (json.RawMessage, error) {
	if city == "" {
		city = DefaultCity
	}

	return c.Post(ctx, GeocodePath, GeocodeRequest{
		Address: address,
		City:    city,
	})
}

// AnalyzeStreet requests the safety analysis of a street. currentTime
// defaults to the local HH:MM.
func (c *Client) AnalyzeStreet(ctx context.Context, street, currentTime string) (json.RawMessage, error) {
	return c.Post(ctx, AnalyzeStreetPath, StreetRequest{
		StreetName:  street,
		CurrentTime: c.currentTime(currentTime),
	})
}

// TrainAI asks the backend to retrain its model
func (c *Client) TrainAI(ctx context.Context) (json.RawMessage, error) {
	return c.Post(ctx, TrainAIPath, nil)
}

func (c *Client) currentTime(provided string) string {
	if provided != "" {
		return provided
	}

	return c.now().Format("15:04")
}

func (c *Client) do(
	ctx context.Context,
	ep *endpoint.ResolvedEndpoint,
	path string,
	body any,
) (json.RawMessage, error) {
	port := ep.Port(c.ports)
	url := ep.BaseURL(port) + path

	var reader io.Reader

	if body != nil {
		raw, err := json.Marshal(body)

		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}

		reader = bytes.NewReader(raw)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, reader)

	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.log.Debug().Str("url", url).Msg("sending request")

	resp, err := c.http.Do(req)

	if err != nil {
		kind := probe.ClassifyError(err)

		if !kind.Connectivity() {
			return nil, fmt.Errorf("request to %s failed: %w", url, err)
		}

		return nil, &ConnectivityError{
			Host: ep.Host(),
			Port: port,
			Kind: kind,
			Err:  err,
		}
	}

	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", url, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newApplicationError(resp.StatusCode, data)
	}

	if len(data) == 0 {
		return nil, nil
	}

	return json.RawMessage(data), nil
}
