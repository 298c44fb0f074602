package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/rotasegura/beacon/internal/api"
	"github.com/rotasegura/beacon/internal/config"
	"github.com/rotasegura/beacon/internal/discovery"
	"github.com/rotasegura/beacon/internal/endpoint"
	"github.com/rotasegura/beacon/internal/exception"
	mock_discovery "github.com/rotasegura/beacon/internal/mock/discovery"
	"github.com/rotasegura/beacon/internal/probe"
	"github.com/rotasegura/beacon/internal/test_util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captured struct {
	path        string
	contentType string
	body        map[string]string
	raw         []byte
}

func backend(t *testing.T, status int, response string, seen *captured) (*httptest.Server, *endpoint.ResolvedEndpoint) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)

		if seen != nil {
			seen.path = r.URL.Path
			seen.contentType = r.Header.Get("Content-Type")
			seen.raw = raw
			seen.body = map[string]string{}
			json.Unmarshal(raw, &seen.body)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		fmt.Fprint(w, response)
	}))

	t.Cleanup(server.Close)

	host, port := test_util.ServerHostPort(t, server)

	return server, endpoint.New(host, time.Now(), port)
}

func deadEndpoint(t *testing.T) *endpoint.ResolvedEndpoint {
	server := httptest.NewServer(http.NotFoundHandler())
	host, port := test_util.ServerHostPort(t, server)
	server.Close()

	return endpoint.New(host, time.Now(), port)
}

func TestClient(t *testing.T) {
	conf := *config.Default()
	conf.RequestTimeout = 2 * time.Second

	t.Run("posts json to resolved endpoint", func(st *testing.T) {
		ctrl := gomock.NewController(st)
		service := mock_discovery.NewMockService(ctrl)

		seen := &captured{}
		_, ep := backend(st, http.StatusOK, `{"route":[1,2,3]}`, seen)

		service.EXPECT().Resolve(gomock.Any(), false).Return(ep, nil)

		client := api.NewClient(conf, service)

		data, err := client.CalculateRoute(context.Background(), "Rua A", "Rua B", "08:30")

		require.NoError(st, err)
		assert.JSONEq(st, `{"route":[1,2,3]}`, string(data))
		assert.Equal(st, api.CalculateRoutePath, seen.path)
		assert.Equal(st, "application/json", seen.contentType)
		assert.Equal(st, map[string]string{
			"start_address": "Rua A",
			"end_address":   "Rua B",
			"current_time":  "08:30",
		}, seen.body)
	})

	t.Run("geocode defaults city", func(st *testing.T) {
		ctrl := gomock.NewController(st)
		service := mock_discovery.NewMockService(ctrl)

		seen := &captured{}
		_, ep := backend(st, http.StatusOK, `{"lat":-22.9,"lon":-47.06}`, seen)

		service.EXPECT().Resolve(gomock.Any(), false).Return(ep, nil)

		client := api.NewClient(conf, service)

		_, err := client.Geocode(context.Background(), "Av. Brasil 100", "")

		require.NoError(st, err)
		assert.Equal(st, api.GeocodePath, seen.path)
		assert.Equal(st, api.DefaultCity, seen.body["city"])
		assert.Equal(st, "Av. Brasil 100", seen.body["address"])
	})

	t.Run("analyze street defaults current time", func(st *testing.T) {
		ctrl := gomock.NewController(st)
		service := mock_discovery.NewMockService(ctrl)

		seen := &captured{}
		_, ep := backend(st, http.StatusOK, `{}`, seen)

		service.EXPECT().Resolve(gomock.Any(), false).Return(ep, nil)

		client := api.NewClient(conf, service)

		_, err := client.AnalyzeStreet(context.Background(), "Rua Barão", "")

		require.NoError(st, err)
		assert.Equal(st, api.AnalyzeStreetPath, seen.path)
		assert.Equal(st, "Rua Barão", seen.body["street_name"])
		assert.Regexp(st, `^\d{2}:\d{2}$`, seen.body["current_time"])
	})

	t.Run("train ai sends no body", func(st *testing.T) {
		ctrl := gomock.NewController(st)
		service := mock_discovery.NewMockService(ctrl)

		seen := &captured{}
		_, ep := backend(st, http.StatusOK, `{"trained":true}`, seen)

		service.EXPECT().Resolve(gomock.Any(), false).Return(ep, nil)

		client := api.NewClient(conf, service)

		data, err := client.TrainAI(context.Background())

		require.NoError(st, err)
		assert.Equal(st, api.TrainAIPath, seen.path)
		assert.Empty(st, seen.raw)
		assert.JSONEq(st, `{"trained":true}`, string(data))
	})

	t.Run("surfaces application errors without touching the cache", func(st *testing.T) {
		ctrl := gomock.NewController(st)
		service := mock_discovery.NewMockService(ctrl)

		_, ep := backend(st, http.StatusUnprocessableEntity, `{"error":"address not found"}`, nil)

		service.EXPECT().Resolve(gomock.Any(), false).Return(ep, nil).Times(1)

		client := api.NewClient(conf, service)

		_, err := client.Geocode(context.Background(), "nowhere", "")

		appErr := &api.ApplicationError{}

		require.True(st, errors.As(err, &appErr))
		assert.Equal(st, http.StatusUnprocessableEntity, appErr.Status)
		assert.Equal(st, "address not found", appErr.Message)
		assert.JSONEq(st, `{"error":"address not found"}`, string(appErr.Payload))
	})

	t.Run("falls back to status text when error body is missing", func(st *testing.T) {
		ctrl := gomock.NewController(st)
		service := mock_discovery.NewMockService(ctrl)

		_, ep := backend(st, http.StatusInternalServerError, `oops`, nil)

		service.EXPECT().Resolve(gomock.Any(), false).Return(ep, nil)

		client := api.NewClient(conf, service)

		_, err := client.TrainAI(context.Background())

		appErr := &api.ApplicationError{}

		require.True(st, errors.As(err, &appErr))
		assert.Equal(st, http.StatusText(http.StatusInternalServerError), appErr.Message)
		assert.Nil(st, appErr.Payload)
	})

	t.Run("invalidates and retries once on refused connection", func(st *testing.T) {
		ctrl := gomock.NewController(st)
		service := mock_discovery.NewMockService(ctrl)

		stale := deadEndpoint(st)
		seen := &captured{}
		_, fresh := backend(st, http.StatusOK, `{"ok":true}`, seen)

		gomock.InOrder(
			service.EXPECT().Resolve(gomock.Any(), false).Return(stale, nil),
			service.EXPECT().Invalidate(),
			service.EXPECT().Resolve(gomock.Any(), false).Return(fresh, nil),
		)

		client := api.NewClient(conf, service)

		data, err := client.TrainAI(context.Background())

		require.NoError(st, err)
		assert.JSONEq(st, `{"ok":true}`, string(data))
		assert.Equal(st, api.TrainAIPath, seen.path)
	})

	t.Run("surfaces connectivity error when retry fails too", func(st *testing.T) {
		ctrl := gomock.NewController(st)
		service := mock_discovery.NewMockService(ctrl)

		stale := deadEndpoint(st)
		stillDead := deadEndpoint(st)

		gomock.InOrder(
			service.EXPECT().Resolve(gomock.Any(), false).Return(stale, nil),
			service.EXPECT().Invalidate().Times(1),
			service.EXPECT().Resolve(gomock.Any(), false).Return(stillDead, nil),
		)

		client := api.NewClient(conf, service)

		_, err := client.TrainAI(context.Background())

		connErr := &api.ConnectivityError{}

		require.True(st, errors.As(err, &connErr))
		assert.Equal(st, stillDead.Host(), connErr.Host)
		assert.Equal(st, stillDead.VerifiedPorts()[0], connErr.Port)
		assert.Equal(st, probe.ErrorRefused, connErr.Kind)
		assert.Nil(st, connErr.Rediscovery)
	})

	t.Run("reports failed rediscovery", func(st *testing.T) {
		ctrl := gomock.NewController(st)
		service := mock_discovery.NewMockService(ctrl)

		stale := deadEndpoint(st)

		gomock.InOrder(
			service.EXPECT().Resolve(gomock.Any(), false).Return(stale, nil),
			service.EXPECT().Invalidate(),
			service.EXPECT().Resolve(gomock.Any(), false).Return(nil, &discovery.ExhaustedError{}),
		)

		client := api.NewClient(conf, service)

		_, err := client.TrainAI(context.Background())

		connErr := &api.ConnectivityError{}

		require.True(st, errors.As(err, &connErr))
		assert.Equal(st, stale.Host(), connErr.Host)
		assert.ErrorIs(st, err, exception.ErrDiscoveryExhausted)
	})

	t.Run("returns discovery failure without sending", func(st *testing.T) {
		ctrl := gomock.NewController(st)
		service := mock_discovery.NewMockService(ctrl)

		service.EXPECT().Resolve(gomock.Any(), false).Return(nil, &discovery.ExhaustedError{})

		client := api.NewClient(conf, service)

		_, err := client.Geocode(context.Background(), "Av. Brasil", "")

		assert.ErrorIs(st, err, exception.ErrDiscoveryExhausted)
	})

	t.Run("treats request timeout as connectivity failure", func(st *testing.T) {
		ctrl := gomock.NewController(st)
		service := mock_discovery.NewMockService(ctrl)

		release := make(chan struct{})

		slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		defer slow.Close()
		defer close(release)

		host, port := test_util.ServerHostPort(st, slow)
		stale := endpoint.New(host, time.Now(), port)
		_, fresh := backend(st, http.StatusOK, `{}`, nil)

		gomock.InOrder(
			service.EXPECT().Resolve(gomock.Any(), false).Return(stale, nil),
			service.EXPECT().Invalidate(),
			service.EXPECT().Resolve(gomock.Any(), false).Return(fresh, nil),
		)

		fastConf := conf
		fastConf.RequestTimeout = 50 * time.Millisecond

		client := api.NewClient(fastConf, service)

		_, err := client.TrainAI(context.Background())

		assert.NoError(st, err)
	})
}
