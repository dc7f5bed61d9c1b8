// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/lara-connect/internal/config"
	"github.com/MKhiriev/lara-connect/internal/handler"
	"github.com/MKhiriev/lara-connect/internal/logger"
	"github.com/MKhiriev/lara-connect/internal/service"
	"github.com/MKhiriev/lara-connect/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type versionStub struct{}

func (versionStub) GetAppVersion(context.Context) models.VersionResponse {
	return models.VersionResponse{Version: "9.9.9"}
}

func (versionStub) GetEventCount(context.Context) models.EventCountResponse {
	return models.EventCountResponse{Count: 5}
}

type blockingWorkers struct {
	stopped atomic.Bool
}

func (w *blockingWorkers) Run(ctx context.Context) {
	<-ctx.Done()
	w.stopped.Store(true)
}

func testHandlers() *handler.Handlers {
	services := &service.Services{AppInfoService: versionStub{}}
	return handler.NewHandlers(services, config.Server{}, logger.Nop())
}

func TestNewServer_RequiresHTTP(t *testing.T) {
	_, err := NewServer(testHandlers(), nil, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(nil, nil, config.Server{HTTPAddress: ":8080"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestRunServer_ServesUntilCancelled(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	workers := &blockingWorkers{}
	srv, err := NewServer(testHandlers(), workers, config.Server{HTTPAddress: ln.Addr().String()}, logger.Nop())
	require.NoError(t, err)
	srv.(*server).listen = func(string, string) (net.Listener, error) { return ln, nil }

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.RunServer(ctx) }()

	var body []byte
	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/api/version")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ = io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)
	assert.JSONEq(t, `{"version":"9.9.9"}`, string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("RunServer did not return after cancel")
	}
	assert.True(t, workers.stopped.Load())
}

func TestRunServer_ListenError(t *testing.T) {
	srv, err := NewServer(testHandlers(), nil, config.Server{HTTPAddress: "127.0.0.1:1"}, logger.Nop())
	require.NoError(t, err)
	listenErr := errors.New("address already in use")
	srv.(*server).listen = func(string, string) (net.Listener, error) { return nil, listenErr }

	assert.ErrorIs(t, srv.RunServer(context.Background()), listenErr)
}
