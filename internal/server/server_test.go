// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/ecostats/internal/config"
	"github.com/MKhiriev/ecostats/internal/handler"
	"github.com/MKhiriev/ecostats/internal/logger"
	"github.com/MKhiriev/ecostats/internal/service"
)

func testHandlers(t *testing.T) *handler.Handlers {
	t.Helper()
	h, err := handler.NewHandlers(&service.Services{}, config.StructuredConfig{Server: config.Server{Port: 5000}}, logger.Nop())
	require.NoError(t, err)
	return h
}

func TestNewServer(t *testing.T) {
	tests := []struct {
		name     string
		handlers *handler.Handlers
		wantErr  error
	}{
		{name: "nil handlers", handlers: nil, wantErr: errNoServersAreCreated},
		{name: "no HTTP handler", handlers: &handler.Handlers{}, wantErr: errNoServersAreCreated},
		{name: "HTTP handler", handlers: testHandlers(t)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, err := NewServer(tt.handlers, config.Server{Host: "127.0.0.1", Port: 0}, logger.Nop())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, srv)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, srv)
		})
	}
}

func TestNewHTTPServer_DefaultShutdownTimeout(t *testing.T) {
	s := newHTTPServer(http.NotFoundHandler(), config.Server{Host: "127.0.0.1", Port: 8081}, logger.Nop())

	assert.Equal(t, "127.0.0.1:8081", s.server.Addr)
	assert.Equal(t, defaultShutdownTimeout, s.shutdownTimeout)

	s = newHTTPServer(http.NotFoundHandler(), config.Server{ShutdownTimeout: time.Second}, logger.Nop())
	assert.Equal(t, time.Second, s.shutdownTimeout)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	srv, err := NewServer(testHandlers(t), config.Server{Host: "127.0.0.1", Port: 0, ShutdownTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.(*server).run(ctx)
	}()

	cancel()

	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after context cancel")
	}
}

func TestRun_ListenError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	port := busy.Addr().(*net.TCPAddr).Port
	srv, err := NewServer(testHandlers(t), config.Server{Host: "127.0.0.1", Port: port}, logger.Nop())
	require.NoError(t, err)

	err = srv.(*server).run(context.Background())
	assert.Error(t, err)
}

func TestHTTPServer_ServeAndShutdown(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := newHTTPServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}), config.Server{ShutdownTimeout: time.Second}, logger.Nop())

	done := make(chan error, 1)
	go func() { done <- s.serve(listener) }()

	resp, err := http.Get("http://" + listener.Addr().String())
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)

	s.Shutdown()
	assert.NoError(t, <-done)
}
