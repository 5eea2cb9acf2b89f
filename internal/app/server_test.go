package app

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShutdown_BeforeStartIsNoop(t *testing.T) {
	srv := &Server{}
	assert.NoError(t, srv.Shutdown(context.Background()))
}

// Start serves until Shutdown drains it, then returns ErrServerClosed.
func TestStartAndShutdown(t *testing.T) {
	mr := miniredis.RunT(t)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	t.Setenv("HTTP_ADDR", addr)
	t.Setenv("REDIS_ADDR", mr.Addr())

	srv := NewServer()
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	healthURL := "http://" + addr + "/api/v1/health"
	deadline := time.Now().Add(3 * time.Second)
	var resp *http.Response
	for time.Now().Before(deadline) {
		resp, err = http.Get(healthURL)
		if err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	require.NoError(t, err, "server never came up on %s", addr)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, http.ErrServerClosed)
	case <-time.After(2 * time.Second):
		t.Fatal("Start did not return after Shutdown")
	}
}
