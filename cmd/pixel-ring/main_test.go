//go:build !windows

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShutdownContextReleasesSignals(t *testing.T) {
	// keeps the process alive once the shutdown context lets go of the signal
	c := make(chan os.Signal, 2)
	signal.Notify(c, syscall.SIGUSR1)
	defer signal.Stop(c)

	ctx, stop := shutdownContext(syscall.SIGUSR1)
	defer stop()

	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGUSR1))
	select {
	case <-ctx.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("context was not cancelled by the signal")
	}
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
	<-c

	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGUSR1))
	select {
	case <-c:
	case <-time.After(2 * time.Second):
		t.Fatal("second signal was not delivered")
	}
}
