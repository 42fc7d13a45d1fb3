package main

import (
	"errors"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWaitForShutdown(t *testing.T) {
	t.Run("signal", func(t *testing.T) {
		quit := make(chan os.Signal, 1)
		quit <- syscall.SIGTERM
		assert.NoError(t, waitForShutdown(quit, make(chan error)))
	})

	t.Run("server error returns instead of exiting", func(t *testing.T) {
		serveErr := make(chan error, 1)
		boom := errors.New("listen tcp :8080: bind: address already in use")
		serveErr <- boom
		assert.ErrorIs(t, waitForShutdown(make(chan os.Signal), serveErr), boom)
	})
}
