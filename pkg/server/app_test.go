package server

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"MarketScanner/pkg/config"
	xhttp "MarketScanner/pkg/http"
	applogger "MarketScanner/pkg/logger"
)

func TestRunContextStopsOnCancel(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	srv := xhttp.NewServer(nil, applogger.Nop(), xhttp.WithHost("127.0.0.1"), xhttp.WithPort(0))
	app := New(cfg, srv, nil)
	assert.Same(t, srv, app.Server())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.RunContext(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
	}
}
