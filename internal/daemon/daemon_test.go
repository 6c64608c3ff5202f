package daemon

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"

	"github.com/clawdesk/clawconf/internal/watch"
)

func freeAddr(t *testing.T) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	return addr
}

func TestNewDaemon_InvalidDependencies(t *testing.T) {
	t.Parallel()

	_, err := NewDaemon(Dependencies{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid daemon dependencies")
}

func TestDaemon_Run(t *testing.T) {
	path := testConfigPath(t)
	svc := testService(t, path)

	w, err := watch.NewWatcher(hclog.NewNullLogger(), path, watch.WithDebounce(10*time.Millisecond))
	require.NoError(t, err)

	addr := freeAddr(t)
	deps, err := NewDependencies(hclog.NewNullLogger(), addr, svc, w)
	require.NoError(t, err)

	d, err := NewDaemon(deps, WithAPIOptions(WithShutdownTimeout(time.Second)))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- d.Run(ctx)
	}()

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
	url := "http://" + addr + "/api/v1/config/path"

	require.Eventually(t, func() bool {
		resp, err := client.Get(url)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	resp, err := client.Get(url)
	require.NoError(t, err)
	var body struct {
		Path string `json:"path"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NoError(t, resp.Body.Close())
	require.Equal(t, svc.Path(), body.Path)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("daemon did not stop")
	}
	require.Zero(t, w.SubscriberCount())
}

func TestDaemon_Run_AddressInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	deps, err := NewDependencies(
		hclog.NewNullLogger(),
		ln.Addr().String(),
		testService(t, testConfigPath(t)),
		&fakeWatcher{},
	)
	require.NoError(t, err)

	d, err := NewDaemon(deps, WithLogChanges(false))
	require.NoError(t, err)

	err = d.Run(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to listen")
}
