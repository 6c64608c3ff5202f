package cmd

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/clawdesk/clawconf/internal/cmd"
	"github.com/clawdesk/clawconf/internal/daemon"
	"github.com/clawdesk/clawconf/internal/settings"
	"github.com/clawdesk/clawconf/internal/watch"
)

func ptr[T any](v T) *T {
	return &v
}

func newTestDaemonCmd(t *testing.T) (*DaemonCmd, *cobra.Command) {
	t.Helper()

	c := &DaemonCmd{BaseCmd: &cmd.BaseCmd{}}
	cobraCmd := &cobra.Command{Use: "daemon"}
	c.addFlags(cobraCmd.Flags())

	return c, cobraCmd
}

func TestDaemon_NewDaemonCmd_Defaults(t *testing.T) {
	t.Parallel()

	cobraCmd, err := NewDaemonCmd(&cmd.BaseCmd{})
	require.NoError(t, err)
	require.Equal(t, "daemon", cobraCmd.Name())

	tests := map[string]string{
		flagAddr:            settings.DefaultAddr,
		flagShutdownTimeout: daemon.DefaultAPIShutdownTimeout().String(),
		flagWatchDebounce:   watch.DefaultDebounce.String(),
		flagCORSEnable:      "false",
		flagCORSOrigins:     "[tauri://localhost,http://tauri.localhost,https://tauri.localhost]",
		flagCORSMaxAge:      daemon.DefaultCORSMaxAge().String(),
		flagCORSCredentials: "false",
	}

	for name, want := range tests {
		f := cobraCmd.Flags().Lookup(name)
		require.NotNil(t, f, "flag %s should be registered", name)
		require.Equal(t, want, f.DefValue, "default for flag %s", name)
	}
}

func TestDaemon_ApplySettings(t *testing.T) {
	t.Parallel()

	s := settings.Settings{
		Daemon: &settings.DaemonSection{
			Addr:            ptr("127.0.0.1:9000"),
			ShutdownTimeout: ptr(settings.Duration(20 * time.Second)),
			CORS: &settings.CORSSection{
				Enable:        ptr(true),
				Origins:       []string{"http://localhost:1420"},
				Methods:       []string{"GET"},
				Headers:       []string{"Content-Type"},
				ExposeHeaders: []string{"X-Request-Id"},
				Credentials:   ptr(true),
				MaxAge:        ptr(settings.Duration(time.Minute)),
			},
		},
	}

	t.Run("settings fill unset flags", func(t *testing.T) {
		t.Parallel()

		c, cobraCmd := newTestDaemonCmd(t)
		c.applySettings(cobraCmd, s)

		require.Equal(t, "127.0.0.1:9000", c.addr)
		require.Equal(t, 20*time.Second, c.shutdownTimeout)
		require.True(t, c.corsEnable)
		require.Equal(t, []string{"http://localhost:1420"}, c.corsOrigins)
		require.Equal(t, []string{"GET"}, c.corsMethods)
		require.Equal(t, []string{"Content-Type"}, c.corsHeaders)
		require.Equal(t, []string{"X-Request-Id"}, c.corsExposeHeaders)
		require.True(t, c.corsCredentials)
		require.Equal(t, time.Minute, c.corsMaxAge)
	})

	t.Run("flags win over settings", func(t *testing.T) {
		t.Parallel()

		c, cobraCmd := newTestDaemonCmd(t)
		require.NoError(t, cobraCmd.Flags().Set(flagAddr, "127.0.0.1:9999"))
		require.NoError(t, cobraCmd.Flags().Set(flagCORSEnable, "false"))
		require.NoError(t, cobraCmd.Flags().Set(flagCORSOrigins, "http://example.test"))
		require.NoError(t, cobraCmd.Flags().Set(flagShutdownTimeout, "1s"))

		c.applySettings(cobraCmd, s)

		require.Equal(t, "127.0.0.1:9999", c.addr)
		require.Equal(t, time.Second, c.shutdownTimeout)
		require.False(t, c.corsEnable)
		require.Equal(t, []string{"http://example.test"}, c.corsOrigins)
		require.Equal(t, []string{"GET"}, c.corsMethods)
	})

	t.Run("empty settings keep defaults", func(t *testing.T) {
		t.Parallel()

		c, cobraCmd := newTestDaemonCmd(t)
		c.applySettings(cobraCmd, settings.Settings{})

		require.Equal(t, settings.DefaultAddr, c.addr)
		require.Equal(t, daemon.DefaultAPIShutdownTimeout(), c.shutdownTimeout)
		require.Equal(t, daemon.DefaultCORSAllowOrigins(), c.corsOrigins)
	})
}

func TestDaemon_APIOptions(t *testing.T) {
	t.Parallel()

	c, cobraCmd := newTestDaemonCmd(t)
	require.NoError(t, cobraCmd.Flags().Set(flagCORSEnable, "true"))
	require.NoError(t, cobraCmd.Flags().Set(flagCORSMaxAge, "30s"))

	opts, err := daemon.NewAPIOptions(c.apiOptions()...)
	require.NoError(t, err)
	require.True(t, opts.CORS.Enabled)
	require.Equal(t, 30*time.Second, opts.CORS.MaxAge)
	require.Equal(t, daemon.DefaultAPIShutdownTimeout(), opts.ShutdownTimeout)

	require.NoError(t, cobraCmd.Flags().Set(flagCORSMaxAge, "-1s"))
	_, err = daemon.NewAPIOptions(c.apiOptions()...)
	require.Error(t, err)
	require.Contains(t, err.Error(), "CORS max age cannot be negative")
}
