package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/clawdesk/clawconf/internal/cmd"
	cmdopts "github.com/clawdesk/clawconf/internal/cmd/options"
	"github.com/clawdesk/clawconf/internal/daemon"
	"github.com/clawdesk/clawconf/internal/flags"
	"github.com/clawdesk/clawconf/internal/settings"
	"github.com/clawdesk/clawconf/internal/watch"
)

const (
	flagAddr              = "addr"
	flagShutdownTimeout   = "timeout-shutdown"
	flagWatchDebounce     = "watch-debounce"
	flagCORSEnable        = "cors-enable"
	flagCORSOrigins       = "cors-origins"
	flagCORSMethods       = "cors-methods"
	flagCORSHeaders       = "cors-headers"
	flagCORSExposeHeaders = "cors-expose-headers"
	flagCORSCredentials   = "cors-credentials"
	flagCORSMaxAge        = "cors-max-age"
)

// DaemonCmd should be used to represent the 'daemon' command.
type DaemonCmd struct {
	*cmd.BaseCmd

	serviceLoader cmd.ServiceLoader

	addr            string
	shutdownTimeout time.Duration
	watchDebounce   time.Duration

	corsEnable        bool
	corsOrigins       []string
	corsMethods       []string
	corsHeaders       []string
	corsExposeHeaders []string
	corsCredentials   bool
	corsMaxAge        time.Duration
}

// NewDaemonCmd creates a newly configured (Cobra) command.
func NewDaemonCmd(baseCmd *cmd.BaseCmd, opt ...cmdopts.CmdOption) (*cobra.Command, error) {
	opts, err := cmdopts.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &DaemonCmd{
		BaseCmd:       baseCmd,
		serviceLoader: opts.ServiceLoader,
	}

	cobraCommand := &cobra.Command{
		Use:   "daemon",
		Short: "Serve the config API for the desktop editor",
		Long: "Serve the config operations over a local HTTP API and stream change events when the config file " +
			"is edited elsewhere. Flags override values from the settings file.",
		Example: `  # Serve on the default loopback address
  clawconf daemon

  # Allow the editor's dev server to call the API
  clawconf daemon --cors-enable --cors-origins http://localhost:1420`,
		Args: cobra.NoArgs,
		RunE: c.run,
	}

	c.addFlags(cobraCommand.Flags())

	return cobraCommand, nil
}

// addFlags registers the daemon flags, bound to c's fields.
func (c *DaemonCmd) addFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.addr, flagAddr, settings.DefaultAddr, "Address for the daemon to bind")
	fs.DurationVar(&c.shutdownTimeout, flagShutdownTimeout, daemon.DefaultAPIShutdownTimeout(), "Time allowed for graceful shutdown")
	fs.DurationVar(&c.watchDebounce, flagWatchDebounce, watch.DefaultDebounce, "Time to wait for further edits before reporting a config change")
	fs.BoolVar(&c.corsEnable, flagCORSEnable, false, "Enable CORS for the API")
	fs.StringSliceVar(&c.corsOrigins, flagCORSOrigins, daemon.DefaultCORSAllowOrigins(), "Origins allowed to call the API")
	fs.StringSliceVar(&c.corsMethods, flagCORSMethods, daemon.DefaultCORSAllowMethods(), "HTTP methods allowed for CORS requests")
	fs.StringSliceVar(&c.corsHeaders, flagCORSHeaders, daemon.DefaultCORSAllowHeaders(), "Request headers allowed for CORS requests")
	fs.StringSliceVar(&c.corsExposeHeaders, flagCORSExposeHeaders, nil, "Response headers exposed to CORS clients")
	fs.BoolVar(&c.corsCredentials, flagCORSCredentials, false, "Allow credentials in CORS requests")
	fs.DurationVar(&c.corsMaxAge, flagCORSMaxAge, daemon.DefaultCORSMaxAge(), "How long browsers may cache preflight responses")
}

// run is configured (via NewDaemonCmd) to be called by the Cobra framework when the command is executed.
func (c *DaemonCmd) run(cobraCmd *cobra.Command, _ []string) error {
	logger := c.Logger()

	s, err := settings.Load(flags.SettingsFile)
	if err != nil {
		return err
	}

	c.applySettings(cobraCmd, s)

	svc, err := c.LoadService(c.serviceLoader)
	if err != nil {
		return err
	}

	watcher, err := watch.NewWatcher(logger, svc.Path(), watch.WithDebounce(c.watchDebounce))
	if err != nil {
		return fmt.Errorf("failed to create config watcher: %w", err)
	}

	deps, err := daemon.NewDependencies(logger, strings.TrimSpace(c.addr), svc, watcher)
	if err != nil {
		return err
	}

	d, err := daemon.NewDaemon(deps, daemon.WithAPIOptions(c.apiOptions()...))
	if err != nil {
		return fmt.Errorf("failed to create clawconf daemon instance: %w", err)
	}

	ctx, cancel := signal.NotifyContext(cobraCmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	_, _ = fmt.Fprintf(cobraCmd.OutOrStdout(),
		"clawconf daemon running\n\n"+
			"  Local API:\thttp://%s/api/v1\n"+
			"  OpenAPI UI:\thttp://%s/docs\n"+
			"  Config file:\t%s\n\n"+
			"Press Ctrl+C to stop.\n",
		c.addr, c.addr, svc.Path(),
	)

	return d.Run(ctx)
}

// applySettings copies values from the settings file into every flag the user did not set.
func (c *DaemonCmd) applySettings(cobraCmd *cobra.Command, s settings.Settings) {
	changed := cobraCmd.Flags().Changed

	if !changed(flagAddr) {
		c.addr = s.Addr()
	}

	d := s.Daemon
	if d == nil {
		return
	}

	if d.ShutdownTimeout != nil && !changed(flagShutdownTimeout) {
		c.shutdownTimeout = time.Duration(*d.ShutdownTimeout)
	}

	cors := d.CORS
	if cors == nil {
		return
	}

	if cors.Enable != nil && !changed(flagCORSEnable) {
		c.corsEnable = *cors.Enable
	}
	if len(cors.Origins) > 0 && !changed(flagCORSOrigins) {
		c.corsOrigins = cors.Origins
	}
	if len(cors.Methods) > 0 && !changed(flagCORSMethods) {
		c.corsMethods = cors.Methods
	}
	if len(cors.Headers) > 0 && !changed(flagCORSHeaders) {
		c.corsHeaders = cors.Headers
	}
	if len(cors.ExposeHeaders) > 0 && !changed(flagCORSExposeHeaders) {
		c.corsExposeHeaders = cors.ExposeHeaders
	}
	if cors.Credentials != nil && !changed(flagCORSCredentials) {
		c.corsCredentials = *cors.Credentials
	}
	if cors.MaxAge != nil && !changed(flagCORSMaxAge) {
		c.corsMaxAge = time.Duration(*cors.MaxAge)
	}
}

func (c *DaemonCmd) apiOptions() []daemon.APIOption {
	return []daemon.APIOption{
		daemon.WithShutdownTimeout(c.shutdownTimeout),
		daemon.WithCORSEnabled(c.corsEnable),
		daemon.WithCORSAllowOrigins(c.corsOrigins),
		daemon.WithCORSAllowMethods(c.corsMethods),
		daemon.WithCORSAllowHeaders(c.corsHeaders),
		daemon.WithCORSExposeHeaders(c.corsExposeHeaders),
		daemon.WithCORSAllowCredentials(c.corsCredentials),
		daemon.WithCORSMaxAge(c.corsMaxAge),
	}
}
