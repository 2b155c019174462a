// Package commands implements the mountinfo command line.
package commands

import (
	"fmt"

	configcmd "github.com/marmos91/mountinfo/cmd/mountinfo/commands/config"
	"github.com/marmos91/mountinfo/internal/cli/output"
	"github.com/marmos91/mountinfo/internal/logger"
	"github.com/marmos91/mountinfo/pkg/config"
	"github.com/marmos91/mountinfo/pkg/metrics"
	prommetrics "github.com/marmos91/mountinfo/pkg/metrics/prometheus"
	"github.com/marmos91/mountinfo/pkg/mounts"
	"github.com/marmos91/mountinfo/pkg/query"
	"github.com/spf13/cobra"
)

var (
	// Version information injected at build time.
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// newSource returns the mount source for a run. A non-empty table path
// forces the table-file source on every platform.
var newSource = func(tablePath string) mounts.Source {
	if tablePath != "" {
		return mounts.NewTableSource(tablePath)
	}
	return mounts.Default()
}

// rootOptions holds the parsed root flags of one invocation.
type rootOptions struct {
	cfgFile string
	filter  query.Filter

	quiet       bool
	verbose     bool
	noColor     bool
	showVersion bool
	format      string
	mountTable  string
	metricsFile string
}

// NewRootCmd builds the mountinfo command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "mountinfo [flags] [mount-point...]",
		Short: "List mounted filesystems",
		Long: `mountinfo prints one field of every mounted filesystem that passes the
given filters, one value per line, without duplicates, in descending order.

Mount filters test the device (-n/-N), filesystem type (-f/-F) and options
(-o/-O) of each mount. Positional arguments restrict the query to those
exact mount points. The reported field is the mount point unless -t (device),
-s (filesystem type) or -i (options) is given. The point filters (-p/-P)
then test the reported values themselves.

The exit status is 0 when at least one value is reported and 1 otherwise,
also in quiet mode, so scripts can ask whether a matching mount exists:

  mountinfo -q /home && echo "home is mounted"`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.SortFlags = false

	flags.VarP(newPatternValue(&opts.filter.FSTypeInclude), "fstype-regex", "f", "report mounts whose filesystem type matches")
	flags.VarP(newPatternValue(&opts.filter.FSTypeExclude), "skip-fstype-regex", "F", "skip mounts whose filesystem type matches")
	flags.VarP(newPatternValue(&opts.filter.NodeInclude), "node-regex", "n", "report mounts whose device matches")
	flags.VarP(newPatternValue(&opts.filter.NodeExclude), "skip-node-regex", "N", "skip mounts whose device matches")
	flags.VarP(newPatternValue(&opts.filter.OptionsInclude), "options-regex", "o", "report mounts whose options match")
	flags.VarP(newPatternValue(&opts.filter.OptionsExclude), "skip-options-regex", "O", "skip mounts whose options match")
	flags.VarP(newPatternValue(&opts.filter.PointInclude), "point-regex", "p", "report values that match")
	flags.VarP(newPatternValue(&opts.filter.PointExclude), "skip-point-regex", "P", "skip values that match")

	addSelectFlag(flags, newSelectValue(&opts.filter.Select, query.FieldOptions), "options", "i", "report options instead of mount points")
	addSelectFlag(flags, newSelectValue(&opts.filter.Select, query.FieldFSType), "fstype", "s", "report filesystem types instead of mount points")
	addSelectFlag(flags, newSelectValue(&opts.filter.Select, query.FieldSource), "node", "t", "report devices instead of mount points")

	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "print nothing, only set the exit status (RC_QUIET=yes)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug diagnostics to stderr (RC_VERBOSE=yes)")
	flags.BoolVarP(&opts.noColor, "nocolor", "C", false, "disable colored diagnostics (RC_NOCOLOR=yes)")
	flags.BoolVarP(&opts.showVersion, "version", "V", false, "print the version and exit")
	flags.StringVar(&opts.format, "format", "", "output format (text|table|json|yaml)")
	flags.StringVar(&opts.mountTable, "mount-table", "", "read this mount-table file instead of the system source")
	flags.StringVar(&opts.metricsFile, "metrics-file", "", "write query metrics in Prometheus text format to this file")

	cmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/mountinfo/config.yaml)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newCompletionCmd())
	cmd.AddCommand(configcmd.NewCmd())

	// Hide the default completion command (we provide our own)
	cmd.CompletionOptions.DisableDefaultCmd = true

	return cmd
}

// Execute runs the mountinfo command. This is called by main.main().
func Execute() error {
	return NewRootCmd().Execute()
}

func (o *rootOptions) run(cmd *cobra.Command, args []string) error {
	if o.showVersion {
		printVersion(cmd.OutOrStdout(), false)
		return nil
	}

	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return err
	}
	o.applyFlags(cmd, cfg)

	if o.filter.Select, err = query.ParseField(cfg.Select); err != nil {
		return err
	}

	if err := logger.Init(cfg.LoggerConfig()); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Close() }()

	for _, arg := range args {
		if err := o.filter.AddTarget(arg); err != nil {
			return err
		}
	}
	o.filter.Quiet = bool(cfg.Quiet)

	format, err := output.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	var obs query.Observer
	if cfg.MetricsFile != "" {
		metrics.InitRegistry()
		defer metrics.Disable()
		obs = prommetrics.NewQueryMetrics()
	}

	printer := output.NewPrinter(cmd.OutOrStdout(), format)
	out := output.NewValueWriter(printer, o.filter.Select.Header())

	logger.Debug("query starting",
		logger.KeyField, o.filter.Select.String(),
		logger.KeyPath, cfg.MountTable)

	_, runErr := query.Run(newSource(cfg.MountTable), &o.filter, out, obs)

	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			logger.Warn("failed to write metrics file",
				logger.KeyPath, cfg.MetricsFile,
				logger.KeyError, err)
		}
	}

	return runErr
}

// applyFlags lays explicitly given flags over the loaded configuration.
func (o *rootOptions) applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("quiet") {
		cfg.Quiet = config.Switch(o.quiet)
	}
	if flags.Changed("verbose") {
		cfg.Verbose = config.Switch(o.verbose)
	}
	if flags.Changed("nocolor") {
		cfg.NoColor = config.Switch(o.noColor)
	}
	if flags.Changed("options") || flags.Changed("fstype") || flags.Changed("node") {
		cfg.Select = o.filter.Select.String()
	}
	if flags.Changed("format") {
		cfg.Format = o.format
	}
	if flags.Changed("mount-table") {
		cfg.MountTable = o.mountTable
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = o.metricsFile
	}
}
