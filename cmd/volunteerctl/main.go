// Command volunteerctl is the operator CLI. It applies schema migrations,
// runs maintenance jobs and mints tokens and QR codes offline.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/heartmarshall/volunteer-backend/internal/config"
)

// cli holds state shared by all subcommands.
type cli struct {
	verbose    bool
	configPath string
	logger     *zap.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(&cli{}).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           "volunteerctl",
		Short:         "Operate the volunteer participation backend",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.initLogger()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "Config file (default: $CONFIG_PATH or ./config.yaml)")

	root.AddCommand(versionCmd())
	root.AddCommand(configCmd())
	root.AddCommand(migrateCmd(c))
	root.AddCommand(reconcileHoursCmd(c))
	root.AddCommand(purgeNotificationsCmd(c))
	root.AddCommand(setRoleCmd(c))
	root.AddCommand(issueTokenCmd(c))
	root.AddCommand(scanTokenCmd(c))

	return root
}

func (c *cli) initLogger() error {
	var (
		logger *zap.Logger
		err    error
	)
	if c.verbose {
		logger, err = zap.NewDevelopment()
	} else {
		cfg := zap.NewProductionConfig()
		cfg.Encoding = "console"
		logger, err = cfg.Build()
	}
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	c.logger = logger.Named("volunteerctl")
	return nil
}

// loadConfig loads the service configuration. Only commands that touch the
// database or signing keys call it.
func (c *cli) loadConfig() (*config.Config, error) {
	path := c.configPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	cfg, err := config.LoadFrom(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	c.logger.Debug("configuration loaded", zap.String("log_level", cfg.Log.Level))
	return cfg, nil
}
