package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/genricoloni/btremote/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/fx"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. The root command runs the daemon.
func newRootCmd() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:   "btremote",
		Short: "Bridge an HC-06 Bluetooth remote to media playback",
		Long: `btremote keeps a connection to a paired HC-06 remote, decodes the
commands it sends and applies them to the active MPRIS player and the
system volume. Lost connections are retried until the daemon is stopped.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := loadViper(cmd, configFile)
			if err != nil {
				return err
			}
			return runDaemon(cmd.Context(), v)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default: $XDG_CONFIG_HOME/btremote/config.yaml)")
	flags.String("transport", "", "link transport: rfcomm or serial")
	flags.String("device", "", "device name fragment to connect to")
	flags.String("log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(newDevicesCmd(&configFile), newParseCmd())
	return root
}

// loadViper reads configuration and lets explicitly set flags override it
func loadViper(cmd *cobra.Command, configFile string) (*viper.Viper, error) {
	v, err := config.NewViper(configFile)
	if err != nil {
		return nil, err
	}

	bindings := map[string]string{
		"transport":   "transport",
		"device_name": "device",
		"log_level":   "log-level",
	}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return nil, fmt.Errorf("failed to bind flag %s: %w", flag, err)
		}
	}
	return v, nil
}

// runDaemon starts the app and blocks until SIGINT or SIGTERM
func runDaemon(ctx context.Context, v *viper.Viper) error {
	app := fx.New(appOptions(v))

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	startCtx, cancelStart := context.WithTimeout(ctx, fx.DefaultTimeout)
	defer cancelStart()

	if err := app.Start(startCtx); err != nil {
		return err
	}

	<-ctx.Done()

	stopCtx, cancelStop := context.WithTimeout(context.Background(), fx.DefaultTimeout)
	defer cancelStop()

	return app.Stop(stopCtx)
}
