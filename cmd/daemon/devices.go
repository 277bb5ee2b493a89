package main

import (
	"context"
	"fmt"
	"io"

	"github.com/genricoloni/btremote/internal/domain"
	"github.com/genricoloni/btremote/internal/link"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newDevicesCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "devices",
		Short: "List known devices and mark the one the daemon would connect to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := loadViper(cmd, *configFile)
			if err != nil {
				return err
			}

			app := fx.New(
				baseOptions(v),
				fx.NopLogger,
				platformModule,
				fx.Invoke(func(dir domain.DeviceDirectory, cfg domain.Config) error {
					return printDevices(cmd.Context(), cmd.OutOrStdout(), dir, cfg.GetDeviceName())
				}),
			)
			if err := app.Err(); err != nil {
				return err
			}

			// Start and stop only to release the bus connections
			if err := app.Start(cmd.Context()); err != nil {
				return err
			}
			return app.Stop(context.Background())
		},
	}
}

// printDevices writes one line per device, the resolved target marked with '*'
func printDevices(ctx context.Context, w io.Writer, dir domain.DeviceDirectory, fragment string) error {
	devices, err := dir.ListKnownDevices(ctx)
	if err != nil {
		return err
	}

	target := link.TargetIndex(fragment, devices)

	for i, d := range devices {
		marker := " "
		if i == target {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %-24s %s\n", marker, d.Name, d.Address)
	}

	if target < 0 {
		fmt.Fprintf(w, "no device matches %q\n", fragment)
	}
	return nil
}
