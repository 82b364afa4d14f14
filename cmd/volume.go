package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/bnema/lgctl/internal/application"
	"github.com/bnema/lgctl/internal/domain"
	"github.com/spf13/cobra"
)

const volumeTitle = "TV Volume"

func newVolumeCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "volume",
		Short: "Read or change the volume",
	}

	cmd.AddCommand(
		newVolumeGetCmd(app),
		newVolumeSetCmd(app),
		newVolumeStepCmd(app, "up", "Raise the volume one step", (*application.Service).VolumeUp),
		newVolumeStepCmd(app, "down", "Lower the volume one step", (*application.Service).VolumeDown),
	)

	return cmd
}

func newVolumeGetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Print the current volume",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var value int
			err := app.run(cmd, volumeTitle, "Reading volume...", func(ctx context.Context, svc *application.Service) error {
				v, result := svc.Volume(ctx)
				if !result.OK() {
					return errors.New(result.Err)
				}
				value = v
				return nil
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
			return err
		},
	}
}

func newVolumeSetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <0-100>",
		Short: "Set the volume",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parse volume: %w", err)
			}
			if level < 0 || level > 100 {
				return fmt.Errorf("volume must be between 0 and 100, got %d", level)
			}

			return app.run(cmd, volumeTitle, "Setting volume...", func(ctx context.Context, svc *application.Service) error {
				if result := svc.SetVolume(ctx, level); !result.OK() {
					return errors.New(result.Err)
				}
				return nil
			})
		},
	}
}

func newVolumeStepCmd(app *app, direction, short string, step func(*application.Service, context.Context) domain.CommandResult) *cobra.Command {
	return &cobra.Command{
		Use:   direction,
		Short: short,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.run(cmd, volumeTitle, "Changing volume...", func(ctx context.Context, svc *application.Service) error {
				if result := step(svc, ctx); !result.OK() {
					return errors.New(result.Err)
				}
				return nil
			})
		},
	}
}
