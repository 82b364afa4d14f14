package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/bnema/lgctl/internal/application"
	"github.com/spf13/cobra"
)

const brightnessTitle = "TV Brightness"

func newBrightnessCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "brightness",
		Short: "Read or set picture brightness",
	}

	cmd.AddCommand(
		newBrightnessGetCmd(app),
		newBrightnessSetCmd(app),
	)

	return cmd
}

func newBrightnessGetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Print the current brightness",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var value int
			err := app.run(cmd, brightnessTitle, "Reading brightness...", func(ctx context.Context, svc *application.Service) error {
				v, result := svc.Brightness(ctx)
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

func newBrightnessSetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <0-100>",
		Short: "Set the brightness",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parse brightness: %w", err)
			}
			if value < 0 || value > 100 {
				return fmt.Errorf("brightness must be between 0 and 100, got %d", value)
			}

			return app.run(cmd, brightnessTitle, "Setting brightness...", func(ctx context.Context, svc *application.Service) error {
				if result := svc.SetBrightness(ctx, value); !result.OK() {
					return errors.New(result.Err)
				}
				return nil
			})
		},
	}
}
