package cmd

import (
	"context"
	"errors"

	"github.com/bnema/lgctl/internal/application"
	"github.com/spf13/cobra"
)

const pictureModeTitle = "TV Picture Mode"

func newPictureModeCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "picture-mode",
		Short: "Manage the picture mode",
	}

	cmd.AddCommand(newPictureModeSetCmd(app))

	return cmd
}

func newPictureModeSetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <mode>",
		Short: "Switch picture mode (e.g. cinema, game, vivid)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.run(cmd, pictureModeTitle, "Switching picture mode...", func(ctx context.Context, svc *application.Service) error {
				if result := svc.SetPictureMode(ctx, args[0]); !result.OK() {
					return errors.New(result.Err)
				}
				return nil
			})
		},
	}
}
