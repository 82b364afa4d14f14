package cmd

import (
	"context"
	"errors"

	"github.com/bnema/lgctl/internal/application"
	"github.com/spf13/cobra"
)

func newPowerCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "power",
		Short: "Power control",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "off",
		Short: "Turn the TV off",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.run(cmd, "TV Power", "Turning off TV...", func(ctx context.Context, svc *application.Service) error {
				if result := svc.PowerOff(ctx); !result.OK() {
					return errors.New(result.Err)
				}
				return nil
			})
		},
	})

	return cmd
}
