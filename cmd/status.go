package cmd

import (
	"context"
	"errors"
	"fmt"

	statusadapter "github.com/bnema/lgctl/internal/adapters/render/status"
	"github.com/bnema/lgctl/internal/application"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the TV's current settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tv, err := application.LoadTV(cmd.Context(), app.provider, app.notifier, "LG TV")
			if err != nil {
				return err
			}

			svc := app.serviceFor(tv, "LG TV")

			var info application.TVStatus
			err = app.spin(cmd, "Fetching TV status...", func(ctx context.Context) error {
				status, result := svc.Status(ctx)
				if !result.OK() {
					return errors.New(result.Err)
				}
				info = status
				return nil
			})
			if err != nil {
				return err
			}

			view := statusadapter.Render(statusadapter.Info{
				Name:    tv.Name,
				Address: tv.IP,
				Rows: []statusadapter.Row{
					{Label: "Brightness", Value: formatSetting(info.Brightness)},
					{Label: "Picture mode", Value: formatSetting(info.PictureMode)},
					{Label: "Volume", Value: formatSetting(info.Volume)},
				},
			})

			_, err = fmt.Fprint(cmd.OutOrStdout(), view)
			return err
		},
	}
}

func formatSetting(value any) string {
	if value == nil {
		return ""
	}
	if f, ok := value.(float64); ok && f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprint(value)
}
