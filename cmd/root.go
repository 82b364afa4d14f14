package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "lgctl",
		Short:         "Control an LG webOS TV from the command line",
		Long:          "lgctl sends single-shot commands to an LG webOS TV over its encrypted WebSocket service, retrying the transient handshake errors the TV produces after idle periods.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newBrightnessCmd(app),
		newPictureModeCmd(app),
		newVolumeCmd(app),
		newPowerCmd(app),
		newRequestCmd(app),
		newStatusCmd(app),
	)

	return rootCmd
}
