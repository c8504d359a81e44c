package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/xob0t/GoChalk/clients/server"
	"github.com/xob0t/GoChalk/pkg/chalkboard"
)

func newServeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the live preview web UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := resolveSettings(v)
			if err != nil {
				return err
			}
			return server.RunServe(server.Options{
				Port:        v.GetString("port"),
				Defaults:    settings.Clamp(chalkboard.DefaultLimits),
				Limits:      chalkboard.DefaultLimits,
				MaxSize:     max(settings.ExportSize, settings.PreviewSize, server.DefaultMaxSize),
				OpenBrowser: !v.GetBool("no-browser"),
			})
		},
	}

	cmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	cmd.Flags().Bool("no-browser", false, "Do not open a browser window")
	bindFlags(v, cmd.Flags())
	return cmd
}
