package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xob0t/GoChalk/pkg/preset"
)

func newInitCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a sample preset file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.WriteFile(out, []byte(preset.GetExampleJSON()), 0644); err != nil {
				return fmt.Errorf("write preset: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", out)
			fmt.Fprintf(cmd.OutOrStdout(), "Run: gochalk -o board.png --preset %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "preset-out", "preset.json", "Output path for the sample preset")
	return cmd
}
