package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xob0t/GoChalk/pkg/preset"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets [name]",
		Short: "List built-in presets or show one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				p, _, err := preset.Load(args[0])
				if err != nil {
					return err
				}
				fmt.Fprint(out, preset.Format(p))
				return nil
			}
			for _, name := range preset.Names() {
				p, _ := preset.Lookup(name)
				fmt.Fprintf(out, "%-12s %s\n", name, p.Meta.Description)
			}
			return nil
		},
	}
}
