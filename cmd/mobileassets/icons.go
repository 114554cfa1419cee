package main

import (
	"github.com/setanarut/mobileassets"
	"github.com/spf13/cobra"
)

var iconsCmd = &cobra.Command{
	Use:   "icons",
	Short: "Generate Android mipmap icons and the iOS AppIcon set",
	Args:  cobra.NoArgs,
	RunE:  runIcons,
}

func init() {
	addRunFlags(iconsCmd)
	rootCmd.AddCommand(iconsCmd)
}

func runIcons(cmd *cobra.Command, args []string) error {
	return runTargets(cmd, mobileassets.IconTargets, false)
}
