package main

import (
	"github.com/setanarut/mobileassets"
	"github.com/spf13/cobra"
)

var splashCmd = &cobra.Command{
	Use:   "splash",
	Short: "Generate splash screens from the logo or from text",
	Long: `Generate Android drawable splash screens, the iOS Splash image set and a
1024x1024 copy under assets/. Logo splashes center splash.source
(assets/icon-only.png by default). In text mode no image is needed.`,
	Args: cobra.NoArgs,
	RunE: runSplash,
}

func init() {
	addRunFlags(splashCmd)
	splashCmd.Flags().String("mode", "", "Splash content: logo or text (default from config)")
	splashCmd.Flags().String("text", "", "Text for text mode (default from config)")
	rootCmd.AddCommand(splashCmd)
}

func runSplash(cmd *cobra.Command, args []string) error {
	return runTargets(cmd, mobileassets.SplashTargets, true)
}
