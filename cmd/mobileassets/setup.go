package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/setanarut/mobileassets"
	"github.com/setanarut/mobileassets/config"
	"github.com/setanarut/mobileassets/utils"
	"github.com/spf13/cobra"
)

// loadConfig reads --config, or <root>/mobileassets.yaml when it exists.
// --source overrides both the icon source and the splash logo.
func loadConfig(cmd *cobra.Command) (*config.Config, string, error) {
	root, _ := cmd.Flags().GetString("root")
	cfgPath, _ := cmd.Flags().GetString("config")
	source, _ := cmd.Flags().GetString("source")

	var cfg *config.Config
	var err error
	if cfgPath != "" {
		cfg, err = config.Load(cfgPath)
	} else {
		cfg, err = config.LoadOptional(filepath.Join(root, config.FileName))
	}
	if err != nil {
		return nil, "", err
	}
	if source != "" {
		cfg.Source = source
		cfg.Splash.Source = source
	}
	return cfg, root, nil
}

func newLogger(cmd *cobra.Command) *log.Logger {
	quiet, _ := cmd.Flags().GetBool("quiet")
	if quiet {
		return log.New(io.Discard, "", 0)
	}
	return log.New(cmd.OutOrStdout(), "", 0)
}

func newGenerator(cmd *cobra.Command) (*mobileassets.Generator, error) {
	cfg, root, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	g, err := generatorFromConfig(cfg, root)
	if err != nil {
		return nil, err
	}
	g.Logger = newLogger(cmd)
	return g, nil
}

// generatorFromConfig maps a validated config onto a Generator rooted at root.
func generatorFromConfig(cfg *config.Config, root string) (*mobileassets.Generator, error) {
	g := mobileassets.NewGenerator(root)
	g.Source = cfg.Source
	g.SplashSource = cfg.Splash.Source

	opt := mobileassets.DefaultOptions()
	if cfg.AutoBackground() {
		opt.AutoBackground = true
	} else {
		bg, err := utils.ParseHexColor(cfg.Background)
		if err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
		opt.Background = bg
	}
	if cfg.LogoFraction > 0 {
		opt.LogoFraction = cfg.LogoFraction
	}
	opt.Upscale = cfg.Upscale

	level, err := cfg.CompressionLevel()
	if err != nil {
		return nil, err
	}
	opt.Compression = level

	method, err := utils.ParsePaletteMethod(cfg.PaletteMethod)
	if err != nil {
		return nil, err
	}
	opt.PaletteMethod = method
	g.Options = opt

	mode, err := mobileassets.ParseSplashMode(cfg.Splash.Mode)
	if err != nil {
		return nil, err
	}
	g.Mode = mode

	g.Text.Text = cfg.Splash.Text
	g.Text.Color = nil
	if cfg.Splash.TextColor != "" {
		fg, err := utils.ParseHexColor(cfg.Splash.TextColor)
		if err != nil {
			return nil, fmt.Errorf("splash.text_color: %w", err)
		}
		g.Text.Color = fg
	}
	if cfg.Splash.Font != "" {
		fontPath := cfg.Splash.Font
		if !filepath.IsAbs(fontPath) {
			fontPath = filepath.Join(root, fontPath)
		}
		data, err := os.ReadFile(fontPath)
		if err != nil {
			return nil, fmt.Errorf("reading font: %w", err)
		}
		g.Text.Font = data
	}
	return g, nil
}

// runTargets is shared by generate, icons and splash. Only splash renders
// logo splashes from the splash logo; the others use the icon source for
// every target.
func runTargets(cmd *cobra.Command, targets []mobileassets.Target, splashLogo bool) error {
	platform, _ := cmd.Flags().GetString("platform")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	targets, err := mobileassets.FilterPlatform(targets, platform)
	if err != nil {
		return err
	}
	g, err := newGenerator(cmd)
	if err != nil {
		return err
	}
	g.DryRun = dryRun
	if !splashLogo {
		g.SplashSource = ""
	}
	if mode, _ := cmd.Flags().GetString("mode"); mode != "" {
		if g.Mode, err = mobileassets.ParseSplashMode(mode); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("text") {
		g.Text.Text, _ = cmd.Flags().GetString("text")
	}

	report, err := g.Run(targets...)
	if errors.Is(err, mobileassets.ErrMissingInput) {
		return fmt.Errorf("%w (nothing was generated)", err)
	}
	if err != nil {
		return err
	}

	lg := g.Logger
	verb := "Generated"
	if dryRun {
		verb = "Would generate"
	}
	lg.Printf("\n%s %d images and %d manifests.", verb, len(report.Files), len(report.Manifests))
	return nil
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().String("platform", "all", "Restrict output to android, ios or all")
	cmd.Flags().Bool("dry-run", false, "Print what would be written without writing")
}
