package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/setanarut/mobileassets"
	"github.com/setanarut/mobileassets/utils"
	"github.com/spf13/cobra"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [file]",
	Short: "Inspect a source image: size, transparency, palette and brightness",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

func init() {
	identifyCmd.Flags().Int("colors", 5, "Number of palette colors to extract")
	identifyCmd.Flags().String("method", "dominantcolor", "Palette method (dominantcolor, kmeans)")
	identifyCmd.Flags().String("palette-out", "", "Write the palette as a PNG swatch strip")
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	path := args[0]
	k, _ := cmd.Flags().GetInt("colors")
	methodStr, _ := cmd.Flags().GetString("method")
	paletteOut, _ := cmd.Flags().GetString("palette-out")

	method, err := utils.ParsePaletteMethod(methodStr)
	if err != nil {
		return err
	}

	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	img, err := utils.ReadImage(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	b := img.Bounds()
	mean, std := utils.LuminanceStats(img)

	fmt.Fprintf(out, "File:        %s\n", path)
	fmt.Fprintf(out, "Dimensions:  %d x %d\n", b.Dx(), b.Dy())
	fmt.Fprintf(out, "Mode:        %s\n", utils.Mode(img))
	fmt.Fprintf(out, "File size:   %d bytes (%.1f KB)\n", st.Size(), float64(st.Size())/1024)
	fmt.Fprintf(out, "Luminance:   mean %.3f, stddev %.3f\n", mean, std)

	palette := utils.ExtractPalette(img, k, method)
	if len(palette) == 0 {
		fmt.Fprintln(out, "Palette:     none (image is fully transparent)")
		return nil
	}
	fmt.Fprintf(out, "Palette (%s):\n", method)
	for _, s := range palette {
		fmt.Fprintf(out, "  %s  %5.1f%%\n", s.Color.Hex(), s.Weight*100)
	}

	backgrounds := []struct {
		label string
		bg    color.NRGBA
	}{
		{"brand", mobileassets.BrandTeal},
		{"dominant", utils.ToNRGBA(palette[0].Color)},
	}
	for _, t := range backgrounds {
		fg := utils.ContrastingTextColor(t.bg)
		fmt.Fprintf(out, "Text on %s %s: %s (contrast %.1f:1)\n",
			t.label, utils.HexString(t.bg), utils.HexString(fg), utils.ContrastRatio(fg, t.bg))
	}

	if paletteOut != "" {
		sorted := append([]utils.Swatch(nil), palette...)
		utils.SortPaletteByBrightness(sorted)
		if err := utils.SavePalette(sorted, 64, paletteOut); err != nil {
			return fmt.Errorf("writing palette: %w", err)
		}
		fmt.Fprintf(out, "Palette swatch: %s\n", paletteOut)
	}
	return nil
}
