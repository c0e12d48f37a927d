package cmd

import (
	"fmt"

	"fortio.org/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ironsheep/color-tools-mcp/internal/colorconv"
	"github.com/ironsheep/color-tools-mcp/internal/swatch"
)

var swatchCmd = &cobra.Command{
	Use:   "swatch <hex>...",
	Short: "Write a PNG swatch of the given colors",
	Long: `Write a PNG strip with one labelled cell per color.

With --scheme a single color is expanded into itself, its complement,
its two triadic colors and its three tetradic colors.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSwatch,
}

func init() {
	rootCmd.AddCommand(swatchCmd)

	swatchCmd.Flags().StringP("out", "o", "swatch.png", "Output PNG path")
	swatchCmd.Flags().Bool("scheme", false, "Expand the first color into its full scheme")
	swatchCmd.Flags().Bool("no-labels", false, "Do not draw hex labels")

	for _, b := range []struct{ key, flag string }{
		{"swatch.out", "out"},
		{"swatch.scheme", "scheme"},
		{"swatch.no_labels", "no-labels"},
	} {
		if err := viper.BindPFlag(b.key, swatchCmd.Flags().Lookup(b.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", b.flag, err))
		}
	}
}

func parseColors(args []string) ([]colorconv.RGB, error) {
	colors := make([]colorconv.RGB, 0, len(args))
	for _, a := range args {
		c, err := colorconv.HexToRGB(a)
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	return colors, nil
}

func runSwatch(cmd *cobra.Command, args []string) error {
	colors, err := parseColors(args)
	if err != nil {
		return err
	}
	if viper.GetBool("swatch.scheme") {
		if len(colors) > 1 {
			log.Warnf("--scheme uses only the first color, ignoring %d more", len(colors)-1)
		}
		colors = colorconv.Scheme(colors[0]).Colors()
	}

	opts := serverConfig().Swatch
	opts.NoLabels = viper.GetBool("swatch.no_labels")

	out := viper.GetString("swatch.out")
	if err := swatch.Save(out, colors, opts); err != nil {
		return err
	}
	log.S(log.Info, "Wrote swatch", log.Str("path", out), log.Any("colors", len(colors)))
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
