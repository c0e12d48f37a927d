package cmd

import (
	"fmt"
	"os"
	"strings"

	"fortio.org/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ironsheep/color-tools-mcp/internal/server"
	"github.com/ironsheep/color-tools-mcp/internal/swatch"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "color-tools-mcp",
	Short: "MCP server for color conversion and color-wheel tools",
	Long: `color-tools-mcp converts between hex, RGB and HSL, lightens and darkens
colors, and derives complementary, triadic and tetradic colors.

Run without a subcommand it serves the MCP protocol over stdin/stdout.
Configure it in your MCP client (e.g., Claude Desktop).`,
	SilenceUsage:      true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return initConfig() },
	RunE:              runServe,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	rootCmd.Version = Version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, verbose, info, warning, error)")
	rootCmd.PersistentFlags().Int("cell-size", swatch.DefaultCellSize, "Swatch cell size in pixels")
	rootCmd.PersistentFlags().Int("scale", 1, "Swatch upscale factor")

	mustBind := func(key, name string) {
		if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			panic(fmt.Sprintf("failed to bind flag: %v", err))
		}
	}
	mustBind("log-level", "log-level")
	mustBind("swatch.cell_size", "cell-size")
	mustBind("swatch.scale", "scale")
}

// initConfig loads the config file and environment, then applies the log level.
// A missing ./config.yaml is fine; a file named with --config must be readable.
func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("COLOR_MCP")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	configErr := viper.ReadInConfig()
	if configErr != nil && cfgFile != "" {
		return fmt.Errorf("failed to read config %s: %w", cfgFile, configErr)
	}

	initLogging()
	if configErr == nil {
		log.Infof("Using config file: %s", viper.ConfigFileUsed())
	}
	return nil
}

// initLogging applies the configured level. Logs go to stderr; stdout carries the protocol.
func initLogging() {
	log.SetOutput(os.Stderr)
	level := viper.GetString("log-level")
	if err := log.SetLogLevelStr(level); err != nil {
		log.Warnf("Unknown log level %q, keeping %s", level, log.GetLogLevel())
	}
}

// serverConfig builds the server settings from viper.
func serverConfig() server.Config {
	return server.Config{
		Version: Version,
		Swatch: swatch.Options{
			CellSize: viper.GetInt("swatch.cell_size"),
			Scale:    viper.GetInt("swatch.scale"),
		},
	}
}
