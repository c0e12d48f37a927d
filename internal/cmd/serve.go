package cmd

import (
	"fortio.org/log"
	"github.com/spf13/cobra"

	"github.com/ironsheep/color-tools-mcp/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the MCP protocol over stdin/stdout (default)",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	log.Infof("Color MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)

	srv := server.New(serverConfig())
	return srv.Serve(cmd.InOrStdin(), cmd.OutOrStdout())
}
