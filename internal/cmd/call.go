package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ironsheep/color-tools-mcp/internal/server"
)

var callCmd = &cobra.Command{
	Use:   "call <tool> [json-arguments]",
	Short: "Run a single tool and print its JSON result",
	Long: `Run one MCP tool without starting the protocol loop.

Examples:
  color-tools-mcp call color_lighten '{"hex":"#ff0000","percent":20}'
  color-tools-mcp call color_scheme '{"rgb":{"r":12,"g":140,"b":200}}'
  color-tools-mcp call --list`,
	Args: func(cmd *cobra.Command, args []string) error {
		if viper.GetBool("call.list") {
			return nil
		}
		return cobra.RangeArgs(1, 2)(cmd, args)
	},
	RunE: runCall,
}

func init() {
	rootCmd.AddCommand(callCmd)

	callCmd.Flags().Bool("list", false, "List available tools instead of calling one")
	if err := viper.BindPFlag("call.list", callCmd.Flags().Lookup("list")); err != nil {
		panic(fmt.Sprintf("failed to bind flag: %v", err))
	}
}

func runCall(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if viper.GetBool("call.list") {
		for _, t := range server.GetToolDefinitions() {
			fmt.Fprintf(out, "%-24s %s\n", t.Name, t.Description)
		}
		return nil
	}

	var raw json.RawMessage
	if len(args) == 2 {
		raw = json.RawMessage(args[1])
		if !json.Valid(raw) {
			return fmt.Errorf("arguments are not valid JSON: %s", args[1])
		}
	}

	result, err := server.New(serverConfig()).ExecuteTool(args[0], raw)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
