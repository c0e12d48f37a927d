package main

import "github.com/ironsheep/color-tools-mcp/internal/cmd"

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	cmd.Version, cmd.BuildTime, cmd.GitCommit = Version, BuildTime, GitCommit
	cmd.Execute()
}
