package cmd

import (
	"github.com/spf13/cobra"

	"github.com/comlang/comlang/internal/mcp"
)

func init() {
	rootCmd.AddCommand(mcpCmd)
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server for AI assistants",
	Long: `Starts a local MCP server that AI assistants can connect to.

Configure in ~/Library/Application Support/Claude/claude_desktop_config.json:

{
  "mcpServers": {
    "comlang": {
      "command": "comlang",
      "args": ["mcp"]
    }
  }
}

The server exposes the scanner via the MCP protocol:
- Tools: scan_comments, list_languages
- Prompts: /translate-comments to draft translations of detected comments`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		server, err := mcp.NewServer(cfg)
		if err != nil {
			return err
		}
		return server.ServeStdio()
	},
}
