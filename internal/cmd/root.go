package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/comlang/comlang/internal/config"
)

var (
	version = "dev"
	commit  = "none"
)

var rootCmd = &cobra.Command{
	Use:   "comlang",
	Short: "Find source comments that need translation",
	Long: `comlang scans a source tree for comments, detects the natural language
each one is written in, and reports the ones in a language you care about
together with a per-file translation summary.

Quick start:
  comlang scan            Scan the current directory for Spanish comments
  comlang scan --lang fr  Report French comments instead
  comlang doctor          Check that a search tool is installed`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

var cfgFile string
var versionJSON bool

func init() {
	rootCmd.Version = fmt.Sprintf("%s (%s)", version, commit)
	rootCmd.SetVersionTemplate("comlang {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ./"+config.ConfigFile+")")
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Output version information as JSON")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		if versionJSON {
			_ = json.NewEncoder(os.Stdout).Encode(map[string]string{
				"version": version,
				"commit":  commit,
			})
			return
		}
		fmt.Printf("comlang %s (%s)\n", version, commit)
	},
}

// loadConfig loads and validates the configuration, honoring --config.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
