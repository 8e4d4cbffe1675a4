package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/comlang/comlang/internal/config"
	"github.com/comlang/comlang/internal/fs"
)

var initForce bool

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default " + config.ConfigFile + " to the current directory",
	Long: `Creates a ` + config.ConfigFile + ` file with the default configuration,
ready to edit.

Examples:
  comlang init            Write the default config
  comlang init --force    Replace an existing config`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(initForce)
	},
}

func initConfig(force bool) error {
	if fs.FileExists(config.ConfigFile) && !force {
		if !isInteractive() || !confirm(config.ConfigFile+" already exists. Overwrite?") {
			return fmt.Errorf("%s already exists (use --force to overwrite)", config.ConfigFile)
		}
	}

	if err := config.Default().Save(config.ConfigFile); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", config.ConfigFile)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  comlang doctor    Check that a search tool is installed")
	fmt.Println("  comlang scan      Scan the current directory")

	return nil
}

// isInteractive returns true if stdin is a terminal (not piped).
func isInteractive() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// confirm asks the user for confirmation with a y/n prompt.
// EOF counts as a no, not a default yes.
func confirm(prompt string) bool {
	fmt.Print(prompt + " [Y/n] ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "" || response == "y" || response == "yes"
}
