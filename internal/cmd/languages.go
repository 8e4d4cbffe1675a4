package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/comlang/comlang/internal/language"
)

var languagesJSON bool

func init() {
	rootCmd.AddCommand(languagesCmd)
	languagesCmd.Flags().BoolVar(&languagesJSON, "json", false, "Output language information as JSON")
}

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List configured and supported detection languages",
	Long: `Shows the candidate languages comments are classified against, and
every code that can be put in detect.languages.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLanguages()
	},
}

func runLanguages() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	detector, err := language.NewDetector(cfg.Detect.Languages)
	if err != nil {
		return err
	}

	if languagesJSON {
		return json.NewEncoder(os.Stdout).Encode(map[string][]string{
			"configured": detector.Codes(),
			"supported":  language.SupportedCodes(),
		})
	}

	fmt.Println("Configured detection languages:")
	for _, code := range detector.Codes() {
		fmt.Printf("  %s (%s)\n", language.NameFor(code), code)
	}
	fmt.Println()
	fmt.Printf("Supported codes: %s\n", strings.Join(language.SupportedCodes(), ", "))

	return nil
}
