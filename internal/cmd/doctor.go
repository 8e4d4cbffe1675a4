package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/comlang/comlang/internal/language"
	"github.com/comlang/comlang/internal/search"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check scanner health and diagnose issues",
	Long:  `Verifies your configuration and search tools and reports any issues.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDoctor()
	},
}

func runDoctor() error {
	fmt.Println("Comlang Doctor")
	fmt.Println("==============")
	fmt.Println()

	allGood := true

	// Check 1: configuration loads and validates
	cfg, err := loadConfig()
	if err == nil {
		printCheck(true, "configuration is valid")
	} else {
		printCheck(false, "configuration is valid")
		fmt.Printf("     %v\n", err)
		allGood = false
	}

	// Check 2: search tools
	fmt.Println()
	fmt.Println("Search tools:")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for _, name := range search.Names() {
		tool, _ := search.Get(name)
		if tool.Available() {
			ver, err := tool.Version(ctx)
			if err != nil {
				ver = "version unknown"
			}
			printCheck(true, fmt.Sprintf("%s (%s)", tool.DisplayName(), ver))
			continue
		}
		if cfg != nil && name == cfg.Search.Tool {
			printCheck(false, fmt.Sprintf("%s not found (configured as search.tool)", tool.DisplayName()))
			allGood = false
		} else {
			printOptional(fmt.Sprintf("%s not found (optional fallback)", tool.DisplayName()))
		}
	}

	// Check 3: language detector builds from the configured codes
	if cfg != nil {
		fmt.Println()
		fmt.Println("Language detection:")
		detector, err := language.NewDetector(cfg.Detect.Languages)
		if err != nil {
			printCheck(false, "detector builds from detect.languages")
			fmt.Printf("     %v\n", err)
			allGood = false
		} else {
			codes := detector.Codes()
			printCheck(true, fmt.Sprintf("%d candidate language(s)", len(codes)))
			for _, code := range codes {
				fmt.Printf("       - %s (%s)\n", language.NameFor(code), code)
			}
		}
	}

	// Summary
	fmt.Println()
	if allGood {
		fmt.Println("Everything looks good.")
		fmt.Println()
		fmt.Println("Next steps:")
		fmt.Println("  comlang scan           Scan the current directory")
		fmt.Println("  comlang scan --json    Full report for scripting")
		return nil
	}

	return fmt.Errorf("some issues found, see above for details")
}

func printCheck(ok bool, msg string) {
	if ok {
		fmt.Printf("  [ok] %s\n", msg)
	} else {
		fmt.Printf("  [!!] %s\n", msg)
	}
}

func printOptional(msg string) {
	fmt.Printf("  [--] %s\n", msg)
}
