package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/comlang/comlang/internal/config"
	"github.com/comlang/comlang/internal/language"
	"github.com/comlang/comlang/internal/report"
	"github.com/comlang/comlang/internal/scan"
	"github.com/comlang/comlang/internal/search"
)

var (
	scanLang    string
	scanJSON    bool
	scanUnknown bool
)

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().StringVar(&scanLang, "lang", "", "Language code to report (default from config)")
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "Output the full report as JSON")
	scanCmd.Flags().BoolVar(&scanUnknown, "show-unknown", false, "Also list comments whose language could not be determined")
}

var scanCmd = &cobra.Command{
	Use:   "scan [directory]",
	Short: "Scan a directory for comments in a target language",
	Long: `Scans a directory tree for source comments, classifies the natural
language of each one, and prints the comments in the target language
together with a per-file summary.

Examples:
  comlang scan                Scan the current directory
  comlang scan src/           Scan a subdirectory
  comlang scan --lang fr      Report French comments
  comlang scan --json         Full report for scripting`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}
		return runScan(dir)
	},
}

func runScan(dir string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	target := strings.ToLower(cfg.Report.Language)
	if scanLang != "" {
		target = strings.ToLower(scanLang)
		if !cfg.HasLanguage(target) {
			return fmt.Errorf("language %q is not in detect.languages (have: %s)",
				target, strings.Join(cfg.Detect.Languages, ", "))
		}
	}

	tool, ok := search.Get(cfg.Search.Tool)
	if !ok {
		return fmt.Errorf("unknown search tool %q (have: %s)",
			cfg.Search.Tool, strings.Join(search.Names(), ", "))
	}
	if !tool.Available() {
		return fmt.Errorf("%s is not installed: install it or change search.tool in %s",
			tool.DisplayName(), config.ConfigFile)
	}

	detector, err := language.NewDetector(cfg.Detect.Languages)
	if err != nil {
		return err
	}

	scanner := scan.New(cfg, tool, detector)

	ctx := context.Background()
	if cfg.Search.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(cfg.Search.Timeout)*time.Second)
		defer cancel()
	}

	rep, err := scanner.Scan(ctx, dir)
	if err != nil {
		return err
	}

	if scanJSON {
		data, err := rep.JSON()
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Println(report.FormatComments(rep, target))
	if scanUnknown {
		fmt.Println(report.FormatComments(rep, language.Unknown))
	}
	fmt.Print(report.FormatSummary(rep, target))

	return nil
}
