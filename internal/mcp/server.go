// Package mcp exposes the comment scanner over the Model Context Protocol
// so AI assistants can scan projects and request translations directly.
package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/comlang/comlang/internal/config"
	"github.com/comlang/comlang/internal/language"
	"github.com/comlang/comlang/internal/prompt"
	"github.com/comlang/comlang/internal/report"
	"github.com/comlang/comlang/internal/scan"
	"github.com/comlang/comlang/internal/search"
)

// Server wraps the MCP server with scanner-specific functionality
type Server struct {
	mcp     *server.MCPServer
	cfg     *config.Config
	scanner *scan.Scanner
}

// NewServer creates a new MCP server from a validated configuration
func NewServer(cfg *config.Config) (*Server, error) {
	tool, ok := search.Get(cfg.Search.Tool)
	if !ok {
		return nil, fmt.Errorf("unknown search tool %q (have: %s)",
			cfg.Search.Tool, strings.Join(search.Names(), ", "))
	}

	detector, err := language.NewDetector(cfg.Detect.Languages)
	if err != nil {
		return nil, err
	}

	return newServer(cfg, scan.New(cfg, tool, detector)), nil
}

func newServer(cfg *config.Config, scanner *scan.Scanner) *Server {
	s := server.NewMCPServer(
		"comlang",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithPromptCapabilities(true),
	)

	srv := &Server{mcp: s, cfg: cfg, scanner: scanner}
	srv.registerTools()
	srv.registerPrompts()

	return srv
}

// ServeStdio starts the server using stdio transport
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

func (s *Server) registerTools() {
	// scan_comments tool
	scanTool := mcp.NewTool("scan_comments",
		mcp.WithDescription("Scan a directory for source comments in a given language"),
		mcp.WithString("directory",
			mcp.Description("Directory to scan (default: current directory)"),
		),
		mcp.WithString("language",
			mcp.Description("ISO 639-1 code of the language to report (default: from config)"),
		),
	)
	s.mcp.AddTool(scanTool, s.handleScanComments)

	// list_languages tool
	listTool := mcp.NewTool("list_languages",
		mcp.WithDescription("List the languages comments are classified against"),
	)
	s.mcp.AddTool(listTool, s.handleListLanguages)
}

func (s *Server) registerPrompts() {
	// /translate-comments prompt
	translatePrompt := mcp.NewPrompt("translate-comments",
		mcp.WithPromptDescription("Translate detected comments into English"),
		mcp.WithArgument("directory",
			mcp.ArgumentDescription("Directory to scan (default: current directory)"),
		),
		mcp.WithArgument("language",
			mcp.ArgumentDescription("ISO 639-1 code of the comments to translate (default: from config)"),
		),
	)
	s.mcp.AddPrompt(translatePrompt, s.handleTranslatePrompt)
}

// scanCtx applies the configured search timeout, if any.
func (s *Server) scanCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.Search.Timeout > 0 {
		return context.WithTimeout(ctx, time.Duration(s.cfg.Search.Timeout)*time.Second)
	}
	return context.WithCancel(ctx)
}

func (s *Server) handleScanComments(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dir := request.GetString("directory", ".")
	code := strings.ToLower(request.GetString("language", s.cfg.Report.Language))

	ctx, cancel := s.scanCtx(ctx)
	defer cancel()

	rep, err := s.scanner.Scan(ctx, dir)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scan failed: %v", err)), nil
	}

	if len(rep.Comments(code)) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No %s comments found under %s.", displayName(code), dir)), nil
	}

	result := report.FormatComments(rep, code) + "\n" + report.FormatSummary(rep, code)
	return mcp.NewToolResultText(result), nil
}

func (s *Server) handleListLanguages(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var result string
	for _, code := range s.cfg.Detect.Languages {
		result += fmt.Sprintf("- **%s** (%s)\n", displayName(code), strings.ToLower(code))
	}

	return mcp.NewToolResultText(result), nil
}

func (s *Server) handleTranslatePrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	dir := request.Params.Arguments["directory"]
	if dir == "" {
		dir = "."
	}
	code := request.Params.Arguments["language"]
	if code == "" {
		code = s.cfg.Report.Language
	}
	code = strings.ToLower(code)

	ctx, cancel := s.scanCtx(ctx)
	defer cancel()

	rep, err := s.scanner.Scan(ctx, dir)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %v", err)
	}

	text, err := prompt.Generate(rep, code)
	if err != nil {
		return nil, fmt.Errorf("failed to generate prompt: %v", err)
	}

	messages := []mcp.PromptMessage{
		mcp.NewPromptMessage(
			mcp.RoleUser,
			mcp.NewTextContent(text),
		),
	}

	return mcp.NewGetPromptResult(
		"Comment Translation",
		messages,
	), nil
}

func displayName(code string) string {
	if name := language.NameFor(code); name != "" {
		return name
	}
	return strings.ToUpper(code)
}
