package mcp

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/comlang/comlang/internal/config"
	"github.com/comlang/comlang/internal/language"
	"github.com/comlang/comlang/internal/scan"
	"github.com/comlang/comlang/internal/search"
)

type fakeSearcher struct {
	matches []search.Match
	err     error
}

func (f *fakeSearcher) Search(ctx context.Context, dir, pattern string) ([]search.Match, error) {
	return f.matches, f.err
}

type fakeDetector struct {
	codes map[string]string
}

func (f *fakeDetector) Detect(text string) (language.Detection, error) {
	if code, ok := f.codes[text]; ok {
		return language.Detection{Code: code, Confidence: 0.9}, nil
	}
	return language.Detection{}, language.ErrUndetermined
}

func testServer(matches []search.Match, codes map[string]string) *Server {
	cfg := config.Default()
	cfg.Exclude = nil
	scanner := scan.New(cfg, &fakeSearcher{matches: matches}, &fakeDetector{codes: codes})
	return newServer(cfg, scanner)
}

func toolText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("result has no content")
	}
	tc, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("result content is %T, want mcp.TextContent", result.Content[0])
	}
	return tc.Text
}

func TestNewServer(t *testing.T) {
	s, err := NewServer(config.Default())
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	if s.mcp == nil {
		t.Error("NewServer().mcp is nil")
	}
	if s.scanner == nil {
		t.Error("NewServer().scanner is nil")
	}
}

func TestNewServerUnknownTool(t *testing.T) {
	cfg := config.Default()
	cfg.Search.Tool = "ack"

	_, err := NewServer(cfg)
	if err == nil || !strings.Contains(err.Error(), "unknown search tool") {
		t.Errorf("NewServer() error = %v, want unknown search tool", err)
	}
}

func TestNewServerBadLanguageCodes(t *testing.T) {
	cfg := config.Default()
	cfg.Detect.Languages = []string{"en", "xx"}

	_, err := NewServer(cfg)
	if err == nil {
		t.Error("NewServer() should error on an unsupported language code")
	}
}

func TestHandleScanComments(t *testing.T) {
	color.NoColor = true

	s := testServer([]search.Match{
		{File: "main.rs", Line: 3, Content: "// hola que tal"},
	}, map[string]string{"hola que tal": "es"})

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]interface{}{
				"directory": t.TempDir(),
			},
		},
	}

	result, err := s.handleScanComments(context.Background(), req)
	if err != nil {
		t.Fatalf("handleScanComments() error = %v", err)
	}
	if result.IsError {
		t.Fatal("handleScanComments() returned tool error")
	}

	text := toolText(t, result)
	if !strings.Contains(text, "=== Spanish Comments (es) ===") {
		t.Errorf("result = %q, want comments section", text)
	}
	if !strings.Contains(text, "main.rs") {
		t.Errorf("result = %q, want file listed", text)
	}
	if !strings.Contains(text, "=== Files to Translate Summary ===") {
		t.Errorf("result = %q, want summary section", text)
	}
}

func TestHandleScanCommentsEmpty(t *testing.T) {
	color.NoColor = true

	s := testServer(nil, nil)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]interface{}{
				"directory": t.TempDir(),
			},
		},
	}

	result, err := s.handleScanComments(context.Background(), req)
	if err != nil {
		t.Fatalf("handleScanComments() error = %v", err)
	}
	if result.IsError {
		t.Fatal("handleScanComments() returned tool error")
	}

	if text := toolText(t, result); !strings.Contains(text, "No Spanish comments found") {
		t.Errorf("result = %q, want empty notice", text)
	}
}

func TestHandleScanCommentsBadDirectory(t *testing.T) {
	s := testServer(nil, nil)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]interface{}{
				"directory": filepath.Join(t.TempDir(), "missing"),
			},
		},
	}

	result, err := s.handleScanComments(context.Background(), req)
	if err != nil {
		t.Fatalf("handleScanComments() error = %v", err)
	}
	if !result.IsError {
		t.Error("handleScanComments() should return tool error for a missing directory")
	}
}

func TestHandleScanCommentsLanguageOverride(t *testing.T) {
	color.NoColor = true

	s := testServer([]search.Match{
		{File: "main.rs", Line: 1, Content: "// bonjour tout le monde"},
	}, map[string]string{"bonjour tout le monde": "fr"})

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]interface{}{
				"directory": t.TempDir(),
				"language":  "FR",
			},
		},
	}

	result, err := s.handleScanComments(context.Background(), req)
	if err != nil {
		t.Fatalf("handleScanComments() error = %v", err)
	}

	if text := toolText(t, result); !strings.Contains(text, "=== French Comments (fr) ===") {
		t.Errorf("result = %q, want French section", text)
	}
}

func TestHandleListLanguages(t *testing.T) {
	s := testServer(nil, nil)

	result, err := s.handleListLanguages(context.Background(), mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("handleListLanguages() error = %v", err)
	}

	text := toolText(t, result)
	if !strings.Contains(text, "**Spanish** (es)") {
		t.Errorf("result = %q, want Spanish listed", text)
	}
	if !strings.Contains(text, "**English** (en)") {
		t.Errorf("result = %q, want English listed", text)
	}
}

func TestHandleTranslatePrompt(t *testing.T) {
	s := testServer([]search.Match{
		{File: "main.rs", Line: 3, Content: "// hola que tal"},
	}, map[string]string{"hola que tal": "es"})

	req := mcp.GetPromptRequest{
		Params: mcp.GetPromptParams{
			Arguments: map[string]string{
				"directory": t.TempDir(),
			},
		},
	}

	result, err := s.handleTranslatePrompt(context.Background(), req)
	if err != nil {
		t.Fatalf("handleTranslatePrompt() error = %v", err)
	}
	if len(result.Messages) != 1 {
		t.Fatalf("prompt has %d messages, want 1", len(result.Messages))
	}

	tc, ok := result.Messages[0].Content.(mcp.TextContent)
	if !ok {
		t.Fatalf("message content is %T, want mcp.TextContent", result.Messages[0].Content)
	}
	if !strings.Contains(tc.Text, "hola que tal") {
		t.Errorf("prompt = %q, want comment included", tc.Text)
	}
	if !strings.Contains(tc.Text, "main.rs:3") {
		t.Errorf("prompt = %q, want file:line reference", tc.Text)
	}
}

func TestHandleTranslatePromptBadDirectory(t *testing.T) {
	s := testServer(nil, nil)

	req := mcp.GetPromptRequest{
		Params: mcp.GetPromptParams{
			Arguments: map[string]string{
				"directory": filepath.Join(t.TempDir(), "missing"),
			},
		},
	}

	if _, err := s.handleTranslatePrompt(context.Background(), req); err == nil {
		t.Error("handleTranslatePrompt() should error for a missing directory")
	}
}
