// Package search runs external code-search tools and parses their output.
// Each supported tool (ripgrep, grep) implements the Tool interface to
// handle its particular command line and quirks, while sharing the
// path:line:content wire format.
package search

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"sort"
	"strconv"
	"strings"
)

// Match is a single line matched by a search tool, with the file path
// relative to the searched directory.
type Match struct {
	File    string
	Line    int
	Content string
}

// Tool defines the interface for search tool integrations.
type Tool interface {
	// Identity
	Name() string        // "rg", "grep"
	DisplayName() string // "ripgrep", "grep"

	// Available reports whether the tool's binary is on PATH.
	Available() bool

	// Version returns the tool's version line, for diagnostics.
	Version(ctx context.Context) (string, error)

	// Search runs the tool in dir and returns every line matching pattern.
	// A search that matches nothing returns an empty slice and no error.
	Search(ctx context.Context, dir, pattern string) ([]Match, error)
}

// ErrUnavailable is returned when a tool's binary cannot be found on PATH.
var ErrUnavailable = errors.New("search tool not available")

// ToolError reports a search tool run that failed, with whatever the tool
// wrote to stderr.
type ToolError struct {
	Tool   string
	Stderr string
	Err    error
}

func (e *ToolError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s failed: %v: %s", e.Tool, e.Err, e.Stderr)
	}
	return fmt.Sprintf("%s failed: %v", e.Tool, e.Err)
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

// registry holds all registered tools
var registry = make(map[string]Tool)

// Register adds a tool to the registry.
// Called by each tool's init() function.
func Register(t Tool) {
	registry[t.Name()] = t
}

// Get returns a tool by name.
// Returns (tool, true) if found, (nil, false) if not.
func Get(name string) (Tool, bool) {
	t, ok := registry[name]
	return t, ok
}

// Names returns all registered tool names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// run executes a search binary in dir and returns its stdout.
// Exit status 1 means no matches and yields empty output; higher statuses
// surface as a ToolError carrying stderr.
func run(ctx context.Context, name, bin string, args []string, dir string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctx.Err() != nil {
		return nil, fmt.Errorf("%s search: %w", name, ctx.Err())
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.ExitCode() == 1 {
				// No matches is not an error.
				return nil, nil
			}
			return nil, &ToolError{
				Tool:   name,
				Stderr: strings.TrimSpace(stderr.String()),
				Err:    err,
			}
		}

		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return nil, fmt.Errorf("%s: %w", name, ErrUnavailable)
		}

		return nil, &ToolError{
			Tool:   name,
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}

	return stdout.Bytes(), nil
}

// version runs a binary's --version flag and returns the first output line.
func version(ctx context.Context, bin string) (string, error) {
	out, err := exec.CommandContext(ctx, bin, "--version").Output()
	if err != nil {
		return "", fmt.Errorf("failed to get %s version: %w", bin, err)
	}
	line, _, _ := strings.Cut(string(out), "\n")
	return strings.TrimSpace(line), nil
}

// ParseMatches parses path:line:content output into matches.
// Lines that do not fit the format (notices, binary-file messages) are
// skipped rather than treated as errors.
func ParseMatches(output []byte) ([]Match, error) {
	var matches []Match

	scanner := bufio.NewScanner(bytes.NewReader(output))
	// Minified sources can produce very long matched lines.
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		parts := strings.SplitN(line, ":", 3)
		if len(parts) < 3 {
			continue
		}

		lineno, err := strconv.Atoi(parts[1])
		if err != nil {
			continue
		}

		matches = append(matches, Match{
			File:    parts[0],
			Line:    lineno,
			Content: parts[2],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to parse search output: %w", err)
	}

	return matches, nil
}
