package search

import (
	"context"
	"os/exec"
	"strings"
)

func init() {
	Register(&grep{})
}

// grep drives plain grep as a fallback for hosts without ripgrep.
// Its recursive mode prints paths as ./relative, which is normalized to
// the bare relative form ripgrep uses.
type grep struct{}

func (g *grep) Name() string        { return "grep" }
func (g *grep) DisplayName() string { return "grep" }

func (g *grep) Available() bool {
	_, err := exec.LookPath("grep")
	return err == nil
}

func (g *grep) Version(ctx context.Context) (string, error) {
	return version(ctx, "grep")
}

func (g *grep) Search(ctx context.Context, dir, pattern string) ([]Match, error) {
	args := []string{"-r", "-n", "-I", "-e", pattern, "."}

	out, err := run(ctx, g.Name(), "grep", args, dir)
	if err != nil {
		return nil, err
	}

	matches, err := ParseMatches(out)
	if err != nil {
		return nil, err
	}

	for i := range matches {
		matches[i].File = strings.TrimPrefix(matches[i].File, "./")
	}

	return matches, nil
}
