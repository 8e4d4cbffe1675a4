package search

import (
	"context"
	"os/exec"
)

func init() {
	Register(&ripgrep{})
}

// ripgrep drives the rg binary. It is the preferred tool because it
// honors .gitignore and skips binary files on its own.
type ripgrep struct{}

func (r *ripgrep) Name() string        { return "rg" }
func (r *ripgrep) DisplayName() string { return "ripgrep" }

func (r *ripgrep) Available() bool {
	_, err := exec.LookPath("rg")
	return err == nil
}

func (r *ripgrep) Version(ctx context.Context) (string, error) {
	return version(ctx, "rg")
}

func (r *ripgrep) Search(ctx context.Context, dir, pattern string) ([]Match, error) {
	args := []string{
		"--line-number",
		"--with-filename",
		"--no-heading",
		"--color=never",
		"-e", pattern,
	}

	out, err := run(ctx, r.Name(), "rg", args, dir)
	if err != nil {
		return nil, err
	}

	return ParseMatches(out)
}
