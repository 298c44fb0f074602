package release

import (
	"fmt"
	"os/exec"
	"strings"
)

// GitRepository implements Repository with the git binary
type GitRepository struct {
	dir string
}

// NewGitRepository returns a GitRepository operating on the work tree at dir
func NewGitRepository(dir string) *GitRepository {
	return &GitRepository{dir: dir}
}

func (g *GitRepository) run(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = g.dir

	out, err := cmd.CombinedOutput()

	if err != nil {
		return "", fmt.Errorf("git %s: %w: %s", args[0], err, strings.TrimSpace(string(out)))
	}

	return string(out), nil
}

// Tags lists every tag in the repository
func (g *GitRepository) Tags() ([]string, error) {
	out, err := g.run("tag", "--list")

	if err != nil {
		return nil, err
	}

	return strings.Fields(out), nil
}

// Stage adds path to the index
func (g *GitRepository) Stage(path string) error {
	_, err := g.run("add", path)
	return err
}

// Commit commits the index with message
func (g *GitRepository) Commit(message string) error {
	_, err := g.run("commit", "-m", message)
	return err
}

// Tag creates an annotated tag on HEAD
func (g *GitRepository) Tag(name, message string) error {
	_, err := g.run("tag", "-a", name, "-m", message)
	return err
}
