//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// RepoOption is a function that configures repository creation
type RepoOption func(*repoOptions)

type repoOptions struct {
	withCommit bool
	modified   []string          // committed files to change afterwards
	untracked  map[string]string // filename -> contents, never added
}

// WithCommit creates the repository with an initial commit
func WithCommit(commit bool) RepoOption {
	return func(opts *repoOptions) {
		opts.withCommit = commit
	}
}

// WithModified commits the named files and then changes them
func WithModified(names ...string) RepoOption {
	return func(opts *repoOptions) {
		opts.modified = append(opts.modified, names...)
	}
}

// WithUntracked leaves files in the worktree that git does not track
func WithUntracked(files map[string]string) RepoOption {
	return func(opts *repoOptions) {
		opts.untracked = files
	}
}

// CreateTestWorkspace creates a temporary directory for test repositories
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// CreateTestRepo creates a Git repository in the workspace
func (tf *TUITestFramework) CreateTestRepo(name string, options ...RepoOption) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}

	repoPath := filepath.Join(tf.workspace, name)
	if err := os.MkdirAll(repoPath, 0755); err != nil {
		return "", err
	}

	if err := tf.runGitCommand(repoPath, "init"); err != nil {
		return "", err
	}
	if err := tf.runGitCommand(repoPath, "checkout", "-b", "main"); err != nil {
		return "", err
	}

	opts := &repoOptions{withCommit: true}
	for _, opt := range options {
		opt(opts)
	}

	if opts.withCommit {
		readme := fmt.Sprintf("# %s\n\nTest repository for gitsift.\n", name)
		if err := writeFile(repoPath, "README.md", readme); err != nil {
			return "", err
		}
		for _, f := range opts.modified {
			if err := writeFile(repoPath, f, "original\n"); err != nil {
				return "", err
			}
		}
		if err := tf.runGitCommand(repoPath, "add", "."); err != nil {
			return "", err
		}
		if err := tf.runGitCommand(repoPath, "commit", "-m", "Initial commit"); err != nil {
			return "", err
		}
	}

	for _, f := range opts.modified {
		if err := writeFile(repoPath, f, "changed by test\n"); err != nil {
			return "", err
		}
	}
	for name, content := range opts.untracked {
		if err := writeFile(repoPath, name, content); err != nil {
			return "", err
		}
	}

	return repoPath, nil
}

func writeFile(dir, name, content string) error {
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}

func (tf *TUITestFramework) runGitCommand(dir string, args ...string) error {
	cmd := exec.Command("git", args...)
	if dir != "" {
		cmd.Dir = dir
	}
	// Set deterministic git environment
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=gitsift Test",
		"GIT_AUTHOR_EMAIL=test@gitsift.test",
		"GIT_COMMITTER_NAME=gitsift Test",
		"GIT_COMMITTER_EMAIL=test@gitsift.test",
		"GIT_CONFIG_GLOBAL=/dev/null", // ignore user ~/.gitconfig
	)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git %v failed: %v; out=%s", args, err, out)
	}
	return nil
}
