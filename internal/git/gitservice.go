package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"gitsift/internal/domain"
	"gitsift/internal/eventbus"
)

// ErrNotRepository is returned when a directory is not inside a git work tree
var ErrNotRepository = errors.New("not a git repository")

const refreshTimeout = 30 * time.Second

// GitService loads repository state for the UI
type GitService interface {
	FindRoot(ctx context.Context, dir string) (string, error)
	CurrentBranch(ctx context.Context, root string) (string, error)
	Status(ctx context.Context, root string) ([]domain.FileStatus, error)
	Diff(ctx context.Context, root string, file domain.FileStatus) (string, error)
	Refresh(ctx context.Context, root string) error
}

// gitService is the concrete implementation
type gitService struct {
	bus        eventbus.EventBus
	opts       domain.StatusOptions
	workerPool chan struct{} // Semaphore for limiting concurrent git operations
}

// NewGitService creates a new git service and subscribes it to refresh requests
func NewGitService(bus eventbus.EventBus, opts domain.StatusOptions) GitService {
	gs := &gitService{
		bus:        bus,
		opts:       opts,
		workerPool: make(chan struct{}, 2),
	}

	bus.Subscribe(eventbus.EventStatusRefreshRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.StatusRefreshRequestedEvent); ok {
			ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
			defer cancel()
			// Failures are published by Refresh; the log line is enough here
			if err := gs.Refresh(ctx, event.RepoPath); err != nil {
				log.WithField("repo", event.RepoPath).Warnf("Refresh failed: %v", err)
			}
		}
	})

	return gs
}

// FindRoot returns the top level directory of the work tree containing dir
func (gs *gitService) FindRoot(ctx context.Context, dir string) (string, error) {
	out, err := runGit(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrNotRepository, dir, err)
	}
	root := strings.TrimSpace(string(out))
	if root == "" {
		return "", fmt.Errorf("%w: %s", ErrNotRepository, dir)
	}
	return root, nil
}

// CurrentBranch gets the current branch name
func (gs *gitService) CurrentBranch(ctx context.Context, root string) (string, error) {
	out, err := runGit(ctx, root, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		// No commits yet: HEAD points at an unborn branch
		unborn, symErr := runGit(ctx, root, "symbolic-ref", "--short", "HEAD")
		if symErr != nil {
			return "", err
		}
		return strings.TrimSpace(string(unborn)), nil
	}

	branch := strings.TrimSpace(string(out))
	if branch == "HEAD" {
		short, err := runGit(ctx, root, "rev-parse", "--short", "HEAD")
		if err != nil {
			return "detached", nil
		}
		branch = "detached@" + strings.TrimSpace(string(short))
	}
	return branch, nil
}

// Status lists changed paths in the work tree
func (gs *gitService) Status(ctx context.Context, root string) ([]domain.FileStatus, error) {
	args := []string{"status", "--porcelain=v1", "-z"}
	if gs.opts.ShowUntracked {
		args = append(args, "--untracked-files=all")
	} else {
		args = append(args, "--untracked-files=no")
	}
	if gs.opts.ShowIgnored {
		args = append(args, "--ignored")
	}

	out, err := runGit(ctx, root, args...)
	if err != nil {
		return nil, fmt.Errorf("git status: %w", err)
	}
	return ParsePorcelain(out)
}

// Diff returns the colored diff for a single path
func (gs *gitService) Diff(ctx context.Context, root string, file domain.FileStatus) (string, error) {
	if file.IsUntracked() {
		out, err := runGitDiff(ctx, root, "diff", "--no-index", "--color=always", "--", "/dev/null", file.Path)
		if err != nil {
			return "", err
		}
		return orNoChanges(out), nil
	}

	var parts []string

	staged, err := runGitDiff(ctx, root, "diff", "--cached", "--color=always", "--", file.Path)
	if err != nil {
		return "", err
	}
	if staged != "" {
		parts = append(parts, staged)
	}

	worktree, err := runGitDiff(ctx, root, "diff", "--color=always", "--", file.Path)
	if err != nil {
		return "", err
	}
	if worktree != "" {
		parts = append(parts, worktree)
	}

	return orNoChanges(strings.Join(parts, "\n")), nil
}

// Refresh loads branch and status and publishes the result on the bus
func (gs *gitService) Refresh(ctx context.Context, root string) error {
	select {
	case gs.workerPool <- struct{}{}:
		defer func() { <-gs.workerPool }()
	case <-ctx.Done():
		return ctx.Err()
	}

	start := time.Now()

	branch, err := gs.CurrentBranch(ctx, root)
	if err != nil {
		gs.publishError("Failed to read branch", err)
		return err
	}

	files, err := gs.Status(ctx, root)
	if err != nil {
		gs.publishError("Failed to read status", err)
		return err
	}

	log.WithFields(log.Fields{
		"repo":     root,
		"branch":   branch,
		"files":    len(files),
		"duration": time.Since(start).Milliseconds(),
	}).Info("Status loaded")

	gs.bus.Publish(eventbus.StatusLoadedEvent{
		RepoPath: root,
		Branch:   branch,
		Files:    files,
	})
	return nil
}

func (gs *gitService) publishError(message string, err error) {
	gs.bus.Publish(eventbus.ErrorEvent{
		Message: message,
		Err:     err,
	})
}

func runGit(ctx context.Context, dir string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("git %s: %w: %s", args[0], err, msg)
		}
		return nil, fmt.Errorf("git %s: %w", args[0], err)
	}
	return out, nil
}

// runGitDiff runs a diff command, treating exit code 1 as "differences found"
func runGitDiff(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	output, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return string(output), nil
		}
		return "", fmt.Errorf("git %s: %w\nOutput: %s", strings.Join(args, " "), err, output)
	}
	return string(output), nil
}

func orNoChanges(diff string) string {
	if strings.TrimSpace(diff) == "" {
		return "no changes"
	}
	return diff
}
