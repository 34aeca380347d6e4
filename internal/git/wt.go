package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/ckpt-sh/ckpt/internal/xec"
	"go.abhg.dev/log/silog"
)

// Worktree is a checkout of a Git repository at a specific path.
// Operations that mutate the working copy (e.g. staging, committing)
// are only available on the worktree.
type Worktree struct {
	gitDir  string // absolute path to wt's .git directory
	rootDir string // absolute path to the root directory of the worktree
	repo    *Repository

	log  *silog.Logger
	exec execer
}

func newWorktree(gitDir, rootDir string, repo *Repository, log *silog.Logger, exec execer) *Worktree {
	return &Worktree{
		gitDir:  gitDir,
		rootDir: rootDir,
		repo:    repo,
		log:     log,
		exec:    exec,
	}
}

// OpenWorktree opens the Git worktree that contains the given directory.
// If dir is empty, the current working directory is used.
func OpenWorktree(ctx context.Context, dir string, opts OpenOptions) (*Worktree, error) {
	if opts.exec == nil {
		opts.exec = _realExec
	}
	if opts.Log == nil {
		opts.Log = silog.Nop()
	}

	out, err := newGitCmd(ctx, opts.Log, opts.exec,
		"rev-parse",
		"--show-toplevel",
		"--absolute-git-dir",
	).WithDir(dir).OutputChomp()
	if err != nil {
		return nil, err
	}

	rootDir, gitDir, ok := strings.Cut(out, "\n")
	if !ok {
		return nil, fmt.Errorf("unexpected output from git rev-parse: %q", out)
	}

	repo := newRepository(rootDir, gitDir, opts.Log, opts.exec)
	return newWorktree(gitDir, rootDir, repo, opts.Log, opts.exec), nil
}

func (w *Worktree) gitCmd(ctx context.Context, args ...string) *xec.Cmd {
	return newGitCmd(ctx, w.log, w.exec, args...).WithDir(w.rootDir)
}

// RootDir returns the absolute path to the root directory of the worktree.
func (w *Worktree) RootDir() string {
	return w.rootDir
}

// Repository returns the Git repository that this worktree belongs to.
func (w *Worktree) Repository() *Repository {
	return w.repo
}
