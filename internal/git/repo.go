package git

import (
	"context"

	"github.com/ckpt-sh/ckpt/internal/xec"
	"go.abhg.dev/log/silog"
)

// OpenOptions configures the behavior of [OpenWorktree].
type OpenOptions struct {
	// Log specifies the logger to use for messages.
	Log *silog.Logger

	exec execer
}

// Repository is a handle to a Git repository.
// It provides read-write access to the repository's contents.
type Repository struct {
	root   string
	gitDir string

	log  *silog.Logger
	exec execer
}

func newRepository(root, gitDir string, log *silog.Logger, exec execer) *Repository {
	return &Repository{
		root:   root,
		gitDir: gitDir,
		log:    log,
		exec:   exec,
	}
}

// gitCmd returns a Git command that will run
// with the repository's root as the working directory.
func (r *Repository) gitCmd(ctx context.Context, args ...string) *xec.Cmd {
	return newGitCmd(ctx, r.log, r.exec, args...).WithDir(r.root)
}

// Root returns the absolute path to the root directory of the repository.
func (r *Repository) Root() string {
	return r.root
}
