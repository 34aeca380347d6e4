package git

import (
	"context"
	"fmt"
)

// AddOptions configures the behavior of Add.
type AddOptions struct {
	// All stages changes in the entire working tree,
	// including new, modified, and deleted paths.
	All bool

	// Paths limits staging to the given pathspecs.
	Paths []string
}

// Add stages changes in the working tree for the next commit.
// It relies on the 'git add' command.
func (w *Worktree) Add(ctx context.Context, opts AddOptions) error {
	args := []string{"add"}
	if opts.All {
		args = append(args, "--all")
	}
	if len(opts.Paths) > 0 {
		args = append(args, "--")
		args = append(args, opts.Paths...)
	}

	if err := w.gitCmd(ctx, args...).Run(); err != nil {
		return fmt.Errorf("add: %w", err)
	}
	return nil
}
