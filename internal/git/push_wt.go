package git

import (
	"context"
	"fmt"
	"os"
)

// PushOptions specifies options for the Push operation.
type PushOptions struct {
	// Remote is the remote to push to.
	//
	// If empty, Git's own upstream resolution
	// for the current branch decides the destination.
	Remote string

	// Refspec is the refspec to push.
	// If empty, the current branch is pushed to the remote.
	Refspec string
}

// Push pushes objects and refs to a remote repository.
//
// With zero options, this is a plain 'git push':
// the destination is whatever upstream the current branch
// is already configured with.
//
// The command's standard streams are attached to the process
// so that Git's own output is what the user sees.
func (w *Worktree) Push(ctx context.Context, opts PushOptions) error {
	args := []string{"push"}
	if opts.Remote != "" {
		args = append(args, opts.Remote)
	}
	if opts.Refspec != "" {
		args = append(args, opts.Refspec)
	}

	err := w.gitCmd(ctx, args...).
		WithStdout(os.Stdout).
		WithStderr(os.Stderr).
		Run()
	if err != nil {
		return fmt.Errorf("push: %w", err)
	}
	return nil
}
