package git

import (
	"context"
	"fmt"
	"os"
)

// CommitRequest is a request to commit changes.
// It relies on the 'git commit' command.
type CommitRequest struct {
	// Message is the commit message.
	// It is passed to Git verbatim: no trimming, no escaping.
	//
	// If empty, $EDITOR is opened to edit the message.
	Message string

	// AllowEmpty allows a commit with no changes.
	AllowEmpty bool
}

// Commit runs the 'git commit' command with the worktree's index.
//
// The command's standard streams are attached to the process
// so that Git's own output is what the user sees.
func (w *Worktree) Commit(ctx context.Context, req CommitRequest) error {
	args := []string{"commit"}
	if req.Message != "" {
		args = append(args, "-m", req.Message)
	}
	if req.AllowEmpty {
		args = append(args, "--allow-empty")
	}

	err := w.gitCmd(ctx, args...).
		WithStdin(os.Stdin).
		WithStdout(os.Stdout).
		WithStderr(os.Stderr).
		Run()
	if err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
