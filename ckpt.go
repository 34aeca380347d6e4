package main

import (
	"context"
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/ckpt-sh/ckpt/internal/git"
	"github.com/ckpt-sh/ckpt/internal/text"
	"go.abhg.dev/log/silog"
)

// _defaultMessage is the commit message used
// when the caller does not supply one.
const _defaultMessage = "checkpoint"

type mainCmd struct {
	Message string `arg:"" optional:"" help:"Commit message for the checkpoint. Defaults to '${defaultMessage}'."`

	FailFast bool `help:"Stop at the first step that fails." env:"CKPT_FAIL_FAST"`

	// Flags with side effects whose values are never accessed directly.
	Verbose bool               `short:"v" help:"Enable verbose output" env:"CKPT_VERBOSE"`
	Dir     kong.ChangeDirFlag `short:"C" placeholder:"DIR" help:"Change to DIR before doing anything"`
}

func (*mainCmd) Help() string {
	return text.Dedent(`
		Use this as a shortcut for 'git add --all',
		followed by 'git commit -m MESSAGE', followed by 'git push'.

		All three steps are attempted even if an earlier step fails,
		so commits that are already recorded are still pushed
		when there is nothing new to commit.
		Use the --fail-fast flag to stop at the first failure instead.

		The push destination is whatever upstream
		the current branch is already configured with.
	`)
}

func (cmd *mainCmd) AfterApply(logger *silog.Logger) error {
	if cmd.Verbose {
		logger.SetLevel(silog.LevelDebug)
	}
	return nil
}

func (cmd *mainCmd) Run(ctx context.Context, logger *silog.Logger) error {
	wt, err := git.OpenWorktree(ctx, ".", git.OpenOptions{Log: logger})
	if err != nil {
		return fmt.Errorf("open worktree: %w", err)
	}

	return checkpoint(ctx, logger, wt, checkpointRequest{
		Message:  cmd.Message,
		FailFast: cmd.FailFast,
	})
}

//go:generate mockgen -destination=mock_worktree_test.go -package=main -mock_names=worktree=MockWorktree -write_package_comment=false -typed . worktree

// worktree is the subset of [git.Worktree] that checkpoint uses.
type worktree interface {
	Add(context.Context, git.AddOptions) error
	Commit(context.Context, git.CommitRequest) error
	Push(context.Context, git.PushOptions) error
}

var _ worktree = (*git.Worktree)(nil)

// checkpointRequest is a request to snapshot the working copy.
type checkpointRequest struct {
	// Message is the commit message.
	// If empty, [_defaultMessage] is used.
	//
	// The message is passed through verbatim:
	// whitespace-only messages are not treated as empty.
	Message string

	// FailFast stops the sequence at the first step that fails.
	FailFast bool
}

// checkpoint stages all pending changes, commits them with the resolved
// message, and pushes the result to the configured upstream, in that order.
//
// A failing stage or commit does not stop the sequence: any commits already
// recorded are still pushed. The returned error is the push error, if any,
// so that the process exit status tracks the push result. With FailFast set,
// the first failing step ends the sequence and its error is returned instead.
func checkpoint(ctx context.Context, logger *silog.Logger, wt worktree, req checkpointRequest) error {
	msg := req.Message
	if msg == "" {
		msg = _defaultMessage
	}

	if err := wt.Add(ctx, git.AddOptions{All: true}); err != nil {
		if req.FailFast {
			return err
		}
		logger.Error("Continuing past failed step", "step", "stage", "error", err)
	}

	if err := wt.Commit(ctx, git.CommitRequest{Message: msg}); err != nil {
		if req.FailFast {
			return err
		}
		logger.Error("Continuing past failed step", "step", "commit", "error", err)
	}

	return wt.Push(ctx, git.PushOptions{})
}
