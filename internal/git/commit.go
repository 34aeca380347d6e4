package git

import (
	"context"
	"fmt"
)

// CommitSubject reports the subject line of the given commit-ish's message.
func (r *Repository) CommitSubject(ctx context.Context, commitish string) (string, error) {
	out, err := r.gitCmd(ctx, "log", "-1", "--pretty=format:%s", commitish).
		OutputChomp()
	if err != nil {
		return "", fmt.Errorf("git log: %w", err)
	}
	return out, nil
}
