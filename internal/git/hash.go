package git

import (
	"context"
	"errors"
)

// ErrNotExist is returned when a Git object does not exist.
var ErrNotExist = errors.New("does not exist")

// Hash is a 40-character Git object ID.
type Hash string

func (h Hash) String() string {
	return string(h)
}

// Short reports the short form of the hash.
func (h Hash) Short() string {
	if len(h) < 7 {
		return string(h)
	}
	return string(h[:7])
}

// Head reports the commit hash of HEAD.
func (r *Repository) Head(ctx context.Context) (Hash, error) {
	return r.PeelToCommit(ctx, "HEAD")
}

// PeelToCommit reports the commit hash of the provided commit-ish.
// It returns [ErrNotExist] if the object does not exist.
func (r *Repository) PeelToCommit(ctx context.Context, ref string) (Hash, error) {
	return r.revParse(ctx, ref+"^{commit}")
}

func (r *Repository) revParse(ctx context.Context, ref string) (Hash, error) {
	out, err := r.gitCmd(ctx, "rev-parse",
		"--verify",         // fail if the object does not exist
		"--quiet",          // no output if object does not exist
		"--end-of-options", // prevent ref from being treated as a flag
		ref,
	).OutputChomp()
	if err != nil {
		return "", ErrNotExist
	}
	return Hash(out), nil
}
