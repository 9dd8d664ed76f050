// Package upstream keeps a local checkout of the palette source
// repository in sync so generation can run against fresh sources.
package upstream

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"pigment/internal/logger"
)

// Status reports what Sync did to the local checkout.
type Status string

const (
	StatusCloned   Status = "cloned"
	StatusUpdated  Status = "updated"
	StatusUpToDate Status = "up-to-date"
)

// Source locates the upstream palette repository. Depth zero clones the
// full history.
type Source struct {
	URL   string
	Ref   string
	Dest  string
	Depth int
}

// Sync clones the repository when the destination is missing and
// fast-forwards the checkout when it exists. The origin URL of an
// existing checkout must match the configured URL.
func Sync(ctx context.Context, src Source, log *logger.Logger) (Status, error) {
	if log == nil {
		log = logger.Nop()
	}
	if src.URL == "" {
		return "", fmt.Errorf("upstream URL is empty")
	}
	if src.Dest == "" {
		return "", fmt.Errorf("upstream destination is empty")
	}

	if _, err := os.Stat(filepath.Join(src.Dest, ".git")); err != nil {
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("cannot access destination %s: %w", src.Dest, err)
		}
		return clone(ctx, src, log)
	}

	return update(ctx, src, log)
}

func clone(ctx context.Context, src Source, log *logger.Logger) (Status, error) {
	opts := &git.CloneOptions{URL: src.URL}
	if src.Depth > 0 {
		opts.Depth = src.Depth
	}
	if src.Ref != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(src.Ref)
		opts.SingleBranch = true
	}

	log.WithFields(map[string]any{"url": src.URL, "dest": src.Dest}).Info("cloning upstream sources")

	if _, err := git.PlainCloneContext(ctx, src.Dest, false, opts); err != nil {
		return "", fmt.Errorf("clone %s: %w", src.URL, err)
	}
	return StatusCloned, nil
}

func update(ctx context.Context, src Source, log *logger.Logger) (Status, error) {
	repo, err := git.PlainOpen(src.Dest)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", src.Dest, err)
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		return "", fmt.Errorf("origin remote missing in %s: %w", src.Dest, err)
	}
	if urls := remote.Config().URLs; len(urls) > 0 && urls[0] != src.URL {
		return "", fmt.Errorf("checkout at %s tracks %s, configuration expects %s", src.Dest, urls[0], src.URL)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return "", err
	}

	opts := &git.PullOptions{RemoteName: "origin"}
	if src.Ref != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(src.Ref)
		opts.SingleBranch = true
	}

	log.WithFields(map[string]any{"dest": src.Dest}).Info("updating upstream sources")

	err = wt.PullContext(ctx, opts)
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		return StatusUpToDate, nil
	}
	if err != nil {
		return "", fmt.Errorf("pull %s: %w", src.Dest, err)
	}
	return StatusUpdated, nil
}
