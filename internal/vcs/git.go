package vcs

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

// GitLister reads tracked paths from the Git index. Staged entries count
// as tracked, committed or not.
type GitLister struct{}

// OpenGit opens the repository enclosing dir, searching parent directories.
// It returns the repository and its work-tree root.
func OpenGit(dir string) (*git.Repository, string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, "", ErrNotRepository
		}
		return nil, "", queryError(err, "failed to open repository at %s", dir)
	}

	wt, err := repo.Worktree()
	if err != nil {
		if errors.Is(err, git.ErrIsBareRepository) {
			return nil, "", ErrNotRepository
		}
		return nil, "", queryError(err, "failed to open worktree at %s", dir)
	}
	return repo, wt.Filesystem.Root(), nil
}

// ListTracked implements Lister.
func (GitLister) ListTracked(ctx context.Context, root string) (TrackedSet, error) {
	repo, wtRoot, err := OpenGit(root)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	idx, err := repo.Storer.Index()
	if err != nil {
		return nil, queryError(err, "failed to read index of %s", wtRoot)
	}

	// Both sides need the same symlink resolution for Rel to work
	if resolved, err := filepath.EvalSymlinks(wtRoot); err == nil {
		wtRoot = resolved
	}

	set := make(TrackedSet, len(idx.Entries))
	for _, e := range idx.Entries {
		rel, ok := relativeTo(wtRoot, root, e.Name)
		if !ok || rel == "." {
			continue
		}
		set.AddWithParents(rel)
	}
	return set, nil
}
