package ignore

import (
	"errors"
	"path/filepath"

	"github.com/go-git/go-git/v5"

	"github.com/jadenpxrk/dotbin/internal/vcs"
)

// ErrNotGitRepository mirrors git's own failure outside a work tree.
var ErrNotGitRepository = errors.New("fatal: Not a git repository (or any of the parent directories): .git")

// Repository is the Git work tree whose .gitignore is edited.
type Repository struct {
	repo *git.Repository
	Root string
}

// OpenRepository finds the work tree enclosing dir.
func OpenRepository(dir string) (*Repository, error) {
	repo, root, err := vcs.OpenGit(dir)
	if err != nil {
		if errors.Is(err, vcs.ErrNotRepository) {
			return nil, ErrNotGitRepository
		}
		return nil, err
	}
	return &Repository{repo: repo, Root: root}, nil
}

// IgnoreFile returns the .gitignore at the work-tree root.
func (r *Repository) IgnoreFile() File {
	return File{Path: filepath.Join(r.Root, FileName)}
}

// Stage adds the .gitignore to the index.
func (r *Repository) Stage() error {
	wt, err := r.repo.Worktree()
	if err != nil {
		return vcs.WrapError(err, "failed to open worktree")
	}
	if _, err := wt.Add(FileName); err != nil {
		return vcs.WrapError(err, "failed to add "+FileName)
	}
	return nil
}

// IsTracked reports whether the .gitignore is in the index.
func (r *Repository) IsTracked() (bool, error) {
	idx, err := r.repo.Storer.Index()
	if err != nil {
		return false, vcs.WrapError(err, "failed to read index")
	}
	_, err = idx.Entry(FileName)
	if err != nil {
		return false, nil
	}
	return true, nil
}
