// Package gitinfo inspects the git repository holding the documentation
// sources. Hugo needs git history to stamp "last updated" dates.
package gitinfo

import (
	"errors"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	ferrors "git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

// Info describes the repository containing a directory.
type Info struct {
	InRepo bool
	Head   string
	Branch string
}

// ShortHead returns the first 7 characters of the head commit.
func (i Info) ShortHead() string {
	if len(i.Head) < 7 {
		return i.Head
	}
	return i.Head[:7]
}

// Detect walks up from dir looking for a repository. A directory outside
// any repository yields a zero Info and no error.
func Detect(dir string) (Info, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return Info{}, nil
	}
	if err != nil {
		return Info{}, ferrors.WrapError(err, ferrors.CategoryGit, "failed to open repository").
			WithContext("dir", dir).Build()
	}

	info := Info{InRepo: true}
	head, err := repo.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		// Repository without commits.
		return info, nil
	}
	if err != nil {
		return info, ferrors.WrapError(err, ferrors.CategoryGit, "failed to resolve HEAD").
			WithContext("dir", dir).Build()
	}
	info.Head = head.Hash().String()
	if head.Name().IsBranch() {
		info.Branch = head.Name().Short()
	}
	return info, nil
}
