// Package versioning resolves the documentation version list: the current
// version from the local source checkout plus previously released versions.
package versioning

import (
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// DefaultVersion is used when the checkout has no tags or is not a repository.
const DefaultVersion = "main"

// LocalVersion resolves the current version from the source checkout: the tag
// whose commit is newest wins. Checkouts without a repository or without tags
// resolve to DefaultVersion; that is a normal CI condition, not an error.
func LocalVersion(repoPath string) string {
	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		return DefaultVersion
	}

	tags, err := repo.Tags()
	if err != nil {
		return DefaultVersion
	}
	defer tags.Close()

	best := DefaultVersion
	var bestTime int64
	err = tags.ForEach(func(ref *plumbing.Reference) error {
		commit, err := tagCommit(repo, ref)
		if err != nil {
			return nil // skip unresolvable tags
		}
		when := commit.Committer.When.Unix()
		if when > bestTime {
			bestTime = when
			best = ref.Name().Short()
		}
		return nil
	})
	if err != nil {
		return DefaultVersion
	}
	return best
}

// tagCommit resolves a tag reference to its commit, peeling annotated tags.
func tagCommit(repo *git.Repository, ref *plumbing.Reference) (*object.Commit, error) {
	if commit, err := repo.CommitObject(ref.Hash()); err == nil {
		return commit, nil
	}
	tag, err := repo.TagObject(ref.Hash())
	if err != nil {
		return nil, fmt.Errorf("resolve tag %s: %w", ref.Name().Short(), err)
	}
	return tag.Commit()
}

// VersionList builds the documentation version list: the current version
// first, then released tags in the given order, deduplicated.
func VersionList(current string, released []string) []string {
	versions := []string{current}
	seen := map[string]struct{}{current: {}}
	for _, v := range released {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		versions = append(versions, v)
	}
	return versions
}
