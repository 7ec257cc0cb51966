package main

import "github.com/nivl-successor/gitlens/repo"

// repoFilter builds a repo.CommitFilter from the CLI's flag values,
// leaving zero-value fields empty so they're ignored (spec §6 "Filter
// predicate").
func repoFilter(author, search, path string) repo.CommitFilter {
	return repo.CommitFilter{
		Author: author,
		Search: search,
		Path:   path,
	}
}
