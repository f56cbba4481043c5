package pullrequest

import (
	"strings"

	"github.com/shurcooL/githubv4"
)

// Filter is a function that reports whether a pull request matches.
type Filter func(PullRequest) bool

// Title matches pull requests whose title contains s (case-insensitive).
func Title(s string) Filter {
	return func(p PullRequest) bool {
		return strings.Contains(strings.ToLower(p.Title), strings.ToLower(s))
	}
}

// HeadRef matches pull requests created from the given branch.
func HeadRef(name string) Filter {
	return func(p PullRequest) bool {
		return p.HeadRefName == name
	}
}

// States matches pull requests in any of the given states.
func States(states ...githubv4.PullRequestState) Filter {
	return func(p PullRequest) bool {
		for _, s := range states {
			if p.State == s {
				return true
			}
		}
		return false
	}
}

// Find returns the first pull request matching every filter, or nil.
func Find(pulls []PullRequest, filters ...Filter) *PullRequest {
Loop:
	for i := range pulls {
		for _, match := range filters {
			if !match(pulls[i]) {
				continue Loop
			}
		}
		return &pulls[i]
	}
	return nil
}
