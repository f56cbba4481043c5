package pullrequest

import (
	"time"

	"github.com/shurcooL/githubv4"
)

// PullRequest represents an existing submission for a package.
type PullRequest struct {
	Number      int
	Title       string
	URL         string
	BaseRefName string
	HeadRefName string
	State       githubv4.PullRequestState
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// StateArticle returns the display classification for a pull request
// state. Anything that is not explicitly merged or open reads as
// closed, including states the API may add later.
func StateArticle(state githubv4.PullRequestState) string {
	switch state {
	case githubv4.PullRequestStateMerged:
		return "a merged"
	case githubv4.PullRequestStateOpen:
		return "an open"
	default:
		return "a closed"
	}
}
