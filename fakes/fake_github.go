package fakes

import (
	"github.com/shurcooL/githubv4"

	submit "github.com/pkgsmith/manifest-pr"
	"github.com/pkgsmith/manifest-pr/pullrequest"
)

// FakeGithub is a test double for the submit.Github interface.
type FakeGithub struct {
	FindPullRequestStub    func(headRef string) (*pullrequest.PullRequest, error)
	FindPullRequestCalls   []string
	CreatePullRequestStub  func(params submit.CreatePullRequestParams) (*pullrequest.PullRequest, error)
	CreatePullRequestCalls []submit.CreatePullRequestParams
}

// FindPullRequest records the call and delegates to the stub. Without a
// stub it reports that no pull request exists.
func (f *FakeGithub) FindPullRequest(headRef string) (*pullrequest.PullRequest, error) {
	f.FindPullRequestCalls = append(f.FindPullRequestCalls, headRef)
	if f.FindPullRequestStub == nil {
		return nil, nil
	}
	return f.FindPullRequestStub(headRef)
}

// CreatePullRequest records the call and delegates to the stub. Without
// a stub it echoes the parameters back as an open pull request.
func (f *FakeGithub) CreatePullRequest(params submit.CreatePullRequestParams) (*pullrequest.PullRequest, error) {
	f.CreatePullRequestCalls = append(f.CreatePullRequestCalls, params)
	if f.CreatePullRequestStub == nil {
		return &pullrequest.PullRequest{
			Number:      1,
			Title:       params.Title,
			URL:         "https://github.com/owner/repository/pull/1",
			BaseRefName: params.Base,
			HeadRefName: params.Head,
			State:       githubv4.PullRequestStateOpen,
		}, nil
	}
	return f.CreatePullRequestStub(params)
}
