package submit

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/go-github/github"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"

	"github.com/pkgsmith/manifest-pr/pullrequest"
)

// Github for duplicate detection and submission.
type Github interface {
	FindPullRequest(headRef string) (*pullrequest.PullRequest, error)
	CreatePullRequest(params CreatePullRequestParams) (*pullrequest.PullRequest, error)
}

// CreatePullRequestParams ...
type CreatePullRequestParams struct {
	Title string
	Body  string
	Head  string
	Base  string
}

// GithubClient for handling requests to the Github V3 API.
type GithubClient struct {
	V3         *github.Client
	Repository string
	Owner      string
}

// NewGithubClient ...
func NewGithubClient(s *Source) (*GithubClient, error) {
	owner, repository, err := parseRepository(s.Repository)
	if err != nil {
		return nil, err
	}

	client := oauth2.NewClient(context.TODO(), oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: s.AccessToken},
	))

	var v3 *github.Client
	if s.V3Endpoint != "" {
		endpoint, err := url.Parse(s.V3Endpoint)
		if err != nil {
			return nil, fmt.Errorf("failed to parse v3 endpoint: %s", err)
		}
		v3, err = github.NewEnterpriseClient(endpoint.String(), endpoint.String(), client)
		if err != nil {
			return nil, err
		}
	} else {
		v3 = github.NewClient(client)
	}

	return &GithubClient{
		V3:         v3,
		Owner:      owner,
		Repository: repository,
	}, nil
}

// FindPullRequest returns the most recently updated pull request whose
// head branch matches headRef, in any state, or nil when none exists.
func (m *GithubClient) FindPullRequest(headRef string) (*pullrequest.PullRequest, error) {
	pulls, _, err := m.V3.PullRequests.List(context.TODO(), m.Owner, m.Repository, &github.PullRequestListOptions{
		State:     "all",
		Head:      fmt.Sprintf("%s:%s", m.Owner, headRef),
		Sort:      "updated",
		Direction: "desc",
		ListOptions: github.ListOptions{
			PerPage: 10,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list pull requests: %s", err)
	}

	var candidates []pullrequest.PullRequest
	for _, p := range pulls {
		candidates = append(candidates, convertPullRequest(p))
	}
	return pullrequest.Find(candidates, pullrequest.HeadRef(headRef)), nil
}

// CreatePullRequest opens a pull request against the base branch.
func (m *GithubClient) CreatePullRequest(params CreatePullRequestParams) (*pullrequest.PullRequest, error) {
	pull, _, err := m.V3.PullRequests.Create(context.TODO(), m.Owner, m.Repository, &github.NewPullRequest{
		Title: github.String(params.Title),
		Body:  github.String(params.Body),
		Head:  github.String(params.Head),
		Base:  github.String(params.Base),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create pull request: %s", err)
	}

	created := convertPullRequest(pull)
	return &created, nil
}

func convertPullRequest(p *github.PullRequest) pullrequest.PullRequest {
	// V3 only distinguishes open/closed; a merge timestamp marks the
	// pull request as merged.
	state := githubv4.PullRequestState(strings.ToUpper(p.GetState()))
	if p.MergedAt != nil {
		state = githubv4.PullRequestStateMerged
	}

	return pullrequest.PullRequest{
		Number:      p.GetNumber(),
		Title:       p.GetTitle(),
		URL:         p.GetHTMLURL(),
		BaseRefName: p.GetBase().GetRef(),
		HeadRefName: p.GetHead().GetRef(),
		State:       state,
		CreatedAt:   p.GetCreatedAt(),
		UpdatedAt:   p.GetUpdatedAt(),
	}
}

func parseRepository(s string) (string, string, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return "", "", errors.New("malformed repository")
	}
	return parts[0], parts[1], nil
}
