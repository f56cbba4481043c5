package submit

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/pkgsmith/manifest-pr/pullrequest"
)

// Submit (business logic)
func Submit(request SubmitRequest, manager Github, guard *Guard, outputDir string) (*SubmitResponse, error) {
	if err := request.Source.Validate(); err != nil {
		return nil, fmt.Errorf("invalid source: %s", err)
	}
	if err := request.Params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parameters: %s", err)
	}

	headRef := request.Params.HeadRef
	if headRef == "" {
		headRef = fmt.Sprintf("%s-%s", request.Params.PackageIdentifier, request.Params.PackageVersion)
	}

	existing, err := manager.FindPullRequest(headRef)
	if err != nil {
		return nil, fmt.Errorf("failed to look up existing pull request: %s", err)
	}
	if existing != nil {
		proceed, err := guard.PromptExistingPullRequest(request.Params.PackageIdentifier, request.Params.PackageVersion, *existing)
		if err != nil {
			return nil, err
		}
		if !proceed {
			return &SubmitResponse{Skipped: true, PullRequest: existing}, nil
		}
	}

	changes := request.Changes.FilterIgnored(request.Source.IgnorePaths)
	if err := WriteChanges(changes, outputDir); err != nil {
		return nil, err
	}

	var metadata Metadata
	metadata.Add("files", strconv.Itoa(len(changes)))

	if request.Params.DryRun {
		return &SubmitResponse{Metadata: metadata}, nil
	}

	title := request.Params.Title
	if title == "" {
		title = fmt.Sprintf("Update %s to %s", request.Params.PackageIdentifier, request.Params.PackageVersion)
	}
	base := request.Source.BaseBranch
	if base == "" {
		base = "master"
	}

	created, err := manager.CreatePullRequest(CreatePullRequestParams{
		Title: title,
		Body:  request.Params.Body,
		Head:  headRef,
		Base:  base,
	})
	if err != nil {
		return nil, err
	}

	metadata.Add("pr", strconv.Itoa(created.Number))
	metadata.Add("url", created.URL)
	metadata.Add("state", string(created.State))

	return &SubmitResponse{
		PullRequest: created,
		Metadata:    metadata,
	}, nil
}

// SubmitParameters ...
type SubmitParameters struct {
	PackageIdentifier string `json:"package_identifier"`
	PackageVersion    string `json:"package_version"`
	HeadRef           string `json:"head_ref,omitempty"`
	Title             string `json:"title,omitempty"`
	Body              string `json:"body,omitempty"`
	DryRun            bool   `json:"dry_run,omitempty"`
}

// Validate the submission parameters.
func (p *SubmitParameters) Validate() error {
	if p.PackageIdentifier == "" || p.PackageVersion == "" {
		return errors.New("package_identifier & package_version are required")
	}

	return nil
}

// SubmitRequest ...
type SubmitRequest struct {
	Source  Source           `json:"source"`
	Params  SubmitParameters `json:"params"`
	Changes ChangeSet        `json:"-"`
}

// SubmitResponse ...
type SubmitResponse struct {
	PullRequest *pullrequest.PullRequest `json:"pull_request,omitempty"`
	Metadata    Metadata                 `json:"metadata,omitempty"`
	Skipped     bool                     `json:"skipped,omitempty"`
}
