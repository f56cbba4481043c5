package submit

import (
	"errors"

	gitignore "github.com/sabhiram/go-gitignore"
)

// Source represents the configuration for a submission.
type Source struct {
	Repository  string   `json:"repository"`
	AccessToken string   `json:"access_token"`
	V3Endpoint  string   `json:"v3_endpoint"`
	BaseBranch  string   `json:"base_branch,omitempty"`
	IgnorePaths []string `json:"ignore_paths,omitempty"`
}

// Validate the source configuration.
func (s *Source) Validate() error {
	if s.AccessToken == "" || s.Repository == "" {
		return errors.New("access_token & repository are required")
	}

	return nil
}

// Change is a generated file to be persisted and submitted.
type Change struct {
	Path    string
	Content string
}

// ChangeSet is the batch of generated files for one submission.
type ChangeSet []Change

// FilterIgnored returns the changes not matching any of the given
// gitignore-style patterns.
func (c ChangeSet) FilterIgnored(patterns []string) ChangeSet {
	if len(patterns) == 0 {
		return c
	}

	ignore := gitignore.CompileIgnoreLines(patterns...)

	var out ChangeSet
	for _, change := range c {
		if !ignore.MatchesPath(change.Path) {
			out = append(out, change)
		}
	}
	return out
}
