package env

import (
	"os"
	"strconv"
)

// Runtime stores the env vars relevant to a submission run
type Runtime struct {
	CI          bool
	GithubToken string
}

// Read parses the env vars into a Runtime struct. An unset or
// unparseable CI value counts as not running under CI.
func Read() Runtime {
	r := Runtime{}
	if ci, err := strconv.ParseBool(os.Getenv("CI")); err == nil {
		r.CI = ci
	}
	r.GithubToken = os.Getenv("GITHUB_TOKEN")

	return r
}
