package submit

import (
	"fmt"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/charmbracelet/lipgloss"

	"github.com/pkgsmith/manifest-pr/pullrequest"
)

var urlStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))

// Prompter asks yes/no questions on the terminal.
type Prompter interface {
	Confirm(question string) (bool, error)
}

// TerminalPrompter implements Prompter with an interactive prompt.
type TerminalPrompter struct{}

// Confirm ...
func (TerminalPrompter) Confirm(question string) (bool, error) {
	var proceed bool
	if err := survey.AskOne(&survey.Confirm{Message: question}, &proceed); err != nil {
		return false, err
	}
	return proceed, nil
}

// Guard decides whether to continue when a pull request already exists
// for the package being submitted.
type Guard struct {
	Out            io.Writer
	Prompter       Prompter
	NonInteractive bool
}

// PromptExistingPullRequest reports the existing pull request and asks
// whether to proceed. Non-interactive runs never prompt and always
// decline.
func (g *Guard) PromptExistingPullRequest(identifier, version string, pull pullrequest.PullRequest) (bool, error) {
	fmt.Fprintf(g.Out, "There is already %s pull request for %s %s that was created on %s at %s\n",
		pullrequest.StateArticle(pull.State),
		identifier,
		version,
		pull.CreatedAt.Format("2006-01-02"),
		pull.CreatedAt.Format("15:04:05"),
	)
	fmt.Fprintln(g.Out, urlStyle.Render(pull.URL))

	if g.NonInteractive {
		return false, nil
	}

	proceed, err := g.Prompter.Confirm("Would you like to proceed?")
	if err != nil {
		return false, fmt.Errorf("failed to prompt: %s", err)
	}
	return proceed, nil
}
