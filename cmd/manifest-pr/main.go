package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	submit "github.com/pkgsmith/manifest-pr"
	"github.com/pkgsmith/manifest-pr/env"
	"github.com/pkgsmith/manifest-pr/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		identifier  string
		version     string
		repository  string
		inputDir    string
		outputDir   string
		baseBranch  string
		headRef     string
		ignorePaths []string
		dryRun      bool
	)

	cmd := &cobra.Command{
		Use:          "manifest-pr",
		Short:        "Submit generated package manifests as a pull request",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			godotenv.Load()
			runtime := env.Read()

			if err := log.Init(); err != nil {
				return err
			}
			defer log.Close()

			changes, err := collectChanges(inputDir)
			if err != nil {
				return err
			}
			log.Write(fmt.Sprintf("collected %d generated files from %s", len(changes), inputDir))

			source := submit.Source{
				Repository:  repository,
				AccessToken: runtime.GithubToken,
				BaseBranch:  baseBranch,
				IgnorePaths: ignorePaths,
			}
			manager, err := submit.NewGithubClient(&source)
			if err != nil {
				return err
			}

			guard := &submit.Guard{
				Out:            cmd.OutOrStdout(),
				Prompter:       submit.TerminalPrompter{},
				NonInteractive: runtime.CI,
			}

			response, err := submit.Submit(submit.SubmitRequest{
				Source: source,
				Params: submit.SubmitParameters{
					PackageIdentifier: identifier,
					PackageVersion:    version,
					HeadRef:           headRef,
					DryRun:            dryRun,
				},
				Changes: changes,
			}, manager, guard, outputDir)
			if err != nil {
				return err
			}

			if response.Skipped {
				fmt.Fprintln(cmd.OutOrStdout(), "Submission skipped")
				return nil
			}
			for _, field := range response.Metadata {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", field.Name, field.Value)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&identifier, "identifier", "", "package identifier")
	cmd.Flags().StringVar(&version, "version", "", "package version")
	cmd.Flags().StringVar(&repository, "repository", "", "target repository as owner/name")
	cmd.Flags().StringVar(&inputDir, "input", "", "directory holding the generated manifests")
	cmd.Flags().StringVar(&outputDir, "output", "", "directory the manifests are written to")
	cmd.Flags().StringVar(&baseBranch, "base", "", "base branch for the pull request")
	cmd.Flags().StringVar(&headRef, "head", "", "head branch for the pull request")
	cmd.Flags().StringArrayVar(&ignorePaths, "ignore", nil, "gitignore-style pattern for generated files to skip")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "write the manifests without opening a pull request")

	cmd.MarkFlagRequired("identifier")
	cmd.MarkFlagRequired("version")
	cmd.MarkFlagRequired("repository")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")

	return cmd
}

// collectChanges reads every regular file under dir into a change set.
func collectChanges(dir string) (submit.ChangeSet, error) {
	var changes submit.ChangeSet
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		changes = append(changes, submit.Change{Path: path, Content: string(content)})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read generated files from %s: %s", dir, err)
	}
	return changes, nil
}
