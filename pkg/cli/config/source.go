package config

import (
	"log/slog"

	"github.com/Amey2003/excel-issue-tracker/pkg/domain/interfaces"
	"github.com/Amey2003/excel-issue-tracker/pkg/domain/model"
	"github.com/Amey2003/excel-issue-tracker/pkg/service/file"
	"github.com/Amey2003/excel-issue-tracker/pkg/service/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Source selects where issue records come from: a local export file or the
// body of a GitHub issue
type Source struct {
	File string

	GitHubOwner   string
	GitHubRepo    string
	GitHubIssue   int
	GitHubToken   string
	GitHubBaseURL string
}

// Flags returns CLI flags for Source configuration
func (s *Source) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "file",
			Usage:       "Path to a JSON export of issue records",
			Category:    "Source",
			Sources:     cli.EnvVars("ISSUEDASH_FILE"),
			Destination: &s.File,
		},
		&cli.StringFlag{
			Name:        "github-owner",
			Usage:       "Owner of the repository holding the tracker issue",
			Category:    "Source",
			Sources:     cli.EnvVars("ISSUEDASH_GITHUB_OWNER"),
			Destination: &s.GitHubOwner,
		},
		&cli.StringFlag{
			Name:        "github-repo",
			Usage:       "Repository holding the tracker issue",
			Category:    "Source",
			Sources:     cli.EnvVars("ISSUEDASH_GITHUB_REPO"),
			Destination: &s.GitHubRepo,
		},
		&cli.IntFlag{
			Name:        "github-issue",
			Usage:       "Number of the issue whose body holds the JSON records",
			Category:    "Source",
			Sources:     cli.EnvVars("ISSUEDASH_GITHUB_ISSUE"),
			Destination: &s.GitHubIssue,
		},
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub token for private repositories",
			Category:    "Source",
			Sources:     cli.EnvVars("ISSUEDASH_GITHUB_TOKEN"),
			Destination: &s.GitHubToken,
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub REST API base URL",
			Category:    "Source",
			Value:       github.DefaultBaseURL,
			Sources:     cli.EnvVars("ISSUEDASH_GITHUB_API_URL"),
			Destination: &s.GitHubBaseURL,
		},
	}
}

func (s *Source) hasGitHub() bool {
	return s.GitHubOwner != "" || s.GitHubRepo != "" || s.GitHubIssue != 0
}

// Configure creates the issue source
func (s *Source) Configure() (interfaces.IssueSource, error) {
	switch {
	case s.File != "" && s.hasGitHub():
		return nil, goerr.New("--file and --github-* are mutually exclusive")

	case s.File != "":
		return file.New(s.File), nil

	case s.hasGitHub():
		if s.GitHubOwner == "" || s.GitHubRepo == "" || s.GitHubIssue <= 0 {
			return nil, goerr.New("--github-owner, --github-repo and a positive --github-issue are required",
				goerr.V("owner", s.GitHubOwner),
				goerr.V("repo", s.GitHubRepo),
				goerr.V("issue", s.GitHubIssue))
		}
		opts := []github.Option{github.WithToken(s.GitHubToken)}
		if s.GitHubBaseURL != "" {
			opts = append(opts, github.WithBaseURL(s.GitHubBaseURL))
		}
		return github.New(s.GitHubOwner, s.GitHubRepo, s.GitHubIssue, opts...), nil

	default:
		return nil, goerr.Wrap(model.ErrSourceNotConfigured, "set --file or --github-owner/--github-repo/--github-issue")
	}
}

// LogValue returns structured log value
func (s Source) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("file", s.File),
		slog.String("github_owner", s.GitHubOwner),
		slog.String("github_repo", s.GitHubRepo),
		slog.Int("github_issue", s.GitHubIssue),
		slog.Bool("has_github_token", s.GitHubToken != ""),
		slog.String("github_api_url", s.GitHubBaseURL),
	)
}
