package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Amey2003/excel-issue-tracker/pkg/domain/interfaces"
	"github.com/Amey2003/excel-issue-tracker/pkg/domain/model"
	"github.com/Amey2003/excel-issue-tracker/pkg/engine"
	"github.com/m-mizutani/goerr/v2"
)

// DefaultBaseURL is the public GitHub REST API endpoint
const DefaultBaseURL = "https://api.github.com"

// DefaultTimeout bounds a single fetch
const DefaultTimeout = 30 * time.Second

// Source reads issue records from the body of one tracker issue. The body
// holds a JSON array, optionally wrapped in a ```json code fence.
type Source struct {
	httpClient *http.Client
	baseURL    string
	token      string
	owner      string
	repo       string
	number     int
}

var _ interfaces.IssueSource = (*Source)(nil)

// Option configures a Source
type Option func(*Source)

// WithBaseURL overrides the API endpoint, e.g. for GitHub Enterprise
func WithBaseURL(baseURL string) Option {
	return func(s *Source) { s.baseURL = strings.TrimRight(baseURL, "/") }
}

// WithToken sets a bearer token for private repositories
func WithToken(token string) Option {
	return func(s *Source) { s.token = token }
}

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(s *Source) { s.httpClient = hc }
}

// New creates a Source for owner/repo#number
func New(owner, repo string, number int, opts ...Option) *Source {
	s := &Source{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		baseURL:    DefaultBaseURL,
		owner:      owner,
		repo:       repo,
		number:     number,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns owner/repo#number
func (s *Source) Name() string {
	return fmt.Sprintf("github:%s/%s#%d", s.owner, s.repo, s.number)
}

type issueResponse struct {
	Body *string `json:"body"`
}

// Fetch downloads the issue and returns its body with code fences removed
func (s *Source) Fetch(ctx context.Context) ([]byte, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/issues/%d", s.baseURL, s.owner, s.repo, s.number)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, goerr.Wrap(model.ErrAcquisition, "failed to create request",
			goerr.V("url", url),
			goerr.V("cause", err.Error()))
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Cache-Control", "no-cache")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(model.ErrAcquisition, "failed to fetch issue",
			goerr.V("url", url),
			goerr.V("cause", err.Error()))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(model.ErrAcquisition, "failed to read response",
			goerr.V("url", url),
			goerr.V("cause", err.Error()))
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, goerr.Wrap(model.ErrAcquisition, "issue not found",
			goerr.V("source", s.Name()))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, goerr.Wrap(model.ErrAcquisition, "unexpected status from GitHub",
			goerr.V("source", s.Name()),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", truncate(string(body), 512)))
	}

	var issue issueResponse
	if err := json.Unmarshal(body, &issue); err != nil {
		return nil, goerr.Wrap(model.ErrAcquisition, "failed to decode issue",
			goerr.V("source", s.Name()),
			goerr.V("cause", err.Error()))
	}
	if issue.Body == nil {
		return nil, goerr.Wrap(model.ErrAcquisition, "issue has no body",
			goerr.V("source", s.Name()))
	}

	return []byte(engine.StripFences(*issue.Body)), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
