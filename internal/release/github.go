// Package release lists published versions of the documented project from the
// GitHub releases API.
package release

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"sort"
	"time"
)

// Release is one published GitHub release.
type Release struct {
	TagName     string    `json:"tag_name"`
	Name        string    `json:"name"`
	Draft       bool      `json:"draft"`
	Prerelease  bool      `json:"prerelease"`
	PublishedAt time.Time `json:"published_at"`
}

// Client fetches releases for one repository.
type Client struct {
	httpClient *http.Client
	apiURL     string
	repository string // owner/name
}

// NewClient creates a release client. apiURL defaults to the public GitHub
// API when empty; no authentication is needed for public release listings.
func NewClient(apiURL, repository string) *Client {
	if apiURL == "" {
		apiURL = "https://api.github.com"
	}
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		apiURL:     apiURL,
		repository: repository,
	}
}

// List returns the repository's published releases, newest first. Drafts are
// excluded; prereleases are kept since early adopters browse their docs too.
func (c *Client) List(ctx context.Context) ([]Release, error) {
	u, err := url.Parse(c.apiURL)
	if err != nil {
		return nil, fmt.Errorf("parse API URL: %w", err)
	}
	u.Path = path.Join(u.Path, "repos", c.repository, "releases")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	req.Header.Set("User-Agent", "docbuild/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("GitHub API error: %s", resp.Status)
	}

	var releases []Release
	if err := json.NewDecoder(resp.Body).Decode(&releases); err != nil {
		return nil, fmt.Errorf("decode releases: %w", err)
	}

	published := releases[:0]
	for _, r := range releases {
		if !r.Draft {
			published = append(published, r)
		}
	}
	sort.SliceStable(published, func(i, j int) bool {
		return published[i].PublishedAt.After(published[j].PublishedAt)
	})
	return published, nil
}

// Tags returns the tag names of the published releases, newest first.
func Tags(releases []Release) []string {
	tags := make([]string, 0, len(releases))
	for _, r := range releases {
		tags = append(tags, r.TagName)
	}
	return tags
}
