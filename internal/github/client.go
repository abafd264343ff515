package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrUnexpectedStatus is returned for non-200 API responses.
var ErrUnexpectedStatus = errors.New("unexpected github status")

// DefaultBaseURL is the public GitHub REST endpoint.
const DefaultBaseURL = "https://api.github.com"

// User is the subset of /users/{name} the widget shows.
type User struct {
	Login       string `json:"login"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
}

// Repo is the subset of /users/{name}/repos the widget aggregates.
type Repo struct {
	Name            string `json:"name"`
	Language        string `json:"language"`
	StargazersCount int    `json:"stargazers_count"`
}

// Event is one entry of /users/{name}/events.
type Event struct {
	Type string `json:"type"`
	Repo *struct {
		Name string `json:"name"`
	} `json:"repo"`
	CreatedAt time.Time `json:"created_at"`
}

type commitSearch struct {
	TotalCount int `json:"total_count"`
}

// Client is a minimal read-only GitHub REST client for one user.
type Client struct {
	baseURL  string
	username string
	token    string
	http     *http.Client
}

// NewClient returns a Client. An empty baseURL uses DefaultBaseURL and a nil
// httpClient gets a 10 second timeout.
func NewClient(baseURL, username, token string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		username: username,
		token:    token,
		http:     httpClient,
	}
}

// Username returns the account the client reads.
func (c *Client) Username() string {
	return c.username
}

// User fetches the profile.
func (c *Client) User(ctx context.Context) (User, error) {
	var u User
	err := c.get(ctx, "/users/"+url.PathEscape(c.username), nil, &u)
	return u, err
}

// Repos fetches public repositories.
func (c *Client) Repos(ctx context.Context) ([]Repo, error) {
	var repos []Repo
	q := url.Values{"per_page": {"100"}}
	err := c.get(ctx, "/users/"+url.PathEscape(c.username)+"/repos", q, &repos)
	return repos, err
}

// Events fetches recent public events, newest first.
func (c *Client) Events(ctx context.Context) ([]Event, error) {
	var events []Event
	err := c.get(ctx, "/users/"+url.PathEscape(c.username)+"/events", nil, &events)
	return events, err
}

// CommitCount counts commits authored since the given day via the search API.
func (c *Client) CommitCount(ctx context.Context, since time.Time) (int, error) {
	q := url.Values{"q": {fmt.Sprintf("author:%s committer-date:>%s", c.username, since.Format("2006-01-02"))}}
	var res commitSearch
	if err := c.get(ctx, "/search/commits", q, &res); err != nil {
		return 0, err
	}
	return res.TotalCount, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "folio/"+c.username)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: %s returned %d", ErrUnexpectedStatus, path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
