package github_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/folio/internal/github"
)

func newAPI(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/users/octo", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/vnd.github.v3+json", r.Header.Get("Accept"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"login":"octo","public_repos":12,"followers":34}`))
	})
	mux.HandleFunc("/users/octo/repos", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		_, _ = w.Write([]byte(`[{"name":"a","language":"Go","stargazers_count":3},{"name":"b","language":null,"stargazers_count":2}]`))
	})
	mux.HandleFunc("/users/octo/events", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"type":"PushEvent","repo":{"name":"octo/a"},"created_at":"2026-10-01T12:00:00Z"}]`))
	})
	mux.HandleFunc("/search/commits", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "author:octo committer-date:>2026-09-19", r.URL.Query().Get("q"))
		_, _ = w.Write([]byte(`{"total_count":42}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient(t *testing.T) {
	srv := newAPI(t)
	c := github.NewClient(srv.URL+"/", "octo", "secret", srv.Client())
	ctx := context.Background()

	user, err := c.User(ctx)
	require.NoError(t, err)
	assert.Equal(t, github.User{Login: "octo", PublicRepos: 12, Followers: 34}, user)

	repos, err := c.Repos(ctx)
	require.NoError(t, err)
	require.Len(t, repos, 2)
	assert.Equal(t, "Go", repos[0].Language)
	assert.Empty(t, repos[1].Language)

	events, err := c.Events(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "octo/a", events[0].Repo.Name)

	n, err := c.CommitCount(ctx, time.Date(2026, 9, 19, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 42, n)
}

func TestClientUnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := github.NewClient(srv.URL, "octo", "", nil)
	_, err := c.User(context.Background())
	assert.ErrorIs(t, err, github.ErrUnexpectedStatus)
}
