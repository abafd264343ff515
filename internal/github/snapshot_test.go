package github

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	userErr   error
	eventErr  error
	commitErr error
	calls     atomic.Int32
	events    []Event
	repos     []Repo

	// When set, User waits for started to be signalled and release to close.
	started chan struct{}
	release chan struct{}
}

func (f *fakeSource) Username() string { return "octo" }

func (f *fakeSource) User(ctx context.Context) (User, error) {
	f.calls.Add(1)
	if f.release != nil {
		f.started <- struct{}{}
		select {
		case <-f.release:
		case <-ctx.Done():
			return User{}, ctx.Err()
		}
	}
	if f.userErr != nil {
		return User{}, f.userErr
	}
	return User{Login: "octo", PublicRepos: 7, Followers: 9}, nil
}

func (f *fakeSource) Repos(context.Context) ([]Repo, error) {
	return f.repos, nil
}

func (f *fakeSource) Events(context.Context) ([]Event, error) {
	return f.events, f.eventErr
}

func (f *fakeSource) CommitCount(context.Context, time.Time) (int, error) {
	return 21, f.commitErr
}

func repoEvent(typ, name string) Event {
	e := Event{Type: typ, CreatedAt: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)}
	if name != "" {
		e.Repo = &struct {
			Name string `json:"name"`
		}{Name: name}
	}
	return e
}

func TestSnapshot(t *testing.T) {
	src := &fakeSource{
		repos: []Repo{
			{Name: "a", Language: "Go", StargazersCount: 5},
			{Name: "b", Language: "Go", StargazersCount: 1},
			{Name: "c", Language: "Python"},
			{Name: "d", StargazersCount: 4},
		},
		events: []Event{
			repoEvent("PushEvent", "octo/a"),
			repoEvent("CreateEvent", "octo/b"),
			repoEvent("ForkEvent", "octo/c"),
			repoEvent("WatchEvent", "octo/d"),
			repoEvent("IssuesEvent", ""),
			repoEvent("PushEvent", "octo/f"),
		},
	}
	snap := NewService(src, time.Minute, nil).Snapshot(context.Background())

	assert.False(t, snap.Fallback)
	assert.Equal(t, "octo", snap.Username)
	assert.Equal(t, Stats{Repos: "7", Stars: "10", Followers: "9", Commits: "21"}, snap.Stats)
	assert.Equal(t, []Language{{Name: "Go", Count: 2}, {Name: "Python", Count: 1}}, snap.Languages)

	require.Len(t, snap.Activity, activityLimit)
	assert.Equal(t, Activity{
		Icon: "fas fa-code",
		Text: "Pushed to octo/a",
		Repo: "octo/a",
		URL:  "https://github.com/octo/a",
		Date: "Oct 1, 2026",
	}, snap.Activity[0])
	assert.Equal(t, "Created octo/b", snap.Activity[1].Text)
	assert.Equal(t, "fas fa-code-branch", snap.Activity[2].Icon)
	assert.Equal(t, "Starred octo/d", snap.Activity[3].Text)
	assert.Equal(t, "Activity in Unknown Repository", snap.Activity[4].Text)
}

func TestSnapshotFallback(t *testing.T) {
	src := &fakeSource{userErr: errors.New("rate limited")}
	svc := NewService(src, time.Minute, nil)

	snap := svc.Snapshot(context.Background())
	assert.True(t, snap.Fallback)
	assert.Equal(t, fallbackStats, snap.Stats)
	assert.Empty(t, snap.Activity)
	assert.NotNil(t, snap.Activity)

	svc.Snapshot(context.Background())
	assert.Equal(t, int32(2), src.calls.Load(), "fallback snapshots are not cached")
}

func TestSnapshotPartialFailure(t *testing.T) {
	src := &fakeSource{
		commitErr: errors.New("search unavailable"),
		eventErr:  errors.New("events unavailable"),
	}
	snap := NewService(src, 0, nil).Snapshot(context.Background())

	assert.False(t, snap.Fallback)
	assert.Equal(t, "7", snap.Stats.Repos)
	assert.Equal(t, "50+", snap.Stats.Commits)
	assert.Empty(t, snap.Activity)
}

func TestSnapshotCache(t *testing.T) {
	src := &fakeSource{}
	svc := NewService(src, time.Minute, nil)
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc.Snapshot(context.Background())
		}()
	}
	wg.Wait()
	calls := src.calls.Load()
	assert.LessOrEqual(t, calls, int32(8))

	svc.Snapshot(context.Background())
	assert.Equal(t, calls, src.calls.Load(), "served from cache")

	now = now.Add(2 * time.Minute)
	svc.Snapshot(context.Background())
	assert.Equal(t, calls+1, src.calls.Load(), "refreshed after ttl")
}

func TestSnapshotSharedBuildIgnoresLeaderCancel(t *testing.T) {
	src := &fakeSource{started: make(chan struct{}, 1), release: make(chan struct{})}
	svc := NewService(src, time.Minute, nil)

	leaderCtx, cancel := context.WithCancel(context.Background())
	leader := make(chan Snapshot, 1)
	go func() { leader <- svc.Snapshot(leaderCtx) }()
	<-src.started

	follower := make(chan Snapshot, 1)
	go func() { follower <- svc.Snapshot(context.Background()) }()

	// Give the follower time to join the in-flight build.
	time.Sleep(50 * time.Millisecond)
	cancel()
	time.Sleep(20 * time.Millisecond)
	close(src.release)

	for _, ch := range []chan Snapshot{leader, follower} {
		select {
		case snap := <-ch:
			assert.False(t, snap.Fallback)
			assert.Equal(t, "7", snap.Stats.Repos)
		case <-time.After(5 * time.Second):
			t.Fatal("snapshot did not return")
		}
	}
	assert.Equal(t, int32(1), src.calls.Load())
}

func TestTopLanguagesLimit(t *testing.T) {
	var repos []Repo
	for i, lang := range []string{"Go", "Rust", "C", "Zig", "Lua", "Java", "Ruby", "Go"} {
		repos = append(repos, Repo{Name: string(rune('a' + i)), Language: lang})
	}

	langs := TopLanguages(repos, languageLimit)
	require.Len(t, langs, languageLimit)
	assert.Equal(t, Language{Name: "Go", Count: 2}, langs[0])
	assert.Equal(t, "C", langs[1].Name)
}
