// Package github builds the read-only GitHub widget shown on the portfolio:
// headline counts, recent activity and most used languages.
package github

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	activityLimit  = 5
	languageLimit  = 6
	commitWindow   = 30 * 24 * time.Hour
	unknownRepo    = "Unknown Repository"
	snapshotFlight = "snapshot"
	buildTimeout   = 15 * time.Second
)

// Display values used when the API cannot be reached.
var fallbackStats = Stats{
	Repos:     "15+",
	Stars:     "25+",
	Followers: "10+",
	Commits:   "50+",
}

// Stats are the headline counters, preformatted for display.
type Stats struct {
	Repos     string `json:"repos"`
	Stars     string `json:"stars"`
	Followers string `json:"followers"`
	Commits   string `json:"commits"`
}

// Activity is one rendered entry of the activity feed.
type Activity struct {
	Icon string `json:"icon"`
	Text string `json:"text"`
	Repo string `json:"repo"`
	URL  string `json:"url"`
	Date string `json:"date"`
}

// Language counts repositories using one primary language.
type Language struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Snapshot is everything the widget renders.
type Snapshot struct {
	Username  string     `json:"username"`
	Stats     Stats      `json:"stats"`
	Activity  []Activity `json:"activity"`
	Languages []Language `json:"languages"`
	Fallback  bool       `json:"fallback"`
	FetchedAt time.Time  `json:"fetchedAt"`
}

// Source is the subset of the GitHub API the widget reads.
type Source interface {
	Username() string
	User(ctx context.Context) (User, error)
	Repos(ctx context.Context) ([]Repo, error)
	Events(ctx context.Context) ([]Event, error)
	CommitCount(ctx context.Context, since time.Time) (int, error)
}

// Service builds snapshots and caches successful ones for a TTL.
type Service struct {
	src    Source
	ttl    time.Duration
	now    func() time.Time
	logger *zap.Logger

	flight  singleflight.Group
	mu      sync.Mutex
	cached  *Snapshot
	expires time.Time
}

// NewService returns a Service. A zero ttl disables caching.
func NewService(src Source, ttl time.Duration, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{src: src, ttl: ttl, now: time.Now, logger: logger}
}

// Snapshot returns the cached snapshot or builds a fresh one. Concurrent
// callers share a single build, which outlives the caller that started it.
func (s *Service) Snapshot(ctx context.Context) Snapshot {
	s.mu.Lock()
	if s.cached != nil && s.now().Before(s.expires) {
		snap := *s.cached
		s.mu.Unlock()
		return snap
	}
	s.mu.Unlock()

	v, _, _ := s.flight.Do(snapshotFlight, func() (any, error) {
		bctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), buildTimeout)
		defer cancel()

		snap := s.build(bctx)
		if !snap.Fallback && s.ttl > 0 {
			s.mu.Lock()
			s.cached = &snap
			s.expires = s.now().Add(s.ttl)
			s.mu.Unlock()
		}
		return snap, nil
	})
	return v.(Snapshot)
}

func (s *Service) build(ctx context.Context) Snapshot {
	now := s.now()
	snap := Snapshot{
		Username:  s.src.Username(),
		Activity:  []Activity{},
		Languages: []Language{},
		FetchedAt: now,
	}

	var (
		user  User
		repos []Repo
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = s.src.User(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		repos, err = s.src.Repos(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Warn("github profile unavailable, using fallback stats", zap.Error(err))
		snap.Stats = fallbackStats
		snap.Fallback = true
		return snap
	}

	snap.Stats = Stats{
		Repos:     strconv.Itoa(user.PublicRepos),
		Stars:     strconv.Itoa(lo.SumBy(repos, func(r Repo) int { return r.StargazersCount })),
		Followers: strconv.Itoa(user.Followers),
		Commits:   fallbackStats.Commits,
	}
	snap.Languages = TopLanguages(repos, languageLimit)

	var extras errgroup.Group
	extras.Go(func() error {
		n, err := s.src.CommitCount(ctx, now.Add(-commitWindow))
		if err != nil {
			s.logger.Warn("github commit search failed", zap.Error(err))
			return nil
		}
		snap.Stats.Commits = strconv.Itoa(n)
		return nil
	})
	extras.Go(func() error {
		events, err := s.src.Events(ctx)
		if err != nil {
			s.logger.Warn("github activity unavailable", zap.Error(err))
			return nil
		}
		snap.Activity = RecentActivity(events, activityLimit)
		return nil
	})
	_ = extras.Wait()

	return snap
}

// TopLanguages counts repositories per primary language and returns the
// limit most common, ties broken by name.
func TopLanguages(repos []Repo, limit int) []Language {
	withLang := lo.Filter(repos, func(r Repo, _ int) bool { return r.Language != "" })
	counts := lo.CountValuesBy(withLang, func(r Repo) string { return r.Language })

	langs := lo.MapToSlice(counts, func(name string, n int) Language {
		return Language{Name: name, Count: n}
	})
	sort.Slice(langs, func(i, j int) bool {
		if langs[i].Count != langs[j].Count {
			return langs[i].Count > langs[j].Count
		}
		return langs[i].Name < langs[j].Name
	})
	return lo.Slice(langs, 0, limit)
}

// RecentActivity renders the first limit events.
func RecentActivity(events []Event, limit int) []Activity {
	return lo.Map(lo.Slice(events, 0, limit), func(e Event, _ int) Activity {
		return activityFor(e)
	})
}

func activityFor(e Event) Activity {
	repo := unknownRepo
	if e.Repo != nil && e.Repo.Name != "" {
		repo = e.Repo.Name
	}

	a := Activity{
		Repo: repo,
		URL:  "https://github.com/" + repo,
		Date: e.CreatedAt.Format("Jan 2, 2006"),
	}
	switch e.Type {
	case "PushEvent":
		a.Icon, a.Text = "fas fa-code", "Pushed to "+repo
	case "CreateEvent":
		a.Icon, a.Text = "fas fa-plus", "Created "+repo
	case "ForkEvent":
		a.Icon, a.Text = "fas fa-code-branch", "Forked "+repo
	case "WatchEvent":
		a.Icon, a.Text = "fas fa-star", "Starred "+repo
	default:
		a.Icon, a.Text = "fas fa-circle", "Activity in "+repo
	}
	return a
}
