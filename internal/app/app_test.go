package app

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibeckermayer/judgmentroutingbot/internal/agent"
	"github.com/ibeckermayer/judgmentroutingbot/internal/auth"
	"github.com/ibeckermayer/judgmentroutingbot/internal/chance"
	"github.com/ibeckermayer/judgmentroutingbot/internal/config"
	"github.com/ibeckermayer/judgmentroutingbot/internal/logging"
	"github.com/ibeckermayer/judgmentroutingbot/internal/metrics"
	"github.com/ibeckermayer/judgmentroutingbot/internal/platform"
	"github.com/ibeckermayer/judgmentroutingbot/internal/scheduler"
	"github.com/ibeckermayer/judgmentroutingbot/internal/types"
)

type stubPlatform struct {
	mu sync.Mutex

	hasKey       bool
	status       string
	statusErr    error
	heartbeatErr error
	heartbeats   int
	feedCalls    int
	subscribes   int
	posts        []types.NewPost
}

func (s *stubPlatform) Posts(_ context.Context, sort string, _ int) ([]types.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sort != platform.SortHot {
		return nil, nil
	}
	s.feedCalls++
	return []types.Post{{ID: "p1", Title: "quiet afternoon"}}, nil
}

func (s *stubPlatform) CommunityPosts(context.Context, string, string, int) ([]types.Post, error) {
	return nil, nil
}

func (s *stubPlatform) UpvotePost(context.Context, string) error { return nil }

func (s *stubPlatform) AddComment(_ context.Context, postID, text, _ string) (*types.Comment, error) {
	return &types.Comment{PostID: postID, Text: text}, nil
}

func (s *stubPlatform) CreatePost(_ context.Context, p types.NewPost) (*types.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append(s.posts, p)
	return &types.Post{ID: "new", Title: p.Title, Community: p.Community}, nil
}

func (s *stubPlatform) Communities(context.Context) ([]types.Community, error) { return nil, nil }

func (s *stubPlatform) Subscribe(context.Context, string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribes++
	return nil
}

func (s *stubPlatform) Follow(context.Context, string) error { return nil }

func (s *stubPlatform) Register(_ context.Context, name, _ string) (*types.Registration, error) {
	return &types.Registration{APIKey: "key-for-" + name, ClaimURL: "https://example.test/claim"}, nil
}

func (s *stubPlatform) HasCredentials() bool { return s.hasKey }

func (s *stubPlatform) Status(context.Context) (*types.AgentStatus, error) {
	if s.statusErr != nil {
		return nil, s.statusErr
	}
	return &types.AgentStatus{Status: s.status}, nil
}

func (s *stubPlatform) Profile(context.Context) (*types.AgentProfile, error) {
	return &types.AgentProfile{Name: "JudgmentRoutingBot", Karma: 7}, nil
}

func (s *stubPlatform) Heartbeat(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.heartbeats++
	return "ok", s.heartbeatErr
}

func (s *stubPlatform) feeds() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.feedCalls
}

func newTestApp(t *testing.T, p *stubPlatform, opts ...Option) *App {
	t.Helper()
	cfg := config.Default()
	cfg.Behavior.StartupDelay = config.Duration(time.Millisecond)
	cfg.Behavior.CycleInterval = config.Duration(time.Hour)

	logger := logging.NewDiscardLogger()
	ag := agent.New(cfg, p,
		agent.WithRand(chance.Always(0.99)),
		agent.WithSleep(func(ctx context.Context, _ time.Duration) error { return ctx.Err() }),
		agent.WithLogger(logger),
	)
	sched, err := scheduler.New("UTC", logger)
	require.NoError(t, err)
	return New(cfg, p, ag, sched, logger, opts...)
}

func TestInitializeRequiresKey(t *testing.T) {
	a := newTestApp(t, &stubPlatform{})
	assert.ErrorIs(t, a.Initialize(context.Background()), ErrMissingAPIKey)
	assert.False(t, a.Status().Initialized)
}

func TestInitializeStatusFailureIsFatal(t *testing.T) {
	p := &stubPlatform{hasKey: true, statusErr: errors.New("401 unauthorized")}
	a := newTestApp(t, p)

	err := a.Initialize(context.Background())
	assert.ErrorContains(t, err, "status probe")
	assert.Equal(t, 0, p.subscribes)

	_, err = a.CreatePost(context.Background(), "t", "x", "")
	assert.ErrorIs(t, err, ErrNotInitialized)
	assert.ErrorIs(t, a.Run(context.Background()), ErrNotInitialized)
}

func TestInitialize(t *testing.T) {
	p := &stubPlatform{hasKey: true, status: "pending_claim"}
	a := newTestApp(t, p)

	require.NoError(t, a.Initialize(context.Background()))

	st := a.Status()
	assert.True(t, st.Initialized)
	assert.False(t, st.Running)
	assert.Equal(t, "pending_claim", st.ClaimStatus)
	assert.Equal(t, "JudgmentRoutingBot", st.AgentName)
	assert.Equal(t, 7, st.Karma)
	assert.Equal(t, 60, st.PostFrequencyMinutes)
	assert.Nil(t, st.LastPost)
	require.NotNil(t, st.Setup)
	assert.Len(t, st.Setup.Subscribed, len(config.Default().Behavior.TargetCommunities))
}

func TestRunAndStop(t *testing.T) {
	p := &stubPlatform{hasKey: true, status: "claimed"}
	a := newTestApp(t, p)
	require.NoError(t, a.Initialize(context.Background()))

	done := make(chan error, 1)
	go func() { done <- a.Run(context.Background()) }()

	require.Eventually(t, func() bool { return p.feeds() >= 1 }, 2*time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool { return a.Status().LastCycle != nil }, 2*time.Second, 5*time.Millisecond)
	assert.True(t, a.IsRunning())
	assert.Equal(t, 1, a.Status().LastCycleEvaluated)

	// checked at start without waiting for the interval
	assert.NotNil(t, a.Status().LastHeartbeatCheck)
	p.mu.Lock()
	assert.Equal(t, 1, p.heartbeats)
	p.mu.Unlock()

	jobs := a.Status().Jobs
	require.Len(t, jobs, 1)
	assert.Equal(t, "heartbeat", jobs[0].Name)

	a.Stop()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("run did not return after stop")
	}
	assert.False(t, a.IsRunning())
	// the cycle interval is an hour, so only the first cycle ran
	assert.Equal(t, 1, p.feeds())
}

func TestCheckHeartbeat(t *testing.T) {
	at := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	p := &stubPlatform{hasKey: true}
	m := metrics.New("test")
	a := newTestApp(t, p, WithClock(func() time.Time { return at }), WithMetrics(m))

	require.NoError(t, a.CheckHeartbeat(context.Background()))
	require.NotNil(t, a.Status().LastHeartbeatCheck)
	assert.Equal(t, at, *a.Status().LastHeartbeatCheck)

	p.heartbeatErr = errors.New("unreachable")
	assert.Error(t, a.CheckHeartbeat(context.Background()))
	assert.Equal(t, at, *a.Status().LastHeartbeatCheck)
}

func TestRegisterAgentStoresCredentials(t *testing.T) {
	creds := auth.NewManager(auth.NewCredentialStore(filepath.Join(t.TempDir(), "credentials.json")))
	a := newTestApp(t, &stubPlatform{}, WithCredentials(creds))

	_, err := a.RegisterAgent(context.Background(), "  ", "")
	assert.ErrorIs(t, err, ErrMissingName)

	reg, err := a.RegisterAgent(context.Background(), "RouterBot", "routes judgment")
	require.NoError(t, err)
	assert.Equal(t, "key-for-RouterBot", reg.APIKey)
	assert.Equal(t, "key-for-RouterBot", creds.APIKey())
}

func TestCreatePostIsThrottled(t *testing.T) {
	p := &stubPlatform{hasKey: true}
	a := newTestApp(t, p)
	require.NoError(t, a.Initialize(context.Background()))
	ctx := context.Background()

	post, err := a.CreatePost(ctx, "Routing", "Who signs off?", "")
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, "general", post.Community)

	post, err = a.CreatePost(ctx, "Routing again", "Still asking", "")
	assert.NoError(t, err)
	assert.Nil(t, post)
	assert.Len(t, p.posts, 1)

	st := a.Status()
	require.NotNil(t, st.LastPost)
	assert.NotEmpty(t, st.NextPostIn)
}
