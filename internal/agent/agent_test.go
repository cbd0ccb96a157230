package agent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibeckermayer/judgmentroutingbot/internal/chance"
	"github.com/ibeckermayer/judgmentroutingbot/internal/config"
	"github.com/ibeckermayer/judgmentroutingbot/internal/logging"
	"github.com/ibeckermayer/judgmentroutingbot/internal/metrics"
	"github.com/ibeckermayer/judgmentroutingbot/internal/platform"
	"github.com/ibeckermayer/judgmentroutingbot/internal/types"
)

type call struct {
	Method string
	Arg    string
}

// fakePlatform records every call and returns canned data
type fakePlatform struct {
	mu    sync.Mutex
	calls []call

	feed        []types.Post
	feedErr     error
	community   map[string][]types.Post
	communities []types.Community
	top         []types.Post

	upvoteErr    error
	commentErr   error
	postErr      error
	subscribeErr map[string]error
	followErr    error
}

func (f *fakePlatform) record(method, arg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call{method, arg})
}

func (f *fakePlatform) count(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c.Method == method {
			n++
		}
	}
	return n
}

func (f *fakePlatform) args(method string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, c := range f.calls {
		if c.Method == method {
			out = append(out, c.Arg)
		}
	}
	return out
}

func (f *fakePlatform) Posts(_ context.Context, sort string, limit int) ([]types.Post, error) {
	f.record("posts", fmt.Sprintf("%s/%d", sort, limit))
	if sort == platform.SortTop {
		return f.top, nil
	}
	return f.feed, f.feedErr
}

func (f *fakePlatform) CommunityPosts(_ context.Context, name, sort string, limit int) ([]types.Post, error) {
	f.record("community_posts", name)
	return f.community[name], nil
}

func (f *fakePlatform) UpvotePost(_ context.Context, id string) error {
	f.record("upvote", id)
	return f.upvoteErr
}

func (f *fakePlatform) AddComment(_ context.Context, postID, text, parentID string) (*types.Comment, error) {
	f.record("comment", postID)
	if f.commentErr != nil {
		return nil, f.commentErr
	}
	return &types.Comment{ID: "c-" + postID, PostID: postID, Text: text}, nil
}

func (f *fakePlatform) CreatePost(_ context.Context, post types.NewPost) (*types.Post, error) {
	f.record("create_post", post.Community+"/"+post.Title)
	if f.postErr != nil {
		return nil, f.postErr
	}
	return &types.Post{ID: "new", Title: post.Title, Content: post.Content, Community: post.Community}, nil
}

func (f *fakePlatform) Communities(context.Context) ([]types.Community, error) {
	f.record("communities", "")
	return f.communities, nil
}

func (f *fakePlatform) Subscribe(_ context.Context, name string) error {
	f.record("subscribe", name)
	return f.subscribeErr[name]
}

func (f *fakePlatform) Follow(_ context.Context, name string) error {
	f.record("follow", name)
	return f.followErr
}

func noSleep(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

type fixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestAgent(t *testing.T, p Platform, src chance.Source, opts ...Option) (*Agent, *fixedClock) {
	t.Helper()
	clock := &fixedClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	cfg := config.Default()
	opts = append([]Option{
		WithRand(src),
		WithClock(clock.Now),
		WithSleep(noSleep),
		WithLogger(logging.NewDiscardLogger()),
		WithMetrics(metrics.New("test")),
	}, opts...)
	return New(cfg, p, opts...), clock
}

var relevantPost = types.Post{ID: "p1", Title: "AI automation needs human authority", Author: "alice", Score: 15, NumComments: 6}

func TestEvaluateRelevantPostVotesAndComments(t *testing.T) {
	assert := assert.New(t)
	fp := &fakePlatform{}
	a, _ := newTestAgent(t, fp, chance.Always(0.1))

	ev := a.Evaluate(context.Background(), relevantPost, SourceFeed)

	assert.True(ev.Analysis.Decision.Endorse)
	assert.NotEmpty(ev.Response)
	assert.Contains(a.Responder().Pool("automationAuthority"), ev.Response)
	assert.Equal([]ActionResult{
		{Action: "upvote", Outcome: OutcomeSuccess},
		{Action: "comment", Outcome: OutcomeSuccess},
	}, ev.Actions)
	assert.Equal([]string{"p1"}, fp.args("upvote"))
	assert.Equal([]string{"p1"}, fp.args("comment"))
}

func TestEvaluateIrrelevantPostMakesNoCalls(t *testing.T) {
	fp := &fakePlatform{}
	a, _ := newTestAgent(t, fp, chance.Always(0))

	ev := a.Evaluate(context.Background(), types.Post{ID: "p2", Title: "Sunny weekend photos", Score: 2}, SourceFeed)

	assert.False(t, ev.Analysis.Decision.Endorse)
	assert.Empty(t, ev.Actions)
	assert.Empty(t, fp.calls)
}

func TestEvaluateGatesAreIndependentDraws(t *testing.T) {
	assert := assert.New(t)
	fp := &fakePlatform{}
	// vote draw 0.9 fails the 0.5 vote gate, comment draw 0.2 passes the 0.35 gate
	a, _ := newTestAgent(t, fp, chance.NewSequence(0.9, 0.2))

	ev := a.Evaluate(context.Background(), relevantPost, SourceFeed)
	assert.Equal(0, fp.count("upvote"))
	assert.Equal(1, fp.count("comment"))
	assert.Len(ev.Actions, 1)

	// vote draw 0.2 passes, comment draw 0.9 fails
	fp2 := &fakePlatform{}
	a2, _ := newTestAgent(t, fp2, chance.NewSequence(0.2, 0.9))
	a2.Evaluate(context.Background(), relevantPost, SourceFeed)
	assert.Equal(1, fp2.count("upvote"))
	assert.Equal(0, fp2.count("comment"))
}

func TestAlreadyVotedIsBenignAndNotRetried(t *testing.T) {
	assert := assert.New(t)
	fp := &fakePlatform{
		upvoteErr: &platform.Error{StatusCode: 400, Message: "You have already voted on this post"},
	}
	a, _ := newTestAgent(t, fp, chance.Always(0.1))

	ev := a.Evaluate(context.Background(), relevantPost, SourceFeed)

	assert.Equal(1, fp.count("upvote"))
	assert.Equal(OutcomeDuplicate, ev.Actions[0].Outcome)
	assert.True(ev.Actions[0].Outcome.Done())
	// the comment still goes out
	assert.Equal(1, fp.count("comment"))
}

func TestAlreadyVotedPlainErrorIsBenign(t *testing.T) {
	fp := &fakePlatform{upvoteErr: errors.New("already voted")}
	a, _ := newTestAgent(t, fp, chance.Always(0.1))

	ev := a.Evaluate(context.Background(), relevantPost, SourceFeed)

	assert.Equal(t, 1, fp.count("upvote"))
	assert.Equal(t, OutcomeDuplicate, ev.Actions[0].Outcome)
	assert.Equal(t, 1, fp.count("comment"))
}

func TestRateLimitedActionIsDropped(t *testing.T) {
	fp := &fakePlatform{
		commentErr: &platform.Error{StatusCode: 429, Message: "slow down"},
	}
	a, _ := newTestAgent(t, fp, chance.Always(0.1))

	ev := a.Evaluate(context.Background(), relevantPost, SourceFeed)

	assert.Equal(t, 1, fp.count("comment"))
	assert.Equal(t, OutcomeThrottled, ev.Actions[1].Outcome)
}

func TestRunCycle(t *testing.T) {
	assert := assert.New(t)
	var feed []types.Post
	for i := range 15 {
		feed = append(feed, types.Post{ID: fmt.Sprintf("f%d", i), Title: "who gives permission"})
	}
	fp := &fakePlatform{
		feed: feed,
		community: map[string][]types.Post{
			"agent-autonomy": {
				{ID: "c1", Title: "weather"},
				{ID: "c2", Title: "weather"},
				{ID: "c3", Title: "weather"},
				{ID: "c4", Title: "weather"},
				{ID: "c5", Title: "weather"},
			},
		},
	}
	// every gate passes, including the post attempt
	a, _ := newTestAgent(t, fp, chance.Always(0.1))

	report, err := a.RunCycle(context.Background())
	require.NoError(t, err)

	assert.Equal("agent-autonomy", report.Community)
	assert.Len(report.Evaluations, 5+4)
	assert.Equal([]string{"hot/15"}, fp.args("posts"))
	assert.Equal(5, fp.count("upvote"))
	assert.Equal(5, fp.count("comment"))
	require.NotNil(t, report.Posted)
	assert.Equal([]string{"artificial-intelligence/Where Does the Value Go?"}, fp.args("create_post"))
}

func TestRunCycleContinuesAfterFeedFailure(t *testing.T) {
	fp := &fakePlatform{feedErr: errors.New("connection reset")}
	a, _ := newTestAgent(t, fp, chance.Always(0.99))

	report, err := a.RunCycle(context.Background())
	assert.Error(t, err)
	assert.Equal(t, "agent-autonomy", report.Community)
	assert.Equal(t, 1, fp.count("community_posts"))
	assert.Equal(t, 0, fp.count("create_post"))
}

func TestRunCycleStopsOnCancel(t *testing.T) {
	fp := &fakePlatform{feed: []types.Post{relevantPost, relevantPost}}
	ctx, cancel := context.WithCancel(context.Background())
	sleep := func(ctx context.Context, _ time.Duration) error {
		cancel()
		return ctx.Err()
	}
	a, _ := newTestAgent(t, fp, chance.Always(0.99), WithSleep(sleep))

	report, err := a.RunCycle(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, report.Evaluations, 1)
	assert.Equal(t, 0, fp.count("community_posts"))
}

func TestNextCommunityRoundRobin(t *testing.T) {
	a, _ := newTestAgent(t, &fakePlatform{}, chance.Always(0))
	targets := config.Default().Behavior.TargetCommunities

	for i := range len(targets) + 2 {
		assert.Equal(t, targets[i%len(targets)], a.NextCommunity())
	}
}

func TestPostTopicThrottle(t *testing.T) {
	assert := assert.New(t)
	fp := &fakePlatform{}
	logger, hook := logtest.NewNullLogger()
	a, clock := newTestAgent(t, fp, chance.Always(0), WithLogger(logger))

	post, outcome := a.PostTopic(context.Background())
	require.NotNil(t, post)
	assert.Equal(OutcomeSuccess, outcome)

	clock.Advance(30 * time.Minute)
	post, outcome = a.PostTopic(context.Background())
	assert.Nil(post)
	assert.Equal(OutcomeSkipped, outcome)
	assert.Equal(1, fp.count("create_post"))
	require.NotNil(t, hook.LastEntry())
	assert.Equal("skipping post, too soon since last post", hook.LastEntry().Message)
	assert.Equal("30m0s", hook.LastEntry().Data["wait"])

	clock.Advance(30 * time.Minute)
	_, outcome = a.PostTopic(context.Background())
	assert.Equal(OutcomeSuccess, outcome)
	assert.Equal([]string{
		"artificial-intelligence/Where Does the Value Go?",
		"artificial-intelligence/The Temporal Asymmetry of Value",
	}, fp.args("create_post"))
}

func TestPostTopicFailureDoesNotStartThrottle(t *testing.T) {
	fp := &fakePlatform{postErr: &platform.Error{StatusCode: 429}}
	a, _ := newTestAgent(t, fp, chance.Always(0))

	_, outcome := a.PostTopic(context.Background())
	assert.Equal(t, OutcomeThrottled, outcome)
	assert.True(t, a.Throttle().Last().IsZero())

	fp.postErr = nil
	_, outcome = a.PostTopic(context.Background())
	assert.Equal(t, OutcomeSuccess, outcome)
	// the rotation moved on after the failed attempt
	assert.Equal(t, "artificial-intelligence/The Temporal Asymmetry of Value", fp.args("create_post")[1])
}

func TestCreatePostSharesThrottle(t *testing.T) {
	assert := assert.New(t)
	fp := &fakePlatform{}
	a, _ := newTestAgent(t, fp, chance.Always(0))
	ctx := context.Background()

	_, err := a.CreatePost(ctx, "", "text", "")
	assert.ErrorIs(err, ErrEmptyPost)

	post, err := a.CreatePost(ctx, "Hello", "First post", "")
	require.NoError(t, err)
	assert.Equal("general", post.Community)

	post, err = a.CreatePost(ctx, "Again", "Second post", "llms")
	assert.NoError(err)
	assert.Nil(post)

	_, outcome := a.PostTopic(ctx)
	assert.Equal(OutcomeSkipped, outcome)
	assert.Equal(1, fp.count("create_post"))
}

func TestCreatePostReturnsPlatformErrors(t *testing.T) {
	fp := &fakePlatform{postErr: errors.New("boom")}
	a, _ := newTestAgent(t, fp, chance.Always(0))

	post, err := a.CreatePost(context.Background(), "Hello", "World", "general")
	assert.Nil(t, post)
	assert.EqualError(t, err, "boom")
}

func TestClassify(t *testing.T) {
	assert.Equal(t, OutcomeSuccess, Classify(nil))
	assert.Equal(t, OutcomeDuplicate, Classify(&platform.Error{StatusCode: 400, Message: "Already subscribed"}))
	assert.Equal(t, OutcomeDuplicate, Classify(errors.New("already voted")))
	assert.Equal(t, OutcomeThrottled, Classify(errors.New("HTTP 429")))
	assert.Equal(t, OutcomeFailed, Classify(errors.New("nope")))
}
