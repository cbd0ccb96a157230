// Package agent runs the engagement cycle: it pulls posts from the
// platform, classifies them, and votes, comments and posts accordingly.
package agent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ibeckermayer/judgmentroutingbot/internal/analyzer"
	"github.com/ibeckermayer/judgmentroutingbot/internal/chance"
	"github.com/ibeckermayer/judgmentroutingbot/internal/composer"
	"github.com/ibeckermayer/judgmentroutingbot/internal/config"
	"github.com/ibeckermayer/judgmentroutingbot/internal/metrics"
	"github.com/ibeckermayer/judgmentroutingbot/internal/platform"
	"github.com/ibeckermayer/judgmentroutingbot/internal/responder"
	"github.com/ibeckermayer/judgmentroutingbot/internal/taxonomy"
	"github.com/ibeckermayer/judgmentroutingbot/internal/throttle"
	"github.com/ibeckermayer/judgmentroutingbot/internal/types"
)

// Platform is the subset of the platform API the agent acts through
type Platform interface {
	Posts(ctx context.Context, sort string, limit int) ([]types.Post, error)
	CommunityPosts(ctx context.Context, name, sort string, limit int) ([]types.Post, error)
	UpvotePost(ctx context.Context, id string) error
	AddComment(ctx context.Context, postID, text, parentID string) (*types.Comment, error)
	CreatePost(ctx context.Context, post types.NewPost) (*types.Post, error)
	Communities(ctx context.Context) ([]types.Community, error)
	Subscribe(ctx context.Context, name string) error
	Follow(ctx context.Context, name string) error
}

// Post sources, used in logs and metrics
const (
	SourceFeed      = "feed"
	SourceCommunity = "community"
)

// Agent carries the engagement behaviors. One cycle runs at a time; the
// manual CreatePost path may run concurrently and shares the throttle.
type Agent struct {
	cfg        config.BehaviorConfig
	engagement config.EngagementConfig
	selfName   string

	platform  Platform
	analyzer  *analyzer.Analyzer
	responder *responder.Bank
	composer  *composer.Composer
	throttle  *throttle.Throttle
	exec      *Executor

	rand    chance.Source
	now     func() time.Time
	sleep   func(ctx context.Context, d time.Duration) error
	log     logrus.FieldLogger
	metrics *metrics.Metrics

	mu             sync.Mutex
	communityIndex int
}

// Option customizes an Agent
type Option func(*Agent)

// WithRand sets the randomness source for gates and template picks
func WithRand(src chance.Source) Option {
	return func(a *Agent) { a.rand = src }
}

// WithClock sets the clock used by the post throttle
func WithClock(now func() time.Time) Option {
	return func(a *Agent) { a.now = now }
}

// WithSleep replaces the pacing delay between actions
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(a *Agent) { a.sleep = sleep }
}

// WithLogger sets the logger
func WithLogger(logger logrus.FieldLogger) Option {
	return func(a *Agent) { a.log = logger }
}

// WithMetrics sets the metrics sink
func WithMetrics(m *metrics.Metrics) Option {
	return func(a *Agent) { a.metrics = m }
}

// WithComposer replaces the topic rotation
func WithComposer(c *composer.Composer) Option {
	return func(a *Agent) { a.composer = c }
}

// New creates an agent acting through p
func New(cfg *config.Config, p Platform, opts ...Option) *Agent {
	a := &Agent{
		cfg:        cfg.Behavior,
		engagement: cfg.Engagement,
		selfName:   cfg.Platform.AgentName,
		platform:   p,
		throttle:   throttle.New(cfg.Behavior.PostInterval()),
		now:        time.Now,
		sleep:      sleepContext,
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.rand == nil {
		a.rand = chance.NewTimeSeeded()
	}
	if a.log == nil {
		a.log = logrus.StandardLogger()
	}
	a.log = a.log.WithField("component", "agent")
	if a.composer == nil {
		a.composer = composer.Default()
	}

	a.analyzer = analyzer.New(cfg.Engagement, taxonomy.Default(), a.rand)
	a.responder = responder.New(a.rand)
	a.exec = NewExecutor(a.log, a.metrics)
	return a
}

// Analyzer returns the classifier the agent uses
func (a *Agent) Analyzer() *analyzer.Analyzer {
	return a.analyzer
}

// Responder returns the response bank the agent uses
func (a *Agent) Responder() *responder.Bank {
	return a.responder
}

// Throttle returns the self-authored post throttle
func (a *Agent) Throttle() *throttle.Throttle {
	return a.throttle
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// ActionResult is one action taken for a post
type ActionResult struct {
	Action  string  `json:"action"`
	Outcome Outcome `json:"outcome"`
}

// Evaluation is what happened to one post during a cycle
type Evaluation struct {
	Analysis analyzer.Analysis `json:"analysis"`
	Response string            `json:"response,omitempty"`
	Actions  []ActionResult    `json:"actions,omitempty"`
}

// Evaluate classifies post and acts on the decision. The endorse gate is a
// fresh draw against the vote probability and needs decision.Endorse; the
// respond gate needs decision.Respond and a fresh draw against the comment
// probability. Action errors are logged and absorbed.
func (a *Agent) Evaluate(ctx context.Context, post types.Post, source string) Evaluation {
	res := a.analyzer.Analyze(post)
	d := res.Decision
	ev := Evaluation{Analysis: res}

	fields := logrus.Fields{
		"post_id": post.ID,
		"source":  source,
		"rule":    d.Rule,
	}
	entry := a.log.WithFields(fields).WithFields(logrus.Fields{
		"title":      post.Title,
		"author":     post.Author,
		"reason":     d.Reason,
		"categories": d.Categories,
	})
	if d.Tier != nil {
		entry = entry.WithField("tier", int(*d.Tier))
	}
	entry.Info("analyzed post")

	if a.metrics != nil {
		a.metrics.PostEvaluated(source)
		a.metrics.Decision(d.Rule)
	}

	if chance.Hit(a.rand, a.cfg.VoteProbability) && d.Endorse {
		outcome, _ := a.exec.Run(ctx, "upvote", fields, func(ctx context.Context) error {
			return a.platform.UpvotePost(ctx, post.ID)
		})
		ev.Actions = append(ev.Actions, ActionResult{Action: "upvote", Outcome: outcome})
	}

	if d.Respond && chance.Hit(a.rand, a.cfg.CommentProbability) {
		text := a.responder.Generate(post, d)
		ev.Response = text
		outcome, _ := a.exec.Run(ctx, "comment", fields, func(ctx context.Context) error {
			_, err := a.platform.AddComment(ctx, post.ID, text, "")
			return err
		})
		ev.Actions = append(ev.Actions, ActionResult{Action: "comment", Outcome: outcome})
	}

	return ev
}

// evaluateBatch evaluates up to sample posts in order, pausing after each
func (a *Agent) evaluateBatch(ctx context.Context, posts []types.Post, sample int, source string) ([]Evaluation, error) {
	if len(posts) > sample {
		posts = posts[:sample]
	}
	out := make([]Evaluation, 0, len(posts))
	for _, p := range posts {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		out = append(out, a.Evaluate(ctx, p, source))
		if err := a.sleep(ctx, a.cfg.ActionDelay.Std()); err != nil {
			return out, err
		}
	}
	return out, nil
}

// CycleReport summarizes one cycle
type CycleReport struct {
	Started     time.Time    `json:"started"`
	Finished    time.Time    `json:"finished"`
	Community   string       `json:"community"`
	Evaluations []Evaluation `json:"evaluations"`
	Posted      *types.Post  `json:"posted,omitempty"`
}

// RunCycle performs one interaction cycle: the hot feed, one target
// community, then maybe a self-authored post. Fetch failures are logged and
// returned joined; they never stop the rest of the cycle. Only context
// cancellation cuts a cycle short.
func (a *Agent) RunCycle(ctx context.Context) (*CycleReport, error) {
	report := &CycleReport{Started: time.Now()}
	a.log.Info("starting analysis cycle")

	var errs []error
	defer func() {
		report.Finished = time.Now()
		if a.metrics != nil {
			a.metrics.CycleFinished(report.Finished.Sub(report.Started), errors.Join(errs...))
		}
	}()

	posts, err := a.platform.Posts(ctx, platform.SortHot, a.cfg.FeedLimit)
	if err != nil {
		a.log.WithError(err).Error("failed to fetch feed")
		errs = append(errs, fmt.Errorf("fetch feed: %w", err))
	} else {
		evs, err := a.evaluateBatch(ctx, posts, a.cfg.FeedSample, SourceFeed)
		report.Evaluations = append(report.Evaluations, evs...)
		if err != nil {
			return report, err
		}
	}

	name, evs, err := a.BrowseCommunity(ctx)
	report.Community = name
	report.Evaluations = append(report.Evaluations, evs...)
	if err != nil {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}
		errs = append(errs, err)
	}

	if chance.Hit(a.rand, a.cfg.PostAttemptProbability) {
		post, _ := a.PostTopic(ctx)
		report.Posted = post
	}

	a.log.WithFields(logrus.Fields{
		"evaluated": len(report.Evaluations),
		"community": report.Community,
	}).Info("analysis cycle complete")
	return report, errors.Join(errs...)
}

// NextCommunity returns the next target community, round-robin
func (a *Agent) NextCommunity() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.cfg.TargetCommunities) == 0 {
		return ""
	}
	name := a.cfg.TargetCommunities[a.communityIndex%len(a.cfg.TargetCommunities)]
	a.communityIndex++
	return name
}

// BrowseCommunity evaluates the top of the next target community
func (a *Agent) BrowseCommunity(ctx context.Context) (string, []Evaluation, error) {
	name := a.NextCommunity()
	if name == "" {
		return "", nil, nil
	}
	a.log.WithField("community", name).Info("browsing community")

	posts, err := a.platform.CommunityPosts(ctx, name, platform.SortHot, a.cfg.CommunityLimit)
	if err != nil {
		a.log.WithError(err).WithField("community", name).Error("failed to browse community")
		return name, nil, fmt.Errorf("browse %s: %w", name, err)
	}
	evs, err := a.evaluateBatch(ctx, posts, a.cfg.CommunitySample, SourceCommunity)
	return name, evs, err
}
