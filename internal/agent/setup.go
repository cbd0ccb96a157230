package agent

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ibeckermayer/judgmentroutingbot/internal/platform"
	"github.com/ibeckermayer/judgmentroutingbot/internal/types"
)

const (
	maxDiscoveredCommunities = 6
	maxFollows               = 5
	followCandidatePosts     = 20
	minAuthorAppearances     = 2
)

var (
	discoveryNameTerms    = []string{"economics", "governance", "policy", "civic", "decision", "trust"}
	discoveryDisplayTerms = []string{"economics", "governance"}
	followKeywords        = []string{"decision", "ai", "automation", "authority", "accountability", "judgment", "value", "platform", "trust", "extraction"}
)

// SetupReport lists what the initial setup subscribed to and followed
type SetupReport struct {
	Subscribed []string `json:"subscribed"`
	Discovered []string `json:"discovered"`
	Followed   []string `json:"followed"`
}

// Setup subscribes to the target communities, discovers related ones and
// follows authors that keep showing up near the top. Individual failures
// are logged and skipped.
func (a *Agent) Setup(ctx context.Context) (*SetupReport, error) {
	report := &SetupReport{}

	for _, name := range a.cfg.TargetCommunities {
		if a.subscribe(ctx, name) {
			report.Subscribed = append(report.Subscribed, name)
		}
		if err := a.sleep(ctx, a.cfg.SetupDelay.Std()); err != nil {
			return report, err
		}
	}

	var errs []error
	discovered, err := a.DiscoverCommunities(ctx)
	report.Discovered = discovered
	if err != nil {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}
		errs = append(errs, err)
	}
	if err := a.sleep(ctx, a.cfg.SetupPhaseDelay.Std()); err != nil {
		return report, err
	}

	followed, err := a.FollowAuthors(ctx)
	report.Followed = followed
	if err != nil {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}
		errs = append(errs, err)
	}

	a.log.WithFields(logrus.Fields{
		"subscribed": len(report.Subscribed),
		"discovered": len(report.Discovered),
		"followed":   len(report.Followed),
	}).Info("setup complete")
	return report, errors.Join(errs...)
}

func (a *Agent) subscribe(ctx context.Context, name string) bool {
	outcome, _ := a.exec.Run(ctx, "subscribe", logrus.Fields{"community": name}, func(ctx context.Context) error {
		return a.platform.Subscribe(ctx, name)
	})
	return outcome.Done()
}

// RelevantCommunity reports whether a community's name or display name
// suggests it discusses economics, governance or decisions
func RelevantCommunity(c types.Community) bool {
	name := strings.ToLower(c.Name)
	display := strings.ToLower(c.DisplayName)
	return slices.ContainsFunc(discoveryNameTerms, func(t string) bool { return strings.Contains(name, t) }) ||
		slices.ContainsFunc(discoveryDisplayTerms, func(t string) bool { return strings.Contains(display, t) })
}

// DiscoverCommunities subscribes to up to six relevant communities
func (a *Agent) DiscoverCommunities(ctx context.Context) ([]string, error) {
	communities, err := a.platform.Communities(ctx)
	if err != nil {
		a.log.WithError(err).Error("failed to list communities")
		return nil, fmt.Errorf("discover communities: %w", err)
	}

	var relevant []types.Community
	for _, c := range communities {
		if RelevantCommunity(c) {
			relevant = append(relevant, c)
		}
	}
	if len(relevant) > maxDiscoveredCommunities {
		relevant = relevant[:maxDiscoveredCommunities]
	}

	var joined []string
	for _, c := range relevant {
		if a.subscribe(ctx, c.Name) {
			a.log.WithField("community", c.Label()).Info("discovered and subscribed")
			joined = append(joined, c.Name)
		}
		if err := a.sleep(ctx, a.cfg.SetupDelay.Std()); err != nil {
			return joined, err
		}
	}
	return joined, nil
}

// FollowCandidates returns authors that appear at least twice among posts
// with high score or relevant keywords, in first-seen order, at most five,
// never including ourselves
func (a *Agent) FollowCandidates(posts []types.Post) []string {
	counts := make(map[string]int)
	var order []string
	for _, p := range posts {
		if p.Author == "" {
			continue
		}
		if a.selfName != "" && strings.Contains(p.Author, a.selfName) {
			continue
		}
		text := p.Combined()
		relevant := slices.ContainsFunc(followKeywords, func(kw string) bool { return strings.Contains(text, kw) })
		if p.Score <= a.engagement.ScoreThreshold && !relevant {
			continue
		}
		if counts[p.Author] == 0 {
			order = append(order, p.Author)
		}
		counts[p.Author]++
	}

	var out []string
	for _, name := range order {
		if counts[name] >= minAuthorAppearances {
			out = append(out, name)
		}
		if len(out) == maxFollows {
			break
		}
	}
	return out
}

// FollowAuthors follows the candidates found among the top posts
func (a *Agent) FollowAuthors(ctx context.Context) ([]string, error) {
	posts, err := a.platform.Posts(ctx, platform.SortTop, followCandidatePosts)
	if err != nil {
		a.log.WithError(err).Error("failed to fetch posts for following")
		return nil, fmt.Errorf("follow authors: %w", err)
	}

	var followed []string
	for _, name := range a.FollowCandidates(posts) {
		outcome, _ := a.exec.Run(ctx, "follow", logrus.Fields{"agent": name}, func(ctx context.Context) error {
			return a.platform.Follow(ctx, name)
		})
		if outcome.Done() {
			followed = append(followed, name)
		}
		if err := a.sleep(ctx, a.cfg.SetupDelay.Std()); err != nil {
			return followed, err
		}
	}
	return followed, nil
}
