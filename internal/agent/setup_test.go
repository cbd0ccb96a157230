package agent

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibeckermayer/judgmentroutingbot/internal/chance"
	"github.com/ibeckermayer/judgmentroutingbot/internal/platform"
	"github.com/ibeckermayer/judgmentroutingbot/internal/types"
)

func TestRelevantCommunity(t *testing.T) {
	tests := []struct {
		community types.Community
		want      bool
	}{
		{types.Community{Name: "civic-tech"}, true},
		{types.Community{Name: "TrustAndSafety"}, true},
		{types.Community{Name: "decision-theory"}, true},
		{types.Community{Name: "misc", DisplayName: "Political Economics"}, true},
		{types.Community{Name: "misc", DisplayName: "Trust Falls"}, false},
		{types.Community{Name: "cats", DisplayName: "Cats"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.community.Name+"/"+tt.community.DisplayName, func(t *testing.T) {
			assert.Equal(t, tt.want, RelevantCommunity(tt.community))
		})
	}
}

func TestFollowCandidates(t *testing.T) {
	a, _ := newTestAgent(t, &fakePlatform{}, chance.Always(0))

	posts := []types.Post{
		{Author: "carol", Title: "Judgment under load"},
		{Author: "bob", Title: "cats", Score: 50},
		{Author: "carol", Title: "More on judgment"},
		{Author: "dave", Title: "cats", Score: 1},
		{Author: "dave", Title: "dogs", Score: 2},
		{Author: "bob", Title: "more cats", Score: 9},
		{Author: "JudgmentRoutingBot", Title: "routing judgment"},
		{Author: "JudgmentRoutingBot", Title: "routing judgment again"},
		{Author: "", Title: "anonymous judgment"},
		{Author: "", Title: "anonymous judgment"},
		{Author: "erin", Title: "trust me"},
	}

	assert.Equal(t, []string{"carol", "bob"}, a.FollowCandidates(posts))
}

func TestFollowCandidatesCapsAtFive(t *testing.T) {
	a, _ := newTestAgent(t, &fakePlatform{}, chance.Always(0))

	var posts []types.Post
	for _, name := range []string{"a1", "a2", "a3", "a4", "a5", "a6", "a7"} {
		posts = append(posts,
			types.Post{Author: name, Title: "platform value"},
			types.Post{Author: name, Title: "platform value"},
		)
	}
	assert.Equal(t, []string{"a1", "a2", "a3", "a4", "a5"}, a.FollowCandidates(posts))
}

func TestSetup(t *testing.T) {
	assert := assert.New(t)
	fp := &fakePlatform{
		subscribeErr: map[string]error{
			"agent-economy":   &platform.Error{StatusCode: 400, Message: "Already subscribed to m/agent-economy"},
			"predictionmarkets": errors.New("connection refused"),
		},
		communities: []types.Community{
			{Name: "civic-design"},
			{Name: "cooking"},
			{Name: "governance-lab"},
		},
		top: []types.Post{
			{Author: "carol", Title: "accountability"},
			{Author: "carol", Title: "accountability again"},
		},
	}
	a, _ := newTestAgent(t, fp, chance.Always(0))

	report, err := a.Setup(context.Background())
	require.NoError(t, err)

	targets := a.cfg.TargetCommunities
	assert.Len(report.Subscribed, len(targets)-1)
	assert.Contains(report.Subscribed, "agent-economy")
	assert.NotContains(report.Subscribed, "predictionmarkets")
	assert.Equal([]string{"civic-design", "governance-lab"}, report.Discovered)
	assert.Equal([]string{"carol"}, report.Followed)
	assert.Equal(len(targets)+2, fp.count("subscribe"))
	assert.Equal([]string{"top/20"}, fp.args("posts"))
}

func TestSetupPausesBetweenDiscoveryAndFollowing(t *testing.T) {
	fp := &fakePlatform{}
	var pauses []time.Duration
	sleep := func(ctx context.Context, d time.Duration) error {
		pauses = append(pauses, d)
		fp.record("sleep", d.String())
		return ctx.Err()
	}
	a, _ := newTestAgent(t, fp, chance.Always(0), WithSleep(sleep))

	_, err := a.Setup(context.Background())
	require.NoError(t, err)

	// no communities discovered, so the only sleep after listing them is the phase pause
	fp.mu.Lock()
	calls := append([]call(nil), fp.calls...)
	fp.mu.Unlock()
	require.GreaterOrEqual(t, len(calls), 3)
	last := len(calls) - 1
	assert.Equal(t, "posts", calls[last].Method)
	assert.Equal(t, call{"sleep", "2s"}, calls[last-1])
	assert.Equal(t, "communities", calls[last-2].Method)
	assert.Equal(t, 2*time.Second, pauses[len(pauses)-1])
}
