package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibeckermayer/judgmentroutingbot/internal/chance"
	"github.com/ibeckermayer/judgmentroutingbot/internal/types"
)

func TestCountTrends(t *testing.T) {
	posts := []types.Post{
		{Title: "Agents routing judgment", Text: "Who routes the judgment? This would matter."},
		{Title: "Judgment calls", Content: "agents, agents everywhere"},
		{Title: "The end"},
	}

	trends := CountTrends(posts, 3)
	assert.Equal(t, []types.Trend{
		{Word: "agents", Count: 3},
		{Word: "judgment", Count: 3},
		{Word: "routing", Count: 1},
	}, trends)
}

func TestCountTrendsSkipsStopWordsAndShortWords(t *testing.T) {
	trends := CountTrends([]types.Post{{Title: "this that would have been were the cat"}}, 10)
	assert.Empty(t, trends)
}

func TestTopTrends(t *testing.T) {
	fp := &fakePlatform{top: []types.Post{{Title: "escalation escalation paths"}}}
	a, _ := newTestAgent(t, fp, chance.Always(0))

	trends, err := a.TopTrends(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []types.Trend{{Word: "escalation", Count: 2}, {Word: "paths", Count: 1}}, trends)
	assert.Equal(t, []string{"top/50"}, fp.args("posts"))
}
