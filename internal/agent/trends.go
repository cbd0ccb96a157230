package agent

import (
	"context"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/ibeckermayer/judgmentroutingbot/internal/platform"
	"github.com/ibeckermayer/judgmentroutingbot/internal/types"
)

const (
	trendPosts = 50
	trendCount = 10
)

var (
	nonWord   = regexp.MustCompile(`\W+`)
	stopWords = map[string]struct{}{}
)

func init() {
	for _, w := range strings.Fields("the a an and or but in on at to for of with is are was were been being " +
		"have has had do does did will would should could may might this that these those") {
		stopWords[w] = struct{}{}
	}
}

// CountTrends counts words longer than three characters outside the stop
// list across posts and returns the most frequent. Ties keep first-seen order.
func CountTrends(posts []types.Post, n int) []types.Trend {
	counts := make(map[string]int)
	var order []string
	for _, p := range posts {
		for _, w := range nonWord.Split(strings.ToLower(p.Title+" "+p.Body()), -1) {
			if len(w) <= 3 {
				continue
			}
			if _, stop := stopWords[w]; stop {
				continue
			}
			if counts[w] == 0 {
				order = append(order, w)
			}
			counts[w]++
		}
	}

	trends := make([]types.Trend, 0, len(order))
	for _, w := range order {
		trends = append(trends, types.Trend{Word: w, Count: counts[w]})
	}
	slices.SortStableFunc(trends, func(a, b types.Trend) int { return b.Count - a.Count })
	if len(trends) > n {
		trends = trends[:n]
	}
	return trends
}

// TopTrends fetches the top posts and counts the words in them
func (a *Agent) TopTrends(ctx context.Context) ([]types.Trend, error) {
	posts, err := a.platform.Posts(ctx, platform.SortTop, trendPosts)
	if err != nil {
		return nil, fmt.Errorf("fetch top posts: %w", err)
	}
	trends := CountTrends(posts, trendCount)
	a.log.WithField("trends", trends).Info("top trends")
	return trends, nil
}
