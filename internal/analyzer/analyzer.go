package analyzer

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ibeckermayer/judgmentroutingbot/internal/chance"
	"github.com/ibeckermayer/judgmentroutingbot/internal/config"
	"github.com/ibeckermayer/judgmentroutingbot/internal/taxonomy"
	"github.com/ibeckermayer/judgmentroutingbot/internal/types"
)

// Analysis is the classification of a single post
type Analysis struct {
	Post     types.Post  `json:"post"`
	Match    MatchResult `json:"match"`
	Decision Decision    `json:"decision"`
}

// Analyzer runs posts through the matcher and the rule engine
type Analyzer struct {
	matcher   *Matcher
	engine    *RuleEngine
	batchSize int
}

// New creates an analyzer over tx. src feeds the probabilistic rules.
func New(cfg config.EngagementConfig, tx *taxonomy.Taxonomy, src chance.Source) *Analyzer {
	return &Analyzer{
		matcher:   NewMatcher(tx),
		engine:    NewRuleEngine(cfg, src),
		batchSize: 10,
	}
}

// Analyze classifies one post
func (a *Analyzer) Analyze(post types.Post) Analysis {
	match := a.matcher.Match(post.Combined())
	return Analysis{
		Post:     post,
		Match:    match,
		Decision: a.engine.Decide(post, match),
	}
}

// Matcher returns the underlying category matcher
func (a *Analyzer) Matcher() *Matcher {
	return a.matcher
}

// AnalyzePosts classifies posts in concurrent batches. Results keep the
// input order.
func (a *Analyzer) AnalyzePosts(ctx context.Context, posts []types.Post) ([]Analysis, error) {
	if len(posts) == 0 {
		return nil, nil
	}

	numBatches := (len(posts) + a.batchSize - 1) / a.batchSize
	results := make([][]Analysis, numBatches)

	g, ctx := errgroup.WithContext(ctx)

	for i := 0; i < len(posts); i += a.batchSize {
		batchIdx := i / a.batchSize
		batch := posts[i:min(i+a.batchSize, len(posts))]

		g.Go(func() error {
			out := make([]Analysis, 0, len(batch))
			for _, p := range batch {
				if err := ctx.Err(); err != nil {
					return fmt.Errorf("failed to analyze batch %d: %w", batchIdx, err)
				}
				out = append(out, a.Analyze(p))
			}
			results[batchIdx] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []Analysis
	for _, batchResult := range results {
		all = append(all, batchResult...)
	}
	return all, nil
}
