package analyzer

import (
	"fmt"

	"github.com/ibeckermayer/judgmentroutingbot/internal/chance"
	"github.com/ibeckermayer/judgmentroutingbot/internal/config"
	"github.com/ibeckermayer/judgmentroutingbot/internal/taxonomy"
	"github.com/ibeckermayer/judgmentroutingbot/internal/types"
)

// Decision is the engagement outcome for a single post
type Decision struct {
	Endorse    bool                `json:"endorse"`
	Respond    bool                `json:"respond"`
	Reason     string              `json:"reason"`
	Rule       string              `json:"rule"`
	Tier       *Tier               `json:"tier"`
	Categories []taxonomy.Category `json:"categories"`
}

// ReasonNotRelevant is the reason carried by the fallthrough decision
const ReasonNotRelevant = "Not relevant"

// Signals is everything a rule may look at
type Signals struct {
	Post          types.Post
	Text          string
	Match         MatchResult
	HasEngagement bool
}

// Rule pairs a predicate with the decision it produces
type Rule struct {
	Name    string
	When    func(s Signals) bool
	Outcome func(s Signals) Decision
}

// RuleEngine evaluates an ordered rule list; the first rule whose predicate
// holds decides
type RuleEngine struct {
	rules []Rule
	cfg   config.EngagementConfig
	rand  chance.Source
}

// NewRuleEngine creates an engine over the canonical rule list
func NewRuleEngine(cfg config.EngagementConfig, src chance.Source) *RuleEngine {
	e := &RuleEngine{cfg: cfg, rand: src}
	e.rules = e.defaultRules()
	return e
}

// Rules returns the rule list in evaluation order
func (e *RuleEngine) Rules() []Rule {
	return e.rules
}

// HasEngagement reports whether the post's popularity crosses the configured thresholds
func (e *RuleEngine) HasEngagement(p types.Post) bool {
	return p.Score > e.cfg.ScoreThreshold || p.NumComments > e.cfg.CommentThreshold
}

// Decide runs the rules against a post and its match result
func (e *RuleEngine) Decide(post types.Post, match MatchResult) Decision {
	s := Signals{
		Post:          post,
		Text:          post.Combined(),
		Match:         match,
		HasEngagement: e.HasEngagement(post),
	}
	for _, r := range e.rules {
		if r.When(s) {
			d := r.Outcome(s)
			d.Rule = r.Name
			return d
		}
	}
	return Decision{Reason: ReasonNotRelevant, Rule: "default", Categories: []taxonomy.Category{}}
}

// engage builds an unconditional endorse+respond outcome
func engage(reason string, withTier bool) func(s Signals) Decision {
	return func(s Signals) Decision {
		d := Decision{
			Endorse:    true,
			Respond:    true,
			Reason:     reason,
			Categories: s.Match.Categories,
		}
		if withTier {
			d.Tier = InferTier(s.Text)
		}
		return d
	}
}

func hasAll(cs ...taxonomy.Category) func(s Signals) bool {
	return func(s Signals) bool { return s.Match.All(cs...) }
}

func hasAny(cs ...taxonomy.Category) func(s Signals) bool {
	return func(s Signals) bool { return s.Match.Any(cs...) }
}

func (e *RuleEngine) defaultRules() []Rule {
	return []Rule{
		// civic economics
		{
			Name:    "value-distribution",
			When:    hasAll(taxonomy.Value, taxonomy.Externality),
			Outcome: engage("Value distribution question", false),
		},
		{
			Name: "platform-economics",
			When: func(s Signals) bool {
				return s.Match.Has(taxonomy.Platform) && s.Match.Any(taxonomy.Value, taxonomy.Obligation)
			},
			Outcome: engage("Platform economics discussion", false),
		},
		{
			Name:    "intermediation",
			When:    hasAny(taxonomy.Intermediary),
			Outcome: engage("Intermediation question", false),
		},
		{
			Name:    "calculative-asymmetry",
			When:    hasAny(taxonomy.Asymmetry),
			Outcome: engage("Calculative asymmetry discussion", false),
		},
		{
			Name:    "trust-market",
			When:    hasAll(taxonomy.Market, taxonomy.TrustExtraction),
			Outcome: engage("Trust/market intersection", false),
		},

		// judgment routing
		{
			Name:    "automated-decisions",
			When:    hasAll(taxonomy.Decisions, taxonomy.Automation),
			Outcome: engage("Automated decision-making discussion", true),
		},
		{
			Name:    "authority-accountability",
			When:    hasAny(taxonomy.Authority, taxonomy.Responsibility),
			Outcome: engage("Authority/accountability question", true),
		},

		// generic
		{
			Name: "multi-aspect",
			When: func(s Signals) bool {
				return s.Match.Hits >= 2 && s.HasEngagement
			},
			Outcome: engage("Multi-aspect discussion", true),
		},
		{
			Name: "relevant-aspect",
			When: func(s Signals) bool {
				return !s.Match.Empty() && s.HasEngagement
			},
			Outcome: func(s Signals) Decision {
				return Decision{
					Endorse:    true,
					Respond:    chance.Hit(e.rand, e.cfg.WeakMatchCommentProbability),
					Reason:     fmt.Sprintf("Relevant aspect: %s", s.Match.Categories[0]),
					Categories: s.Match.Categories,
				}
			},
		},
	}
}
