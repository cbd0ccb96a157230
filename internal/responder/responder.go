// Package responder turns an engagement decision into comment text picked
// from a bank of canned response pools.
package responder

import (
	"fmt"

	"github.com/ibeckermayer/judgmentroutingbot/internal/analyzer"
	"github.com/ibeckermayer/judgmentroutingbot/internal/chance"
	"github.com/ibeckermayer/judgmentroutingbot/internal/taxonomy"
	"github.com/ibeckermayer/judgmentroutingbot/internal/types"
)

// Route selects pools for a category combination. With Split set one of
// Pools is chosen uniformly first; otherwise the pools are merged.
type Route struct {
	Name  string
	When  func(m analyzer.MatchResult) bool
	Pools []string
	Split bool
}

// Bank holds the response pools and the ordered routes into them. It is
// immutable after construction.
type Bank struct {
	pools  map[string][]string
	routes []Route
	rand   chance.Source
}

// NewBank validates that every pool a route names exists and is non-empty,
// and that the fallback pool is non-empty.
func NewBank(pools map[string][]string, routes []Route, src chance.Source) (*Bank, error) {
	if len(pools[PoolFallback]) == 0 {
		return nil, fmt.Errorf("fallback pool %q must not be empty", PoolFallback)
	}
	for _, r := range routes {
		if len(r.Pools) == 0 {
			return nil, fmt.Errorf("route %s names no pools", r.Name)
		}
		for _, name := range r.Pools {
			if len(pools[name]) == 0 {
				return nil, fmt.Errorf("route %s: pool %q is missing or empty", r.Name, name)
			}
		}
	}

	copied := make(map[string][]string, len(pools))
	for name, lines := range pools {
		copied[name] = append([]string(nil), lines...)
	}
	return &Bank{pools: copied, routes: routes, rand: src}, nil
}

// New returns the built-in bank
func New(src chance.Source) *Bank {
	b, err := NewBank(defaultPools(), DefaultRoutes(), src)
	if err != nil {
		panic(err)
	}
	return b
}

// Pool returns the lines of a named pool
func (b *Bank) Pool(name string) []string {
	return b.pools[name]
}

// Routes returns the routes in lookup order
func (b *Bank) Routes() []Route {
	return b.routes
}

// Select returns the first route matching the decision's categories, or a
// route onto the fallback pool
func (b *Bank) Select(d analyzer.Decision) Route {
	m := analyzer.MatchResult{Categories: d.Categories}
	for _, r := range b.routes {
		if r.When(m) {
			return r
		}
	}
	return Route{Name: PoolFallback, Pools: []string{PoolFallback, PoolPublicMechanics}}
}

// Generate returns comment text for post. It never returns an empty string.
func (b *Bank) Generate(post types.Post, d analyzer.Decision) string {
	r := b.Select(d)
	if r.Split {
		return chance.Pick(b.rand, b.pools[chance.Pick(b.rand, r.Pools)])
	}

	var lines []string
	for _, name := range r.Pools {
		lines = append(lines, b.pools[name]...)
	}
	if len(lines) == 0 {
		lines = b.pools[PoolFallback]
	}
	return chance.Pick(b.rand, lines)
}

func has(cs ...taxonomy.Category) func(m analyzer.MatchResult) bool {
	return func(m analyzer.MatchResult) bool { return m.All(cs...) }
}

func hasAny(cs ...taxonomy.Category) func(m analyzer.MatchResult) bool {
	return func(m analyzer.MatchResult) bool { return m.Any(cs...) }
}

// DefaultRoutes is the lookup order: civic economics combinations first,
// then judgment routing, most specific first. Value on its own is checked
// last.
func DefaultRoutes() []Route {
	return []Route{
		{Name: "value-distribution", When: has(taxonomy.Value, taxonomy.Externality), Pools: []string{PoolValueDistribution}},
		{Name: "platform", When: has(taxonomy.Platform), Pools: []string{PoolPlatforms}},
		{Name: "intermediary", When: has(taxonomy.Intermediary), Pools: []string{PoolIntermediaries}},
		{Name: "asymmetry", When: has(taxonomy.Asymmetry), Pools: []string{PoolAsymmetry}},
		{Name: "trust-market", When: hasAny(taxonomy.Market, taxonomy.TrustExtraction), Pools: []string{PoolTrust, PoolMarkets}, Split: true},
		{Name: "regulation", When: has(taxonomy.Regulation), Pools: []string{PoolRegulation, PoolCompliance}},
		{Name: "temporal", When: hasAny(taxonomy.Temporal, taxonomy.Obligation), Pools: []string{PoolTemporal}},

		{Name: "automation-authority", When: has(taxonomy.Automation, taxonomy.Authority), Pools: []string{PoolAutomationAuthority}},
		{Name: "accountability", When: has(taxonomy.Responsibility), Pools: []string{PoolAccountability, PoolReceipts}},
		{Name: "automation-errors", When: has(taxonomy.Errors, taxonomy.Automation), Pools: []string{PoolErrors}},
		{Name: "human-in-loop", When: has(taxonomy.HumanInLoop), Pools: []string{PoolHumanInLoop}},
		{
			Name:  "decision-engineering",
			When:  has(taxonomy.Decisions, taxonomy.Automation),
			Pools: []string{PoolDecisionEngineering, PoolAuthorityChains, PoolEscalation},
		},
		{Name: "authority", When: has(taxonomy.Authority), Pools: []string{PoolAuthorityChains}},
		{Name: "trust-autonomy", When: hasAny(taxonomy.Trust, taxonomy.Risk), Pools: []string{PoolTrust, PoolBoundedAutonomy, PoolConstraints}},
		{Name: "profit", When: has(taxonomy.Value), Pools: []string{PoolProfit}},
	}
}
