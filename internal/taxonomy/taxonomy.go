// Package taxonomy holds the static category -> keyword tables used to
// classify posts. Tables are built once and never mutated afterwards.
package taxonomy

import "fmt"

// Category is a topic tag assigned to a post when one of its keywords appears
type Category string

// Judgment routing family
const (
	Decisions      Category = "decisions"
	Automation     Category = "automation"
	Authority      Category = "authority"
	Responsibility Category = "responsibility"
	Errors         Category = "errors"
	HumanInLoop    Category = "humanInLoop"
	Trust          Category = "trust"
	Risk           Category = "risk"
)

// Civic economics family
const (
	Value           Category = "value"
	Externality     Category = "externality"
	Obligation      Category = "obligation"
	Platform        Category = "platform"
	Intermediary    Category = "intermediary"
	Asymmetry       Category = "asymmetry"
	TrustExtraction Category = "trustExtraction"
	Market          Category = "market"
	Regulation      Category = "regulation"
	Temporal        Category = "temporal"
)

// Entry binds a category to its trigger keywords
type Entry struct {
	Category Category
	Keywords []string
}

// Family is a named, ordered group of categories
type Family struct {
	Name    string
	Entries []Entry
}

// Taxonomy is an ordered list of keyword families. Iteration order is
// stable so that matching is deterministic.
type Taxonomy struct {
	families []Family
	index    map[Category]int
}

// New builds a taxonomy from the given families. Category names must be
// unique across families and every category needs at least one keyword.
func New(families ...Family) (*Taxonomy, error) {
	t := &Taxonomy{index: make(map[Category]int)}
	pos := 0
	for _, f := range families {
		copied := Family{Name: f.Name, Entries: make([]Entry, 0, len(f.Entries))}
		for _, e := range f.Entries {
			if _, dup := t.index[e.Category]; dup {
				return nil, fmt.Errorf("duplicate category %q in family %s", e.Category, f.Name)
			}
			if len(e.Keywords) == 0 {
				return nil, fmt.Errorf("category %q has no keywords", e.Category)
			}
			kws := make([]string, len(e.Keywords))
			copy(kws, e.Keywords)
			copied.Entries = append(copied.Entries, Entry{Category: e.Category, Keywords: kws})
			t.index[e.Category] = pos
			pos++
		}
		t.families = append(t.families, copied)
	}
	return t, nil
}

// MustNew is like New but panics on invalid input. Used for the built-in tables.
func MustNew(families ...Family) *Taxonomy {
	t, err := New(families...)
	if err != nil {
		panic(err)
	}
	return t
}

// Families returns the families in declaration order
func (t *Taxonomy) Families() []Family {
	return t.families
}

// Entries returns every category entry, family by family
func (t *Taxonomy) Entries() []Entry {
	var out []Entry
	for _, f := range t.families {
		out = append(out, f.Entries...)
	}
	return out
}

// Has reports whether the category is part of the taxonomy
func (t *Taxonomy) Has(c Category) bool {
	_, ok := t.index[c]
	return ok
}

// Order returns the position of a category in iteration order, or -1
func (t *Taxonomy) Order(c Category) int {
	if i, ok := t.index[c]; ok {
		return i
	}
	return -1
}

// JudgmentFamily covers decision authority, automation and oversight
var JudgmentFamily = Family{
	Name: "judgment",
	Entries: []Entry{
		{Decisions, []string{"decide", "decision", "choose", "choice", "determine"}},
		{Automation, []string{"automate", "automated", "automation", "ai", "algorithm", "agent", "autonomous"}},
		{Authority, []string{"authority", "permission", "approval", "authorize", "delegate", "escalate"}},
		{Responsibility, []string{"responsible", "accountability", "accountable", "blame", "liable", "owner"}},
		{Errors, []string{"error", "mistake", "wrong", "failed", "failure", "bug", "broke"}},
		{HumanInLoop, []string{"review", "override", "intervene", "manual", "human", "check"}},
		{Trust, []string{"trust", "confidence", "reliable", "verify", "validation"}},
		{Risk, []string{"risk", "critical", "dangerous", "safety", "stakes", "consequence"}},
	},
}

// CivicEconomicsFamily covers value capture, externalities and intermediation
var CivicEconomicsFamily = Family{
	Name: "civic-economics",
	Entries: []Entry{
		{Value, []string{"value", "capture", "extract", "profit", "surplus", "cost", "price", "pay", "compensation"}},
		{Externality, []string{"external", "externalize", "burden", "shift", "push", "transfer", "dump"}},
		{Obligation, []string{"obligation", "residual", "remain", "left", "stuck", "hold", "bear", "carry"}},
		{Platform, []string{"platform", "gig", "uber", "doordash", "airbnb", "driver", "worker", "delivery"}},
		{Intermediary, []string{"middleman", "intermediary", "broker", "reseller", "scalper", "fee", "commission"}},
		{Asymmetry, []string{"asymmetry", "information", "compute", "algorithm", "data", "model", "transparency"}},
		{TrustExtraction, []string{"trust", "signal", "credible", "reliable", "believe", "confidence", "epistemic"}},
		{Market, []string{"market", "prediction", "bet", "derivative", "futures", "speculation", "trade"}},
		{Regulation, []string{"regulate", "law", "rule", "comply", "enforce", "ambiguity", "loophole", "reframe"}},
		{Temporal, []string{"time", "temporal", "delay", "later", "future", "exit", "leave", "remain"}},
	},
}

// Default returns the built-in taxonomy: judgment routing first, then civic economics
func Default() *Taxonomy {
	return defaultTaxonomy
}

var defaultTaxonomy = MustNew(JudgmentFamily, CivicEconomicsFamily)
