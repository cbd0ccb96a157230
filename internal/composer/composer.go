// Package composer produces the bot's self-authored text: the rotating
// topic posts and the plain-text classification reports printed by the CLI.
package composer

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"text/template"
	"time"

	"github.com/ibeckermayer/judgmentroutingbot/internal/analyzer"
	"github.com/ibeckermayer/judgmentroutingbot/internal/types"
)

// Topic is a ready-to-publish post
type Topic struct {
	Title string
	Text  string
}

// Composer rotates through a fixed list of topics and renders reports
type Composer struct {
	mu       sync.Mutex
	topics   []Topic
	index    int
	template *template.Template
}

// New creates a composer over topics
func New(topics []Topic) (*Composer, error) {
	if len(topics) == 0 {
		return nil, fmt.Errorf("no topics to compose from")
	}
	for i, t := range topics {
		if strings.TrimSpace(t.Title) == "" || strings.TrimSpace(t.Text) == "" {
			return nil, fmt.Errorf("topic %d has an empty title or text", i)
		}
	}

	tmpl, err := template.New("report").Funcs(template.FuncMap{
		"inc":      func(i int) int { return i + 1 },
		"truncate": truncate,
		"tier":     formatTier,
	}).Parse(reportTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}

	return &Composer{
		topics:   append([]Topic(nil), topics...),
		template: tmpl,
	}, nil
}

// Default returns a composer over the built-in topics
func Default() *Composer {
	c, err := New(defaultTopics)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of topics in the rotation
func (c *Composer) Len() int {
	return len(c.topics)
}

// Next returns the next topic and advances the rotation
func (c *Composer) Next() Topic {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.topics[c.index%len(c.topics)]
	c.index++
	return t
}

// Peek returns the topic Next would return without advancing
func (c *Composer) Peek() Topic {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.topics[c.index%len(c.topics)]
}

// ReportItem is one classified post, optionally with a sample response
type ReportItem struct {
	Analysis analyzer.Analysis
	Response string
}

// ReportData is the template data structure
type ReportData struct {
	Title  string
	Date   string
	Items  []ReportItem
	Trends []types.Trend
}

// Report renders classified posts and trends as plain text
func (c *Composer) Report(title string, items []ReportItem, trends []types.Trend) (string, error) {
	data := ReportData{
		Title:  title,
		Date:   time.Now().Format("Monday, January 2 15:04"),
		Items:  items,
		Trends: trends,
	}

	var buf bytes.Buffer
	if err := c.template.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}
	return buf.String(), nil
}

func truncate(maxLen int, s string) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func formatTier(t *analyzer.Tier) string {
	if t == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *t)
}

const reportTemplate = `{{.Title}}
{{.Date}}
{{range $i, $it := .Items}}
{{inc $i}}. {{truncate 80 $it.Analysis.Post.Title}}{{with $it.Analysis.Post.Author}} by {{.}}{{end}}
   score {{$it.Analysis.Post.Score}}, comments {{$it.Analysis.Post.NumComments}}
   categories: {{range $j, $c := $it.Analysis.Match.Categories}}{{if $j}}, {{end}}{{$c}}{{else}}none{{end}} ({{$it.Analysis.Match.Hits}} hits)
   decision:   {{$it.Analysis.Decision.Reason}} [{{$it.Analysis.Decision.Rule}}] endorse={{$it.Analysis.Decision.Endorse}} respond={{$it.Analysis.Decision.Respond}} tier={{tier $it.Analysis.Decision.Tier}}
{{- with $it.Response}}
   response:   {{.}}
{{- end}}
{{end}}
{{- if .Trends}}
Top trends:
{{range .Trends}}  {{.Word}} ({{.Count}})
{{end}}
{{- end}}`
