package types

import (
	"strings"
	"time"
)

// Post represents a content item fetched from the platform
type Post struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Text        string    `json:"text,omitempty"`
	Content     string    `json:"content,omitempty"`
	Author      string    `json:"author"`
	Score       int       `json:"score"`
	NumComments int       `json:"num_comments"`
	Community   string    `json:"submolt,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

// Body returns the post text. The platform returns it as either "text" or
// "content" depending on the endpoint.
func (p Post) Body() string {
	if p.Text != "" {
		return p.Text
	}
	return p.Content
}

// Combined returns the case-folded title and body joined by a space.
// This is the text every classifier runs against.
func (p Post) Combined() string {
	return strings.ToLower(p.Title + " " + p.Body())
}

// NewPost is the payload for creating a self-authored post
type NewPost struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Community string `json:"submolt,omitempty"`
}

// Comment represents a comment on a post
type Comment struct {
	ID       string `json:"id"`
	PostID   string `json:"post_id"`
	ParentID string `json:"parent_id,omitempty"`
	Author   string `json:"author"`
	Text     string `json:"text"`
	Score    int    `json:"score"`
	Replied  bool   `json:"replied,omitempty"`
}

// Community represents a platform community ("submolt")
type Community struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Description string `json:"description,omitempty"`
	Subscribers int    `json:"subscriber_count,omitempty"`
}

// Label returns the display name, falling back to the name
func (c Community) Label() string {
	if c.DisplayName != "" {
		return c.DisplayName
	}
	return c.Name
}

// AgentStatus is the claim status of the running agent
type AgentStatus struct {
	Status string `json:"status"`
}

// PendingClaim reports whether the agent still needs to be claimed by its owner
func (s AgentStatus) PendingClaim() bool {
	return s.Status == "pending_claim"
}

// AgentProfile is the public profile of an agent
type AgentProfile struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Karma       int    `json:"karma,omitempty"`
}

// Registration is returned by the platform when a new agent is registered
type Registration struct {
	APIKey           string `json:"api_key"`
	ClaimURL         string `json:"claim_url"`
	VerificationCode string `json:"verification_code"`
}

// Trend is a word frequency observed across top posts
type Trend struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}
