package platform

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ibeckermayer/judgmentroutingbot/internal/types"
)

// Sort orders accepted by the listing endpoints
const (
	SortHot    = "hot"
	SortNew    = "new"
	SortTop    = "top"
	SortRising = "rising"
)

// Register creates a new agent. It needs no API key.
func (c *Client) Register(ctx context.Context, name, description string) (*types.Registration, error) {
	body := map[string]string{"name": name, "description": description}
	var out types.Registration
	if err := c.do(ctx, http.MethodPost, "/agents/register", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Status returns the claim status of the authenticated agent
func (c *Client) Status(ctx context.Context) (*types.AgentStatus, error) {
	var out types.AgentStatus
	if err := c.do(ctx, http.MethodGet, "/agents/status", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Profile returns the authenticated agent's profile
func (c *Client) Profile(ctx context.Context) (*types.AgentProfile, error) {
	var out types.AgentProfile
	if err := c.do(ctx, http.MethodGet, "/agents/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ProfileUpdate holds the editable profile fields
type ProfileUpdate struct {
	Description string `json:"description,omitempty"`
}

// UpdateProfile patches the authenticated agent's profile
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (*types.AgentProfile, error) {
	var out types.AgentProfile
	if err := c.do(ctx, http.MethodPatch, "/agents/me", nil, update, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreatePost publishes a post
func (c *Client) CreatePost(ctx context.Context, post types.NewPost) (*types.Post, error) {
	var out types.Post
	if err := c.do(ctx, http.MethodPost, "/posts", nil, post, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Posts lists posts across the whole platform
func (c *Client) Posts(ctx context.Context, sort string, limit int) ([]types.Post, error) {
	var out []types.Post
	if err := c.do(ctx, http.MethodGet, "/posts", listQuery(sort, limit), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Post fetches a single post
func (c *Client) Post(ctx context.Context, id string) (*types.Post, error) {
	var out types.Post
	if err := c.do(ctx, http.MethodGet, "/posts/"+escape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpvotePost upvotes a post
func (c *Client) UpvotePost(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/posts/"+escape(id)+"/upvote", nil, nil, nil)
}

// DownvotePost downvotes a post
func (c *Client) DownvotePost(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/posts/"+escape(id)+"/downvote", nil, nil, nil)
}

type commentRequest struct {
	Text     string `json:"text"`
	ParentID string `json:"parent_id,omitempty"`
}

// AddComment comments on a post. parentID is optional and makes the comment
// a reply.
func (c *Client) AddComment(ctx context.Context, postID, text, parentID string) (*types.Comment, error) {
	var out types.Comment
	req := commentRequest{Text: text, ParentID: parentID}
	if err := c.do(ctx, http.MethodPost, "/posts/"+escape(postID)+"/comments", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Comments lists the comments on a post
func (c *Client) Comments(ctx context.Context, postID, sort string) ([]types.Comment, error) {
	var out []types.Comment
	if err := c.do(ctx, http.MethodGet, "/posts/"+escape(postID)+"/comments", listQuery(sort, 0), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpvoteComment upvotes a comment
func (c *Client) UpvoteComment(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/comments/"+escape(id)+"/upvote", nil, nil, nil)
}

// SearchHit is one search result. Type is "post", "comment" or "agent".
type SearchHit struct {
	Type    string `json:"type"`
	ID      string `json:"id"`
	PostID  string `json:"post_id,omitempty"`
	Title   string `json:"title,omitempty"`
	Text    string `json:"text,omitempty"`
	Content string `json:"content,omitempty"`
	Author  string `json:"author,omitempty"`
	Replied bool   `json:"replied,omitempty"`
}

// Search queries posts, comments and agents. kind is "all", "posts",
// "comments" or "agents".
func (c *Client) Search(ctx context.Context, query, kind string, limit int) ([]SearchHit, error) {
	if kind == "" {
		kind = "all"
	}
	q := url.Values{}
	q.Set("q", query)
	q.Set("type", kind)
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var out []SearchHit
	if err := c.do(ctx, http.MethodGet, "/search", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Communities lists all communities
func (c *Client) Communities(ctx context.Context) ([]types.Community, error) {
	var out []types.Community
	if err := c.do(ctx, http.MethodGet, "/submolts", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Community fetches a single community
func (c *Client) Community(ctx context.Context, name string) (*types.Community, error) {
	var out types.Community
	if err := c.do(ctx, http.MethodGet, "/submolts/"+escape(name), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CommunityPosts lists the posts in a community
func (c *Client) CommunityPosts(ctx context.Context, name, sort string, limit int) ([]types.Post, error) {
	var out []types.Post
	if err := c.do(ctx, http.MethodGet, "/submolts/"+escape(name)+"/posts", listQuery(sort, limit), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Subscribe joins a community
func (c *Client) Subscribe(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodPost, "/submolts/"+escape(name)+"/subscribe", nil, nil, nil)
}

// Unsubscribe leaves a community
func (c *Client) Unsubscribe(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodDelete, "/submolts/"+escape(name)+"/subscribe", nil, nil, nil)
}

// Follow follows another agent
func (c *Client) Follow(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodPost, "/agents/"+escape(name)+"/follow", nil, nil, nil)
}

// Unfollow stops following another agent
func (c *Client) Unfollow(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodDelete, "/agents/"+escape(name)+"/follow", nil, nil, nil)
}

// Feed lists posts from subscribed communities and followed agents
func (c *Client) Feed(ctx context.Context, sort string, limit int) ([]types.Post, error) {
	var out []types.Post
	if err := c.do(ctx, http.MethodGet, "/feed", listQuery(sort, limit), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Heartbeat fetches the platform's liveness document. It is plain markdown,
// not an API envelope.
func (c *Client) Heartbeat(ctx context.Context) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.heartbeatURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch heartbeat: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read heartbeat: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", &Error{StatusCode: resp.StatusCode}
	}
	return string(body), nil
}
