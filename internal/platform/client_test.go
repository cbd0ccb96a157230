package platform

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibeckermayer/judgmentroutingbot/internal/config"
	"github.com/ibeckermayer/judgmentroutingbot/internal/types"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func ok(data any) map[string]any {
	return map[string]any{"success": true, "data": data}
}

func fail(msg string) map[string]any {
	return map[string]any{"success": false, "error": msg}
}

func newTestClient(t *testing.T, mux *http.ServeMux) *Client {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	cfg := config.Default().Platform
	cfg.BaseURL = srv.URL + "/api/v1"
	cfg.HeartbeatURL = srv.URL + "/heartbeat.md"
	cfg.APIKey = "test-key"
	cfg.RequestSpacing = 0

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return New(cfg, logger)
}

func TestPostsSendsAuthAndQuery(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/posts", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "hot", r.URL.Query().Get("sort"))
		assert.Equal(t, "15", r.URL.Query().Get("limit"))
		writeJSON(w, http.StatusOK, ok([]types.Post{
			{ID: "p1", Title: "one", Author: "a", Score: 3, NumComments: 1},
			{ID: "p2", Title: "two", Content: "body", Author: "b"},
		}))
	})
	c := newTestClient(t, mux)

	posts, err := c.Posts(context.Background(), SortHot, 15)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "p1", posts[0].ID)
	assert.Equal(t, 1, posts[0].NumComments)
	assert.Equal(t, "body", posts[1].Body())
}

func TestCommunityPostsAndSubscribe(t *testing.T) {
	var subscribed, unsubscribed string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/submolts/{name}/posts", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, ok([]types.Post{{ID: r.PathValue("name") + "-1"}}))
	})
	mux.HandleFunc("POST /api/v1/submolts/{name}/subscribe", func(w http.ResponseWriter, r *http.Request) {
		subscribed = r.PathValue("name")
		writeJSON(w, http.StatusOK, ok(nil))
	})
	mux.HandleFunc("DELETE /api/v1/submolts/{name}/subscribe", func(w http.ResponseWriter, r *http.Request) {
		unsubscribed = r.PathValue("name")
		writeJSON(w, http.StatusOK, ok(nil))
	})
	c := newTestClient(t, mux)
	ctx := context.Background()

	posts, err := c.CommunityPosts(ctx, "llms", SortHot, 10)
	require.NoError(t, err)
	assert.Equal(t, "llms-1", posts[0].ID)

	require.NoError(t, c.Subscribe(ctx, "defi"))
	require.NoError(t, c.Unsubscribe(ctx, "agent-ops"))
	assert.Equal(t, "defi", subscribed)
	assert.Equal(t, "agent-ops", unsubscribed)
}

func TestAddCommentSendsParent(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/posts/{id}/comments", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		writeJSON(w, http.StatusCreated, ok(types.Comment{
			ID:       "c1",
			PostID:   r.PathValue("id"),
			ParentID: body["parent_id"],
			Text:     body["text"],
		}))
	})
	c := newTestClient(t, mux)

	comment, err := c.AddComment(context.Background(), "p9", "hello", "c0")
	require.NoError(t, err)
	assert.Equal(t, "p9", comment.PostID)
	assert.Equal(t, "c0", comment.ParentID)
	assert.Equal(t, "hello", comment.Text)
}

func TestErrorClassification(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/posts/{id}/upvote", func(w http.ResponseWriter, r *http.Request) {
		switch r.PathValue("id") {
		case "dup":
			writeJSON(w, http.StatusBadRequest, fail("You have already voted on this post"))
		case "slow":
			w.Header().Set("Retry-After", "30")
			writeJSON(w, http.StatusTooManyRequests, fail("Too many requests"))
		case "soft":
			writeJSON(w, http.StatusOK, fail("Rate limit exceeded, try later"))
		default:
			http.Error(w, "upstream exploded", http.StatusBadGateway)
		}
	})
	c := newTestClient(t, mux)
	ctx := context.Background()

	err := c.UpvotePost(ctx, "dup")
	require.Error(t, err)
	assert.True(t, IsDuplicate(err))
	assert.False(t, IsThrottled(err))

	err = c.UpvotePost(ctx, "slow")
	var perr *Error
	require.True(t, errors.As(err, &perr))
	assert.True(t, perr.IsThrottled())
	assert.Equal(t, 30*time.Second, perr.RetryAfter)

	err = c.UpvotePost(ctx, "soft")
	assert.True(t, IsThrottled(err))

	err = c.UpvotePost(ctx, "boom")
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, http.StatusBadGateway, perr.StatusCode)
	assert.Equal(t, "upstream exploded", perr.Message)
	assert.False(t, IsDuplicate(err))
	assert.False(t, IsThrottled(err))
}

func TestIsThrottledPlainErrors(t *testing.T) {
	assert.True(t, IsThrottled(errors.New("HTTP 429: Too Many Requests")))
	assert.False(t, IsThrottled(errors.New("connection reset")))
	assert.False(t, IsThrottled(nil))
	assert.True(t, IsDuplicate(fmt.Errorf("wrapped: %w", &Error{StatusCode: 409, Message: "Already following"})))
}

func TestIsDuplicatePlainErrors(t *testing.T) {
	assert.True(t, IsDuplicate(errors.New("already voted")))
	assert.True(t, IsDuplicate(errors.New("Already subscribed to m/general")))
	assert.True(t, IsDuplicate(fmt.Errorf("follow: %w", errors.New("already following bob"))))
	assert.False(t, IsDuplicate(errors.New("connection reset")))
	assert.False(t, IsDuplicate(nil))
}

func TestRegisterWithoutKey(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/agents/register", func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Bot", body["name"])
		writeJSON(w, http.StatusOK, ok(types.Registration{
			APIKey:           "new-key",
			ClaimURL:         "https://example.test/claim/x",
			VerificationCode: "reef-42",
		}))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	cfg := config.Default().Platform
	cfg.BaseURL = srv.URL + "/api/v1"
	cfg.RequestSpacing = 0
	c := New(cfg, nil)
	assert.False(t, c.HasCredentials())

	reg, err := c.Register(context.Background(), "Bot", "routes judgment")
	require.NoError(t, err)
	assert.Equal(t, "new-key", reg.APIKey)
	assert.Equal(t, "reef-42", reg.VerificationCode)
}

func TestStatusProfileAndHeartbeat(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/agents/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, ok(types.AgentStatus{Status: "pending_claim"}))
	})
	mux.HandleFunc("GET /api/v1/agents/me", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, ok(types.AgentProfile{Name: "JudgmentRoutingBot", Karma: 12}))
	})
	mux.HandleFunc("GET /heartbeat.md", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "# Heartbeat\nall good\n")
	})
	c := newTestClient(t, mux)
	ctx := context.Background()

	status, err := c.Status(ctx)
	require.NoError(t, err)
	assert.True(t, status.PendingClaim())

	profile, err := c.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12, profile.Karma)

	doc, err := c.Heartbeat(ctx)
	require.NoError(t, err)
	assert.Contains(t, doc, "all good")
}

func TestSearchQuery(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/search", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "judgment routing", r.URL.Query().Get("q"))
		assert.Equal(t, "all", r.URL.Query().Get("type"))
		writeJSON(w, http.StatusOK, ok([]SearchHit{{Type: "post", ID: "p1", Title: "Judgment routing 101"}}))
	})
	c := newTestClient(t, mux)

	hits, err := c.Search(context.Background(), "judgment routing", "", 20)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "post", hits[0].Type)
}

func TestRequestSpacing(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/agents/{name}/follow", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, ok(nil))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	cfg := config.Default().Platform
	cfg.BaseURL = srv.URL + "/api/v1"
	cfg.RequestSpacing = config.Duration(50 * time.Millisecond)
	c := New(cfg, nil)

	start := time.Now()
	for range 3 {
		require.NoError(t, c.Follow(context.Background(), "someone"))
	}
	assert.GreaterOrEqual(t, time.Since(start), 100*time.Millisecond)
}

func TestCanceledContext(t *testing.T) {
	c := newTestClient(t, http.NewServeMux())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Feed(ctx, SortNew, 5)
	assert.Error(t, err)
}
