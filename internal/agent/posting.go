package agent

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ibeckermayer/judgmentroutingbot/internal/types"
)

// ErrEmptyPost is returned when a manual post has no title or text
var ErrEmptyPost = errors.New("post title and text are required")

// PostTopic publishes the next topic from the rotation into the configured
// community, unless the throttle says it is too soon. The rotation advances
// on every attempt that reaches the platform.
func (a *Agent) PostTopic(ctx context.Context) (*types.Post, Outcome) {
	now := a.now()
	fields := logrus.Fields{"community": a.cfg.PostCommunity}

	var created *types.Post
	var outcome Outcome
	ran, _ := a.throttle.Do(now, func() error {
		topic := a.composer.Next()
		var err error
		fields["title"] = topic.Title
		outcome, err = a.exec.Run(ctx, "post", fields, func(ctx context.Context) error {
			var err error
			created, err = a.platform.CreatePost(ctx, types.NewPost{
				Title:     topic.Title,
				Content:   topic.Text,
				Community: a.cfg.PostCommunity,
			})
			return err
		})
		return err
	})
	if !ran {
		fields["wait"] = a.throttle.Remaining(now).String()
		a.exec.Skip("post", fields, "skipping post, too soon since last post")
		return nil, OutcomeSkipped
	}
	return created, outcome
}

// CreatePost publishes a caller-supplied post. community defaults to the
// configured default community. A throttled call returns (nil, nil) without
// contacting the platform; platform errors are returned as-is.
func (a *Agent) CreatePost(ctx context.Context, title, text, community string) (*types.Post, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(text) == "" {
		return nil, ErrEmptyPost
	}
	if community == "" {
		community = a.cfg.DefaultCommunity
	}

	now := a.now()
	fields := logrus.Fields{"community": community, "title": title}

	var created *types.Post
	ran, err := a.throttle.Do(now, func() error {
		_, err := a.exec.Run(ctx, "post", fields, func(ctx context.Context) error {
			var err error
			created, err = a.platform.CreatePost(ctx, types.NewPost{Title: title, Content: text, Community: community})
			return err
		})
		return err
	})
	if !ran {
		a.exec.Skip("post", fields, "skipping post creation due to frequency limit")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return created, nil
}
