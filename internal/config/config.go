package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

const appName = "judgmentroutingbot"

// Config holds all application configuration
type Config struct {
	Version    int              `toml:"version"`
	Platform   PlatformConfig   `toml:"platform"`
	Behavior   BehaviorConfig   `toml:"behavior"`
	Engagement EngagementConfig `toml:"engagement"`
	Server     ServerConfig     `toml:"server"`
	Log        LogConfig        `toml:"log"`
}

type PlatformConfig struct {
	APIKey         string   `toml:"api_key"`
	BaseURL        string   `toml:"base_url"`
	HeartbeatURL   string   `toml:"heartbeat_url"`
	RequestSpacing Duration `toml:"request_spacing"`
	RequestTimeout Duration `toml:"request_timeout"`
	// AgentName is our own name on the platform; we never follow ourselves
	AgentName string `toml:"agent_name"`
}

type BehaviorConfig struct {
	PostFrequencyMinutes   int      `toml:"post_frequency_minutes"`
	CommentProbability     float64  `toml:"comment_probability"`
	VoteProbability        float64  `toml:"vote_probability"`
	PostAttemptProbability float64  `toml:"post_attempt_probability"`
	FeedLimit              int      `toml:"feed_limit"`
	FeedSample             int      `toml:"feed_sample"`
	CommunityLimit         int      `toml:"community_limit"`
	CommunitySample        int      `toml:"community_sample"`
	ActionDelay            Duration `toml:"action_delay"`
	SetupDelay             Duration `toml:"setup_delay"`
	SetupPhaseDelay        Duration `toml:"setup_phase_delay"`
	CycleInterval          Duration `toml:"cycle_interval"`
	StartupDelay           Duration `toml:"startup_delay"`
	HeartbeatInterval      Duration `toml:"heartbeat_interval"`
	TargetCommunities      []string `toml:"target_communities"`
	PostCommunity          string   `toml:"post_community"`
	DefaultCommunity       string   `toml:"default_community"`
}

type EngagementConfig struct {
	ScoreThreshold              int     `toml:"score_threshold"`
	CommentThreshold            int     `toml:"comment_threshold"`
	WeakMatchCommentProbability float64 `toml:"weak_match_comment_probability"`
}

type ServerConfig struct {
	Port string `toml:"port"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// PostInterval is the minimum time between two self-authored posts
func (b BehaviorConfig) PostInterval() time.Duration {
	return time.Duration(b.PostFrequencyMinutes) * time.Minute
}

// Default returns a Config with sensible defaults
func Default() *Config {
	return &Config{
		Version: 1,
		Platform: PlatformConfig{
			BaseURL:        "https://www.moltbook.com/api/v1",
			HeartbeatURL:   "https://www.moltbook.com/heartbeat.md",
			RequestSpacing: Duration(600 * time.Millisecond),
			RequestTimeout: Duration(30 * time.Second),
			AgentName:      "JudgmentRoutingBot",
		},
		Behavior: BehaviorConfig{
			PostFrequencyMinutes:   60,
			CommentProbability:     0.35,
			VoteProbability:        0.5,
			PostAttemptProbability: 0.3,
			FeedLimit:              15,
			FeedSample:             5,
			CommunityLimit:         10,
			CommunitySample:        4,
			ActionDelay:            Duration(2 * time.Second),
			SetupDelay:             Duration(time.Second),
			SetupPhaseDelay:        Duration(2 * time.Second),
			CycleInterval:          Duration(10 * time.Minute),
			StartupDelay:           Duration(5 * time.Second),
			HeartbeatInterval:      Duration(4 * time.Hour),
			TargetCommunities: []string{
				"agent-autonomy",
				"agent-economy",
				"predictionmarkets",
				"durablesystems",
				"assembly",
				"agent",
				"artificial-intelligence",
				"llms",
				"multi-agent",
				"computationalethics",
				"defi",
				"agent-ops",
				"hivemind",
				"experiments",
			},
			PostCommunity:    "artificial-intelligence",
			DefaultCommunity: "general",
		},
		Engagement: EngagementConfig{
			ScoreThreshold:              8,
			CommentThreshold:            4,
			WeakMatchCommentProbability: 0.4,
		},
		Server: ServerConfig{
			Port: "3000",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks ranges that would otherwise produce nonsense behavior
func (c *Config) Validate() error {
	var errs []error
	probs := map[string]float64{
		"behavior.comment_probability":              c.Behavior.CommentProbability,
		"behavior.vote_probability":                 c.Behavior.VoteProbability,
		"behavior.post_attempt_probability":         c.Behavior.PostAttemptProbability,
		"engagement.weak_match_comment_probability": c.Engagement.WeakMatchCommentProbability,
	}
	for name, p := range probs {
		if p < 0 || p > 1 {
			errs = append(errs, fmt.Errorf("%s must be within [0, 1], got %v", name, p))
		}
	}
	if c.Behavior.PostFrequencyMinutes < 0 {
		errs = append(errs, fmt.Errorf("behavior.post_frequency_minutes must not be negative"))
	}
	if c.Behavior.CycleInterval <= 0 {
		errs = append(errs, fmt.Errorf("behavior.cycle_interval must be positive"))
	}
	if c.Behavior.HeartbeatInterval <= 0 {
		errs = append(errs, fmt.Errorf("behavior.heartbeat_interval must be positive"))
	}
	if c.Behavior.FeedLimit <= 0 || c.Behavior.CommunityLimit <= 0 {
		errs = append(errs, fmt.Errorf("behavior feed and community limits must be positive"))
	}
	if c.Platform.BaseURL == "" {
		errs = append(errs, fmt.Errorf("platform.base_url is required"))
	}
	return errors.Join(errs...)
}

// ConfigDir returns the platform-appropriate config directory
func ConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, appName), nil
}

// ConfigPath returns the full path to the config file
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads config from disk on top of the defaults
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads config from path on top of the defaults. Keys missing from
// the file keep their default values.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes config to disk
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveFile(path)
}

// SaveFile writes config to path, creating the directory if needed
func (c *Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(c)
}
