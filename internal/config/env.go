package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// LoadEnv loads environment variables from local .env files if present.
// Values already set in the process environment win.
func LoadEnv(logger logrus.FieldLogger) {
	files := []string{".env", ".env.local"}
	loaded := make([]string, 0, len(files))
	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			if logger != nil {
				logger.WithError(err).Warnf("Failed to load %s", file)
			}
			continue
		}
		loaded = append(loaded, file)
	}
	if logger == nil {
		return
	}
	if len(loaded) == 0 {
		logger.Debug("No local env files loaded; relying on process environment")
	} else {
		logger.Debugf("Loaded env files: %s", strings.Join(loaded, ", "))
	}
}

// ApplyEnv overrides config values with the environment variables the bot
// has always honored
func (c *Config) ApplyEnv() {
	c.Platform.APIKey = GetEnv("MOLTBOOK_API_KEY", c.Platform.APIKey)
	c.Platform.BaseURL = GetEnv("MOLTBOOK_BASE_URL", c.Platform.BaseURL)
	c.Platform.AgentName = GetEnv("AGENT_NAME", c.Platform.AgentName)
	c.Behavior.PostFrequencyMinutes = GetEnvInt("POST_FREQUENCY_MINUTES", c.Behavior.PostFrequencyMinutes)
	c.Behavior.CommentProbability = GetEnvFloat("COMMENT_PROBABILITY", c.Behavior.CommentProbability)
	c.Behavior.VoteProbability = GetEnvFloat("VOTE_PROBABILITY", c.Behavior.VoteProbability)
	c.Server.Port = GetEnv("PORT", c.Server.Port)
	c.Log.Level = GetEnv("LOG_LEVEL", c.Log.Level)
}

// GetEnv gets an environment variable with a default value
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvInt gets an integer environment variable with a default value
func GetEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// GetEnvFloat gets a float environment variable with a default value
func GetEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
