package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			Name:     "chillife",
			User:     "chillife",
			Password: "secret",
		},
	}

	expected := "host=localhost port=5432 user=chillife password=secret dbname=chillife sslmode=disable"
	assert.Equal(t, expected, cfg.DSN())
}

func TestLoad(t *testing.T) {
	setRequired := func() {
		os.Setenv("BOT_TOKEN", "token")
		os.Setenv("OPENAI_API_KEY", "key")
		os.Setenv("DB_PASSWORD", "secret")
	}
	clearAll := func() {
		for _, key := range []string{
			"BOT_TOKEN", "OPENAI_API_KEY", "DB_PASSWORD",
			"CHANNEL_ID", "OPENAI_MODEL", "GENERATION_TIMEOUT_SECONDS",
		} {
			os.Unsetenv(key)
		}
	}

	t.Run("all required set", func(t *testing.T) {
		clearAll()
		setRequired()
		defer clearAll()

		cfg, err := Load()
		assert.NoError(t, err)
		assert.Equal(t, "token", cfg.BotToken)
		assert.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
		assert.Equal(t, 10*time.Second, cfg.GenerationTimeout)
		assert.Zero(t, cfg.ChannelID)
	})

	t.Run("missing bot token", func(t *testing.T) {
		clearAll()
		setRequired()
		os.Unsetenv("BOT_TOKEN")
		defer clearAll()

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("missing openai key", func(t *testing.T) {
		clearAll()
		setRequired()
		os.Unsetenv("OPENAI_API_KEY")
		defer clearAll()

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("channel id parsed", func(t *testing.T) {
		clearAll()
		setRequired()
		os.Setenv("CHANNEL_ID", "-1001234567890")
		defer clearAll()

		cfg, err := Load()
		assert.NoError(t, err)
		assert.Equal(t, int64(-1001234567890), cfg.ChannelID)
	})

	t.Run("invalid channel id", func(t *testing.T) {
		clearAll()
		setRequired()
		os.Setenv("CHANNEL_ID", "not-a-number")
		defer clearAll()

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("invalid generation timeout", func(t *testing.T) {
		clearAll()
		setRequired()
		os.Setenv("GENERATION_TIMEOUT_SECONDS", "0")
		defer clearAll()

		_, err := Load()
		assert.Error(t, err)
	})
}
