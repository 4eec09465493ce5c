package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvOverrides(t *testing.T) {
	t.Run("CHEAT_LEARNER replaces the greeting name", func(t *testing.T) {
		t.Setenv("CHEAT_LEARNER", "Python Learner")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "Python Learner", cfg.Run.Learner)
	})

	t.Run("CHEAT_COLOR is lower-cased", func(t *testing.T) {
		t.Setenv("CHEAT_COLOR", "NEVER")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "never", cfg.Output.Color)
	})

	t.Run("CHEAT_LOG_LEVEL sets the level", func(t *testing.T) {
		t.Setenv("CHEAT_LOG_LEVEL", "Debug")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "debug", cfg.Logging.Level)
	})

	t.Run("CHEAT_DEBUG toggles debug mode", func(t *testing.T) {
		t.Setenv("CHEAT_DEBUG", "true")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.True(t, cfg.Logging.DebugMode)

		t.Setenv("CHEAT_DEBUG", "0")
		cfg.applyEnvOverrides()
		assert.False(t, cfg.Logging.DebugMode)
	})

	t.Run("empty variables leave the config alone", func(t *testing.T) {
		t.Setenv("CHEAT_LEARNER", "")
		t.Setenv("CHEAT_COLOR", "")
		t.Setenv("CHEAT_LOG_LEVEL", "")
		t.Setenv("CHEAT_DEBUG", "")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, DefaultConfig(), cfg)
	})
}
