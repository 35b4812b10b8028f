package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	assert.Equal(t, DefaultFetchConcurrency, cfg.FetchConcurrency)
	assert.Equal(t, DefaultFetchRPS, cfg.FetchRPS)
	assert.Equal(t, DefaultCalendarDisplayCap, cfg.CalendarDisplayCap)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TASK_FETCH_CONCURRENCY", "2")
	t.Setenv("TASK_FETCH_RPS", "5")
	t.Setenv("CALENDAR_DISPLAY_CAP", "10")

	cfg := Load()
	assert.Equal(t, 2, cfg.FetchConcurrency)
	assert.Equal(t, 5, cfg.FetchRPS)
	assert.Equal(t, 10, cfg.CalendarDisplayCap)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("TASK_FETCH_CONCURRENCY", "many")
	t.Setenv("TASK_FETCH_RPS", "-3")

	cfg := Load()
	assert.Equal(t, DefaultFetchConcurrency, cfg.FetchConcurrency)
	assert.Equal(t, DefaultFetchRPS, cfg.FetchRPS)
}
