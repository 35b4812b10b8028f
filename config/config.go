package config

import (
	"os"
	"strconv"
)

// Defaults used when the environment doesn't override them.
const (
	DefaultFetchConcurrency   = 8
	DefaultFetchRPS           = 20
	DefaultCalendarDisplayCap = 3
)

type Config struct {
	// FetchConcurrency bounds how many child lookups run at once during
	// leaf classification.
	FetchConcurrency int
	// FetchRPS throttles child lookups against the external task API.
	FetchRPS int
	// CalendarDisplayCap is how many tasks a calendar day lists before
	// summarizing the rest as an overflow count.
	CalendarDisplayCap int
}

func Load() *Config {
	return &Config{
		FetchConcurrency:   intEnv("TASK_FETCH_CONCURRENCY", DefaultFetchConcurrency),
		FetchRPS:           intEnv("TASK_FETCH_RPS", DefaultFetchRPS),
		CalendarDisplayCap: intEnv("CALENDAR_DISPLAY_CAP", DefaultCalendarDisplayCap),
	}
}

func intEnv(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
