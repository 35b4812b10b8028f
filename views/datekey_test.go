package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKey(t *testing.T) {
	assert.Equal(t, NoDateKey, DateKey(nil))

	utc := time.Date(2025, 3, 15, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-15", DateKey(&utc))

	// keys are derived in UTC regardless of the value's zone
	tokyo := time.FixedZone("JST", 9*3600)
	late := time.Date(2025, 3, 16, 1, 0, 0, 0, tokyo) // 2025-03-15T16:00Z
	assert.Equal(t, "2025-03-15", DateKey(&late))
}
