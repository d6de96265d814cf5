package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatTrendingDate(t *testing.T) {
	d := time.Date(2024, time.March, 7, 23, 0, 0, 0, time.Local)
	assert.Equal(t, "24.07.03", FormatTrendingDate(d))
}

func TestGetCurrentTime(t *testing.T) {
	before := time.Now()
	got := GetCurrentTime()
	assert.False(t, got.Before(before))
}
