package utils

import "time"

// TrendingDateLayout renders a date as two-digit year, day, month (e.g. 24.07.03).
// The day-before-month order is kept for compatibility with existing datasets.
const TrendingDateLayout = "06.02.01"

func GetCurrentTime() time.Time {
	return time.Now()
}

// FormatTrendingDate stamps t in local time using TrendingDateLayout.
func FormatTrendingDate(t time.Time) string {
	return t.Local().Format(TrendingDateLayout)
}
