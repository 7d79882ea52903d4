package model

import "time"

// Stat represents a single headline portfolio metric.
type Stat struct {
	ID          int64
	MetricName  string
	MetricValue int
	MetricLabel string
	UpdatedAt   time.Time
}
