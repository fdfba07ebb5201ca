// Package seeddata generates synthetic weekly results for a roster, uploads
// them to a running perftrack server and checks the analytics it returns.
package seeddata

import (
	"time"

	"github.com/okian/perftrack/pkg/logger"
)

// Config holds configuration for a seeding run.
type Config struct {
	BaseURL string        // Base URL of the service
	Weeks   int           // Number of weeks to upload, starting at week 1
	Seed    int64         // Generator seed; equal seeds give equal data
	Sample  int           // Athletes whose analytics are checked
	Missing float64       // Probability that a metric cell is left blank
	Timeout time.Duration // HTTP request timeout
	Verbose bool          // Log every checked athlete
	Keep    bool          // Leave the session open after the run

	Logger logger.Logger // Defaults to logger.Get()
}

// Stats holds run statistics.
type Stats struct {
	SessionID      string
	WeeksUploaded  int
	RowsUploaded   int
	CellsBlank     int
	Problems       int
	AthletesCheck  int
	TrendsChecked  int
	ProfilesCheck  int
	ReportsChecked int
	StartTime      time.Time
	Duration       time.Duration
}
