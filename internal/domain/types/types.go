// Package types contains the request and response shapes shared by the
// service, the HTTP API and the seeding tool.
package types

import (
	"time"

	"github.com/okian/perftrack/internal/domain/aggregate"
	"github.com/okian/perftrack/internal/domain/athlete"
	"github.com/okian/perftrack/internal/domain/metric"
	"github.com/okian/perftrack/internal/domain/series"
)

// Session describes an analysis session.
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	// ExpiresAt is nil when sessions never expire.
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Weeks     []int      `json:"weeks"`
}

// UploadResult reports what an accepted upload stored.
type UploadResult struct {
	SessionID string        `json:"session_id"`
	Week      int           `json:"week"`
	Athletes  int           `json:"athletes"`
	Columns   []metric.Kind `json:"columns"`
	Ignored   []string      `json:"ignored"`
	Skipped   int           `json:"skipped"`
	// Replaced is true when the week already held a snapshot.
	Replaced   bool     `json:"replaced"`
	Unrostered []string `json:"unrostered"`
	Problems   []string `json:"problems"`
}

// Trend is an athlete's sparse weekly series for one metric.
type Trend struct {
	Athlete string         `json:"athlete"`
	Metric  metric.Kind    `json:"metric"`
	Label   string         `json:"label"`
	Points  []series.Point `json:"points"`
	// Available is false when no week holds a value; Summary is then nil.
	Available bool                 `json:"available"`
	Summary   *series.TrendSummary `json:"summary,omitempty"`
}

// Profile is an athlete's normalized profile vector for a week.
type Profile struct {
	Athlete   string           `json:"athlete"`
	Position  athlete.Position `json:"position"`
	Week      int              `json:"week"`
	Available bool             `json:"available"`
	Axes      []series.Axis    `json:"axes"`
}

// RangeReport wraps a range report with its availability.
type RangeReport struct {
	Athlete   string         `json:"athlete"`
	StartWeek int            `json:"start_week"`
	EndWeek   int            `json:"end_week"`
	Available bool           `json:"available"`
	Report    *series.Report `json:"report,omitempty"`
}

// BodyWeight wraps a body-weight change with its availability.
type BodyWeight struct {
	Athlete   string                  `json:"athlete"`
	Week      int                     `json:"week"`
	Available bool                    `json:"available"`
	Change    *aggregate.WeightChange `json:"change,omitempty"`
}

// WeekSummary wraps a team summary with its availability.
type WeekSummary struct {
	Week      int                `json:"week"`
	Available bool               `json:"available"`
	Summary   *aggregate.Summary `json:"summary,omitempty"`
}
