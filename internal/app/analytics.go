package service

import (
	"context"
	"time"

	"github.com/okian/perftrack/internal/domain/ingest"
	"github.com/okian/perftrack/internal/domain/metric"
	"github.com/okian/perftrack/internal/domain/model"
	"github.com/okian/perftrack/internal/domain/series"
	"github.com/okian/perftrack/internal/domain/types"
	"github.com/okian/perftrack/pkg/logger"
	"github.com/okian/perftrack/pkg/metrics"
)

// Upload parses table and stores it as week, replacing any earlier upload
// of that week. Nothing is stored when parsing fails.
func (s *Service) Upload(ctx context.Context, id string, week int, table model.Table) (types.UploadResult, error) {
	start := time.Now()
	res, err := ingest.Parse(week, table)
	if err != nil {
		metrics.RecordUploadRejected()
		return types.UploadResult{}, err
	}

	out := types.UploadResult{
		SessionID:  id,
		Week:       week,
		Athletes:   res.Snapshot.Len(),
		Columns:    res.Columns,
		Ignored:    res.Ignored,
		Skipped:    res.Skipped,
		Unrostered: res.Unrostered(s.roster),
		Problems:   res.ProblemMessages(),
	}
	if out.Unrostered == nil {
		out.Unrostered = []string{}
	}

	err = s.write(ctx, id, func(sess *session) error {
		_, out.Replaced = sess.store.Snapshot(ctx, week)
		return sess.store.PutWeek(ctx, res.Snapshot)
	})
	if err != nil {
		return types.UploadResult{}, err
	}

	metrics.RecordUpload(len(out.Problems))
	metrics.RecordRowsIngested(out.Athletes)
	metrics.RecordUploadLatency(float64(time.Since(start).Microseconds()) / 1000)
	s.logger.Info(ctx, "week uploaded",
		logger.String("session", id),
		logger.Int("week", week),
		logger.Int("athletes", out.Athletes),
		logger.Int("problems", len(out.Problems)),
		logger.Bool("replaced", out.Replaced),
	)
	for _, p := range out.Problems {
		s.logger.Debug(ctx, "upload problem", logger.String("session", id), logger.String("problem", p))
	}
	return out, nil
}

// Weeks returns the session's recorded weeks, ascending.
func (s *Service) Weeks(ctx context.Context, id string) ([]int, error) {
	var out []int
	err := s.read(ctx, id, func(sess *session) error {
		out = sess.store.WeeksPresent(ctx)
		return nil
	})
	return out, err
}

// Trend returns the athlete's series for kind with its start-to-end change.
func (s *Service) Trend(ctx context.Context, id, name string, kind metric.Kind) (types.Trend, error) {
	begin := time.Now()
	out := types.Trend{Athlete: name, Metric: kind, Label: kind.Label()}
	err := s.read(ctx, id, func(sess *session) error {
		points, err := sess.asm.AthleteTrend(ctx, name, kind)
		if err != nil {
			return err
		}
		out.Points = points
		if sum, ok := series.Summarize(points); ok {
			out.Available = true
			out.Summary = &sum
		}
		return nil
	})
	if err != nil {
		return types.Trend{}, err
	}
	observeQuery("trend", begin, out.Available)
	return out, nil
}

// Profile returns the athlete's normalized profile vector for week.
func (s *Service) Profile(ctx context.Context, id, name string, week int) (types.Profile, error) {
	begin := time.Now()
	pos, err := s.roster.LookupPosition(name)
	if err != nil {
		return types.Profile{}, err
	}
	out := types.Profile{Athlete: name, Position: pos, Week: week, Axes: []series.Axis{}}
	err = s.read(ctx, id, func(sess *session) error {
		axes, ok, err := sess.asm.ProfileVector(ctx, name, week)
		if err != nil {
			return err
		}
		if ok {
			out.Available = true
			out.Axes = axes
		}
		return nil
	})
	if err != nil {
		return types.Profile{}, err
	}
	observeQuery("profile", begin, out.Available)
	return out, nil
}

// Compare returns a head-to-head of 2 to 4 athletes for week.
func (s *Service) Compare(ctx context.Context, id string, names []string, week int) (series.Comparison, error) {
	if err := model.ValidateWeek(week); err != nil {
		return series.Comparison{}, err
	}
	begin := time.Now()
	var out series.Comparison
	err := s.read(ctx, id, func(sess *session) error {
		var err error
		out, err = sess.asm.HeadToHead(ctx, names, week)
		return err
	})
	if err != nil {
		return series.Comparison{}, err
	}
	observeQuery("compare", begin, true)
	return out, nil
}

// Report returns the athlete's progress between start and end.
func (s *Service) Report(ctx context.Context, id, name string, start, end int) (types.RangeReport, error) {
	begin := time.Now()
	out := types.RangeReport{Athlete: name, StartWeek: start, EndWeek: end}
	err := s.read(ctx, id, func(sess *session) error {
		rep, ok, err := sess.asm.RangeReport(ctx, name, start, end)
		if err != nil {
			return err
		}
		if ok {
			out.Available = true
			out.Report = &rep
		}
		return nil
	})
	if err != nil {
		return types.RangeReport{}, err
	}
	observeQuery("report", begin, out.Available)
	return out, nil
}

// BodyWeight returns the athlete's body-weight change from week 1 to week.
func (s *Service) BodyWeight(ctx context.Context, id, name string, week int) (types.BodyWeight, error) {
	begin := time.Now()
	out := types.BodyWeight{Athlete: name, Week: week}
	err := s.read(ctx, id, func(sess *session) error {
		wc, ok, err := sess.asm.Aggregates().BodyWeightChange(ctx, name, week)
		if err != nil {
			return err
		}
		if ok {
			out.Available = true
			out.Change = &wc
		}
		return nil
	})
	if err != nil {
		return types.BodyWeight{}, err
	}
	observeQuery("bodyweight", begin, out.Available)
	return out, nil
}

// WeekSummary returns team statistics for week.
func (s *Service) WeekSummary(ctx context.Context, id string, week int) (types.WeekSummary, error) {
	begin := time.Now()
	if err := model.ValidateWeek(week); err != nil {
		return types.WeekSummary{}, err
	}
	out := types.WeekSummary{Week: week}
	err := s.read(ctx, id, func(sess *session) error {
		if sum, ok := sess.asm.Aggregates().WeekSummary(ctx, week); ok {
			out.Available = true
			out.Summary = &sum
		}
		return nil
	})
	if err != nil {
		return types.WeekSummary{}, err
	}
	observeQuery("week_summary", begin, out.Available)
	return out, nil
}

func observeQuery(op string, begin time.Time, available bool) {
	metrics.RecordQuery(op, float64(time.Since(begin).Microseconds())/1000, available)
}
