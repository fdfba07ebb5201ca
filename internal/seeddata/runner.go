package seeddata

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/okian/perftrack/internal/domain/metric"
	"github.com/okian/perftrack/internal/domain/model"
	"github.com/okian/perftrack/pkg/logger"
)

// Run seeds a fresh session and checks the analytics of a sample of
// athletes. Any invariant violation is returned joined with the others.
func Run(ctx context.Context, cfg *Config) (*Stats, error) {
	log := cfg.Logger
	if log == nil {
		log = logger.Get()
	}
	log = log.Named("seed")
	if cfg.Weeks < model.FirstWeek || cfg.Weeks > model.LastWeek {
		return nil, fmt.Errorf("%w: weeks must be %d..%d, got %d", model.ErrInvalidWeek, model.FirstWeek, model.LastWeek, cfg.Weeks)
	}

	stats := &Stats{StartTime: time.Now()}
	client := NewClient(cfg.BaseURL, cfg.Timeout)

	log.Info(ctx, "starting seed run",
		logger.String("baseURL", cfg.BaseURL),
		logger.Int("weeks", cfg.Weeks),
		logger.Any("seed", cfg.Seed),
		logger.Int("sample", cfg.Sample),
		logger.Float64("missing", cfg.Missing))

	if err := client.Health(ctx); err != nil {
		return nil, fmt.Errorf("service health check failed: %w", err)
	}
	roster, err := client.Roster(ctx)
	if err != nil {
		return nil, fmt.Errorf("roster fetch failed: %w", err)
	}

	gen := NewGenerator(roster, cfg.Seed, cfg.Missing)
	tables := gen.Weeks(cfg.Weeks)

	sess, err := client.CreateSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("session create failed: %w", err)
	}
	stats.SessionID = sess.ID
	if !cfg.Keep {
		defer func() {
			if err := client.DeleteSession(context.Background(), sess.ID); err != nil {
				log.Warn(ctx, "session delete failed", logger.String("session", sess.ID), logger.Error(err))
			}
		}()
	}

	for i, table := range tables {
		week := model.FirstWeek + i
		res, err := client.PutWeek(ctx, sess.ID, week, table)
		if err != nil {
			return stats, fmt.Errorf("week %d upload failed: %w", week, err)
		}
		stats.WeeksUploaded++
		stats.RowsUploaded += res.Athletes
		stats.Problems += len(res.Problems)
		for _, row := range table.Rows {
			for _, c := range row[1:] {
				if c.Blank() {
					stats.CellsBlank++
				}
			}
		}
		if cfg.Verbose {
			log.Info(ctx, "week uploaded", logger.Int("week", week), logger.Int("athletes", res.Athletes))
		}
	}

	var violations error
	last := model.FirstWeek + len(tables) - 1
	for _, name := range gen.Sample(cfg.Sample) {
		stats.AthletesCheck++
		if err := checkAthlete(ctx, client, sess.ID, name, tables, last, stats); err != nil {
			if !errors.Is(err, ErrInvariant) {
				return stats, err
			}
			violations = errors.Join(violations, err)
			log.Error(ctx, "invariant violated", logger.String("athlete", name), logger.Error(err))
			continue
		}
		if cfg.Verbose {
			log.Info(ctx, "athlete verified", logger.String("athlete", name))
		}
	}

	stats.Duration = time.Since(stats.StartTime)
	log.Info(ctx, "final statistics",
		logger.String("session", stats.SessionID),
		logger.Int("weeksUploaded", stats.WeeksUploaded),
		logger.Int("rowsUploaded", stats.RowsUploaded),
		logger.Int("cellsBlank", stats.CellsBlank),
		logger.Int("problems", stats.Problems),
		logger.Int("athletesChecked", stats.AthletesCheck),
		logger.Int("trendsChecked", stats.TrendsChecked),
		logger.Int("profilesChecked", stats.ProfilesCheck),
		logger.Int("reportsChecked", stats.ReportsChecked),
		logger.Duration("duration", stats.Duration))
	return stats, violations
}

// checkAthlete verifies every trend, every weekly profile and the season
// report of one athlete.
func checkAthlete(ctx context.Context, c *Client, id, name string, tables []model.Table, last int, stats *Stats) error {
	var violations error
	for _, kind := range metric.All() {
		tr, err := c.Trend(ctx, id, name, kind)
		if err != nil {
			return err
		}
		stats.TrendsChecked++
		violations = errors.Join(violations, VerifyTrend(tr))
	}
	for i, table := range tables {
		week := model.FirstWeek + i
		p, err := c.Profile(ctx, id, name, week)
		if err != nil {
			return err
		}
		stats.ProfilesCheck++
		violations = errors.Join(violations, VerifyProfile(p, recorded(table, name)))
	}
	rep, err := c.Report(ctx, id, name, model.FirstWeek, last)
	if err != nil {
		return err
	}
	stats.ReportsChecked++
	return errors.Join(violations, VerifyReport(rep))
}
