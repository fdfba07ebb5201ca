// Package ingest turns uploaded tables into weekly snapshots and produces the
// blank upload template.
package ingest

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"go.uber.org/multierr"

	"github.com/okian/perftrack/internal/domain/athlete"
	"github.com/okian/perftrack/internal/domain/metric"
	"github.com/okian/perftrack/internal/domain/model"
)

// Result is a parsed upload.
type Result struct {
	Snapshot model.Snapshot
	// Columns lists the recognized metric columns in table order.
	Columns []metric.Kind
	// Ignored lists headers that matched no metric.
	Ignored []string
	// Skipped counts rows without a name.
	Skipped int
	// Problems combines every CellError and duplicate row found. Nil when the
	// table was clean. None of them stop the upload.
	Problems error
}

// ProblemMessages flattens Problems for display.
func (r Result) ProblemMessages() []string {
	errs := multierr.Errors(r.Problems)
	out := make([]string, len(errs))
	for i, err := range errs {
		out[i] = err.Error()
	}
	return out
}

// Unrostered returns the uploaded names missing from roster.
func (r Result) Unrostered(roster *athlete.Roster) []string {
	var out []string
	for _, name := range r.Snapshot.Names {
		if !roster.Contains(name) {
			out = append(out, name)
		}
	}
	return out
}

// CellError describes a metric cell that could not be read as a number.
// The cell is treated as having no value.
type CellError struct {
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("row %d column %q: cannot read %q as a number: %v", e.Row, e.Column, e.Value, e.Err)
}

func (e *CellError) Unwrap() error { return ErrInvalidCell }

// Parse reads table as the upload for week. Blank cells have no value and
// unreadable cells are reported in Result.Problems. Parse never touches a
// store, so a failed upload leaves existing data as it was.
func Parse(week int, table model.Table) (Result, error) {
	if err := model.ValidateWeek(week); err != nil {
		return Result{}, err
	}

	type column struct {
		idx  int
		kind metric.Kind
	}
	nameCol := -1
	var cols []column
	taken := make(map[metric.Kind]bool)
	res := Result{Snapshot: model.NewSnapshot(week), Columns: []metric.Kind{}, Ignored: []string{}}

	for i, header := range table.Columns {
		h := strings.TrimSpace(header)
		if nameCol < 0 && strings.EqualFold(h, model.NameColumn) {
			nameCol = i
			continue
		}
		k, ok := metric.Parse(h)
		if !ok || taken[k] {
			res.Ignored = append(res.Ignored, header)
			continue
		}
		taken[k] = true
		cols = append(cols, column{idx: i, kind: k})
		res.Columns = append(res.Columns, k)
	}
	if nameCol < 0 {
		return Result{}, fmt.Errorf("%w: %q", ErrMissingColumn, model.NameColumn)
	}

	var problems error
	for r, cells := range table.Rows {
		line := r + 1
		name := strings.TrimSpace(string(model.At(cells, nameCol)))
		if name == "" {
			res.Skipped++
			continue
		}

		row := make(model.Row, len(cols))
		for _, col := range cols {
			c := model.At(cells, col.idx)
			if c.Blank() {
				continue
			}
			v, err := c.Float()
			if err == nil && (math.IsNaN(v) || math.IsInf(v, 0)) {
				err = errors.New("not finite")
			}
			if err != nil {
				problems = multierr.Append(problems, &CellError{
					Row:    line,
					Column: table.Columns[col.idx],
					Value:  string(c),
					Err:    err,
				})
				continue
			}
			row[col.kind] = v
		}

		if !res.Snapshot.Add(name, row) {
			problems = multierr.Append(problems,
				fmt.Errorf("%w: row %d repeats %q, keeping the first", ErrDuplicateRow, line, name))
		}
	}
	res.Problems = problems
	return res, nil
}
