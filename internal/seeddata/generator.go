package seeddata

import (
	"strconv"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/okian/perftrack/internal/domain/athlete"
	"github.com/okian/perftrack/internal/domain/metric"
	"github.com/okian/perftrack/internal/domain/model"
	"github.com/okian/perftrack/internal/domain/scoring"
)

// span is a closed range a baseline is drawn from.
type span struct{ lo, hi float64 }

// baselines holds week 1 ranges per position group.
var baselines = map[athlete.Position]map[metric.Kind]span{
	athlete.Line: {
		metric.BodyWeight:     {280, 320},
		metric.BenchPress:     {300, 380},
		metric.BackSquat:      {450, 550},
		metric.HexBarDeadlift: {500, 600},
		metric.Sprint:         {1.20, 1.35},
		metric.VerticalJump:   {24, 29},
		metric.PowerClean:     {260, 320},
	},
	athlete.BigSkill: {
		metric.BodyWeight:     {210, 240},
		metric.BenchPress:     {250, 310},
		metric.BackSquat:      {380, 460},
		metric.HexBarDeadlift: {430, 520},
		metric.Sprint:         {1.05, 1.18},
		metric.VerticalJump:   {28, 33},
		metric.PowerClean:     {230, 280},
	},
	athlete.Skill: {
		metric.BodyWeight:     {170, 195},
		metric.BenchPress:     {200, 260},
		metric.BackSquat:      {320, 400},
		metric.HexBarDeadlift: {380, 460},
		metric.Sprint:         {0.95, 1.08},
		metric.VerticalJump:   {31, 38},
		metric.PowerClean:     {200, 250},
	},
}

// Weekly drift as a fraction of the current value. Strength climbs, sprint
// times fall, body weight wanders.
var drift = map[metric.Kind]span{
	metric.BodyWeight:     {-0.006, 0.008},
	metric.BenchPress:     {-0.005, 0.015},
	metric.BackSquat:      {-0.005, 0.015},
	metric.HexBarDeadlift: {-0.005, 0.015},
	metric.Sprint:         {-0.006, 0.002},
	metric.VerticalJump:   {-0.010, 0.015},
	metric.PowerClean:     {-0.005, 0.015},
}

// Generator produces reproducible weekly tables for a roster.
type Generator struct {
	faker   *gofakeit.Faker
	roster  *athlete.Roster
	missing float64
}

// NewGenerator seeds a generator. missing is the chance that a metric cell
// is left blank, clamped to [0, 1].
func NewGenerator(roster *athlete.Roster, seed int64, missing float64) *Generator {
	switch {
	case missing < 0:
		missing = 0
	case missing > 1:
		missing = 1
	}
	return &Generator{faker: gofakeit.New(seed), roster: roster, missing: missing}
}

// Weeks returns tables for weeks 1..n in upload format. n is clamped to the
// season length.
func (g *Generator) Weeks(n int) []model.Table {
	if n > model.LastWeek {
		n = model.LastWeek
	}
	if n < 0 {
		n = 0
	}
	kinds := metric.All()
	athletes := g.roster.List(athlete.Filter{})

	current := make([]map[metric.Kind]float64, len(athletes))
	for i, a := range athletes {
		current[i] = make(map[metric.Kind]float64, len(kinds))
		for _, k := range kinds {
			s := baselines[a.Position][k]
			current[i][k] = g.faker.Float64Range(s.lo, s.hi)
		}
	}

	columns := make([]string, 0, len(kinds)+1)
	columns = append(columns, model.NameColumn)
	for _, k := range kinds {
		columns = append(columns, k.Label())
	}

	out := make([]model.Table, 0, n)
	for week := model.FirstWeek; week <= n; week++ {
		table := model.Table{Columns: columns, Rows: make([][]model.Cell, 0, len(athletes))}
		for i, a := range athletes {
			row := make([]model.Cell, 0, len(columns))
			row = append(row, model.Cell(a.Name))
			for _, k := range kinds {
				if week > model.FirstWeek {
					d := drift[k]
					current[i][k] *= 1 + g.faker.Float64Range(d.lo, d.hi)
				}
				if g.missing > 0 && g.faker.Float64() < g.missing {
					row = append(row, "")
					continue
				}
				row = append(row, model.Cell(format(k, current[i][k])))
			}
			table.Rows = append(table.Rows, row)
		}
		out = append(out, table)
	}
	return out
}

// Sample picks up to n distinct rostered names.
func (g *Generator) Sample(n int) []string {
	names := g.roster.Names()
	g.faker.ShuffleStrings(names)
	if n < len(names) {
		names = names[:n]
	}
	return names
}

// format rounds v the way a coach would record it.
func format(k metric.Kind, v float64) string {
	switch k.Unit() {
	case metric.Seconds:
		v = scoring.Round(v, 2)
	case metric.Inches:
		v = scoring.Round(v*2, 0) / 2
	default:
		v = scoring.Round(v, 0)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// recorded counts the filled metric cells of name's row in table.
func recorded(table model.Table, name string) int {
	for _, row := range table.Rows {
		if string(model.At(row, 0)) != name {
			continue
		}
		n := 0
		for i := 1; i < len(table.Columns); i++ {
			if !model.At(row, i).Blank() {
				n++
			}
		}
		return n
	}
	return 0
}
