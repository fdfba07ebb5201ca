// Package metric defines the fixed catalog of weekly test measurements.
//
// Every measurement is declared exactly once in the catalog table together
// with its unit and polarity. Nothing in the engine inspects label text to
// decide whether lower or higher values are better.
package metric

import (
	"fmt"
	"strings"
)

// Kind identifies one of the seven tracked measurements.
type Kind int

// Catalog order. Vectors and reports iterate kinds in this order.
const (
	BodyWeight Kind = iota
	BenchPress
	BackSquat
	HexBarDeadlift
	Sprint
	VerticalJump
	PowerClean
)

// Polarity tells whether higher or lower raw values are better.
type Polarity int

const (
	HigherIsBetter Polarity = iota
	LowerIsBetter
)

// Unit is the measurement unit of a metric.
type Unit string

const (
	Pounds  Unit = "lbs"
	Seconds Unit = "seconds"
	Inches  Unit = "inches"
)

// Definition describes a metric.
type Definition struct {
	Kind     Kind     `json:"kind"`
	Label    string   `json:"label"` // column header, e.g. "Bench Press (lbs)"
	Short    string   `json:"short"` // axis label, e.g. "Bench Press"
	Slug     string   `json:"-"`     // URL/query form, e.g. "bench_press"; same as Kind's text form
	Unit     Unit     `json:"unit"`
	Polarity Polarity `json:"polarity"`
}

var catalog = [...]Definition{
	{BodyWeight, "Body Weight (lbs)", "Body Weight", "body_weight", Pounds, HigherIsBetter},
	{BenchPress, "Bench Press (lbs)", "Bench Press", "bench_press", Pounds, HigherIsBetter},
	{BackSquat, "Back Squat (lbs)", "Back Squat", "back_squat", Pounds, HigherIsBetter},
	{HexBarDeadlift, "Hex Bar Deadlift (lbs)", "Hex Bar Deadlift", "hex_bar_deadlift", Pounds, HigherIsBetter},
	{Sprint, "Flying 10 Sprint (seconds)", "Flying 10 Sprint", "flying_10_sprint", Seconds, LowerIsBetter},
	{VerticalJump, "Vertical Jump (inches)", "Vertical Jump", "vertical_jump", Inches, HigherIsBetter},
	{PowerClean, "Power Clean (lbs)", "Power Clean", "power_clean", Pounds, HigherIsBetter},
}

// lookup indexes every accepted spelling (label, short label, slug) by its
// normalized key.
var lookup = func() map[string]Kind {
	m := make(map[string]Kind, len(catalog)*3)
	for _, d := range catalog {
		m[normalizeKey(d.Label)] = d.Kind
		m[normalizeKey(d.Short)] = d.Kind
		m[normalizeKey(d.Slug)] = d.Kind
	}
	return m
}()

// All returns every kind in catalog order.
func All() []Kind {
	out := make([]Kind, len(catalog))
	for i, d := range catalog {
		out[i] = d.Kind
	}
	return out
}

// Definitions returns a copy of the catalog.
func Definitions() []Definition {
	out := make([]Definition, len(catalog))
	copy(out, catalog[:])
	return out
}

// Parse resolves a column header, short label or slug to a Kind.
// Matching ignores case, surrounding space and separator differences.
func Parse(s string) (Kind, bool) {
	k, ok := lookup[normalizeKey(s)]
	return k, ok
}

// Valid reports whether k is part of the catalog.
func (k Kind) Valid() bool { return k >= 0 && int(k) < len(catalog) }

// Definition returns the catalog entry for k. It panics on an invalid kind.
func (k Kind) Definition() Definition {
	if !k.Valid() {
		panic(fmt.Sprintf("metric: invalid kind %d", int(k)))
	}
	return catalog[k]
}

func (k Kind) Label() string       { return k.Definition().Label }
func (k Kind) Short() string       { return k.Definition().Short }
func (k Kind) Slug() string        { return k.Definition().Slug }
func (k Kind) Unit() Unit          { return k.Definition().Unit }
func (k Kind) Polarity() Polarity  { return k.Definition().Polarity }
func (k Kind) LowerIsBetter() bool { return k.Polarity() == LowerIsBetter }

// String implements fmt.Stringer.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return catalog[k].Slug
}

// MarshalText encodes the kind as its slug, so kinds work as JSON map keys.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("metric: invalid kind %d", int(k))
	}
	return []byte(catalog[k].Slug), nil
}

// UnmarshalText accepts any spelling understood by Parse.
func (k *Kind) UnmarshalText(b []byte) error {
	parsed, ok := Parse(string(b))
	if !ok {
		return fmt.Errorf("metric: unknown metric %q", string(b))
	}
	*k = parsed
	return nil
}

// Better reports whether a is a better result than b under polarity p.
func (p Polarity) Better(a, b float64) bool {
	if p == LowerIsBetter {
		return a < b
	}
	return a > b
}

func (p Polarity) String() string {
	if p == LowerIsBetter {
		return "lower_is_better"
	}
	return "higher_is_better"
}

// MarshalText encodes the polarity by name.
func (p Polarity) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '(', r == ')', r == ' ', r == '_', r == '-':
			// separators are dropped
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
