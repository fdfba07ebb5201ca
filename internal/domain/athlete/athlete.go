// Package athlete holds the immutable roster of tracked athletes.
package athlete

import (
	"fmt"
	"sort"
	"strings"
)

// Position is an athlete's position group.
type Position int

const (
	Line Position = iota
	BigSkill
	Skill
)

var positionNames = [...]string{"Line", "Big Skill", "Skill"}

// Positions returns every position group in display order.
func Positions() []Position { return []Position{Line, BigSkill, Skill} }

// Valid reports whether p is a known position.
func (p Position) Valid() bool { return p >= 0 && int(p) < len(positionNames) }

// String returns the display name ("Big Skill").
func (p Position) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Position(%d)", int(p))
	}
	return positionNames[p]
}

// MarshalText encodes the position by display name.
func (p Position) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPosition, int(p))
	}
	return []byte(positionNames[p]), nil
}

// UnmarshalText accepts anything ParsePosition accepts.
func (p *Position) UnmarshalText(b []byte) error {
	parsed, err := ParsePosition(string(b))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePosition accepts display names and their compact forms
// ("Big Skill", "bigskill", "big_skill"), case-insensitively.
func ParsePosition(s string) (Position, error) {
	key := strings.NewReplacer(" ", "", "_", "", "-", "").Replace(strings.ToLower(strings.TrimSpace(s)))
	switch key {
	case "line":
		return Line, nil
	case "bigskill":
		return BigSkill, nil
	case "skill":
		return Skill, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
}

// Athlete is one roster entry. Names are unique and formatted "Last, First".
type Athlete struct {
	Name     string   `json:"name"`
	Position Position `json:"position"`
}

// Filter narrows List results. Zero value matches everyone.
type Filter struct {
	// Positions limits results to these groups; empty means all.
	Positions []Position
	// Query is a case-insensitive substring of the name.
	Query string
}

// Roster is a read-only catalog of athletes. It is safe for concurrent use
// because nothing mutates it after NewRoster returns.
type Roster struct {
	athletes []Athlete
	index    map[string]int
}

// NewRoster validates entries and builds a roster. Names are trimmed.
func NewRoster(entries []Athlete) (*Roster, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyRoster
	}
	r := &Roster{
		athletes: make([]Athlete, 0, len(entries)),
		index:    make(map[string]int, len(entries)),
	}
	for i, a := range entries {
		name := strings.TrimSpace(a.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: entry %d has no name", ErrInvalidAthlete, i)
		}
		if !a.Position.Valid() {
			return nil, fmt.Errorf("%w: %q has position %d", ErrInvalidPosition, name, int(a.Position))
		}
		if _, dup := r.index[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateAthlete, name)
		}
		r.index[name] = len(r.athletes)
		r.athletes = append(r.athletes, Athlete{Name: name, Position: a.Position})
	}
	return r, nil
}

// Default returns the built-in roster.
func Default() *Roster {
	r, err := NewRoster(defaultRoster)
	if err != nil {
		panic("athlete: built-in roster is invalid: " + err.Error())
	}
	return r
}

// Len returns the number of athletes.
func (r *Roster) Len() int { return len(r.athletes) }

// Contains reports whether name is on the roster.
func (r *Roster) Contains(name string) bool {
	_, ok := r.index[name]
	return ok
}

// Lookup returns the athlete with the given name.
func (r *Roster) Lookup(name string) (Athlete, error) {
	i, ok := r.index[name]
	if !ok {
		return Athlete{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return r.athletes[i], nil
}

// LookupPosition returns the position of the named athlete.
func (r *Roster) LookupPosition(name string) (Position, error) {
	a, err := r.Lookup(name)
	if err != nil {
		return 0, err
	}
	return a.Position, nil
}

// List returns athletes matching f in roster order.
func (r *Roster) List(f Filter) []Athlete {
	var allowed map[Position]bool
	if len(f.Positions) > 0 {
		allowed = make(map[Position]bool, len(f.Positions))
		for _, p := range f.Positions {
			allowed[p] = true
		}
	}
	query := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]Athlete, 0, len(r.athletes))
	for _, a := range r.athletes {
		if allowed != nil && !allowed[a.Position] {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(a.Name), query) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// Names returns every name sorted alphabetically.
func (r *Roster) Names() []string {
	out := make([]string, len(r.athletes))
	for i, a := range r.athletes {
		out[i] = a.Name
	}
	sort.Strings(out)
	return out
}

// Counts returns the headcount per position.
func (r *Roster) Counts() map[Position]int {
	out := make(map[Position]int, len(positionNames))
	for _, p := range Positions() {
		out[p] = 0
	}
	for _, a := range r.athletes {
		out[a.Position]++
	}
	return out
}

// InPosition reports whether name is on the roster in position p.
func (r *Roster) InPosition(name string, p Position) bool {
	i, ok := r.index[name]
	return ok && r.athletes[i].Position == p
}
