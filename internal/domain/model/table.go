package model

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// NameColumn is the mandatory identity column of an uploaded table.
const NameColumn = "Name"

// Table is the generic tabular structure handed over by the ingestion layer.
// Rows may be shorter than Columns; missing trailing cells are blank.
type Table struct {
	Columns []string `json:"columns"`
	Rows    [][]Cell `json:"rows"`
}

// Cell is one raw table value. Blank text means no value.
type Cell string

// Blank reports whether the cell holds no value.
func (c Cell) Blank() bool { return strings.TrimSpace(string(c)) == "" }

// Float parses the cell as a number.
func (c Cell) Float() (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(string(c)), 64)
}

// UnmarshalJSON accepts strings, numbers and null.
func (c *Cell) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*c = ""
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*c = Cell(s)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return err
		}
		*c = Cell(n.String())
		return nil
	}
}

// At returns the cell at column i of row, blank when the row is short.
func At(row []Cell, i int) Cell {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
