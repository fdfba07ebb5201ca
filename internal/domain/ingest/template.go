package ingest

import (
	"encoding/csv"
	"io"

	"github.com/okian/perftrack/internal/domain/athlete"
	"github.com/okian/perftrack/internal/domain/metric"
	"github.com/okian/perftrack/internal/domain/model"
)

// Template returns a blank upload table: Name plus every metric column, one
// row per rostered athlete in roster order.
func Template(roster *athlete.Roster) model.Table {
	kinds := metric.All()
	cols := make([]string, 0, len(kinds)+1)
	cols = append(cols, model.NameColumn)
	for _, k := range kinds {
		cols = append(cols, k.Label())
	}

	athletes := roster.List(athlete.Filter{})
	rows := make([][]model.Cell, len(athletes))
	for i, a := range athletes {
		row := make([]model.Cell, len(cols))
		row[0] = model.Cell(a.Name)
		rows[i] = row
	}
	return model.Table{Columns: cols, Rows: rows}
}

// WriteCSV writes table as CSV with a header line.
func WriteCSV(w io.Writer, table model.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(table.Columns); err != nil {
		return err
	}
	rec := make([]string, len(table.Columns))
	for _, row := range table.Rows {
		for i := range rec {
			rec[i] = string(model.At(row, i))
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV reads a CSV upload whose first line is the header.
func ReadCSV(r io.Reader) (model.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return model.Table{}, err
	}
	if len(records) == 0 {
		return model.Table{}, nil
	}
	table := model.Table{Columns: records[0], Rows: make([][]model.Cell, 0, len(records)-1)}
	for _, rec := range records[1:] {
		row := make([]model.Cell, len(rec))
		for i, v := range rec {
			row[i] = model.Cell(v)
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}
