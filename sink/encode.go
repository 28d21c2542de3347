// SPDX-License-Identifier: MIT

package sink

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// YAMLSink writes each report as one YAML document.
type YAMLSink struct {
	W io.Writer
}

// WriteReport implements TableSink.
func (y YAMLSink) WriteReport(r *Report) error {
	if y.W == nil {
		return ErrNoWriter
	}
	enc := yaml.NewEncoder(y.W)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("sink: encode yaml: %w", err)
	}
	return enc.Close()
}

// CSVSink writes one record per value:
//
//	model,kind,name,row,col,value
//
// Series records leave col empty; grid records skip zero cells.
type CSVSink struct {
	W io.Writer
}

// WriteReport implements TableSink.
func (c CSVSink) WriteReport(r *Report) error {
	if c.W == nil {
		return ErrNoWriter
	}
	w := csv.NewWriter(c.W)
	model := strconv.Itoa(int(r.Model))
	num := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

	for _, s := range r.Series {
		for i, l := range s.Labels {
			if err := w.Write([]string{model, "series", s.Name, l, "", num(s.Values[i])}); err != nil {
				return err
			}
		}
	}
	for _, g := range r.Grids {
		for i, row := range g.Cells {
			for j, v := range row {
				if v == 0 {
					continue
				}
				if err := w.Write([]string{model, "grid", g.Name, g.Rows[i], g.Cols[j], num(v)}); err != nil {
					return err
				}
			}
		}
	}
	w.Flush()

	return w.Error()
}
