package archive

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"iter"
)

// ExportCSV serializes the sequence as a CSV document with a superset
// header across both templates: recorded_at, language, type, version, then
// the simple fields, then the full fields. Cells outside an entry's own
// template stay empty.
func ExportCSV(entries iter.Seq[Entry]) ([]byte, error) {
	header := []string{"recorded_at", "language", "type", "version"}
	header = append(header, TemplateFields(VariantSimple)...)
	header = append(header, TemplateFields(VariantFull)...)

	column := make(map[string]int, len(header))
	for i, name := range header {
		column[name] = i
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for e := range entries {
		row := make([]string, len(header))
		meta := e.EntryMeta()
		row[0] = e.RecordedAt()
		row[1] = string(meta.Language)
		row[2] = string(meta.Type)
		row[3] = meta.Version
		for _, f := range e.Fields() {
			row[column[f.Name]] = f.Value
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
