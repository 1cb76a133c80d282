package archive

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
)

// Download filenames for the export endpoints.
const (
	AllExportFileName = "judgment_archive_all.json"
	CSVExportFileName = "judgment_archive_all.csv"
)

// EntryExportFileName names a single-entry download; n is the entry's
// 1-based position in current store order.
func EntryExportFileName(n int) string {
	return fmt.Sprintf("judgment_entry_%d.json", n)
}

// ExportEntry serializes one entry for download: UTF-8, 2-space indent,
// non-ASCII left literal. Byte-stable for identical input.
func ExportEntry(e Entry) ([]byte, error) {
	if e == nil {
		return nil, fmt.Errorf("export entry: entry is nil")
	}
	return marshalIndentNoEscape(e)
}

// ExportAll serializes the sequence as a JSON array in the given order,
// with the same formatting rules as single-entry export. An empty sequence
// yields an empty array, which is still a valid download.
func ExportAll(entries iter.Seq[Entry]) ([]byte, error) {
	all := make([]Entry, 0)
	for e := range entries {
		all = append(all, e)
	}
	return marshalIndentNoEscape(all)
}

// marshalIndentNoEscape encodes with HTML escaping disabled so Korean text
// survives as literal Unicode rather than \uXXXX escapes, matching the
// download contract.
func marshalIndentNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	// Encode appends a newline the download contract does not include.
	result := buf.Bytes()
	if len(result) > 0 && result[len(result)-1] == '\n' {
		result = result[:len(result)-1]
	}
	return result, nil
}
