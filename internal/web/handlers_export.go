package web

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"

	"github.com/sunghokang/judgement.archive/internal/archive"
	webtemplates "github.com/sunghokang/judgement.archive/internal/web/templates"
)

var tracer = otel.Tracer("judgement.archive/web")

// handleExportAllJSON streams every session record as one JSON document.
// The payload is marshaled before any byte is written, so a failure leaves
// the response clean and the records untouched.
func (h *handler) handleExportAllJSON(w http.ResponseWriter, r *http.Request) {
	printer, _ := localizer(w, r)
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, webtemplates.T(printer, "error.http.method_not_allowed"), http.StatusMethodNotAllowed)
		return
	}

	_, span := tracer.Start(r.Context(), "export.all.json")
	defer span.End()

	sess := h.ensureSession(w, r)
	data, err := archive.ExportAll(sess.store.All())
	if err != nil {
		span.RecordError(err)
		http.Error(w, webtemplates.T(printer, "error.export_failed"), http.StatusInternalServerError)
		return
	}
	writeAttachment(w, "application/json; charset=utf-8", archive.AllExportFileName, data)
}

// handleExportAllCSV streams every session record as one CSV table.
func (h *handler) handleExportAllCSV(w http.ResponseWriter, r *http.Request) {
	printer, _ := localizer(w, r)
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, webtemplates.T(printer, "error.http.method_not_allowed"), http.StatusMethodNotAllowed)
		return
	}

	_, span := tracer.Start(r.Context(), "export.all.csv")
	defer span.End()

	sess := h.ensureSession(w, r)
	data, err := archive.ExportCSV(sess.store.All())
	if err != nil {
		span.RecordError(err)
		http.Error(w, webtemplates.T(printer, "error.export_failed"), http.StatusInternalServerError)
		return
	}
	writeAttachment(w, "text/csv; charset=utf-8", archive.CSVExportFileName, data)
}

// handleExportEntry streams one record by its 1-based newest-first position,
// matching the numbering shown on the page.
func (h *handler) handleExportEntry(w http.ResponseWriter, r *http.Request) {
	printer, _ := localizer(w, r)
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, webtemplates.T(printer, "error.http.method_not_allowed"), http.StatusMethodNotAllowed)
		return
	}

	position, ok := exportEntryPosition(r.URL.Path)
	if !ok {
		http.Error(w, webtemplates.T(printer, "error.http.not_found"), http.StatusNotFound)
		return
	}

	_, span := tracer.Start(r.Context(), "export.entry.json")
	defer span.End()

	sess := h.ensureSession(w, r)
	entry, ok := sess.store.At(position - 1)
	if !ok {
		http.Error(w, webtemplates.T(printer, "error.http.not_found"), http.StatusNotFound)
		return
	}

	data, err := archive.ExportEntry(entry)
	if err != nil {
		span.RecordError(err)
		http.Error(w, webtemplates.T(printer, "error.export_failed"), http.StatusInternalServerError)
		return
	}
	writeAttachment(w, "application/json; charset=utf-8", archive.EntryExportFileName(position), data)
}

// exportEntryPosition parses "/export/entries/{n}.json" into a 1-based
// position.
func exportEntryPosition(path string) (int, bool) {
	rest, ok := strings.CutPrefix(path, "/export/entries/")
	if !ok {
		return 0, false
	}
	numeric, ok := strings.CutSuffix(rest, ".json")
	if !ok {
		return 0, false
	}
	position, err := strconv.Atoi(numeric)
	if err != nil || position < 1 {
		return 0, false
	}
	return position, true
}

func writeAttachment(w http.ResponseWriter, contentType, fileName string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	_, _ = w.Write(data)
}
