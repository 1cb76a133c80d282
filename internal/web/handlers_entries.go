package web

import (
	"net/http"
	"time"

	"github.com/a-h/templ"

	"github.com/sunghokang/judgement.archive/internal/archive"
	"github.com/sunghokang/judgement.archive/internal/web/flash"
	webtemplates "github.com/sunghokang/judgement.archive/internal/web/templates"
)

// handleEntrySave validates and stores a submitted record. A record with no
// content is rejected and the form is re-rendered with the typed values kept.
func (h *handler) handleEntrySave(w http.ResponseWriter, r *http.Request) {
	printer, lang := localizer(w, r)
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, webtemplates.T(printer, "error.http.method_not_allowed"), http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	sess := h.ensureSession(w, r)
	mode := archive.ParseVariant(r.PostForm.Get("mode"))
	sess.SetMode(mode)

	fields := make(map[string]string, len(archive.TemplateFields(mode)))
	for _, name := range archive.TemplateFields(mode) {
		fields[name] = r.PostForm.Get(name)
	}

	entry := archive.Build(mode, archive.ParseLanguage(lang), fields, time.Now())
	if !archive.Validate(entry) {
		state := webtemplates.ArchivePageState{
			Mode:    mode,
			Values:  fields,
			Warning: webtemplates.T(printer, "warning.empty_content"),
			Entries: entryViews(sess.store),
		}
		page := h.pageContext(printer, lang, r)
		templ.Handler(webtemplates.ArchivePage(page, state),
			templ.WithStatus(http.StatusBadRequest)).ServeHTTP(w, r)
		return
	}

	sess.store.InsertFront(entry)
	flash.Write(w, flash.NoticeSuccess("flash.saved"))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleClearAll deletes every record in the session.
func (h *handler) handleClearAll(w http.ResponseWriter, r *http.Request) {
	printer, _ := localizer(w, r)
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, webtemplates.T(printer, "error.http.method_not_allowed"), http.StatusMethodNotAllowed)
		return
	}

	sess := h.ensureSession(w, r)
	sess.store.ClearAll()
	flash.Write(w, flash.NoticeInfo("flash.cleared"))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleFormClear discards typed form values without touching saved records.
// State lives in the browser form, so an empty re-render is all it takes.
func (h *handler) handleFormClear(w http.ResponseWriter, r *http.Request) {
	printer, _ := localizer(w, r)
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, webtemplates.T(printer, "error.http.method_not_allowed"), http.StatusMethodNotAllowed)
		return
	}

	h.ensureSession(w, r)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
