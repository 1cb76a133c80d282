package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Page chrome
	message.SetString(lang, "title.archive", "%s | Decision journal")
	message.SetString(lang, "archive.heading", "Judgement Archive")
	message.SetString(lang, "archive.intro.1", "This is not advice.")
	message.SetString(lang, "archive.intro.2", "This is not prophecy.")
	message.SetString(lang, "archive.intro.3", "No authority is invoked.")
	message.SetString(lang, "archive.intro.4", "Standards, choices, and responsibility stay on record as text.")
	message.SetString(lang, "archive.principles.heading", "Judgment principles")
	message.SetString(lang, "archive.principle.1", "Do not decide now.")
	message.SetString(lang, "archive.principle.2", "Keep the standard; hold the action.")
	message.SetString(lang, "archive.principle.3", "Record the judgment; hand the action to the next step.")
	message.SetString(lang, "archive.footer", "A record is a boundary. A boundary is a promise to reality.")

	// Language nav
	message.SetString(lang, "nav.language", "Language")
	message.SetString(lang, "nav.lang_en", "EN")
	message.SetString(lang, "nav.lang_ko", "KO")

	// Form
	message.SetString(lang, "form.heading", "New record")
	message.SetString(lang, "form.mode.label", "Template")
	message.SetString(lang, "form.mode.simple", "Simple")
	message.SetString(lang, "form.mode.full", "Full")
	message.SetString(lang, "form.save", "Save record")
	message.SetString(lang, "form.clear", "Clear form")

	// Simple template fields
	message.SetString(lang, "field.one_sentence_problem", "The problem in one sentence")
	message.SetString(lang, "field.stance", "Stance")
	message.SetString(lang, "field.next_smallest_step", "Next smallest step")
	message.SetString(lang, "field.boundary_not_to_cross", "Boundary not to cross")

	// Full template fields
	message.SetString(lang, "field.title", "Title (one line)")
	message.SetString(lang, "field.context", "Context (facts only)")
	message.SetString(lang, "field.decision", "Decision (concretely)")
	message.SetString(lang, "field.alternatives", "Alternatives")
	message.SetString(lang, "field.standards", "Standards used")
	message.SetString(lang, "field.refuse_to_betray", "What I refuse to betray")
	message.SetString(lang, "field.assumptions", "Assumptions (what I believe is true)")
	message.SetString(lang, "field.unknowns", "Unknowns (what I have not confirmed)")
	message.SetString(lang, "field.risk_boundary", "Risk / downside boundary")
	message.SetString(lang, "field.sequence_next_steps", "Next steps, in order")
	message.SetString(lang, "field.signals_to_watch", "Signals to watch")
	message.SetString(lang, "field.review_checkpoint", "Review checkpoint")
	message.SetString(lang, "field.notes", "Notes (short)")

	// Saved records
	message.SetString(lang, "entries.heading", "Saved records")
	message.SetString(lang, "entries.empty", "No records in this session yet.")
	message.SetString(lang, "entries.clear_all", "Clear all")
	message.SetString(lang, "entries.download", "Download JSON")
	message.SetString(lang, "entries.download_all", "Download all (JSON)")
	message.SetString(lang, "entries.download_csv", "Download all (CSV)")

	// Notices and errors
	message.SetString(lang, "flash.saved", "Record saved.")
	message.SetString(lang, "flash.cleared", "All records cleared.")
	message.SetString(lang, "warning.empty_content", "Nothing to save: the record is empty.")
	message.SetString(lang, "error.http.method_not_allowed", "method not allowed")
	message.SetString(lang, "error.http.not_found", "not found")
	message.SetString(lang, "error.export_failed", "export failed; saved records are intact")
}
