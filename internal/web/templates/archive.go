package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/sunghokang/judgement.archive/internal/archive"
)

// ArchivePageState carries everything the journal page renders.
type ArchivePageState struct {
	// Mode selects which form template is shown.
	Mode archive.Variant
	// Values holds the current form field values, keyed by field name.
	// Populated when a rejected submission is re-rendered.
	Values map[string]string
	// Warning is a localized validation message shown above the form.
	Warning string
	// Notice is a localized flash message from the previous request.
	Notice string
	// Entries lists the session's saved records, newest first.
	Entries []EntryView
}

// EntryView is one saved record prepared for display.
type EntryView struct {
	// Position is the 1-based newest-first position, matching the
	// per-entry download file name.
	Position   int
	RecordedAt string
	Variant    archive.Variant
	Fields     []archive.Field
}

// multilineFields marks form fields rendered as textareas; the rest are
// single-line inputs.
var multilineFields = map[string]bool{
	archive.FieldNextSmallestStep:   true,
	archive.FieldBoundaryNotToCross: true,
	archive.FieldContext:            true,
	archive.FieldDecision:           true,
	archive.FieldAlternatives:       true,
	archive.FieldStandards:          true,
	archive.FieldRefuseToBetray:     true,
	archive.FieldAssumptions:        true,
	archive.FieldUnknowns:           true,
	archive.FieldRiskBoundary:       true,
	archive.FieldSequenceNextSteps:  true,
	archive.FieldSignalsToWatch:     true,
	archive.FieldNotes:              true,
}

// ArchivePage renders the journal: intro, principles, entry form, and the
// saved-record list with download links.
func ArchivePage(page PageContext, state ArchivePageState) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}

		hw.raw("<!DOCTYPE html>\n")
		hw.rawf("<html lang=\"%s\">\n", templ.EscapeString(page.Lang))
		writeHead(hw, page)
		hw.raw("<body>\n")
		writeHeader(hw, page)
		hw.raw("<main>\n")
		writeBanners(hw, state)
		writeIntro(hw, page)
		writePrinciples(hw, page)
		writeEntryForm(hw, page, state)
		writeEntries(hw, page, state)
		hw.raw("</main>\n")
		hw.rawf("<footer><p>%s</p></footer>\n", templ.EscapeString(T(page.Loc, "archive.footer")))
		hw.raw("</body>\n</html>\n")

		return hw.err
	})
}

func writeHead(hw *htmlWriter, page PageContext) {
	hw.raw("<head>\n<meta charset=\"utf-8\">\n")
	hw.raw("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	hw.rawf("<title>%s</title>\n", templ.EscapeString(T(page.Loc, "title.archive", page.AppName)))
	hw.raw("<link rel=\"stylesheet\" href=\"/static/style.css\">\n")
	hw.raw("</head>\n")
}

func writeHeader(hw *htmlWriter, page PageContext) {
	hw.raw("<header>\n")
	hw.rawf("<h1>%s</h1>\n", templ.EscapeString(T(page.Loc, "archive.heading")))
	hw.rawf("<nav class=\"languages\" aria-label=\"%s\">\n", templ.EscapeString(T(page.Loc, "nav.language")))
	for _, option := range LanguageOptions(page) {
		class := "lang"
		if option.Active {
			class = "lang active"
		}
		hw.rawf("<a class=\"%s\" href=\"%s\">%s</a>\n",
			class, templ.EscapeString(option.URL), templ.EscapeString(option.Label))
	}
	hw.raw("</nav>\n</header>\n")
}

func writeBanners(hw *htmlWriter, state ArchivePageState) {
	if state.Notice != "" {
		hw.rawf("<p class=\"notice\" role=\"status\">%s</p>\n", templ.EscapeString(state.Notice))
	}
	if state.Warning != "" {
		hw.rawf("<p class=\"warning\" role=\"alert\">%s</p>\n", templ.EscapeString(state.Warning))
	}
}

func writeIntro(hw *htmlWriter, page PageContext) {
	hw.raw("<section class=\"intro\">\n<ul>\n")
	for _, key := range []string{"archive.intro.1", "archive.intro.2", "archive.intro.3", "archive.intro.4"} {
		hw.rawf("<li>%s</li>\n", templ.EscapeString(T(page.Loc, key)))
	}
	hw.raw("</ul>\n</section>\n")
}

func writePrinciples(hw *htmlWriter, page PageContext) {
	hw.raw("<section class=\"principles\">\n")
	hw.rawf("<h2>%s</h2>\n<ol>\n", templ.EscapeString(T(page.Loc, "archive.principles.heading")))
	for _, key := range []string{"archive.principle.1", "archive.principle.2", "archive.principle.3"} {
		hw.rawf("<li>%s</li>\n", templ.EscapeString(T(page.Loc, key)))
	}
	hw.raw("</ol>\n</section>\n")
}

func writeEntryForm(hw *htmlWriter, page PageContext, state ArchivePageState) {
	hw.raw("<section class=\"entry-form\">\n")
	hw.rawf("<h2>%s</h2>\n", templ.EscapeString(T(page.Loc, "form.heading")))

	hw.rawf("<nav class=\"modes\" aria-label=\"%s\">\n", templ.EscapeString(T(page.Loc, "form.mode.label")))
	for _, variant := range []archive.Variant{archive.VariantSimple, archive.VariantFull} {
		class := "mode"
		if variant == state.Mode {
			class = "mode active"
		}
		hw.rawf("<a class=\"%s\" href=\"/?mode=%s\">%s</a>\n",
			class, string(variant), templ.EscapeString(T(page.Loc, "form.mode."+string(variant))))
	}
	hw.raw("</nav>\n")

	hw.raw("<form method=\"post\" action=\"/entries\">\n")
	hw.rawf("<input type=\"hidden\" name=\"mode\" value=\"%s\">\n", string(state.Mode))
	for _, name := range archive.TemplateFields(state.Mode) {
		label := templ.EscapeString(T(page.Loc, "field."+name))
		value := state.Values[name]
		hw.rawf("<label for=\"%s\">%s</label>\n", name, label)
		if multilineFields[name] {
			hw.rawf("<textarea id=\"%s\" name=\"%s\" rows=\"3\">%s</textarea>\n",
				name, name, templ.EscapeString(value))
		} else {
			hw.rawf("<input type=\"text\" id=\"%s\" name=\"%s\" value=\"%s\">\n",
				name, name, templ.EscapeString(value))
		}
	}
	hw.rawf("<button type=\"submit\">%s</button>\n", templ.EscapeString(T(page.Loc, "form.save")))
	hw.raw("</form>\n")

	hw.raw("<form method=\"post\" action=\"/form/clear\">\n")
	hw.rawf("<button type=\"submit\" class=\"secondary\">%s</button>\n", templ.EscapeString(T(page.Loc, "form.clear")))
	hw.raw("</form>\n</section>\n")
}

func writeEntries(hw *htmlWriter, page PageContext, state ArchivePageState) {
	hw.raw("<section class=\"entries\">\n")
	hw.rawf("<h2>%s</h2>\n", templ.EscapeString(T(page.Loc, "entries.heading")))

	if len(state.Entries) == 0 {
		hw.rawf("<p class=\"empty\">%s</p>\n", templ.EscapeString(T(page.Loc, "entries.empty")))
		hw.raw("</section>\n")
		return
	}

	hw.raw("<nav class=\"exports\">\n")
	hw.rawf("<a href=\"/export/all.json\" download>%s</a>\n", templ.EscapeString(T(page.Loc, "entries.download_all")))
	hw.rawf("<a href=\"/export/all.csv\" download>%s</a>\n", templ.EscapeString(T(page.Loc, "entries.download_csv")))
	hw.raw("</nav>\n")

	hw.raw("<form method=\"post\" action=\"/entries/clear\">\n")
	hw.rawf("<button type=\"submit\" class=\"danger\">%s</button>\n", templ.EscapeString(T(page.Loc, "entries.clear_all")))
	hw.raw("</form>\n")

	hw.raw("<ol class=\"entry-list\">\n")
	for _, entry := range state.Entries {
		hw.raw("<li class=\"entry\">\n")
		hw.rawf("<p class=\"meta\"><time>%s</time> <span class=\"variant\">%s</span></p>\n",
			templ.EscapeString(entry.RecordedAt),
			templ.EscapeString(T(page.Loc, "form.mode."+string(entry.Variant))))
		hw.raw("<dl>\n")
		for _, field := range entry.Fields {
			if field.Value == "" {
				continue
			}
			hw.rawf("<dt>%s</dt>\n<dd>%s</dd>\n",
				templ.EscapeString(T(page.Loc, "field."+field.Name)),
				templ.EscapeString(field.Value))
		}
		hw.raw("</dl>\n")
		hw.rawf("<a href=\"/export/entries/%d.json\" download>%s</a>\n",
			entry.Position, templ.EscapeString(T(page.Loc, "entries.download")))
		hw.raw("</li>\n")
	}
	hw.raw("</ol>\n</section>\n")
}

// htmlWriter accumulates the first write error so components can emit
// markup without checking every call.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (hw *htmlWriter) raw(s string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, s)
}

func (hw *htmlWriter) rawf(format string, args ...any) {
	if hw.err != nil {
		return
	}
	_, hw.err = fmt.Fprintf(hw.w, format, args...)
}
