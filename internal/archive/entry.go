// Package archive implements the judgment entry model: the two entry
// templates, construction from raw form input, save validation, the
// session-scoped store, and the download serializers.
package archive

import (
	"strings"
	"time"
)

// Version is the schema version stamped into entry metadata.
const Version = "1.0"

// Language selects the UI language an entry was written in.
type Language string

const (
	LanguageEN Language = "en"
	LanguageKO Language = "ko"
)

// ParseLanguage coerces unknown values to English.
func ParseLanguage(value string) Language {
	if Language(strings.TrimSpace(value)) == LanguageKO {
		return LanguageKO
	}
	return LanguageEN
}

// Variant selects one of the two entry templates.
type Variant string

const (
	VariantSimple Variant = "simple"
	VariantFull   Variant = "full"
)

// ParseVariant coerces unknown values to the simple template.
func ParseVariant(value string) Variant {
	if Variant(strings.TrimSpace(value)) == VariantFull {
		return VariantFull
	}
	return VariantSimple
}

// Meta describes how an entry was recorded. The JSON field order
// (language, type, version) is part of the export contract.
type Meta struct {
	Language Language `json:"language"`
	Type     Variant  `json:"type"`
	Version  string   `json:"version"`
}

// Entry is one saved judgment record, either a *SimpleEntry or a
// *FullEntry. The marker method keeps the union closed.
type Entry interface {
	RecordedAt() string
	Variant() Variant
	EntryMeta() Meta
	Fields() []Field
	isEntry()
}

// Field is one named free-text value of an entry, in template order.
type Field struct {
	Name  string
	Value string
}

// SimpleEntry is the short decision template. Struct field declaration
// order fixes the JSON export order; encoding/json emits fields as declared.
type SimpleEntry struct {
	Recorded           string `json:"recorded_at"`
	OneSentenceProblem string `json:"one_sentence_problem"`
	Stance             string `json:"stance"`
	NextSmallestStep   string `json:"next_smallest_step"`
	BoundaryNotToCross string `json:"boundary_not_to_cross"`
	Meta               Meta   `json:"meta"`
}

func (e *SimpleEntry) RecordedAt() string { return e.Recorded }
func (e *SimpleEntry) Variant() Variant   { return VariantSimple }
func (e *SimpleEntry) EntryMeta() Meta    { return e.Meta }
func (e *SimpleEntry) isEntry()           {}

// Fields returns the template fields in declaration order.
func (e *SimpleEntry) Fields() []Field {
	return []Field{
		{FieldOneSentenceProblem, e.OneSentenceProblem},
		{FieldStance, e.Stance},
		{FieldNextSmallestStep, e.NextSmallestStep},
		{FieldBoundaryNotToCross, e.BoundaryNotToCross},
	}
}

// FullEntry is the long decision template.
type FullEntry struct {
	Recorded          string `json:"recorded_at"`
	Title             string `json:"title"`
	Context           string `json:"context"`
	Decision          string `json:"decision"`
	Alternatives      string `json:"alternatives"`
	Standards         string `json:"standards"`
	RefuseToBetray    string `json:"refuse_to_betray"`
	Assumptions       string `json:"assumptions"`
	Unknowns          string `json:"unknowns"`
	RiskBoundary      string `json:"risk_boundary"`
	SequenceNextSteps string `json:"sequence_next_steps"`
	SignalsToWatch    string `json:"signals_to_watch"`
	ReviewCheckpoint  string `json:"review_checkpoint"`
	Notes             string `json:"notes"`
	Meta              Meta   `json:"meta"`
}

func (e *FullEntry) RecordedAt() string { return e.Recorded }
func (e *FullEntry) Variant() Variant   { return VariantFull }
func (e *FullEntry) EntryMeta() Meta    { return e.Meta }
func (e *FullEntry) isEntry()           {}

// Fields returns the template fields in declaration order.
func (e *FullEntry) Fields() []Field {
	return []Field{
		{FieldTitle, e.Title},
		{FieldContext, e.Context},
		{FieldDecision, e.Decision},
		{FieldAlternatives, e.Alternatives},
		{FieldStandards, e.Standards},
		{FieldRefuseToBetray, e.RefuseToBetray},
		{FieldAssumptions, e.Assumptions},
		{FieldUnknowns, e.Unknowns},
		{FieldRiskBoundary, e.RiskBoundary},
		{FieldSequenceNextSteps, e.SequenceNextSteps},
		{FieldSignalsToWatch, e.SignalsToWatch},
		{FieldReviewCheckpoint, e.ReviewCheckpoint},
		{FieldNotes, e.Notes},
	}
}

// Field names shared by the form inputs and the JSON export keys.
const (
	FieldOneSentenceProblem = "one_sentence_problem"
	FieldStance             = "stance"
	FieldNextSmallestStep   = "next_smallest_step"
	FieldBoundaryNotToCross = "boundary_not_to_cross"

	FieldTitle             = "title"
	FieldContext           = "context"
	FieldDecision          = "decision"
	FieldAlternatives      = "alternatives"
	FieldStandards         = "standards"
	FieldRefuseToBetray    = "refuse_to_betray"
	FieldAssumptions       = "assumptions"
	FieldUnknowns          = "unknowns"
	FieldRiskBoundary      = "risk_boundary"
	FieldSequenceNextSteps = "sequence_next_steps"
	FieldSignalsToWatch    = "signals_to_watch"
	FieldReviewCheckpoint  = "review_checkpoint"
	FieldNotes             = "notes"
)

// TemplateFields lists the field names of a variant in form order.
func TemplateFields(variant Variant) []string {
	if variant == VariantFull {
		return []string{
			FieldTitle, FieldContext, FieldDecision, FieldAlternatives,
			FieldStandards, FieldRefuseToBetray, FieldAssumptions,
			FieldUnknowns, FieldRiskBoundary, FieldSequenceNextSteps,
			FieldSignalsToWatch, FieldReviewCheckpoint, FieldNotes,
		}
	}
	return []string{
		FieldOneSentenceProblem, FieldStance,
		FieldNextSmallestStep, FieldBoundaryNotToCross,
	}
}

const recordedAtLayout = "2006-01-02 15:04:05"

// recordedAtZone is the fixed journal timezone. A FixedZone avoids a
// runtime tzdata dependency.
var recordedAtZone = time.FixedZone("UTC+9", 9*60*60)

func formatRecordedAt(now time.Time) string {
	return now.In(recordedAtZone).Format(recordedAtLayout) + " (UTC+9)"
}

// Build constructs an entry of the requested variant from raw form values.
// Every value is trimmed of surrounding whitespace; unknown field names are
// ignored and missing fields default to empty. No field-level format
// validation happens here: free text is accepted as-is. The recorded_at
// stamp is set exactly once, from now, and never mutated afterwards.
func Build(variant Variant, lang Language, fields map[string]string, now time.Time) Entry {
	get := func(name string) string { return strings.TrimSpace(fields[name]) }
	meta := Meta{Language: lang, Type: variant, Version: Version}
	recorded := formatRecordedAt(now)

	if variant == VariantFull {
		return &FullEntry{
			Recorded:          recorded,
			Title:             get(FieldTitle),
			Context:           get(FieldContext),
			Decision:          get(FieldDecision),
			Alternatives:      get(FieldAlternatives),
			Standards:         get(FieldStandards),
			RefuseToBetray:    get(FieldRefuseToBetray),
			Assumptions:       get(FieldAssumptions),
			Unknowns:          get(FieldUnknowns),
			RiskBoundary:      get(FieldRiskBoundary),
			SequenceNextSteps: get(FieldSequenceNextSteps),
			SignalsToWatch:    get(FieldSignalsToWatch),
			ReviewCheckpoint:  get(FieldReviewCheckpoint),
			Notes:             get(FieldNotes),
			Meta:              meta,
		}
	}
	return &SimpleEntry{
		Recorded:           recorded,
		OneSentenceProblem: get(FieldOneSentenceProblem),
		Stance:             get(FieldStance),
		NextSmallestStep:   get(FieldNextSmallestStep),
		BoundaryNotToCross: get(FieldBoundaryNotToCross),
		Meta:               meta,
	}
}
