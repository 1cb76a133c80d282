package archive

import (
	"testing"
	"time"
)

// buildTime is 2025-08-31 12:30:05 UTC, which is 21:30:05 in the fixed
// UTC+9 journal zone.
var buildTime = time.Date(2025, 8, 31, 12, 30, 5, 0, time.UTC)

const wantRecordedAt = "2025-08-31 21:30:05 (UTC+9)"

func TestBuildSimpleTrimsAndStamps(t *testing.T) {
	entry := Build(VariantSimple, LanguageEN, map[string]string{
		FieldOneSentenceProblem: "  Ship or hold?  ",
		FieldStance:             "\tHold\n",
		FieldNextSmallestStep:   "Re-check in 2 weeks",
		FieldBoundaryNotToCross: "   ",
	}, buildTime)

	simple, ok := entry.(*SimpleEntry)
	if !ok {
		t.Fatalf("entry type = %T, want *SimpleEntry", entry)
	}
	if simple.Recorded != wantRecordedAt {
		t.Fatalf("recorded_at = %q, want %q", simple.Recorded, wantRecordedAt)
	}
	if simple.OneSentenceProblem != "Ship or hold?" {
		t.Fatalf("one_sentence_problem = %q", simple.OneSentenceProblem)
	}
	if simple.Stance != "Hold" {
		t.Fatalf("stance = %q", simple.Stance)
	}
	if simple.BoundaryNotToCross != "" {
		t.Fatalf("boundary_not_to_cross = %q, want empty", simple.BoundaryNotToCross)
	}
	want := Meta{Language: LanguageEN, Type: VariantSimple, Version: "1.0"}
	if simple.Meta != want {
		t.Fatalf("meta = %+v, want %+v", simple.Meta, want)
	}
}

func TestBuildFullDefaultsMissingFieldsToEmpty(t *testing.T) {
	entry := Build(VariantFull, LanguageEN, map[string]string{
		FieldTitle: "Decline offer",
	}, buildTime)

	full, ok := entry.(*FullEntry)
	if !ok {
		t.Fatalf("entry type = %T, want *FullEntry", entry)
	}
	if full.Title != "Decline offer" {
		t.Fatalf("title = %q", full.Title)
	}
	for _, f := range full.Fields() {
		if f.Name == FieldTitle {
			continue
		}
		if f.Value != "" {
			t.Fatalf("field %s = %q, want empty", f.Name, f.Value)
		}
	}
	if full.Recorded != wantRecordedAt {
		t.Fatalf("recorded_at = %q, want %q", full.Recorded, wantRecordedAt)
	}
}

func TestBuildIgnoresUnknownFieldNames(t *testing.T) {
	entry := Build(VariantSimple, LanguageKO, map[string]string{
		FieldStance: "보류",
		"public":    "true",
		"title":     "does not belong to the simple template",
	}, buildTime)

	simple := entry.(*SimpleEntry)
	if simple.Stance != "보류" {
		t.Fatalf("stance = %q", simple.Stance)
	}
	if simple.OneSentenceProblem != "" {
		t.Fatalf("one_sentence_problem = %q, want empty", simple.OneSentenceProblem)
	}
}

func TestParseLanguageFallsBackToEnglish(t *testing.T) {
	cases := map[string]Language{
		"ko":      LanguageKO,
		"en":      LanguageEN,
		"":        LanguageEN,
		"pt-BR":   LanguageEN,
		"kor ean": LanguageEN,
	}
	for value, want := range cases {
		if got := ParseLanguage(value); got != want {
			t.Fatalf("ParseLanguage(%q) = %q, want %q", value, got, want)
		}
	}
}

func TestParseVariantFallsBackToSimple(t *testing.T) {
	if got := ParseVariant("full"); got != VariantFull {
		t.Fatalf("ParseVariant(full) = %q", got)
	}
	if got := ParseVariant("wide"); got != VariantSimple {
		t.Fatalf("ParseVariant(wide) = %q, want simple", got)
	}
}

func TestTemplateFieldsMatchEntryFields(t *testing.T) {
	for _, variant := range []Variant{VariantSimple, VariantFull} {
		names := TemplateFields(variant)
		entry := Build(variant, LanguageEN, nil, buildTime)
		fields := entry.Fields()
		if len(fields) != len(names) {
			t.Fatalf("%s: %d fields, want %d", variant, len(fields), len(names))
		}
		for i, f := range fields {
			if f.Name != names[i] {
				t.Fatalf("%s field %d = %q, want %q", variant, i, f.Name, names[i])
			}
		}
	}
}
