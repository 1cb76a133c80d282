package archive

import "testing"

func collect(s *Store) []Entry {
	var out []Entry
	for e := range s.All() {
		out = append(out, e)
	}
	return out
}

func TestInsertFrontPrependsAndShiftsExisting(t *testing.T) {
	store := NewStore()
	first := Build(VariantSimple, LanguageEN, map[string]string{FieldStance: "first"}, buildTime)
	second := Build(VariantSimple, LanguageEN, map[string]string{FieldStance: "second"}, buildTime)

	store.InsertFront(first)
	store.InsertFront(second)

	if store.Len() != 2 {
		t.Fatalf("len = %d, want 2", store.Len())
	}
	got, ok := store.At(0)
	if !ok || got.(*SimpleEntry).Stance != "second" {
		t.Fatalf("index 0 = %v, want the newest entry", got)
	}
	got, ok = store.At(1)
	if !ok || got.(*SimpleEntry).Stance != "first" {
		t.Fatalf("index 1 = %v, want the previous entry shifted by one", got)
	}
}

func TestAtOutOfRange(t *testing.T) {
	store := NewStore()
	if _, ok := store.At(0); ok {
		t.Fatal("expected no entry at index 0 of an empty store")
	}
	if _, ok := store.At(-1); ok {
		t.Fatal("expected no entry at negative index")
	}
}

func TestClearAllEmptiesStore(t *testing.T) {
	store := NewStore()
	store.InsertFront(Build(VariantSimple, LanguageEN, map[string]string{FieldStance: "x"}, buildTime))
	store.InsertFront(Build(VariantFull, LanguageKO, map[string]string{FieldTitle: "y"}, buildTime))

	store.ClearAll()

	if store.Len() != 0 {
		t.Fatalf("len = %d, want 0", store.Len())
	}
	if entries := collect(store); len(entries) != 0 {
		t.Fatalf("All yielded %d entries after clear, want none", len(entries))
	}
}

func TestAllIsRestartable(t *testing.T) {
	store := NewStore()
	store.InsertFront(Build(VariantSimple, LanguageEN, map[string]string{FieldStance: "a"}, buildTime))
	store.InsertFront(Build(VariantSimple, LanguageEN, map[string]string{FieldStance: "b"}, buildTime))

	seq := store.All()
	var firstPass, secondPass []string
	for e := range seq {
		firstPass = append(firstPass, e.(*SimpleEntry).Stance)
	}
	for e := range seq {
		secondPass = append(secondPass, e.(*SimpleEntry).Stance)
	}

	if len(firstPass) != 2 || len(secondPass) != 2 {
		t.Fatalf("passes = %d/%d entries, want 2/2", len(firstPass), len(secondPass))
	}
	for i := range firstPass {
		if firstPass[i] != secondPass[i] {
			t.Fatalf("restarted pass diverged at %d: %q vs %q", i, firstPass[i], secondPass[i])
		}
	}
}

func TestAllRestartObservesMutation(t *testing.T) {
	store := NewStore()
	store.InsertFront(Build(VariantSimple, LanguageEN, map[string]string{FieldStance: "a"}, buildTime))

	seq := store.All()
	for range seq {
	}
	store.InsertFront(Build(VariantSimple, LanguageEN, map[string]string{FieldStance: "b"}, buildTime))

	var stances []string
	for e := range seq {
		stances = append(stances, e.(*SimpleEntry).Stance)
	}
	if len(stances) != 2 || stances[0] != "b" {
		t.Fatalf("restarted pass = %v, want fresh snapshot with newest first", stances)
	}
}

func TestInsertFrontIgnoresNil(t *testing.T) {
	store := NewStore()
	store.InsertFront(nil)
	if store.Len() != 0 {
		t.Fatalf("len = %d, want 0", store.Len())
	}
}
