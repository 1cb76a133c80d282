package archive

// Validate reports whether an entry carries enough content to be saved.
// The simple template needs one of problem, stance, or next step; the full
// template needs one of title, decision, or standards. Fields are already
// trimmed by Build, so emptiness checks are plain comparisons.
func Validate(e Entry) bool {
	switch v := e.(type) {
	case *SimpleEntry:
		return v.OneSentenceProblem != "" || v.Stance != "" || v.NextSmallestStep != ""
	case *FullEntry:
		return v.Title != "" || v.Decision != "" || v.Standards != ""
	default:
		return false
	}
}
