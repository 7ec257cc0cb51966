package diffutil

import "unicode/utf8"

// Record is the result of diffing two blobs at a path (spec §4.6 /
// §9 "promote dynamic record shapes to closed tagged variant types").
type Record struct {
	Path      string
	IsBinary  bool
	Diff      string // unified diff text; "" when binary or identical
	Additions int
	Deletions int
}

// Diff computes a unified diff between oldContent and newContent at
// path. Either buffer may be nil (treated as empty, per §4.6 "read
// missing hashes as empty byte strings"). If either buffer fails strict
// UTF-8 validation, the pair is treated as binary and no diff text is
// produced.
func Diff(oldContent, newContent []byte, path string) Record {
	if !utf8.Valid(oldContent) || !utf8.Valid(newContent) {
		return Record{Path: path, IsBinary: true}
	}

	oldLines := splitLines(oldContent)
	newLines := splitLines(newContent)
	changes := MyersDiff(oldLines, newLines)

	text := ToUnified(path, oldLines, newLines, changes)
	additions, deletions := countChanges(changes)
	return Record{Path: path, Diff: text, Additions: additions, Deletions: deletions}
}

// countChanges sums the Del/Ins spans of the edit script — equivalent to
// counting "-"/"+" prefixed lines in the rendered unified text, excluding
// the "---"/"+++" headers (spec §4.6).
func countChanges(changes []Change) (additions, deletions int) {
	for _, c := range changes {
		deletions += c.Del
		additions += c.Ins
	}
	return additions, deletions
}
