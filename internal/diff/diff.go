package diff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Type represents the kind of a diff line
type Type int

const (
	Equal Type = iota
	Insert
	Delete
)

// Line is a single line of the rendered diff
type Line struct {
	Type    Type
	Content string
}

// Result contains the line diff between two texts
type Result struct {
	Identical    bool
	Lines        []Line
	LinesAdded   int
	LinesRemoved int
}

// Strings computes a line-based diff between two texts using go-diff's
// line mode. Desktop files are small, so the whole file is returned as
// a flat line list rather than hunks.
func Strings(oldText, newText string) *Result {
	result := &Result{}
	if oldText == newText {
		result.Identical = true
		return result
	}

	dmp := diffmatchpatch.New()
	chars1, chars2, lineArray := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffMain(chars1, chars2, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)
	diffs = dmp.DiffCleanupSemantic(diffs)

	if len(diffs) == 1 && diffs[0].Type == diffmatchpatch.DiffEqual {
		result.Identical = true
		return result
	}

	for _, d := range diffs {
		text := strings.TrimSuffix(d.Text, "\n")
		if text == "" && d.Text == "" {
			continue
		}

		for _, line := range strings.Split(text, "\n") {
			switch d.Type {
			case diffmatchpatch.DiffInsert:
				result.Lines = append(result.Lines, Line{Type: Insert, Content: line})
				result.LinesAdded++
			case diffmatchpatch.DiffDelete:
				result.Lines = append(result.Lines, Line{Type: Delete, Content: line})
				result.LinesRemoved++
			default:
				result.Lines = append(result.Lines, Line{Type: Equal, Content: line})
			}
		}
	}

	return result
}
