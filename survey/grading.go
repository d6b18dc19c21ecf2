// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/danielhkuo/satisfaction-polygon/models"
)

// MaxElementScore is the ceiling of a single element score
const MaxElementScore = 5

var (
	ErrScoreOutOfRange  = errors.New("score out of range")
	ErrInvalidElementID = errors.New("invalid element id")
)

// ElementScore is the resolved score for one of the user's elements
type ElementScore struct {
	Element models.Element
	Score   int
}

// Result is the outcome of grading one submission
type Result struct {
	Scores  []ElementScore
	Total   int
	Perfect int
	Grade   int
}

// ValidateSubmission rejects entries with a non-positive id or a score
// outside [0, MaxElementScore]
func ValidateSubmission(entries []models.ScoreEntry) error {
	for i, entry := range entries {
		if entry.ID <= 0 {
			return fmt.Errorf("entry %d: id %d: %w", i, entry.ID, ErrInvalidElementID)
		}
		if entry.Score < 0 || entry.Score > MaxElementScore {
			return fmt.Errorf("entry %d: score %d must be between 0 and %d: %w",
				i, entry.Score, MaxElementScore, ErrScoreOutOfRange)
		}
	}
	return nil
}

// ResolveScores pairs every element with its submitted score. Elements
// without a submission get 0, entries for elements the user does not own
// are ignored, and the first entry wins when an id repeats.
func ResolveScores(elements []models.Element, entries []models.ScoreEntry) []ElementScore {
	submitted := make(map[int64]int, len(entries))
	for _, entry := range entries {
		if _, seen := submitted[entry.ID]; !seen {
			submitted[entry.ID] = entry.Score
		}
	}

	scores := make([]ElementScore, 0, len(elements))
	for _, element := range elements {
		scores = append(scores, ElementScore{
			Element: element,
			Score:   submitted[element.ID],
		})
	}
	return scores
}

// ComputeGrade classifies total against elementCount*MaxElementScore into
// tertiles: above 2/3 is high, above 1/3 is medium, anything else is low.
// Zero elements grade low.
func ComputeGrade(total, elementCount int) int {
	if elementCount <= 0 {
		return models.GradeLow
	}
	perfect := elementCount * MaxElementScore

	// compare total/perfect against 2/3 and 1/3 without floating point
	switch {
	case total*3 > perfect*2:
		return models.GradeHigh
	case total*3 > perfect:
		return models.GradeMedium
	default:
		return models.GradeLow
	}
}

// Evaluate resolves, sums and grades a submission against the user's elements
func Evaluate(elements []models.Element, entries []models.ScoreEntry) Result {
	scores := ResolveScores(elements, entries)

	total := 0
	for _, s := range scores {
		total += s.Score
	}

	return Result{
		Scores:  scores,
		Total:   total,
		Perfect: len(elements) * MaxElementScore,
		Grade:   ComputeGrade(total, len(elements)),
	}
}

// PolygonElementName builds the display name "<elementName>_<polygonID>"
func PolygonElementName(elementName string, polygonID int64) string {
	return elementName + "_" + strconv.FormatInt(polygonID, 10)
}
