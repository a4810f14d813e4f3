package services

import (
	"encoding/json"
	"math"
	"math/rand"
	"sort"

	"github.com/google/uuid"
)

// DecodeOptions parses the JSON-encoded option array stored on a
// quiz question.
func DecodeOptions(raw string) ([]string, error) {
	var options []string
	if err := json.Unmarshal([]byte(raw), &options); err != nil {
		return nil, err
	}
	return options, nil
}

// DecodeIndexes parses a JSON-encoded option index array.
func DecodeIndexes(raw string) ([]int, error) {
	var indexes []int
	if err := json.Unmarshal([]byte(raw), &indexes); err != nil {
		return nil, err
	}
	return indexes, nil
}

// EncodeOptions serializes an option array for storage.
func EncodeOptions(options []string) (string, error) {
	raw, err := json.Marshal(options)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func EncodeIndexes(indexes []int) string {
	raw, _ := json.Marshal(indexes)
	return string(raw)
}

// ShuffleOptions returns the options in a random display order plus
// the permutation that produced it: perm[displayIndex] holds the
// original index of the option now shown at displayIndex. Storage and
// scoring only ever see original indices, so a submitted display
// index must be pushed through the same permutation before use.
func ShuffleOptions(options []string, rng *rand.Rand) ([]string, []int) {
	perm := rng.Perm(len(options))
	shuffled := make([]string, len(options))
	for displayIdx, originalIdx := range perm {
		shuffled[displayIdx] = options[originalIdx]
	}
	return shuffled, perm
}

// RemapToOriginal translates displayed option indices back to the
// original option order using the permutation from ShuffleOptions.
// Out-of-range indices are dropped. The result is sorted.
func RemapToOriginal(selected []int, perm []int) []int {
	original := make([]int, 0, len(selected))
	for _, displayIdx := range selected {
		if displayIdx < 0 || displayIdx >= len(perm) {
			continue
		}
		original = append(original, perm[displayIdx])
	}
	sort.Ints(original)
	return original
}

// IndexSetsEqual reports whether two index slices contain exactly the
// same set of values. A subset or superset of the correct answers
// earns no credit, so exact equality is the scoring rule.
func IndexSetsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[int]bool, len(a))
	for _, v := range a {
		set[v] = true
	}
	if len(set) != len(a) {
		// duplicate entries never match a proper set
		return false
	}
	for _, v := range b {
		if !set[v] {
			return false
		}
	}
	return true
}

// AnswerKey is one question's correct original-index set.
type AnswerKey struct {
	QuestionID uuid.UUID
	Correct    []int
}

// GradedAnswer records the outcome for a single question.
type GradedAnswer struct {
	QuestionID uuid.UUID
	Selected   []int
	IsCorrect  bool
}

// GradeAttempt scores a submission against the answer key. Every
// question carries fullMarks/len(key) marks; a question earns its
// marks only when the selected set exactly equals the correct set.
// The total is rounded to the nearest integer. Selected indices must
// already reference the original option order.
func GradeAttempt(key []AnswerKey, selected map[uuid.UUID][]int, fullMarks int) (int, []GradedAnswer) {
	if len(key) == 0 {
		return 0, nil
	}
	perQuestion := float64(fullMarks) / float64(len(key))

	total := 0.0
	graded := make([]GradedAnswer, 0, len(key))
	for _, k := range key {
		sel := selected[k.QuestionID]
		correct := IndexSetsEqual(sel, k.Correct)
		if correct {
			total += perQuestion
		}
		graded = append(graded, GradedAnswer{
			QuestionID: k.QuestionID,
			Selected:   sel,
			IsCorrect:  correct,
		})
	}
	return int(math.Round(total)), graded
}
