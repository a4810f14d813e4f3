package services

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
)

func TestShuffleOptionsIsPermutation(t *testing.T) {
	options := []string{"a", "b", "c", "d"}

	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		shuffled, perm := ShuffleOptions(options, rng)

		if len(shuffled) != len(options) || len(perm) != len(options) {
			t.Fatalf("seed %d: length mismatch", seed)
		}
		for displayIdx, originalIdx := range perm {
			if shuffled[displayIdx] != options[originalIdx] {
				t.Errorf("seed %d: shuffled[%d] = %q, want %q", seed, displayIdx, shuffled[displayIdx], options[originalIdx])
			}
		}
	}
}

func TestShuffleRemapRoundTrip(t *testing.T) {
	options := []string{"a", "b", "c", "d"}

	// selecting the displayed "b" must always store original index 1,
	// whatever the permutation was.
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		shuffled, perm := ShuffleOptions(options, rng)

		displayIdx := -1
		for i, opt := range shuffled {
			if opt == "b" {
				displayIdx = i
				break
			}
		}
		if displayIdx == -1 {
			t.Fatalf("seed %d: option b missing after shuffle", seed)
		}

		original := RemapToOriginal([]int{displayIdx}, perm)
		if len(original) != 1 || original[0] != 1 {
			t.Errorf("seed %d: remapped %v, want [1]", seed, original)
		}
	}
}

func TestRemapToOriginalDropsOutOfRange(t *testing.T) {
	perm := []int{2, 0, 1}

	original := RemapToOriginal([]int{-1, 0, 5, 2}, perm)
	if len(original) != 2 {
		t.Fatalf("expected 2 surviving indices, got %v", original)
	}
	if original[0] != 1 || original[1] != 2 {
		t.Errorf("remapped = %v, want [1 2]", original)
	}
}

func TestIndexSetsEqual(t *testing.T) {
	tests := []struct {
		name string
		a    []int
		b    []int
		want bool
	}{
		{"same order", []int{0, 2}, []int{0, 2}, true},
		{"reversed order", []int{0, 2}, []int{2, 0}, true},
		{"subset earns nothing", []int{0}, []int{0, 2}, false},
		{"superset earns nothing", []int{0, 1, 2}, []int{0, 2}, false},
		{"disjoint", []int{1}, []int{0}, false},
		{"duplicates never match", []int{0, 0}, []int{0, 2}, false},
		{"both empty", nil, nil, true},
		{"empty vs non-empty", nil, []int{0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IndexSetsEqual(tt.a, tt.b); got != tt.want {
				t.Errorf("IndexSetsEqual(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestGradeAttempt(t *testing.T) {
	q1 := uuid.New()
	q2 := uuid.New()
	q3 := uuid.New()

	key := []AnswerKey{
		{QuestionID: q1, Correct: []int{1}},
		{QuestionID: q2, Correct: []int{0, 2}},
		{QuestionID: q3, Correct: []int{3}},
	}

	// one correct out of three at 10 marks: 3.33 rounds to 3
	selected := map[uuid.UUID][]int{
		q1: {1},
		q2: {0},
		q3: {0},
	}
	score, graded := GradeAttempt(key, selected, 10)
	if score != 3 {
		t.Errorf("score = %d, want 3", score)
	}
	if len(graded) != 3 {
		t.Fatalf("expected 3 graded answers, got %d", len(graded))
	}
	if !graded[0].IsCorrect || graded[1].IsCorrect || graded[2].IsCorrect {
		t.Errorf("graded correctness = %v %v %v, want true false false",
			graded[0].IsCorrect, graded[1].IsCorrect, graded[2].IsCorrect)
	}

	// two correct out of three at 10 marks: 6.67 rounds to 7
	selected[q2] = []int{2, 0}
	score, _ = GradeAttempt(key, selected, 10)
	if score != 7 {
		t.Errorf("score = %d, want 7", score)
	}

	// all correct gives exactly full marks
	selected[q3] = []int{3}
	score, _ = GradeAttempt(key, selected, 10)
	if score != 10 {
		t.Errorf("score = %d, want 10", score)
	}
}

func TestGradeAttemptUnansweredQuestionIsWrong(t *testing.T) {
	q1 := uuid.New()
	q2 := uuid.New()
	key := []AnswerKey{
		{QuestionID: q1, Correct: []int{0}},
		{QuestionID: q2, Correct: []int{1}},
	}

	score, graded := GradeAttempt(key, map[uuid.UUID][]int{q1: {0}}, 100)
	if score != 50 {
		t.Errorf("score = %d, want 50", score)
	}
	if graded[1].IsCorrect {
		t.Errorf("unanswered question graded correct")
	}
}

func TestGradeAttemptEmptyKey(t *testing.T) {
	score, graded := GradeAttempt(nil, nil, 100)
	if score != 0 || graded != nil {
		t.Errorf("empty key: score = %d, graded = %v, want 0 and nil", score, graded)
	}
}

func TestOptionCodecRoundTrip(t *testing.T) {
	options := []string{"Dhaka", "Chattogram", "Sylhet"}

	raw, err := EncodeOptions(options)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := DecodeOptions(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded) != len(options) {
		t.Fatalf("decoded %d options, want %d", len(decoded), len(options))
	}
	for i := range options {
		if decoded[i] != options[i] {
			t.Errorf("option %d = %q, want %q", i, decoded[i], options[i])
		}
	}

	indexes, err := DecodeIndexes(EncodeIndexes([]int{0, 2}))
	if err != nil {
		t.Fatalf("decode indexes: %v", err)
	}
	if len(indexes) != 2 || indexes[0] != 0 || indexes[1] != 2 {
		t.Errorf("indexes = %v, want [0 2]", indexes)
	}
}
