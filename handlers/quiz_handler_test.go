package handlers

import "testing"

func TestValidQuestionIndexes(t *testing.T) {
	tests := []struct {
		name string
		q    QuizQuestionRequest
		want bool
	}{
		{
			"single answer in range",
			QuizQuestionRequest{Options: []string{"a", "b", "c"}, CorrectAnswers: []int{1}},
			true,
		},
		{
			"multi answer in range",
			QuizQuestionRequest{Options: []string{"a", "b", "c", "d"}, CorrectAnswers: []int{0, 3}},
			true,
		},
		{
			"index past last option",
			QuizQuestionRequest{Options: []string{"a", "b"}, CorrectAnswers: []int{2}},
			false,
		},
		{
			"negative index",
			QuizQuestionRequest{Options: []string{"a", "b"}, CorrectAnswers: []int{-1}},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validQuestionIndexes(tt.q); got != tt.want {
				t.Errorf("validQuestionIndexes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQuizRequestValidation(t *testing.T) {
	valid := QuizRequest{
		BatchID:   "a3bb189e-8bf9-4c8b-9f36-7d2c08e5a1b1",
		Title:     "Algebra basics",
		Chapter:   "chapter-1",
		FullMarks: 20,
		Questions: []QuizQuestionRequest{
			{QuestionText: "2+2?", Options: []string{"3", "4"}, CorrectAnswers: []int{1}},
		},
	}
	if err := validate.Struct(valid); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(r *QuizRequest)
	}{
		{"missing title", func(r *QuizRequest) { r.Title = "" }},
		{"malformed batch id", func(r *QuizRequest) { r.BatchID = "not-a-uuid" }},
		{"zero full marks", func(r *QuizRequest) { r.FullMarks = 0 }},
		{"no questions", func(r *QuizRequest) { r.Questions = nil }},
		{"question with one option", func(r *QuizRequest) {
			r.Questions = []QuizQuestionRequest{
				{QuestionText: "?", Options: []string{"only"}, CorrectAnswers: []int{0}},
			}
		}},
		{"question without correct answers", func(r *QuizRequest) {
			r.Questions = []QuizQuestionRequest{
				{QuestionText: "?", Options: []string{"a", "b"}},
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			if err := validate.Struct(req); err == nil {
				t.Errorf("expected validation error")
			}
		})
	}
}
