package handlers

import (
	"testing"

	"github.com/google/uuid"
)

type fakeAttemptStore struct {
	attempts map[[3]string]uuid.UUID
}

func newFakeAttemptStore() *fakeAttemptStore {
	return &fakeAttemptStore{attempts: make(map[[3]string]uuid.UUID)}
}

func (s *fakeAttemptStore) key(studentID, batchID uuid.UUID, chapter string) [3]string {
	return [3]string{studentID.String(), batchID.String(), chapter}
}

func (s *fakeAttemptStore) find(studentID, batchID uuid.UUID, chapter string) (uuid.UUID, bool) {
	id, ok := s.attempts[s.key(studentID, batchID, chapter)]
	return id, ok
}

func (s *fakeAttemptStore) add(studentID, batchID uuid.UUID, chapter string) uuid.UUID {
	id := uuid.New()
	s.attempts[s.key(studentID, batchID, chapter)] = id
	return id
}

func TestFindPriorAttemptRejectsSecondSubmission(t *testing.T) {
	store := newFakeAttemptStore()
	studentID := uuid.New()
	batchID := uuid.New()
	chapter := "chapter-1"

	if _, attempted := findPriorAttempt(store, studentID, batchID, chapter); attempted {
		t.Fatal("fresh student/chapter reported as attempted")
	}
	firstID := store.add(studentID, batchID, chapter)

	gotID, attempted := findPriorAttempt(store, studentID, batchID, chapter)
	if !attempted {
		t.Fatal("second submission not rejected")
	}
	if gotID != firstID {
		t.Errorf("returned attempt id = %s, want the first attempt's id %s", gotID, firstID)
	}
}

func TestFindPriorAttemptIsScopedToStudentBatchChapter(t *testing.T) {
	store := newFakeAttemptStore()
	studentID := uuid.New()
	batchID := uuid.New()
	store.add(studentID, batchID, "chapter-1")

	tests := []struct {
		name      string
		studentID uuid.UUID
		batchID   uuid.UUID
		chapter   string
	}{
		{"other chapter", studentID, batchID, "chapter-2"},
		{"other batch", studentID, uuid.New(), "chapter-1"},
		{"other student", uuid.New(), batchID, "chapter-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, attempted := findPriorAttempt(store, tt.studentID, tt.batchID, tt.chapter); attempted {
				t.Error("unrelated submission blocked")
			}
		})
	}
}
