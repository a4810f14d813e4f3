package handlers

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mahfuzr/coaching_center/models"
)

type fakeSheetWriter struct {
	existing map[uuid.UUID]bool
	inserted []uuid.UUID
	failOn   *uuid.UUID
}

func (w *fakeSheetWriter) insertIfAbsent(a *models.Attendance) (bool, error) {
	if w.failOn != nil && a.StudentID == *w.failOn {
		return false, errors.New("connection reset")
	}
	if w.existing[a.StudentID] {
		return false, nil
	}
	w.existing[a.StudentID] = true
	w.inserted = append(w.inserted, a.StudentID)
	return true, nil
}

func sheetRows(batchID uuid.UUID, date time.Time, studentIDs ...uuid.UUID) []models.Attendance {
	rows := make([]models.Attendance, 0, len(studentIDs))
	for _, id := range studentIDs {
		rows = append(rows, models.Attendance{
			StudentID: id,
			BatchID:   batchID,
			Date:      date,
			Status:    "present",
		})
	}
	return rows
}

func TestMarkSheetSkipsAlreadyMarkedRows(t *testing.T) {
	batchID := uuid.New()
	date := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	first, second, third := uuid.New(), uuid.New(), uuid.New()

	// second is already on the sheet; rows after it must still land.
	writer := &fakeSheetWriter{existing: map[uuid.UUID]bool{second: true}}

	marked, skipped, err := markSheet(writer, sheetRows(batchID, date, first, second, third))
	if err != nil {
		t.Fatalf("markSheet: %v", err)
	}
	if marked != 2 {
		t.Errorf("marked = %d, want 2", marked)
	}
	if skipped != 1 {
		t.Errorf("skipped = %d, want 1", skipped)
	}
	if len(writer.inserted) != 2 || writer.inserted[0] != first || writer.inserted[1] != third {
		t.Errorf("inserted = %v, want [%s %s]", writer.inserted, first, third)
	}
}

func TestMarkSheetFullResubmitSkipsEverything(t *testing.T) {
	batchID := uuid.New()
	date := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	students := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	writer := &fakeSheetWriter{existing: map[uuid.UUID]bool{}}
	rows := sheetRows(batchID, date, students...)

	if _, _, err := markSheet(writer, rows); err != nil {
		t.Fatalf("first pass: %v", err)
	}

	marked, skipped, err := markSheet(writer, rows)
	if err != nil {
		t.Fatalf("second pass: %v", err)
	}
	if marked != 0 || skipped != len(students) {
		t.Errorf("second pass marked/skipped = %d/%d, want 0/%d", marked, skipped, len(students))
	}
}

func TestMarkSheetStopsOnWriteError(t *testing.T) {
	batchID := uuid.New()
	date := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	first, bad := uuid.New(), uuid.New()

	writer := &fakeSheetWriter{existing: map[uuid.UUID]bool{}, failOn: &bad}

	_, _, err := markSheet(writer, sheetRows(batchID, date, first, bad))
	if err == nil {
		t.Fatal("expected error from failing row")
	}
}
