package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func makeStudent(name, serial, gender, institution string) StudentInfo {
	return StudentInfo{
		ID:              uuid.New(),
		FullName:        name,
		StudentSerial:   serial,
		Gender:          gender,
		InstitutionCode: institution,
	}
}

func attempt(studentID, batchID uuid.UUID, score int, at time.Time) AttemptRecord {
	return AttemptRecord{StudentID: studentID, BatchID: batchID, Score: score, SubmittedAt: at}
}

func TestRankStudentsCompetitionRanking(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	batch := uuid.New()

	alice := makeStudent("Alice", "CC-2026-0001", "female", "INST-A")
	bob := makeStudent("Bob", "CC-2026-0002", "male", "INST-A")
	carol := makeStudent("Carol", "CC-2026-0003", "female", "INST-B")

	students := map[uuid.UUID]StudentInfo{
		alice.ID: alice,
		bob.ID:   bob,
		carol.ID: carol,
	}
	attempts := []AttemptRecord{
		attempt(alice.ID, batch, 90, now),
		attempt(bob.ID, batch, 90, now),
		attempt(carol.ID, batch, 80, now),
	}

	ranked := RankStudents(attempts, students, RankingFilter{Now: now})
	if len(ranked) != 3 {
		t.Fatalf("expected 3 ranked students, got %d", len(ranked))
	}

	wantRanks := []int{1, 1, 3}
	wantSerials := []int{1, 2, 3}
	for i, r := range ranked {
		if r.Rank != wantRanks[i] {
			t.Errorf("row %d: rank = %d, want %d", i, r.Rank, wantRanks[i])
		}
		if r.Serial != wantSerials[i] {
			t.Errorf("row %d: serial = %d, want %d", i, r.Serial, wantSerials[i])
		}
	}
}

func TestRankStudentsAverageRounding(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	batch := uuid.New()
	s := makeStudent("Rounder", "CC-2026-0010", "male", "")
	students := map[uuid.UUID]StudentInfo{s.ID: s}

	// 70 + 75 = 145 over two attempts, average 72.5, rounds to 73.
	attempts := []AttemptRecord{
		attempt(s.ID, batch, 70, now),
		attempt(s.ID, batch, 75, now),
	}

	ranked := RankStudents(attempts, students, RankingFilter{Now: now})
	if len(ranked) != 1 {
		t.Fatalf("expected 1 ranked student, got %d", len(ranked))
	}
	if ranked[0].Average != 73 {
		t.Errorf("average = %d, want 73", ranked[0].Average)
	}
	if ranked[0].Attempts != 2 {
		t.Errorf("attempts = %d, want 2", ranked[0].Attempts)
	}
}

func TestRankStudentsWindowFilter(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	batch := uuid.New()
	s := makeStudent("Windowed", "CC-2026-0020", "female", "")
	students := map[uuid.UUID]StudentInfo{s.ID: s}

	attempts := []AttemptRecord{
		attempt(s.ID, batch, 100, now.AddDate(0, 0, -1)), // this month
		attempt(s.ID, batch, 50, now.AddDate(0, -2, 0)),  // this year, not this month
		attempt(s.ID, batch, 10, now.AddDate(-1, 0, 0)),  // last year
	}

	tests := []struct {
		name      string
		window    string
		wantAvg   int
		wantCount int
	}{
		{"all time", WindowAll, 53, 3},
		{"this month", WindowMonth, 100, 1},
		{"this year", WindowYear, 75, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranked := RankStudents(attempts, students, RankingFilter{Window: tt.window, Now: now})
			if len(ranked) != 1 {
				t.Fatalf("expected 1 ranked student, got %d", len(ranked))
			}
			if ranked[0].Average != tt.wantAvg {
				t.Errorf("average = %d, want %d", ranked[0].Average, tt.wantAvg)
			}
			if ranked[0].Attempts != tt.wantCount {
				t.Errorf("attempts = %d, want %d", ranked[0].Attempts, tt.wantCount)
			}
		})
	}
}

func TestRankStudentsFilters(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	batchA := uuid.New()
	batchB := uuid.New()

	alice := makeStudent("Alice", "CC-2026-0001", "female", "INST-A")
	bob := makeStudent("Bob", "CC-2026-0002", "male", "INST-B")

	students := map[uuid.UUID]StudentInfo{alice.ID: alice, bob.ID: bob}
	attempts := []AttemptRecord{
		attempt(alice.ID, batchA, 80, now),
		attempt(bob.ID, batchB, 90, now),
	}

	ranked := RankStudents(attempts, students, RankingFilter{Gender: "female", Now: now})
	if len(ranked) != 1 || ranked[0].StudentID != alice.ID {
		t.Errorf("gender filter: expected only Alice, got %d rows", len(ranked))
	}

	ranked = RankStudents(attempts, students, RankingFilter{BatchID: &batchB, Now: now})
	if len(ranked) != 1 || ranked[0].StudentID != bob.ID {
		t.Errorf("batch filter: expected only Bob, got %d rows", len(ranked))
	}

	ranked = RankStudents(attempts, students, RankingFilter{InstitutionCode: "INST-A", Now: now})
	if len(ranked) != 1 || ranked[0].StudentID != alice.ID {
		t.Errorf("institution filter: expected only Alice, got %d rows", len(ranked))
	}
}

func TestRankStudentsExcludesStudentsWithoutAttempts(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	batch := uuid.New()

	active := makeStudent("Active", "CC-2026-0030", "male", "")
	idle := makeStudent("Idle", "CC-2026-0031", "male", "")
	students := map[uuid.UUID]StudentInfo{active.ID: active, idle.ID: idle}

	attempts := []AttemptRecord{attempt(active.ID, batch, 60, now)}

	ranked := RankStudents(attempts, students, RankingFilter{Now: now})
	if len(ranked) != 1 {
		t.Fatalf("expected 1 ranked student, got %d", len(ranked))
	}
	if ranked[0].StudentID != active.ID {
		t.Errorf("expected only the student with attempts to rank")
	}
}

func TestRankStudentsCapsAtFifty(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	batch := uuid.New()

	students := make(map[uuid.UUID]StudentInfo)
	var attempts []AttemptRecord
	for i := 0; i < 60; i++ {
		s := makeStudent("Student", "CC-2026-1000", "male", "")
		students[s.ID] = s
		attempts = append(attempts, attempt(s.ID, batch, i, now))
	}

	ranked := RankStudents(attempts, students, RankingFilter{Now: now})
	if len(ranked) != 50 {
		t.Fatalf("expected 50 rows, got %d", len(ranked))
	}
	// the cut keeps the highest averages
	if ranked[0].Average != 59 {
		t.Errorf("top average = %d, want 59", ranked[0].Average)
	}
	if ranked[49].Average != 10 {
		t.Errorf("last average = %d, want 10", ranked[49].Average)
	}
}

func TestSumScores(t *testing.T) {
	batch := uuid.New()
	studentA := uuid.New()
	studentB := uuid.New()
	now := time.Now()

	attempts := []AttemptRecord{
		attempt(studentA, batch, 10, now),
		attempt(studentB, batch, 8, now),
		attempt(studentA, batch, 5, now),
	}

	rows := SumScores(attempts)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].StudentID != studentA || rows[0].TotalScore != 15 {
		t.Errorf("row 0 = %v/%d, want student A with 15", rows[0].StudentID, rows[0].TotalScore)
	}
	if rows[1].StudentID != studentB || rows[1].TotalScore != 8 {
		t.Errorf("row 1 = %v/%d, want student B with 8", rows[1].StudentID, rows[1].TotalScore)
	}
}

func TestSumScoresTiesKeepEncounterOrder(t *testing.T) {
	batch := uuid.New()
	first := uuid.New()
	second := uuid.New()
	now := time.Now()

	attempts := []AttemptRecord{
		attempt(first, batch, 12, now),
		attempt(second, batch, 12, now),
	}

	rows := SumScores(attempts)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].StudentID != first {
		t.Errorf("tie order: expected first-encountered student first")
	}
}
