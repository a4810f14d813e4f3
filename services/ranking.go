package services

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
)

const rankingLimit = 50

// Window values accepted by RankStudents.
const (
	WindowAll   = ""
	WindowMonth = "month"
	WindowYear  = "year"
)

// AttemptRecord is the slice of an attempt the ranking cares about.
type AttemptRecord struct {
	StudentID   uuid.UUID
	BatchID     uuid.UUID
	Score       int
	SubmittedAt time.Time
}

// StudentInfo carries the student fields the filters resolve against.
type StudentInfo struct {
	ID              uuid.UUID
	FullName        string
	StudentSerial   string
	Gender          string
	InstitutionCode string
	PhotoURL        *string
}

type RankingFilter struct {
	Window          string
	Gender          string
	BatchID         *uuid.UUID
	InstitutionCode string
	Now             time.Time
}

type RankedStudent struct {
	Serial        int       `json:"serial"`
	Rank          int       `json:"rank"`
	StudentID     uuid.UUID `json:"student_id"`
	FullName      string    `json:"full_name"`
	StudentSerial string    `json:"student_serial"`
	PhotoURL      *string   `json:"photo_url"`
	Average       int       `json:"average"`
	Attempts      int       `json:"attempts"`
}

type studentBucket struct {
	info     StudentInfo
	sum      int
	count    int
	batches  map[uuid.UUID]bool
	firstIdx int
}

// RankStudents ranks students by integer-rounded average score over
// their qualifying attempts. Ranking is competition style: rows tied
// on average share a rank number and the next distinct average takes
// the row position as its rank (90,90,80 ranks as 1,1,3). Serial
// numbers increment per row unconditionally. Students with no
// qualifying attempt never appear; output is capped at 50 rows.
func RankStudents(attempts []AttemptRecord, students map[uuid.UUID]StudentInfo, filter RankingFilter) []RankedStudent {
	now := filter.Now
	if now.IsZero() {
		now = time.Now()
	}

	buckets := make(map[uuid.UUID]*studentBucket)
	order := 0
	for _, a := range attempts {
		if !inWindow(a.SubmittedAt, filter.Window, now) {
			continue
		}
		b, ok := buckets[a.StudentID]
		if !ok {
			info, known := students[a.StudentID]
			if !known {
				continue
			}
			b = &studentBucket{info: info, batches: make(map[uuid.UUID]bool), firstIdx: order}
			order++
			buckets[a.StudentID] = b
		}
		b.sum += a.Score
		b.count++
		b.batches[a.BatchID] = true
	}

	qualified := make([]*studentBucket, 0, len(buckets))
	for _, b := range buckets {
		if filter.Gender != "" && b.info.Gender != filter.Gender {
			continue
		}
		if filter.InstitutionCode != "" && b.info.InstitutionCode != filter.InstitutionCode {
			continue
		}
		if filter.BatchID != nil && !b.batches[*filter.BatchID] {
			continue
		}
		qualified = append(qualified, b)
	}

	sort.SliceStable(qualified, func(i, j int) bool {
		ai, aj := average(qualified[i]), average(qualified[j])
		if ai != aj {
			return ai > aj
		}
		if qualified[i].count != qualified[j].count {
			return qualified[i].count > qualified[j].count
		}
		return qualified[i].firstIdx < qualified[j].firstIdx
	})

	if len(qualified) > rankingLimit {
		qualified = qualified[:rankingLimit]
	}

	ranked := make([]RankedStudent, 0, len(qualified))
	rank := 0
	prevAverage := 0
	for i, b := range qualified {
		avg := average(b)
		if i == 0 || avg < prevAverage {
			rank = i + 1
		}
		prevAverage = avg
		ranked = append(ranked, RankedStudent{
			Serial:        i + 1,
			Rank:          rank,
			StudentID:     b.info.ID,
			FullName:      b.info.FullName,
			StudentSerial: b.info.StudentSerial,
			PhotoURL:      b.info.PhotoURL,
			Average:       avg,
			Attempts:      b.count,
		})
	}
	return ranked
}

func average(b *studentBucket) int {
	return int(math.Round(float64(b.sum) / float64(b.count)))
}

func inWindow(t time.Time, window string, now time.Time) bool {
	switch window {
	case WindowMonth:
		return t.Year() == now.Year() && t.Month() == now.Month()
	case WindowYear:
		return t.Year() == now.Year()
	default:
		return true
	}
}

// LeaderboardRow is one entry of the total-score leaderboard.
type LeaderboardRow struct {
	StudentID  uuid.UUID `json:"student_id"`
	TotalScore int       `json:"total_score"`
}

// SumScores groups attempts by student, sums the scores and orders the
// result descending by total. Ties keep first-encounter order.
func SumScores(attempts []AttemptRecord) []LeaderboardRow {
	totals := make(map[uuid.UUID]int)
	var order []uuid.UUID
	for _, a := range attempts {
		if _, ok := totals[a.StudentID]; !ok {
			order = append(order, a.StudentID)
		}
		totals[a.StudentID] += a.Score
	}

	rows := make([]LeaderboardRow, 0, len(order))
	for _, id := range order {
		rows = append(rows, LeaderboardRow{StudentID: id, TotalScore: totals[id]})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalScore > rows[j].TotalScore
	})
	return rows
}
