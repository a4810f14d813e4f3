package handlers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/mahfuzr/coaching_center/database"
	"github.com/mahfuzr/coaching_center/models"
	"github.com/mahfuzr/coaching_center/services"
)

const leaderboardCacheTTL = 2 * time.Minute

type LeaderboardEntry struct {
	StudentID     uuid.UUID `json:"student_id"`
	FullName      string    `json:"full_name"`
	StudentSerial string    `json:"student_serial"`
	TotalScore    int       `json:"total_score"`
}

// GetLeaderboard sums every stored attempt score per student and
// orders descending. The aggregation runs in SQL; results are cached
// briefly when Redis is configured.
func GetLeaderboard(c *fiber.Ctx) error {
	cacheKey := "leaderboard:global"
	if cached := database.CacheGet(c.Context(), cacheKey); cached != "" {
		c.Set("Content-Type", "application/json")
		return c.SendString(cached)
	}

	var leaderboard []LeaderboardEntry
	err := database.DB.Model(&models.McqAttempt{}).
		Select("mcq_attempts.student_id", "students.full_name", "students.student_serial", "SUM(mcq_attempts.score) as total_score").
		Joins("JOIN students ON students.id = mcq_attempts.student_id").
		Group("mcq_attempts.student_id, students.full_name, students.student_serial").
		Order("total_score desc").
		Find(&leaderboard).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve leaderboard"})
	}

	if payload, err := json.Marshal(leaderboard); err == nil {
		database.CacheSet(c.Context(), cacheKey, string(payload), leaderboardCacheTTL)
	}

	return c.JSON(leaderboard)
}

// GetChapterLeaderboard aggregates in memory over the chapter's
// attempts, keeping the sum-then-sort behavior identical to the
// global board.
func GetChapterLeaderboard(c *fiber.Ctx) error {
	chapter := c.Params("chapter")
	batchID := c.Params("batchId")

	cacheKey := fmt.Sprintf("leaderboard:chapter:%s:%s", chapter, batchID)
	if cached := database.CacheGet(c.Context(), cacheKey); cached != "" {
		c.Set("Content-Type", "application/json")
		return c.SendString(cached)
	}

	var attempts []models.McqAttempt
	if err := database.DB.Preload("Student").
		Where("chapter = ? AND batch_id = ?", chapter, batchID).
		Order("submitted_at asc").
		Find(&attempts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve attempts"})
	}

	records := make([]services.AttemptRecord, 0, len(attempts))
	names := make(map[uuid.UUID]models.Student, len(attempts))
	for _, a := range attempts {
		records = append(records, services.AttemptRecord{
			StudentID:   a.StudentID,
			BatchID:     a.BatchID,
			Score:       a.Score,
			SubmittedAt: a.SubmittedAt,
		})
		names[a.StudentID] = a.Student
	}

	rows := services.SumScores(records)
	leaderboard := make([]LeaderboardEntry, 0, len(rows))
	for _, row := range rows {
		student := names[row.StudentID]
		leaderboard = append(leaderboard, LeaderboardEntry{
			StudentID:     row.StudentID,
			FullName:      student.FullName,
			StudentSerial: student.StudentSerial,
			TotalScore:    row.TotalScore,
		})
	}

	if payload, err := json.Marshal(leaderboard); err == nil {
		database.CacheSet(c.Context(), cacheKey, string(payload), leaderboardCacheTTL)
	}

	return c.JSON(leaderboard)
}

// GetRankings produces the filtered average-score ranking: optional
// time window (month/year), gender, batch and institution filters,
// competition-style ranks, top 50.
func GetRankings(c *fiber.Ctx) error {
	filter := services.RankingFilter{
		Window:          c.Query("window"),
		Gender:          c.Query("gender"),
		InstitutionCode: c.Query("institution_code"),
	}
	if filter.Window != services.WindowAll && filter.Window != services.WindowMonth && filter.Window != services.WindowYear {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "window must be empty, 'month' or 'year'"})
	}
	if batchID := c.Query("batch_id"); batchID != "" {
		parsed, err := uuid.Parse(batchID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid batch_id"})
		}
		filter.BatchID = &parsed
	}

	var attempts []models.McqAttempt
	if err := database.DB.Order("submitted_at asc").Find(&attempts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve attempts"})
	}

	var students []models.Student
	if err := database.DB.Where("role = ?", "student").Find(&students).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve students"})
	}

	records := make([]services.AttemptRecord, 0, len(attempts))
	for _, a := range attempts {
		records = append(records, services.AttemptRecord{
			StudentID:   a.StudentID,
			BatchID:     a.BatchID,
			Score:       a.Score,
			SubmittedAt: a.SubmittedAt,
		})
	}

	infos := make(map[uuid.UUID]services.StudentInfo, len(students))
	for _, s := range students {
		infos[s.ID] = services.StudentInfo{
			ID:              s.ID,
			FullName:        s.FullName,
			StudentSerial:   s.StudentSerial,
			Gender:          s.Gender,
			InstitutionCode: s.InstitutionCode,
			PhotoURL:        s.PhotoURL,
		}
	}

	return c.JSON(services.RankStudents(records, infos, filter))
}
