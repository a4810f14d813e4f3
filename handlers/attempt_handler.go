package handlers

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/mahfuzr/coaching_center/database"
	"github.com/mahfuzr/coaching_center/models"
	"github.com/mahfuzr/coaching_center/services"
	"gorm.io/gorm"
)

// priorAttempts is the narrow lookup the one-attempt-per-chapter rule
// needs; the gorm implementation queries the attempts table, tests use
// an in-memory fake.
type priorAttempts interface {
	find(studentID, batchID uuid.UUID, chapter string) (uuid.UUID, bool)
}

type gormPriorAttempts struct{ db *gorm.DB }

func (g gormPriorAttempts) find(studentID, batchID uuid.UUID, chapter string) (uuid.UUID, bool) {
	var attempt models.McqAttempt
	err := g.db.Where("student_id = ? AND batch_id = ? AND chapter = ?", studentID, batchID, chapter).First(&attempt).Error
	if err != nil {
		return uuid.Nil, false
	}
	return attempt.ID, true
}

// findPriorAttempt reports the existing attempt id when the student
// already submitted this chapter. The composite unique index on the
// attempts table closes the concurrent-submission race this pre-check
// cannot.
func findPriorAttempt(store priorAttempts, studentID, batchID uuid.UUID, chapter string) (uuid.UUID, bool) {
	return store.find(studentID, batchID, chapter)
}

func duplicateAttemptResponse(c *fiber.Ctx, attemptID uuid.UUID) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":      "Quiz already attempted for this chapter",
		"attempt_id": attemptID,
	})
}

// TakeQuiz hands a student the quiz with every question's options
// independently shuffled. The permutation for each question is
// returned alongside (option_order[displayIndex] = originalIndex) and
// must be echoed back on submit so answers can be remapped to the
// original option order before scoring and storage.
func TakeQuiz(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	studentID, _ := uuid.Parse(claims["user_id"].(string))

	quizID := c.Params("quizId")
	var quiz models.Quiz
	if err := database.DB.Preload("Questions").First(&quiz, "id = ? AND is_active = ?", quizID, true).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quiz not found"})
	}

	if attemptID, attempted := findPriorAttempt(gormPriorAttempts{database.DB}, studentID, quiz.BatchID, quiz.Chapter); attempted {
		return duplicateAttemptResponse(c, attemptID)
	}

	type QuestionForStudent struct {
		ID           uuid.UUID `json:"id"`
		QuestionText string    `json:"question_text"`
		Options      []string  `json:"options"`
		OptionOrder  []int     `json:"option_order"`
		MultiAnswer  bool      `json:"multi_answer"`
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	questionsForStudent := make([]QuestionForStudent, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		options, err := services.DecodeOptions(q.Options)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Corrupt question options"})
		}
		correct, err := services.DecodeIndexes(q.CorrectAnswers)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Corrupt answer key"})
		}

		shuffled, perm := services.ShuffleOptions(options, rng)
		questionsForStudent = append(questionsForStudent, QuestionForStudent{
			ID:           q.ID,
			QuestionText: q.QuestionText,
			Options:      shuffled,
			OptionOrder:  perm,
			MultiAnswer:  len(correct) > 1,
		})
	}

	return c.JSON(fiber.Map{
		"quiz_id":    quiz.ID,
		"title":      quiz.Title,
		"chapter":    quiz.Chapter,
		"full_marks": quiz.FullMarks,
		"questions":  questionsForStudent,
	})
}

type SubmitAttemptRequest struct {
	QuizID  string `json:"quiz_id" validate:"required,uuid4"`
	Answers []struct {
		QuestionID  string `json:"question_id" validate:"required,uuid4"`
		Selected    []int  `json:"selected" validate:"required,min=1"`
		OptionOrder []int  `json:"option_order" validate:"required,min=2"`
	} `json:"answers" validate:"required,min=1,dive"`
}

// SubmitAttempt remaps the displayed selections back to original
// option indices, grades the attempt and stores it. Every question
// must carry an answer. The one-attempt-per-chapter rule is enforced
// twice: a pre-check that reports the existing attempt id, and the
// composite unique index that closes the concurrent-submission race.
func SubmitAttempt(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	studentID, _ := uuid.Parse(claims["user_id"].(string))

	var req SubmitAttemptRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	quizID, _ := uuid.Parse(req.QuizID)
	var quiz models.Quiz
	if err := database.DB.Preload("Questions").First(&quiz, "id = ?", quizID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quiz not found"})
	}

	if len(req.Answers) != len(quiz.Questions) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Every question must be answered before submitting"})
	}

	if attemptID, attempted := findPriorAttempt(gormPriorAttempts{database.DB}, studentID, quiz.BatchID, quiz.Chapter); attempted {
		return duplicateAttemptResponse(c, attemptID)
	}

	key := make([]services.AnswerKey, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		correct, err := services.DecodeIndexes(q.CorrectAnswers)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Corrupt answer key"})
		}
		key = append(key, services.AnswerKey{QuestionID: q.ID, Correct: correct})
	}

	selected := make(map[uuid.UUID][]int, len(req.Answers))
	for _, a := range req.Answers {
		questionID, _ := uuid.Parse(a.QuestionID)
		selected[questionID] = services.RemapToOriginal(a.Selected, a.OptionOrder)
	}

	score, graded := services.GradeAttempt(key, selected, quiz.FullMarks)

	attempt := models.McqAttempt{
		StudentID:   studentID,
		BatchID:     quiz.BatchID,
		Chapter:     quiz.Chapter,
		QuizID:      quiz.ID,
		Score:       score,
		SubmittedAt: time.Now(),
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&attempt).Error; err != nil {
			return err
		}
		for _, g := range graded {
			answer := models.AttemptAnswer{
				McqAttemptID:    attempt.ID,
				QuestionID:      g.QuestionID,
				SelectedIndexes: services.EncodeIndexes(g.Selected),
				IsCorrect:       g.IsCorrect,
			}
			if err := tx.Create(&answer).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Quiz already attempted for this chapter"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save attempt"})
	}

	database.CacheInvalidate(context.Background(), "leaderboard:*")

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"attempt_id": attempt.ID,
		"score":      score,
		"full_marks": quiz.FullMarks,
	})
}

func ListAttempts(c *fiber.Ctx) error {
	var attempts []models.McqAttempt
	q := database.DB.Preload("Student").Preload("Quiz")
	if chapter := c.Query("chapter"); chapter != "" {
		q = q.Where("chapter = ?", chapter)
	}
	if batchID := c.Query("batch_id"); batchID != "" {
		q = q.Where("batch_id = ?", batchID)
	}
	q.Order("submitted_at desc").Find(&attempts)
	return c.JSON(attempts)
}

func GetAttempt(c *fiber.Ctx) error {
	attemptID := c.Params("attemptId")
	var attempt models.McqAttempt
	if err := database.DB.Preload("Answers.Question").Preload("Quiz").First(&attempt, "id = ?", attemptID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Attempt not found"})
	}
	return c.JSON(attempt)
}

func ListStudentBatchAttempts(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	batchID := c.Params("batchId")

	var attempts []models.McqAttempt
	database.DB.Preload("Quiz").
		Where("student_id = ? AND batch_id = ?", studentID, batchID).
		Order("submitted_at desc").
		Find(&attempts)
	return c.JSON(attempts)
}

// CheckAttempt reports whether a student already attempted a chapter,
// returning the attempt id when one exists.
func CheckAttempt(c *fiber.Ctx) error {
	studentID := c.Query("student_id")
	batchID := c.Query("batch_id")
	chapter := c.Query("chapter")
	if studentID == "" || batchID == "" || chapter == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "student_id, batch_id and chapter are required"})
	}

	var attempt models.McqAttempt
	err := database.DB.Where("student_id = ? AND batch_id = ? AND chapter = ?", studentID, batchID, chapter).First(&attempt).Error
	if err != nil {
		return c.JSON(fiber.Map{"attempted": false})
	}
	return c.JSON(fiber.Map{"attempted": true, "attempt_id": attempt.ID})
}

func DeleteAttempt(c *fiber.Ctx) error {
	attemptID := c.Params("attemptId")

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var attempt models.McqAttempt
		if err := tx.First(&attempt, "id = ?", attemptID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.AttemptAnswer{}, "mcq_attempt_id = ?", attempt.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&attempt).Error
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Attempt not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete attempt"})
	}

	database.CacheInvalidate(context.Background(), "leaderboard:*")
	return c.SendStatus(fiber.StatusNoContent)
}
