package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/mahfuzr/coaching_center/database"
	"github.com/mahfuzr/coaching_center/models"
	"github.com/mahfuzr/coaching_center/services"
	"gorm.io/gorm"
)

type QuizQuestionRequest struct {
	QuestionText   string   `json:"question_text" validate:"required"`
	Options        []string `json:"options" validate:"required,min=2"`
	CorrectAnswers []int    `json:"correct_answers" validate:"required,min=1"`
}

type QuizRequest struct {
	BatchID   string                `json:"batch_id" validate:"required,uuid4"`
	Title     string                `json:"title" validate:"required"`
	Chapter   string                `json:"chapter" validate:"required"`
	FullMarks int                   `json:"full_marks" validate:"required,gt=0"`
	Questions []QuizQuestionRequest `json:"questions" validate:"required,min=1,dive"`
}

func validQuestionIndexes(q QuizQuestionRequest) bool {
	for _, idx := range q.CorrectAnswers {
		if idx < 0 || idx >= len(q.Options) {
			return false
		}
	}
	return true
}

func CreateQuiz(c *fiber.Ctx) error {
	var req QuizRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	for _, q := range req.Questions {
		if !validQuestionIndexes(q) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Correct answer index out of range"})
		}
	}

	batchID, _ := uuid.Parse(req.BatchID)
	var batch models.Batch
	if err := database.DB.First(&batch, "id = ?", batchID).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Batch does not exist"})
	}

	quiz := models.Quiz{
		BatchID:   batchID,
		Title:     req.Title,
		Chapter:   req.Chapter,
		FullMarks: req.FullMarks,
		IsActive:  true,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&quiz).Error; err != nil {
			return err
		}
		for _, q := range req.Questions {
			options, err := services.EncodeOptions(q.Options)
			if err != nil {
				return err
			}
			question := models.QuizQuestion{
				QuizID:         quiz.ID,
				QuestionText:   q.QuestionText,
				Options:        options,
				CorrectAnswers: services.EncodeIndexes(q.CorrectAnswers),
			}
			if err := tx.Create(&question).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create quiz"})
	}

	database.DB.Preload("Questions").First(&quiz, "id = ?", quiz.ID)
	return c.Status(fiber.StatusCreated).JSON(quiz)
}

func ListQuizzes(c *fiber.Ctx) error {
	var quizzes []models.Quiz
	q := database.DB.Preload("Questions")
	if batchID := c.Query("batch_id"); batchID != "" {
		q = q.Where("batch_id = ?", batchID)
	}
	if chapter := c.Query("chapter"); chapter != "" {
		q = q.Where("chapter = ?", chapter)
	}
	q.Find(&quizzes)
	return c.JSON(quizzes)
}

func GetQuiz(c *fiber.Ctx) error {
	quizID := c.Params("quizId")
	var quiz models.Quiz
	if err := database.DB.Preload("Questions").First(&quiz, "id = ?", quizID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quiz not found"})
	}
	return c.JSON(quiz)
}

// UpdateQuiz replaces the quiz metadata and its question set in one
// transaction, mirroring how the quiz was authored.
func UpdateQuiz(c *fiber.Ctx) error {
	quizID := c.Params("quizId")
	var quiz models.Quiz
	if err := database.DB.First(&quiz, "id = ?", quizID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quiz not found"})
	}

	var req QuizRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	for _, q := range req.Questions {
		if !validQuestionIndexes(q) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Correct answer index out of range"})
		}
	}

	batchID, _ := uuid.Parse(req.BatchID)
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		quiz.BatchID = batchID
		quiz.Title = req.Title
		quiz.Chapter = req.Chapter
		quiz.FullMarks = req.FullMarks
		if err := tx.Save(&quiz).Error; err != nil {
			return err
		}

		if err := tx.Delete(&models.QuizQuestion{}, "quiz_id = ?", quiz.ID).Error; err != nil {
			return err
		}
		for _, q := range req.Questions {
			options, err := services.EncodeOptions(q.Options)
			if err != nil {
				return err
			}
			question := models.QuizQuestion{
				QuizID:         quiz.ID,
				QuestionText:   q.QuestionText,
				Options:        options,
				CorrectAnswers: services.EncodeIndexes(q.CorrectAnswers),
			}
			if err := tx.Create(&question).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update quiz"})
	}

	database.DB.Preload("Questions").First(&quiz, "id = ?", quiz.ID)
	return c.JSON(quiz)
}

func DeleteQuiz(c *fiber.Ctx) error {
	quizID := c.Params("quizId")

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var quiz models.Quiz
		if err := tx.First(&quiz, "id = ?", quizID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.QuizQuestion{}, "quiz_id = ?", quiz.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&quiz).Error
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quiz not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete quiz"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
