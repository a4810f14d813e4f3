package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/mahfuzr/coaching_center/database"
	"github.com/mahfuzr/coaching_center/models"
)

type CqQuestionRequest struct {
	BatchID      string  `json:"batch_id" validate:"required,uuid4"`
	Chapter      string  `json:"chapter" validate:"required"`
	Stimulus     string  `json:"stimulus" validate:"required"`
	ImageURL     *string `json:"image_url" validate:"omitempty,url"`
	SubQuestionA string  `json:"sub_question_a" validate:"required"`
	MarksA       int     `json:"marks_a" validate:"required,gt=0"`
	SubQuestionB string  `json:"sub_question_b" validate:"required"`
	MarksB       int     `json:"marks_b" validate:"required,gt=0"`
}

func CreateCqQuestion(c *fiber.Ctx) error {
	var req CqQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	batchID, _ := uuid.Parse(req.BatchID)
	question := models.CqQuestion{
		BatchID:      batchID,
		Chapter:      req.Chapter,
		Stimulus:     req.Stimulus,
		ImageURL:     req.ImageURL,
		SubQuestionA: req.SubQuestionA,
		MarksA:       req.MarksA,
		SubQuestionB: req.SubQuestionB,
		MarksB:       req.MarksB,
	}

	if err := database.DB.Create(&question).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create CQ question"})
	}

	return c.Status(fiber.StatusCreated).JSON(question)
}

func ListCqQuestions(c *fiber.Ctx) error {
	var questions []models.CqQuestion
	q := database.DB
	if batchID := c.Query("batch_id"); batchID != "" {
		q = q.Where("batch_id = ?", batchID)
	}
	if chapter := c.Query("chapter"); chapter != "" {
		q = q.Where("chapter = ?", chapter)
	}
	q.Find(&questions)
	return c.JSON(questions)
}

func GetCqQuestion(c *fiber.Ctx) error {
	questionID := c.Params("questionId")
	var question models.CqQuestion
	if err := database.DB.First(&question, "id = ?", questionID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "CQ question not found"})
	}
	return c.JSON(question)
}

func UpdateCqQuestion(c *fiber.Ctx) error {
	questionID := c.Params("questionId")
	var question models.CqQuestion
	if err := database.DB.First(&question, "id = ?", questionID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "CQ question not found"})
	}

	var req CqQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	batchID, _ := uuid.Parse(req.BatchID)
	question.BatchID = batchID
	question.Chapter = req.Chapter
	question.Stimulus = req.Stimulus
	question.ImageURL = req.ImageURL
	question.SubQuestionA = req.SubQuestionA
	question.MarksA = req.MarksA
	question.SubQuestionB = req.SubQuestionB
	question.MarksB = req.MarksB
	database.DB.Save(&question)

	return c.JSON(question)
}

func DeleteCqQuestion(c *fiber.Ctx) error {
	questionID := c.Params("questionId")
	result := database.DB.Delete(&models.CqQuestion{}, "id = ?", questionID)

	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete CQ question"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "CQ question not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
