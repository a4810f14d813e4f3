package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/mahfuzr/coaching_center/database"
	"github.com/mahfuzr/coaching_center/models"
)

type BatchRequest struct {
	CourseID          string     `json:"course_id" validate:"required,uuid4"`
	Name              string     `json:"name" validate:"required"`
	Instructor        string     `json:"instructor"`
	Seats             int        `json:"seats" validate:"required,gt=0"`
	StartDate         *time.Time `json:"start_date"`
	EndDate           *time.Time `json:"end_date"`
	GenderRestriction *string    `json:"gender_restriction" validate:"omitempty,oneof=male female"`
}

func CreateBatch(c *fiber.Ctx) error {
	var req BatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	courseID, _ := uuid.Parse(req.CourseID)
	var course models.Course
	if err := database.DB.First(&course, "id = ?", courseID).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Course does not exist"})
	}

	batch := models.Batch{
		CourseID:          courseID,
		Name:              req.Name,
		Instructor:        req.Instructor,
		Seats:             req.Seats,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		GenderRestriction: req.GenderRestriction,
	}

	if err := database.DB.Create(&batch).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create batch"})
	}

	return c.Status(fiber.StatusCreated).JSON(batch)
}

func ListBatches(c *fiber.Ctx) error {
	var batches []models.Batch
	q := database.DB.Preload("Course")
	if courseID := c.Query("course_id"); courseID != "" {
		q = q.Where("course_id = ?", courseID)
	}
	q.Find(&batches)
	return c.JSON(batches)
}

func GetBatch(c *fiber.Ctx) error {
	batchID := c.Params("batchId")
	var batch models.Batch
	if err := database.DB.Preload("Course").First(&batch, "id = ?", batchID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Batch not found"})
	}
	return c.JSON(batch)
}

func UpdateBatch(c *fiber.Ctx) error {
	batchID := c.Params("batchId")
	var batch models.Batch
	if err := database.DB.First(&batch, "id = ?", batchID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Batch not found"})
	}

	var req BatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	courseID, _ := uuid.Parse(req.CourseID)
	batch.CourseID = courseID
	batch.Name = req.Name
	batch.Instructor = req.Instructor
	batch.Seats = req.Seats
	batch.StartDate = req.StartDate
	batch.EndDate = req.EndDate
	batch.GenderRestriction = req.GenderRestriction
	database.DB.Save(&batch)

	return c.JSON(batch)
}

func DeleteBatch(c *fiber.Ctx) error {
	batchID := c.Params("batchId")

	var enrollmentCount int64
	database.DB.Model(&models.Enrollment{}).Where("batch_id = ?", batchID).Count(&enrollmentCount)
	if enrollmentCount > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Batch has enrollments and cannot be deleted"})
	}

	result := database.DB.Delete(&models.Batch{}, "id = ?", batchID)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete batch"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Batch not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
