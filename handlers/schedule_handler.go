package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/mahfuzr/coaching_center/database"
	"github.com/mahfuzr/coaching_center/models"
)

type ScheduleRequest struct {
	BatchID  string    `json:"batch_id" validate:"required,uuid4"`
	Chapter  string    `json:"chapter" validate:"required"`
	Topic    string    `json:"topic"`
	ClassAt  time.Time `json:"class_at" validate:"required"`
	Duration int       `json:"duration_minutes" validate:"required,gt=0"`
}

func CreateSchedule(c *fiber.Ctx) error {
	var req ScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	batchID, _ := uuid.Parse(req.BatchID)
	var batch models.Batch
	if err := database.DB.First(&batch, "id = ?", batchID).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Batch does not exist"})
	}

	schedule := models.ChapterSchedule{
		BatchID:  batchID,
		Chapter:  req.Chapter,
		Topic:    req.Topic,
		ClassAt:  req.ClassAt,
		Duration: req.Duration,
	}

	if err := database.DB.Create(&schedule).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create schedule"})
	}

	return c.Status(fiber.StatusCreated).JSON(schedule)
}

func ListSchedules(c *fiber.Ctx) error {
	var schedules []models.ChapterSchedule
	q := database.DB.Preload("Batch")
	if batchID := c.Query("batch_id"); batchID != "" {
		q = q.Where("batch_id = ?", batchID)
	}
	q.Order("class_at asc").Find(&schedules)
	return c.JSON(schedules)
}

func GetSchedule(c *fiber.Ctx) error {
	scheduleID := c.Params("scheduleId")
	var schedule models.ChapterSchedule
	if err := database.DB.Preload("Batch").First(&schedule, "id = ?", scheduleID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Schedule not found"})
	}
	return c.JSON(schedule)
}

func UpdateSchedule(c *fiber.Ctx) error {
	scheduleID := c.Params("scheduleId")
	var schedule models.ChapterSchedule
	if err := database.DB.First(&schedule, "id = ?", scheduleID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Schedule not found"})
	}

	var req ScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	batchID, _ := uuid.Parse(req.BatchID)
	schedule.BatchID = batchID
	schedule.Chapter = req.Chapter
	schedule.Topic = req.Topic
	schedule.ClassAt = req.ClassAt
	schedule.Duration = req.Duration
	database.DB.Save(&schedule)

	return c.JSON(schedule)
}

func DeleteSchedule(c *fiber.Ctx) error {
	scheduleID := c.Params("scheduleId")
	result := database.DB.Delete(&models.ChapterSchedule{}, "id = ?", scheduleID)

	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete schedule"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Schedule not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
