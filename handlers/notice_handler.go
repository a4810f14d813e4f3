package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/mahfuzr/coaching_center/database"
	"github.com/mahfuzr/coaching_center/models"
	ws "github.com/mahfuzr/coaching_center/websocket"
)

type NoticeRequest struct {
	Title   string  `json:"title" validate:"required"`
	Body    string  `json:"body" validate:"required"`
	BatchID *string `json:"batch_id" validate:"omitempty,uuid4"`
}

// CreateNotice stores the notice and pushes it to every connected
// dashboard through the websocket hub.
func CreateNotice(c *fiber.Ctx) error {
	var req NoticeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	notice := models.Notice{
		Title: req.Title,
		Body:  req.Body,
	}
	if req.BatchID != nil {
		batchID, _ := uuid.Parse(*req.BatchID)
		notice.BatchID = &batchID
	}

	if err := database.DB.Create(&notice).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create notice"})
	}

	ws.Broadcast <- &notice

	return c.Status(fiber.StatusCreated).JSON(notice)
}

func ListNotices(c *fiber.Ctx) error {
	var notices []models.Notice
	q := database.DB.Order("created_at desc")
	if batchID := c.Query("batch_id"); batchID != "" {
		q = q.Where("batch_id = ? OR batch_id IS NULL", batchID)
	}
	q.Find(&notices)
	return c.JSON(notices)
}

func DeleteNotice(c *fiber.Ctx) error {
	noticeID := c.Params("noticeId")
	result := database.DB.Delete(&models.Notice{}, "id = ?", noticeID)

	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete notice"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Notice not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
