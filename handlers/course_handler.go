package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mahfuzr/coaching_center/database"
	"github.com/mahfuzr/coaching_center/models"
)

type CourseRequest struct {
	Title         string  `json:"title" validate:"required"`
	Description   string  `json:"description"`
	Fee           float64 `json:"fee" validate:"required,gt=0"`
	Schedule      string  `json:"schedule"`
	TotalClasses  int     `json:"total_classes" validate:"gte=0"`
	TotalChapters int     `json:"total_chapters" validate:"gte=0"`
}

func CreateCourse(c *fiber.Ctx) error {
	var req CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	course := models.Course{
		Title:         req.Title,
		Description:   req.Description,
		Fee:           req.Fee,
		Schedule:      req.Schedule,
		TotalClasses:  req.TotalClasses,
		TotalChapters: req.TotalChapters,
		IsActive:      true,
	}

	if err := database.DB.Create(&course).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create course"})
	}

	return c.Status(fiber.StatusCreated).JSON(course)
}

func ListCourses(c *fiber.Ctx) error {
	var courses []models.Course
	database.DB.Find(&courses)
	return c.JSON(courses)
}

func GetCourse(c *fiber.Ctx) error {
	courseID := c.Params("courseId")
	var course models.Course
	if err := database.DB.First(&course, "id = ?", courseID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}
	return c.JSON(course)
}

func UpdateCourse(c *fiber.Ctx) error {
	courseID := c.Params("courseId")
	var course models.Course
	if err := database.DB.First(&course, "id = ?", courseID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	var req CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	course.Title = req.Title
	course.Description = req.Description
	course.Fee = req.Fee
	course.Schedule = req.Schedule
	course.TotalClasses = req.TotalClasses
	course.TotalChapters = req.TotalChapters
	database.DB.Save(&course)

	return c.JSON(course)
}

func DeleteCourse(c *fiber.Ctx) error {
	courseID := c.Params("courseId")

	var batchCount int64
	database.DB.Model(&models.Batch{}).Where("course_id = ?", courseID).Count(&batchCount)
	if batchCount > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Course has batches and cannot be deleted"})
	}

	result := database.DB.Delete(&models.Course{}, "id = ?", courseID)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete course"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
