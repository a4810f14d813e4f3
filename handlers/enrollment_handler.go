package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/mahfuzr/coaching_center/database"
	"github.com/mahfuzr/coaching_center/models"
	"github.com/mahfuzr/coaching_center/services"
	"gorm.io/gorm"
)

type EnrollmentRequest struct {
	StudentID string `json:"student_id" validate:"required,uuid4"`
	BatchID   string `json:"batch_id" validate:"required,uuid4"`
}

// enrollStudent holds the shared enrollment rules: the batch must
// exist, have a free seat, and not be restricted to the other gender.
// Callers run it inside a transaction.
func enrollStudent(tx *gorm.DB, studentID, batchID uuid.UUID) (*models.Enrollment, error) {
	var student models.Student
	if err := tx.First(&student, "id = ? AND role = ?", studentID, "student").Error; err != nil {
		return nil, errors.New("student does not exist")
	}

	var batch models.Batch
	if err := tx.First(&batch, "id = ?", batchID).Error; err != nil {
		return nil, errors.New("batch does not exist")
	}

	if batch.GenderRestriction != nil && *batch.GenderRestriction != student.Gender {
		return nil, errors.New("batch is restricted to " + *batch.GenderRestriction + " students")
	}

	var enrolled int64
	tx.Model(&models.Enrollment{}).Where("batch_id = ?", batchID).Count(&enrolled)
	if enrolled >= int64(batch.Seats) {
		return nil, errors.New("batch is full")
	}

	enrollment := models.Enrollment{
		StudentID: studentID,
		BatchID:   batchID,
		Status:    "active",
		Date:      time.Now(),
	}
	if err := tx.Create(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.New("student is already enrolled in this batch")
		}
		return nil, err
	}
	return &enrollment, nil
}

func CreateEnrollment(c *fiber.Ctx) error {
	var req EnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	studentID, _ := uuid.Parse(req.StudentID)
	batchID, _ := uuid.Parse(req.BatchID)

	var enrollment *models.Enrollment
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		enrollment, err = enrollStudent(tx, studentID, batchID)
		return err
	})
	if err != nil {
		if err.Error() == "student is already enrolled in this batch" {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(enrollment)
}

func ListEnrollments(c *fiber.Ctx) error {
	var enrollments []models.Enrollment
	q := database.DB.Preload("Student").Preload("Batch")
	if batchID := c.Query("batch_id"); batchID != "" {
		q = q.Where("batch_id = ?", batchID)
	}
	if studentID := c.Query("student_id"); studentID != "" {
		q = q.Where("student_id = ?", studentID)
	}
	q.Find(&enrollments)
	return c.JSON(enrollments)
}

func GetEnrollment(c *fiber.Ctx) error {
	enrollmentID := c.Params("enrollmentId")
	var enrollment models.Enrollment
	if err := database.DB.Preload("Student").Preload("Batch").First(&enrollment, "id = ?", enrollmentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Enrollment not found"})
	}
	return c.JSON(enrollment)
}

func UpdateEnrollmentStatus(c *fiber.Ctx) error {
	enrollmentID := c.Params("enrollmentId")
	var enrollment models.Enrollment
	if err := database.DB.First(&enrollment, "id = ?", enrollmentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Enrollment not found"})
	}

	type Request struct {
		Status string `json:"status" validate:"required,oneof=active suspended completed"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	enrollment.Status = req.Status
	database.DB.Save(&enrollment)

	return c.JSON(enrollment)
}

// IssueCertificate kicks off completion-certificate generation for a
// completed enrollment. The PDF is rendered and uploaded in the
// background; the stored URL appears on the enrollment once done.
func IssueCertificate(c *fiber.Ctx) error {
	enrollmentID := c.Params("enrollmentId")
	var enrollment models.Enrollment
	if err := database.DB.First(&enrollment, "id = ?", enrollmentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Enrollment not found"})
	}

	if enrollment.Status != "completed" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Enrollment is not completed"})
	}

	go services.GenerateCompletionCertificate(enrollment.ID)

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"message": "Certificate generation started",
	})
}

func DeleteEnrollment(c *fiber.Ctx) error {
	enrollmentID := c.Params("enrollmentId")
	result := database.DB.Delete(&models.Enrollment{}, "id = ?", enrollmentID)

	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete enrollment"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Enrollment not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
