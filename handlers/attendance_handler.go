package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/mahfuzr/coaching_center/database"
	"github.com/mahfuzr/coaching_center/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttendanceRequest struct {
	StudentID string `json:"student_id" validate:"required,uuid4"`
	BatchID   string `json:"batch_id" validate:"required,uuid4"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Status    string `json:"status" validate:"required,oneof=present absent late"`
}

func MarkAttendance(c *fiber.Ctx) error {
	var req AttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	studentID, _ := uuid.Parse(req.StudentID)
	batchID, _ := uuid.Parse(req.BatchID)
	date, _ := time.Parse("2006-01-02", req.Date)

	attendance := models.Attendance{
		StudentID: studentID,
		BatchID:   batchID,
		Date:      date,
		Status:    req.Status,
	}

	if err := database.DB.Create(&attendance).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Attendance already marked for this student on this date"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to mark attendance"})
	}

	return c.Status(fiber.StatusCreated).JSON(attendance)
}

// sheetWriter abstracts the row insert so the sheet loop is testable
// without a database.
type sheetWriter interface {
	insertIfAbsent(a *models.Attendance) (bool, error)
}

type gormSheetWriter struct{ tx *gorm.DB }

// insertIfAbsent relies on ON CONFLICT DO NOTHING: a row that hits the
// unique index is reported as not inserted instead of aborting the
// enclosing transaction.
func (w gormSheetWriter) insertIfAbsent(a *models.Attendance) (bool, error) {
	result := w.tx.Clauses(clause.OnConflict{DoNothing: true}).Create(a)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// markSheet writes every row of a day's sheet, counting rows skipped
// because the student was already marked for that date.
func markSheet(w sheetWriter, rows []models.Attendance) (marked, skipped int, err error) {
	for i := range rows {
		inserted, err := w.insertIfAbsent(&rows[i])
		if err != nil {
			return marked, skipped, err
		}
		if inserted {
			marked++
		} else {
			skipped++
		}
	}
	return marked, skipped, nil
}

// MarkBatchAttendance records a full day's sheet for a batch in one
// call. Already-marked rows are skipped, not overwritten.
func MarkBatchAttendance(c *fiber.Ctx) error {
	type Entry struct {
		StudentID string `json:"student_id" validate:"required,uuid4"`
		Status    string `json:"status" validate:"required,oneof=present absent late"`
	}
	type Request struct {
		BatchID string  `json:"batch_id" validate:"required,uuid4"`
		Date    string  `json:"date" validate:"required,datetime=2006-01-02"`
		Entries []Entry `json:"entries" validate:"required,min=1,dive"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	batchID, _ := uuid.Parse(req.BatchID)
	date, _ := time.Parse("2006-01-02", req.Date)

	rows := make([]models.Attendance, 0, len(req.Entries))
	for _, entry := range req.Entries {
		studentID, _ := uuid.Parse(entry.StudentID)
		rows = append(rows, models.Attendance{
			StudentID: studentID,
			BatchID:   batchID,
			Date:      date,
			Status:    entry.Status,
		})
	}

	var marked, skipped int
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		marked, skipped, err = markSheet(gormSheetWriter{tx}, rows)
		return err
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to mark attendance"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"marked": marked, "skipped": skipped})
}

func ListAttendance(c *fiber.Ctx) error {
	var records []models.Attendance
	q := database.DB.Preload("Student")
	if batchID := c.Query("batch_id"); batchID != "" {
		q = q.Where("batch_id = ?", batchID)
	}
	if studentID := c.Query("student_id"); studentID != "" {
		q = q.Where("student_id = ?", studentID)
	}
	if date := c.Query("date"); date != "" {
		q = q.Where("date = ?", date)
	}
	q.Order("date desc").Find(&records)
	return c.JSON(records)
}

func UpdateAttendance(c *fiber.Ctx) error {
	attendanceID := c.Params("attendanceId")
	var attendance models.Attendance
	if err := database.DB.First(&attendance, "id = ?", attendanceID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Attendance record not found"})
	}

	type Request struct {
		Status string `json:"status" validate:"required,oneof=present absent late"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	attendance.Status = req.Status
	database.DB.Save(&attendance)

	return c.JSON(attendance)
}

func DeleteAttendance(c *fiber.Ctx) error {
	attendanceID := c.Params("attendanceId")
	result := database.DB.Delete(&models.Attendance{}, "id = ?", attendanceID)

	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete attendance record"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Attendance record not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
