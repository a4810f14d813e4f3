package handlers

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mahfuzr/coaching_center/database"
	"github.com/mahfuzr/coaching_center/models"
	"github.com/mahfuzr/coaching_center/utils"
	"github.com/xuri/excelize/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ExportAttendanceReport writes a batch's attendance for one month
// into a spreadsheet, one row per student per date.
func ExportAttendanceReport(c *fiber.Ctx) error {
	batchID := c.Params("batchId")
	month := c.Query("month") // YYYY-MM
	if month == "" {
		month = time.Now().Format("2006-01")
	}
	monthStart, err := time.Parse("2006-01", month)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "month must be formatted YYYY-MM"})
	}
	monthEnd := monthStart.AddDate(0, 1, 0)

	var records []models.Attendance
	if err := database.DB.Preload("Student").
		Where("batch_id = ? AND date >= ? AND date < ?", batchID, monthStart, monthEnd).
		Order("date asc").
		Find(&records).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load attendance"})
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Error closing workbook: %v", err)
		}
	}()

	sheet := f.GetSheetName(0)
	headers := []string{"Date", "Student ID", "Name", "Status"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for i, r := range records {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), r.Date.Format("2006-01-02"))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), r.Student.StudentSerial)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), r.Student.FullName)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), r.Status)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build report"})
	}

	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="attendance-%s.xlsx"`, month))
	return c.Send(buf.Bytes())
}

// ExportPaymentReport writes the payment ledger, optionally filtered
// by batch.
func ExportPaymentReport(c *fiber.Ctx) error {
	var payments []models.Payment
	q := database.DB.Preload("Student").Preload("Batch")
	if batchID := c.Query("batch_id"); batchID != "" {
		q = q.Where("batch_id = ?", batchID)
	}
	if err := q.Order("paid_at asc").Find(&payments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load payments"})
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Error closing workbook: %v", err)
		}
	}()

	sheet := f.GetSheetName(0)
	headers := []string{"Date", "Student ID", "Name", "Batch", "Amount", "Method", "Status"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for i, p := range payments {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), p.PaidAt.Format("2006-01-02"))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), p.Student.StudentSerial)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), p.Student.FullName)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), p.Batch.Name)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), p.Amount)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), p.Method)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), p.Status)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build report"})
	}

	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", `attachment; filename="payments.xlsx"`)
	return c.Send(buf.Bytes())
}

// ImportStudentRoster reads an uploaded workbook (columns: Name,
// Email, Phone, Gender, Institution) and registers a student per
// valid row. Rows with missing fields or duplicate emails are
// skipped and reported.
func ImportStudentRoster(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing file upload"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot open uploaded file"})
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot read workbook"})
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Error closing workbook: %v", err)
		}
	}()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Workbook has no sheets"})
	}
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot read rows"})
	}

	defaultPassword, err := bcrypt.GenerateFromPassword([]byte("changeme123"), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to prepare import"})
	}

	imported := 0
	skipped := 0
	for i, row := range rows {
		if i == 0 {
			continue // header row
		}
		cell := func(idx int) string {
			if idx < len(row) {
				return row[idx]
			}
			return ""
		}
		name, email, phone, gender := cell(0), cell(1), cell(2), cell(3)
		if name == "" || email == "" || phone == "" || gender == "" {
			log.Printf("Skipping roster row %d due to missing fields", i+1)
			skipped++
			continue
		}

		err := database.DB.Transaction(func(tx *gorm.DB) error {
			serial, err := utils.GenerateStudentSerial(tx)
			if err != nil {
				return err
			}
			student := models.Student{
				StudentSerial:   serial,
				FullName:        name,
				Email:           email,
				Phone:           phone,
				Gender:          gender,
				InstitutionCode: cell(4),
				Password:        string(defaultPassword),
			}
			return tx.Create(&student).Error
		})
		if err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				skipped++
				continue
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Import failed partway through"})
		}
		imported++
	}

	return c.JSON(fiber.Map{"imported": imported, "skipped": skipped})
}
