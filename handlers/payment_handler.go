package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/mahfuzr/coaching_center/database"
	"github.com/mahfuzr/coaching_center/models"
	"github.com/mahfuzr/coaching_center/notifications"
	"github.com/mahfuzr/coaching_center/services"
	"gorm.io/gorm"
)

type PaymentRequest struct {
	StudentID string  `json:"student_id" validate:"required,uuid4"`
	BatchID   string  `json:"batch_id" validate:"required,uuid4"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Method    string  `json:"method" validate:"required,oneof=cash bkash nagad card"`
	Enroll    bool    `json:"enroll"`
}

// CreatePayment records a payment. With enroll=true the payment and
// the enrollment are written in one transaction so a failure on
// either side leaves no half-admitted student behind.
func CreatePayment(c *fiber.Ctx) error {
	var req PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	studentID, _ := uuid.Parse(req.StudentID)
	batchID, _ := uuid.Parse(req.BatchID)

	var payment models.Payment
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		payment = models.Payment{
			StudentID: studentID,
			BatchID:   batchID,
			Amount:    req.Amount,
			Method:    req.Method,
			Status:    "paid",
			PaidAt:    time.Now(),
		}

		if req.Enroll {
			enrollment, err := enrollStudent(tx, studentID, batchID)
			if err != nil {
				return err
			}
			payment.EnrollmentID = &enrollment.ID
		}

		return tx.Create(&payment).Error
	})

	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	go services.GeneratePaymentReceipt(payment.ID)

	var student models.Student
	if err := database.DB.First(&student, "id = ?", studentID).Error; err == nil {
		go notifications.SendEmail(student.FullName, student.Email, "Payment Received",
			fmt.Sprintf("<h1>Payment Received</h1><p>We received your payment of <b>%.2f BDT</b>. Your receipt will be available on your dashboard shortly.</p>", payment.Amount))
	}

	return c.Status(fiber.StatusCreated).JSON(payment)
}

func ListPayments(c *fiber.Ctx) error {
	var payments []models.Payment
	q := database.DB.Preload("Student").Preload("Batch")
	if studentID := c.Query("student_id"); studentID != "" {
		q = q.Where("student_id = ?", studentID)
	}
	if batchID := c.Query("batch_id"); batchID != "" {
		q = q.Where("batch_id = ?", batchID)
	}
	q.Order("paid_at desc").Find(&payments)
	return c.JSON(payments)
}

func GetPayment(c *fiber.Ctx) error {
	paymentID := c.Params("paymentId")
	var payment models.Payment
	if err := database.DB.Preload("Student").Preload("Batch").First(&payment, "id = ?", paymentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment not found"})
	}
	return c.JSON(payment)
}

func UpdatePayment(c *fiber.Ctx) error {
	paymentID := c.Params("paymentId")
	var payment models.Payment
	if err := database.DB.First(&payment, "id = ?", paymentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment not found"})
	}

	type Request struct {
		Amount *float64 `json:"amount" validate:"omitempty,gt=0"`
		Method *string  `json:"method" validate:"omitempty,oneof=cash bkash nagad card"`
		Status *string  `json:"status" validate:"omitempty,oneof=paid refunded void"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.Amount != nil {
		payment.Amount = *req.Amount
	}
	if req.Method != nil {
		payment.Method = *req.Method
	}
	if req.Status != nil {
		payment.Status = *req.Status
	}
	database.DB.Save(&payment)

	return c.JSON(payment)
}

func DeletePayment(c *fiber.Ctx) error {
	paymentID := c.Params("paymentId")
	result := database.DB.Delete(&models.Payment{}, "id = ?", paymentID)

	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete payment"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
