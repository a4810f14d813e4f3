package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mahfuzr/coaching_center/database"
	"github.com/mahfuzr/coaching_center/models"
)

// GetDashboardAnalytics returns the headline numbers for the admin
// dashboard: entity counts, this month's revenue and attempt volume.
func GetDashboardAnalytics(c *fiber.Ctx) error {
	var studentCount, courseCount, batchCount, enrollmentCount int64
	database.DB.Model(&models.Student{}).Where("role = ?", "student").Count(&studentCount)
	database.DB.Model(&models.Course{}).Count(&courseCount)
	database.DB.Model(&models.Batch{}).Count(&batchCount)
	database.DB.Model(&models.Enrollment{}).Where("status = ?", "active").Count(&enrollmentCount)

	monthStart := time.Date(time.Now().Year(), time.Now().Month(), 1, 0, 0, 0, 0, time.Local)

	var monthlyRevenue float64
	database.DB.Model(&models.Payment{}).
		Where("status = ? AND paid_at >= ?", "paid", monthStart).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&monthlyRevenue)

	var monthlyAttempts int64
	database.DB.Model(&models.McqAttempt{}).
		Where("submitted_at >= ?", monthStart).
		Count(&monthlyAttempts)

	return c.JSON(fiber.Map{
		"students":           studentCount,
		"courses":            courseCount,
		"batches":            batchCount,
		"active_enrollments": enrollmentCount,
		"monthly_revenue":    monthlyRevenue,
		"monthly_attempts":   monthlyAttempts,
	})
}
