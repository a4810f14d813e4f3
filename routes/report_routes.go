package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mahfuzr/coaching_center/handlers"
	"github.com/mahfuzr/coaching_center/middleware"
)

func ReportRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	reports := api.Group("/admin/reports", middleware.Protected(), middleware.AdminRequired())
	reports.Get("/attendance/:batchId", handlers.ExportAttendanceReport)
	reports.Get("/payments", handlers.ExportPaymentReport)
	reports.Post("/students/import", handlers.ImportStudentRoster)

	api.Get("/admin/dashboard-analytics", middleware.Protected(), middleware.AdminRequired(), handlers.GetDashboardAnalytics)
}
