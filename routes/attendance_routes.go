package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mahfuzr/coaching_center/handlers"
	"github.com/mahfuzr/coaching_center/middleware"
)

func AttendanceRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	attendance := api.Group("/admin/attendance", middleware.Protected(), middleware.AdminRequired())
	attendance.Post("", handlers.MarkAttendance)
	attendance.Post("/batch", handlers.MarkBatchAttendance)
	attendance.Get("", handlers.ListAttendance)
	attendance.Put("/:attendanceId", handlers.UpdateAttendance)
	attendance.Delete("/:attendanceId", handlers.DeleteAttendance)
}
