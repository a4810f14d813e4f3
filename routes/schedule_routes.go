package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mahfuzr/coaching_center/handlers"
	"github.com/mahfuzr/coaching_center/middleware"
)

func ScheduleRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/schedules", middleware.Protected(), handlers.ListSchedules)
	api.Get("/schedules/:scheduleId", middleware.Protected(), handlers.GetSchedule)

	admin := api.Group("/admin/schedules", middleware.Protected(), middleware.AdminRequired())
	admin.Post("", handlers.CreateSchedule)
	admin.Put("/:scheduleId", handlers.UpdateSchedule)
	admin.Delete("/:scheduleId", handlers.DeleteSchedule)
}
