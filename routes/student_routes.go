package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mahfuzr/coaching_center/handlers"
	"github.com/mahfuzr/coaching_center/middleware"
)

func StudentRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	me := api.Group("/me", middleware.Protected())
	me.Get("", handlers.GetMyProfile)
	me.Put("", handlers.UpdateMyProfile)

	students := api.Group("/admin/students", middleware.Protected(), middleware.AdminRequired())
	students.Get("", handlers.ListStudents)
	students.Get("/:studentId", handlers.GetStudent)
	students.Put("/:studentId", handlers.UpdateStudent)
	students.Put("/:studentId/status", handlers.ToggleStudentStatus)
	students.Delete("/:studentId", handlers.DeleteStudent)
}
