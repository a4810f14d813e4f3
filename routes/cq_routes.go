package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mahfuzr/coaching_center/handlers"
	"github.com/mahfuzr/coaching_center/middleware"
)

func CqRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/cq-questions", middleware.Protected(), handlers.ListCqQuestions)
	api.Get("/cq-questions/:questionId", middleware.Protected(), handlers.GetCqQuestion)

	admin := api.Group("/admin/cq-questions", middleware.Protected(), middleware.AdminRequired())
	admin.Post("", handlers.CreateCqQuestion)
	admin.Put("/:questionId", handlers.UpdateCqQuestion)
	admin.Delete("/:questionId", handlers.DeleteCqQuestion)
}
