package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mahfuzr/coaching_center/handlers"
	"github.com/mahfuzr/coaching_center/middleware"
)

func CourseRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// the catalog is public, mutation is admin-only
	api.Get("/courses", handlers.ListCourses)
	api.Get("/courses/:courseId", handlers.GetCourse)
	api.Get("/batches", handlers.ListBatches)
	api.Get("/batches/:batchId", handlers.GetBatch)

	courses := api.Group("/admin/courses", middleware.Protected(), middleware.AdminRequired())
	courses.Post("", handlers.CreateCourse)
	courses.Put("/:courseId", handlers.UpdateCourse)
	courses.Delete("/:courseId", handlers.DeleteCourse)

	batches := api.Group("/admin/batches", middleware.Protected(), middleware.AdminRequired())
	batches.Post("", handlers.CreateBatch)
	batches.Put("/:batchId", handlers.UpdateBatch)
	batches.Delete("/:batchId", handlers.DeleteBatch)
}
