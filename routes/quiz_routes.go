package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mahfuzr/coaching_center/handlers"
	"github.com/mahfuzr/coaching_center/middleware"
)

func QuizRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	quizzes := api.Group("/admin/quizzes", middleware.Protected(), middleware.AdminRequired())
	quizzes.Post("", handlers.CreateQuiz)
	quizzes.Get("", handlers.ListQuizzes)
	quizzes.Get("/:quizId", handlers.GetQuiz)
	quizzes.Put("/:quizId", handlers.UpdateQuiz)
	quizzes.Delete("/:quizId", handlers.DeleteQuiz)

	attempts := api.Group("/attempts", middleware.Protected())
	attempts.Get("/quiz/:quizId/take", handlers.TakeQuiz)
	attempts.Post("/submit", handlers.SubmitAttempt)
	attempts.Get("", handlers.ListAttempts)
	attempts.Get("/check", handlers.CheckAttempt)
	attempts.Get("/student/:studentId/batch/:batchId", handlers.ListStudentBatchAttempts)
	attempts.Get("/:attemptId", handlers.GetAttempt)

	adminAttempts := api.Group("/admin/attempts", middleware.Protected(), middleware.AdminRequired())
	adminAttempts.Delete("/:attemptId", handlers.DeleteAttempt)
}
