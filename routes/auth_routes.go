package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mahfuzr/coaching_center/handlers"
)

func AuthRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/register", handlers.RegisterStudent)
	auth.Post("/login", handlers.LoginStudent)
	auth.Post("/forgot-password", handlers.ForgotPassword)
	auth.Post("/reset-password", handlers.ResetPassword)
}
