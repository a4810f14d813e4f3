package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mahfuzr/coaching_center/handlers"
)

func LeaderboardRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/leaderboard", handlers.GetLeaderboard)
	api.Get("/leaderboard/chapter/:chapter/batch/:batchId", handlers.GetChapterLeaderboard)
	api.Get("/rankings", handlers.GetRankings)
}
