package routes

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/mahfuzr/coaching_center/handlers"
	"github.com/mahfuzr/coaching_center/middleware"
)

func NoticeRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/notices", handlers.ListNotices)

	admin := api.Group("/admin/notices", middleware.Protected(), middleware.AdminRequired())
	admin.Post("", handlers.CreateNotice)
	admin.Delete("/:noticeId", handlers.DeleteNotice)

	api.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	api.Get("/ws", websocket.New(handlers.ServeWs))
}
