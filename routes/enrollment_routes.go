package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mahfuzr/coaching_center/handlers"
	"github.com/mahfuzr/coaching_center/middleware"
)

func EnrollmentRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	enrollments := api.Group("/admin/enrollments", middleware.Protected(), middleware.AdminRequired())
	enrollments.Post("", handlers.CreateEnrollment)
	enrollments.Get("", handlers.ListEnrollments)
	enrollments.Get("/:enrollmentId", handlers.GetEnrollment)
	enrollments.Put("/:enrollmentId", handlers.UpdateEnrollmentStatus)
	enrollments.Post("/:enrollmentId/certificate", handlers.IssueCertificate)
	enrollments.Delete("/:enrollmentId", handlers.DeleteEnrollment)

	payments := api.Group("/admin/payments", middleware.Protected(), middleware.AdminRequired())
	payments.Post("", handlers.CreatePayment)
	payments.Get("", handlers.ListPayments)
	payments.Get("/:paymentId", handlers.GetPayment)
	payments.Put("/:paymentId", handlers.UpdatePayment)
	payments.Delete("/:paymentId", handlers.DeletePayment)
}
