package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentcontroller "kursusku_backend/internals/features/finance/payments/controller"
	"kursusku_backend/internals/middlewares"
)

// Dipasang di bawah /api/a (admin)
func PaymentAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := paymentcontroller.NewAdminPaymentController(db)

	api.Get("/payment-info/groups/:id", ctrl.GetGroupPaymentInfo)
	api.Put("/payment-info/groups/:id", ctrl.UpsertGroupPaymentInfo)

	payments := api.Group("/payments")
	payments.Post("/", ctrl.AddStudentPayment)
	payments.Get("/groups/:id", ctrl.GroupPaymentSummary)
	payments.Get("/students/:id", ctrl.StudentHistory)
	payments.Get("/students/:id/history.pdf", ctrl.StudentHistoryPDF)
	payments.Get("/:id/receipt.pdf", ctrl.ReceiptPDF)
}

// Dipasang di bawah /api/s (student)
func PaymentStudentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := paymentcontroller.NewStudentPaymentController(db)
	payments := api.Group("/payments")
	payments.Get("/", ctrl.MyPayments)
	payments.Get("/:id/receipt.pdf", ctrl.MyReceiptPDF)
}

// Dipasang di bawah /api/public (tanpa login, dibatasi rate limit)
func PaymentPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := paymentcontroller.NewVerifyController(db)
	api.Get("/payments/verify/:payment_id/:code", middlewares.ReceiptVerifyRateLimiter(), ctrl.VerifyReceipt)
}
