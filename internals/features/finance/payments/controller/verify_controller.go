package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/configs"
	"kursusku_backend/internals/features/finance/payments/model"
	"kursusku_backend/internals/features/finance/payments/service"
	helper "kursusku_backend/internals/helpers"
)

type VerifyController struct {
	DB *gorm.DB
}

func NewVerifyController(db *gorm.DB) *VerifyController {
	return &VerifyController{DB: db}
}

// =============================
// 🔍 Verifikasi kuitansi (publik, via QR)
// Kode salah dan pembayaran tidak ada dijawab sama,
// supaya endpoint tidak bisa dipakai menebak-nebak.
// Kode cocok → kuitansi PDF dikirim ulang.
// =============================
func (ctrl *VerifyController) VerifyReceipt(c *fiber.Ctx) error {
	paymentID, err := uuid.Parse(c.Params("payment_id"))
	code := strings.TrimSpace(c.Params("code"))
	if err != nil || code == "" {
		return helper.JsonError(c, fiber.StatusNotFound, "Kuitansi tidak ditemukan")
	}

	var payment model.StudentPaymentModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&payment, "payment_id = ?", paymentID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Kuitansi tidak ditemukan")
	}
	if !service.VerifyCode(configs.ReceiptSecret,
		payment.PaymentID, payment.PaymentStudentID, payment.PaymentAmount, payment.PaymentMonth, code) {
		return helper.JsonError(c, fiber.StatusNotFound, "Kuitansi tidak ditemukan")
	}

	return writeReceiptPDF(c, ctrl.DB, payment.PaymentID, uuid.Nil)
}
