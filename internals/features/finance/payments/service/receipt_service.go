package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// VerificationCode menghasilkan kode verifikasi kuitansi: 12 hex pertama
// dari HMAC-SHA256 atas field-field penting pembayaran. Kode berubah kalau
// salah satu field diubah, jadi kuitansi tidak bisa dipalsukan.
func VerificationCode(secret string, paymentID, studentID uuid.UUID, amount int64, month string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%s|%s|%d|%s", paymentID, studentID, amount, month)
	return hex.EncodeToString(mac.Sum(nil))[:12]
}

// VerifyCode membandingkan kode dengan aman terhadap timing attack.
func VerifyCode(secret string, paymentID, studentID uuid.UUID, amount int64, month, code string) bool {
	expected := VerificationCode(secret, paymentID, studentID, amount, month)
	return hmac.Equal([]byte(expected), []byte(code))
}

// ReceiptNumber: nomor kuitansi "INV-<tahun>-<8 hex pertama id>".
func ReceiptNumber(year int, paymentID uuid.UUID) string {
	return fmt.Sprintf("INV-%d-%s", year, paymentID.String()[:8])
}
