package service

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestVerificationCode(t *testing.T) {
	secret := "rahasia-test"
	paymentID := uuid.MustParse("11111111-2222-3333-4444-555555555555")
	studentID := uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")

	code := VerificationCode(secret, paymentID, studentID, 500000, "Yanvar")

	if len(code) != 12 {
		t.Fatalf("panjang kode = %d, want 12", len(code))
	}
	if code != strings.ToLower(code) {
		t.Errorf("kode harus hex lowercase, got %q", code)
	}

	// deterministik
	if again := VerificationCode(secret, paymentID, studentID, 500000, "Yanvar"); again != code {
		t.Errorf("kode tidak deterministik: %q != %q", again, code)
	}

	// setiap field mengubah kode
	variants := map[string]string{
		"secret lain":  VerificationCode("secret-lain", paymentID, studentID, 500000, "Yanvar"),
		"payment lain": VerificationCode(secret, uuid.New(), studentID, 500000, "Yanvar"),
		"student lain": VerificationCode(secret, paymentID, uuid.New(), 500000, "Yanvar"),
		"jumlah lain":  VerificationCode(secret, paymentID, studentID, 600000, "Yanvar"),
		"bulan lain":   VerificationCode(secret, paymentID, studentID, 500000, "Fevral"),
	}
	for name, v := range variants {
		if v == code {
			t.Errorf("%s: kode tidak berubah", name)
		}
	}
}

func TestVerifyCode(t *testing.T) {
	secret := "rahasia-test"
	paymentID := uuid.New()
	studentID := uuid.New()

	code := VerificationCode(secret, paymentID, studentID, 250000, "Mart")

	if !VerifyCode(secret, paymentID, studentID, 250000, "Mart", code) {
		t.Error("kode valid ditolak")
	}
	if VerifyCode(secret, paymentID, studentID, 250000, "Mart", "000000000000") {
		t.Error("kode salah diterima")
	}
	if VerifyCode(secret, paymentID, studentID, 999999, "Mart", code) {
		t.Error("jumlah diubah tapi kode masih diterima")
	}
}

func TestReceiptNumber(t *testing.T) {
	paymentID := uuid.MustParse("deadbeef-0000-0000-0000-000000000000")
	got := ReceiptNumber(2026, paymentID)
	if got != "INV-2026-deadbeef" {
		t.Errorf("ReceiptNumber = %q, want %q", got, "INV-2026-deadbeef")
	}
}
