package service

import (
	"testing"
	"time"

	"kursusku_backend/internals/features/finance/payments/model"
)

func TestSortByMonth(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 1, d, 0, 0, 0, 0, time.UTC)
	}
	payments := []model.StudentPaymentModel{
		{PaymentMonth: "Mart", PaymentCreatedAt: day(3)},
		{PaymentMonth: "Yanvar", PaymentCreatedAt: day(5)},
		{PaymentMonth: "Bulan13", PaymentCreatedAt: day(1)},
		{PaymentMonth: "Fevral", PaymentCreatedAt: day(9)},
		{PaymentMonth: "Yanvar", PaymentCreatedAt: day(2)},
	}

	SortByMonth(payments)

	wantMonths := []string{"Yanvar", "Yanvar", "Fevral", "Mart", "Bulan13"}
	for i, want := range wantMonths {
		if payments[i].PaymentMonth != want {
			t.Fatalf("urutan[%d] = %q, want %q", i, payments[i].PaymentMonth, want)
		}
	}
	// bulan sama: yang dicatat lebih dulu di depan
	if !payments[0].PaymentCreatedAt.Before(payments[1].PaymentCreatedAt) {
		t.Error("pembayaran Yanvar tidak urut tanggal")
	}
}

func TestRemaining(t *testing.T) {
	tests := []struct {
		name      string
		totalFee  int64
		totalPaid int64
		want      int64
	}{
		{"belum bayar", 3000000, 0, 3000000},
		{"dua bulan dari enam", 3000000, 1000000, 2000000},
		{"lunas", 3000000, 3000000, 0},
		{"bayar lebih", 3000000, 3500000, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Remaining(tt.totalFee, tt.totalPaid); got != tt.want {
				t.Errorf("Remaining(%d, %d) = %d, want %d",
					tt.totalFee, tt.totalPaid, got, tt.want)
			}
		})
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{500, "500"},
		{1500, "1 500"},
		{500000, "500 000"},
		{1500000, "1 500 000"},
		{-25000, "-25 000"},
	}
	for _, tt := range tests {
		if got := FormatAmount(tt.in); got != tt.want {
			t.Errorf("FormatAmount(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
