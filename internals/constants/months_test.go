package constants

import "testing"

func TestMonthOrder(t *testing.T) {
	if got := MonthOrder("Yanvar"); got != 0 {
		t.Errorf("MonthOrder(Yanvar) = %d, want 0", got)
	}
	if got := MonthOrder("Dekabr"); got != 11 {
		t.Errorf("MonthOrder(Dekabr) = %d, want 11", got)
	}
	if got := MonthOrder("Januari"); got != len(PaymentMonths) {
		t.Errorf("bulan asing harus diurutkan paling akhir, got %d", got)
	}
}

func TestIsValidPaymentMonth(t *testing.T) {
	for _, m := range PaymentMonths {
		if !IsValidPaymentMonth(m) {
			t.Errorf("%q harus valid", m)
		}
	}
	if IsValidPaymentMonth("yanvar") {
		t.Error("label case-sensitive, lowercase tidak valid")
	}
	if IsValidPaymentMonth("") {
		t.Error("string kosong tidak valid")
	}
}
