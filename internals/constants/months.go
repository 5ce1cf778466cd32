package constants

// Label bulan pembayaran (kalender akademik, urutan tetap)
var PaymentMonths = []string{
	"Yanvar",
	"Fevral",
	"Mart",
	"Aprel",
	"May",
	"Iyun",
	"Iyul",
	"Avgust",
	"Sentabr",
	"Oktabr",
	"Noyabr",
	"Dekabr",
}

// MonthOrder mengembalikan indeks bulan (0-based) untuk sorting riwayat
// pembayaran. Label tidak dikenal ditaruh paling akhir.
func MonthOrder(month string) int {
	for i, m := range PaymentMonths {
		if m == month {
			return i
		}
	}
	return len(PaymentMonths)
}

func IsValidPaymentMonth(month string) bool {
	return MonthOrder(month) < len(PaymentMonths)
}
