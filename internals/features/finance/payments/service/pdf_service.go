package service

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// ReceiptData: isi satu kuitansi pembayaran.
type ReceiptData struct {
	Number      string
	StudentName string
	UserName    string
	GroupName   string
	Month       string
	Amount      int64
	PaidAt      time.Time
	Code        string
	VerifyURL   string
}

// FormatAmount menulis nominal dengan pemisah ribuan, mis. 1 500 000.
func FormatAmount(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := fmt.Sprintf("%d", amount)
	var out []byte
	for i, ch := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ' ')
		}
		out = append(out, ch)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}

// BuildReceiptPDF membuat kuitansi A5 dengan QR verifikasi.
func BuildReceiptPDF(data ReceiptData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A5", "")
	pdf.SetTitle("Kuitansi "+data.Number, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "KUITANSI PEMBAYARAN", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, data.Number, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	writeRow := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(40, 7, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
	}
	writeRow("Nama", data.StudentName)
	writeRow("Username", data.UserName)
	writeRow("Grup", data.GroupName)
	writeRow("Bulan", data.Month)
	writeRow("Jumlah", FormatAmount(data.Amount)+" so'm")
	writeRow("Tanggal", data.PaidAt.Format("02.01.2006 15:04"))
	writeRow("Kode verifikasi", data.Code)
	pdf.Ln(4)

	qrContent := data.VerifyURL
	if qrContent == "" {
		qrContent = fmt.Sprintf("%s:%s", data.Number, data.Code)
	}
	png, err := qrcode.Encode(qrContent, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("gagal membuat QR: %w", err)
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("receipt-qr", opts, bytes.NewReader(png))
	x := (148.0 - 35.0) / 2 // tengah halaman A5
	pdf.ImageOptions("receipt-qr", x, pdf.GetY(), 35, 35, false, opts, 0, "")
	pdf.SetY(pdf.GetY() + 38)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(0, 5, "Pindai QR untuk memverifikasi keaslian kuitansi ini.", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// TableColumn: definisi kolom PDF tabel.
type TableColumn struct {
	Header string
	Width  float64
	Align  string
}

// BuildTablePDF membuat PDF tabel sederhana (riwayat pembayaran, daftar student).
func BuildTablePDF(title string, cols []TableColumn, rows [][]string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range cols {
		pdf.CellFormat(col.Width, 8, col.Header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		for i, col := range cols {
			value := ""
			if i < len(row) {
				value = row[i]
			}
			align := col.Align
			if align == "" {
				align = "L"
			}
			pdf.CellFormat(col.Width, 7, value, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
