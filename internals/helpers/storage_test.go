package helper

import (
	"strings"
	"testing"
)

func TestGenerateUniqueFilename(t *testing.T) {
	tests := []struct {
		name       string
		original   string
		wantSuffix string
	}{
		{"nama biasa", "Laporan Akhir.PDF", "-laporan-akhir.pdf"},
		{"karakter aneh", "foto (1) #final!.jpg", "-foto-1-final.jpg"},
		{"tanpa ekstensi", "catatan", "-catatan"},
		{"nama kosong", "!!!.png", "-item.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateUniqueFilename("tugas", tt.original)
			if !strings.HasPrefix(got, "tugas/") {
				t.Errorf("harus diawali folder: %q", got)
			}
			if !strings.HasSuffix(got, tt.wantSuffix) {
				t.Errorf("GenerateUniqueFilename(%q) = %q, want akhiran %q",
					tt.original, got, tt.wantSuffix)
			}
		})
	}
}

func TestGenerateUniqueFilenameUnik(t *testing.T) {
	a := GenerateUniqueFilename("tugas", "sama.pdf")
	b := GenerateUniqueFilename("tugas", "sama.pdf")
	if a == b {
		t.Errorf("dua panggilan menghasilkan nama sama: %q", a)
	}
}
