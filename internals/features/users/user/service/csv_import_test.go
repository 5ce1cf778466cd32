package service

import (
	"errors"
	"strings"
	"testing"
)

const validHeader = "username,first_name,last_name,phone_number,password\n"

func TestParseUsersCSV(t *testing.T) {
	csv := validHeader +
		"ali,Ali,Valiyev,+998901234567,secret1\n" +
		"vali,Vali,Aliyev,+998907654321,secret2\n"

	rows, skipped, err := ParseUsersCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParseUsersCSV: %v", err)
	}
	if skipped != 0 {
		t.Errorf("skipped = %d, want 0", skipped)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if rows[0].UserName != "ali" || rows[0].PhoneNumber != "+998901234567" {
		t.Errorf("baris pertama salah: %+v", rows[0])
	}
}

func TestParseUsersCSVHeaderDenganBOM(t *testing.T) {
	csv := "\uFEFF" + validHeader + "ali,Ali,Valiyev,+998901234567,secret1\n"

	rows, _, err := ParseUsersCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("BOM harus ditoleransi: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("len(rows) = %d, want 1", len(rows))
	}
}

func TestParseUsersCSVHeaderSalah(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{"kolom kurang", "username,first_name,last_name\nali,Ali,Valiyev\n"},
		{"nama kolom beda", "login,first_name,last_name,phone_number,password\na,b,c,d,e\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseUsersCSV(strings.NewReader(tt.csv))
			if !errors.Is(err, ErrBadCSVHeader) {
				t.Errorf("err = %v, want ErrBadCSVHeader", err)
			}
		})
	}
}

func TestParseUsersCSVBarisRusakDiskip(t *testing.T) {
	csv := validHeader +
		"ali,Ali,Valiyev,+998901234567,secret1\n" +
		",Tanpa,Username,+998900000000,secret\n" +
		"vali,Vali,Aliyev,,secret\n" +
		"toshmat,Tosh,Matov,+998911111111,\n" +
		"husan,Husan,Husanov,+998922222222,secret9\n"

	rows, skipped, err := ParseUsersCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParseUsersCSV: %v", err)
	}
	if len(rows) != 2 {
		t.Errorf("len(rows) = %d, want 2", len(rows))
	}
	if skipped != 3 {
		t.Errorf("skipped = %d, want 3", skipped)
	}
}

func TestParseUsersCSVFileKosong(t *testing.T) {
	if _, _, err := ParseUsersCSV(strings.NewReader("")); err == nil {
		t.Error("file kosong harus error")
	}
}
