package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/users/user/dto"
	"kursusku_backend/internals/features/users/user/model"
)

// Header wajib file import (urutan harus sama persis)
var expectedHeaders = []string{"username", "first_name", "last_name", "phone_number", "password"}

var ErrBadCSVHeader = fmt.Errorf("CSV ustunlari noto'g'ri! Kerakli format: %s", strings.Join(expectedHeaders, ", "))

// CSVUserRow: satu baris valid dari file import
type CSVUserRow struct {
	UserName    string
	FirstName   string
	LastName    string
	PhoneNumber string
	Password    string
}

// ParseUsersCSV membaca file CSV import user.
// - BOM (utf-8-sig) ditoleransi
// - header dicocokkan case-insensitive setelah trim
// - baris dengan kolom != 5 atau username/phone/password kosong di-skip
func ParseUsersCSV(r io.Reader) ([]CSVUserRow, int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // validasi panjang per baris manual

	headers, err := reader.Read()
	if err != nil {
		return nil, 0, errors.New("file CSV kosong atau tidak terbaca")
	}
	if len(headers) > 0 {
		headers[0] = strings.TrimPrefix(headers[0], "\uFEFF")
	}
	if len(headers) != len(expectedHeaders) {
		return nil, 0, ErrBadCSVHeader
	}
	for i, h := range headers {
		if strings.ToLower(strings.TrimSpace(h)) != expectedHeaders[i] {
			return nil, 0, ErrBadCSVHeader
		}
	}

	var rows []CSVUserRow
	skipped := 0
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}
		if len(rec) != 5 {
			skipped++
			continue
		}
		row := CSVUserRow{
			UserName:    strings.TrimSpace(rec[0]),
			FirstName:   strings.TrimSpace(rec[1]),
			LastName:    strings.TrimSpace(rec[2]),
			PhoneNumber: strings.TrimSpace(rec[3]),
			Password:    strings.TrimSpace(rec[4]),
		}
		if row.UserName == "" || row.PhoneNumber == "" || row.Password == "" {
			skipped++
			continue
		}
		rows = append(rows, row)
	}
	return rows, skipped, nil
}

// ImportUsers membuat user dari baris CSV. Username yang sudah ada di-skip.
func ImportUsers(ctx context.Context, db *gorm.DB, role string, rows []CSVUserRow) (dto.ImportResult, error) {
	result := dto.ImportResult{}

	for _, row := range rows {
		var count int64
		if err := db.WithContext(ctx).Model(&model.UserModel{}).
			Where("user_name = ?", row.UserName).
			Count(&count).Error; err != nil {
			return result, err
		}
		if count > 0 {
			result.Skipped++
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(row.Password), bcrypt.DefaultCost)
		if err != nil {
			result.Errors = append(result.Errors, row.UserName+": gagal hash password")
			result.Skipped++
			continue
		}

		user := model.UserModel{
			UserName:    row.UserName,
			FirstName:   row.FirstName,
			LastName:    row.LastName,
			PhoneNumber: row.PhoneNumber,
			Password:    string(hashed),
			Role:        role,
			IsActive:    true,
		}
		if err := db.WithContext(ctx).Create(&user).Error; err != nil {
			result.Errors = append(result.Errors, row.UserName+": "+err.Error())
			result.Skipped++
			continue
		}
		result.Created++
	}
	return result, nil
}
