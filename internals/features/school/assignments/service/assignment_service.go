package service

import (
	"errors"
	"strings"
	"time"

	"kursusku_backend/internals/helpers/dbtime"
)

// Teacher hanya boleh memasang tenggat minimal 3 hari ke depan.
const MinTeacherDeadlineLead = 72 * time.Hour

var ErrBadDeadlineFormat = errors.New("format tenggat harus '2006-01-02 15:04' atau RFC3339")

// ParseDeadline menerima "2006-01-02 15:04" (zona waktu lokal) atau RFC3339.
func ParseDeadline(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, ErrBadDeadlineFormat
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04", raw, dbtime.Location()); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Time{}, ErrBadDeadlineFormat
}

// ValidateTeacherDeadline memastikan tenggat teacher tidak terlalu dekat.
func ValidateTeacherDeadline(deadline, now time.Time) error {
	if deadline.Before(now.Add(MinTeacherDeadlineLead)) {
		return errors.New("tenggat minimal 3 hari dari sekarang")
	}
	return nil
}
