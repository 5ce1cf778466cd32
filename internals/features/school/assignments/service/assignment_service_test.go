package service

import (
	"errors"
	"testing"
	"time"

	"kursusku_backend/internals/helpers/dbtime"
)

func TestParseDeadline(t *testing.T) {
	got, err := ParseDeadline("2026-09-15 18:00")
	if err != nil {
		t.Fatalf("ParseDeadline: %v", err)
	}
	want := time.Date(2026, 9, 15, 18, 0, 0, 0, dbtime.Location())
	if !got.Equal(want) {
		t.Errorf("ParseDeadline = %v, want %v", got, want)
	}

	got, err = ParseDeadline("2026-09-15T18:00:00+05:00")
	if err != nil {
		t.Fatalf("ParseDeadline RFC3339: %v", err)
	}
	if got.Year() != 2026 || got.Hour() != 18 {
		t.Errorf("ParseDeadline RFC3339 = %v", got)
	}

	for _, bad := range []string{"", "besok", "15/09/2026", "2026-09-15"} {
		if _, err := ParseDeadline(bad); !errors.Is(err, ErrBadDeadlineFormat) {
			t.Errorf("ParseDeadline(%q): err = %v, want ErrBadDeadlineFormat", bad, err)
		}
	}
}

func TestValidateTeacherDeadline(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		deadline time.Time
		wantErr  bool
	}{
		{"kurang dari 3 hari", now.Add(24 * time.Hour), true},
		{"satu menit di bawah batas", now.Add(MinTeacherDeadlineLead - time.Minute), true},
		{"tepat 3 hari", now.Add(MinTeacherDeadlineLead), false},
		{"jauh di depan", now.Add(30 * 24 * time.Hour), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTeacherDeadline(tt.deadline, now)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTeacherDeadline = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
