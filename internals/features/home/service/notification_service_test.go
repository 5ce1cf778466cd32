package service

import (
	"testing"
	"time"
)

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		name  string
		until time.Duration
		want  string
	}{
		{"dua hari lima jam", 53 * time.Hour, "2 kun, 5 soat"},
		{"kurang dari sehari", 7 * time.Hour, "0 kun, 7 soat"},
		{"tepat tiga hari", 72 * time.Hour, "3 kun, 0 soat"},
		{"menit dibuang", 5*time.Hour + 59*time.Minute, "0 kun, 5 soat"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatRemaining(tt.until); got != tt.want {
				t.Errorf("FormatRemaining(%v) = %q, want %q", tt.until, got, tt.want)
			}
		})
	}
}
