package dbtime

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		minutes int
		wantErr bool
	}{
		{"09:00", 540, false},
		{"09:30:15", 570, false},
		{"00:00", 0, false},
		{"23:59", 1439, false},
		{"9 pagi", 0, true},
		{"25:00", 0, true},
	}
	for _, tt := range tests {
		tod, err := Parse(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Parse(%q): harus error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.in, err)
			continue
		}
		if got := tod.Minutes(); got != tt.minutes {
			t.Errorf("Parse(%q).Minutes() = %d, want %d", tt.in, got, tt.minutes)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	tod, err := Parse("14:05")
	if err != nil {
		t.Fatal(err)
	}
	b, err := tod.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"14:05"` {
		t.Errorf("MarshalJSON = %s, want %q", b, `"14:05"`)
	}
}

func TestValue(t *testing.T) {
	tod, err := Parse("08:15")
	if err != nil {
		t.Fatal(err)
	}
	v, err := tod.Value()
	if err != nil {
		t.Fatal(err)
	}
	if v != "08:15:00" {
		t.Errorf("Value = %v, want %q", v, "08:15:00")
	}

	var zero Tod
	v, err = zero.Value()
	if err != nil {
		t.Fatal(err)
	}
	if v != "00:00:00" {
		t.Errorf("Value zero = %v, want %q", v, "00:00:00")
	}
}

func TestFrom(t *testing.T) {
	src := time.Date(2026, 5, 20, 16, 45, 30, 0, time.Local)
	tod := From(src)
	if got := tod.Minutes(); got != 16*60+45 {
		t.Errorf("From(16:45).Minutes() = %d, want %d", got, 16*60+45)
	}
}
