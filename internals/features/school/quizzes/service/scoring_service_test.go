package service

import "testing"

func TestComputeScore(t *testing.T) {
	tests := []struct {
		name     string
		correct  int
		total    int
		maxScore int
		want     int
	}{
		{"tiga dari empat", 3, 4, 100, 75},
		{"semua benar", 5, 5, 100, 100},
		{"semua salah", 0, 7, 100, 0},
		{"dibulatkan ke atas", 2, 3, 100, 67},
		{"dibulatkan ke bawah", 1, 3, 100, 33},
		{"max score bukan 100", 3, 4, 50, 38},
		{"tanpa soal", 0, 0, 100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeScore(tt.correct, tt.total, tt.maxScore)
			if got != tt.want {
				t.Errorf("ComputeScore(%d, %d, %d) = %d, want %d",
					tt.correct, tt.total, tt.maxScore, got, tt.want)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		correct int
		total   int
		want    float64
	}{
		{3, 4, 75},
		{1, 3, 33.33},
		{0, 0, 0},
		{5, 5, 100},
	}
	for _, tt := range tests {
		got := Percent(tt.correct, tt.total)
		if got != tt.want {
			t.Errorf("Percent(%d, %d) = %v, want %v", tt.correct, tt.total, got, tt.want)
		}
	}
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		percent float64
		want    string
	}{
		{100, LevelGood},
		{90, LevelGood},
		{89.99, LevelAverage},
		{60, LevelAverage},
		{59.99, LevelWeak},
		{0, LevelWeak},
	}
	for _, tt := range tests {
		if got := LevelFor(tt.percent); got != tt.want {
			t.Errorf("LevelFor(%v) = %q, want %q", tt.percent, got, tt.want)
		}
	}
}
