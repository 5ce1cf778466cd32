package helper

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		maxLen int
		want   string
	}{
		{"teks biasa", "Matematika Dasar", 100, "matematika-dasar"},
		{"diakritik", "Café Léçon", 100, "cafe-lecon"},
		{"simbol dikompres", "Tugas  #1 -- (revisi)", 100, "tugas-1-revisi"},
		{"dipotong maxLen", "abcdefghij", 5, "abcde"},
		{"kosong jadi fallback", "!!!", 100, "item"},
		{"maxLen nol pakai default", "judul", 0, "judul"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.in, tt.maxLen); got != tt.want {
				t.Errorf("Slugify(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
			}
		})
	}
}
