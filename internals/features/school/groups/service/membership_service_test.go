package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestFenceVisible(t *testing.T) {
	joined := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	fence := Fence{GroupID: uuid.New(), JoinedAt: joined}

	tests := []struct {
		name      string
		createdAt time.Time
		want      bool
	}{
		{"dibuat sebelum join", joined.Add(-time.Hour), false},
		{"dibuat tepat saat join", joined, true},
		{"dibuat setelah join", joined.Add(time.Hour), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fence.Visible(tt.createdAt); got != tt.want {
				t.Errorf("Visible(%v) = %v, want %v", tt.createdAt, got, tt.want)
			}
		})
	}
}

func TestFenceFor(t *testing.T) {
	g1 := uuid.New()
	g2 := uuid.New()
	fences := []Fence{
		{GroupID: g1, JoinedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
		{GroupID: g2, JoinedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)},
	}

	f, ok := FenceFor(fences, g2)
	if !ok {
		t.Fatal("anggota grup tidak ditemukan")
	}
	if f.GroupID != g2 {
		t.Errorf("GroupID = %v, want %v", f.GroupID, g2)
	}

	if _, ok := FenceFor(fences, uuid.New()); ok {
		t.Error("grup asing tidak boleh ketemu")
	}
}

func TestGroupIDs(t *testing.T) {
	g1 := uuid.New()
	g2 := uuid.New()
	ids := GroupIDs([]Fence{{GroupID: g1}, {GroupID: g2}})
	if len(ids) != 2 || ids[0] != g1 || ids[1] != g2 {
		t.Errorf("GroupIDs = %v, want [%v %v]", ids, g1, g2)
	}
	if got := GroupIDs(nil); len(got) != 0 {
		t.Errorf("GroupIDs(nil) = %v, want kosong", got)
	}
}
