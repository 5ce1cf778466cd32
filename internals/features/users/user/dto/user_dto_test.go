package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

func TestBulkDeleteUsersRequestValidasi(t *testing.T) {
	v := validator.New()

	tests := []struct {
		name    string
		body    BulkDeleteUsersRequest
		wantErr bool
	}{
		{"satu id", BulkDeleteUsersRequest{IDs: []uuid.UUID{uuid.New()}}, false},
		{"banyak id", BulkDeleteUsersRequest{IDs: []uuid.UUID{uuid.New(), uuid.New()}}, false},
		{"ids kosong", BulkDeleteUsersRequest{IDs: []uuid.UUID{}}, true},
		{"ids nil", BulkDeleteUsersRequest{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(&tt.body)
			if (err != nil) != tt.wantErr {
				t.Errorf("Struct() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
