package helper

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
)

// Kode error PostgreSQL yang dipakai untuk deteksi race pada constraint.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// pgSQLErr: dipenuhi oleh pgconn.PgError maupun pq.Error tanpa hard import driver
type pgSQLErr interface {
	SQLState() string
	Error() string
}

func pgState(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	var se pgSQLErr
	if errors.As(err, &se) {
		return se.SQLState()
	}
	return ""
}

// IsUniqueViolation: true kalau err berasal dari pelanggaran unique constraint.
// Dipakai untuk menutup race check-then-create (double submit → 409).
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if pgState(err) == pgUniqueViolation {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, pgUniqueViolation)
}

func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	return pgState(err) == pgForeignKeyViolation
}

// WritePGError: mapping error Postgres → response JSON standar.
func WritePGError(c *fiber.Ctx, err error) error {
	switch {
	case IsUniqueViolation(err):
		return JsonError(c, fiber.StatusConflict, "Data duplikat (unique violation).")
	case IsForeignKeyViolation(err):
		return JsonError(c, fiber.StatusBadRequest, "Referensi tidak ditemukan (FK violation).")
	default:
		return JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
}
