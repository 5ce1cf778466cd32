// file: internals/helpers/dbtime/time_helper.go
package dbtime

import (
	"os"
	"strings"
	"sync"
	"time"
)

// Timezone pusat kursus, dipakai untuk jendela absensi & tanggal hadir.
// Override lewat env TIME_ZONE, fallback Asia/Tashkent.
const defaultTimezone = "Asia/Tashkent"

var (
	locOnce sync.Once
	loc     *time.Location
)

func Location() *time.Location {
	locOnce.Do(func() {
		tz := strings.TrimSpace(os.Getenv("TIME_ZONE"))
		if tz == "" {
			tz = defaultTimezone
		}
		l, err := time.LoadLocation(tz)
		if err != nil {
			l = time.UTC
		}
		loc = l
	})
	return loc
}

// NowLocal: "sekarang" di timezone pusat kursus.
func NowLocal() time.Time {
	return time.Now().In(Location())
}

// ToLocal mengonversi waktu (biasanya dari DB = UTC) ke timezone pusat.
// Kalau t.IsZero() → dikembalikan apa adanya.
func ToLocal(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.In(Location())
}

// Versi pointer, biar gampang dipakai di DTO yg pakai *time.Time
func ToLocalPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := ToLocal(*t)
	return &v
}
