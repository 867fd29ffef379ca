// apps/solver/internal/game/daily.go
//
// Deterministic daily answers: the same date and salt always select the
// same word from a list, so simulated runs can be reproduced.

package game

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// DailyIndex returns HMAC(salt, YYYY-MM-DD) mod n, or 0 when n <= 0.
func DailyIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	return int(binary.BigEndian.Uint64(sum[:8]) % uint64(n))
}

// DailyAnswer picks the answer for date from list.
func DailyAnswer(list []string, date time.Time, salt string) (string, bool) {
	if len(list) == 0 {
		return "", false
	}
	return list[DailyIndex(date, salt, len(list))], true
}
