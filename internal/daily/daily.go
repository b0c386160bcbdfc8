// Package daily derives the hidden words of a date's simulated puzzle.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"strconv"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % answersLen.
func WordIndex(date time.Time, salt string, answersLen int) int {
	if answersLen <= 0 {
		return 0
	}
	dk := DateKey(date)
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(dk))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64 for modulus distribution
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(answersLen))
}

// Answers picks boards distinct words from list for date.
// Board i salts the HMAC with its index; collisions step to the next free word.
func Answers(date time.Time, salt string, list []string, boards int) ([]string, error) {
	if boards > len(list) {
		return nil, fmt.Errorf("daily: %d boards but only %d words", boards, len(list))
	}
	used := make(map[int]bool, boards)
	out := make([]string, 0, boards)
	for b := 0; b < boards; b++ {
		idx := WordIndex(date, salt+"#"+strconv.Itoa(b), len(list))
		for used[idx] {
			idx = (idx + 1) % len(list)
		}
		used[idx] = true
		out = append(out, list[idx])
	}
	return out, nil
}
