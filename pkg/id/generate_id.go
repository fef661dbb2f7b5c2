package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// NewID32 returns exactly 32 hex characters (no separators/prefixes).
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// NewTimeSuffixID returns "<PREFIX>-<last four digits of unix millis>",
// e.g. "LOAN-4821". Collisions are possible under load; callers that
// need stable IDs pass their own instead.
func NewTimeSuffixID(prefix string) string {
	return fmt.Sprintf("%s-%04d", prefix, time.Now().UnixMilli()%10000)
}
