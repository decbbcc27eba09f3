package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Slugify lowercases a region name and collapses runs of non-alphanumeric
// characters into single dashes.
func Slugify(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// BuildShareableID produces "<slug>-<D>d-<epoch-millis>-<suffix>". The random
// suffix keeps two requests for the same region and day count from colliding
// within one millisecond.
func BuildShareableID(province string, days int) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s-%dd-%d-%s", Slugify(province), days, time.Now().UnixMilli(), suffix)
}
