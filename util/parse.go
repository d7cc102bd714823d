package util

import (
	"fmt"
	"strconv"
	"strings"
)

var sizeUnits = []struct {
	suffix     string
	multiplier int64
}{
	{"GB", 1 << 30},
	{"MB", 1 << 20},
	{"KB", 1 << 10},
	{"B", 1},
}

// ParseSize parses a human-readable size string (e.g. "10MB", "512KB", "64")
// into bytes. An empty string yields defaultBytes. Negative, fractional or
// overflowing sizes are errors.
func ParseSize(s string, defaultBytes int64) (int64, error) {
	raw := s
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return defaultBytes, nil
	}

	var multiplier int64 = 1
	for _, u := range sizeUnits {
		if strings.HasSuffix(s, u.suffix) {
			multiplier = u.multiplier
			s = strings.TrimSpace(s[:len(s)-len(u.suffix)])
			break
		}
	}

	val, err := strconv.ParseInt(s, 10, 64)
	if err != nil || val < 0 {
		return 0, fmt.Errorf("invalid size %q", raw)
	}
	if val > 0 && val > (1<<63-1)/multiplier {
		return 0, fmt.Errorf("size %q overflows", raw)
	}
	return val * multiplier, nil
}

// FormatSize renders bytes using the largest unit that divides it exactly.
func FormatSize(n int64) string {
	for _, u := range sizeUnits {
		if n != 0 && n%u.multiplier == 0 {
			return fmt.Sprintf("%d%s", n/u.multiplier, u.suffix)
		}
	}
	return fmt.Sprintf("%dB", n)
}
