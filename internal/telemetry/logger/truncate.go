package logger

import (
	"fmt"
	"log/slog"
)

// DefaultMaxValueLen is the default clip length for string attributes.
const DefaultMaxValueLen = 256

// truncateAttr clips string values longer than maxLen bytes and recurses
// into groups. maxLen < 0 disables clipping.
func truncateAttr(a slog.Attr, maxLen int) slog.Attr {
	if maxLen < 0 {
		return a
	}

	switch a.Value.Kind() {
	case slog.KindString:
		return slog.String(a.Key, Truncate(a.Value.String(), maxLen))
	case slog.KindGroup:
		attrs := a.Value.Group()
		out := make([]slog.Attr, len(attrs))
		for i, attr := range attrs {
			out[i] = truncateAttr(attr, maxLen)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(out...)}
	}
	return a
}

// Truncate shortens s to maxLen bytes and notes how much was dropped.
func Truncate(s string, maxLen int) string {
	if maxLen < 0 || len(s) <= maxLen {
		return s
	}
	return fmt.Sprintf("%s...(%d more bytes)", s[:maxLen], len(s)-maxLen)
}
