package storage

import (
	"regexp"
	"time"
)

// timestampPattern gates which strings are treated as timestamps on the way
// out of a slot. Matching is structural: any string value at any depth that
// looks like an ISO-8601 date-time is revived, without per-field knowledge.
var timestampPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}`)

// timestampLayouts covers what the app itself writes (RFC 3339 with
// nanoseconds) plus common hand-edited or imported variants: naive local
// timestamps with or without fractional seconds.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// reviveTimestamps walks a decoded JSON tree and rewrites every string that
// matches timestampPattern to canonical RFC 3339 form, so the second decode
// into typed records lands them in time.Time fields regardless of how the
// source spelled them. Unparseable matches are left untouched.
func reviveTimestamps(v any) any {
	switch val := v.(type) {
	case string:
		if !timestampPattern.MatchString(val) {
			return v
		}
		for _, layout := range timestampLayouts {
			if ts, err := time.ParseInLocation(layout, val, time.Local); err == nil {
				return ts.Format(time.RFC3339Nano)
			}
		}
		return v
	case map[string]any:
		for k, elem := range val {
			val[k] = reviveTimestamps(elem)
		}
		return val
	case []any:
		for i, elem := range val {
			val[i] = reviveTimestamps(elem)
		}
		return val
	default:
		return v
	}
}
