// Package utils holds small helpers shared by providers and the CLI:
// symbol normalisation and exchange time handling.
package utils

import (
	"sync"
	"time"
)

var (
	locMu    sync.Mutex
	locCache = map[string]*time.Location{}
)

// LoadLocation returns the named IANA zone. Unknown or empty names fall
// back to UTC so an odd exchange zone never fails a request.
func LoadLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}

	locMu.Lock()
	defer locMu.Unlock()
	if loc, ok := locCache[name]; ok {
		return loc
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		loc = time.UTC
	}
	locCache[name] = loc
	return loc
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// UnixIn converts a Unix timestamp in seconds to a time in loc.
func UnixIn(sec int64, loc *time.Location) time.Time {
	return time.Unix(sec, 0).In(loc)
}
