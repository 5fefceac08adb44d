package timezone

import (
	"errors"
	"fmt"
	"time"
)

// BaseZone is the zone all timestamps are stored in.
const BaseZone = "Asia/Kolkata"

// OutputLayout is the wire format for converted timestamps.
const OutputLayout = "2006-01-02 15:04:05 MST"

var (
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	ErrUnknownTimezone  = errors.New("unknown timezone")
)

// naiveLayouts are accepted for stored values without a zone qualifier,
// which are interpreted as base-zone local time.
var naiveLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// LoadZone resolves a zone identifier, wrapping failures in ErrUnknownTimezone
// so callers can classify them without inspecting the tzdata error.
func LoadZone(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTimezone, name)
	}
	return loc, nil
}

// Convert parses a stored base-zone timestamp and formats it in targetZone.
// Zone-qualified values are reinterpreted into the base zone first; naive
// values are assumed to already be base-zone local time.
func Convert(stored, targetZone string) (string, error) {
	target, err := LoadZone(targetZone)
	if err != nil {
		return "", err
	}
	return ConvertIn(stored, target)
}

// ConvertIn is Convert with an already-resolved target location, for callers
// that validate the zone once and convert many rows.
func ConvertIn(stored string, target *time.Location) (string, error) {
	base, err := LoadZone(BaseZone)
	if err != nil {
		return "", err
	}

	t, err := parse(stored, base)
	if err != nil {
		return "", err
	}

	return t.UTC().In(target).Format(OutputLayout), nil
}

// NowBase returns the current time as an RFC3339 string in the base zone,
// the format every booked_at stamp is written in.
func NowBase() string {
	base, err := LoadZone(BaseZone)
	if err != nil {
		// BaseZone is a constant; a missing tzdata entry is unrecoverable.
		panic(err)
	}
	return time.Now().In(base).Format(time.RFC3339)
}

func parse(stored string, base *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, stored); err == nil {
		return t.In(base), nil
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, stored, base); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, stored)
}
