package lkit

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseTimestamp parses the three literal forms accepted inside a quoted
// timestamp token:
//
//   - "2006-01-02 15:04:05[.ffffff]" — a full date and time, in the host's
//     local zone, converted to microseconds since the Unix epoch.
//   - "2006-01-02" — a date alone, taken as local midnight.
//   - "15:04:05[.ffffff]" — a time alone, with no associated date. This
//     returns microseconds elapsed *since midnight*, not a true epoch
//     instant — a documented quirk inherited unchanged rather than
//     "fixed" by inventing a date (see the parser's open question on
//     time-only literals).
func ParseTimestamp(raw string) (uint64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("lkit: empty timestamp literal")
	}

	if looksLikeDate(raw) {
		if sp := strings.IndexByte(raw, ' '); sp >= 0 {
			return parseDateTime(raw[:sp], raw[sp+1:])
		}
		return parseDateOnly(raw)
	}
	return parseTimeOnly(raw)
}

// looksLikeDate reports whether raw opens with a YYYY-MM-DD date, as
// opposed to a bare time-of-day.
func looksLikeDate(raw string) bool {
	return len(raw) >= 10 && raw[4] == '-' && raw[7] == '-'
}

func parseDateOnly(date string) (uint64, error) {
	t, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return 0, fmt.Errorf("lkit: invalid date %q: %w", date, err)
	}
	return uint64(t.UnixMicro()), nil
}

func parseDateTime(date, clock string) (uint64, error) {
	whole, fracMicros, err := splitFraction(clock)
	if err != nil {
		return 0, err
	}
	t, err := time.ParseInLocation("2006-01-02 15:04:05", date+" "+whole, time.Local)
	if err != nil {
		return 0, fmt.Errorf("lkit: invalid datetime %q: %w", date+" "+clock, err)
	}
	return uint64(t.UnixMicro()) + uint64(fracMicros), nil
}

// parseTimeOnly returns microseconds elapsed since midnight.
func parseTimeOnly(clock string) (uint64, error) {
	whole, fracMicros, err := splitFraction(clock)
	if err != nil {
		return 0, err
	}
	parts := strings.Split(whole, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("lkit: invalid time %q", clock)
	}
	h, errH := strconv.Atoi(parts[0])
	m, errM := strconv.Atoi(parts[1])
	s, errS := strconv.Atoi(parts[2])
	if errH != nil || errM != nil || errS != nil {
		return 0, fmt.Errorf("lkit: invalid time %q", clock)
	}
	total := (h*60+m)*60 + s
	return uint64(total)*1_000_000 + uint64(fracMicros), nil
}

// splitFraction separates "HH:MM:SS" from an optional ".ffffff" suffix,
// returning the fraction as whole microseconds, right-padded or truncated
// to six digits.
func splitFraction(clock string) (whole string, micros int, err error) {
	dot := strings.IndexByte(clock, '.')
	if dot < 0 {
		return clock, 0, nil
	}
	frac := clock[dot+1:]
	for len(frac) < 6 {
		frac += "0"
	}
	frac = frac[:6]
	n, convErr := strconv.Atoi(frac)
	if convErr != nil {
		return "", 0, fmt.Errorf("lkit: invalid fractional seconds %q: %w", clock, convErr)
	}
	return clock[:dot], n, nil
}
