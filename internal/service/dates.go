package service

import (
	"errors"
	"time"
)

// ErrInvalidDate is returned when a date field is neither 2006-01-02
// nor RFC 3339.
var ErrInvalidDate = errors.New("invalid date format")

// parseDate accepts the two client date shapes: a bare calendar date or
// a full RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidDate
}

// parseDatePtr parses an optional date field. Nil stays nil.
func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := parseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
