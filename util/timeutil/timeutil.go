/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package timeutil converts between JWT NumericDate claims and ISO-8601 date strings.
package timeutil

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	josejwt "github.com/go-jose/go-jose/v3/jwt"
	utiltime "github.com/trustbloc/did-go/doc/util/time"
)

// ISO8601Milli is the layout of derived dates: UTC with millisecond precision.
const ISO8601Milli = "2006-01-02T15:04:05.000Z07:00"

// Fallback layouts, interpreted as UTC.
var fallbackLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

// maxMillis bounds the instants representable as ISO-8601 dates (±8.64e15 ms around the epoch).
const maxMillis = 8.64e15

type float64er interface {
	Float64() (float64, error)
}

// Seconds reads a numeric claim value. Accepted are Go numeric kinds, json.Number and numeric strings.
func Seconds(v interface{}) (float64, error) {
	var (
		f   float64
		err error
	)

	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case josejwt.NumericDate:
		f = float64(n)
	case *josejwt.NumericDate:
		if n == nil {
			return 0, fmt.Errorf("nil numeric date")
		}

		f = float64(*n)
	case float64er:
		f, err = n.Float64()
	case string:
		f, err = strconv.ParseFloat(strings.TrimSpace(n), 64)
	default:
		return 0, fmt.Errorf("numeric date expected but got %T", v)
	}

	if err != nil {
		return 0, fmt.Errorf("parse numeric date: %w", err)
	}

	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f*1000) > maxMillis {
		return 0, fmt.Errorf("numeric date %v is out of range", v)
	}

	return f, nil
}

// FormatNumericDate converts seconds since the epoch into an ISO-8601 date with millisecond precision.
// Fractions of a millisecond are truncated. Years outside 0000-9999 are written as +YYYYYY or -YYYYYY.
func FormatNumericDate(v interface{}) (string, error) {
	secs, err := Seconds(v)
	if err != nil {
		return "", err
	}

	var t time.Time

	if secs == math.Trunc(secs) {
		nd := josejwt.NumericDate(int64(secs))
		t = nd.Time()
	} else {
		t = time.UnixMilli(int64(secs * 1000))
	}

	return formatISO8601(t.UTC()), nil
}

// formatISO8601 formats t with the six-digit signed year of ISO 8601 extended years when
// the year does not fit in four digits.
func formatISO8601(t time.Time) string {
	year := t.Year()
	if year >= 0 && year <= 9999 {
		return t.Format(ISO8601Milli)
	}

	sign := "+"
	if year < 0 {
		sign, year = "-", -year
	}

	return fmt.Sprintf("%s%06d%s", sign, year, t.Format("-01-02T15:04:05.000Z07:00"))
}

// ParseDate parses an ISO-8601 date. RFC 3339 with or without time zone and a date-only form are accepted.
func ParseDate(s string) (time.Time, error) {
	tw, err := utiltime.ParseTimeWrapper(s)
	if err == nil {
		return tw.Time, nil
	}

	for _, layout := range fallbackLayouts {
		if t, e := time.Parse(layout, s); e == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
}

// ToNumericDate parses an ISO-8601 date and returns it as whole seconds since the epoch, rounded down.
func ToNumericDate(s string) (int64, error) {
	t, err := ParseDate(s)
	if err != nil {
		return 0, err
	}

	nd := josejwt.NewNumericDate(t)
	if nd == nil {
		// zero time
		return t.Unix(), nil
	}

	return int64(*nd), nil
}
