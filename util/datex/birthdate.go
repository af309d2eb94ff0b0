// Package datex normalizes the partial dates authors are stored with.
package datex

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/stefa-ie/buecheria-library-app/util/apperr"
)

var (
	reYear      = regexp.MustCompile(`^\d{4}$`)
	reMonthYear = regexp.MustCompile(`^(\d{2})-(\d{4})$`)
	reDayMonth  = regexp.MustCompile(`^(\d{2})-(\d{2})-(\d{4})$`)
	reISODate   = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
)

// date-times are accepted whole or not at all
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// NormalizeBirthDate canonicalizes s to DD-MM-YYYY, MM-YYYY or YYYY.
// Accepted inputs are a bare year, MM-YYYY, DD-MM-YYYY, an ISO date and an
// ISO date-time. Anything else is a validation error.
func NormalizeBirthDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	switch {
	case reYear.MatchString(s):
		return s, nil
	case reMonthYear.MatchString(s):
		m := reMonthYear.FindStringSubmatch(s)
		if !validMonth(m[1]) {
			return "", invalid(s)
		}
		return s, nil
	case reDayMonth.MatchString(s):
		m := reDayMonth.FindStringSubmatch(s)
		return canonical(s, m[3], m[2], m[1])
	case reISODate.MatchString(s):
		m := reISODate.FindStringSubmatch(s)
		return canonical(s, m[1], m[2], m[3])
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("02-01-2006"), nil
		}
	}
	return "", invalid(s)
}

func canonical(raw, year, month, day string) (string, error) {
	t, err := time.Parse("2006-01-02", year+"-"+month+"-"+day)
	if err != nil {
		return "", invalid(raw)
	}
	return t.Format("02-01-2006"), nil
}

func validMonth(m string) bool {
	_, err := time.Parse("01", m)
	return err == nil
}

func invalid(s string) error {
	return apperr.New(apperr.ErrValidation,
		fmt.Sprintf("invalid birth date %q: use YYYY, MM-YYYY, DD-MM-YYYY or YYYY-MM-DD", s))
}
