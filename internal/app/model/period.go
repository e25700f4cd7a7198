package model

import (
	"errors"
	"fmt"
	"time"
)

// Period 보고 기간 (YYMM 형식, 예: "2511" = 2025년 11월)
//
// The upstream payload contract fixes the format to exactly four digits, so
// year and month are read by fixed-offset substring, not calendar parsing.
type Period string

var ErrInvalidPeriod = errors.New("잘못된 기간 형식입니다 (YYMM)")

// ParsePeriod validates a YYMM string.
func ParsePeriod(s string) (Period, error) {
	if len(s) != 4 {
		return "", ErrInvalidPeriod
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return "", ErrInvalidPeriod
		}
	}
	p := Period(s)
	if m := p.Month(); m < 1 || m > 12 {
		return "", ErrInvalidPeriod
	}
	return p, nil
}

// CurrentPeriod returns the period for the given time.
func CurrentPeriod(t time.Time) Period {
	return Period(fmt.Sprintf("%02d%02d", t.Year()%100, int(t.Month())))
}

// Year returns the 2-digit year as an int (25 for "2511").
func (p Period) Year() int {
	return int(p[0]-'0')*10 + int(p[1]-'0')
}

// Month returns the month (1-12).
func (p Period) Month() int {
	return int(p[2]-'0')*10 + int(p[3]-'0')
}

// PrevYear returns the same month one year earlier.
func (p Period) PrevYear() Period {
	y := p.Year() - 1
	if y < 0 {
		y = 99
	}
	return Period(fmt.Sprintf("%02d%02d", y, p.Month()))
}

// DaysInMonth returns the day count used for daily efficiency figures.
// February is always treated as 29 days; the upstream pipeline computes its
// daily figures the same way, and diverging here would skew the YOY.
func (p Period) DaysInMonth() int {
	switch p.Month() {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		return 29
	default:
		return 30
	}
}

func (p Period) String() string {
	return string(p)
}
