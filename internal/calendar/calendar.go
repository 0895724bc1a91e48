package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const monthLayout = "2006-01"

var ErrInvalidMonth = errors.New("invalid month, expected YYYY-MM")

// Month identifies one payroll period.
type Month struct {
	Year  int
	Month time.Month
}

func NewMonth(year int, month time.Month) Month {
	return Month{Year: year, Month: month}
}

// ParseMonth accepts the YYYY-MM form used across the API.
func ParseMonth(v string) (Month, error) {
	t, err := time.Parse(monthLayout, strings.TrimSpace(v))
	if err != nil {
		return Month{}, fmt.Errorf("%w: %q", ErrInvalidMonth, v)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

func (m Month) IsZero() bool {
	return m.Year == 0 && m.Month == 0
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

func (m Month) Start() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

func (m Month) End() time.Time {
	return m.Start().AddDate(0, 1, -1)
}

// Days returns the number of calendar days in the month.
func (m Month) Days() int {
	return m.End().Day()
}

// WorkingDays counts the days of the month that are not Sunday and, when
// saturdayOff is set, not Saturday either.
func WorkingDays(m Month, saturdayOff bool) int {
	if m.IsZero() {
		return 0
	}

	working := 0
	for day := m.Start(); day.Month() == m.Month; day = day.AddDate(0, 0, 1) {
		if IsRestDay(day.Weekday(), saturdayOff) {
			continue
		}
		working++
	}
	return working
}

// IsRestDay reports whether a weekday is off under the weekend policy.
// Sunday is always off.
func IsRestDay(wd time.Weekday, saturdayOff bool) bool {
	return wd == time.Sunday || (saturdayOff && wd == time.Saturday)
}
