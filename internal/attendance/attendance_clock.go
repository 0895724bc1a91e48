package attendance

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidHours = errors.New("invalid hours value")

// Clock is a time of day in minutes past midnight.
type Clock int

func NewClock(hour, minute int) Clock {
	return Clock(hour*60 + minute)
}

// ParseClock reads "H:MM", "HH:MM" or "HH:MM:SS". Seconds are ignored.
func ParseClock(v string) (Clock, bool) {
	parts := strings.Split(strings.TrimSpace(v), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return NewClock(h, m), true
}

func (c Clock) Hour() int   { return int(c) / 60 }
func (c Clock) Minute() int { return int(c) % 60 }

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// ParseHours converts an "H:MM" duration into decimal hours (H + MM/60).
// Blank input is zero hours. Hours may exceed 24.
func ParseHours(v string) (decimal.Decimal, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return decimal.Zero, nil
	}

	parts := strings.Split(v, ":")
	if len(parts) > 3 {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidHours, v)
	}

	h, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || h < 0 {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidHours, v)
	}
	hours := decimal.NewFromInt(int64(h))
	if len(parts) == 1 {
		return hours, nil
	}

	m, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || m < 0 || m > 59 {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidHours, v)
	}
	return hours.Add(decimal.NewFromInt(int64(m)).Div(decimal.NewFromInt(60))), nil
}
