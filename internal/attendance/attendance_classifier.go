package attendance

import "github.com/connectwithhassan/all-in-one/internal/calendar"

// Shift boundaries. Arriving after LateAfter is late, leaving before
// EarlyBefore is early.
var (
	StandardCheckIn  = NewClock(9, 0)
	LateAfter        = NewClock(9, 30)
	StandardCheckOut = NewClock(18, 0)
	EarlyBefore      = NewClock(17, 30)
)

// SinglePunchRule decides how a day with exactly one punch is counted.
type SinglePunchRule int

const (
	// SinglePunchIgnored counts the day as neither late, early nor absent.
	SinglePunchIgnored SinglePunchRule = iota
	// SinglePunchAbsent counts the day as absent.
	SinglePunchAbsent
)

type Classification struct {
	LateDates   []string
	EarlyDates  []string
	AbsentDates []string
}

func (c Classification) LateCount() int   { return len(c.LateDates) }
func (c Classification) EarlyCount() int  { return len(c.EarlyDates) }
func (c Classification) AbsentCount() int { return len(c.AbsentDates) }

type Classifier struct {
	SinglePunch SinglePunchRule
}

func NewClassifier() Classifier {
	return Classifier{SinglePunch: SinglePunchIgnored}
}

// Classify buckets the dated rows of a section. Sundays are skipped, and so
// are Saturdays for Saturday-off employees. Late and early are independent,
// so one day may appear in both lists.
func (c Classifier) Classify(days []DayRecord, saturdayOff bool) Classification {
	out := Classification{
		LateDates:   []string{},
		EarlyDates:  []string{},
		AbsentDates: []string{},
	}

	for _, day := range days {
		if calendar.IsRestDay(day.Weekday(), saturdayOff) {
			continue
		}

		switch {
		case day.CheckIn == nil && day.CheckOut == nil:
			out.AbsentDates = append(out.AbsentDates, day.DateToken)
		case day.CheckIn != nil && day.CheckOut != nil:
			if *day.CheckIn > LateAfter {
				out.LateDates = append(out.LateDates, day.DateToken)
			}
			if *day.CheckOut < EarlyBefore {
				out.EarlyDates = append(out.EarlyDates, day.DateToken)
			}
		default:
			if c.SinglePunch == SinglePunchAbsent {
				out.AbsentDates = append(out.AbsentDates, day.DateToken)
			}
		}
	}
	return out
}
