package attendance_test

import (
	"testing"

	"github.com/connectwithhassan/all-in-one/internal/attendance"

	"github.com/stretchr/testify/assert"
)

func day(date, weekday string, in, out *attendance.Clock) attendance.DayRecord {
	return attendance.DayRecord{DateToken: date, WeekdayLabel: weekday, CheckIn: in, CheckOut: out}
}

func at(h, m int) *attendance.Clock {
	c := attendance.NewClock(h, m)
	return &c
}

func TestClassifier_Classify(t *testing.T) {
	classifier := attendance.NewClassifier()

	t.Run("late but not early", func(t *testing.T) {
		got := classifier.Classify([]attendance.DayRecord{day("01/02/2024", "Tue.", at(9, 31), at(18, 0))}, false)

		assert.Equal(t, []string{"01/02/2024"}, got.LateDates)
		assert.Empty(t, got.EarlyDates)
		assert.Empty(t, got.AbsentDates)
	})

	t.Run("early but not late", func(t *testing.T) {
		got := classifier.Classify([]attendance.DayRecord{day("01/02/2024", "Tue.", at(9, 0), at(17, 29))}, false)

		assert.Empty(t, got.LateDates)
		assert.Equal(t, []string{"01/02/2024"}, got.EarlyDates)
	})

	t.Run("cutoffs are exclusive", func(t *testing.T) {
		got := classifier.Classify([]attendance.DayRecord{day("01/02/2024", "Tue.", at(9, 30), at(17, 30))}, false)

		assert.Equal(t, 0, got.LateCount())
		assert.Equal(t, 0, got.EarlyCount())
	})

	t.Run("late and early on the same day", func(t *testing.T) {
		got := classifier.Classify([]attendance.DayRecord{day("01/03/2024", "Wed.", at(10, 0), at(16, 0))}, false)

		assert.Equal(t, 1, got.LateCount())
		assert.Equal(t, 1, got.EarlyCount())
	})

	t.Run("both punches blank is absent", func(t *testing.T) {
		got := classifier.Classify([]attendance.DayRecord{day("01/04/2024", "Thu.", nil, nil)}, false)

		assert.Equal(t, []string{"01/04/2024"}, got.AbsentDates)
	})

	t.Run("sunday excluded regardless of punches", func(t *testing.T) {
		got := classifier.Classify([]attendance.DayRecord{
			day("01/07/2024", "Sun.", nil, nil),
			day("01/14/2024", "Sun.", at(11, 0), at(12, 0)),
		}, false)

		assert.Equal(t, 0, got.LateCount())
		assert.Equal(t, 0, got.EarlyCount())
		assert.Equal(t, 0, got.AbsentCount())
	})

	t.Run("saturday depends on exemption", func(t *testing.T) {
		days := []attendance.DayRecord{day("01/06/2024", "Sat.", nil, nil)}

		assert.Equal(t, 1, classifier.Classify(days, false).AbsentCount())
		assert.Equal(t, 0, classifier.Classify(days, true).AbsentCount())
	})

	t.Run("single punch ignored by default", func(t *testing.T) {
		got := classifier.Classify([]attendance.DayRecord{
			day("01/02/2024", "Tue.", at(10, 0), nil),
			day("01/03/2024", "Wed.", nil, at(16, 0)),
		}, false)

		assert.Equal(t, 0, got.LateCount())
		assert.Equal(t, 0, got.EarlyCount())
		assert.Equal(t, 0, got.AbsentCount())
	})

	t.Run("single punch counted absent when configured", func(t *testing.T) {
		strict := attendance.Classifier{SinglePunch: attendance.SinglePunchAbsent}
		got := strict.Classify([]attendance.DayRecord{day("01/02/2024", "Tue.", at(10, 0), nil)}, false)

		assert.Equal(t, []string{"01/02/2024"}, got.AbsentDates)
		assert.Equal(t, 0, got.LateCount())
	})

	t.Run("counts never exceed classified days", func(t *testing.T) {
		days := []attendance.DayRecord{
			day("01/01/2024", "Mon.", at(9, 45), at(17, 0)),
			day("01/02/2024", "Tue.", nil, nil),
			day("01/03/2024", "Wed.", at(9, 0), at(18, 0)),
		}
		got := classifier.Classify(days, false)

		assert.LessOrEqual(t, got.LateCount(), len(days))
		assert.LessOrEqual(t, got.EarlyCount(), len(days))
		assert.LessOrEqual(t, got.AbsentCount(), len(days))
	})
}
