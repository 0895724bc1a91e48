package payroll

import (
	"errors"

	"github.com/connectwithhassan/all-in-one/internal/attendance"
	"github.com/connectwithhassan/all-in-one/internal/calendar"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Engine turns an attendance table and a policy into payroll records. It
// holds no state between employees.
type Engine struct {
	classifier attendance.Classifier
}

func NewEngine(classifier attendance.Classifier) Engine {
	return Engine{classifier: classifier}
}

type SkippedEmployee struct {
	EmployeeCode string
	FullName     string
	Reason       string
}

type GenerationWarning struct {
	EmployeeCode string
	Message      string
}

// Manifest is the outcome of one generation run.
type Manifest struct {
	Generated []Payroll
	Skipped   []SkippedEmployee
	Warnings  []GenerationWarning
}

const (
	warnSectionNotFound = "attendance section not found, computed with zero hours"
	warnUnreadableHours = "total hours unreadable, computed with zero hours"
)

// GenerateAll computes every employee in wages order. Employees missing a
// required wage field are skipped with a reason and the run continues.
func (e Engine) GenerateAll(table attendance.Table, policy Policy, wages []WagePolicy) (Manifest, error) {
	if err := policy.Validate(); err != nil {
		return Manifest{}, err
	}

	m := Manifest{
		Generated: []Payroll{},
		Skipped:   []SkippedEmployee{},
		Warnings:  []GenerationWarning{},
	}
	for _, wage := range wages {
		record, warnings, err := e.calculate(table.Section(wage.EmployeeCode), policy, wage)
		if err != nil {
			reason := err.Error()
			var mf *MissingFieldsError
			if errors.As(err, &mf) {
				reason = mf.Reason()
			}
			m.Skipped = append(m.Skipped, SkippedEmployee{
				EmployeeCode: wage.EmployeeCode,
				FullName:     wage.FullName,
				Reason:       reason,
			})
			continue
		}
		m.Generated = append(m.Generated, record)
		m.Warnings = append(m.Warnings, warnings...)
	}
	return m, nil
}

// GenerateOne computes a single employee through the same path as GenerateAll.
func (e Engine) GenerateOne(table attendance.Table, policy Policy, wage WagePolicy) (Manifest, error) {
	return e.GenerateAll(table, policy, []WagePolicy{wage})
}

// Calculate computes one employee from an already located section.
func (e Engine) Calculate(section attendance.Section, policy Policy, wage WagePolicy) (*Payroll, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	record, _, err := e.calculate(section, policy, wage)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (e Engine) calculate(section attendance.Section, policy Policy, wage WagePolicy) (Payroll, []GenerationWarning, error) {
	if missing := wage.MissingFields(); len(missing) > 0 {
		return Payroll{}, nil, &MissingFieldsError{EmployeeCode: wage.EmployeeCode, Fields: missing}
	}

	var warnings []GenerationWarning
	if !section.Found {
		warnings = append(warnings, GenerationWarning{EmployeeCode: wage.EmployeeCode, Message: warnSectionNotFound})
	}
	rawHours, err := attendance.ParseHours(section.TotalHours)
	if err != nil {
		rawHours = decimal.Zero
		warnings = append(warnings, GenerationWarning{EmployeeCode: wage.EmployeeCode, Message: warnUnreadableHours})
	}

	saturdayOff := policy.IsSaturdayOff(wage.EmployeeCode)
	cls := e.classifier.Classify(daysInMonth(section.Days, policy.Month), saturdayOff)
	officialDays := calendar.WorkingDays(policy.Month, saturdayOff)
	salaryCap := *wage.SalaryCap

	fig := Compute(Inputs{
		RawHours:            rawHours,
		OfficialWorkingDays: officialDays,
		AllowedHoursPerDay:  policy.AllowedHoursPerDay,
		OfficialLeaves:      policy.OfficialLeaves,
		LateCount:           cls.LateCount(),
		AbsentCount:         cls.AbsentCount(),
		SalaryCap:           salaryCap,
	})

	record := Payroll{
		EmployeeCode:        wage.EmployeeCode,
		FullName:            wage.FullName,
		Month:               policy.Month.String(),
		SectionFound:        section.Found,
		AllowedHoursPerDay:  policy.AllowedHoursPerDay.Round(2),
		OfficialWorkingDays: officialDays,
		OfficialLeaves:      policy.OfficialLeaves,
		LateCount:           cls.LateCount(),
		EarlyCount:          cls.EarlyCount(),
		AbsentCount:         cls.AbsentCount(),
		SalaryCap:           salaryCap.Round(2),
		LateDates:           datatypes.NewJSONSlice(cls.LateDates),
		EarlyDates:          datatypes.NewJSONSlice(cls.EarlyDates),
		AbsentDates:         datatypes.NewJSONSlice(cls.AbsentDates),
		TableSectionData:    datatypes.NewJSONType(section.Rows),
	}
	applyFigures(&record, fig)
	return record, warnings, nil
}

func applyFigures(p *Payroll, fig Figures) {
	p.TotalWorkingHours = fig.TotalWorkingHours
	p.NotAllowedHours = fig.NotAllowedHours
	p.EffectiveAbsentCount = fig.EffectiveAbsentCount
	p.AdjustedWorkingDays = fig.AdjustedWorkingDays
	p.EffectiveAllowanceDays = fig.EffectiveAllowanceDays
	p.HourlyWage = fig.HourlyWage
	p.DailyAllowanceRate = fig.DailyAllowanceRate
	p.DailyAllowanceTotal = fig.DailyAllowanceTotal
	p.HourlySalary = fig.HourlySalary
	p.GrossSalary = fig.GrossSalary
}

// daysInMonth keeps rows dated inside month. Rows whose date could not be
// parsed are kept and classified by their weekday label.
func daysInMonth(days []attendance.DayRecord, month calendar.Month) []attendance.DayRecord {
	out := make([]attendance.DayRecord, 0, len(days))
	for _, d := range days {
		if !d.Date.IsZero() && (d.Date.Year() != month.Year || d.Date.Month() != month.Month) {
			continue
		}
		out = append(out, d)
	}
	return out
}
