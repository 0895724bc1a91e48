package payroll

import (
	"fmt"
	"strings"

	"github.com/connectwithhassan/all-in-one/internal/calendar"
	payrollerrors "github.com/connectwithhassan/all-in-one/internal/payroll/errors"

	"github.com/shopspring/decimal"
)

// Grace allowances applied before absences and lateness reduce the paid days.
const (
	AllowedAbsences = 2
	AllowedLates    = 3
)

// Policy holds the operator-supplied parameters of one generation run.
type Policy struct {
	Month                calendar.Month
	SaturdayOffEmployees map[string]struct{}
	OfficialLeaves       int
	AllowedHoursPerDay   decimal.Decimal
}

func NewPolicy(month calendar.Month, saturdayOff []string, officialLeaves int, allowedHoursPerDay decimal.Decimal) Policy {
	set := make(map[string]struct{}, len(saturdayOff))
	for _, code := range saturdayOff {
		code = strings.TrimSpace(code)
		if code != "" {
			set[code] = struct{}{}
		}
	}
	return Policy{
		Month:                month,
		SaturdayOffEmployees: set,
		OfficialLeaves:       officialLeaves,
		AllowedHoursPerDay:   allowedHoursPerDay,
	}
}

func (p Policy) IsSaturdayOff(employeeCode string) bool {
	_, ok := p.SaturdayOffEmployees[strings.TrimSpace(employeeCode)]
	return ok
}

// Validate is checked once per run, before any employee is computed.
func (p Policy) Validate() error {
	if p.Month.IsZero() || p.Month.Month < 1 || p.Month.Month > 12 {
		return payrollerrors.ErrInvalidMonth
	}
	if p.OfficialLeaves < 0 {
		return payrollerrors.ErrInvalidOfficialLeaves
	}
	if !p.AllowedHoursPerDay.IsPositive() {
		return payrollerrors.ErrInvalidAllowedHours
	}
	return nil
}

// WagePolicy is the per-employee input read from the employee directory.
type WagePolicy struct {
	EmployeeCode string
	FullName     string
	SalaryCap    *decimal.Decimal
	InTime       *string
	OutTime      *string
}

// MissingFields lists the required fields that are absent, in a fixed order.
func (w WagePolicy) MissingFields() []string {
	var missing []string
	if w.SalaryCap == nil || w.SalaryCap.IsNegative() {
		missing = append(missing, "Salary Cap")
	}
	if w.InTime == nil || strings.TrimSpace(*w.InTime) == "" {
		missing = append(missing, "In Time")
	}
	if w.OutTime == nil || strings.TrimSpace(*w.OutTime) == "" {
		missing = append(missing, "Out Time")
	}
	return missing
}

// MissingFieldsError reports why an employee could not be computed.
type MissingFieldsError struct {
	EmployeeCode string
	Fields       []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("employee %s: %s", e.EmployeeCode, e.Reason())
}

// Reason renders the fields as "Salary Cap missing, In Time missing".
func (e *MissingFieldsError) Reason() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f + " missing"
	}
	return strings.Join(parts, ", ")
}
