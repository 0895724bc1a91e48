package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Payroll is the computed salary record of one employee for one month.
type Payroll struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_payroll_employee_month"`
	EmployeeCode string     `gorm:"type:varchar(64);not null;uniqueIndex:uq_payroll_employee_month"`
	Month        string     `gorm:"type:char(7);not null;uniqueIndex:uq_payroll_employee_month;index"`
	FullName     string     `gorm:"type:varchar(150);not null"`
	ExportID     *uuid.UUID `gorm:"type:uuid;index"`
	SectionFound bool       `gorm:"not null;default:false"`

	// Hours
	TotalWorkingHours  decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	NotAllowedHours    decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	AllowedHoursPerDay decimal.Decimal `gorm:"type:numeric(6,2);not null"`

	// Days
	OfficialWorkingDays    int `gorm:"not null;default:0"`
	OfficialLeaves         int `gorm:"not null;default:0"`
	AdjustedWorkingDays    int `gorm:"not null;default:0"`
	EffectiveAllowanceDays int `gorm:"not null;default:0"`
	LateCount              int `gorm:"not null;default:0"`
	EarlyCount             int `gorm:"not null;default:0"`
	AbsentCount            int `gorm:"not null;default:0"`
	EffectiveAbsentCount   int `gorm:"not null;default:0"`

	// Money
	SalaryCap           decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	HourlyWage          decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	DailyAllowanceRate  decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	DailyAllowanceTotal decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	HourlySalary        decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	GrossSalary         decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`

	// Audit trail
	LateDates        datatypes.JSONSlice[string]    `gorm:"type:jsonb;not null"`
	EarlyDates       datatypes.JSONSlice[string]    `gorm:"type:jsonb;not null"`
	AbsentDates      datatypes.JSONSlice[string]    `gorm:"type:jsonb;not null"`
	TableSectionData datatypes.JSONType[[][]string] `gorm:"type:jsonb;not null"`

	CreatedBy uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WageEmployee reads the wage fields of the employee directory.
type WageEmployee struct {
	ID           uuid.UUID        `gorm:"type:uuid;primaryKey"`
	CompanyID    uuid.UUID        `gorm:"column:company_id"`
	EmployeeCode string           `gorm:"column:employee_code"`
	FullName     string           `gorm:"column:full_name"`
	SalaryCap    *decimal.Decimal `gorm:"column:salary_cap"`
	InTime       *string          `gorm:"column:in_time"`
	OutTime      *string          `gorm:"column:out_time"`
}

func (WageEmployee) TableName() string {
	return "employees"
}

func (e WageEmployee) WagePolicy() WagePolicy {
	return WagePolicy{
		EmployeeCode: e.EmployeeCode,
		FullName:     e.FullName,
		SalaryCap:    e.SalaryCap,
		InTime:       e.InTime,
		OutTime:      e.OutTime,
	}
}
