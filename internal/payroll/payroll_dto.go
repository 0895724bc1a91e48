package payroll

type GeneratePayrollRequest struct {
	ExportID               string   `json:"export_id" binding:"required,uuid"`
	Month                  string   `json:"month" binding:"required"`
	SaturdayOffEmployeeIDs []string `json:"saturday_off_employee_ids"`
	OfficialLeaves         int      `json:"official_leaves" binding:"min=0"`
	AllowedHoursPerDay     float64  `json:"allowed_hours_per_day" binding:"required,gt=0"`
	EmployeeCode           *string  `json:"employee_code"`
}

// UpdatePayrollRequest adjusts the inputs of a stored record. Every derived
// figure is recomputed from the merged inputs.
type UpdatePayrollRequest struct {
	FullName            *string  `json:"full_name" binding:"omitempty,min=1"`
	TotalWorkingHours   *float64 `json:"total_working_hours" binding:"omitempty,min=0"`
	OfficialWorkingDays *int     `json:"official_working_days" binding:"omitempty,min=0"`
	OfficialLeaves      *int     `json:"official_leaves" binding:"omitempty,min=0"`
	AllowedHoursPerDay  *float64 `json:"allowed_hours_per_day" binding:"omitempty,gt=0"`
	LateCount           *int     `json:"late_count" binding:"omitempty,min=0"`
	EarlyCount          *int     `json:"early_count" binding:"omitempty,min=0"`
	AbsentCount         *int     `json:"absent_count" binding:"omitempty,min=0"`
	SalaryCap           *float64 `json:"salary_cap" binding:"omitempty,min=0"`
}

func (r UpdatePayrollRequest) changesFigures() bool {
	return r.TotalWorkingHours != nil || r.OfficialWorkingDays != nil || r.OfficialLeaves != nil ||
		r.AllowedHoursPerDay != nil || r.LateCount != nil || r.EarlyCount != nil ||
		r.AbsentCount != nil || r.SalaryCap != nil
}

type GetPayrollsFilterRequest struct {
	Month        string `form:"month"`
	EmployeeCode string `form:"employee_code"`
}

type PayrollResponse struct {
	ID                     string     `json:"id"`
	CompanyID              string     `json:"company_id"`
	EmployeeCode           string     `json:"employee_code"`
	FullName               string     `json:"full_name"`
	Month                  string     `json:"month"`
	ExportID               *string    `json:"export_id,omitempty"`
	SectionFound           bool       `json:"section_found"`
	TotalWorkingHours      float64    `json:"total_working_hours"`
	NotAllowedHours        float64    `json:"not_allowed_hours"`
	AllowedHoursPerDay     float64    `json:"allowed_hours_per_day"`
	OfficialWorkingDays    int        `json:"official_working_days"`
	OfficialLeaves         int        `json:"official_leaves"`
	AdjustedWorkingDays    int        `json:"adjusted_working_days"`
	EffectiveAllowanceDays int        `json:"effective_allowance_days"`
	LateCount              int        `json:"late_count"`
	EarlyCount             int        `json:"early_count"`
	AbsentCount            int        `json:"absent_count"`
	EffectiveAbsentCount   int        `json:"effective_absent_count"`
	SalaryCap              float64    `json:"salary_cap"`
	HourlyWage             float64    `json:"hourly_wage"`
	DailyAllowanceRate     float64    `json:"daily_allowance_rate"`
	DailyAllowanceTotal    float64    `json:"daily_allowance_total"`
	HourlySalary           float64    `json:"hourly_salary"`
	GrossSalary            float64    `json:"gross_salary"`
	LateDates              []string   `json:"late_dates"`
	EarlyDates             []string   `json:"early_dates"`
	AbsentDates            []string   `json:"absent_dates"`
	TableSectionData       [][]string `json:"table_section_data"`
	CreatedBy              string     `json:"created_by"`
	CreatedAt              string     `json:"created_at"`
	UpdatedAt              string     `json:"updated_at"`
}

type SkippedEmployeeResponse struct {
	EmployeeCode string `json:"employee_code"`
	FullName     string `json:"full_name"`
	Reason       string `json:"reason"`
}

type GenerationWarningResponse struct {
	EmployeeCode string `json:"employee_code"`
	Message      string `json:"message"`
}

type GeneratePayrollResponse struct {
	Month     string                      `json:"month"`
	Generated []PayrollResponse           `json:"generated"`
	Skipped   []SkippedEmployeeResponse   `json:"skipped"`
	Warnings  []GenerationWarningResponse `json:"warnings"`
}

type GenerationQueuedResponse struct {
	RequestID string `json:"request_id"`
	Status    string `json:"status"`
}

type DeleteAllResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}
