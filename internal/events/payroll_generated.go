package events

import "time"

const PayrollGeneratedTopic = "hr.payroll.generated.v1"

const EventTypePayrollGenerated = "payroll.generated"

// PayrollGeneratedEvent is emitted once per stored payroll record.
type PayrollGeneratedEvent struct {
	EventType    string    `json:"event_type"`
	PayrollID    string    `json:"payroll_id"`
	CompanyID    string    `json:"company_id"`
	EmployeeCode string    `json:"employee_code"`
	Month        string    `json:"month"`
	GrossSalary  string    `json:"gross_salary"`
	SectionFound bool      `json:"section_found"`
	OccurredAt   time.Time `json:"occurred_at"`
}
