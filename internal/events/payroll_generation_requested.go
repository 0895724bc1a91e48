package events

import "time"

const PayrollGenerationRequestedTopic = "hr.payroll.generation.requested.v1"

const EventTypePayrollGenerationRequested = "payroll.generation.requested"

type PayrollGenerationRequestedEvent struct {
	EventType              string    `json:"event_type"`
	RequestID              string    `json:"request_id"`
	CompanyID              string    `json:"company_id"`
	RequestedBy            string    `json:"requested_by"`
	ExportID               string    `json:"export_id"`
	Month                  string    `json:"month"`
	SaturdayOffEmployeeIDs []string  `json:"saturday_off_employee_ids"`
	OfficialLeaves         int       `json:"official_leaves"`
	AllowedHoursPerDay     float64   `json:"allowed_hours_per_day"`
	EmployeeCode           *string   `json:"employee_code,omitempty"`
	OccurredAt             time.Time `json:"occurred_at"`
}
