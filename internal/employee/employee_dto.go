package employee

type EmployeeResponse struct {
	ID            string   `json:"id"`
	CompanyID     string   `json:"company_id"`
	EmployeeCode  string   `json:"employee_code"`
	FullName      string   `json:"full_name"`
	Email         string   `json:"email,omitempty"`
	SalaryCap     *float64 `json:"salary_cap"`
	InTime        *string  `json:"in_time"`
	OutTime       *string  `json:"out_time"`
	Payable       bool     `json:"payable"`
	MissingFields []string `json:"missing_fields"`
}

type EmployeeOptionResponse struct {
	ID           string `json:"id"`
	EmployeeCode string `json:"employee_code"`
	FullName     string `json:"full_name"`
}

// ListEmployeesQuery adalah query string GET /employees.
type ListEmployeesQuery struct {
	Search   string `form:"q"`
	Payable  *bool  `form:"payable"`
	SortBy   string `form:"sort_by" binding:"omitempty,oneof=code name"`
	SortDir  string `form:"sort_dir" binding:"omitempty,oneof=asc desc"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=200"`
}
