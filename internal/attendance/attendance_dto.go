package attendance

type ExportResponse struct {
	ID            string   `json:"id"`
	CompanyID     string   `json:"company_id"`
	Filename      string   `json:"filename"`
	FileType      string   `json:"file_type"`
	RowCount      int      `json:"row_count"`
	EmployeeCodes []string `json:"employee_codes"`
	UploadedBy    string   `json:"uploaded_by"`
	CreatedAt     string   `json:"created_at"`
}

type ExportDetailResponse struct {
	ExportResponse
	Rows [][]string `json:"rows"`
}

type GetSectionRequest struct {
	SaturdayOff bool `form:"saturday_off"`
}

type DayResponse struct {
	Date     string  `json:"date"`
	Weekday  string  `json:"weekday"`
	CheckIn  *string `json:"check_in"`
	CheckOut *string `json:"check_out"`
}

type SectionResponse struct {
	EmployeeCode string        `json:"employee_code"`
	Found        bool          `json:"found"`
	TotalHours   string        `json:"total_hours"`
	Rows         [][]string    `json:"rows"`
	Days         []DayResponse `json:"days"`
	LateCount    int           `json:"late_count"`
	EarlyCount   int           `json:"early_count"`
	AbsentCount  int           `json:"absent_count"`
	LateDates    []string      `json:"late_dates"`
	EarlyDates   []string      `json:"early_dates"`
	AbsentDates  []string      `json:"absent_dates"`
}
