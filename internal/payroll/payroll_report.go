package payroll

import (
	"bytes"
	"fmt"

	"github.com/gocarina/gocsv"
	"github.com/jung-kurt/gofpdf"
)

// PayrollCSVRow is one line of the payroll export. Money and hours keep the
// two-place strings of the stored record.
type PayrollCSVRow struct {
	EmployeeCode           string `csv:"employee_code"`
	FullName               string `csv:"full_name"`
	Month                  string `csv:"month"`
	SectionFound           bool   `csv:"section_found"`
	TotalWorkingHours      string `csv:"total_working_hours"`
	NotAllowedHours        string `csv:"not_allowed_hours"`
	OfficialWorkingDays    int    `csv:"official_working_days"`
	OfficialLeaves         int    `csv:"official_leaves"`
	AdjustedWorkingDays    int    `csv:"adjusted_working_days"`
	EffectiveAllowanceDays int    `csv:"effective_allowance_days"`
	LateCount              int    `csv:"late_count"`
	EarlyCount             int    `csv:"early_count"`
	AbsentCount            int    `csv:"absent_count"`
	SalaryCap              string `csv:"salary_cap"`
	HourlyWage             string `csv:"hourly_wage"`
	DailyAllowanceRate     string `csv:"daily_allowance_rate"`
	DailyAllowanceTotal    string `csv:"daily_allowance_total"`
	HourlySalary           string `csv:"hourly_salary"`
	GrossSalary            string `csv:"gross_salary"`
}

func EncodeCSV(payrolls []Payroll) ([]byte, error) {
	rows := make([]PayrollCSVRow, len(payrolls))
	for i, p := range payrolls {
		rows[i] = PayrollCSVRow{
			EmployeeCode:           p.EmployeeCode,
			FullName:               p.FullName,
			Month:                  p.Month,
			SectionFound:           p.SectionFound,
			TotalWorkingHours:      p.TotalWorkingHours.StringFixed(2),
			NotAllowedHours:        p.NotAllowedHours.StringFixed(2),
			OfficialWorkingDays:    p.OfficialWorkingDays,
			OfficialLeaves:         p.OfficialLeaves,
			AdjustedWorkingDays:    p.AdjustedWorkingDays,
			EffectiveAllowanceDays: p.EffectiveAllowanceDays,
			LateCount:              p.LateCount,
			EarlyCount:             p.EarlyCount,
			AbsentCount:            p.AbsentCount,
			SalaryCap:              p.SalaryCap.StringFixed(2),
			HourlyWage:             p.HourlyWage.StringFixed(2),
			DailyAllowanceRate:     p.DailyAllowanceRate.StringFixed(2),
			DailyAllowanceTotal:    p.DailyAllowanceTotal.StringFixed(2),
			HourlySalary:           p.HourlySalary.StringFixed(2),
			GrossSalary:            p.GrossSalary.StringFixed(2),
		}
	}
	return gocsv.MarshalBytes(rows)
}

// PayslipFile is a rendered payslip ready to be served as a download.
type PayslipFile struct {
	Filename string
	Content  []byte
}

func PayslipFilename(p Payroll) string {
	return fmt.Sprintf("payslip_%s_%s.pdf", p.EmployeeCode, p.Month)
}

// RenderPayslip lays out one record as a single A4 page.
func RenderPayslip(p Payroll) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(PayslipFilename(p), true)
	pdf.AddPage()
	// core fonts are cp1252; names are translated from UTF-8
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(40, 8, tr(fmt.Sprintf("Employee: %s (%s)", p.FullName, p.EmployeeCode)))
	pdf.Ln(8)
	pdf.Cell(40, 8, fmt.Sprintf("Month: %s", p.Month))
	pdf.Ln(12)

	lines := []struct {
		label string
		value string
	}{
		{"Working hours", p.TotalWorkingHours.StringFixed(2)},
		{"Hours above allowance", p.NotAllowedHours.StringFixed(2)},
		{"Official working days", fmt.Sprintf("%d", p.OfficialWorkingDays)},
		{"Official leaves", fmt.Sprintf("%d", p.OfficialLeaves)},
		{"Late / early / absent", fmt.Sprintf("%d / %d / %d", p.LateCount, p.EarlyCount, p.AbsentCount)},
		{"Allowance days", fmt.Sprintf("%d", p.EffectiveAllowanceDays)},
		{"Hourly wage", p.HourlyWage.StringFixed(2)},
		{"Hourly salary", p.HourlySalary.StringFixed(2)},
		{"Daily allowance rate", p.DailyAllowanceRate.StringFixed(2)},
		{"Daily allowance total", p.DailyAllowanceTotal.StringFixed(2)},
		{"Salary cap", p.SalaryCap.StringFixed(2)},
	}

	pdf.SetFont("Arial", "", 11)
	for _, l := range lines {
		pdf.CellFormat(90, 8, l.label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 8, l.value, "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(90, 10, "Gross salary", "1", 0, "L", false, 0, "")
	pdf.CellFormat(60, 10, p.GrossSalary.StringFixed(2), "1", 1, "R", false, 0, "")

	if !p.SectionFound {
		pdf.Ln(6)
		pdf.SetFont("Arial", "I", 9)
		pdf.Cell(0, 8, "No attendance section was found for this employee.")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
