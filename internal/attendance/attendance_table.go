package attendance

import (
	"regexp"
	"strings"
	"time"
)

const (
	// DefaultHeaderRows is the number of title rows the device prints
	// before the first employee section.
	DefaultHeaderRows = 7

	sectionMarker = "User ID"
	totalMarker   = "Total"

	colDate     = 0
	colWeekday  = 1
	colCheckIn  = 4
	colCheckOut = 6
	colTotal    = 14

	zeroHours  = "0:00"
	dateLayout = "01/02/2006"
)

var dateToken = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

// Table is a decoded attendance export with empty lines and header rows removed.
type Table [][]string

// NewTable drops empty lines and then the leading headerRows rows of a raw
// export. Only zero-length rows are empty lines; a row of blank cells is a
// spreadsheet row and counts toward the header. A raw export with no more
// than headerRows rows yields an empty table.
func NewTable(raw [][]string, headerRows int) Table {
	rows := make(Table, 0, len(raw))
	for _, row := range raw {
		if len(row) == 0 {
			continue
		}
		rows = append(rows, row)
	}

	if headerRows < 0 {
		headerRows = 0
	}
	if len(rows) <= headerRows {
		return Table{}
	}
	return rows[headerRows:]
}

// Section is the slice of a Table belonging to one employee.
type Section struct {
	EmployeeCode string
	Found        bool
	Rows         [][]string
	TotalHours   string
	Days         []DayRecord
}

// DayRecord is one dated row of a section.
type DayRecord struct {
	DateToken    string
	Date         time.Time
	WeekdayLabel string
	CheckIn      *Clock
	CheckOut     *Clock
}

// Weekday resolves the label printed by the device ("Sun.", "Sat.") and falls
// back to the parsed date.
func (d DayRecord) Weekday() time.Weekday {
	label := strings.ToLower(strings.TrimSuffix(strings.TrimSpace(d.WeekdayLabel), "."))
	if len(label) >= 3 {
		if wd, ok := weekdayLabels[label[:3]]; ok {
			return wd
		}
	}
	return d.Date.Weekday()
}

var weekdayLabels = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

// Section locates the rows of one employee. The section starts at the
// "User ID" row whose second cell equals employeeCode and runs up to, but
// excluding, the next "User ID" row.
func (t Table) Section(employeeCode string) Section {
	code := strings.TrimSpace(employeeCode)
	sec := Section{
		EmployeeCode: code,
		Rows:         [][]string{},
		TotalHours:   zeroHours,
		Days:         []DayRecord{},
	}

	start, end := -1, len(t)
	for i, row := range t {
		if !isMarker(row) {
			continue
		}
		if start >= 0 {
			end = i
			break
		}
		if cell(row, 1) == code {
			start = i
		}
	}
	if start < 0 {
		return sec
	}

	sec.Found = true
	sec.Rows = cloneRows(t[start:end])

	for _, row := range sec.Rows {
		if cell(row, colDate) == totalMarker {
			if v := cell(row, colTotal); v != "" {
				sec.TotalHours = v
			}
			break
		}
	}

	for _, row := range sec.Rows {
		if day, ok := parseDayRow(row); ok {
			sec.Days = append(sec.Days, day)
		}
	}
	return sec
}

// EmployeeCodes lists the codes of every section in order of appearance.
func (t Table) EmployeeCodes() []string {
	codes := []string{}
	for _, row := range t {
		if isMarker(row) {
			codes = append(codes, cell(row, 1))
		}
	}
	return codes
}

func parseDayRow(row []string) (DayRecord, bool) {
	token := cell(row, colDate)
	label := cell(row, colWeekday)
	if !dateToken.MatchString(token) || label == "" {
		return DayRecord{}, false
	}

	day := DayRecord{
		DateToken:    token,
		WeekdayLabel: label,
		CheckIn:      punch(cell(row, colCheckIn)),
		CheckOut:     punch(cell(row, colCheckOut)),
	}
	if date, err := time.Parse(dateLayout, token); err == nil {
		day.Date = date
	}
	return day, true
}

// punch treats blank, unparseable and "0:00" cells as no punch.
func punch(v string) *Clock {
	c, ok := ParseClock(v)
	if !ok || c == 0 {
		return nil
	}
	return &c
}

func isMarker(row []string) bool {
	return len(row) > 1 && cell(row, 0) == sectionMarker
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func cloneRows(rows [][]string) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = append([]string(nil), row...)
	}
	return out
}
