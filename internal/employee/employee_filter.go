package employee

import (
	"sort"
	"strings"
)

func matchesSearch(q, fullName, code string) bool {
	return q == "" ||
		strings.Contains(strings.ToLower(fullName), q) ||
		strings.Contains(strings.ToLower(code), q)
}

// filterEmployees menerapkan pencarian, filter payable, dan urutan.
// Slice input tidak diubah.
func filterEmployees(items []EmployeeResponse, query ListEmployeesQuery) []EmployeeResponse {
	q := strings.ToLower(strings.TrimSpace(query.Search))

	out := make([]EmployeeResponse, 0, len(items))
	for _, e := range items {
		if !matchesSearch(q, e.FullName, e.EmployeeCode) {
			continue
		}
		if query.Payable != nil && e.Payable != *query.Payable {
			continue
		}
		out = append(out, e)
	}

	less := func(a, b EmployeeResponse) bool { return a.EmployeeCode < b.EmployeeCode }
	if query.SortBy == "name" {
		less = func(a, b EmployeeResponse) bool {
			return strings.ToLower(a.FullName) < strings.ToLower(b.FullName)
		}
	}
	desc := query.SortDir == "desc"
	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

func filterOptions(items []EmployeeOptionResponse, search string) []EmployeeOptionResponse {
	q := strings.ToLower(strings.TrimSpace(search))
	if q == "" {
		return items
	}
	out := make([]EmployeeOptionResponse, 0, len(items))
	for _, e := range items {
		if matchesSearch(q, e.FullName, e.EmployeeCode) {
			out = append(out, e)
		}
	}
	return out
}
