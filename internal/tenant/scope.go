package tenant

import (
	"strings"

	"gorm.io/gorm"
)

// Scope restricts a query to one company. A blank company id matches no
// rows, so a missing tenant never widens a query to every company.
func Scope(companyID string) func(db *gorm.DB) *gorm.DB {
	companyID = strings.TrimSpace(companyID)
	return func(db *gorm.DB) *gorm.DB {
		if companyID == "" {
			return db.Where("1 = 0")
		}
		return db.Where("company_id = ?", companyID)
	}
}
