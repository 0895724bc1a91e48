package employee

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Employee is the directory row maintained by the HR administration side.
// This service only reads it.
type Employee struct {
	ID           uuid.UUID        `gorm:"type:uuid;primaryKey"`
	CompanyID    uuid.UUID        `gorm:"type:uuid;index"`
	EmployeeCode string           `gorm:"type:varchar(64);index"`
	FullName     string           `gorm:"type:varchar(150)"`
	Email        string           `gorm:"type:varchar(150)"`
	SalaryCap    *decimal.Decimal `gorm:"type:numeric(14,2)"`
	InTime       *string          `gorm:"type:varchar(8)"`
	OutTime      *string          `gorm:"type:varchar(8)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}
