package attendance

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Export is an uploaded biometric-device attendance table.
type Export struct {
	ID         uuid.UUID                      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID  uuid.UUID                      `gorm:"column:company_id;type:uuid;not null;index"`
	Filename   string                         `gorm:"column:filename;type:varchar(255);not null"`
	FileType   string                         `gorm:"column:file_type;type:varchar(10);not null"`
	RowCount   int                            `gorm:"column:row_count;not null;default:0"`
	Rows       datatypes.JSONType[[][]string] `gorm:"column:rows;type:jsonb;not null"`
	Employees  datatypes.JSONSlice[string]    `gorm:"column:employee_codes;type:jsonb;not null"`
	UploadedBy uuid.UUID                      `gorm:"column:uploaded_by;type:uuid;not null"`
	CreatedAt  time.Time                      `gorm:"column:created_at"`
	UpdatedAt  time.Time                      `gorm:"column:updated_at"`
	DeletedAt  gorm.DeletedAt                 `gorm:"column:deleted_at;index"`
}

func (Export) TableName() string {
	return "attendance_exports"
}
