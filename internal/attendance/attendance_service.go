package attendance

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"strings"
	"time"

	attendanceerrors "github.com/connectwithhassan/all-in-one/internal/attendance/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	Upload(ctx context.Context, companyID, actorID, filename string, content io.Reader) (ExportResponse, error)
	GetAll(ctx context.Context, companyID string) ([]ExportResponse, error)
	GetByID(ctx context.Context, companyID, id string) (ExportDetailResponse, error)
	GetTable(ctx context.Context, companyID, id string) (Table, error)
	GetSection(ctx context.Context, companyID, id, employeeCode string, req GetSectionRequest) (SectionResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db         *sql.DB
	repo       Repository
	headerRows int
	classifier Classifier
	logger     *zap.Logger
}

func NewService(db *sql.DB, repo Repository, headerRows int, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	if headerRows < 0 {
		headerRows = DefaultHeaderRows
	}
	return &service{
		db:         db,
		repo:       repo,
		headerRows: headerRows,
		classifier: NewClassifier(),
		logger:     l,
	}
}

func (s *service) Upload(ctx context.Context, companyID, actorID, filename string, content io.Reader) (ExportResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return ExportResponse{}, attendanceerrors.ErrInvalidCompanyID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return ExportResponse{}, attendanceerrors.ErrInvalidActorID
	}
	if strings.TrimSpace(filename) == "" || content == nil {
		return ExportResponse{}, attendanceerrors.ErrFileRequired
	}

	fileType, err := DetectFileType(filename)
	if err != nil {
		return ExportResponse{}, err
	}
	rows, err := DecodeRows(filename, content)
	if err != nil {
		s.logger.Warn("failed to decode attendance export",
			zap.String("company_id", companyID),
			zap.String("filename", filename),
			zap.Error(err),
		)
		return ExportResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ExportResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	table := NewTable(rows, s.headerRows)
	export := &Export{
		ID:         uuid.New(),
		CompanyID:  companyUUID,
		Filename:   filename,
		FileType:   fileType,
		RowCount:   len(rows),
		Rows:       datatypes.NewJSONType(rows),
		Employees:  datatypes.NewJSONSlice(table.EmployeeCodes()),
		UploadedBy: actorUUID,
	}

	if err := qtx.Create(ctx, export); err != nil {
		return ExportResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return ExportResponse{}, err
	}

	s.logger.Info("attendance export stored",
		zap.String("company_id", companyID),
		zap.String("export_id", export.ID.String()),
		zap.Int("rows", export.RowCount),
		zap.Int("sections", len(export.Employees)),
	)
	return mapToResponse(*export), nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]ExportResponse, error) {
	exports, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	resp := make([]ExportResponse, len(exports))
	for i, e := range exports {
		resp[i] = mapToResponse(e)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (ExportDetailResponse, error) {
	export, err := s.find(ctx, companyID, id)
	if err != nil {
		return ExportDetailResponse{}, err
	}
	return ExportDetailResponse{
		ExportResponse: mapToResponse(*export),
		Rows:           export.Rows.Data(),
	}, nil
}

// GetTable returns the parsed table of a stored export with header rows
// already dropped.
func (s *service) GetTable(ctx context.Context, companyID, id string) (Table, error) {
	export, err := s.find(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return NewTable(export.Rows.Data(), s.headerRows), nil
}

func (s *service) GetSection(ctx context.Context, companyID, id, employeeCode string, req GetSectionRequest) (SectionResponse, error) {
	table, err := s.GetTable(ctx, companyID, id)
	if err != nil {
		return SectionResponse{}, err
	}

	section := table.Section(employeeCode)
	cls := s.classifier.Classify(section.Days, req.SaturdayOff)

	days := make([]DayResponse, len(section.Days))
	for i, d := range section.Days {
		days[i] = DayResponse{
			Date:     d.DateToken,
			Weekday:  d.Weekday().String(),
			CheckIn:  clockString(d.CheckIn),
			CheckOut: clockString(d.CheckOut),
		}
	}

	return SectionResponse{
		EmployeeCode: section.EmployeeCode,
		Found:        section.Found,
		TotalHours:   section.TotalHours,
		Rows:         section.Rows,
		Days:         days,
		LateCount:    cls.LateCount(),
		EarlyCount:   cls.EarlyCount(),
		AbsentCount:  cls.AbsentCount(),
		LateDates:    cls.LateDates,
		EarlyDates:   cls.EarlyDates,
		AbsentDates:  cls.AbsentDates,
	}, nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return attendanceerrors.ErrInvalidExportID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Delete(ctx, companyID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return attendanceerrors.ErrExportNotFound
		}
		return err
	}
	return tx.Commit()
}

func (s *service) find(ctx context.Context, companyID, id string) (*Export, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, attendanceerrors.ErrInvalidExportID
	}
	export, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, attendanceerrors.ErrExportNotFound
		}
		return nil, err
	}
	return export, nil
}

func clockString(c *Clock) *string {
	if c == nil {
		return nil
	}
	v := c.String()
	return &v
}

func mapToResponse(e Export) ExportResponse {
	codes := []string(e.Employees)
	if codes == nil {
		codes = []string{}
	}
	return ExportResponse{
		ID:            e.ID.String(),
		CompanyID:     e.CompanyID.String(),
		Filename:      e.Filename,
		FileType:      e.FileType,
		RowCount:      e.RowCount,
		EmployeeCodes: codes,
		UploadedBy:    e.UploadedBy.String(),
		CreatedAt:     e.CreatedAt.Format(time.RFC3339),
	}
}
