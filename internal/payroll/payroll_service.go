package payroll

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/connectwithhassan/all-in-one/internal/attendance"
	"github.com/connectwithhassan/all-in-one/internal/calendar"
	"github.com/connectwithhassan/all-in-one/internal/events"
	"github.com/connectwithhassan/all-in-one/internal/messaging/kafka"
	payrollerrors "github.com/connectwithhassan/all-in-one/internal/payroll/errors"
	"github.com/connectwithhassan/all-in-one/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	aggregatePayroll       = "payroll"
	aggregateAttendance    = "attendance_export"
	GenerationStatusQueued = "queued"
)

// TableSource resolves a stored attendance export into a parsed table.
type TableSource interface {
	GetTable(ctx context.Context, companyID, exportID string) (attendance.Table, error)
}

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Generate(ctx context.Context, companyID, actorID string, req GeneratePayrollRequest) (GeneratePayrollResponse, error)
	RequestGeneration(ctx context.Context, companyID, actorID string, req GeneratePayrollRequest) (GenerationQueuedResponse, error)
	GetAll(ctx context.Context, companyID string, filter GetPayrollsFilterRequest) ([]PayrollResponse, error)
	GetByID(ctx context.Context, companyID, id string) (PayrollResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdatePayrollRequest) (PayrollResponse, error)
	Delete(ctx context.Context, companyID, id string) error
	DeleteAll(ctx context.Context, companyID string, filter GetPayrollsFilterRequest) (DeleteAllResponse, error)
	ExportCSV(ctx context.Context, companyID string, filter GetPayrollsFilterRequest) ([]byte, error)
	GetPayslip(ctx context.Context, companyID, id string) (PayslipFile, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	tables TableSource
	engine Engine
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, tables TableSource, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, tables, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	tables TableSource,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		tables: tables,
		engine: NewEngine(attendance.NewClassifier()),
		outbox: outboxRepo,
		logger: l,
	}
}

func (s *service) Generate(
	ctx context.Context,
	companyID, actorID string,
	req GeneratePayrollRequest,
) (GeneratePayrollResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	companyUUID, actorUUID, exportUUID, policy, err := validateGenerateRequest(companyID, actorID, req)
	if err != nil {
		return GeneratePayrollResponse{}, err
	}

	table, err := s.tables.GetTable(ctx, companyID, req.ExportID)
	if err != nil {
		return GeneratePayrollResponse{}, err
	}

	single := req.EmployeeCode != nil && strings.TrimSpace(*req.EmployeeCode) != ""
	var code *string
	if single {
		trimmed := strings.TrimSpace(*req.EmployeeCode)
		code = &trimmed
	}

	wages, err := s.repo.FindWagePolicies(ctx, companyID, code)
	if err != nil {
		return GeneratePayrollResponse{}, err
	}

	var manifest Manifest
	if single {
		if len(wages) == 0 {
			return GeneratePayrollResponse{}, payrollerrors.ErrEmployeeNotFound
		}
		manifest, err = s.engine.GenerateOne(table, policy, wages[0])
		if err == nil && len(manifest.Generated) == 0 && len(manifest.Skipped) > 0 {
			return GeneratePayrollResponse{}, payrollerrors.ErrEmployeeNotComputable.WithCause(errors.New(manifest.Skipped[0].Reason))
		}
	} else {
		manifest, err = s.engine.GenerateAll(table, policy, wages)
	}
	if err != nil {
		return GeneratePayrollResponse{}, err
	}

	if len(manifest.Generated) > 0 {
		if err := s.store(ctx, rid, companyUUID, actorUUID, exportUUID, manifest.Generated); err != nil {
			return GeneratePayrollResponse{}, err
		}
	}

	s.logger.Info("payroll generated",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("month", policy.Month.String()),
		zap.Int("generated", len(manifest.Generated)),
		zap.Int("skipped", len(manifest.Skipped)),
		zap.Int("warnings", len(manifest.Warnings)),
	)
	for _, skipped := range manifest.Skipped {
		s.logger.Warn("payroll skipped",
			zap.String("request_id", rid),
			zap.String("employee_code", skipped.EmployeeCode),
			zap.String("reason", skipped.Reason),
		)
	}

	return mapToGenerateResponse(policy.Month, manifest), nil
}

// store writes every generated record in one transaction. A record that
// already exists for the same employee and month is overwritten in place.
func (s *service) store(
	ctx context.Context,
	rid string,
	companyID, actorID, exportID uuid.UUID,
	records []Payroll,
) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	var qOutbox kafka.OutboxRepository
	if s.outbox != nil {
		qOutbox = s.outbox.WithTx(tx)
	}

	for i := range records {
		p := &records[i]
		p.CompanyID = companyID
		p.CreatedBy = actorID
		p.ExportID = &exportID

		existing, err := qtx.FindByEmployeeMonth(ctx, companyID.String(), p.EmployeeCode, p.Month)
		switch {
		case err == nil:
			p.ID = existing.ID
			p.CreatedAt = existing.CreatedAt
			err = qtx.Update(ctx, p)
		case errors.Is(err, gorm.ErrRecordNotFound):
			p.ID = uuid.New()
			err = qtx.Create(ctx, p)
		}
		if err != nil {
			return mapRepositoryError(err)
		}

		if qOutbox != nil {
			event, err := kafka.NewOutboxEvent(
				rid,
				aggregatePayroll,
				p.ID.String(),
				events.EventTypePayrollGenerated,
				events.PayrollGeneratedTopic,
				events.PayrollGeneratedEvent{
					EventType:    events.EventTypePayrollGenerated,
					PayrollID:    p.ID.String(),
					CompanyID:    companyID.String(),
					EmployeeCode: p.EmployeeCode,
					Month:        p.Month,
					GrossSalary:  p.GrossSalary.StringFixed(2),
					SectionFound: p.SectionFound,
					OccurredAt:   time.Now().UTC(),
				},
			)
			if err != nil {
				return err
			}
			if err := qOutbox.Create(ctx, event); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

func (s *service) RequestGeneration(
	ctx context.Context,
	companyID, actorID string,
	req GeneratePayrollRequest,
) (GenerationQueuedResponse, error) {
	if s.outbox == nil {
		return GenerationQueuedResponse{}, payrollerrors.ErrGenerationQueueUnavailable
	}
	if _, _, _, _, err := validateGenerateRequest(companyID, actorID, req); err != nil {
		return GenerationQueuedResponse{}, err
	}

	rid := contextutil.GetRequestID(ctx)
	event, err := kafka.NewOutboxEvent(
		rid,
		aggregateAttendance,
		req.ExportID,
		events.EventTypePayrollGenerationRequested,
		events.PayrollGenerationRequestedTopic,
		events.PayrollGenerationRequestedEvent{
			EventType:              events.EventTypePayrollGenerationRequested,
			RequestID:              rid,
			CompanyID:              companyID,
			RequestedBy:            actorID,
			ExportID:               req.ExportID,
			Month:                  req.Month,
			SaturdayOffEmployeeIDs: req.SaturdayOffEmployeeIDs,
			OfficialLeaves:         req.OfficialLeaves,
			AllowedHoursPerDay:     req.AllowedHoursPerDay,
			EmployeeCode:           req.EmployeeCode,
			OccurredAt:             time.Now().UTC(),
		},
	)
	if err != nil {
		return GenerationQueuedResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return GenerationQueuedResponse{}, err
	}
	defer tx.Rollback()

	if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
		return GenerationQueuedResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return GenerationQueuedResponse{}, err
	}

	s.logger.Info("payroll generation queued",
		zap.String("request_id", rid),
		zap.String("outbox_id", event.ID),
		zap.String("company_id", companyID),
		zap.String("month", req.Month),
	)
	return GenerationQueuedResponse{RequestID: event.ID, Status: GenerationStatusQueued}, nil
}

func (s *service) GetAll(
	ctx context.Context,
	companyID string,
	filterReq GetPayrollsFilterRequest,
) ([]PayrollResponse, error) {
	filter, err := buildQueryFilter(filterReq)
	if err != nil {
		return nil, err
	}

	payrolls, err := s.repo.FindAllByCompany(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}

	return mapToListResponse(payrolls), nil
}

func (s *service) GetByID(
	ctx context.Context,
	companyID, id string,
) (PayrollResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidPayrollID
	}

	payroll, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*payroll), nil
}

func (s *service) Update(
	ctx context.Context,
	companyID, id string,
	req UpdatePayrollRequest,
) (PayrollResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidPayrollID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	payroll, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}

	if err := Recalculate(payroll, req); err != nil {
		return PayrollResponse{}, err
	}

	if err := qtx.Update(ctx, payroll); err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, err
	}

	return mapToResponse(*payroll), nil
}

func (s *service) Delete(
	ctx context.Context,
	companyID, id string,
) error {
	if _, err := uuid.Parse(id); err != nil {
		return payrollerrors.ErrInvalidPayrollID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Delete(ctx, companyID, id); err != nil {
		return mapRepositoryError(err)
	}

	return tx.Commit()
}

func (s *service) DeleteAll(
	ctx context.Context,
	companyID string,
	filterReq GetPayrollsFilterRequest,
) (DeleteAllResponse, error) {
	filter, err := buildQueryFilter(filterReq)
	if err != nil {
		return DeleteAllResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return DeleteAllResponse{}, err
	}
	defer tx.Rollback()

	deleted, err := s.repo.WithTx(tx).DeleteAll(ctx, companyID, filter)
	if err != nil {
		return DeleteAllResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return DeleteAllResponse{}, err
	}

	s.logger.Info("payrolls deleted",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("company_id", companyID),
		zap.Int64("deleted", deleted),
	)
	return DeleteAllResponse{DeletedCount: deleted}, nil
}

func (s *service) ExportCSV(
	ctx context.Context,
	companyID string,
	filterReq GetPayrollsFilterRequest,
) ([]byte, error) {
	filter, err := buildQueryFilter(filterReq)
	if err != nil {
		return nil, err
	}

	payrolls, err := s.repo.FindAllByCompany(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}

	return EncodeCSV(payrolls)
}

func (s *service) GetPayslip(
	ctx context.Context,
	companyID, id string,
) (PayslipFile, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PayslipFile{}, payrollerrors.ErrInvalidPayrollID
	}

	payroll, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return PayslipFile{}, mapRepositoryError(err)
	}

	content, err := RenderPayslip(*payroll)
	if err != nil {
		s.logger.Error("render payslip failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("payroll_id", id),
			zap.Error(err),
		)
		return PayslipFile{}, err
	}

	return PayslipFile{Filename: PayslipFilename(*payroll), Content: content}, nil
}

// Recalculate merges an adjustment into a stored record and recomputes every
// derived figure with the same formulas used at generation time. A name-only
// edit leaves the stored figures untouched.
func Recalculate(p *Payroll, req UpdatePayrollRequest) error {
	if !req.changesFigures() {
		if req.FullName != nil {
			p.FullName = strings.TrimSpace(*req.FullName)
		}
		return nil
	}

	rawHours := p.TotalWorkingHours.Add(p.NotAllowedHours)
	if req.TotalWorkingHours != nil {
		rawHours = decimal.NewFromFloat(*req.TotalWorkingHours)
	}
	if req.OfficialWorkingDays != nil {
		p.OfficialWorkingDays = *req.OfficialWorkingDays
	}
	if req.OfficialLeaves != nil {
		p.OfficialLeaves = *req.OfficialLeaves
	}
	if req.AllowedHoursPerDay != nil {
		p.AllowedHoursPerDay = decimal.NewFromFloat(*req.AllowedHoursPerDay).Round(2)
	}
	if req.LateCount != nil {
		p.LateCount = *req.LateCount
	}
	if req.EarlyCount != nil {
		p.EarlyCount = *req.EarlyCount
	}
	if req.AbsentCount != nil {
		p.AbsentCount = *req.AbsentCount
	}
	if req.SalaryCap != nil {
		p.SalaryCap = decimal.NewFromFloat(*req.SalaryCap).Round(2)
	}
	if req.FullName != nil {
		p.FullName = strings.TrimSpace(*req.FullName)
	}

	if rawHours.IsNegative() || p.SalaryCap.IsNegative() {
		return payrollerrors.ErrInvalidMoneyValue
	}
	if !p.AllowedHoursPerDay.IsPositive() {
		return payrollerrors.ErrInvalidAllowedHours
	}
	if p.OfficialLeaves < 0 {
		return payrollerrors.ErrInvalidOfficialLeaves
	}
	for _, n := range []int{p.LateCount, p.EarlyCount, p.AbsentCount} {
		if n < 0 || n > p.OfficialWorkingDays {
			return payrollerrors.ErrInvalidAdjustment
		}
	}

	applyFigures(p, Compute(Inputs{
		RawHours:            rawHours,
		OfficialWorkingDays: p.OfficialWorkingDays,
		AllowedHoursPerDay:  p.AllowedHoursPerDay,
		OfficialLeaves:      p.OfficialLeaves,
		LateCount:           p.LateCount,
		AbsentCount:         p.AbsentCount,
		SalaryCap:           p.SalaryCap,
	}))
	return nil
}

func validateGenerateRequest(
	companyID, actorID string,
	req GeneratePayrollRequest,
) (uuid.UUID, uuid.UUID, uuid.UUID, Policy, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, Policy{}, payrollerrors.ErrInvalidCompanyID
	}

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, Policy{}, payrollerrors.ErrInvalidActorID
	}

	exportUUID, err := uuid.Parse(req.ExportID)
	if err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, Policy{}, payrollerrors.ErrInvalidExportID
	}

	month, err := calendar.ParseMonth(req.Month)
	if err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, Policy{}, payrollerrors.ErrInvalidMonth
	}

	policy := NewPolicy(month, req.SaturdayOffEmployeeIDs, req.OfficialLeaves, decimal.NewFromFloat(req.AllowedHoursPerDay))
	if err := policy.Validate(); err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, Policy{}, err
	}

	return companyUUID, actorUUID, exportUUID, policy, nil
}

func buildQueryFilter(req GetPayrollsFilterRequest) (PayrollQueryFilter, error) {
	var filter PayrollQueryFilter

	if month := strings.TrimSpace(req.Month); month != "" {
		parsed, err := calendar.ParseMonth(month)
		if err != nil {
			return PayrollQueryFilter{}, payrollerrors.ErrInvalidMonth
		}
		v := parsed.String()
		filter.Month = &v
	}
	if code := strings.TrimSpace(req.EmployeeCode); code != "" {
		filter.EmployeeCode = &code
	}

	return filter, nil
}

func mapToResponse(payroll Payroll) PayrollResponse {
	resp := PayrollResponse{
		ID:                     payroll.ID.String(),
		CompanyID:              payroll.CompanyID.String(),
		EmployeeCode:           payroll.EmployeeCode,
		FullName:               payroll.FullName,
		Month:                  payroll.Month,
		SectionFound:           payroll.SectionFound,
		TotalWorkingHours:      payroll.TotalWorkingHours.InexactFloat64(),
		NotAllowedHours:        payroll.NotAllowedHours.InexactFloat64(),
		AllowedHoursPerDay:     payroll.AllowedHoursPerDay.InexactFloat64(),
		OfficialWorkingDays:    payroll.OfficialWorkingDays,
		OfficialLeaves:         payroll.OfficialLeaves,
		AdjustedWorkingDays:    payroll.AdjustedWorkingDays,
		EffectiveAllowanceDays: payroll.EffectiveAllowanceDays,
		LateCount:              payroll.LateCount,
		EarlyCount:             payroll.EarlyCount,
		AbsentCount:            payroll.AbsentCount,
		EffectiveAbsentCount:   payroll.EffectiveAbsentCount,
		SalaryCap:              payroll.SalaryCap.InexactFloat64(),
		HourlyWage:             payroll.HourlyWage.InexactFloat64(),
		DailyAllowanceRate:     payroll.DailyAllowanceRate.InexactFloat64(),
		DailyAllowanceTotal:    payroll.DailyAllowanceTotal.InexactFloat64(),
		HourlySalary:           payroll.HourlySalary.InexactFloat64(),
		GrossSalary:            payroll.GrossSalary.InexactFloat64(),
		LateDates:              nonNil(payroll.LateDates),
		EarlyDates:             nonNil(payroll.EarlyDates),
		AbsentDates:            nonNil(payroll.AbsentDates),
		TableSectionData:       payroll.TableSectionData.Data(),
		CreatedBy:              payroll.CreatedBy.String(),
		CreatedAt:              payroll.CreatedAt.Format(time.RFC3339),
		UpdatedAt:              payroll.UpdatedAt.Format(time.RFC3339),
	}

	if payroll.ExportID != nil {
		v := payroll.ExportID.String()
		resp.ExportID = &v
	}
	if resp.TableSectionData == nil {
		resp.TableSectionData = [][]string{}
	}

	return resp
}

func mapToListResponse(payrolls []Payroll) []PayrollResponse {
	resp := make([]PayrollResponse, len(payrolls))
	for i, payroll := range payrolls {
		resp[i] = mapToResponse(payroll)
	}
	return resp
}

func mapToGenerateResponse(month calendar.Month, m Manifest) GeneratePayrollResponse {
	resp := GeneratePayrollResponse{
		Month:     month.String(),
		Generated: mapToListResponse(m.Generated),
		Skipped:   make([]SkippedEmployeeResponse, len(m.Skipped)),
		Warnings:  make([]GenerationWarningResponse, len(m.Warnings)),
	}
	for i, sk := range m.Skipped {
		resp.Skipped[i] = SkippedEmployeeResponse{EmployeeCode: sk.EmployeeCode, FullName: sk.FullName, Reason: sk.Reason}
	}
	for i, w := range m.Warnings {
		resp.Warnings[i] = GenerationWarningResponse{EmployeeCode: w.EmployeeCode, Message: w.Message}
	}
	return resp
}

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
