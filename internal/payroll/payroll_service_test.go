package payroll_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/connectwithhassan/all-in-one/internal/attendance"
	"github.com/connectwithhassan/all-in-one/internal/events"
	"github.com/connectwithhassan/all-in-one/internal/messaging/kafka"
	"github.com/connectwithhassan/all-in-one/internal/payroll"
	payrollerrors "github.com/connectwithhassan/all-in-one/internal/payroll/errors"
	payrollMock "github.com/connectwithhassan/all-in-one/internal/payroll/mock"
	"github.com/connectwithhassan/all-in-one/internal/shared/apperror"
	"github.com/connectwithhassan/all-in-one/internal/shared/contextutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type fakeOutboxRepository struct {
	events   []kafka.OutboxEvent
	createFn func(ctx context.Context, event kafka.OutboxEvent) error
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository {
	return f
}

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.createFn != nil {
		return f.createFn(ctx, event)
	}
	f.events = append(f.events, event)
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error {
	return nil
}

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

func (f *fakeOutboxRepository) PurgeSent(ctx context.Context, olderThan time.Duration) (int64, error) {
	return 0, nil
}

type fakeTableSource struct {
	table attendance.Table
	err   error
}

func (f *fakeTableSource) GetTable(ctx context.Context, companyID, exportID string) (attendance.Table, error) {
	return f.table, f.err
}

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	repo    *payrollMock.MockRepository
	outbox  *fakeOutboxRepository
	tables  *fakeTableSource
	service payroll.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := payrollMock.NewMockRepository(ctrl)
	outbox := &fakeOutboxRepository{}
	tables := &fakeTableSource{table: marchTable()}

	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		repo:    repo,
		outbox:  outbox,
		tables:  tables,
		service: payroll.NewServiceWithOutbox(db, repo, tables, outbox),
	}
}

func generateRequest() payroll.GeneratePayrollRequest {
	return payroll.GeneratePayrollRequest{
		ExportID:               uuid.NewString(),
		Month:                  "2024-03",
		SaturdayOffEmployeeIDs: []string{"104"},
		OfficialLeaves:         0,
		AllowedHoursPerDay:     8,
	}
}

func TestPayrollService_Generate_Batch(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := contextutil.WithRequestID(context.Background(), "req-1")
	companyID := uuid.NewString()
	actorID := uuid.NewString()
	existingID := uuid.New()
	existingCreatedAt := time.Date(2024, 3, 31, 10, 0, 0, 0, time.UTC)

	deps.repo.EXPECT().
		FindWagePolicies(ctx, companyID, nil).
		Return(batchWages(), nil)

	deps.sqlMock.ExpectBegin()
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)

	deps.repo.EXPECT().
		FindByEmployeeMonth(ctx, companyID, gomock.Any(), "2024-03").
		DoAndReturn(func(ctx context.Context, companyID, code, month string) (*payroll.Payroll, error) {
			if code == "101" {
				return &payroll.Payroll{ID: existingID, CreatedAt: existingCreatedAt}, nil
			}
			return nil, gorm.ErrRecordNotFound
		}).
		Times(4)

	deps.repo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, p *payroll.Payroll) error {
			assert.Equal(t, existingID, p.ID)
			assert.Equal(t, existingCreatedAt, p.CreatedAt)
			assert.Equal(t, "101", p.EmployeeCode)
			return nil
		})

	created := []string{}
	deps.repo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, p *payroll.Payroll) error {
			assert.NotEqual(t, uuid.Nil, p.ID)
			assert.Equal(t, companyID, p.CompanyID.String())
			assert.Equal(t, actorID, p.CreatedBy.String())
			require.NotNil(t, p.ExportID)
			created = append(created, p.EmployeeCode)
			return nil
		}).
		Times(3)
	deps.sqlMock.ExpectCommit()

	resp, err := deps.service.Generate(ctx, companyID, actorID, generateRequest())

	require.NoError(t, err)
	assert.Equal(t, "2024-03", resp.Month)
	assert.Len(t, resp.Generated, 4)
	assert.Equal(t, []string{"103", "104", "105"}, created)
	require.Len(t, resp.Skipped, 1)
	assert.Equal(t, payroll.SkippedEmployeeResponse{EmployeeCode: "102", FullName: "Employee 102", Reason: "Salary Cap missing"}, resp.Skipped[0])
	assert.Len(t, resp.Warnings, 2)
	assert.Equal(t, 32850.0, resp.Generated[0].GrossSalary)
	assert.Equal(t, []string{"03/02/2024", "03/04/2024"}, resp.Generated[0].AbsentDates)

	require.Len(t, deps.outbox.events, 4)
	for _, e := range deps.outbox.events {
		assert.Equal(t, events.PayrollGeneratedTopic, e.Topic)
		assert.Equal(t, events.EventTypePayrollGenerated, e.EventType)
		assert.Equal(t, "req-1", e.RequestID)
		assert.Equal(t, kafka.OutboxStatusPending, e.Status)
	}

	var first events.PayrollGeneratedEvent
	require.NoError(t, json.Unmarshal(deps.outbox.events[0].Payload, &first))
	assert.Equal(t, existingID.String(), first.PayrollID)
	assert.Equal(t, "32850.00", first.GrossSalary)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_Generate_Single(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	actorID := uuid.NewString()

	t.Run("single employee uses the batch path", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := generateRequest()
		code := " 104 "
		req.EmployeeCode = &code

		deps.repo.EXPECT().
			FindWagePolicies(ctx, companyID, gomock.Any()).
			DoAndReturn(func(ctx context.Context, companyID string, employeeCode *string) ([]payroll.WagePolicy, error) {
				require.NotNil(t, employeeCode)
				assert.Equal(t, "104", *employeeCode)
				return []payroll.WagePolicy{wage("104", "33600")}, nil
			})
		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByEmployeeMonth(ctx, companyID, "104", "2024-03").Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.sqlMock.ExpectCommit()

		resp, err := deps.service.Generate(ctx, companyID, actorID, req)

		require.NoError(t, err)
		require.Len(t, resp.Generated, 1)
		assert.Equal(t, 28850.0, resp.Generated[0].GrossSalary)
		assert.Equal(t, 21, resp.Generated[0].OfficialWorkingDays)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := generateRequest()
		code := "999"
		req.EmployeeCode = &code

		deps.repo.EXPECT().FindWagePolicies(ctx, companyID, gomock.Any()).Return([]payroll.WagePolicy{}, nil)

		_, err := deps.service.Generate(ctx, companyID, actorID, req)

		assert.ErrorIs(t, err, payrollerrors.ErrEmployeeNotFound)
	})

	t.Run("employee missing wage fields", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := generateRequest()
		code := "102"
		req.EmployeeCode = &code

		deps.repo.EXPECT().FindWagePolicies(ctx, companyID, gomock.Any()).Return([]payroll.WagePolicy{wage("102", "")}, nil)

		_, err := deps.service.Generate(ctx, companyID, actorID, req)

		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
		assert.Equal(t, "Salary Cap missing", httpErr.Details)
		assert.Empty(t, deps.outbox.events)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestPayrollService_Generate_Rejects(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	actorID := uuid.NewString()

	tests := []struct {
		name    string
		company string
		actor   string
		mutate  func(r *payroll.GeneratePayrollRequest)
		want    error
	}{
		{"invalid company", "x", actorID, func(r *payroll.GeneratePayrollRequest) {}, payrollerrors.ErrInvalidCompanyID},
		{"invalid actor", companyID, "x", func(r *payroll.GeneratePayrollRequest) {}, payrollerrors.ErrInvalidActorID},
		{"invalid export", companyID, actorID, func(r *payroll.GeneratePayrollRequest) { r.ExportID = "x" }, payrollerrors.ErrInvalidExportID},
		{"invalid month", companyID, actorID, func(r *payroll.GeneratePayrollRequest) { r.Month = "March" }, payrollerrors.ErrInvalidMonth},
		{"negative leaves", companyID, actorID, func(r *payroll.GeneratePayrollRequest) { r.OfficialLeaves = -1 }, payrollerrors.ErrInvalidOfficialLeaves},
		{"zero hours", companyID, actorID, func(r *payroll.GeneratePayrollRequest) { r.AllowedHoursPerDay = 0 }, payrollerrors.ErrInvalidAllowedHours},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := setupServiceTest(t)
			req := generateRequest()
			tt.mutate(&req)

			_, err := deps.service.Generate(ctx, tt.company, tt.actor, req)

			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("export not readable", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.tables.err = errors.New("export gone")

		_, err := deps.service.Generate(ctx, companyID, actorID, generateRequest())

		assert.EqualError(t, err, "export gone")
	})
}

func TestPayrollService_RequestGeneration(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "req-async")
	companyID := uuid.NewString()
	actorID := uuid.NewString()

	t.Run("queues an outbox event", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := generateRequest()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		resp, err := deps.service.RequestGeneration(ctx, companyID, actorID, req)

		require.NoError(t, err)
		assert.Equal(t, payroll.GenerationStatusQueued, resp.Status)
		require.Len(t, deps.outbox.events, 1)

		event := deps.outbox.events[0]
		assert.Equal(t, resp.RequestID, event.ID)
		assert.Equal(t, events.PayrollGenerationRequestedTopic, event.Topic)

		var payload events.PayrollGenerationRequestedEvent
		require.NoError(t, json.Unmarshal(event.Payload, &payload))
		assert.Equal(t, companyID, payload.CompanyID)
		assert.Equal(t, actorID, payload.RequestedBy)
		assert.Equal(t, req.ExportID, payload.ExportID)
		assert.Equal(t, []string{"104"}, payload.SaturdayOffEmployeeIDs)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("rejects invalid policy before queueing", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := generateRequest()
		req.Month = ""

		_, err := deps.service.RequestGeneration(ctx, companyID, actorID, req)

		assert.ErrorIs(t, err, payrollerrors.ErrInvalidMonth)
		assert.Empty(t, deps.outbox.events)
	})

	t.Run("no outbox configured", func(t *testing.T) {
		deps := setupServiceTest(t)
		svc := payroll.NewService(deps.db, deps.repo, deps.tables)

		_, err := svc.RequestGeneration(ctx, companyID, actorID, generateRequest())

		assert.ErrorIs(t, err, payrollerrors.ErrGenerationQueueUnavailable)
	})
}

func storedPayroll(companyID uuid.UUID) *payroll.Payroll {
	p := &payroll.Payroll{
		ID:                  uuid.New(),
		CompanyID:           companyID,
		EmployeeCode:        "101",
		FullName:            "Employee 101",
		Month:               "2024-03",
		SectionFound:        true,
		AllowedHoursPerDay:  decimal.NewFromInt(8),
		OfficialWorkingDays: 26,
		LateCount:           1,
		EarlyCount:          1,
		AbsentCount:         2,
		SalaryCap:           decimal.NewFromInt(41600),
		LateDates:           datatypes.NewJSONSlice([]string{"03/01/2024"}),
		EarlyDates:          datatypes.NewJSONSlice([]string{"03/05/2024"}),
		AbsentDates:         datatypes.NewJSONSlice([]string{"03/02/2024", "03/04/2024"}),
		TableSectionData:    datatypes.NewJSONType([][]string{{"User ID", "101"}}),
	}
	p.TotalWorkingHours = decimal.RequireFromString("120.5")
	return p
}

func TestPayrollService_Update(t *testing.T) {
	ctx := context.Background()
	companyUUID := uuid.New()
	companyID := companyUUID.String()

	t.Run("recomputes derived figures", func(t *testing.T) {
		deps := setupServiceTest(t)
		stored := storedPayroll(companyUUID)
		absent := 6
		salaryCap := 52000.0

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, stored.ID.String()).Return(stored, nil)
		deps.repo.EXPECT().Update(ctx, stored).Return(nil)
		deps.sqlMock.ExpectCommit()

		resp, err := deps.service.Update(ctx, companyID, stored.ID.String(), payroll.UpdatePayrollRequest{
			AbsentCount: &absent,
			SalaryCap:   &salaryCap,
		})

		require.NoError(t, err)
		// hourly 52000/208/2 = 125, daily 1000, adjusted 26 - (6 - 2) = 22
		assert.Equal(t, 125.0, resp.HourlyWage)
		assert.Equal(t, 1000.0, resp.DailyAllowanceRate)
		assert.Equal(t, 22, resp.AdjustedWorkingDays)
		assert.Equal(t, 22, resp.EffectiveAllowanceDays)
		assert.Equal(t, 15062.5, resp.HourlySalary)
		assert.Equal(t, 37062.5, resp.GrossSalary)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("name-only edit keeps stored figures", func(t *testing.T) {
		deps := setupServiceTest(t)
		stored := storedPayroll(companyUUID)
		stored.HourlySalary = decimal.RequireFromString("1234.57")
		stored.GrossSalary = decimal.RequireFromString("9876.54")
		name := "  Alice Rahman "

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, stored.ID.String()).Return(stored, nil)
		deps.repo.EXPECT().Update(ctx, stored).Return(nil)
		deps.sqlMock.ExpectCommit()

		resp, err := deps.service.Update(ctx, companyID, stored.ID.String(), payroll.UpdatePayrollRequest{FullName: &name})

		require.NoError(t, err)
		assert.Equal(t, "Alice Rahman", resp.FullName)
		assert.Equal(t, 1234.57, resp.HourlySalary)
		assert.Equal(t, 9876.54, resp.GrossSalary)
		assert.Equal(t, 120.5, resp.TotalWorkingHours)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("counts above official days are rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		stored := storedPayroll(companyUUID)
		late := 27

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, stored.ID.String()).Return(stored, nil)
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Update(ctx, companyID, stored.ID.String(), payroll.UpdatePayrollRequest{LateCount: &late})

		assert.ErrorIs(t, err, payrollerrors.ErrInvalidAdjustment)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.NewString()

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, id).Return(nil, gorm.ErrRecordNotFound)
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Update(ctx, companyID, id, payroll.UpdatePayrollRequest{})

		assert.ErrorIs(t, err, payrollerrors.ErrPayrollNotFound)
	})
}

func TestRecalculate_KeepsClampedHours(t *testing.T) {
	p := storedPayroll(uuid.New())
	p.TotalWorkingHours = decimal.NewFromInt(208)
	p.NotAllowedHours = decimal.NewFromInt(2)
	salaryCap := 60000.0

	require.NoError(t, payroll.Recalculate(p, payroll.UpdatePayrollRequest{SalaryCap: &salaryCap}))

	assert.Equal(t, "208.00", p.TotalWorkingHours.StringFixed(2))
	assert.Equal(t, "2.00", p.NotAllowedHours.StringFixed(2))
	assert.Equal(t, "60000.00", p.GrossSalary.StringFixed(2))
}

func TestPayrollService_GetAll(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	companyUUID := uuid.New()

	deps.repo.EXPECT().
		FindAllByCompany(ctx, companyUUID.String(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, companyID string, filter payroll.PayrollQueryFilter) ([]payroll.Payroll, error) {
			require.NotNil(t, filter.Month)
			assert.Equal(t, "2024-03", *filter.Month)
			assert.Nil(t, filter.EmployeeCode)
			return []payroll.Payroll{*storedPayroll(companyUUID)}, nil
		})

	resp, err := deps.service.GetAll(ctx, companyUUID.String(), payroll.GetPayrollsFilterRequest{Month: "2024-03"})

	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "101", resp[0].EmployeeCode)
	assert.Equal(t, []string{"03/01/2024"}, resp[0].LateDates)

	_, err = deps.service.GetAll(ctx, companyUUID.String(), payroll.GetPayrollsFilterRequest{Month: "03/2024"})
	assert.ErrorIs(t, err, payrollerrors.ErrInvalidMonth)
}

func TestPayrollService_GetByID(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	companyID := uuid.NewString()

	_, err := deps.service.GetByID(ctx, companyID, "bad-id")
	assert.ErrorIs(t, err, payrollerrors.ErrInvalidPayrollID)

	id := uuid.NewString()
	deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, id).Return(nil, gorm.ErrRecordNotFound)

	_, err = deps.service.GetByID(ctx, companyID, id)
	assert.ErrorIs(t, err, payrollerrors.ErrPayrollNotFound)
}

func TestPayrollService_Delete(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	id := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Delete(ctx, companyID, id).Return(nil)
		deps.sqlMock.ExpectCommit()

		assert.NoError(t, deps.service.Delete(ctx, companyID, id))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Delete(ctx, companyID, id).Return(gorm.ErrRecordNotFound)
		deps.sqlMock.ExpectRollback()

		assert.ErrorIs(t, deps.service.Delete(ctx, companyID, id), payrollerrors.ErrPayrollNotFound)
	})
}

func TestPayrollService_DeleteAll(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	companyID := uuid.NewString()

	deps.sqlMock.ExpectBegin()
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().
		DeleteAll(ctx, companyID, gomock.Any()).
		DoAndReturn(func(ctx context.Context, companyID string, filter payroll.PayrollQueryFilter) (int64, error) {
			assert.Nil(t, filter.Month)
			require.NotNil(t, filter.EmployeeCode)
			assert.Equal(t, "101", *filter.EmployeeCode)
			return 3, nil
		})
	deps.sqlMock.ExpectCommit()

	resp, err := deps.service.DeleteAll(ctx, companyID, payroll.GetPayrollsFilterRequest{EmployeeCode: " 101 "})

	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.DeletedCount)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestPayrollService_ExportCSV(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	companyUUID := uuid.New()
	stored := storedPayroll(companyUUID)
	stored.GrossSalary = decimal.RequireFromString("32850")

	deps.repo.EXPECT().
		FindAllByCompany(ctx, companyUUID.String(), gomock.Any()).
		Return([]payroll.Payroll{*stored}, nil)

	content, err := deps.service.ExportCSV(ctx, companyUUID.String(), payroll.GetPayrollsFilterRequest{Month: "2024-03"})

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "employee_code,full_name,month,section_found,total_working_hours"))
	assert.True(t, strings.HasPrefix(lines[1], "101,Employee 101,2024-03,true,120.50,0.00,26"))
	assert.True(t, strings.HasSuffix(lines[1], ",32850.00"))
}

func TestPayrollService_GetPayslip(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	companyUUID := uuid.New()
	stored := storedPayroll(companyUUID)

	deps.repo.EXPECT().FindByIDAndCompany(ctx, companyUUID.String(), stored.ID.String()).Return(stored, nil)

	file, err := deps.service.GetPayslip(ctx, companyUUID.String(), stored.ID.String())

	require.NoError(t, err)
	assert.Equal(t, "payslip_101_2024-03.pdf", file.Filename)
	assert.True(t, bytes.HasPrefix(file.Content, []byte("%PDF-")))

	_, err = deps.service.GetPayslip(ctx, companyUUID.String(), "nope")
	assert.ErrorIs(t, err, payrollerrors.ErrInvalidPayrollID)
}
