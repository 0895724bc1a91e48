package employee_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/connectwithhassan/all-in-one/internal/employee"
	employeeerrors "github.com/connectwithhassan/all-in-one/internal/employee/errors"
	employeeMock "github.com/connectwithhassan/all-in-one/internal/employee/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	service   employee.Service
	repo      *employeeMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	dbRedis, redisMock := redismock.NewClientMock()
	repo := employeeMock.NewMockRepository(ctrl)

	return &serviceDeps{
		service:   employee.NewService(repo, dbRedis),
		repo:      repo,
		redismock: redisMock,
	}
}

func strPtr(v string) *string { return &v }

func TestEmployeeService_GetAll(t *testing.T) {
	deps := setupServiceTest(t)

	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("success - payable flag follows wage fields", func(t *testing.T) {
		salaryCap := decimal.NewFromInt(60000)
		mockEmployees := []employee.Employee{
			{ID: uuid.New(), EmployeeCode: "101", FullName: "Andi", SalaryCap: &salaryCap, InTime: strPtr("09:00"), OutTime: strPtr("18:00")},
			{ID: uuid.New(), EmployeeCode: "102", FullName: "Budi", InTime: strPtr("09:00")},
		}

		deps.repo.EXPECT().
			FindAllByCompany(ctx, companyID).
			Return(mockEmployees, nil).
			Times(1)

		resp, err := deps.service.GetAll(ctx, companyID)

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.True(t, resp[0].Payable)
		assert.Empty(t, resp[0].MissingFields)
		assert.Equal(t, 60000.0, *resp[0].SalaryCap)
		assert.False(t, resp[1].Payable)
		assert.Equal(t, []string{"Salary Cap", "Out Time"}, resp[1].MissingFields)
		assert.Nil(t, resp[1].SalaryCap)
	})

	t.Run("error repository", func(t *testing.T) {
		deps.repo.EXPECT().
			FindAllByCompany(ctx, companyID).
			Return(nil, errors.New("db error"))

		resp, err := deps.service.GetAll(ctx, companyID)

		assert.Error(t, err)
		assert.Nil(t, resp)
	})
}

func TestEmployeeService_GetOptions(t *testing.T) {
	ctx := context.Background()

	t.Run("Hit Cache - Harus ambil data dari Redis", func(t *testing.T) {
		deps := setupServiceTest(t)
		companyID := uuid.New().String()

		expectedResp := []employee.EmployeeOptionResponse{
			{ID: uuid.New().String(), EmployeeCode: "101", FullName: "Caca"},
		}
		jsonResp, _ := json.Marshal(expectedResp)

		deps.redismock.ExpectGet(employee.GetEmployeeOptionsKey(companyID)).SetVal(string(jsonResp))
		deps.repo.EXPECT().FindOptionsByCompany(gomock.Any(), gomock.Any()).Times(0)

		resp, err := deps.service.GetOptions(ctx, companyID)

		assert.NoError(t, err)
		assert.Equal(t, expectedResp, resp)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("Miss Cache - Harus ambil dari DB dan simpan ke Redis", func(t *testing.T) {
		deps := setupServiceTest(t)
		companyID := uuid.New().String()
		cacheKey := employee.GetEmployeeOptionsKey(companyID)

		id := uuid.New()
		mockEmployees := []employee.Employee{
			{ID: id, EmployeeCode: "102", FullName: "Deni"},
		}
		expected := []employee.EmployeeOptionResponse{
			{ID: id.String(), EmployeeCode: "102", FullName: "Deni"},
		}
		payload, _ := json.Marshal(expected)

		deps.redismock.ExpectGet(cacheKey).RedisNil()
		deps.repo.EXPECT().
			FindOptionsByCompany(gomock.Any(), companyID).
			Return(mockEmployees, nil).
			Times(1)
		deps.redismock.ExpectSet(cacheKey, string(payload), employee.EmployeeOptionsTTL).SetVal("OK")

		resp, err := deps.service.GetOptions(ctx, companyID)

		assert.NoError(t, err)
		assert.Equal(t, expected, resp)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("Database Error - Harus mengembalikan error", func(t *testing.T) {
		deps := setupServiceTest(t)
		companyID := uuid.New().String()

		deps.redismock.ExpectGet(employee.GetEmployeeOptionsKey(companyID)).RedisNil()
		deps.repo.EXPECT().
			FindOptionsByCompany(gomock.Any(), companyID).
			Return(nil, errors.New("database connection lost")).
			Times(1)

		resp, err := deps.service.GetOptions(ctx, companyID)

		assert.Error(t, err)
		assert.Nil(t, resp)
		assert.Contains(t, err.Error(), "database connection lost")
	})

	t.Run("Tanpa Redis - langsung ke DB", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := employeeMock.NewMockRepository(ctrl)
		svc := employee.NewService(repo, nil)
		companyID := uuid.New().String()

		repo.EXPECT().
			FindOptionsByCompany(gomock.Any(), companyID).
			Return([]employee.Employee{}, nil)

		resp, err := svc.GetOptions(ctx, companyID)

		assert.NoError(t, err)
		assert.Empty(t, resp)
	})
}

func TestEmployeeService_GetByID(t *testing.T) {
	deps := setupServiceTest(t)

	ctx := context.Background()
	companyID := uuid.New().String()
	targetID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		deps.repo.EXPECT().
			FindByIDAndCompany(ctx, companyID, targetID).
			Return(&employee.Employee{ID: uuid.MustParse(targetID), EmployeeCode: "101", FullName: "HR"}, nil).
			Times(1)

		resp, err := deps.service.GetByID(ctx, companyID, targetID)

		assert.NoError(t, err)
		assert.Equal(t, targetID, resp.ID)
		assert.Equal(t, "101", resp.EmployeeCode)
	})

	t.Run("not found", func(t *testing.T) {
		deps.repo.EXPECT().
			FindByIDAndCompany(ctx, companyID, targetID).
			Return(nil, gorm.ErrRecordNotFound)

		resp, err := deps.service.GetByID(ctx, companyID, targetID)

		assert.Empty(t, resp.ID)
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := deps.service.GetByID(ctx, companyID, "not-a-uuid")

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
	})
}

func TestEmployeeService_InvalidateOptions(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	companyID := uuid.New().String()

	deps.redismock.ExpectDel(employee.GetEmployeeOptionsKey(companyID)).SetVal(1)

	assert.NoError(t, deps.service.InvalidateOptions(ctx, companyID))
	assert.NoError(t, deps.redismock.ExpectationsWereMet())
}
