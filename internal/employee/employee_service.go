package employee

import (
	"context"
	"encoding/json"
	"time"

	employeeerrors "github.com/connectwithhassan/all-in-one/internal/employee/errors"
	"github.com/connectwithhassan/all-in-one/internal/payroll"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	EmployeeOptionsKeyPrefix = "employees:options:"
	EmployeeOptionsTTL       = 1 * time.Hour
)

func GetEmployeeOptionsKey(companyID string) string {
	return EmployeeOptionsKeyPrefix + companyID
}

type Service interface {
	GetAll(ctx context.Context, companyID string) ([]EmployeeResponse, error)
	GetOptions(ctx context.Context, companyID string) ([]EmployeeOptionResponse, error)
	GetByID(ctx context.Context, companyID, id string) (EmployeeResponse, error)
	InvalidateOptions(ctx context.Context, companyID string) error
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) GetAll(
	ctx context.Context,
	companyID string,
) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested", zap.String("company_id", companyID))
	employees, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(employees), nil
}

func (s *service) GetOptions(ctx context.Context, companyID string) ([]EmployeeOptionResponse, error) {
	cacheKey := GetEmployeeOptionsKey(companyID)

	// 1. Cek Redis
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []EmployeeOptionResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// 2. Singleflight supaya form generate payroll yang dibuka bersamaan cukup satu query
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		employees, err := s.repo.FindOptionsByCompany(ctx, companyID)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := mapToOptionResponse(employees)

		// 3. Simpan ke Redis
		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, string(jsonData), EmployeeOptionsTTL)
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]EmployeeOptionResponse), nil
}

func (s *service) GetByID(
	ctx context.Context,
	companyID, id string,
) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	empl, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		s.logger.Warn("get employee by id failed",
			zap.String("company_id", companyID),
			zap.String("employee_id", id),
			zap.Error(err),
		)
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

// InvalidateOptions drops the cached picker list, e.g. after the directory
// was changed upstream.
func (s *service) InvalidateOptions(ctx context.Context, companyID string) error {
	if s.rdb == nil {
		return nil
	}

	cacheKey := GetEmployeeOptionsKey(companyID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", cacheKey),
		)
		return err
	}
	return nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	wage := payroll.WagePolicy{
		EmployeeCode: empl.EmployeeCode,
		FullName:     empl.FullName,
		SalaryCap:    empl.SalaryCap,
		InTime:       empl.InTime,
		OutTime:      empl.OutTime,
	}
	missing := wage.MissingFields()
	if missing == nil {
		missing = []string{}
	}

	resp := EmployeeResponse{
		ID:            empl.ID.String(),
		CompanyID:     empl.CompanyID.String(),
		EmployeeCode:  empl.EmployeeCode,
		FullName:      empl.FullName,
		Email:         empl.Email,
		InTime:        empl.InTime,
		OutTime:       empl.OutTime,
		Payable:       len(missing) == 0,
		MissingFields: missing,
	}
	if empl.SalaryCap != nil {
		v := empl.SalaryCap.InexactFloat64()
		resp.SalaryCap = &v
	}
	return resp
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		res[i] = mapToResponse(e)
	}
	return res
}

func mapToOptionResponse(employees []Employee) []EmployeeOptionResponse {
	res := make([]EmployeeOptionResponse, len(employees))
	for i, e := range employees {
		res[i] = EmployeeOptionResponse{
			ID:           e.ID.String(),
			EmployeeCode: e.EmployeeCode,
			FullName:     e.FullName,
		}
	}
	return res
}
