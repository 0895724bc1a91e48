package payroll

import (
	"context"
	"database/sql"

	"github.com/connectwithhassan/all-in-one/internal/tenant"

	"gorm.io/gorm"
)

type PayrollQueryFilter struct {
	Month        *string
	EmployeeCode *string
}

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, payroll *Payroll) error
	Update(ctx context.Context, payroll *Payroll) error
	FindAllByCompany(ctx context.Context, companyID string, filter PayrollQueryFilter) ([]Payroll, error)
	FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Payroll, error)
	FindByEmployeeMonth(ctx context.Context, companyID, employeeCode, month string) (*Payroll, error)
	Delete(ctx context.Context, companyID string, id string) error
	DeleteAll(ctx context.Context, companyID string, filter PayrollQueryFilter) (int64, error)
	FindWagePolicies(ctx context.Context, companyID string, employeeCode *string) ([]WagePolicy, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

// conn runs statements on the bound transaction when there is one.
func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) Create(ctx context.Context, payroll *Payroll) error {
	return r.conn(ctx).Create(payroll).Error
}

func (r *repository) Update(ctx context.Context, payroll *Payroll) error {
	return r.conn(ctx).Save(payroll).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string, filter PayrollQueryFilter) ([]Payroll, error) {
	var payrolls []Payroll
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID), filterScope(filter)).
		Order("month DESC").
		Order("employee_code ASC").
		Find(&payrolls).Error
	return payrolls, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Payroll, error) {
	var payroll Payroll
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&payroll, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &payroll, nil
}

func (r *repository) FindByEmployeeMonth(ctx context.Context, companyID, employeeCode, month string) (*Payroll, error) {
	var payroll Payroll
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_code = ? AND month = ?", employeeCode, month).
		First(&payroll).Error
	if err != nil {
		return nil, err
	}
	return &payroll, nil
}

func (r *repository) Delete(ctx context.Context, companyID string, id string) error {
	res := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Payroll{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteAll removes every record of the company matching filter and reports
// how many rows went away.
func (r *repository) DeleteAll(ctx context.Context, companyID string, filter PayrollQueryFilter) (int64, error) {
	res := r.conn(ctx).
		Scopes(tenant.Scope(companyID), filterScope(filter)).
		Delete(&Payroll{})
	return res.RowsAffected, res.Error
}

func (r *repository) FindWagePolicies(ctx context.Context, companyID string, employeeCode *string) ([]WagePolicy, error) {
	db := r.conn(ctx).
		Model(&WageEmployee{}).
		Scopes(tenant.Scope(companyID)).
		Where("deleted_at IS NULL").
		Where("employee_code <> ''")
	if employeeCode != nil && *employeeCode != "" {
		db = db.Where("employee_code = ?", *employeeCode)
	}

	var rows []WageEmployee
	if err := db.Order("employee_code ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	policies := make([]WagePolicy, len(rows))
	for i, row := range rows {
		policies[i] = row.WagePolicy()
	}
	return policies, nil
}

func filterScope(filter PayrollQueryFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.Month != nil && *filter.Month != "" {
			db = db.Where("month = ?", *filter.Month)
		}
		if filter.EmployeeCode != nil && *filter.EmployeeCode != "" {
			db = db.Where("employee_code = ?", *filter.EmployeeCode)
		}
		return db
	}
}
