package attendance

import (
	"context"
	"database/sql"

	"github.com/connectwithhassan/all-in-one/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Export) error
	FindAllByCompany(ctx context.Context, companyID string) ([]Export, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Export, error)
	Delete(ctx context.Context, companyID, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) Create(ctx context.Context, e *Export) error {
	return r.conn(ctx).Create(e).Error
}

// FindAllByCompany leaves the raw rows out of the listing.
func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]Export, error) {
	var exports []Export
	err := r.conn(ctx).
		Omit("rows").
		Scopes(tenant.Scope(companyID)).
		Order("created_at DESC").
		Find(&exports).Error
	return exports, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Export, error) {
	var e Export
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	res := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Export{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
