package app

import (
	"database/sql"

	"github.com/connectwithhassan/all-in-one/internal/attendance"
	"github.com/connectwithhassan/all-in-one/internal/employee"
	"github.com/connectwithhassan/all-in-one/internal/messaging/kafka"
	"github.com/connectwithhassan/all-in-one/internal/middleware"
	"github.com/connectwithhassan/all-in-one/internal/payroll"
	"github.com/connectwithhassan/all-in-one/internal/rbac"
	"github.com/connectwithhassan/all-in-one/internal/rbac/infra"
	"github.com/connectwithhassan/all-in-one/internal/rbac/rbac_http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	cfg Config,
) error {
	logger := zap.L()

	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	payrollRepo := payroll.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(cfg.RBACModelPath, cfg.RBACPolicyPath)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer, logger)

	// --- Services ---
	attendanceService := attendance.NewService(db, attendanceRepo, cfg.AttendanceHeaderRows, logger)
	employeeService := employee.NewService(employeeRepo, rdb, logger)
	payrollService := payroll.NewServiceWithOutbox(db, payrollRepo, attendanceService, outboxRepo, logger)

	// --- Handlers ---
	attendanceHandler := attendance.NewHandler(attendanceService)
	employeeHandler := employee.NewHandler(employeeService, logger)
	payrollHandler := payroll.NewHandlerWithRedis(payrollService, rdb)
	rbacHandler := rbac.NewHandler(rbacService)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())
	api := router.Group("/api/v1")
	{
		attendance.RegisterRoutes(api, attendanceHandler, rbacService)
		employee.RegisterRoutes(api, employeeHandler, rbacService, logger)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, rdb)
		rbac_http.RegisterRoutes(api, rbacHandler, rbacService)
	}

	return nil
}
