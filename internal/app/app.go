package app

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/connectwithhassan/all-in-one/internal/attendance"
	"github.com/connectwithhassan/all-in-one/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Config dibaca sekali dari environment oleh setiap proses (api, worker,
// consumer). Field yang tidak dipakai sebuah proses diabaikan.
type Config struct {
	Postgres             connection.PostgresConfig
	RedisAddr            string
	KafkaBroker          string
	RBACModelPath        string
	RBACPolicyPath       string
	AttendanceHeaderRows int
	OutboxPollInterval   time.Duration
}

func loadConfig() Config {
	return Config{
		Postgres: connection.PostgresConfig{
			Host:     os.Getenv("DB_HOST"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			Port:     getEnv("DB_PORT", "5432"),
			SSLMode:  os.Getenv("DB_SSLMODE"),
		},
		RedisAddr:            getEnv("REDIS_ADDR", "localhost:6379"),
		KafkaBroker:          os.Getenv("KAFKA_BROKER"),
		RBACModelPath:        getEnv("RBAC_MODEL_PATH", "config/rbac/model.conf"),
		RBACPolicyPath:       getEnv("RBAC_POLICY_PATH", "config/rbac/policy.csv"),
		AttendanceHeaderRows: getEnvInt("ATTENDANCE_HEADER_ROWS", attendance.DefaultHeaderRows),
		OutboxPollInterval:   getEnvDuration("OUTBOX_POLL_INTERVAL", 3*time.Second),
	}
}

// BuildApp menyiapkan koneksi, migrasi, lalu mendaftarkan semua route.
func BuildApp(router *gin.Engine) error {
	cfg := loadConfig()

	gormDB, err := connection.ConnectPostgres(cfg.Postgres, connection.DefaultRetry)
	if err != nil {
		return err
	}
	if err := migrate(gormDB); err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedis(cfg.RedisAddr, connection.DefaultRetry)
	if err != nil {
		return err
	}

	return registerModules(router, sqlDB, gormDB, redisClient, cfg)
}

// openDatabase dipakai worker dan consumer; migrasi hanya dijalankan api.
func openDatabase(cfg Config) (*gorm.DB, *sql.DB, error) {
	gormDB, err := connection.ConnectPostgres(cfg.Postgres, connection.DefaultRetry)
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, nil, err
	}
	return gormDB, sqlDB, nil
}

// signalContext selesai saat SIGINT atau SIGTERM diterima.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
