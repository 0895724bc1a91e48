package connection

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type PostgresConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
}

func (c PostgresConfig) DSN() string {
	sslmode := c.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, sslmode,
	)
}

// RetryPolicy dipakai saat service lain (postgres, redis, kafka) belum siap
// ketika container baru naik.
type RetryPolicy struct {
	Attempts int
	Delay    time.Duration
}

var DefaultRetry = RetryPolicy{Attempts: 5, Delay: 5 * time.Second}

func withRetry(target string, policy RetryPolicy, fn func() error) error {
	logger := zap.L().Named("connection")
	attempts := max(policy.Attempts, 1)

	var lastErr error
	for i := 1; i <= attempts; i++ {
		if lastErr = fn(); lastErr == nil {
			logger.Info("connected", zap.String("target", target), zap.Int("attempt", i))
			return nil
		}
		logger.Warn("connect failed",
			zap.String("target", target),
			zap.Int("attempt", i),
			zap.Int("max_attempts", attempts),
			zap.Error(lastErr),
		)
		if i < attempts {
			time.Sleep(policy.Delay)
		}
	}
	return fmt.Errorf("%s unreachable after %d attempts: %w", target, attempts, lastErr)
}

func ConnectPostgres(cfg PostgresConfig, policy RetryPolicy) (*gorm.DB, error) {
	var db *gorm.DB
	err := withRetry("postgres", policy, func() error {
		conn, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		})
		if err != nil {
			return err
		}
		sqlDB, err := conn.DB()
		if err != nil {
			return err
		}
		if err := sqlDB.Ping(); err != nil {
			return err
		}

		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxLifetime(time.Hour)
		db = conn
		return nil
	})
	return db, err
}

func ConnectRedis(addr string, policy RetryPolicy) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	err := withRetry("redis", policy, func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		return rdb.Ping(ctx).Err()
	})
	if err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return rdb, nil
}

// ConnectKafkaWriter menunggu broker menjawab lalu mengembalikan writer
// tanpa Topic tetap; tiap message membawa Topic sendiri.
func ConnectKafkaWriter(broker string, policy RetryPolicy) (*kafkago.Writer, error) {
	err := withRetry("kafka", policy, func() error {
		conn, err := kafkago.Dial("tcp", broker)
		if err != nil {
			return err
		}
		defer conn.Close()
		_, err = conn.Brokers()
		return err
	})
	if err != nil {
		return nil, err
	}
	return &kafkago.Writer{
		Addr:                   kafkago.TCP(broker),
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		AllowAutoTopicCreation: true,
	}, nil
}
