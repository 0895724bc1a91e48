package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/connectwithhassan/all-in-one/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	IdempotencyHeader = "Idempotency-Key"

	idempotencyCacheKey = "idempotency_cache_key"
	idempotencyLockKey  = "idempotency_lock_key"

	idempotencyLockTTL   = 30 * time.Second
	idempotencyResultTTL = 24 * time.Hour
)

// Idempotency menahan POST ganda dengan Idempotency-Key yang sama.
// Hasil yang sudah tersimpan dikembalikan ulang, request yang masih
// berjalan ditolak 409. Redis yang down tidak memblokir request.
func Idempotency(rdb redis.Cmdable) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyHeader)
		if key == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), actorID(c), key)
		lockKey := cacheKey + ":lock"

		val, err := rdb.Get(ctx, cacheKey).Result()
		switch {
		case err == nil:
			var cached any
			if json.Unmarshal([]byte(val), &cached) == nil {
				response.Success(c, http.StatusOK, cached, nil)
				c.Abort()
				return
			}
		case !errors.Is(err, redis.Nil):
			zap.L().Warn("idempotency cache unavailable", zap.String("idempotency_key", key), zap.Error(err))
			c.Next()
			return
		}

		// lock ber-TTL supaya proses yang crash tidak mengunci key selamanya
		acquired, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			zap.L().Warn("idempotency lock unavailable", zap.String("idempotency_key", key), zap.Error(err))
			c.Next()
			return
		}
		if !acquired {
			response.Error(c, http.StatusConflict, "PROCESSING", "Request dengan key yang sama masih diproses", nil)
			c.Abort()
			return
		}

		c.Set(idempotencyCacheKey, cacheKey)
		c.Set(idempotencyLockKey, lockKey)
		c.Next()
	}
}

// StoreIdempotentResult menyimpan hasil sukses untuk key request ini.
// No-op bila request tidak melewati Idempotency.
func StoreIdempotentResult(c *gin.Context, rdb redis.Cmdable, result any) {
	cacheKey := c.GetString(idempotencyCacheKey)
	if cacheKey == "" {
		return
	}
	payload, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := rdb.Set(c.Request.Context(), cacheKey, payload, idempotencyResultTTL).Err(); err != nil {
		zap.L().Warn("idempotency result not cached", zap.String("cache_key", cacheKey), zap.Error(err))
	}
}

// ReleaseIdempotencyLock dipanggil handler setelah selesai, sukses atau gagal.
func ReleaseIdempotencyLock(c *gin.Context, rdb redis.Cmdable) {
	if lockKey := c.GetString(idempotencyLockKey); lockKey != "" {
		rdb.Del(c.Request.Context(), lockKey)
	}
}
