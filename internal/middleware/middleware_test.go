package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/connectwithhassan/all-in-one/internal/middleware"
	"github.com/connectwithhassan/all-in-one/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

type envelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func signToken(t *testing.T, method jwt.SigningMethod, claims middleware.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(testSecret)
	require.NoError(t, err)
	return token
}

func validClaims(userID string) middleware.Claims {
	return middleware.Claims{
		UserID:    userID,
		CompanyID: "company-1",
		Role:      "hr_admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func init() {
	gin.SetMode(gin.TestMode)
}

func TestAuthenticate(t *testing.T) {
	userID := uuid.NewString()

	expired := validClaims(userID)
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	noCompany := validClaims(userID)
	noCompany.CompanyID = ""

	tests := []struct {
		name        string
		header      string
		cookie      string
		wantStatus  int
		wantMessage string
	}{
		{name: "bearer header", header: "Bearer " + signToken(t, jwt.SigningMethodHS256, validClaims(userID)), wantStatus: http.StatusOK},
		{name: "cookie", cookie: signToken(t, jwt.SigningMethodHS256, validClaims(userID)), wantStatus: http.StatusOK},
		{name: "missing", wantStatus: http.StatusUnauthorized, wantMessage: middleware.ErrTokenMissing.Message},
		{name: "expired", header: "Bearer " + signToken(t, jwt.SigningMethodHS256, expired), wantStatus: http.StatusUnauthorized, wantMessage: middleware.ErrTokenExpired.Message},
		{name: "garbage", header: "Bearer not-a-token", wantStatus: http.StatusUnauthorized, wantMessage: middleware.ErrInvalidToken.Message},
		{name: "missing company", header: "Bearer " + signToken(t, jwt.SigningMethodHS256, noCompany), wantStatus: http.StatusUnauthorized, wantMessage: middleware.ErrInvalidToken.Message},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(middleware.Authenticate(testSecret))
			r.GET("/me", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{
					"user_id":    c.GetString("user_id"),
					"company_id": contextutil.GetCompanyID(c.Request.Context()),
					"role":       c.GetString("role"),
				})
			})

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "access_token", Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				var body map[string]string
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, userID, body["user_id"])
				assert.Equal(t, "company-1", body["company_id"])
				assert.Equal(t, "hr_admin", body["role"])
				return
			}
			assert.Equal(t, tt.wantMessage, decode(t, w).Error.Message)
		})
	}
}

func TestExtractUserID(t *testing.T) {
	validID := uuid.NewString()

	tests := []struct {
		name       string
		userID     any
		wantStatus int
	}{
		{name: "uuid", userID: validID, wantStatus: http.StatusOK},
		{name: "not uuid", userID: "admin", wantStatus: http.StatusUnauthorized},
		{name: "wrong type", userID: 42, wantStatus: http.StatusUnauthorized},
		{name: "absent", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(func(c *gin.Context) {
				if tt.userID != nil {
					c.Set("user_id", tt.userID)
				}
			}, middleware.ExtractUserID())
			r.GET("/", func(c *gin.Context) {
				c.String(http.StatusOK, c.GetString("user_id_validated"))
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, validID, w.Body.String())
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{name: "client value kept", header: "req-123", wantSame: true},
		{name: "blank generated"},
		{name: "oversized regenerated", header: strings.Repeat("x", 65)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(middleware.RequestID())
			r.GET("/", func(c *gin.Context) {
				c.String(http.StatusOK, contextutil.GetRequestID(c.Request.Context()))
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(middleware.RequestIDHeader, tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			rid := w.Header().Get(middleware.RequestIDHeader)
			assert.Equal(t, rid, w.Body.String())
			if tt.wantSame {
				assert.Equal(t, tt.header, rid)
				return
			}
			_, err := uuid.Parse(rid)
			assert.NoError(t, err)
		})
	}
}

func TestRateLimitByUser(t *testing.T) {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if uid := c.GetHeader("X-User"); uid != "" {
			c.Set("user_id", uid)
		}
	}, middleware.RateLimitByUser(0.001, 1))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	call := func(user string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if user != "" {
			req.Header.Set("X-User", user)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusNoContent, call("user-1").Code)

	limited := call("user-1")
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.Equal(t, "TOO_MANY_REQUESTS", decode(t, limited).Error.Code)

	assert.Equal(t, http.StatusNoContent, call("user-2").Code)
	assert.Equal(t, http.StatusNoContent, call("").Code)
	assert.Equal(t, http.StatusNoContent, call("").Code)
}

func idempotentRouter(t *testing.T, handlerCalls *int) (*gin.Engine, redismock.ClientMock) {
	t.Helper()
	rdb, mock := redismock.NewClientMock()

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id", "user-1") })
	r.POST("/payrolls/generate", middleware.Idempotency(rdb), func(c *gin.Context) {
		*handlerCalls++
		defer middleware.ReleaseIdempotencyLock(c, rdb)
		result := map[string]string{"id": "p-1"}
		middleware.StoreIdempotentResult(c, rdb, result)
		c.JSON(http.StatusCreated, result)
	})
	return r, mock
}

func postWithKey(r *gin.Engine, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/payrolls/generate", nil)
	if key != "" {
		req.Header.Set(middleware.IdempotencyHeader, key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotency_FirstRequestStoresResult(t *testing.T) {
	calls := 0
	r, mock := idempotentRouter(t, &calls)

	cacheKey := "idemp:/payrolls/generate:user-1:key-1"
	mock.ExpectGet(cacheKey).RedisNil()
	mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(true)
	mock.ExpectSet(cacheKey, []byte(`{"id":"p-1"}`), 24*time.Hour).SetVal("OK")
	mock.ExpectDel(cacheKey + ":lock").SetVal(1)

	w := postWithKey(r, "key-1")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_ReplaysCachedResult(t *testing.T) {
	calls := 0
	r, mock := idempotentRouter(t, &calls)

	mock.ExpectGet("idemp:/payrolls/generate:user-1:key-1").SetVal(`{"id":"p-1"}`)

	w := postWithKey(r, "key-1")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, calls)
	env := decode(t, w)
	assert.True(t, env.Ok)
	assert.JSONEq(t, `{"id":"p-1"}`, string(env.Data))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_InFlightConflict(t *testing.T) {
	calls := 0
	r, mock := idempotentRouter(t, &calls)

	cacheKey := "idemp:/payrolls/generate:user-1:key-1"
	mock.ExpectGet(cacheKey).RedisNil()
	mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(false)

	w := postWithKey(r, "key-1")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "PROCESSING", decode(t, w).Error.Code)
	assert.Equal(t, 0, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_NoKeyPassesThrough(t *testing.T) {
	calls := 0
	r, mock := idempotentRouter(t, &calls)

	w := postWithKey(r, "")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}
