package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/connectwithhassan/all-in-one/internal/shared/apperror"
	"github.com/connectwithhassan/all-in-one/internal/shared/contextutil"
	"github.com/connectwithhassan/all-in-one/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = apperror.New(apperror.CodeUnauthorized, "Token tidak valid", http.StatusUnauthorized)
	ErrTokenExpired = apperror.New(apperror.CodeUnauthorized, "Token sudah kedaluwarsa", http.StatusUnauthorized)
	ErrTokenMissing = apperror.New(apperror.CodeUnauthorized, "Token tidak ditemukan", http.StatusUnauthorized)
)

// Claims diterbitkan oleh layanan identitas. Payroll hanya membaca.
type Claims struct {
	UserID     string `json:"user_id"`
	CompanyID  string `json:"company_id"`
	EmployeeID string `json:"employee_id,omitempty"`
	Role       string `json:"role"`
	jwt.RegisteredClaims
}

const accessTokenCookie = "access_token"

// AuthMiddleware memvalidasi JWT dengan secret dari JWT_SECRET.
func AuthMiddleware() gin.HandlerFunc {
	return Authenticate([]byte(os.Getenv("JWT_SECRET")))
}

func Authenticate(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			abortWith(c, ErrTokenMissing)
			return
		}

		claims := &Claims{}
		_, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return secret, nil
		})
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				abortWith(c, ErrTokenExpired)
				return
			}
			abortWith(c, ErrInvalidToken)
			return
		}

		if claims.UserID == "" || claims.CompanyID == "" {
			abortWith(c, ErrInvalidToken)
			return
		}

		c.Set(string(ContextUserID), claims.UserID)
		c.Set(string(ContextEmployeeID), claims.EmployeeID)
		c.Set(string(ContextCompanyID), claims.CompanyID)
		c.Set(string(ContextRole), claims.Role)

		ctx := contextutil.WithUserID(c.Request.Context(), claims.UserID)
		ctx = contextutil.WithCompanyID(ctx, claims.CompanyID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// bearerToken membaca header Authorization, lalu cookie access_token.
func bearerToken(c *gin.Context) string {
	if token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); ok {
		if token = strings.TrimSpace(token); token != "" {
			return token
		}
	}
	if cookie, err := c.Cookie(accessTokenCookie); err == nil {
		return strings.TrimSpace(cookie)
	}
	return ""
}

func abortWith(c *gin.Context, appErr *apperror.AppError) {
	response.Error(c, appErr.HTTPStatus, appErr.Code, appErr.Message, nil)
	c.Abort()
}
