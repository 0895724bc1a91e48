package middleware

import (
	"github.com/connectwithhassan/all-in-one/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ExtractUserID memastikan user_id dari token berbentuk UUID lalu
// menyimpannya ulang sebagai user_id_validated untuk handler.
func ExtractUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := c.Get(string(ContextUserID))
		if !ok {
			abortWith(c, apperror.ErrUnauthorized)
			return
		}

		userID, _ := raw.(string)
		if _, err := uuid.Parse(userID); err != nil {
			abortWith(c, apperror.ErrUnauthorized)
			return
		}

		c.Set(string(ContextValidatedUserID), userID)
		c.Next()
	}
}

// actorID dipakai middleware yang butuh identitas tapi tidak mewajibkannya.
func actorID(c *gin.Context) string {
	if id := c.GetString(string(ContextValidatedUserID)); id != "" {
		return id
	}
	return c.GetString(string(ContextUserID))
}
