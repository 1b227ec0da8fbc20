package middleware

import (
	"net/http"

	"world-hotels/internal/handler/httperr"
	"world-hotels/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserIDHeader carries the caller's identity. Credential handling lives
// upstream (gateway/session layer); this service only needs a stable
// user reference for bookings.
const UserIDHeader = "X-User-ID"

const userIDKey = "user_id"

var errMissingUserID = errs.New("missing or invalid user ID header")

func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(UserIDHeader)
		if raw == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUserID, "X-User-ID header required", nil)
			return
		}

		userID, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUserID, "Invalid X-User-ID header", nil)
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(userIDKey)
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	return userID, ok
}
