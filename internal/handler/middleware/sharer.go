package middleware

import (
	"net/http"

	"shareit/internal/handler/httperr"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SharerHeader carries the acting user's id. There is no session or token
// layer; the gateway in front of this service is trusted to set it.
const SharerHeader = "X-Sharer-User-Id"

const ctxUserIDKey = "user_id"

var errSharerMissing = errors.New("sharer header missing")

// RequireSharer rejects requests without a well-formed sharer header and
// puts the parsed id into the gin context for handlers.
func RequireSharer() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(SharerHeader)
		if raw == "" {
			httperr.AbortWithError(c, http.StatusBadRequest, errSharerMissing,
				"X-Sharer-User-Id header required", nil)
			return
		}

		userID, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, errors.Wrap(err, "parse sharer header"),
				"Invalid X-Sharer-User-Id header format", nil)
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Next()
	}
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}
