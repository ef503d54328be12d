package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/alnajat-edu/portal-api/internal/models"
	"github.com/alnajat-edu/portal-api/internal/store"
)

// ContextUserKey is the gin context key holding the resolved acting user.
const ContextUserKey = "acting_user"

// HeaderUserID names the header carrying the acting user's id. Login is a
// role-selection stub, so the header is taken at face value; there are no
// credentials to verify.
const HeaderUserID = "X-User-ID"

// ActingUser resolves the X-User-ID header into the full account record
// and stores it in the gin context. Requests without the header pass
// through; handlers that need an acting user respond 400 themselves.
func ActingUser(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := c.GetHeader(HeaderUserID); id != "" {
			if account, ok := st.AccountByID(id); ok {
				c.Set(ContextUserKey, account)
			}
		}
		c.Next()
	}
}

// UserFromContext returns the acting account, if one was resolved.
func UserFromContext(c *gin.Context) (models.Account, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	account, ok := value.(models.Account)
	return account, ok
}
