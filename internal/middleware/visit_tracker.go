// internal/middleware/visit_tracker.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/decibell/store-backend/internal/repository"
)

const sessionCookie = "session_id"

// VisitTracker assigns a session cookie to each visitor and appends one row
// to the visit ledger per request. Only GET traffic counts as a visit; a
// ledger failure never fails the request it rode in on.
func VisitTracker(ledger *repository.VisitLedger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != "GET" {
			c.Next()
			return
		}

		sessionID, err := c.Cookie(sessionCookie)
		if err != nil || sessionID == "" {
			sessionID = uuid.New().String()
			c.SetCookie(sessionCookie, sessionID, 60*60*24*365, "/", "", false, true)
		}
		c.Set("session_id", sessionID)

		if err := ledger.Record(sessionID); err != nil {
			logrus.WithError(err).Warn("Failed to record visit")
		}

		c.Next()
	}
}
