package middlewares

import (
	"github.com/gin-gonic/gin"

	"github.com/mroyme/NL2SQL/internal/models"
	"github.com/mroyme/NL2SQL/internal/repositories"
	"github.com/mroyme/NL2SQL/internal/utils"
)

// SessionCookie names the cookie carrying the session ID.
const SessionCookie = "nl2sql_session"

// Session attaches a session to every request. A missing, malformed or
// expired cookie gets a fresh session instead of an error; the demo has no
// accounts to authenticate against.
func Session(store *repositories.SessionRepository, cookieMaxAge int) gin.HandlerFunc {
	return func(c *gin.Context) {
		var session *models.Session

		if raw, err := c.Cookie(SessionCookie); err == nil {
			if id, err := utils.ParseUUID(raw); err == nil {
				if found, err := store.FindByID(id); err == nil {
					session = found
				}
			}
		}

		if session == nil {
			session = store.Create()
			c.SetCookie(SessionCookie, session.ID.String(), cookieMaxAge, "/", "", false, true)
		}

		// Store the session ID in context for handlers
		c.Set("sessionID", session.ID)

		c.Next()
	}
}
