package middleware

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"waco-shop/config"
	"waco-shop/session"
)

const (
	SessionCookie = "waco_sid"

	ctxSession      = "session"
	ctxSessionStore = "session_store"
	ctxSessionNew   = "session_new"
)

// SessionMiddleware attaches the browsing session to the request context.
// A missing or expired session degrades to a fresh anonymous one; it is
// only persisted once a handler calls SaveSession.
func SessionMiddleware(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sess *session.Session
		isNew := true

		if id, err := c.Cookie(SessionCookie); err == nil && id != "" {
			loaded, err := store.Get(c.Request.Context(), id)
			if err == nil {
				sess = loaded
				isNew = false
			} else if !errors.Is(err, session.ErrNotFound) {
				log.Println("Session restore failed:", err)
			}
		}

		if sess == nil {
			sess = session.New()
		}

		c.Set(ctxSession, sess)
		c.Set(ctxSessionStore, store)
		c.Set(ctxSessionNew, isNew)
		c.Next()
	}
}

func GetSession(c *gin.Context) *session.Session {
	return c.MustGet(ctxSession).(*session.Session)
}

// SaveSession persists the (possibly mutated) session and sets the cookie
// when the session is new to this browser.
func SaveSession(c *gin.Context) error {
	sess := GetSession(c)
	store := c.MustGet(ctxSessionStore).(session.Store)

	if err := store.Save(c.Request.Context(), sess); err != nil {
		return err
	}

	if c.GetBool(ctxSessionNew) {
		secure := config.AppConfig.AppEnv == "production"
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, sess.ID, int(config.AppConfig.SessionTTL.Seconds()), "/", "", secure, true)
		c.Set(ctxSessionNew, false)
	}
	return nil
}

// DestroySession deletes the stored session and expires the cookie.
func DestroySession(c *gin.Context) error {
	sess := GetSession(c)
	store := c.MustGet(ctxSessionStore).(session.Store)

	if err := store.Delete(c.Request.Context(), sess.ID); err != nil {
		return err
	}

	secure := config.AppConfig.AppEnv == "production"
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", secure, true)
	c.Set(ctxSession, session.New())
	c.Set(ctxSessionNew, true)
	return nil
}
