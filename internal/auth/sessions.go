// Package auth manages the admin session cookie and the role gate in
// front of the admin surface.
package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"golang.org/x/crypto/bcrypt"

	"github.com/ramanuj-ai/ramanuj-site/internal/models"
)

// SessionName is the admin session cookie name.
const SessionName = "ramanuj_session"

// Sessions live 8 hours, matching the original deployment.
const sessionMaxAge = 8 * 60 * 60

// RoleAdmin is the only role allowed through RequireAdmin.
const RoleAdmin = "admin"

// SessionUser is the identity carried in the session cookie.
type SessionUser struct {
	ID    uint
	Email string
	Role  string
}

// Manager wraps the cookie store and the admin gate.
type Manager struct {
	store *sessions.CookieStore
}

func NewManager(secret string) *Manager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: store}
}

// SignIn writes the user's identity into the session cookie.
func (m *Manager) SignIn(c *gin.Context, user models.User) error {
	sess, _ := m.store.Get(c.Request, SessionName)
	sess.Values["user_id"] = user.ID
	sess.Values["email"] = user.Email
	sess.Values["role"] = user.Role
	return sess.Save(c.Request, c.Writer)
}

// SignOut expires the session cookie.
func (m *Manager) SignOut(c *gin.Context) error {
	sess, _ := m.store.Get(c.Request, SessionName)
	sess.Options.MaxAge = -1
	return sess.Save(c.Request, c.Writer)
}

// CurrentUser returns the signed-in user, if any.
func (m *Manager) CurrentUser(c *gin.Context) (SessionUser, bool) {
	sess, err := m.store.Get(c.Request, SessionName)
	if err != nil {
		return SessionUser{}, false
	}
	id, ok := sess.Values["user_id"].(uint)
	if !ok {
		return SessionUser{}, false
	}
	email, _ := sess.Values["email"].(string)
	role, _ := sess.Values["role"].(string)
	return SessionUser{ID: id, Email: email, Role: role}, true
}

// RequireAdmin gates a route group: anonymous requests are redirected
// to the login page, signed-in users without the admin role get 403.
func (m *Manager) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := m.CurrentUser(c)
		if !ok {
			c.Redirect(http.StatusFound, "/auth/login")
			c.Abort()
			return
		}
		if user.Role != RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.Set("user", user)
		c.Next()
	}
}

// VerifyPassword reports whether password matches the stored bcrypt hash.
func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
