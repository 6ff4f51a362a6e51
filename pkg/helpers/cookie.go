package helpers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "token"

// Manager sets and clears the HTTP-only session cookie.
// SameSite is always Strict; Secure is off only for local development.
type Manager struct {
	Domain string
	Secure bool
}

func NewCookie(domain string, secure bool) *Manager {
	return &Manager{Domain: domain, Secure: secure}
}

// Set stores the session token until exp.
func (m *Manager) Set(c *gin.Context, token string, exp time.Time) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(SessionCookieName, token, maxAgeFrom(exp), "/", m.Domain, m.Secure, true)
}

// Clear overwrites the session cookie with an immediately-expired empty value.
func (m *Manager) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(SessionCookieName, "", -1, "/", m.Domain, m.Secure, true)
}

func maxAgeFrom(exp time.Time) int {
	sec := int(time.Until(exp).Seconds())
	if sec < 0 {
		return 0
	}
	return sec
}
