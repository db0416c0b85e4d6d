package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	CookieName = "storefront_session"
	contextKey = "session_id"

	tokenTTL = 30 * 24 * time.Hour
)

// Manager issues and verifies guest session tokens: an HS256 JWT
// cookie carrying a random session id. The id keys the session's cart
// and checkout state, nothing more.
type Manager struct {
	secret []byte
}

func NewManager(secret []byte) *Manager {
	return &Manager{secret: secret}
}

// Middleware ensures every request carries a session id, minting a new
// session when the cookie is absent, expired or fails verification.
func (m *Manager) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var sid string
			if ck, err := c.Cookie(CookieName); err == nil {
				sid, _ = m.Parse(ck.Value)
			}

			if sid == "" {
				sid = uuid.NewString()
				token, err := m.Sign(sid)
				if err != nil {
					return echo.NewHTTPError(http.StatusInternalServerError, "session")
				}
				c.SetCookie(&http.Cookie{
					Name:     CookieName,
					Value:    token,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
					Expires:  time.Now().Add(tokenTTL),
				})
			}

			c.Set(contextKey, sid)
			return next(c)
		}
	}
}

func (m *Manager) Sign(sid string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sid": sid,
		"iat": now.Unix(),
		"exp": now.Add(tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *Manager) Parse(token string) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", errors.New("invalid session token")
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid session claims")
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", errors.New("invalid session id")
	}
	return sid, nil
}

// FromContext returns the session id put there by Middleware.
func FromContext(c echo.Context) (string, error) {
	v := c.Get(contextKey)
	sid, ok := v.(string)
	if !ok || sid == "" {
		return "", errors.New("no session")
	}
	return sid, nil
}
