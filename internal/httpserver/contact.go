package httpserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/thangamsteels/storefront/internal/logging"
)

// ContactHandler accepts contact-form submissions. There is no backend
// to deliver to; the request waits out a simulated network delay, gets
// logged and succeeds.
type ContactHandler struct {
	Delay time.Duration
}

func (h *ContactHandler) Submit(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "contact")

	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Message string `json:"message"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("contact_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Message) == "" {
		l.Warn("contact_error", "status", 400)
		return c.JSON(http.StatusBadRequest, "name, email and message required")
	}

	if h.Delay > 0 {
		select {
		case <-time.After(h.Delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	l.Info("contact form submitted", "email", req.Email)
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
