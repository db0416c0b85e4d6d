package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/thangamsteels/storefront/internal/checkout"
	"github.com/thangamsteels/storefront/internal/logging"
	"github.com/thangamsteels/storefront/internal/models"
	"github.com/thangamsteels/storefront/internal/session"
)

type CheckoutHandler struct {
	Flow *checkout.Manager
}

// checkoutError maps flow errors onto HTTP statuses. An empty cart
// yields 409 with a redirect hint so the client leaves checkout.
func checkoutError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, checkout.ErrCartEmpty):
		return c.JSON(http.StatusConflict, map[string]any{
			"error":    "cart is empty",
			"redirect": "/",
		})
	case errors.Is(err, checkout.ErrValidation):
		return c.JSON(http.StatusBadRequest, err.Error())
	case errors.Is(err, checkout.ErrMissingInfo):
		return c.JSON(http.StatusBadRequest, err.Error())
	case errors.Is(err, checkout.ErrOnlineUnavailable):
		return c.JSON(http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, checkout.ErrStepNotReachable):
		return c.JSON(http.StatusConflict, err.Error())
	case errors.Is(err, checkout.ErrProcessing):
		return c.JSON(http.StatusConflict, err.Error())
	default:
		return c.JSON(http.StatusInternalServerError, "internal error")
	}
}

func (h *CheckoutHandler) GetState(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "checkout.state")

	sid, err := session.FromContext(c)
	if err != nil {
		l.Error("checkout_state_error", "status", 401, "error", err)
		return c.JSON(http.StatusUnauthorized, "no session")
	}

	st, err := h.Flow.State(ctx, sid)
	if err != nil {
		l.Warn("checkout_state_error", "error", err)
		return checkoutError(c, err)
	}
	return c.JSON(http.StatusOK, st)
}

func (h *CheckoutHandler) SubmitShipping(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "checkout.shipping")

	sid, err := session.FromContext(c)
	if err != nil {
		l.Error("checkout_shipping_error", "status", 401, "error", err)
		return c.JSON(http.StatusUnauthorized, "no session")
	}

	var info models.ShippingInfo
	if err := c.Bind(&info); err != nil {
		l.Warn("checkout_shipping_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}

	if err := h.Flow.SubmitShipping(ctx, sid, info); err != nil {
		l.Warn("checkout_shipping_error", "error", err)
		return checkoutError(c, err)
	}

	l.Info("shipping captured")
	st, err := h.Flow.State(ctx, sid)
	if err != nil {
		return checkoutError(c, err)
	}
	return c.JSON(http.StatusOK, st)
}

func (h *CheckoutHandler) SubmitPayment(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "checkout.payment")

	sid, err := session.FromContext(c)
	if err != nil {
		l.Error("checkout_payment_error", "status", 401, "error", err)
		return c.JSON(http.StatusUnauthorized, "no session")
	}

	var info models.PaymentInfo
	if err := c.Bind(&info); err != nil {
		l.Warn("checkout_payment_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}

	if err := h.Flow.SubmitPayment(ctx, sid, info); err != nil {
		l.Warn("checkout_payment_error", "error", err)
		return checkoutError(c, err)
	}

	l.Info("payment method captured", "method", info.Method)
	st, err := h.Flow.State(ctx, sid)
	if err != nil {
		return checkoutError(c, err)
	}
	return c.JSON(http.StatusOK, st)
}

func (h *CheckoutHandler) PlaceOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "checkout.order")

	sid, err := session.FromContext(c)
	if err != nil {
		l.Error("place_order_error", "status", 401, "error", err)
		return c.JSON(http.StatusUnauthorized, "no session")
	}

	order, err := h.Flow.PlaceOrder(ctx, sid)
	if err != nil {
		l.Warn("place_order_error", "error", err)
		return checkoutError(c, err)
	}

	return c.JSON(http.StatusOK, order)
}

func (h *CheckoutHandler) SelectStep(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "checkout.step")

	sid, err := session.FromContext(c)
	if err != nil {
		l.Error("select_step_error", "status", 401, "error", err)
		return c.JSON(http.StatusUnauthorized, "no session")
	}

	var req struct {
		Step int `json:"step"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("select_step_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}

	if err := h.Flow.SelectStep(ctx, sid, checkout.Step(req.Step)); err != nil {
		l.Warn("select_step_error", "error", err)
		return checkoutError(c, err)
	}

	st, err := h.Flow.State(ctx, sid)
	if err != nil {
		return checkoutError(c, err)
	}
	return c.JSON(http.StatusOK, st)
}

// Leave exits checkout back to the catalog, discarding the flow state
// and any confirmed order with it.
func (h *CheckoutHandler) Leave(c echo.Context) error {
	sid, err := session.FromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, "no session")
	}
	h.Flow.Reset(sid)
	return c.NoContent(http.StatusNoContent)
}
