package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/thangamsteels/storefront/internal/cart"
	"github.com/thangamsteels/storefront/internal/catalog"
	"github.com/thangamsteels/storefront/internal/events"
	"github.com/thangamsteels/storefront/internal/logging"
	"github.com/thangamsteels/storefront/internal/pricing"
	"github.com/thangamsteels/storefront/internal/session"
)

type CartHandler struct {
	Catalog  *catalog.Catalog
	Cart     *cart.Store
	Producer *events.Producer
}

func (h *CartHandler) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "get.cart")

	sid, err := session.FromContext(c)
	if err != nil {
		l.Error("get_cart_error", "status", 401, "error", err)
		return c.JSON(http.StatusUnauthorized, "no session")
	}

	items := h.Cart.Items(ctx, sid)
	quote := pricing.Calculate(h.Cart.Total(ctx, sid))

	return c.JSON(http.StatusOK, map[string]any{
		"items": items,
		"count": h.Cart.Count(ctx, sid),
		"quote": quote,
	})
}

func (h *CartHandler) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "add.cart")

	sid, err := session.FromContext(c)
	if err != nil {
		l.Error("add_to_cart_error", "status", 401, "error", err)
		return c.JSON(http.StatusUnauthorized, "no session")
	}

	var req struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}

	p, ok := h.Catalog.ByID(req.ProductID)
	if !ok {
		l.Warn("add_to_cart_error", "status", 404, "product_id", req.ProductID)
		return c.JSON(http.StatusNotFound, "product not found")
	}
	if !p.InStock {
		l.Warn("add_to_cart_error", "status", 409, "product_id", req.ProductID)
		return c.JSON(http.StatusConflict, "product is out of stock")
	}

	if err := h.Cart.Add(ctx, sid, p, req.Quantity); err != nil {
		if errors.Is(err, cart.ErrInvalidQuantity) {
			l.Warn("add_to_cart_error", "status", 400, "error", err)
			return c.JSON(http.StatusBadRequest, err.Error())
		}
		l.Error("add_to_cart_error", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, "internal error")
	}

	h.Producer.Publish(ctx, events.TopicCart, sid, map[string]any{
		"type":       "cart_item_added",
		"product_id": p.ID,
		"quantity":   req.Quantity,
	})

	l.Info("item added to cart", "product_id", p.ID, "quantity", req.Quantity)
	return c.JSON(http.StatusCreated, map[string]any{
		"items": h.Cart.Items(ctx, sid),
		"count": h.Cart.Count(ctx, sid),
	})
}

func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "update.cart")

	sid, err := session.FromContext(c)
	if err != nil {
		l.Error("update_cart_error", "status", 401, "error", err)
		return c.JSON(http.StatusUnauthorized, "no session")
	}

	productID := c.Param("id")
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("update_cart_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, "invalid body")
	}

	if err := h.Cart.UpdateQuantity(ctx, sid, productID, req.Quantity); err != nil {
		switch {
		case errors.Is(err, cart.ErrNotFound):
			l.Warn("update_cart_error", "status", 404, "error", err)
			return c.JSON(http.StatusNotFound, "item not found")
		case errors.Is(err, cart.ErrInvalidQuantity):
			l.Warn("update_cart_error", "status", 400, "error", err)
			return c.JSON(http.StatusBadRequest, err.Error())
		default:
			l.Error("update_cart_error", "status", 500, "error", err)
			return c.JSON(http.StatusInternalServerError, "internal error")
		}
	}

	h.Producer.Publish(ctx, events.TopicCart, sid, map[string]any{
		"type":       "cart_item_updated",
		"product_id": productID,
		"quantity":   req.Quantity,
	})

	return c.JSON(http.StatusOK, map[string]any{
		"items": h.Cart.Items(ctx, sid),
		"count": h.Cart.Count(ctx, sid),
	})
}

func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "remove.cart")

	sid, err := session.FromContext(c)
	if err != nil {
		l.Error("remove_from_cart_error", "status", 401, "error", err)
		return c.JSON(http.StatusUnauthorized, "no session")
	}

	productID := c.Param("id")
	h.Cart.Remove(ctx, sid, productID)

	h.Producer.Publish(ctx, events.TopicCart, sid, map[string]any{
		"type":       "cart_item_removed",
		"product_id": productID,
	})

	return c.NoContent(http.StatusNoContent)
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "clear.cart")

	sid, err := session.FromContext(c)
	if err != nil {
		l.Error("clear_cart_error", "status", 401, "error", err)
		return c.JSON(http.StatusUnauthorized, "no session")
	}

	h.Cart.Clear(ctx, sid)

	h.Producer.Publish(ctx, events.TopicCart, sid, map[string]any{
		"type": "cart_cleared",
	})

	l.Info("cart cleared")
	return c.JSON(http.StatusOK, "cart successfully cleared")
}
