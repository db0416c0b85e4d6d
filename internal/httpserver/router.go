package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/thangamsteels/storefront/internal/session"
)

type Deps struct {
	ProductHandler  *ProductHandler
	CartHandler     *CartHandler
	CheckoutHandler *CheckoutHandler
	ContactHandler  *ContactHandler
	Sessions        *session.Manager
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	v1 := e.Group("/api/v1", d.Sessions.Middleware())

	products := v1.Group("/products")
	products.GET("", d.ProductHandler.ListProducts)
	products.GET("/:id", d.ProductHandler.GetProduct)
	products.GET("/:id/quantity", d.ProductHandler.SnapQuantity)

	cart := v1.Group("/cart")
	cart.GET("", d.CartHandler.GetCart)
	cart.POST("", d.CartHandler.AddToCart)
	cart.PATCH("/:id", d.CartHandler.UpdateQuantity)
	cart.DELETE("/:id", d.CartHandler.RemoveFromCart)
	cart.DELETE("", d.CartHandler.ClearCart)

	checkout := v1.Group("/checkout")
	checkout.GET("", d.CheckoutHandler.GetState)
	checkout.POST("/shipping", d.CheckoutHandler.SubmitShipping)
	checkout.POST("/payment", d.CheckoutHandler.SubmitPayment)
	checkout.POST("/order", d.CheckoutHandler.PlaceOrder)
	checkout.POST("/step", d.CheckoutHandler.SelectStep)
	checkout.DELETE("", d.CheckoutHandler.Leave)

	v1.POST("/contact", d.ContactHandler.Submit)
}
