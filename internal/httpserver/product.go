package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/thangamsteels/storefront/internal/catalog"
	"github.com/thangamsteels/storefront/internal/models"
	"github.com/thangamsteels/storefront/internal/quantity"
	"github.com/thangamsteels/storefront/internal/util"
)

type ProductHandler struct {
	Catalog *catalog.Catalog
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	page := parseIntDefault(c.QueryParam("page"), 1)
	size := parseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	items := h.Catalog.All()
	if cat := c.QueryParam("category"); cat != "" {
		items = h.Catalog.ByCategory(models.Category(cat))
	}
	total := len(items)

	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	pageItems := items[offset:end]

	return c.JSON(http.StatusOK, map[string]any{
		"data": pageItems,
		"meta": map[string]any{
			"page":        page,
			"size":        limit,
			"total":       total,
			"total_pages": (total + limit - 1) / limit,
			"has_prev":    page > 1,
			"has_next":    end < total,
		},
	})
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	id := c.Param("id")
	p, ok := h.Catalog.ByID(id)
	if !ok {
		return c.JSON(http.StatusNotFound, "product not found")
	}
	return c.JSON(http.StatusOK, p)
}

// SnapQuantity resolves a raw entered value onto the product's valid
// order sequence, the same correction the quantity selector applies.
func (h *ProductHandler) SnapQuantity(c echo.Context) error {
	p, ok := h.Catalog.ByID(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, "product not found")
	}

	raw := parseIntDefault(c.QueryParam("value"), p.MOQ)
	snapped := quantity.Snap(p, raw)

	return c.JSON(http.StatusOK, map[string]any{
		"value":     snapped,
		"next":      quantity.Next(p, snapped),
		"prev":      quantity.Prev(p, snapped),
		"moq":       p.MOQ,
		"increment": p.Increment,
	})
}
