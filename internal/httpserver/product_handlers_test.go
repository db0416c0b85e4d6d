package httpserver

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thangamsteels/storefront/internal/models"
)

func TestListProducts(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(http.MethodGet, "/api/v1/products", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []models.Product `json:"data"`
		Meta struct {
			Total int `json:"total"`
		} `json:"meta"`
	}
	env.decode(rec, &resp)
	require.Len(t, resp.Data, 8)
	require.Equal(t, 8, resp.Meta.Total)
}

func TestListProductsByCategory(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(http.MethodGet, "/api/v1/products?category=Fabricated", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []models.Product `json:"data"`
	}
	env.decode(rec, &resp)
	require.Len(t, resp.Data, 4)
	for _, p := range resp.Data {
		require.Equal(t, models.CategoryFabricated, p.Category)
	}
}

func TestListProductsPagination(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(http.MethodGet, "/api/v1/products?page=2&size=5", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []models.Product `json:"data"`
		Meta struct {
			HasNext bool `json:"has_next"`
			HasPrev bool `json:"has_prev"`
		} `json:"meta"`
	}
	env.decode(rec, &resp)
	require.Len(t, resp.Data, 3)
	require.True(t, resp.Meta.HasPrev)
	require.False(t, resp.Meta.HasNext)
}

func TestGetProduct(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(http.MethodGet, "/api/v1/products/steel-beds", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var p models.Product
	env.decode(rec, &p)
	require.Equal(t, "Steel Beds", p.Name)
	require.Equal(t, int64(3000), p.Price)

	rec = env.doJSON(http.MethodGet, "/api/v1/products/unknown", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSnapQuantity(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(http.MethodGet, "/api/v1/products/tmt-bars-8mm/quantity?value=13", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Value     int `json:"value"`
		Next      int `json:"next"`
		Prev      int `json:"prev"`
		MOQ       int `json:"moq"`
		Increment int `json:"increment"`
	}
	env.decode(rec, &resp)
	require.Equal(t, 15, resp.Value)
	require.Equal(t, 20, resp.Next)
	require.Equal(t, 10, resp.Prev)
	require.Equal(t, 10, resp.MOQ)
	require.Equal(t, 5, resp.Increment)

	// below MOQ clamps up
	rec = env.doJSON(http.MethodGet, "/api/v1/products/tmt-bars-8mm/quantity?value=2", nil)
	env.decode(rec, &resp)
	require.Equal(t, 10, resp.Value)
}

func TestContactSubmit(t *testing.T) {
	env := newTestEnv(t)

	rec := env.doJSON(http.MethodPost, "/api/v1/contact", map[string]any{
		"name":    "Priya",
		"email":   "priya@example.com",
		"message": "Need a quote for 500 TMT bars",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.doJSON(http.MethodPost, "/api/v1/contact", map[string]any{
		"name": "Priya",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
