package httpserver

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/thangamsteels/storefront/internal/cart"
	"github.com/thangamsteels/storefront/internal/catalog"
	"github.com/thangamsteels/storefront/internal/checkout"
	"github.com/thangamsteels/storefront/internal/session"
	"github.com/thangamsteels/storefront/internal/storage"
)

type testEnv struct {
	T        *testing.T
	E        *echo.Echo
	Cart     *cart.Store
	Flow     *checkout.Manager
	Sessions *session.Manager
	Cookie   *http.Cookie
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := cart.NewStore(storage.NewMemory(), slog.Default())
	flow := checkout.NewManager(store, nil, slog.Default(), 0)
	sessions := session.NewManager([]byte("test-secret"))
	cat := catalog.Builtin()

	e := echo.New()
	Register(e, &Deps{
		ProductHandler:  &ProductHandler{Catalog: cat},
		CartHandler:     &CartHandler{Catalog: cat, Cart: store},
		CheckoutHandler: &CheckoutHandler{Flow: flow},
		ContactHandler:  &ContactHandler{},
		Sessions:        sessions,
	})

	token, err := sessions.Sign("test-session")
	require.NoError(t, err)

	return &testEnv{
		T:        t,
		E:        e,
		Cart:     store,
		Flow:     flow,
		Sessions: sessions,
		Cookie:   &http.Cookie{Name: session.CookieName, Value: token, Path: "/"},
	}
}

func (env *testEnv) doJSON(method, path string, body any) *httptest.ResponseRecorder {
	env.T.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.AddCookie(env.Cookie)

	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) decode(rec *httptest.ResponseRecorder, out any) {
	env.T.Helper()
	require.NoError(env.T, json.Unmarshal(rec.Body.Bytes(), out))
}
