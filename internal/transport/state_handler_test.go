package transport

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"rental-hub/internal/domain"
	"rental-hub/internal/middleware"
	"rental-hub/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) (*store.Store, http.Handler) {
	t.Helper()
	s := store.New()
	router := chi.NewRouter()
	NewStateHandler(s, zap.NewNop()).RegisterRoutes(router)
	return s, router
}

func doJSON(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeState(t *testing.T, w *httptest.ResponseRecorder) store.State {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var st store.State
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &st))
	return st
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) middleware.ErrorResponse {
	t.Helper()
	var resp middleware.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestGetState_Defaults(t *testing.T) {
	_, router := newTestRouter(t)

	st := decodeState(t, doJSON(t, router, http.MethodGet, "/api/state", nil))
	assert.Equal(t, domain.ThemeLight, st.Theme)
	assert.Equal(t, domain.CategoryAll, st.SelectedCategory)
	assert.NotNil(t, st.Cart)
	assert.Equal(t, 0.0, st.CartTotal)
}

func TestUIRoutes(t *testing.T) {
	_, router := newTestRouter(t)

	st := decodeState(t, doJSON(t, router, http.MethodPut, "/api/ui/loading", map[string]bool{"loading": true}))
	assert.True(t, st.IsLoading)

	st = decodeState(t, doJSON(t, router, http.MethodPost, "/api/ui/sidebar/toggle", nil))
	assert.True(t, st.IsSidebarOpen)

	st = decodeState(t, doJSON(t, router, http.MethodPut, "/api/ui/theme", SetThemeRequest{Theme: domain.ThemeDark}))
	assert.Equal(t, domain.ThemeDark, st.Theme)

	w := doJSON(t, router, http.MethodPut, "/api/ui/loading", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "validation failed", decodeError(t, w).Error.Message)
}

func TestProperty_ThemeRouteAcceptsOnlyKnownThemes(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("theme route accepts light and dark only", prop.ForAll(
		func(theme string) bool {
			s, router := newTestRouter(t)
			w := doJSON(t, router, http.MethodPut, "/api/ui/theme", map[string]string{"theme": theme})

			if theme == "light" || theme == "dark" {
				return w.Code == http.StatusOK && s.Snapshot().Theme == domain.Theme(theme)
			}
			return w.Code == http.StatusBadRequest && s.Snapshot().Theme == domain.ThemeLight
		},
		gen.OneConstOf("light", "dark", "", "blue", "Dark"),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestSessionRoutes(t *testing.T) {
	s, router := newTestRouter(t)
	user := domain.User{ID: "u1", Name: "Ada", Email: "ada@example.com", Role: domain.RoleAdmin}

	st := decodeState(t, doJSON(t, router, http.MethodPost, "/api/session/login", user))
	require.NotNil(t, st.User)
	assert.Equal(t, "u1", st.User.ID)
	assert.True(t, st.IsAuthenticated)

	s.AddToCart(domain.CartItemInput{ProductID: "p1", Price: 2, Quantity: 1, RentalDays: 1})

	st = decodeState(t, doJSON(t, router, http.MethodPut, "/api/session/user", "null"))
	assert.Nil(t, st.User)
	assert.False(t, st.IsAuthenticated)
	assert.Len(t, st.Cart, 1)

	st = decodeState(t, doJSON(t, router, http.MethodPut, "/api/session/user", user))
	assert.True(t, st.IsAuthenticated)

	st = decodeState(t, doJSON(t, router, http.MethodPost, "/api/session/logout", nil))
	assert.Nil(t, st.User)
	assert.False(t, st.IsAuthenticated)
	assert.Empty(t, st.Cart)
	assert.Equal(t, 0.0, st.CartTotal)
}

func TestLogin_RejectsInvalidUser(t *testing.T) {
	s, router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/session/login", map[string]string{
		"id": "u1", "name": "Ada", "email": "not-an-email", "role": "user",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	details := decodeError(t, w).Error.Details
	assert.Contains(t, details, "validation_errors")
	assert.False(t, s.Snapshot().IsAuthenticated)

	w = doJSON(t, router, http.MethodPost, "/api/session/login", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "request body is required", decodeError(t, w).Error.Message)
}

func TestCatalogRoutes(t *testing.T) {
	_, router := newTestRouter(t)
	products := []domain.Product{
		{ID: "p1", Name: "Tent", Price: 12, Category: "camping", Images: []string{"tent.png"}, Available: true, Rating: 4.5, Reviews: 3},
		{ID: "p2", Name: "Kayak", Price: 30, Category: "water"},
	}

	st := decodeState(t, doJSON(t, router, http.MethodPut, "/api/catalog/products", products))
	require.Len(t, st.Products, 2)
	assert.Equal(t, []string{"tent.png"}, st.Products[0].Images)

	st = decodeState(t, doJSON(t, router, http.MethodPut, "/api/catalog/featured", []domain.Product{{ID: "p7", Name: "Drone"}}))
	require.Len(t, st.FeaturedProducts, 1)
	assert.Equal(t, "p7", st.FeaturedProducts[0].ID)
	assert.Len(t, st.Products, 2)

	st = decodeState(t, doJSON(t, router, http.MethodPut, "/api/catalog/search", SetSearchQueryRequest{Query: ""}))
	assert.Equal(t, "", st.SearchQuery)

	st = decodeState(t, doJSON(t, router, http.MethodPut, "/api/catalog/category", SetCategoryRequest{Category: "camping"}))
	assert.Equal(t, "camping", st.SelectedCategory)

	w := doJSON(t, router, http.MethodPut, "/api/catalog/products", []map[string]string{{"name": "missing id"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartRoutes_Scenario(t *testing.T) {
	_, router := newTestRouter(t)
	camera := domain.CartItemInput{ProductID: "p1", Name: "Camera", Price: 10, Quantity: 1, Image: "x.png", RentalDays: 3}

	st := decodeState(t, doJSON(t, router, http.MethodPost, "/api/cart/items", camera))
	require.Len(t, st.Cart, 1)
	assert.Equal(t, 30.0, st.CartTotal)

	camera.Quantity = 2
	camera.RentalDays = 5
	st = decodeState(t, doJSON(t, router, http.MethodPost, "/api/cart/items", camera))
	require.Len(t, st.Cart, 1)
	assert.Equal(t, 3, st.Cart[0].Quantity)
	assert.Equal(t, 3, st.Cart[0].RentalDays)
	assert.Equal(t, 90.0, st.CartTotal)

	id := st.Cart[0].ID
	st = decodeState(t, doJSON(t, router, http.MethodPatch, "/api/cart/items/"+id, map[string]int{"quantity": 1}))
	assert.Equal(t, 30.0, st.CartTotal)

	st = decodeState(t, doJSON(t, router, http.MethodPatch, "/api/cart/items/"+id, map[string]int{"quantity": 0}))
	assert.Empty(t, st.Cart)
	assert.Equal(t, 0.0, st.CartTotal)
}

func TestCartRoutes_RemoveClearAndTotal(t *testing.T) {
	s, router := newTestRouter(t)
	s.AddToCart(domain.CartItemInput{ProductID: "p1", Price: 10, Quantity: 1, RentalDays: 2})
	s.AddToCart(domain.CartItemInput{ProductID: "p2", Price: 5, Quantity: 2, RentalDays: 1})
	cart := s.Snapshot().Cart

	st := decodeState(t, doJSON(t, router, http.MethodDelete, "/api/cart/items/unknown", nil))
	assert.Len(t, st.Cart, 2)
	assert.Equal(t, 30.0, st.CartTotal)

	st = decodeState(t, doJSON(t, router, http.MethodDelete, "/api/cart/items/"+cart[0].ID, nil))
	require.Len(t, st.Cart, 1)
	assert.Equal(t, 10.0, st.CartTotal)

	st = decodeState(t, doJSON(t, router, http.MethodPost, "/api/cart/total", nil))
	assert.Equal(t, 10.0, st.CartTotal)

	st = decodeState(t, doJSON(t, router, http.MethodDelete, "/api/cart", nil))
	assert.Empty(t, st.Cart)
	assert.Equal(t, 0.0, st.CartTotal)
}

func TestCartRoutes_Validation(t *testing.T) {
	s, router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/cart/items", map[string]interface{}{"name": "Camera", "price": 10})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, s.Snapshot().Cart)

	w = doJSON(t, router, http.MethodPatch, "/api/cart/items/any", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/cart/items", "{broken")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid request body", decodeError(t, w).Error.Message)
}

func TestLogout_EncodesEmptyCartAsArray(t *testing.T) {
	_, router := newTestRouter(t)
	user := domain.User{ID: "u1", Name: "Ada", Email: "ada@example.com", Role: domain.RoleUser}

	decodeState(t, doJSON(t, router, http.MethodPost, "/api/session/login", user))
	decodeState(t, doJSON(t, router, http.MethodPost, "/api/cart/items",
		domain.CartItemInput{ProductID: "p1", Name: "Camera", Price: 10, Quantity: 1, RentalDays: 1}))

	w := doJSON(t, router, http.MethodPost, "/api/session/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"cart":[]`)

	w = doJSON(t, router, http.MethodGet, "/api/state", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"cart":[]`)
	assert.Contains(t, w.Body.String(), `"products":[]`)
	assert.Contains(t, w.Body.String(), `"featuredProducts":[]`)
}

// staleSnapshotStore serves a fixed snapshot so responses built from it are detectable
type staleSnapshotStore struct {
	*store.Store
}

func (s staleSnapshotStore) Snapshot() store.State {
	st := store.InitialState()
	st.SearchQuery = "stale"
	return st
}

func TestMutatorRoutes_RespondWithOwnTransition(t *testing.T) {
	router := chi.NewRouter()
	NewStateHandler(staleSnapshotStore{Store: store.New()}, zap.NewNop()).RegisterRoutes(router)

	st := decodeState(t, doJSON(t, router, http.MethodPut, "/api/catalog/search", map[string]string{"query": "drill"}))
	assert.Equal(t, "drill", st.SearchQuery)

	st = decodeState(t, doJSON(t, router, http.MethodPost, "/api/cart/items",
		domain.CartItemInput{ProductID: "p1", Price: 4, Quantity: 2, RentalDays: 3}))
	require.Len(t, st.Cart, 1)
	assert.Equal(t, 24.0, st.CartTotal)
	assert.Equal(t, "drill", st.SearchQuery)

	st = decodeState(t, doJSON(t, router, http.MethodPost, "/api/ui/sidebar/toggle", nil))
	assert.True(t, st.IsSidebarOpen)
	assert.Equal(t, "drill", st.SearchQuery)

	st = decodeState(t, doJSON(t, router, http.MethodGet, "/api/state", nil))
	assert.Equal(t, "stale", st.SearchQuery)
}
