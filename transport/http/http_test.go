package http

import (
	"net/http"
	"net/http/httptest"
	"shoppinglist/config"
	"shoppinglist/infras/otel/mocks"
	"shoppinglist/internal/domains/shoppinglist/model/dto"
	svcMocks "shoppinglist/internal/domains/shoppinglist/service/mocks"
	"shoppinglist/internal/handlers/shoppinglist"
	"shoppinglist/transport/http/middleware"
	"shoppinglist/transport/http/router"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestServer(t *testing.T, cfg *config.Config) (*HTTP, *svcMocks.MockShoppingList, *mocks.Otel) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockService := svcMocks.NewMockShoppingList(ctrl)
	otl := mocks.NewOtel()

	r := router.New(router.DomainHandlers{
		ShoppingList: shoppinglist.New(mockService, otl),
	})

	return New(cfg, r, middleware.NewAppMiddleware(otl, cfg)), mockService, otl
}

func TestHTTP_Health(t *testing.T) {
	server, _, _ := newTestServer(t, &config.Config{})

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"state":"ready"}}`, rec.Body.String())

	server.setState(ServerStateInGracePeriod)

	rec = httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"data":{"state":"grace_period"}}`, rec.Body.String())
}

func TestHTTP_RoutesAreTraced(t *testing.T) {
	server, mockService, otl := newTestServer(t, &config.Config{})

	mockService.EXPECT().GetAll(gomock.Any()).Return([]dto.ItemResponse{}, nil)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/shopping-list", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"GET /v1/shopping-list", "handler.GetItems"}, otl.Spans())
}

func TestHTTP_GracePeriodStillServes(t *testing.T) {
	server, mockService, _ := newTestServer(t, &config.Config{})
	server.setup()
	server.setState(ServerStateInGracePeriod)

	mockService.EXPECT().GetAll(gomock.Any()).Return([]dto.ItemResponse{}, nil)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/shopping-list", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHTTP_CleanupPeriodRejects(t *testing.T) {
	server, _, _ := newTestServer(t, &config.Config{})
	server.setup()
	server.setState(ServerStateInCleanupPeriod)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/shopping-list", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"message":"SERVER PREPARING TO SHUT DOWN"}`, rec.Body.String())
}

func TestHTTP_CORS(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"https://shop.example.com"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet, http.MethodPatch}

	server, _, _ := newTestServer(t, cfg)

	req := httptest.NewRequest(http.MethodOptions, "/v1/shopping-list/1", nil)
	req.Header.Set("Origin", "https://shop.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	assert.Equal(t, "https://shop.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestHTTP_Swagger(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		server, _, _ := newTestServer(t, &config.Config{})

		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("serves the API document", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.App.Swagger.Enable = true

		server, _, _ := newTestServer(t, cfg)

		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"/v1/shopping-list/{id}"`)
	})
}

func TestServerState_String(t *testing.T) {
	assert.Equal(t, "starting", ServerState(0).String())
	assert.Equal(t, "ready", ServerStateReady.String())
	assert.Equal(t, "cleanup_period", ServerStateInCleanupPeriod.String())
}
