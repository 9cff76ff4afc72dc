package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"meatdelivery/api"
	"meatdelivery/cmd"
	http_adapter "meatdelivery/internal/adapters/in/http"
	"meatdelivery/internal/adapters/out/postgres"
	"meatdelivery/internal/adapters/out/postgres/pgtest"
	"meatdelivery/internal/core/domain/model/kernel"
	"meatdelivery/internal/core/domain/model/notification"
	"meatdelivery/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var testSecret = []byte("test-secret")

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockNotificationRepository) ListByRecipient(
	ctx context.Context,
	recipientID kernel.UUID,
	limit int,
	now time.Time,
) ([]*notification.Notification, int64, error) {
	args := m.Called(ctx, recipientID, limit, now)
	items, _ := args.Get(0).([]*notification.Notification)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *MockNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	n, _ := args.Get(0).(*notification.Notification)
	return n, args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, n *notification.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockNotificationRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event ports.OrderEvent) error {
	return m.Called(ctx, event).Error(0)
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type ServerTestSuite struct {
	suite.Suite
	e         *echo.Echo
	store     *MockNotificationRepository
	publisher *MockEventPublisher
	admin     string
	customer  kernel.UUID
}

func (suite *ServerTestSuite) SetupTest() {
	db := pgtest.SQLite(suite.T(), postgres.Tables()...)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	suite.store = new(MockNotificationRepository)
	suite.store.On("Add", mock.Anything, mock.Anything).Return(nil).Maybe()
	suite.publisher = new(MockEventPublisher)
	suite.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Maybe()

	root := cmd.NewCompositionRoot(cmd.Config{NotificationCleanupSchedule: "@daily"}, db, suite.store, suite.publisher, logger)
	suite.e = http_adapter.NewEcho(logger)
	root.CreateServer().Register(suite.e.Group("/api/v1"), http_adapter.Authenticate(testSecret))

	suite.admin = suite.token(kernel.NewUUID(), http_adapter.RoleAdmin)
	suite.customer = kernel.NewUUID()
}

func (suite *ServerTestSuite) token(userID kernel.UUID, role http_adapter.Role) string {
	token, err := http_adapter.SignToken(testSecret, userID, role, nil)
	suite.Require().NoError(err)
	return token
}

func (suite *ServerTestSuite) customerToken() string {
	return suite.token(suite.customer, http_adapter.RoleCustomer)
}

func (suite *ServerTestSuite) do(method, path, token string, body any) (int, envelope) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	suite.e.ServeHTTP(rec, req)

	var env envelope
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

func (suite *ServerTestSuite) createProduct(name string, price float64, stock int) string {
	code, env := suite.do(http.MethodPost, "/api/v1/products", suite.admin, map[string]any{
		"name":          name,
		"category":      "chicken",
		"price":         price,
		"stockQuantity": stock,
	})
	suite.Require().Equal(http.StatusCreated, code, env.Message)

	var product struct {
		ID string `json:"id"`
	}
	suite.Require().NoError(json.Unmarshal(env.Data, &product))
	return product.ID
}

func (suite *ServerTestSuite) TestAuth_RejectsMissingToken() {
	code, env := suite.do(http.MethodGet, "/api/v1/cart", "", nil)

	suite.Equal(http.StatusUnauthorized, code)
	suite.False(env.Success)
}

func (suite *ServerTestSuite) TestAuth_RejectsForgedToken() {
	forged, err := http_adapter.SignToken([]byte("other-secret"), suite.customer, http_adapter.RoleCustomer, nil)
	suite.Require().NoError(err)

	code, _ := suite.do(http.MethodGet, "/api/v1/cart", forged, nil)

	suite.Equal(http.StatusUnauthorized, code)
}

func (suite *ServerTestSuite) TestAuth_RejectsCustomerOnAdminRoute() {
	code, env := suite.do(http.MethodPost, "/api/v1/products", suite.customerToken(), map[string]any{
		"name": "Chicken Breast", "category": "chicken", "price": 250, "stockQuantity": 5,
	})

	suite.Equal(http.StatusForbidden, code)
	suite.Equal("access denied", env.Message)
}

func (suite *ServerTestSuite) TestAuth_RejectsCustomerOnCourierRoute() {
	code, _ := suite.do(http.MethodGet, "/api/v1/delivery/orders/pending", suite.customerToken(), nil)

	suite.Equal(http.StatusForbidden, code)
}

func (suite *ServerTestSuite) TestCreateProduct_RejectsInvalidBody() {
	code, env := suite.do(http.MethodPost, "/api/v1/products", suite.admin, map[string]any{
		"category": "chicken", "price": 250,
	})

	suite.Equal(http.StatusBadRequest, code)
	suite.False(env.Success)
}

func (suite *ServerTestSuite) TestCreateProduct_RejectsUnknownCategory() {
	code, _ := suite.do(http.MethodPost, "/api/v1/products", suite.admin, map[string]any{
		"name": "Cabbage", "category": "vegetables", "price": 20,
	})

	suite.Equal(http.StatusBadRequest, code)
}

func (suite *ServerTestSuite) TestProducts_CreateThenRead() {
	id := suite.createProduct("Chicken Breast", 250, 10)
	suite.createProduct("Chicken Wings", 180, 0)

	code, env := suite.do(http.MethodGet, "/api/v1/products/"+id, "", nil)
	suite.Require().Equal(http.StatusOK, code)
	var product struct {
		Name    string `json:"name"`
		InStock bool   `json:"inStock"`
	}
	suite.Require().NoError(json.Unmarshal(env.Data, &product))
	suite.Equal("Chicken Breast", product.Name)
	suite.True(product.InStock)

	code, env = suite.do(http.MethodGet, "/api/v1/products?category=chicken&inStock=true", "", nil)
	suite.Require().Equal(http.StatusOK, code)
	var page struct {
		Items []struct {
			ID string `json:"id"`
		} `json:"items"`
		Total int `json:"total"`
	}
	suite.Require().NoError(json.Unmarshal(env.Data, &page))
	suite.Equal(1, page.Total)
	suite.Require().Len(page.Items, 1)
	suite.Equal(id, page.Items[0].ID)
}

func (suite *ServerTestSuite) TestGetProduct_MapsErrors() {
	code, _ := suite.do(http.MethodGet, "/api/v1/products/not-a-uuid", "", nil)
	suite.Equal(http.StatusBadRequest, code)

	code, _ = suite.do(http.MethodGet, "/api/v1/products/"+kernel.NewUUID().String(), "", nil)
	suite.Equal(http.StatusNotFound, code)
}

func (suite *ServerTestSuite) TestListProducts_RejectsMalformedQuery() {
	code, _ := suite.do(http.MethodGet, "/api/v1/products?minPrice=cheap", "", nil)

	suite.Equal(http.StatusBadRequest, code)
}

func (suite *ServerTestSuite) TestCart_AddItemThenRead() {
	id := suite.createProduct("Mutton Curry Cut", 600, 10)

	code, env := suite.do(http.MethodPost, "/api/v1/cart/add", suite.customerToken(), map[string]any{
		"productId": id, "quantity": 2,
	})
	suite.Require().Equal(http.StatusOK, code, env.Message)

	code, env = suite.do(http.MethodGet, "/api/v1/cart", suite.customerToken(), nil)
	suite.Require().Equal(http.StatusOK, code)
	var cart struct {
		Items []struct {
			ProductID string `json:"productId"`
			Quantity  int    `json:"quantity"`
		} `json:"items"`
		TotalItems int `json:"totalItems"`
	}
	suite.Require().NoError(json.Unmarshal(env.Data, &cart))
	suite.Require().Len(cart.Items, 1)
	suite.Equal(id, cart.Items[0].ProductID)
	suite.Equal(2, cart.TotalItems)
}

func (suite *ServerTestSuite) TestCart_RejectsQuantityAboveLimit() {
	id := suite.createProduct("Pork Ribs", 400, 100)

	code, _ := suite.do(http.MethodPost, "/api/v1/cart/add", suite.customerToken(), map[string]any{
		"productId": id, "quantity": 51,
	})

	suite.Equal(http.StatusBadRequest, code)
}

func (suite *ServerTestSuite) TestCheckout_PlacesOrderVisibleToItsCustomer() {
	id := suite.createProduct("Fish Fillet", 300, 10)
	code, env := suite.do(http.MethodPost, "/api/v1/cart/add", suite.customerToken(), map[string]any{
		"productId": id, "quantity": 2,
	})
	suite.Require().Equal(http.StatusOK, code, env.Message)

	code, env = suite.do(http.MethodPost, "/api/v1/orders", suite.customerToken(), map[string]any{
		"deliveryAddress": map[string]any{
			"street": "12 MG Road", "city": "Bengaluru", "state": "Karnataka", "zipCode": "560001",
		},
		"contactInfo":   map[string]any{"phone": "+919800000000"},
		"paymentMethod": "cash-on-delivery",
	})
	suite.Require().Equal(http.StatusCreated, code, env.Message)
	var placed struct {
		ID     string `json:"id"`
		Number string `json:"orderNumber"`
		Status string `json:"status"`
	}
	suite.Require().NoError(json.Unmarshal(env.Data, &placed))
	suite.Equal("pending", placed.Status)
	suite.NotEmpty(placed.Number)

	code, _ = suite.do(http.MethodGet, "/api/v1/orders/"+placed.ID, suite.customerToken(), nil)
	suite.Equal(http.StatusOK, code)

	stranger := suite.token(kernel.NewUUID(), http_adapter.RoleCustomer)
	code, _ = suite.do(http.MethodGet, "/api/v1/orders/"+placed.ID, stranger, nil)
	suite.Equal(http.StatusForbidden, code)

	suite.publisher.AssertCalled(suite.T(), "Publish", mock.Anything, mock.MatchedBy(func(e ports.OrderEvent) bool {
		return e.OrderID == placed.ID && e.Status == "pending"
	}))
}

func (suite *ServerTestSuite) TestCheckout_RejectsEmptyCart() {
	code, env := suite.do(http.MethodPost, "/api/v1/orders", suite.customerToken(), map[string]any{
		"deliveryAddress": map[string]any{
			"street": "12 MG Road", "city": "Bengaluru", "state": "Karnataka", "zipCode": "560001",
		},
		"contactInfo": map[string]any{"phone": "+919800000000"},
	})

	suite.Equal(http.StatusConflict, code)
	suite.False(env.Success)
}

func (suite *ServerTestSuite) TestRoutes_AreDocumented() {
	doc, err := api.Load(suite.T().Context())
	suite.Require().NoError(err)

	for _, r := range suite.e.Routes() {
		path, isAPI := strings.CutPrefix(r.Path, "/api/v1")
		if !isAPI {
			continue
		}
		item := doc.Paths.Find(openAPIPath(path))
		suite.Require().NotNil(item, "%s %s is not documented", r.Method, r.Path)
		suite.NotNil(item.GetOperation(r.Method), "%s %s is not documented", r.Method, r.Path)
	}
}

func openAPIPath(echoPath string) string {
	segments := strings.Split(echoPath, "/")
	for i, s := range segments {
		if name, isParam := strings.CutPrefix(s, ":"); isParam {
			segments[i] = "{" + name + "}"
		}
	}
	return strings.Join(segments, "/")
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func TestSignToken(t *testing.T) {
	t.Run("should round trip through Authenticate", func(t *testing.T) {
		userID := kernel.NewUUID()
		token, err := http_adapter.SignToken(testSecret, userID, http_adapter.RoleCourier, nil)
		require.NoError(t, err)

		e := echo.New()
		e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) },
			http_adapter.Authenticate(testSecret), http_adapter.RequireRole(http_adapter.RoleCourier))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNoContent, rec.Code)
	})
}
