package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"

	"github.com/restodash/restodash/internal/domain"
	"github.com/restodash/restodash/internal/ports/mocks"
	rest "github.com/restodash/restodash/internal/transport/http"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockOrderService, *mocks.MockDashboardService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	orders := mocks.NewMockOrderService(ctrl)
	dashboards := mocks.NewMockDashboardService(ctrl)

	h := rest.NewHandler(orders, dashboards, noopLogger{})
	return rest.NewRouter(h, ""), orders, dashboards
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, http.NoBody)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetDashboard_OK(t *testing.T) {
	r, _, dashboards := newTestRouter(t)

	want := &domain.DashboardSnapshot{
		Restaurant: domain.RestaurantRef{ID: 42, Name: "Trattoria"},
		WindowDays: 7,
		Totals: domain.DashboardTotals{
			OrdersCount: 3, RevenueTotal: "60.00", AvgOrderValue: "20.00", UniqueCustomers: 2,
		},
		TopCustomers: []domain.TopCustomer{},
	}
	dashboards.EXPECT().GetOrCompute(gomock.Any(), int64(42), 7).Return(want, nil)

	w := do(r, http.MethodGet, "/restaurants/42/dashboard", "")

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	for _, key := range []string{"restaurant", "window_days", "since", "totals", "top_customers"} {
		if _, ok := got[key]; !ok {
			t.Fatalf("response missing %q: %s", key, w.Body.String())
		}
	}
	if string(got["top_customers"]) != "[]" {
		t.Fatalf("expected empty array, got %s", got["top_customers"])
	}
}

func TestGetDashboard_CustomWindow(t *testing.T) {
	r, _, dashboards := newTestRouter(t)

	dashboards.EXPECT().GetOrCompute(gomock.Any(), int64(42), 30).
		Return(&domain.DashboardSnapshot{WindowDays: 30}, nil)

	w := do(r, http.MethodGet, "/restaurants/42/dashboard?days=30", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestGetDashboard_InvalidDays(t *testing.T) {
	r, _, dashboards := newTestRouter(t)

	dashboards.EXPECT().GetOrCompute(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	for _, q := range []string{"days=0", "days=366", "days=abc", "days=7.5"} {
		w := do(r, http.MethodGet, "/restaurants/42/dashboard?"+q, "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: want 400, got %d", q, w.Code)
		}
		want := `{"detail":"days must be an integer between 1 and 365."}`
		if w.Body.String() != want {
			t.Fatalf("%s: want body %s, got %s", q, want, w.Body.String())
		}
	}
}

func TestGetDashboard_RestaurantNotFound(t *testing.T) {
	r, _, dashboards := newTestRouter(t)

	dashboards.EXPECT().GetOrCompute(gomock.Any(), int64(99), 7).
		Return(nil, domain.ErrRestaurantNotFound)

	w := do(r, http.MethodGet, "/restaurants/99/dashboard", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestGetDashboard_StoreError(t *testing.T) {
	r, _, dashboards := newTestRouter(t)

	dashboards.EXPECT().GetOrCompute(gomock.Any(), int64(42), 7).
		Return(nil, errors.New("db down"))

	w := do(r, http.MethodGet, "/restaurants/42/dashboard", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("want 500, got %d", w.Code)
	}
}

func TestRefreshDashboard_OK(t *testing.T) {
	r, _, dashboards := newTestRouter(t)

	dashboards.EXPECT().Refresh(gomock.Any(), int64(42), 90).
		Return(&domain.DashboardSnapshot{WindowDays: 90}, nil)

	w := do(r, http.MethodPost, "/restaurants/42/dashboard/refresh?days=90", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestCreateRestaurant(t *testing.T) {
	r, orders, _ := newTestRouter(t)

	orders.EXPECT().CreateRestaurant(gomock.Any(), "Trattoria").
		Return(&domain.Restaurant{ID: 1, Name: "Trattoria"}, nil)

	w := do(r, http.MethodPost, "/restaurants", `{"name":"Trattoria"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("want 201, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestCreateRestaurant_MissingName(t *testing.T) {
	r, orders, _ := newTestRouter(t)

	orders.EXPECT().CreateRestaurant(gomock.Any(), gomock.Any()).Times(0)

	w := do(r, http.MethodPost, "/restaurants", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", w.Code)
	}
}

func TestCreateCustomer_InvalidEmail(t *testing.T) {
	r, orders, _ := newTestRouter(t)

	orders.EXPECT().CreateCustomer(gomock.Any(), int64(1), "nope").
		Return(nil, domain.ErrInvalidCustomerEmail)

	w := do(r, http.MethodPost, "/restaurants/1/customers", `{"email":"nope"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", w.Code)
	}
}

func TestCreateOrder_OK(t *testing.T) {
	r, orders, _ := newTestRouter(t)

	orders.EXPECT().CreateOrder(gomock.Any(), gomock.AssignableToTypeOf(&domain.OrderEvent{})).
		DoAndReturn(func(_ context.Context, event *domain.OrderEvent) (*domain.Order, error) {
			if event.RestaurantID != 42 || event.CustomerID != 7 || !event.TotalAmount.Equal(decimal.RequireFromString("19.99")) {
				t.Fatalf("unexpected event %+v", event)
			}
			return &domain.Order{ID: 100, RestaurantID: 42, CustomerID: 7, TotalAmount: event.TotalAmount}, nil
		})

	w := do(r, http.MethodPost, "/orders", `{"restaurant_id":42,"customer_id":7,"total_amount":"19.99"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("want 201, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestCreateOrder_CustomerOfOtherRestaurant(t *testing.T) {
	r, orders, _ := newTestRouter(t)

	orders.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrCustomerRestaurantMismatch)

	w := do(r, http.MethodPost, "/orders", `{"restaurant_id":42,"customer_id":7,"total_amount":"10.00"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", w.Code)
	}
}

func TestDeleteRestaurant_NoContent(t *testing.T) {
	r, orders, _ := newTestRouter(t)

	orders.EXPECT().DeleteRestaurant(gomock.Any(), int64(42)).Return(nil)

	w := do(r, http.MethodDelete, "/restaurants/42", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("want 204, got %d", w.Code)
	}
}

func TestGetOrder_InvalidID(t *testing.T) {
	r, orders, _ := newTestRouter(t)

	orders.EXPECT().GetOrder(gomock.Any(), gomock.Any()).Times(0)

	w := do(r, http.MethodGet, "/orders/abc", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", w.Code)
	}
}

func TestListOrders_PassesBounds(t *testing.T) {
	r, orders, _ := newTestRouter(t)

	orders.EXPECT().ListOrders(gomock.Any(), int64(42), 100, 5).Return(nil, nil)

	// limit above the cap gets clamped to 100
	w := do(r, http.MethodGet, "/restaurants/42/orders?limit=500&offset=5", "")
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
}
