package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/restodash/restodash/internal/domain"
	"github.com/restodash/restodash/internal/ports"
	"github.com/restodash/restodash/internal/ports/mocks"
	"github.com/restodash/restodash/internal/usecase"
)

const (
	restaurantID = int64(42)
	windowDays   = 7
	snapshotKey  = "dashboard:restaurant:42:days:7"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func newDashboardService(ctrl *gomock.Controller) (*usecase.DashboardService, *mocks.MockRestaurantRepository, *mocks.MockOrderRepository, *mocks.MockDashboardCache) {
	restaurants := mocks.NewMockRestaurantRepository(ctrl)
	orders := mocks.NewMockOrderRepository(ctrl)
	cache := mocks.NewMockDashboardCache(ctrl)
	svc := usecase.NewDashboardService(restaurants, orders, cache, noopLogger{}, 60*time.Second, []int{7, 30, 90})
	return svc, restaurants, orders, cache
}

func TestSnapshotKey(t *testing.T) {
	if got := usecase.SnapshotKey(restaurantID, windowDays); got != snapshotKey {
		t.Fatalf("expected %q, got %q", snapshotKey, got)
	}
}

func TestGetOrCompute_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, restaurants, orders, cache := newDashboardService(ctrl)

	cached := &domain.DashboardSnapshot{WindowDays: windowDays}
	cache.EXPECT().Get(gomock.Any(), snapshotKey).Return(cached, true, nil)
	restaurants.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)
	orders.EXPECT().ListSince(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	got, err := svc.GetOrCompute(context.Background(), restaurantID, windowDays)
	if err != nil || got != cached {
		t.Fatalf("expected cached snapshot, got err=%v snap=%+v", err, got)
	}
}

func TestGetOrCompute_CacheMiss_ComputesAndStores(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, restaurants, orders, cache := newDashboardService(ctrl)

	rest := &domain.Restaurant{ID: restaurantID, Name: "Trattoria"}

	gomock.InOrder(
		cache.EXPECT().Get(gomock.Any(), snapshotKey).Return(nil, false, nil),
		restaurants.EXPECT().GetByID(gomock.Any(), restaurantID).Return(rest, nil),
		orders.EXPECT().ListSince(gomock.Any(), restaurantID, gomock.Any()).Return(nil, nil),
		cache.EXPECT().Set(gomock.Any(), snapshotKey, gomock.Any(), 60*time.Second).Return(nil),
	)

	got, err := svc.GetOrCompute(context.Background(), restaurantID, windowDays)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Restaurant.ID != restaurantID || got.WindowDays != windowDays {
		t.Fatalf("unexpected snapshot %+v", got)
	}
	if got.Totals.OrdersCount != 0 || got.Totals.RevenueTotal != "0.00" {
		t.Fatalf("expected empty totals, got %+v", got.Totals)
	}
}

func TestGetOrCompute_CacheErrorIsForcedMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, restaurants, orders, cache := newDashboardService(ctrl)

	rest := &domain.Restaurant{ID: restaurantID}

	cache.EXPECT().Get(gomock.Any(), snapshotKey).Return(nil, false, errors.New("redis down"))
	restaurants.EXPECT().GetByID(gomock.Any(), restaurantID).Return(rest, nil)
	orders.EXPECT().ListSince(gomock.Any(), restaurantID, gomock.Any()).Return(nil, nil)
	cache.EXPECT().Set(gomock.Any(), snapshotKey, gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	got, err := svc.GetOrCompute(context.Background(), restaurantID, windowDays)
	if err != nil || got == nil {
		t.Fatalf("expected degraded success, got err=%v snap=%+v", err, got)
	}
}

func TestGetOrCompute_InvalidWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, cache := newDashboardService(ctrl)

	cache.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)

	for _, days := range []int{0, -1, 366} {
		if _, err := svc.GetOrCompute(context.Background(), restaurantID, days); !errors.Is(err, domain.ErrInvalidWindowDays) {
			t.Fatalf("days=%d: expected ErrInvalidWindowDays, got %v", days, err)
		}
	}
}

func TestGetOrCompute_RestaurantNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, restaurants, _, cache := newDashboardService(ctrl)

	cache.EXPECT().Get(gomock.Any(), snapshotKey).Return(nil, false, nil)
	restaurants.EXPECT().GetByID(gomock.Any(), restaurantID).Return(nil, nil)
	cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	if _, err := svc.GetOrCompute(context.Background(), restaurantID, windowDays); !errors.Is(err, domain.ErrRestaurantNotFound) {
		t.Fatalf("expected ErrRestaurantNotFound, got %v", err)
	}
}

func TestGetOrCompute_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, restaurants, orders, cache := newDashboardService(ctrl)

	storeErr := errors.New("connection refused")

	cache.EXPECT().Get(gomock.Any(), snapshotKey).Return(nil, false, nil)
	restaurants.EXPECT().GetByID(gomock.Any(), restaurantID).Return(&domain.Restaurant{ID: restaurantID}, nil)
	orders.EXPECT().ListSince(gomock.Any(), restaurantID, gomock.Any()).Return(nil, storeErr)
	cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	if _, err := svc.GetOrCompute(context.Background(), restaurantID, windowDays); !errors.Is(err, storeErr) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestGetOrCompute_AggregatesOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, restaurants, orders, cache := newDashboardService(ctrl)

	rest := &domain.Restaurant{ID: restaurantID, Name: "Trattoria"}
	now := time.Now().UTC()
	rows := []ports.OrderWithEmail{
		orderFor(10, "a@example.com", "10.00", now.Add(-time.Hour)),
		orderFor(10, "a@example.com", "20.00", now.Add(-2*time.Hour)),
		orderFor(11, "b@example.com", "30.00", now.Add(-3*time.Hour)),
	}

	cache.EXPECT().Get(gomock.Any(), snapshotKey).Return(nil, false, nil)
	restaurants.EXPECT().GetByID(gomock.Any(), restaurantID).Return(rest, nil)
	orders.EXPECT().ListSince(gomock.Any(), restaurantID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, since time.Time) ([]ports.OrderWithEmail, error) {
			// the window lower bound must be windowDays calendar days back
			wantSince := time.Now().UTC().AddDate(0, 0, -windowDays)
			if d := since.Sub(wantSince); d < -time.Minute || d > time.Minute {
				t.Fatalf("unexpected since=%s, want about %s", since, wantSince)
			}
			return rows, nil
		})
	cache.EXPECT().Set(gomock.Any(), snapshotKey, gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.GetOrCompute(context.Background(), restaurantID, windowDays)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Totals.OrdersCount != 3 || got.Totals.RevenueTotal != "60.00" ||
		got.Totals.AvgOrderValue != "20.00" || got.Totals.UniqueCustomers != 2 {
		t.Fatalf("unexpected totals %+v", got.Totals)
	}
}

func TestRefresh_BypassesCacheRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, restaurants, orders, cache := newDashboardService(ctrl)

	rest := &domain.Restaurant{ID: restaurantID}

	cache.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)
	restaurants.EXPECT().GetByID(gomock.Any(), restaurantID).Return(rest, nil)
	orders.EXPECT().ListSince(gomock.Any(), restaurantID, gomock.Any()).Return(nil, nil)
	cache.EXPECT().Set(gomock.Any(), snapshotKey, gomock.Any(), 60*time.Second).Return(nil)

	if _, err := svc.Refresh(context.Background(), restaurantID, windowDays); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestInvalidateAll_DeletesConfiguredWindows(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, cache := newDashboardService(ctrl)

	cache.EXPECT().Delete(gomock.Any(),
		"dashboard:restaurant:42:days:7",
		"dashboard:restaurant:42:days:30",
		"dashboard:restaurant:42:days:90",
	).Return(nil)

	svc.InvalidateAll(context.Background(), restaurantID)
}

func TestInvalidateAll_CacheErrorSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, cache := newDashboardService(ctrl)

	cache.EXPECT().Delete(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("redis down"))

	// must not panic or propagate
	svc.InvalidateAll(context.Background(), restaurantID)
}

func TestInvalidate_SingleKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, cache := newDashboardService(ctrl)

	cache.EXPECT().Delete(gomock.Any(), "dashboard:restaurant:42:days:30").Return(nil)

	svc.Invalidate(context.Background(), restaurantID, 30)
}
