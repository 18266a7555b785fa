package httpx_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/restodash/restodash/internal/domain"
	"github.com/restodash/restodash/pkg/httpx"
)

// helper to build a *gin.Context with a query string
func ctxWithQuery(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/?"+rawQuery, http.NoBody)
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c
}

func TestClampInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		v, min, max int
		want        int
	}{
		{"below_min", 0, 1, 10, 1},
		{"above_max", 11, 1, 10, 10},
		{"inside", 5, 1, 10, 5},
		{"at_min", 1, 1, 10, 1},
		{"at_max", 10, 1, 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := httpx.ClampInt(tt.v, tt.min, tt.max); got != tt.want {
				t.Fatalf("ClampInt(%d, %d, %d) = %d, want %d", tt.v, tt.min, tt.max, got, tt.want)
			}
		})
	}
}

func TestParseWindowDays(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		query   string
		want    int
		wantErr bool
	}{
		{"missing_defaults_to_7", "", 7, false},
		{"min_accepted", "days=1", 1, false},
		{"max_accepted", "days=365", 365, false},
		{"typical", "days=30", 30, false},
		{"zero_rejected", "days=0", 0, true},
		{"above_max_rejected", "days=366", 0, true},
		{"negative_rejected", "days=-5", 0, true},
		{"non_integer_rejected", "days=abc", 0, true},
		{"float_rejected", "days=7.5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := httpx.ParseWindowDays(ctxWithQuery(tt.query))
			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidWindowDays) {
					t.Fatalf("want ErrInvalidWindowDays, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("days = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseLimitOffset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "", 20, 0},
		{"explicit", "limit=50&offset=10", 50, 10},
		{"limit_clamped_high", "limit=500", 100, 0},
		{"limit_clamped_low", "limit=0", 1, 0},
		{"negative_offset_ignored", "offset=-3", 20, 0},
		{"garbage_ignored", "limit=abc&offset=xyz", 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset := httpx.ParseLimitOffset(ctxWithQuery(tt.query), 20, 100)
			if limit != tt.wantLimit || offset != tt.wantOffset {
				t.Fatalf("got limit=%d offset=%d, want limit=%d offset=%d",
					limit, offset, tt.wantLimit, tt.wantOffset)
			}
		})
	}
}
