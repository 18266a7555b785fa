package httpx

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/restodash/restodash/internal/domain"
)

// ClampInt limits v to the range [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ParseWindowDays reads the ?days query parameter. A missing parameter means
// domain.DefaultWindowDays; anything that is not an integer in
// [domain.MinWindowDays, domain.MaxWindowDays] is domain.ErrInvalidWindowDays.
func ParseWindowDays(c *gin.Context) (int, error) {
	raw := c.Query("days")
	if raw == "" {
		return domain.DefaultWindowDays, nil
	}
	days, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.ErrInvalidWindowDays
	}
	if days < domain.MinWindowDays || days > domain.MaxWindowDays {
		return 0, domain.ErrInvalidWindowDays
	}
	return days, nil
}

// ParseLimitOffset reads limit/offset from the query with defaults and bounds.
func ParseLimitOffset(c *gin.Context, defaultLimit, maxLimit int) (limit, offset int) {
	limit = defaultLimit
	if v, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit))); err == nil {
		limit = ClampInt(v, 1, maxLimit)
	}
	if v, err := strconv.Atoi(c.DefaultQuery("offset", "0")); err == nil && v >= 0 {
		offset = v
	}
	return
}
