package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/restodash/restodash/internal/domain"
	"github.com/restodash/restodash/pkg/httpx"
	"github.com/restodash/restodash/pkg/validate"
)

// Error bodies follow the {"detail": "..."} convention of the public API.
// The invalid-days message is part of the API contract, period included.
const msgInvalidWindowDays = "days must be an integer between 1 and 365."

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidWindowDays):
		c.JSON(http.StatusBadRequest, gin.H{"detail": msgInvalidWindowDays})
	case errors.Is(err, validate.ErrInvalidOrderEvent),
		errors.Is(err, domain.ErrInvalidCustomerEmail),
		errors.Is(err, domain.ErrCustomerRestaurantMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
	case errors.Is(err, domain.ErrRestaurantNotFound),
		errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
	default:
		h.log.Errorf(c.Request.Context(), "request failed method=%s path=%s err=%v",
			c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
	}
}

// idParam parses the :id path segment; on failure it writes the 400 itself.
func (h *Handler) idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid id"})
		return 0, false
	}
	return id, true
}

type createRestaurantRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *Handler) createRestaurant(c *gin.Context) {
	var req createRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "name is required"})
		return
	}
	rest, err := h.orders.CreateRestaurant(c.Request.Context(), req.Name)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rest)
}

func (h *Handler) listRestaurants(c *gin.Context) {
	restaurants, err := h.orders.ListRestaurants(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

func (h *Handler) getRestaurant(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	rest, err := h.orders.GetRestaurant(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rest)
}

func (h *Handler) deleteRestaurant(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	if err := h.orders.DeleteRestaurant(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type createCustomerRequest struct {
	Email string `json:"email" binding:"required"`
}

func (h *Handler) createCustomer(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	var req createCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "email is required"})
		return
	}
	customer, err := h.orders.CreateCustomer(c.Request.Context(), id, req.Email)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (h *Handler) listCustomers(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	customers, err := h.orders.ListCustomers(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *Handler) getCustomer(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	customer, err := h.orders.GetCustomer(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *Handler) createOrder(c *gin.Context) {
	var event domain.OrderEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid order payload"})
		return
	}
	order, err := h.orders.CreateOrder(c.Request.Context(), &event)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *Handler) getOrder(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	order, err := h.orders.GetOrder(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) listOrders(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	limit, offset := httpx.ParseLimitOffset(c, 20, 100)
	orders, err := h.orders.ListOrders(c.Request.Context(), id, limit, offset)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) getDashboard(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	days, err := httpx.ParseWindowDays(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	snap, err := h.dashboards.GetOrCompute(c.Request.Context(), id, days)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// refreshDashboard recomputes the snapshot regardless of cache state and
// resets its TTL. Used by ops after bulk backfills.
func (h *Handler) refreshDashboard(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	days, err := httpx.ParseWindowDays(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	snap, err := h.dashboards.Refresh(c.Request.Context(), id, days)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}
