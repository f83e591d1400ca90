package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/order-intake-service/internal/service"
)

type Handler struct {
	orderService *service.OrderService
}

func NewHandler(orderService *service.OrderService) *Handler {
	return &Handler{orderService: orderService}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/order", h.SubmitOrder)
}

// SubmitOrder accepts one order submission. A body that is not a JSON object
// is rejected with 400; storage failures come back as a generic 500 with the
// detail kept in the logs.
func (h *Handler) SubmitOrder(c *gin.Context) {
	var req service.SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if _, err := h.orderService.SubmitOrder(c.Request.Context(), req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order received and saved"})
}
