package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eathub.backend/internal/domain/entities"
	"eathub.backend/internal/interfaces/http/middleware"
	"eathub.backend/internal/interfaces/http/response"
	"eathub.backend/internal/usecases"
)

// BillingHandler handles subscription payment order endpoints
type BillingHandler struct {
	billingUsecase *usecases.BillingUsecase
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(billingUsecase *usecases.BillingUsecase) *BillingHandler {
	return &BillingHandler{billingUsecase: billingUsecase}
}

// PrepareOrder creates an unpaid payment order for the caller
// POST /api/v1/billing/orders
func (h *BillingHandler) PrepareOrder(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Denied(c, http.StatusUnauthorized)
		return
	}

	var input entities.PaymentOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.billingUsecase.PrepareOrder(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"result": order})
}
