package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eathub.backend/internal/domain/repositories"
	"eathub.backend/internal/interfaces/http/response"
	"eathub.backend/internal/usecases"
)

// MerchantHandler handles the merchant dashboard endpoint
type MerchantHandler struct {
	merchantUsecase *usecases.MerchantUsecase
	users           repositories.UserRepository
}

// NewMerchantHandler creates a new merchant handler
func NewMerchantHandler(merchantUsecase *usecases.MerchantUsecase, users repositories.UserRepository) *MerchantHandler {
	return &MerchantHandler{merchantUsecase: merchantUsecase, users: users}
}

// Dashboard returns the merchant's aggregate view
// GET /api/v1/merchant
func (h *MerchantHandler) Dashboard(c *gin.Context) {
	user, ok := currentUser(c, h.users)
	if !ok {
		return
	}

	dashboard, err := h.merchantUsecase.Dashboard(c.Request.Context(), user)
	if err != nil {
		response.DeniedFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": dashboard})
}
