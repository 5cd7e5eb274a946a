package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"eathub.backend/internal/domain/entities"
	"eathub.backend/internal/domain/repositories"
	"eathub.backend/internal/interfaces/http/response"
	"eathub.backend/internal/usecases"
)

// PromotionHandler handles promotion endpoints
type PromotionHandler struct {
	promotionUsecase *usecases.PromotionUsecase
	users            repositories.UserRepository
}

// NewPromotionHandler creates a new promotion handler
func NewPromotionHandler(promotionUsecase *usecases.PromotionUsecase, users repositories.UserRepository) *PromotionHandler {
	return &PromotionHandler{promotionUsecase: promotionUsecase, users: users}
}

// Create handles promotion creation. Unlike the coupon flow, failures here
// carry a localized error message.
// POST /api/v1/promotions
func (h *PromotionHandler) Create(c *gin.Context) {
	user, ok := currentUser(c, h.users)
	if !ok {
		return
	}

	var input entities.PromotionCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Denied(c, http.StatusBadRequest)
		return
	}

	promotion, err := h.promotionUsecase.Create(c.Request.Context(), user, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, promotion)
}

// Detail returns a non-archived promotion for its owner
// GET /api/v1/promotions/:id
func (h *PromotionHandler) Detail(c *gin.Context) {
	user, ok := currentUser(c, h.users)
	if !ok {
		return
	}
	promotionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Denied(c, http.StatusNotFound)
		return
	}

	promotion, err := h.promotionUsecase.Detail(c.Request.Context(), user, promotionID)
	if err != nil {
		response.DeniedFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": promotion})
}

// Archive flips a promotion to archived
// PATCH /api/v1/promotions/:id
func (h *PromotionHandler) Archive(c *gin.Context) {
	user, ok := currentUser(c, h.users)
	if !ok {
		return
	}
	promotionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Denied(c, http.StatusNotFound)
		return
	}

	if err := h.promotionUsecase.Archive(c.Request.Context(), user, promotionID); err != nil {
		response.DeniedFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
