package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"eathub.backend/internal/domain/entities"
	"eathub.backend/internal/domain/repositories"
	"eathub.backend/internal/interfaces/http/middleware"
	"eathub.backend/internal/interfaces/http/response"
	"eathub.backend/internal/usecases"
)

// UserCouponHandler handles the user's coupon wallet endpoints
type UserCouponHandler struct {
	userCouponUsecase *usecases.UserCouponUsecase
	users             repositories.UserRepository
}

// NewUserCouponHandler creates a new user coupon handler
func NewUserCouponHandler(userCouponUsecase *usecases.UserCouponUsecase, users repositories.UserRepository) *UserCouponHandler {
	return &UserCouponHandler{userCouponUsecase: userCouponUsecase, users: users}
}

// List returns the caller's claimed coupons
// GET /api/v1/user-coupons
func (h *UserCouponHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Denied(c, http.StatusUnauthorized)
		return
	}

	items, err := h.userCouponUsecase.ListMine(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// Delete removes the caller's own claim
// DELETE /api/v1/user-coupons/:id
func (h *UserCouponHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Denied(c, http.StatusUnauthorized)
		return
	}
	claimID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Denied(c, http.StatusNotFound)
		return
	}

	if err := h.userCouponUsecase.Delete(c.Request.Context(), claimID, userID); err != nil {
		response.DeniedFromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// MarkUsed lets the owning merchant flip a claim's redemption state
// PATCH /api/v1/user-coupons/:id
func (h *UserCouponHandler) MarkUsed(c *gin.Context) {
	user, ok := currentUser(c, h.users)
	if !ok {
		return
	}
	claimID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Denied(c, http.StatusNotFound)
		return
	}

	var input entities.MarkUsedInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Denied(c, http.StatusBadRequest)
		return
	}

	if err := h.userCouponUsecase.MarkUsed(c.Request.Context(), user, claimID, *input.IsUsed); err != nil {
		response.DeniedFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "success"})
}
