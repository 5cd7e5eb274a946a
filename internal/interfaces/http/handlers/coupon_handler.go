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

// CouponHandler handles coupon endpoints
type CouponHandler struct {
	couponUsecase *usecases.CouponUsecase
	users         repositories.UserRepository
}

// NewCouponHandler creates a new coupon handler
func NewCouponHandler(couponUsecase *usecases.CouponUsecase, users repositories.UserRepository) *CouponHandler {
	return &CouponHandler{couponUsecase: couponUsecase, users: users}
}

// Create handles coupon creation
// POST /api/v1/coupons
func (h *CouponHandler) Create(c *gin.Context) {
	user, ok := currentUser(c, h.users)
	if !ok {
		return
	}

	var input entities.CouponCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Denied(c, http.StatusBadRequest)
		return
	}

	coupon, err := h.couponUsecase.Create(c.Request.Context(), user, &input)
	if err != nil {
		response.DeniedFromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, coupon)
}

// Claim handles a user claiming a coupon
// POST /api/v1/coupons/:id/claim
func (h *CouponHandler) Claim(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Denied(c, http.StatusUnauthorized)
		return
	}
	couponID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Denied(c, http.StatusNotFound)
		return
	}

	created, err := h.couponUsecase.Claim(c.Request.Context(), userID, couponID)
	if err != nil {
		response.DeniedFromError(c, err)
		return
	}
	if !created {
		c.JSON(http.StatusOK, gin.H{"success": false})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true})
}

// Detail returns a coupon with claim statistics for its owner
// GET /api/v1/coupons/:id
func (h *CouponHandler) Detail(c *gin.Context) {
	user, ok := currentUser(c, h.users)
	if !ok {
		return
	}
	couponID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Denied(c, http.StatusNotFound)
		return
	}

	detail, err := h.couponUsecase.Detail(c.Request.Context(), user, couponID)
	if err != nil {
		response.DeniedFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": detail})
}

// Archive flips a coupon to archived
// PATCH /api/v1/coupons/:id
func (h *CouponHandler) Archive(c *gin.Context) {
	user, ok := currentUser(c, h.users)
	if !ok {
		return
	}
	couponID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Denied(c, http.StatusNotFound)
		return
	}

	if err := h.couponUsecase.Archive(c.Request.Context(), user, couponID); err != nil {
		response.DeniedFromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Usages lists every claim of a coupon for its owner
// GET /api/v1/coupons/:id/usages
func (h *CouponHandler) Usages(c *gin.Context) {
	user, ok := currentUser(c, h.users)
	if !ok {
		return
	}
	couponID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Denied(c, http.StatusNotFound)
		return
	}

	report, err := h.couponUsecase.Usages(c.Request.Context(), user, couponID)
	if err != nil {
		response.DeniedFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, report)
}
