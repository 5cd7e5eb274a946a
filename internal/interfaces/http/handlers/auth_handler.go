package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"eathub.backend/internal/domain/entities"
	"eathub.backend/internal/interfaces/http/middleware"
	"eathub.backend/internal/interfaces/http/response"
	"eathub.backend/internal/usecases"
)

// sessionMaxAge matches the opaque token's Redis TTL.
const sessionMaxAge = 3600

// AuthHandler handles signup, login and session endpoints
type AuthHandler struct {
	authUsecase *usecases.AuthUsecase
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase *usecases.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

// Signup registers a regular account
// POST /api/v1/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var input entities.SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authUsecase.Signup(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "註冊成功",
		"user": gin.H{
			"uuid":     user.ID,
			"userName": user.UserName,
			"email":    user.Email,
		},
	})
}

// MerchantSignup registers a merchant account with its restaurant
// POST /api/v1/auth/merchant-signup
func (h *AuthHandler) MerchantSignup(c *gin.Context) {
	var input entities.MerchantSignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authUsecase.MerchantSignup(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "商家註冊成功",
		"user": gin.H{
			"uuid":     user.ID,
			"userName": user.UserName,
			"email":    user.Email,
			"role":     user.Role,
		},
	})
}

// Login verifies credentials and starts a session. The opaque token rides
// in an httpOnly cookie as "<user uuid>:<token>"; the JWT pair is returned
// in the body for API clients.
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "帳號或是密碼錯誤，請重新輸入。"})
		return
	}

	result, err := h.authUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	var restaurantUUID interface{}
	if result.User.RestaurantID.Valid {
		restaurantUUID = result.User.RestaurantID.UUID
	}

	cookieValue := result.User.ID.String() + ":" + result.SessionToken
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(middleware.AuthCookieName, cookieValue, sessionMaxAge, "/", "", true, true)

	c.JSON(http.StatusOK, gin.H{
		"message": "登入成功",
		"user": gin.H{
			"firstName":      result.User.FirstName.String,
			"lastName":       result.User.LastName.String,
			"userName":       result.User.UserName,
			"role":           result.User.Role,
			"restaurantUuid": restaurantUUID,
		},
		"accessToken":  result.TokenPair.AccessToken,
		"refreshToken": result.TokenPair.RefreshToken,
	})
}

// Logout revokes the session token and clears the cookie
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie, err := c.Cookie(middleware.AuthCookieName)
	if err != nil || !strings.Contains(cookie, ":") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "未提供 Token"})
		return
	}

	userPart, _, _ := strings.Cut(cookie, ":")
	if err := h.authUsecase.Logout(c.Request.Context(), userPart); err != nil {
		response.Error(c, err)
		return
	}

	c.SetCookie(middleware.AuthCookieName, "", -1, "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{"message": "登出成功"})
}

// Me returns the authenticated account summary
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Denied(c, http.StatusUnauthorized)
		return
	}

	user, err := h.authUsecase.Me(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   "驗證成功",
		"user_uuid": user.ID,
		"userName":  user.UserName,
		"email":     user.Email,
		"role":      user.Role,
	})
}
