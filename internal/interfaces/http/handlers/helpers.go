package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"eathub.backend/internal/domain/entities"
	domainerrors "eathub.backend/internal/domain/errors"
	"eathub.backend/internal/domain/repositories"
	"eathub.backend/internal/interfaces/http/middleware"
	"eathub.backend/internal/interfaces/http/response"
)

// currentUser resolves the authenticated caller to a full user record. A
// token whose user no longer exists reads as unauthenticated.
func currentUser(c *gin.Context, users repositories.UserRepository) (*entities.User, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Denied(c, http.StatusUnauthorized)
		return nil, false
	}
	user, err := users.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Denied(c, http.StatusUnauthorized)
			return nil, false
		}
		response.Error(c, err)
		return nil, false
	}
	return user, true
}
