package response

import (
	"errors"

	"github.com/gin-gonic/gin"

	domainerrors "eathub.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response, mapping unknown errors to a 500
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		appErr = domainerrors.InternalError(err)
	}
	c.JSON(appErr.Status, gin.H{"error": appErr.Message})
}

// Denied sends the bare {success:false} body several endpoints answer with
// when a guard fails.
func Denied(c *gin.Context, status int) {
	c.JSON(status, gin.H{"success": false})
}

// DeniedFromError renders {success:false} with the error's status. Errors
// without a status fall through to the 500 path.
func DeniedFromError(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		Error(c, err)
		return
	}
	Denied(c, appErr.Status)
}
