package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	domainerrors "eathub.backend/internal/domain/errors"
)

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	return c, rec
}

func TestSuccess(t *testing.T) {
	c, rec := newTestContext(t)
	Success(c, http.StatusCreated, gin.H{"title": "九折券"})
	require.Equal(t, http.StatusCreated, rec.Code)
	require.JSONEq(t, `{"title":"九折券"}`, rec.Body.String())
}

func TestError_AppError(t *testing.T) {
	c, rec := newTestContext(t)
	Error(c, domainerrors.Forbidden("此帳戶無建立動態權限"))
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.JSONEq(t, `{"error":"此帳戶無建立動態權限"}`, rec.Body.String())
}

func TestError_UnknownErrorBecomes500(t *testing.T) {
	c, rec := newTestContext(t)
	Error(c, errors.New("db down"))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
}

func TestDenied(t *testing.T) {
	c, rec := newTestContext(t)
	Denied(c, http.StatusUnauthorized)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"success":false}`, rec.Body.String())
}

func TestDeniedFromError(t *testing.T) {
	c, rec := newTestContext(t)
	DeniedFromError(c, domainerrors.NotFound("優惠券不存在"))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"success":false}`, rec.Body.String())
}

func TestDeniedFromError_UnknownErrorBecomes500(t *testing.T) {
	c, rec := newTestContext(t)
	DeniedFromError(c, errors.New("db down"))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
}
