package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "stayhub/errors"

	"github.com/gin-gonic/gin"
)

func run(t *testing.T, handler gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	handler(c)
	c.Writer.WriteHeaderNow()
	return w
}

func TestFromErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		code       apperrors.ErrorCode
		wantStatus int
	}{
		{"invalid token", apperrors.ErrCodeInvalidToken, http.StatusUnauthorized},
		{"wrong password", apperrors.ErrCodeInvalidPassword, http.StatusUnauthorized},
		{"permission denied", apperrors.ErrCodePermissionDenied, http.StatusForbidden},
		{"not found", apperrors.ErrCodeNotFound, http.StatusNotFound},
		{"room unavailable", apperrors.ErrCodeRoomUnavailable, http.StatusConflict},
		{"illegal transition", apperrors.ErrCodeInvalidTransition, http.StatusConflict},
		{"duplicate review", apperrors.ErrCodeDBDuplicate, http.StatusConflict},
		{"date range", apperrors.ErrCodeDateRange, http.StatusBadRequest},
		{"inactive service", apperrors.ErrCodeInvalidService, http.StatusBadRequest},
		{"not eligible", apperrors.ErrCodeNotEligible, http.StatusBadRequest},
		{"db error stays opaque", apperrors.ErrCodeDBError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := run(t, func(c *gin.Context) {
				FromError(c, apperrors.NewAppError(tt.code, "boom", nil))
			})
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestFromErrorUnknownErrorIsServerError(t *testing.T) {
	w := run(t, func(c *gin.Context) {
		FromError(c, http.ErrAbortHandler)
	})
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

func TestSuccessEnvelope(t *testing.T) {
	w := run(t, func(c *gin.Context) {
		Success(c, gin.H{"hello": "world"})
	})
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	if body == "" || body[0] != '{' {
		t.Fatalf("unexpected body: %q", body)
	}
}

func TestNoContent(t *testing.T) {
	w := run(t, func(c *gin.Context) {
		NoContent(c)
	})
	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Error("204 must carry no body")
	}
}
