package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"stayhub/constants"
	"stayhub/services"

	"github.com/gin-gonic/gin"
)

func newRouter(roles ...int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/secure", AuthMiddleware(roles...), func(c *gin.Context) {
		userID, _ := c.Get("userID")
		c.JSON(http.StatusOK, gin.H{"userID": userID})
	})
	return router
}

func request(router *gin.Engine, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	w := request(newRouter(), "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuthMiddlewareRejectsBadToken(t *testing.T) {
	w := request(newRouter(), "garbage")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	token, _, err := services.GenerateToken(services.UserInfo{UserID: 5, Role: constants.RoleGuest}, 5)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	w := request(newRouter(), token)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestAuthMiddlewareEnforcesRoles(t *testing.T) {
	guestToken, _, err := services.GenerateToken(services.UserInfo{UserID: 5, Role: constants.RoleGuest}, 5)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	staffToken, _, err := services.GenerateToken(services.UserInfo{UserID: 1, Role: constants.RoleStaff}, 5)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	staffOnly := newRouter(constants.RoleStaff)

	if w := request(staffOnly, guestToken); w.Code != http.StatusForbidden {
		t.Errorf("guest on staff route: status = %d, want 403", w.Code)
	}
	if w := request(staffOnly, staffToken); w.Code != http.StatusOK {
		t.Errorf("staff on staff route: status = %d, want 200", w.Code)
	}
}
