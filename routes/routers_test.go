package routes

import (
	"testing"

	"github.com/gin-gonic/gin"
)

func TestLogoutIsRegisteredAsPost(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupRoutes(router)

	var foundPost bool
	for _, route := range router.Routes() {
		if route.Path != "/api/v1/auth/logout" {
			continue
		}
		if route.Method == "POST" {
			foundPost = true
		} else {
			t.Errorf("logout registered with method %s", route.Method)
		}
	}
	if !foundPost {
		t.Error("POST /api/v1/auth/logout is not registered")
	}
}
