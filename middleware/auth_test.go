package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newAdminRouter(token string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/admin/stats", AdminAuth(token), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"total": 0})
	})
	return router
}

func getWithAuth(router *gin.Engine, header string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestAdminAuth(t *testing.T) {
	router := newAdminRouter("secreto-admin")

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"no bearer prefix", "secreto-admin", http.StatusUnauthorized},
		{"wrong token", "Bearer otro-token", http.StatusUnauthorized},
		{"prefix of token", "Bearer secreto", http.StatusUnauthorized},
		{"superset of token", "Bearer secreto-admin-x", http.StatusUnauthorized},
		{"correct token", "Bearer secreto-admin", http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if w := getWithAuth(router, tc.header); w.Code != tc.want {
				t.Errorf("status %d, want %d", w.Code, tc.want)
			}
		})
	}
}

func TestAdminAuthWithoutConfiguredToken(t *testing.T) {
	router := newAdminRouter("")

	// An empty configured token must never authorize anyone, not even an
	// empty bearer value.
	if w := getWithAuth(router, "Bearer "); w.Code != http.StatusUnauthorized {
		t.Errorf("status %d, want 401", w.Code)
	}
}
