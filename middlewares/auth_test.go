package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/creativeyMedia/fwkantine/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func authTestRouter(secret string, roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(secret, roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"employeeId": utils.CurrentEmployeeID(c)})
	})
	return r
}

func doGet(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	const secret = "test-secret"

	token, err := utils.GenerateToken(7, "employee", secret, time.Hour)
	require.NoError(t, err)

	t.Run("valid token passes", func(t *testing.T) {
		w := doGet(authTestRouter(secret), token)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `"employeeId":7`)
	})

	t.Run("missing header rejected", func(t *testing.T) {
		w := doGet(authTestRouter(secret), "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		w := doGet(authTestRouter("other-secret"), token)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("role enforced", func(t *testing.T) {
		w := doGet(authTestRouter(secret, "admin"), token)
		require.Equal(t, http.StatusForbidden, w.Code)

		adminToken, err := utils.GenerateToken(1, "admin", secret, time.Hour)
		require.NoError(t, err)
		w = doGet(authTestRouter(secret, "admin"), adminToken)
		require.Equal(t, http.StatusOK, w.Code)
	})
}
