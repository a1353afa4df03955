package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tzt-server/internal/auth"
	"tzt-server/internal/domain"
)

func TestAuthorizeAttachesClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens := auth.NewTokens("secret", time.Hour)

	router := gin.New()
	router.GET("/whoami", Authorize(tokens), func(c *gin.Context) {
		claims, ok := ClaimsFromContext(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"id": claims.UserID, "role": claims.Role})
	})

	tok, err := tokens.Issue("u-9", "u9@x.com", domain.RoleAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "u-9")
}

func TestAuthorizeRejectsBadHeaderShapes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens := auth.NewTokens("secret", time.Hour)

	router := gin.New()
	router.GET("/whoami", Authorize(tokens), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for _, header := range []string{"", "Bearer", "Bearer ", "Basic abc", "token xyz"} {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestRestrictToWithoutIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	// misconfigured chain: RestrictTo without Authorize never lets anyone in
	router.GET("/admin", RestrictTo(domain.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRestrictToMultipleRoles(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens := auth.NewTokens("secret", time.Hour)

	router := gin.New()
	router.GET("/either", Authorize(tokens), RestrictTo(domain.RoleUser, domain.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for _, role := range []domain.Role{domain.RoleUser, domain.RoleAdmin} {
		tok, err := tokens.Issue("u", "u@x.com", role)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/either", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "role %s", role)
	}
}
