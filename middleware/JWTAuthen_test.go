package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func protectedRouter() (*gin.Engine, *uint) {
	gin.SetMode(gin.TestMode)
	var seenUserID uint
	router := gin.New()
	router.GET("/protected", AccessTokenMiddleware(), func(c *gin.Context) {
		seenUserID = c.MustGet("userId").(uint)
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router, &seenUserID
}

func TestAccessTokenMiddleware_ValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	router, seenUserID := protectedRouter()

	token := signedToken(t, "test-secret", jwt.MapClaims{
		"userId": float64(42),
		"exp":    time.Now().Add(time.Minute).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if *seenUserID != 42 {
		t.Errorf("Expected userId 42 in context, got %d", *seenUserID)
	}
}

func TestAccessTokenMiddleware_MissingHeader(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	router, _ := protectedRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401, got %d", w.Code)
	}
}

func TestAccessTokenMiddleware_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	router, _ := protectedRouter()

	token := signedToken(t, "other-secret", jwt.MapClaims{
		"userId": float64(42),
		"exp":    time.Now().Add(time.Minute).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("Expected 403, got %d", w.Code)
	}
}

func TestAccessTokenMiddleware_ExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	router, _ := protectedRouter()

	token := signedToken(t, "test-secret", jwt.MapClaims{
		"userId": float64(42),
		"exp":    time.Now().Add(-time.Minute).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("Expected 403, got %d", w.Code)
	}
}

func TestAccessTokenMiddleware_MissingUserIDClaim(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	router, _ := protectedRouter()

	token := signedToken(t, "test-secret", jwt.MapClaims{
		"exp": time.Now().Add(time.Minute).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401, got %d", w.Code)
	}
}
