package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret-password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "secret-password" {
		t.Fatal("password must not be stored in the clear")
	}
	if !CheckPasswordHash("secret-password", hash) {
		t.Fatal("correct password should verify")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Fatal("wrong password must not verify")
	}
}

func newAuthedRequest(t *testing.T, token string) (*httptest.ResponseRecorder, *http.Request) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return w, req
}

func protectedRouter(extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append([]gin.HandlerFunc{AuthMiddleware()}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": c.GetString("userId")})
	})
	r.GET("/protected", handlers...)
	return r
}

func TestAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken("3f5a0c0e-58d3-4b47-9c39-000000000001", false)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	r := protectedRouter()

	w, req := newAuthedRequest(t, token)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("valid token: want 200, got %d", w.Code)
	}

	w, req = newAuthedRequest(t, "")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("missing token: want 401, got %d", w.Code)
	}

	w, req = newAuthedRequest(t, "garbage.token.here")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("invalid token: want 401, got %d", w.Code)
	}
}

func TestAdminRequired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	// The token claims admin, but the resolver is the source of truth.
	token, err := GenerateToken("3f5a0c0e-58d3-4b47-9c39-000000000002", true)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	denied := protectedRouter(AdminRequired(func(string) bool { return false }))
	w, req := newAuthedRequest(t, token)
	denied.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("resolver says no: want 403, got %d", w.Code)
	}

	allowed := protectedRouter(AdminRequired(func(string) bool { return true }))
	w, req = newAuthedRequest(t, token)
	allowed.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("resolver says yes: want 200, got %d", w.Code)
	}
}

func TestValidatePhone(t *testing.T) {
	valid := []string{"+919876543210", "9876543210", "+1 (555) 010-0100"}
	for _, phone := range valid {
		if !ValidatePhone(phone) {
			t.Errorf("ValidatePhone(%q) = false, want true", phone)
		}
	}

	invalid := []string{"", "abc", "0123", "+"}
	for _, phone := range invalid {
		if ValidatePhone(phone) {
			t.Errorf("ValidatePhone(%q) = true, want false", phone)
		}
	}
}

func TestValidateDateAndTime(t *testing.T) {
	if !ValidateDate("2024-05-01") {
		t.Error("2024-05-01 should be a valid date")
	}
	if ValidateDate("01/05/2024") {
		t.Error("slash dates are not accepted")
	}
	if !ValidateTime("10:00") {
		t.Error("10:00 should be a valid time")
	}
	if ValidateTime("25:00") {
		t.Error("25:00 is not a valid time")
	}
}
