package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anhtong/guild-api/pkg/token"
)

// ============================================================================
// Test Helpers
// ============================================================================

func newTestRequest(authHeader string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	return req
}

// captureHandler captures the request context for inspection
type captureHandler struct {
	called bool
	ctx    context.Context
}

func (h *captureHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.called = true
	h.ctx = r.Context()
	w.WriteHeader(http.StatusOK)
}

func adminToken() string {
	return token.Generate(token.Identity{
		UserID:   "user:123",
		Username: "adminvn",
		Region:   "vn",
		IsAdmin:  true,
	})
}

func memberToken() string {
	return token.Generate(token.Identity{
		UserID:   "user:456",
		Username: "member",
		Region:   "na",
		IsAdmin:  false,
	})
}

// ============================================================================
// Auth() Middleware Tests
// ============================================================================

func TestAuth_MissingAuthorizationHeader_ReturnsUnauthorized(t *testing.T) {
	t.Parallel()
	middleware := Auth()
	handler := &captureHandler{}

	req := newTestRequest("") // No auth header
	rr := httptest.NewRecorder()

	middleware(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
	if handler.called {
		t.Error("handler should not have been called")
	}
}

func TestAuth_InvalidHeaderFormat_NoBearerPrefix_ReturnsUnauthorized(t *testing.T) {
	t.Parallel()
	middleware := Auth()
	handler := &captureHandler{}

	req := newTestRequest("Basic " + adminToken()) // Wrong scheme
	rr := httptest.NewRecorder()

	middleware(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
	if handler.called {
		t.Error("handler should not have been called")
	}
}

func TestAuth_InvalidHeaderFormat_OnlyBearer_ReturnsUnauthorized(t *testing.T) {
	t.Parallel()
	middleware := Auth()
	handler := &captureHandler{}

	req := newTestRequest("Bearer") // No token
	rr := httptest.NewRecorder()

	middleware(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
	if handler.called {
		t.Error("handler should not have been called")
	}
}

func TestAuth_MalformedToken_ReturnsUnauthorized(t *testing.T) {
	t.Parallel()
	middleware := Auth()
	handler := &captureHandler{}

	req := newTestRequest("Bearer not-base64!!!")
	rr := httptest.NewRecorder()

	middleware(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
	if handler.called {
		t.Error("handler should not have been called")
	}
}

func TestAuth_ValidToken_SetsContext_CallsNext(t *testing.T) {
	t.Parallel()
	middleware := Auth()
	handler := &captureHandler{}

	req := newTestRequest("Bearer " + adminToken())
	rr := httptest.NewRecorder()

	middleware(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if !handler.called {
		t.Error("handler should have been called")
	}

	// Check context values
	if GetUserID(handler.ctx) != "user:123" {
		t.Errorf("expected UserID 'user:123', got %q", GetUserID(handler.ctx))
	}
	identity := GetIdentity(handler.ctx)
	if identity == nil {
		t.Fatal("expected identity in context")
	}
	if identity.Username != "adminvn" {
		t.Errorf("expected Username 'adminvn', got %q", identity.Username)
	}
	if identity.Region != "vn" {
		t.Errorf("expected Region 'vn', got %q", identity.Region)
	}
	if !identity.IsAdmin {
		t.Error("expected IsAdmin true")
	}
}

func TestAuth_ValidToken_CaseInsensitiveBearer(t *testing.T) {
	t.Parallel()
	middleware := Auth()
	handler := &captureHandler{}

	// Test lowercase "bearer"
	req := newTestRequest("bearer " + memberToken())
	rr := httptest.NewRecorder()

	middleware(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if !handler.called {
		t.Error("handler should have been called")
	}
}

// ============================================================================
// RequireAdmin() Middleware Tests
// ============================================================================

func TestRequireAdmin_NoIdentity_ReturnsUnauthorized(t *testing.T) {
	t.Parallel()
	middleware := RequireAdmin()
	handler := &captureHandler{}

	req := newTestRequest("")
	rr := httptest.NewRecorder()

	middleware(handler).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
	if handler.called {
		t.Error("handler should not have been called")
	}
}

func TestRequireAdmin_NonAdmin_ReturnsForbidden(t *testing.T) {
	t.Parallel()
	handler := &captureHandler{}
	wrapped := Chain(handler, Auth(), RequireAdmin())

	req := newTestRequest("Bearer " + memberToken())
	rr := httptest.NewRecorder()

	wrapped.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Errorf("expected status %d, got %d", http.StatusForbidden, rr.Code)
	}
	if handler.called {
		t.Error("handler should not have been called")
	}
}

func TestRequireAdmin_Admin_CallsNext(t *testing.T) {
	t.Parallel()
	handler := &captureHandler{}
	wrapped := Chain(handler, Auth(), RequireAdmin())

	req := newTestRequest("Bearer " + adminToken())
	rr := httptest.NewRecorder()

	wrapped.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if !handler.called {
		t.Error("handler should have been called")
	}
}

// ============================================================================
// Context Helper Tests
// ============================================================================

func TestGetUserID_Present_ReturnsValue(t *testing.T) {
	t.Parallel()
	ctx := context.WithValue(context.Background(), UserIDKey, "user:999")

	result := GetUserID(ctx)

	if result != "user:999" {
		t.Errorf("expected 'user:999', got %q", result)
	}
}

func TestGetUserID_Missing_ReturnsEmpty(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	result := GetUserID(ctx)

	if result != "" {
		t.Errorf("expected empty string, got %q", result)
	}
}

func TestGetIdentity_Missing_ReturnsNil(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	result := GetIdentity(ctx)

	if result != nil {
		t.Errorf("expected nil, got %+v", result)
	}
}

func TestGetIdentity_WrongType_ReturnsNil(t *testing.T) {
	t.Parallel()
	ctx := context.WithValue(context.Background(), IdentityKey, "not an identity") // Wrong type

	result := GetIdentity(ctx)

	if result != nil {
		t.Errorf("expected nil for wrong type, got %+v", result)
	}
}
