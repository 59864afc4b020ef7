// README: Auth middleware tests with a stubbed verifier.
package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"trippy/internal/infra"
)

type stubVerifier struct {
	uid string
	err error
}

func (s *stubVerifier) VerifyIDToken(ctx context.Context, idToken string) (*infra.VerifiedUser, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &infra.VerifiedUser{UID: s.uid}, nil
}

func newAuthRouter(verifier infra.TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", Auth(verifier), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(UIDKey))
	})
	return r
}

func TestAuthValidToken(t *testing.T) {
	r := newAuthRouter(&stubVerifier{uid: "user-42"})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := w.Body.String(); got != "user-42" {
		t.Errorf("uid = %q, want user-42", got)
	}
}

func TestAuthMissingToken(t *testing.T) {
	r := newAuthRouter(&stubVerifier{uid: "user-42"})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAuthRejectedToken(t *testing.T) {
	r := newAuthRouter(&stubVerifier{err: errors.New("expired")})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer stale")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAuthNilVerifierDevIdentity(t *testing.T) {
	r := newAuthRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("X-User-ID", "local-tester")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := w.Body.String(); got != "local-tester" {
		t.Errorf("uid = %q, want local-tester", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Body.String(); got != "dev" {
		t.Errorf("default uid = %q, want dev", got)
	}
}
