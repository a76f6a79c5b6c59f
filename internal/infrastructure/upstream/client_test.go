package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopnexus/storefront/internal/core/domain"
)

func TestProductClient_ListProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/products" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if accept := r.Header.Get("Accept"); accept != "application/json" {
			t.Fatalf("missing Accept header, got %q", accept)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"name":"Test Product","description":"Test Description","price":99.99,"stock":10,"category":"Test Category"}]`))
	}))
	defer srv.Close()

	products, err := NewProductClient(srv.URL, time.Second).ListProducts(context.Background())
	if err != nil {
		t.Fatalf("ListProducts failed: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}
	p := products[0]
	if p.ID != 1 || p.Name != "Test Product" || p.Price != 99.99 || p.Stock != 10 {
		t.Fatalf("unexpected product: %+v", p)
	}
}

func TestProductClient_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewProductClient(srv.URL, time.Second).ListProducts(context.Background())
	if err == nil {
		t.Fatal("expected error on 500")
	}
	var ue *domain.UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UpstreamError, got %T: %v", err, err)
	}
	if ue.Status != http.StatusInternalServerError || ue.Service != "product" {
		t.Fatalf("unexpected UpstreamError: %+v", ue)
	}
}

func TestIdentityClient_Login(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/users/login" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Fatalf("missing Content-Type header, got %q", ct)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok-abc"}`))
	}))
	defer srv.Close()

	token, err := NewIdentityClient(srv.URL, time.Second).Login(context.Background(), "alice", "secret")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if token != "tok-abc" {
		t.Fatalf("unexpected token: %q", token)
	}
}

func TestIdentityClient_LoginRejectedCarriesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"Invalid credentials"}`))
	}))
	defer srv.Close()

	_, err := NewIdentityClient(srv.URL, time.Second).Login(context.Background(), "alice", "wrong")
	var ue *domain.UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UpstreamError, got %T: %v", err, err)
	}
	if ue.Message != "Invalid credentials" {
		t.Fatalf("expected server message, got %q", ue.Message)
	}
	if domain.UserMessage(err) != "Invalid credentials" {
		t.Fatalf("UserMessage should pass server message through, got %q", domain.UserMessage(err))
	}
}

func TestIdentityClient_RejectionWithoutEnvelopeUsesStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	err := NewIdentityClient(srv.URL, time.Second).Register(context.Background(), "bob", "b@example.com", "secret")
	var ue *domain.UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UpstreamError, got %T: %v", err, err)
	}
	if ue.Message != http.StatusText(http.StatusBadGateway) {
		t.Fatalf("expected status text fallback, got %q", ue.Message)
	}
}

func TestIdentityClient_ProfileSendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-abc" {
			t.Fatalf("unexpected Authorization header: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":7,"username":"alice","email":"a@example.com"}`))
	}))
	defer srv.Close()

	user, err := NewIdentityClient(srv.URL, time.Second).Profile(context.Background(), "tok-abc")
	if err != nil {
		t.Fatalf("Profile failed: %v", err)
	}
	if user.ID != 7 || user.Username != "alice" || user.Email != "a@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	_, err := NewProductClient(srv.URL, 20*time.Millisecond).ListProducts(context.Background())
	if err == nil {
		t.Fatal("expected timeout error")
	}
	var ue *domain.UpstreamError
	if errors.As(err, &ue) {
		t.Fatalf("timeout must be a transport error, not an upstream rejection: %v", err)
	}
	if domain.UserMessage(err) != domain.GenericAuthFailure {
		t.Fatalf("timeouts must surface as the generic message, got %q", domain.UserMessage(err))
	}
}
