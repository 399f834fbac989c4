package httpx_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/vietct/orderflow-client/pkg/ctxmeta"
	"github.com/vietct/orderflow-client/pkg/httpx"
)

// сервер-эхо: возвращает полученный X-Request-ID в заголовке ответа.
func echoServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Echo-Request-ID", r.Header.Get("X-Request-ID"))
		w.WriteHeader(http.StatusOK)
	}))
}

func TestRequestIDTransport_GeneratesUUID(t *testing.T) {
	t.Parallel()

	srv := echoServer(t)
	defer srv.Close()

	client := &http.Client{Transport: httpx.NewRequestIDTransport(nil)}
	resp, err := client.Get(srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	got := resp.Header.Get("X-Echo-Request-ID")
	if _, err := uuid.Parse(got); err != nil {
		t.Fatalf("expected generated UUID, got %q (%v)", got, err)
	}
}

func TestRequestIDTransport_TakesIDFromContext(t *testing.T) {
	t.Parallel()

	srv := echoServer(t)
	defer srv.Close()

	ctx := ctxmeta.WithRequestID(context.Background(), "rid-42")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL, http.NoBody)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	client := &http.Client{Transport: httpx.NewRequestIDTransport(nil)}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get("X-Echo-Request-ID"); got != "rid-42" {
		t.Fatalf("want rid-42, got %q", got)
	}
}

func TestRequestIDTransport_KeepsExplicitHeader(t *testing.T) {
	t.Parallel()

	srv := echoServer(t)
	defer srv.Close()

	req, err := http.NewRequest(http.MethodGet, srv.URL, http.NoBody)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	req.Header.Set("X-Request-ID", "explicit-1")

	client := &http.Client{Transport: httpx.NewRequestIDTransport(nil)}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get("X-Echo-Request-ID"); got != "explicit-1" {
		t.Fatalf("want explicit-1, got %q", got)
	}
}
