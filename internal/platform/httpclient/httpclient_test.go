package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDoJSON_RoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("expected json content type, got %q", r.Header.Get("Content-Type"))
		}
		b, _ := io.ReadAll(r.Body)
		w.Header().Set("X-Echo", r.Method+" "+r.URL.Path)
		_, _ = w.Write(b)
	}))
	defer srv.Close()

	c, err := NewWithBaseURL(srv.URL+"/", 0)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	var out struct {
		Name string `json:"name"`
	}
	if err := c.DoJSON(context.Background(), http.MethodPost, "echo", nil, map[string]string{"name": "Fufi"}, &out); err != nil {
		t.Fatalf("do json: %v", err)
	}
	if out.Name != "Fufi" {
		t.Fatalf("unexpected echo: %+v", out)
	}

	resp, err := c.Do(context.Background(), http.MethodGet, "/echo", nil, nil)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	if got := resp.Header.Get("X-Echo"); got != "GET /echo" {
		t.Fatalf("unexpected header: %q", got)
	}
}

func TestDo_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(0)
	resp, err := c.Do(context.Background(), http.MethodGet, srv.URL+"/pet/10", nil, nil)
	if StatusCode(err) != http.StatusNotFound {
		t.Fatalf("expected 404 HTTPError, got %v", err)
	}
	if resp == nil || resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected response alongside error, got %+v", resp)
	}
	if err.Error() != "http error: status=404" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestResolveURL(t *testing.T) {
	if _, err := New(0).Do(context.Background(), http.MethodGet, "/pet/1", nil, nil); err == nil {
		t.Fatalf("relative path without BaseURL must fail")
	}
	if _, err := NewWithBaseURL("ftp://pets", 0); err == nil {
		t.Fatalf("expected error for unsupported scheme")
	}
	if _, err := NewWithBaseURL("::bad", 0); err == nil {
		t.Fatalf("expected error for invalid url")
	}
}
