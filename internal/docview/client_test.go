package docview

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_Page(t *testing.T) {
	t.Parallel()

	var gotPath, gotCacheControl string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotCacheControl = r.Header.Get("Cache-Control")
		w.Write([]byte(`<html><body><h1>Housing Policy</h1><h2>Background</h2></body></html>`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())
	doc, err := client.Page(context.Background(), "housing policy.html")
	if err != nil {
		t.Fatalf("Page() error = %v", err)
	}

	if gotPath != "/html/housing%20policy.html" {
		t.Errorf("request path = %q, want url-encoded /html/ path", gotPath)
	}
	if gotCacheControl != "no-cache" {
		t.Errorf("Cache-Control = %q, want no-cache", gotCacheControl)
	}
	if doc.Title != "Housing Policy" {
		t.Errorf("title = %q", doc.Title)
	}
	if len(doc.TOC) != 1 || doc.TOC[0].ID != "background" {
		t.Errorf("TOC = %+v", doc.TOC)
	}
}

func TestClient_PageNotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())
	_, err := client.Page(context.Background(), "missing.html")
	if !errors.Is(err, ErrPageLoad) {
		t.Errorf("Page() error = %v, want ErrPageLoad", err)
	}
}

func TestClient_PageCancelled(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(srv.URL, srv.Client())
	if _, err := client.Page(ctx, "slow.html"); err == nil {
		t.Error("Page() with cancelled context, want error")
	}
}
